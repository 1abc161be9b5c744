package repository

import (
	"context"
	"sync"
	"time"

	"inversure_flips/internal/domain/entities"
	"inversure_flips/internal/usecase/interfaces"
)

// EstudioMemoryRepository is a concurrency-safe in-memory implementation of
// the estudio store, used by tests and by embedders that bring their own
// persistence later. Writes follow last-write-wins; the lifecycle gating in
// the usecase is the only protection against closed-record races.
type EstudioMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]entities.Estudio
}

var _ interfaces.IEstudioRepository = (*EstudioMemoryRepository)(nil)

func NewEstudioMemoryRepository() *EstudioMemoryRepository {
	return &EstudioMemoryRepository{records: make(map[string]entities.Estudio)}
}

func (r *EstudioMemoryRepository) Create(_ context.Context, e entities.Estudio) (entities.Estudio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[e.ID] = clone(e)
	return e, nil
}

func (r *EstudioMemoryRepository) GetByID(_ context.Context, id string) (entities.Estudio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.records[id]; ok {
		return clone(e), nil
	}
	return entities.Estudio{}, nil
}

func (r *EstudioMemoryRepository) Update(_ context.Context, e entities.Estudio) (entities.Estudio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[e.ID]; !ok {
		return entities.Estudio{}, nil
	}
	r.records[e.ID] = clone(e)
	return e, nil
}

func (r *EstudioMemoryRepository) UpdateStatusByID(_ context.Context, id string, status entities.EstudioStatus) (entities.Estudio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.records[id]
	if !ok {
		return entities.Estudio{}, nil
	}
	e.Status = status
	e.UpdatedAt = time.Now().UTC()
	r.records[id] = e
	return clone(e), nil
}

func (r *EstudioMemoryRepository) ListByStatus(_ context.Context, status entities.EstudioStatus) ([]entities.Estudio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entities.Estudio
	for _, e := range r.records {
		if e.Status == status {
			out = append(out, clone(e))
		}
	}
	return out, nil
}

// clone guards callers against aliasing the stored slices and snapshot.
func clone(e entities.Estudio) entities.Estudio {
	if e.Items != nil {
		items := make([]entities.ExpenseItem, len(e.Items))
		copy(items, e.Items)
		e.Items = items
	}
	if e.Snapshot != nil {
		snapshot := *e.Snapshot
		e.Snapshot = &snapshot
	}
	return e
}
