package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"inversure_flips/internal/domain/engine"
	"inversure_flips/internal/domain/entities"
	"inversure_flips/internal/domain/fields"
	"inversure_flips/internal/domain/schema"
	"inversure_flips/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type decimalValue = decimal.Decimal

var (
	ErrEstudioNotFound   = errors.New("estudio not found")
	ErrInvalidEstudioID  = errors.New("invalid estudio id")
	ErrInvalidNombre     = errors.New("invalid estudio name")
	ErrEstudioCerrado    = errors.New("estudio is closed")
	ErrInvalidTransition = errors.New("invalid lifecycle transition")
	ErrUnknownStatus     = errors.New("unknown lifecycle status")
)

// IEstudioUseCase exposes the flip-operation lifecycle and calculation flows.
//
// Calculation is split in two on purpose (calculate != save):
//   - Preview computes a snapshot without touching storage.
//   - Calculate computes and persists the snapshot as the record's current
//     figures.
type IEstudioUseCase interface {
	CreateEstudio(ctx context.Context, nombre string, datos map[string]any) (entities.Estudio, error)
	Preview(ctx context.Context, id string, datos map[string]any) (entities.EstudioEconomico, error)
	Calculate(ctx context.Context, id string, datos map[string]any) (entities.Estudio, error)
	UpdateStatus(ctx context.Context, id string, next entities.EstudioStatus) (entities.Estudio, error)
	SetComite(ctx context.Context, id string, comite entities.Comite) (entities.Estudio, error)
	GetByID(ctx context.Context, id string) (entities.Estudio, error)
	ListByStatus(ctx context.Context, status entities.EstudioStatus) ([]entities.Estudio, error)
}

type EstudioUseCase struct {
	repo   interfaces.IEstudioRepository
	policy engine.Policy
	log    zerolog.Logger
}

var _ IEstudioUseCase = (*EstudioUseCase)(nil)

func NewEstudioUseCase(repo interfaces.IEstudioRepository, policy engine.Policy, log zerolog.Logger) *EstudioUseCase {
	return &EstudioUseCase{repo: repo, policy: policy, log: log}
}

// CreateEstudio registers a new feasibility study from a raw datos document.
func (u *EstudioUseCase) CreateEstudio(ctx context.Context, nombre string, datos map[string]any) (entities.Estudio, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return entities.Estudio{}, ErrInvalidNombre
	}

	doc := u.normalize("", datos)
	now := time.Now().UTC()
	e := entities.Estudio{
		ID:        uuid.NewString(),
		Nombre:    nombre,
		Status:    entities.StatusEstudio,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyDocument(&e, doc)
	return u.repo.Create(ctx, e)
}

// Preview computes fresh figures without persisting anything. For a closed
// record the stored snapshot comes back unchanged.
func (u *EstudioUseCase) Preview(ctx context.Context, id string, datos map[string]any) (entities.EstudioEconomico, error) {
	e, err := u.load(ctx, id)
	if err != nil {
		return entities.EstudioEconomico{}, err
	}
	doc := u.normalize(e.ID, datos)
	// e is a local copy: merging the submission here affects this
	// computation only, storage stays untouched.
	applyDocument(&e, doc)
	return engine.Compute(buildInputs(e, doc), e.Status, u.policy), nil
}

// Calculate computes fresh figures and persists them as the record's current
// snapshot. Closed records are rejected: nothing is recomputed or written.
func (u *EstudioUseCase) Calculate(ctx context.Context, id string, datos map[string]any) (entities.Estudio, error) {
	e, err := u.load(ctx, id)
	if err != nil {
		return entities.Estudio{}, err
	}
	if e.Status.Closed() {
		return entities.Estudio{}, ErrEstudioCerrado
	}

	doc := u.normalize(e.ID, datos)
	applyDocument(&e, doc)
	snapshot := engine.Compute(buildInputs(e, doc), e.Status, u.policy)

	now := time.Now().UTC()
	e.Snapshot = &snapshot
	e.SnapshotAt = now
	e.UpdatedAt = now
	e.Notaria = snapshot.Notaria
	e.Registro = snapshot.Registro
	e.ITP = snapshot.ITP
	e.GastosComercializacion = snapshot.GastosComercializacion
	e.GastosAdministracion = snapshot.GastosAdministracion
	e.PrecioVentaEstimado = snapshot.PrecioVenta
	return u.repo.Update(ctx, e)
}

// UpdateStatus advances the lifecycle, validating the transition graph.
func (u *EstudioUseCase) UpdateStatus(ctx context.Context, id string, next entities.EstudioStatus) (entities.Estudio, error) {
	if !next.Known() {
		return entities.Estudio{}, ErrUnknownStatus
	}
	e, err := u.load(ctx, id)
	if err != nil {
		return entities.Estudio{}, err
	}
	if !e.Status.CanTransitionTo(next) {
		return entities.Estudio{}, ErrInvalidTransition
	}

	updated, err := u.repo.UpdateStatusByID(ctx, e.ID, next)
	if err != nil {
		return entities.Estudio{}, err
	}
	if updated.ID == "" {
		return entities.Estudio{}, ErrEstudioNotFound
	}
	return updated, nil
}

// SetComite records the committee recommendation block.
func (u *EstudioUseCase) SetComite(ctx context.Context, id string, comite entities.Comite) (entities.Estudio, error) {
	e, err := u.load(ctx, id)
	if err != nil {
		return entities.Estudio{}, err
	}
	e.Comite = comite
	e.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, e)
}

func (u *EstudioUseCase) GetByID(ctx context.Context, id string) (entities.Estudio, error) {
	return u.load(ctx, id)
}

func (u *EstudioUseCase) ListByStatus(ctx context.Context, status entities.EstudioStatus) ([]entities.Estudio, error) {
	return u.repo.ListByStatus(ctx, status)
}

func (u *EstudioUseCase) load(ctx context.Context, id string) (entities.Estudio, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estudio{}, ErrInvalidEstudioID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estudio{}, err
	}
	if e.ID == "" {
		return entities.Estudio{}, ErrEstudioNotFound
	}
	return e, nil
}

// normalize runs the schema migration and logs data-quality warnings. The
// engine itself never logs.
func (u *EstudioUseCase) normalize(id string, datos map[string]any) schema.Document {
	doc, warnings := schema.Normalize(datos)
	for _, w := range warnings {
		u.log.Warn().Str("estudio_id", id).Msg(w)
	}
	return doc
}

// applyDocument merges submitted figures onto the record. An Unset field
// leaves the persisted value untouched, a Clear field zeroes it, a Set field
// replaces it. Manual flags track which acquisition costs the user typed by
// hand, so the automatic formulas keep running for everything else.
func applyDocument(e *entities.Estudio, doc schema.Document) {
	applyScalar(&e.PrecioPropiedad, doc.PrecioPropiedad)
	applyScalar(&e.ValorReferencia, doc.ValorReferencia)
	applyScalar(&e.Plusvalia, doc.Plusvalia)
	applyScalar(&e.Inmobiliaria, doc.Inmobiliaria)
	applyScalar(&e.PrecioVentaEstimado, doc.PrecioVentaEstimado)

	applyOverride(&e.Notaria, &e.NotariaManual, doc.Notaria)
	applyOverride(&e.Registro, &e.RegistroManual, doc.Registro)
	applyOverride(&e.ITP, &e.ITPManual, doc.ITP)

	applyScalar(&e.Valoraciones.Idealista, doc.Valoraciones.Idealista)
	applyScalar(&e.Valoraciones.Fotocasa, doc.Valoraciones.Fotocasa)
	applyScalar(&e.Valoraciones.Registradores, doc.Valoraciones.Registradores)
	applyScalar(&e.Valoraciones.Casafari, doc.Valoraciones.Casafari)
	applyScalar(&e.Valoraciones.Tasacion, doc.Valoraciones.Tasacion)

	if doc.ItemsSubmitted {
		e.Items = doc.Items
	}
}

func applyScalar(dst *decimalValue, f fields.Field[decimalValue]) {
	if f.IsClear() {
		*dst = decimal.Zero
		return
	}
	if v, ok := f.Get(); ok && v.IsPositive() {
		*dst = v
	}
}

// applyOverride also maintains the manual flag: setting a value marks the
// cost as hand-typed, clearing it hands the field back to the formula.
func applyOverride(dst *decimalValue, manual *bool, f fields.Field[decimalValue]) {
	if f.IsClear() {
		*dst = decimal.Zero
		*manual = false
		return
	}
	if v, ok := f.Get(); ok {
		*dst = v
		*manual = true
	}
}

// buildInputs maps the merged record onto the engine. Only hand-typed
// acquisition costs survive as overrides; a persisted automatic fee is just
// the previous result and must not freeze the formula.
func buildInputs(e entities.Estudio, doc schema.Document) engine.Inputs {
	return engine.Inputs{
		PrecioPropiedad:            e.PrecioPropiedad,
		Notaria:                    manualField(e.Notaria, e.NotariaManual),
		Registro:                   manualField(e.Registro, e.RegistroManual),
		ITP:                        manualField(e.ITP, e.ITPManual),
		Reforma:                    doc.Reforma,
		Items:                      e.Items,
		Valoraciones:               e.Valoraciones.Slice(),
		PrecioVentaManual:          e.PrecioVentaEstimado,
		Plusvalia:                  e.Plusvalia,
		Inmobiliaria:               e.Inmobiliaria,
		GastosComercializacion:     doc.GastosComercializacion,
		GastosAdministracion:       doc.GastosAdministracion,
		PrevGastosComercializacion: e.GastosComercializacion,
		PrevGastosAdministracion:   e.GastosAdministracion,
		PreviousSnapshot:           e.Snapshot,
	}
}

func manualField(v decimalValue, manual bool) fields.Field[decimalValue] {
	if manual {
		return fields.Value(v)
	}
	return fields.None[decimalValue]()
}
