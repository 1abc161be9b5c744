package interfaces

import (
	"context"

	"inversure_flips/internal/domain/entities"
)

// IEstudioRepository abstracts persistence for Estudio records. The store is
// an external collaborator; implementations own schema and consistency, the
// usecase only relies on the contract below.
//
// Not-found is signaled by a zero-value Estudio (empty ID), not by an error.
//
//go:generate mockgen -source=estudio_repository_interface.go -destination=mocks/estudio_repository_mock.go -package=mock_interfaces

type IEstudioRepository interface {
	Create(ctx context.Context, e entities.Estudio) (entities.Estudio, error)
	GetByID(ctx context.Context, id string) (entities.Estudio, error)
	Update(ctx context.Context, e entities.Estudio) (entities.Estudio, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.EstudioStatus) (entities.Estudio, error)
	ListByStatus(ctx context.Context, status entities.EstudioStatus) ([]entities.Estudio, error)
}
