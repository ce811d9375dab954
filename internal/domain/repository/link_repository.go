package repository

import (
	"context"

	"github.com/jhoicas/empleos-api/internal/domain/entity"
)

// LinkRepository define el puerto de persistencia para Link.
//
// Create debe devolver domain.ErrConflict si ya existe un link para el par
// (ResumeID, VacancyID): el índice único del almacenamiento es el verdadero
// guardián del invariante; el chequeo ExistsByPair del servicio es solo un
// camino rápido de error para el usuario.
type LinkRepository interface {
	Create(ctx context.Context, link *entity.Link) error
	GetByID(ctx context.Context, id string) (*entity.Link, error)
	GetAll(ctx context.Context) ([]*entity.Link, error)
	GetByResumeID(ctx context.Context, resumeID string) ([]*entity.Link, error)
	GetByVacancyID(ctx context.Context, vacancyID string) ([]*entity.Link, error)
	ExistsByPair(ctx context.Context, resumeID, vacancyID string) (bool, error)
	Delete(ctx context.Context, id string) error
}
