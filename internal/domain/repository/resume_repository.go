package repository

import (
	"context"

	"github.com/jhoicas/empleos-api/internal/domain/entity"
)

// ResumeRepository define el puerto de persistencia para Resume.
type ResumeRepository interface {
	Create(ctx context.Context, resume *entity.Resume) error
	GetByID(ctx context.Context, id string) (*entity.Resume, error)
	GetAll(ctx context.Context) ([]*entity.Resume, error)
	GetByOwner(ctx context.Context, ownerID string) ([]*entity.Resume, error)
	Update(ctx context.Context, resume *entity.Resume) error
	Delete(ctx context.Context, id string) error
}
