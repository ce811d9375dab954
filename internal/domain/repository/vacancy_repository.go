package repository

import (
	"context"

	"github.com/jhoicas/empleos-api/internal/domain/entity"
)

// VacancyRepository define el puerto de persistencia para Vacancy.
type VacancyRepository interface {
	Create(ctx context.Context, vacancy *entity.Vacancy) error
	GetByID(ctx context.Context, id string) (*entity.Vacancy, error)
	GetAll(ctx context.Context) ([]*entity.Vacancy, error)
	GetByOwner(ctx context.Context, ownerID string) ([]*entity.Vacancy, error)
	Update(ctx context.Context, vacancy *entity.Vacancy) error
	Delete(ctx context.Context, id string) error
}
