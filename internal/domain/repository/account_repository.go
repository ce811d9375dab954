package repository

import (
	"context"

	"github.com/jhoicas/empleos-api/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para Account (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no hay fila.
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	GetByID(ctx context.Context, id string) (*entity.Account, error)
	GetByDisplayName(ctx context.Context, displayName string) (*entity.Account, error)
	GetAll(ctx context.Context) ([]*entity.Account, error)
	Update(ctx context.Context, account *entity.Account) error
	Delete(ctx context.Context, id string) error
}
