package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateVacancyRequest entrada para crear una vacancy. El dueño se toma del
// requester autenticado.
type CreateVacancyRequest struct {
	Title          string          `json:"title" validate:"required,min=1,max=200"`
	Description    string          `json:"description"`
	Experience     int             `json:"experience" validate:"min=0"`
	ExpectedSalary decimal.Decimal `json:"expected_salary"`
}

// UpdateVacancyRequest entrada para actualizar una vacancy.
type UpdateVacancyRequest struct {
	Title          string          `json:"title" validate:"required,min=1,max=200"`
	Description    string          `json:"description"`
	Experience     int             `json:"experience" validate:"min=0"`
	ExpectedSalary decimal.Decimal `json:"expected_salary"`
}

// VacancyResponse salida de una vacancy.
type VacancyResponse struct {
	ID             string          `json:"id"`
	OwnerID        string          `json:"owner_id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Experience     int             `json:"experience"`
	ExpectedSalary decimal.Decimal `json:"expected_salary"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
