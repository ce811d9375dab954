package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateResumeRequest entrada para crear un resume. El dueño se toma siempre
// del requester autenticado; cualquier owner que mande el caller se ignora.
type CreateResumeRequest struct {
	Title          string          `json:"title" validate:"required,min=1,max=200"`
	Description    string          `json:"description"`
	Experience     int             `json:"experience" validate:"min=0"`
	ExpectedSalary decimal.Decimal `json:"expected_salary"`
}

// UpdateResumeRequest entrada para actualizar un resume (Id y OwnerID no cambian).
type UpdateResumeRequest struct {
	Title          string          `json:"title" validate:"required,min=1,max=200"`
	Description    string          `json:"description"`
	Experience     int             `json:"experience" validate:"min=0"`
	ExpectedSalary decimal.Decimal `json:"expected_salary"`
}

// ResumeResponse salida de un resume.
type ResumeResponse struct {
	ID             string          `json:"id"`
	OwnerID        string          `json:"owner_id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Experience     int             `json:"experience"`
	ExpectedSalary decimal.Decimal `json:"expected_salary"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
