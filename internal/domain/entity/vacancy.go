package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vacancy representa una oferta de empleo publicada por un empleador.
// OwnerID referencia una cuenta con rol employer.
type Vacancy struct {
	ID             string
	OwnerID        string
	Title          string
	Description    string
	Experience     int // años de experiencia requeridos
	ExpectedSalary decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
