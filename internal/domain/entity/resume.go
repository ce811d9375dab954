package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Resume representa el currículum de un trabajador. OwnerID referencia una
// cuenta con rol worker; solo el dueño puede crearlo, modificarlo o borrarlo.
type Resume struct {
	ID             string
	OwnerID        string
	Title          string
	Description    string
	Experience     int // años de experiencia
	ExpectedSalary decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
