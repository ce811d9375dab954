package entity

import "time"

// Link es la relación muchos-a-muchos entre un resume y una vacancy:
// una postulación del trabajador o una oferta del empleador. La fila es
// simétrica; solo cambia qué rol pudo originarla. Invariante: a lo sumo
// un Link por par (ResumeID, VacancyID) — lo garantiza el índice único
// del almacenamiento, no solo el chequeo del servicio.
type Link struct {
	ID          string
	ResumeID    string
	VacancyID   string
	SubmittedAt time.Time // asignado por el sistema al crear, nunca por el caller
}
