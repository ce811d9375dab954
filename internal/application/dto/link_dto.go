package dto

import "time"

// ApplyRequest entrada para que un worker postule su resume a una vacancy.
type ApplyRequest struct {
	ResumeID  string `json:"resume_id" validate:"required,uuid"`
	VacancyID string `json:"vacancy_id" validate:"required,uuid"`
}

// OfferRequest entrada para que un employer ofrezca su vacancy a un resume.
type OfferRequest struct {
	VacancyID string `json:"vacancy_id" validate:"required,uuid"`
	ResumeID  string `json:"resume_id" validate:"required,uuid"`
}

// LinkResponse salida de un link enriquecida con los títulos de ambos lados
// y los nombres de sus dueños (join de lectura, no se persiste).
type LinkResponse struct {
	ID           string    `json:"id"`
	ResumeID     string    `json:"resume_id"`
	VacancyID    string    `json:"vacancy_id"`
	ResumeTitle  string    `json:"resume_title"`
	VacancyTitle string    `json:"vacancy_title"`
	WorkerName   string    `json:"worker_name"`
	EmployerName string    `json:"employer_name"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// LinkExistsResponse salida del probe de existencia.
type LinkExistsResponse struct {
	Exists bool `json:"exists"`
}
