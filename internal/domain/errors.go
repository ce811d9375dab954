package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrForbidden     = errors.New("acceso denegado")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrConflict      = errors.New("conflicto con el estado actual")
	ErrDuplicateName = errors.New("el nombre ya está registrado")
	ErrInvalidInput  = errors.New("entrada inválida")
)
