// Package access contiene la política de autorización del tablón de empleo:
// una función de decisión pura sobre (recurso, operación, solicitante, dueño),
// sin I/O. Los catálogos la consultan antes de cada mutación o lectura.
package access

import "github.com/jhoicas/empleos-api/internal/domain/entity"

// Resource identifica el tipo de recurso sobre el que se decide.
type Resource string

const (
	ResourceResume  Resource = "resume"
	ResourceVacancy Resource = "vacancy"
)

// Operation es la operación solicitada sobre el recurso.
type Operation string

const (
	OpReadAll Operation = "read_all"
	OpReadOne Operation = "read_one"
	OpCreate  Operation = "create"
	OpUpdate  Operation = "update"
	OpDelete  Operation = "delete"
	OpSearch  Operation = "search"
)

// Decision es el resultado de evaluar la política.
//
// ScopeOwn no es un permiso ni una negación: es la transformación de
// visibilidad "acotada al dueño" — el catálogo debe filtrar la colección a
// OwnerID == requester.ID en lugar de rechazar la llamada.
type Decision int

const (
	Deny Decision = iota
	Allow
	ScopeOwn
)

// Decide evalúa la política para una operación sobre un recurso.
// ownerID es el dueño del recurso afectado; para OpReadAll, OpCreate y
// OpSearch se ignora (pasar cadena vacía).
//
// Los switch sobre rol son exhaustivos a propósito: agregar un rol obliga
// a revisar cada punto de decisión.
func Decide(res Resource, op Operation, requester entity.Requester, ownerID string) Decision {
	switch res {
	case ResourceResume:
		return decideResume(op, requester, ownerID)
	case ResourceVacancy:
		return decideVacancy(op, requester, ownerID)
	}
	return Deny
}

func decideResume(op Operation, requester entity.Requester, ownerID string) Decision {
	switch op {
	case OpReadAll:
		switch requester.Role {
		case entity.RoleAdmin, entity.RoleEmployer:
			return Allow
		case entity.RoleWorker:
			return ScopeOwn
		}
	case OpReadOne:
		switch requester.Role {
		case entity.RoleAdmin, entity.RoleEmployer:
			return Allow
		case entity.RoleWorker:
			if requester.ID == ownerID {
				return Allow
			}
		}
	case OpCreate:
		switch requester.Role {
		case entity.RoleWorker:
			return Allow
		case entity.RoleAdmin, entity.RoleEmployer:
			return Deny
		}
	case OpUpdate, OpDelete:
		// Solo el dueño; el admin no tiene derechos de escritura sobre resumes.
		switch requester.Role {
		case entity.RoleWorker:
			if requester.ID == ownerID {
				return Allow
			}
		case entity.RoleAdmin, entity.RoleEmployer:
			return Deny
		}
	case OpSearch:
		switch requester.Role {
		case entity.RoleAdmin, entity.RoleEmployer:
			return Allow
		case entity.RoleWorker:
			return Deny
		}
	}
	return Deny
}

func decideVacancy(op Operation, requester entity.Requester, ownerID string) Decision {
	switch op {
	case OpReadAll:
		switch requester.Role {
		case entity.RoleAdmin, entity.RoleWorker:
			return Allow
		case entity.RoleEmployer:
			return ScopeOwn
		}
	case OpReadOne:
		switch requester.Role {
		case entity.RoleAdmin, entity.RoleWorker:
			return Allow
		case entity.RoleEmployer:
			if requester.ID == ownerID {
				return Allow
			}
		}
	case OpCreate:
		switch requester.Role {
		case entity.RoleEmployer:
			return Allow
		case entity.RoleAdmin, entity.RoleWorker:
			return Deny
		}
	case OpUpdate, OpDelete:
		// Dueño o admin; un empleador nunca toca vacantes ajenas.
		switch requester.Role {
		case entity.RoleAdmin:
			return Allow
		case entity.RoleEmployer:
			if requester.ID == ownerID {
				return Allow
			}
		case entity.RoleWorker:
			return Deny
		}
	case OpSearch:
		switch requester.Role {
		case entity.RoleAdmin, entity.RoleWorker:
			return Allow
		case entity.RoleEmployer:
			return Deny
		}
	}
	return Deny
}

// CanAccessLink decide el acceso a un link ya resuelto a sus dos dueños:
// admin, el worker dueño del resume, o el employer dueño de la vacancy.
// Toda operación sobre un link pasa por aquí después de resolver ambos padres.
func CanAccessLink(requester entity.Requester, resumeOwnerID, vacancyOwnerID string) bool {
	switch requester.Role {
	case entity.RoleAdmin:
		return true
	case entity.RoleWorker:
		return requester.ID == resumeOwnerID
	case entity.RoleEmployer:
		return requester.ID == vacancyOwnerID
	}
	return false
}

// CanListAllLinks reporta si el rol puede listar todos los links del sistema.
func CanListAllLinks(role entity.Role) bool {
	return role == entity.RoleAdmin
}
