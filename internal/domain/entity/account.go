package entity

import "time"

// Role es el rol de una cuenta. Variante cerrada: toda decisión de acceso
// debe hacer switch exhaustivo sobre estos tres valores.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployer Role = "employer"
	RoleWorker   Role = "worker"
)

// Valid reporta si el rol es uno de los tres conocidos.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployer, RoleWorker:
		return true
	}
	return false
}

// ParseRole normaliza un string a Role. Devuelve false si no es un rol conocido.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

// Account representa una cuenta del sistema: admin, empleador o trabajador.
// DisplayName es único en todo el sistema.
type Account struct {
	ID           string
	DisplayName  string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Requester es la identidad resuelta que hace la petición actual (id + rol).
// La resuelve el colaborador de identidad (middleware JWT); los casos de uso
// nunca tocan el token.
type Requester struct {
	ID   string
	Role Role
}
