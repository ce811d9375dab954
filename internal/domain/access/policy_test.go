package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/empleos-api/internal/domain/access"
	"github.com/jhoicas/empleos-api/internal/domain/entity"
)

var (
	admin    = entity.Requester{ID: "a-1", Role: entity.RoleAdmin}
	employer = entity.Requester{ID: "e-1", Role: entity.RoleEmployer}
	worker   = entity.Requester{ID: "w-1", Role: entity.RoleWorker}
)

// Tabla de decisión para Resume (ver matriz de autorización del dominio).
func TestDecide_Resume(t *testing.T) {
	cases := []struct {
		name      string
		op        access.Operation
		requester entity.Requester
		ownerID   string
		want      access.Decision
	}{
		{"admin lista todos", access.OpReadAll, admin, "", access.Allow},
		{"employer lista todos (navegación)", access.OpReadAll, employer, "", access.Allow},
		{"worker lista acotado a lo suyo", access.OpReadAll, worker, "", access.ScopeOwn},

		{"admin lee cualquiera", access.OpReadOne, admin, "w-2", access.Allow},
		{"employer lee cualquiera", access.OpReadOne, employer, "w-2", access.Allow},
		{"worker lee el suyo", access.OpReadOne, worker, "w-1", access.Allow},
		{"worker no lee ajeno", access.OpReadOne, worker, "w-2", access.Deny},

		{"solo worker crea", access.OpCreate, worker, "", access.Allow},
		{"admin no crea", access.OpCreate, admin, "", access.Deny},
		{"employer no crea", access.OpCreate, employer, "", access.Deny},

		{"worker actualiza el suyo", access.OpUpdate, worker, "w-1", access.Allow},
		{"worker no actualiza ajeno", access.OpUpdate, worker, "w-2", access.Deny},
		{"admin no actualiza resumes", access.OpUpdate, admin, "w-1", access.Deny},
		{"worker borra el suyo", access.OpDelete, worker, "w-1", access.Allow},
		{"admin no borra resumes", access.OpDelete, admin, "w-1", access.Deny},

		{"employer busca", access.OpSearch, employer, "", access.Allow},
		{"admin busca", access.OpSearch, admin, "", access.Allow},
		{"worker no busca resumes", access.OpSearch, worker, "", access.Deny},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := access.Decide(access.ResourceResume, tc.op, tc.requester, tc.ownerID)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Tabla de decisión para Vacancy: simétrica a Resume, con la asimetría de
// que el admin sí puede actualizar/borrar vacantes ajenas.
func TestDecide_Vacancy(t *testing.T) {
	cases := []struct {
		name      string
		op        access.Operation
		requester entity.Requester
		ownerID   string
		want      access.Decision
	}{
		{"admin lista todas", access.OpReadAll, admin, "", access.Allow},
		{"worker lista todas (navegación)", access.OpReadAll, worker, "", access.Allow},
		{"employer lista acotado a lo suyo", access.OpReadAll, employer, "", access.ScopeOwn},

		{"worker lee cualquiera", access.OpReadOne, worker, "e-2", access.Allow},
		{"employer lee la suya", access.OpReadOne, employer, "e-1", access.Allow},
		{"employer no lee ajena", access.OpReadOne, employer, "e-2", access.Deny},

		{"solo employer crea", access.OpCreate, employer, "", access.Allow},
		{"worker no crea", access.OpCreate, worker, "", access.Deny},
		{"admin no crea", access.OpCreate, admin, "", access.Deny},

		{"employer actualiza la suya", access.OpUpdate, employer, "e-1", access.Allow},
		{"employer no actualiza ajena", access.OpUpdate, employer, "e-2", access.Deny},
		{"admin actualiza cualquiera", access.OpUpdate, admin, "e-2", access.Allow},
		{"admin borra cualquiera", access.OpDelete, admin, "e-2", access.Allow},
		{"worker no borra", access.OpDelete, worker, "e-1", access.Deny},

		{"worker busca", access.OpSearch, worker, "", access.Allow},
		{"employer no busca vacantes", access.OpSearch, employer, "", access.Deny},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := access.Decide(access.ResourceVacancy, tc.op, tc.requester, tc.ownerID)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCanAccessLink(t *testing.T) {
	const resumeOwner, vacancyOwner = "w-1", "e-1"

	assert.True(t, access.CanAccessLink(admin, resumeOwner, vacancyOwner),
		"admin accede a cualquier link")
	assert.True(t, access.CanAccessLink(worker, resumeOwner, vacancyOwner),
		"el worker dueño del resume accede")
	assert.True(t, access.CanAccessLink(employer, resumeOwner, vacancyOwner),
		"el employer dueño de la vacancy accede")

	otherWorker := entity.Requester{ID: "w-9", Role: entity.RoleWorker}
	otherEmployer := entity.Requester{ID: "e-9", Role: entity.RoleEmployer}
	assert.False(t, access.CanAccessLink(otherWorker, resumeOwner, vacancyOwner),
		"un worker ajeno no accede")
	assert.False(t, access.CanAccessLink(otherEmployer, resumeOwner, vacancyOwner),
		"un employer ajeno no accede")
}

func TestCanListAllLinks(t *testing.T) {
	assert.True(t, access.CanListAllLinks(entity.RoleAdmin))
	assert.False(t, access.CanListAllLinks(entity.RoleWorker))
	assert.False(t, access.CanListAllLinks(entity.RoleEmployer))
}

// Un rol desconocido nunca obtiene acceso: la variante es cerrada.
func TestDecide_RolDesconocido_SiempreDeny(t *testing.T) {
	ghost := entity.Requester{ID: "x-1", Role: entity.Role("ghost")}
	for _, op := range []access.Operation{
		access.OpReadAll, access.OpReadOne, access.OpCreate,
		access.OpUpdate, access.OpDelete, access.OpSearch,
	} {
		assert.Equal(t, access.Deny, access.Decide(access.ResourceResume, op, ghost, "x-1"))
		assert.Equal(t, access.Deny, access.Decide(access.ResourceVacancy, op, ghost, "x-1"))
	}
	assert.False(t, access.CanAccessLink(ghost, "x-1", "x-1"))
}
