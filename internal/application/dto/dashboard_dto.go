package dto

// DashboardStats contadores del período según el rol.
type DashboardStats struct {
	Today     int `json:"today,omitempty"`      // admin, employer
	LastWeek  int `json:"last_week,omitempty"`  // admin
	ThisMonth int `json:"this_month,omitempty"` // worker
}

// DashboardResponse resumen por rol de la actividad de links.
//
// admin:    Total = links del sistema, Recent = 10 más recientes.
// worker:   Total = postulaciones propias, Recent = 5 más recientes.
// employer: Total = postulaciones recibidas, Recent = 5 más recientes.
type DashboardResponse struct {
	Role   string         `json:"role"`
	Total  int            `json:"total"`
	Recent []LinkResponse `json:"recent"`
	Stats  DashboardStats `json:"stats"`
}
