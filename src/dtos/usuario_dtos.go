package dtos

// ConglomeradoResumenDTO is the conglomerate block returned by the auth
// endpoints (the frontend keeps it as the active working plot).
type ConglomeradoResumenDTO struct {
	ID       int     `json:"id"`
	Nombre   string  `json:"nombre"`
	Latitud  float64 `json:"latitud"`
	Longitud float64 `json:"longitud"`
}
