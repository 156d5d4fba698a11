package models

import "time"

// Categorías de crecimiento derivadas del DAP
const (
	CategoriaBrinzales    = "Brinzales"
	CategoriaLatizales    = "Latizales"
	CategoriaFustal       = "Fustal"
	CategoriaFustalGrande = "Fustal grande"
)

// IndividuoArboreoModel is a single measured tree, located by azimuth and
// distance from a subplot reference point. Never updated after creation.
type IndividuoArboreoModel struct {
	ID                 int       `json:"id" gorm:"primaryKey;autoIncrement"`
	NombreConglomerado string    `json:"nombre_conglomerado" gorm:"column:nombre_conglomerado;type:varchar(100);not null;index"`
	Subparcela         int       `json:"subparcela" gorm:"not null"`
	Dap                float64   `json:"dap" gorm:"not null"`
	Azimut             float64   `json:"azimut" gorm:"not null"`
	Distancia          float64   `json:"distancia" gorm:"not null"`
	Categoria          string    `json:"categoria" gorm:"type:varchar(50);not null"`
	ImagenURL          *string   `json:"imagen_url" gorm:"column:imagen_url;type:text"`
	FechaRegistro      time.Time `json:"fecha_registro" gorm:"column:fecha_registro;not null"`
}

func (IndividuoArboreoModel) TableName() string { return "individuo_arboreo" }

// CategoriaPorDAP derives the growth-stage category from the diameter at
// breast height (cm). Boundary values belong to the upper bucket.
func CategoriaPorDAP(dap float64) string {
	switch {
	case dap < 10:
		return CategoriaBrinzales
	case dap < 30:
		return CategoriaLatizales
	case dap < 50:
		return CategoriaFustal
	default:
		return CategoriaFustalGrande
	}
}
