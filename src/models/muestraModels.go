package models

import "time"

// MuestraModel is a physical/botanical sample (leaf, bark, fruit, etc.)
// collected from a registered individual. Keyed by id_individuo; the
// conglomerate name and subplot are kept denormalized for the report views.
type MuestraModel struct {
	ID                 int       `json:"id" gorm:"primaryKey;autoIncrement"`
	IdIndividuo        int       `json:"id_individuo" gorm:"column:id_individuo;not null;index"`
	NombreConglomerado string    `json:"nombre_conglomerado" gorm:"column:nombre_conglomerado;type:varchar(100);not null"`
	Subparcela         int       `json:"subparcela" gorm:"not null"`
	TipoMuestra        string    `json:"tipo_muestra" gorm:"column:tipo_muestra;type:varchar(100);not null"`
	ImagenURL          *string   `json:"imagen_url" gorm:"column:imagen_url;type:text"`
	FechaRegistro      time.Time `json:"fecha_registro" gorm:"column:fecha_registro;not null"`
}

func (MuestraModel) TableName() string { return "muestra" }
