package models

import "time"

// IncidenciaModel is a field incident report (mayor or menor). Major
// incidents additionally trigger the notification fan-out.
type IncidenciaModel struct {
	ID                 int       `json:"id" gorm:"primaryKey;autoIncrement"`
	NombreConglomerado string    `json:"nombre_conglomerado" gorm:"column:nombre_conglomerado;type:varchar(100);not null"`
	Categoria          string    `json:"categoria" gorm:"type:varchar(100);not null"`
	Descripcion        string    `json:"descripcion" gorm:"type:text;not null"`
	Fecha              time.Time `json:"fecha" gorm:"not null"`
}

func (IncidenciaModel) TableName() string { return "incidencias" }
