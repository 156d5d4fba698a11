package models

// ConglomeradoModel represents a fixed-location forest sampling plot of the
// national inventory. Immutable after creation.
type ConglomeradoModel struct {
	IdConglomerado int     `json:"id_conglomerado" gorm:"column:id_conglomerado;primaryKey;autoIncrement"`
	Nombre         string  `json:"nombre" gorm:"type:varchar(100);uniqueIndex;not null"`
	Latitud        float64 `json:"latitud" gorm:"not null"`
	Longitud       float64 `json:"longitud" gorm:"not null"`
}

func (ConglomeradoModel) TableName() string { return "conglomerados" }
