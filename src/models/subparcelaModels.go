package models

type SubparcelaModel struct {
	ID               int `json:"id" gorm:"primaryKey;autoIncrement"`
	IdConglomerado   int `json:"id_conglomerado" gorm:"column:id_conglomerado;not null;index"`
	NumeroSubparcela int `json:"numero_subparcela" gorm:"column:numero_subparcela;not null"`
}

func (SubparcelaModel) TableName() string { return "subparcela" }
