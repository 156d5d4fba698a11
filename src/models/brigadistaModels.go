package models

// Roles de brigadista
const (
	RolBrigadista    = "brigadista"
	RolJefeDeBrigada = "jefe de brigada"
	RolBotanico      = "botanico"
)

type BrigadistaModel struct {
	IdBrigadista   int                `json:"id_brigadista" gorm:"column:id_brigadista;primaryKey;autoIncrement"`
	Usuario        string             `json:"usuario" gorm:"type:varchar(100);uniqueIndex;not null"`
	Contrasena     string             `json:"-" gorm:"column:contrasena;type:varchar(100);not null"`
	Rol            string             `json:"rol" gorm:"type:varchar(50);not null"`
	ConglomeradoID *int               `json:"conglomerado_id" gorm:"column:conglomerado_id"`
	Conglomerado   *ConglomeradoModel `json:"conglomerado,omitempty" gorm:"foreignKey:ConglomeradoID;references:IdConglomerado"`
}

func (BrigadistaModel) TableName() string { return "brigadistas" }
