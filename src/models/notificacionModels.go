package models

import "time"

const TipoIncidenciaMayor = "incidencia_mayor"

// NotificacionModel is created exactly once per major incident report. Only
// the activa flag is ever read after creation; no flow sets it back to false.
type NotificacionModel struct {
	ID                 int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Tipo               string    `json:"tipo" gorm:"type:varchar(50);not null"`
	Categoria          string    `json:"categoria" gorm:"type:varchar(100);not null"`
	Descripcion        string    `json:"descripcion" gorm:"type:text;not null"`
	ConglomeradoID     int       `json:"conglomerado_id" gorm:"column:conglomerado_id;not null"`
	ConglomeradoNombre string    `json:"conglomerado_nombre" gorm:"column:conglomerado_nombre;type:varchar(100);not null"`
	UsuarioCreador     string    `json:"usuario_creador" gorm:"column:usuario_creador;type:varchar(100);not null"`
	Activa             bool      `json:"activa" gorm:"not null;default:true"`
	FechaCreacion      time.Time `json:"fecha_creacion" gorm:"column:fecha_creacion;not null"`
}

func (NotificacionModel) TableName() string { return "notificaciones" }

// NotificacionUsuarioModel is the per-member delivery record. One row per
// brigade member of the conglomerate (excluding the reporter) at creation
// time. Lifecycle: pending (confirmado=false) → confirmed, one-way.
type NotificacionUsuarioModel struct {
	ID                int        `json:"id" gorm:"primaryKey;autoIncrement"`
	NotificacionID    int        `json:"notificacion_id" gorm:"column:notificacion_id;not null;index"`
	Usuario           string     `json:"usuario" gorm:"type:varchar(100);not null;index"`
	Confirmado        bool       `json:"confirmado" gorm:"not null;default:false"`
	FechaConfirmacion *time.Time `json:"fecha_confirmacion" gorm:"column:fecha_confirmacion"`
}

func (NotificacionUsuarioModel) TableName() string { return "notificaciones_usuarios" }
