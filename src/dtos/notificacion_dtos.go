package dtos

import "time"

// NotificacionPendienteDTO is one unconfirmed notification as seen by the
// polling client.
type NotificacionPendienteDTO struct {
	ID                 int       `json:"id"`
	Tipo               string    `json:"tipo"`
	Categoria          string    `json:"categoria"`
	Descripcion        string    `json:"descripcion"`
	ConglomeradoID     int       `json:"conglomerado_id" gorm:"column:conglomerado_id"`
	ConglomeradoNombre string    `json:"conglomerado_nombre" gorm:"column:conglomerado_nombre"`
	UsuarioCreador     string    `json:"usuario_creador" gorm:"column:usuario_creador"`
	FechaCreacion      time.Time `json:"fecha_creacion" gorm:"column:fecha_creacion"`
}

// ResultadoNotificacionDTO summarizes a completed fan-out.
type ResultadoNotificacionDTO struct {
	NotificacionID      int    `json:"notificacion_id"`
	ConglomeradoNombre  string `json:"conglomerado_nombre"`
	UsuariosNotificados int    `json:"usuarios_notificados"`
}
