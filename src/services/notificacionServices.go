package services

import (
	"errors"
	"log"
	"time"

	"github.com/InvForestal/IFN-Backend/src/dtos"
	"github.com/InvForestal/IFN-Backend/src/models"
	"gorm.io/gorm"
)

type NotificacionService struct {
	db *gorm.DB
}

func NewNotificacionService(db *gorm.DB) *NotificacionService {
	return &NotificacionService{db: db}
}

// CrearNotificacionIncidencia fans out a major-incident alert to every other
// brigade member of the conglomerate and tracks one delivery record each.
//
// The four steps run sequentially without a transaction: if the per-member
// inserts fail after the notification row was created, the notification
// stays with a partial delivery list.
func (s *NotificacionService) CrearNotificacionIncidencia(categoria, descripcion string, conglomeradoID int, usuarioCreador string) (*dtos.ResultadoNotificacionDTO, error) {
	// 1. Obtener información del conglomerado
	var conglomerado models.ConglomeradoModel
	if err := s.db.First(&conglomerado, "id_conglomerado = ?", conglomeradoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConglomeradoNoEncontrado
		}
		return nil, err
	}

	// 2. Buscar brigadistas del conglomerado, excluyendo al creador
	var brigadistas []models.BrigadistaModel
	err := s.db.
		Where("conglomerado_id = ? AND usuario <> ?", conglomeradoID, usuarioCreador).
		Find(&brigadistas).Error
	if err != nil {
		return nil, err
	}

	if len(brigadistas) == 0 {
		return nil, ErrSinBrigadistas
	}

	// 3. Crear la notificación
	notificacion := models.NotificacionModel{
		Tipo:               models.TipoIncidenciaMayor,
		Categoria:          categoria,
		Descripcion:        descripcion,
		ConglomeradoID:     conglomeradoID,
		ConglomeradoNombre: conglomerado.Nombre,
		UsuarioCreador:     usuarioCreador,
		Activa:             true,
		FechaCreacion:      time.Now(),
	}
	if err := s.db.Create(&notificacion).Error; err != nil {
		return nil, err
	}

	// 4. Crear un registro de entrega por cada brigadista
	registros := make([]models.NotificacionUsuarioModel, 0, len(brigadistas))
	for _, brigadista := range brigadistas {
		registros = append(registros, models.NotificacionUsuarioModel{
			NotificacionID: notificacion.ID,
			Usuario:        brigadista.Usuario,
			Confirmado:     false,
		})
	}
	if err := s.db.Create(&registros).Error; err != nil {
		// La notificación principal ya existe; se registra y no se compensa.
		log.Printf("[NOTIFICACIONES] Error creando registros de entrega para notificación %d: %v", notificacion.ID, err)
	}

	return &dtos.ResultadoNotificacionDTO{
		NotificacionID:      notificacion.ID,
		ConglomeradoNombre:  conglomerado.Nombre,
		UsuariosNotificados: len(brigadistas),
	}, nil
}

// ConfirmarNotificacion marks the (notificacion, usuario) delivery as read.
// Matching zero rows is not an error.
func (s *NotificacionService) ConfirmarNotificacion(notificacionID int, usuario string) error {
	now := time.Now()
	return s.db.Model(&models.NotificacionUsuarioModel{}).
		Where("notificacion_id = ? AND usuario = ?", notificacionID, usuario).
		Updates(map[string]interface{}{
			"confirmado":         true,
			"fecha_confirmacion": now,
		}).Error
}

// GetNotificacionesPendientes returns the unconfirmed, active notifications
// of a user, most recent first. The polling clients call this every 30s.
func (s *NotificacionService) GetNotificacionesPendientes(usuario string) ([]dtos.NotificacionPendienteDTO, error) {
	notificaciones := []dtos.NotificacionPendienteDTO{}
	err := s.db.Table("notificaciones_usuarios AS nu").
		Select(`n.id,
			n.tipo,
			n.categoria,
			n.descripcion,
			n.conglomerado_id,
			n.conglomerado_nombre,
			n.usuario_creador,
			n.fecha_creacion`).
		Joins("JOIN notificaciones n ON n.id = nu.notificacion_id").
		Where("nu.usuario = ? AND nu.confirmado = ? AND n.activa = ?", usuario, false, true).
		Order("n.fecha_creacion DESC").
		Scan(&notificaciones).Error
	if err != nil {
		return nil, err
	}
	return notificaciones, nil
}
