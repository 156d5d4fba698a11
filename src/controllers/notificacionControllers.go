package controllers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/InvForestal/IFN-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type NotificacionController struct {
	service *services.NotificacionService
}

func NewNotificacionController(service *services.NotificacionService) *NotificacionController {
	return &NotificacionController{service: service}
}

type incidenciaMayorRequest struct {
	Categoria      string `json:"categoria"`
	Descripcion    string `json:"descripcion"`
	ConglomeradoID int    `json:"conglomerado_id"`
	UsuarioCreador string `json:"usuario_creador"`
}

type confirmarRequest struct {
	NotificacionID int    `json:"notificacion_id"`
	Usuario        string `json:"usuario"`
}

// CrearNotificacionIncidencia fans out a major-incident alert
func (nc *NotificacionController) CrearNotificacionIncidencia(c *gin.Context) {
	var req incidenciaMayorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	if strings.TrimSpace(req.Categoria) == "" || strings.TrimSpace(req.Descripcion) == "" ||
		req.ConglomeradoID == 0 || strings.TrimSpace(req.UsuarioCreador) == "" {
		c.JSON(400, gin.H{
			"success": false,
			"message": "Todos los campos son requeridos: categoria, descripcion, conglomerado_id, usuario_creador",
		})
		return
	}

	resultado, err := nc.service.CrearNotificacionIncidencia(req.Categoria, req.Descripcion, req.ConglomeradoID, req.UsuarioCreador)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrConglomeradoNoEncontrado):
			c.JSON(404, gin.H{"success": false, "message": "Conglomerado no encontrado"})
		case errors.Is(err, services.ErrSinBrigadistas):
			c.JSON(400, gin.H{"success": false, "message": "No hay otros brigadistas en este conglomerado para notificar"})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Error interno del servidor al crear notificación"})
		}
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": fmt.Sprintf("Notificación enviada a %d brigadistas del conglomerado %s",
			resultado.UsuariosNotificados, resultado.ConglomeradoNombre),
		"data": resultado,
	})
}

// ConfirmarNotificacion marks one delivery as read
func (nc *NotificacionController) ConfirmarNotificacion(c *gin.Context) {
	var req confirmarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	if req.NotificacionID == 0 || strings.TrimSpace(req.Usuario) == "" {
		c.JSON(400, gin.H{"success": false, "message": "notificacion_id y usuario son requeridos"})
		return
	}

	if err := nc.service.ConfirmarNotificacion(req.NotificacionID, req.Usuario); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Error al confirmar notificación"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Notificación confirmada exitosamente"})
}

// GetNotificacionesPendientes serves the 30-second polling of the clients
func (nc *NotificacionController) GetNotificacionesPendientes(c *gin.Context) {
	usuario := strings.TrimSpace(c.Param("usuario"))
	if usuario == "" {
		c.JSON(400, gin.H{"success": false, "message": "usuario es requerido"})
		return
	}

	notificaciones, err := nc.service.GetNotificacionesPendientes(usuario)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Error al obtener notificaciones"})
		return
	}

	c.JSON(200, gin.H{"success": true, "data": notificaciones})
}
