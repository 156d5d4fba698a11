package routes

import (
	"github.com/InvForestal/IFN-Backend/src/controllers"
	"github.com/InvForestal/IFN-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupNotificacionRoutes(router *gin.Engine, service *services.NotificacionService) {
	controller := controllers.NewNotificacionController(service)

	notificacionGroup := router.Group("/api/notificaciones")
	{
		notificacionGroup.POST("/incidencia-mayor", controller.CrearNotificacionIncidencia)
		notificacionGroup.POST("/confirmar", controller.ConfirmarNotificacion)
		notificacionGroup.GET("/pendientes/:usuario", controller.GetNotificacionesPendientes)
	}
}
