package routes

import (
	"github.com/InvForestal/IFN-Backend/src/controllers"
	"github.com/InvForestal/IFN-Backend/src/middleware"
	"github.com/InvForestal/IFN-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupUsuarioRoutes(router *gin.Engine, service *services.UsuarioService) {
	controller := controllers.NewUsuarioController(service)

	usuarioGroup := router.Group("/usuarios")
	{
		// Login
		usuarioGroup.POST("", controller.Login)

		// Cambio de conglomerado asignado
		usuarioGroup.PUT("/conglomerado", controller.UpdateConglomerado)

		// Listado protegido
		usuarioGroup.GET("", middleware.AuthMiddleware(), controller.GetUsuarios)
	}
}
