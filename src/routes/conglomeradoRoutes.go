package routes

import (
	"github.com/InvForestal/IFN-Backend/src/controllers"
	"github.com/InvForestal/IFN-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupConglomeradoRoutes(router *gin.Engine, service *services.ConglomeradoService) {
	controller := controllers.NewConglomeradoController(service)

	conglomeradoGroup := router.Group("/api/conglomerados")
	{
		conglomeradoGroup.GET("", controller.GetConglomerados)
		conglomeradoGroup.GET("/paginados", controller.GetConglomeradosPaginados)
		conglomeradoGroup.POST("", controller.CreateConglomerado)
	}
}
