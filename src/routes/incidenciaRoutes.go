package routes

import (
	"github.com/InvForestal/IFN-Backend/src/controllers"
	"github.com/InvForestal/IFN-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupIncidenciaRoutes(router *gin.Engine, service *services.IncidenciaService) {
	controller := controllers.NewIncidenciaController(service)

	incidenciaGroup := router.Group("/api/incidencias")
	{
		incidenciaGroup.POST("", controller.CreateIncidencia)
		incidenciaGroup.GET("", controller.GetIncidencias)
	}
}
