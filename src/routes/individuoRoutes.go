package routes

import (
	"github.com/InvForestal/IFN-Backend/src/controllers"
	"github.com/InvForestal/IFN-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupIndividuoRoutes(router *gin.Engine, service *services.IndividuoService) {
	controller := controllers.NewIndividuoController(service)

	individuoGroup := router.Group("/api/individuos")
	{
		individuoGroup.POST("", controller.CreateIndividuo)
		individuoGroup.POST("/multiple", controller.CreateIndividuosMultiple)
		individuoGroup.POST("/importar", controller.ImportIndividuos)
		individuoGroup.GET("", controller.GetIndividuos)
	}
}
