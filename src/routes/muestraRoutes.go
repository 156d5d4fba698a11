package routes

import (
	"github.com/InvForestal/IFN-Backend/src/controllers"
	"github.com/InvForestal/IFN-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupMuestraRoutes(router *gin.Engine, service *services.MuestraService) {
	controller := controllers.NewMuestraController(service)

	muestraGroup := router.Group("/api/muestras")
	{
		muestraGroup.POST("", controller.CreateMuestra)
	}
}
