package routes

import (
	"github.com/InvForestal/IFN-Backend/src/controllers"
	"github.com/InvForestal/IFN-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupReporteRoutes(router *gin.Engine, service *services.ReporteService) {
	controller := controllers.NewReporteController(service)

	reporteGroup := router.Group("/api/reportes")
	{
		reporteGroup.GET("/:id_conglomerado", controller.GetReporteConglomerado)
		reporteGroup.GET("/:id_conglomerado/excel", controller.ExportReporteExcel)
	}
}
