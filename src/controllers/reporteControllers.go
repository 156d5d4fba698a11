package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/InvForestal/IFN-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ReporteController struct {
	service *services.ReporteService
}

func NewReporteController(service *services.ReporteService) *ReporteController {
	return &ReporteController{service: service}
}

// GetReporteConglomerado returns the read-only summary for the report view
func (rc *ReporteController) GetReporteConglomerado(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id_conglomerado"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "id_conglomerado debe ser un entero"})
		return
	}

	reporte, err := rc.service.GetReporteConglomerado(id)
	if err != nil {
		if errors.Is(err, services.ErrConglomeradoNoEncontrado) {
			c.JSON(404, gin.H{"success": false, "message": "Conglomerado no encontrado"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Error interno del servidor"})
		return
	}

	c.JSON(200, gin.H{"success": true, "data": reporte})
}

// ExportReporteExcel streams the summary as an xlsx download
func (rc *ReporteController) ExportReporteExcel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id_conglomerado"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "id_conglomerado debe ser un entero"})
		return
	}

	f, err := rc.service.ExportReporteExcel(id)
	if err != nil {
		if errors.Is(err, services.ErrConglomeradoNoEncontrado) {
			c.JSON(404, gin.H{"success": false, "message": "Conglomerado no encontrado"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Error generando el reporte"})
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="reporte_conglomerado_%d.xlsx"`, id))
	if err := f.Write(c.Writer); err != nil {
		// La respuesta ya empezó; solo queda registrarlo
		c.Error(err)
	}
}
