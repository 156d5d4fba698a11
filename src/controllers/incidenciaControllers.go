package controllers

import (
	"strings"

	"github.com/InvForestal/IFN-Backend/src/models"
	"github.com/InvForestal/IFN-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type IncidenciaController struct {
	service *services.IncidenciaService
}

func NewIncidenciaController(service *services.IncidenciaService) *IncidenciaController {
	return &IncidenciaController{service: service}
}

// CreateIncidencia registers a field incident report
func (ic *IncidenciaController) CreateIncidencia(c *gin.Context) {
	var incidencia models.IncidenciaModel
	if err := c.ShouldBindJSON(&incidencia); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	if strings.TrimSpace(incidencia.NombreConglomerado) == "" ||
		strings.TrimSpace(incidencia.Categoria) == "" ||
		strings.TrimSpace(incidencia.Descripcion) == "" {
		c.JSON(400, gin.H{"success": false, "message": "Todos los campos son obligatorios"})
		return
	}

	if err := ic.service.CreateIncidencia(&incidencia); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Error al registrar la incidencia"})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Incidencia creada correctamente",
		"data":    incidencia,
	})
}

// GetIncidencias lists every registered incident, most recent first
func (ic *IncidenciaController) GetIncidencias(c *gin.Context) {
	incidencias, err := ic.service.GetAllIncidencias()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Error al obtener incidencias"})
		return
	}
	c.JSON(200, gin.H{"success": true, "data": incidencias})
}
