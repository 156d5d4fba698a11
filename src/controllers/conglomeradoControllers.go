package controllers

import (
	"strconv"
	"strings"

	"github.com/InvForestal/IFN-Backend/src/models"
	"github.com/InvForestal/IFN-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ConglomeradoController struct {
	service *services.ConglomeradoService
}

func NewConglomeradoController(service *services.ConglomeradoService) *ConglomeradoController {
	return &ConglomeradoController{service: service}
}

// GetConglomerados handles GET requests to retrieve all conglomerates
func (cc *ConglomeradoController) GetConglomerados(c *gin.Context) {
	conglomerados, err := cc.service.GetAllConglomerados()
	if err != nil {
		c.JSON(500, gin.H{"error": "Error interno del servidor"})
		return
	}
	c.JSON(200, conglomerados)
}

// GetConglomeradosPaginados feeds the picker modal of the frontend
func (cc *ConglomeradoController) GetConglomeradosPaginados(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	search := c.Query("search")

	pagina, err := cc.service.GetConglomeradosPaginados(page, limit, search)
	if err != nil {
		c.JSON(500, gin.H{
			"success": false,
			"message": "Error al obtener conglomerados de la base de datos",
		})
		return
	}

	c.JSON(200, gin.H{
		"success":    true,
		"data":       pagina.Data,
		"total":      pagina.Total,
		"page":       pagina.Page,
		"totalPages": pagina.TotalPages,
		"hasMore":    pagina.HasMore,
	})
}

// CreateConglomerado registers a new sampling plot from the field form
func (cc *ConglomeradoController) CreateConglomerado(c *gin.Context) {
	var conglomerado models.ConglomeradoModel
	if err := c.ShouldBindJSON(&conglomerado); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	if strings.TrimSpace(conglomerado.Nombre) == "" {
		c.JSON(400, gin.H{"success": false, "message": "El nombre es obligatorio"})
		return
	}

	if err := cc.service.CreateConglomerado(&conglomerado); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Error al registrar el conglomerado"})
		return
	}

	c.JSON(201, gin.H{"success": true, "data": conglomerado})
}
