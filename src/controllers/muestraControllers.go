package controllers

import (
	"strconv"
	"strings"

	"github.com/InvForestal/IFN-Backend/src/models"
	"github.com/InvForestal/IFN-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type MuestraController struct {
	service *services.MuestraService
}

func NewMuestraController(service *services.MuestraService) *MuestraController {
	return &MuestraController{service: service}
}

// CreateMuestra registers a botanical sample from the multipart field form
func (mc *MuestraController) CreateMuestra(c *gin.Context) {
	nombreConglomerado := strings.TrimSpace(c.PostForm("nombreConglomerado"))
	categoria := strings.TrimSpace(c.PostForm("categoria"))
	idIndividuoStr := strings.TrimSpace(c.PostForm("idIndividuo"))
	subparcelaStr := strings.TrimSpace(c.PostForm("subparcela"))

	if nombreConglomerado == "" || categoria == "" || idIndividuoStr == "" {
		c.JSON(400, gin.H{
			"success": false,
			"message": "Los campos nombreConglomerado, categoria e idIndividuo son obligatorios",
		})
		return
	}

	idIndividuo, err := strconv.Atoi(idIndividuoStr)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "idIndividuo debe ser un entero"})
		return
	}

	// subparcela opcional: si viene, debe ser 1..4
	subparcela := 0
	if subparcelaStr != "" {
		subparcela, err = strconv.Atoi(subparcelaStr)
		if err != nil || subparcela < 1 || subparcela > 4 {
			c.JSON(400, gin.H{"success": false, "message": "subparcela debe ser un entero entre 1 y 4"})
			return
		}
	}

	imagen, filename, contentType := leerImagen(c, "imagen")

	muestra := models.MuestraModel{
		IdIndividuo:        idIndividuo,
		NombreConglomerado: nombreConglomerado,
		Subparcela:         subparcela,
		TipoMuestra:        categoria,
	}

	if err := mc.service.CreateMuestra(c.Request.Context(), &muestra, imagen, filename, contentType); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Error al registrar muestra"})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Muestra registrada correctamente",
		"data":    muestra,
	})
}
