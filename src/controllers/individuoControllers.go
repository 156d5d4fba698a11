package controllers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/InvForestal/IFN-Backend/src/models"
	"github.com/InvForestal/IFN-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type IndividuoController struct {
	service *services.IndividuoService
}

func NewIndividuoController(service *services.IndividuoService) *IndividuoController {
	return &IndividuoController{service: service}
}

// leerImagen reads the optional multipart image into memory (the router caps
// the request at 10MB).
func leerImagen(c *gin.Context, campo string) (data []byte, filename, contentType string) {
	file, header, err := c.Request.FormFile(campo)
	if err != nil {
		return nil, "", ""
	}
	defer file.Close()

	data, err = io.ReadAll(file)
	if err != nil {
		return nil, "", ""
	}
	return data, header.Filename, header.Header.Get("Content-Type")
}

// CreateIndividuo registers one measured tree from the multipart field form
func (ic *IndividuoController) CreateIndividuo(c *gin.Context) {
	nombreConglomerado := strings.TrimSpace(c.PostForm("nombreConglomerado"))
	subparcelaStr := strings.TrimSpace(c.PostForm("subparcela"))
	dapStr := strings.TrimSpace(c.PostForm("dap"))
	azimutStr := strings.TrimSpace(c.PostForm("azimut"))
	distanciaStr := strings.TrimSpace(c.PostForm("distancia"))

	if nombreConglomerado == "" || subparcelaStr == "" || dapStr == "" || azimutStr == "" || distanciaStr == "" {
		c.JSON(400, gin.H{
			"success": false,
			"message": "Los campos nombreConglomerado, subparcela, dap, azimut y distancia son obligatorios",
		})
		return
	}

	subparcela, err := strconv.Atoi(subparcelaStr)
	if err != nil || subparcela < 1 || subparcela > 4 {
		c.JSON(400, gin.H{"success": false, "message": "subparcela debe ser un entero entre 1 y 4"})
		return
	}
	dap, err := strconv.ParseFloat(dapStr, 64)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "dap inválido"})
		return
	}
	azimut, err := strconv.ParseFloat(azimutStr, 64)
	if err != nil || azimut < 0 || azimut > 360 {
		c.JSON(400, gin.H{"success": false, "message": "azimut debe estar entre 0 y 360"})
		return
	}
	distancia, err := strconv.ParseFloat(distanciaStr, 64)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "distancia inválida"})
		return
	}

	imagen, filename, contentType := leerImagen(c, "imagen")

	individuo := models.IndividuoArboreoModel{
		NombreConglomerado: nombreConglomerado,
		Subparcela:         subparcela,
		Dap:                dap,
		Azimut:             azimut,
		Distancia:          distancia,
	}

	if err := ic.service.CreateIndividuo(c.Request.Context(), &individuo, imagen, filename, contentType); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Error al registrar individuo"})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Individuo arbóreo registrado correctamente",
		"data":    individuo,
	})
}

// CreateIndividuosMultiple registers a batch of trees in one request
func (ic *IndividuoController) CreateIndividuosMultiple(c *gin.Context) {
	var individuos []models.IndividuoArboreoModel
	if err := c.ShouldBindJSON(&individuos); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}
	if len(individuos) == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Se requiere al menos un individuo"})
		return
	}
	for i, individuo := range individuos {
		if strings.TrimSpace(individuo.NombreConglomerado) == "" {
			c.JSON(400, gin.H{"success": false, "message": "nombre_conglomerado es obligatorio en cada individuo"})
			return
		}
		if individuo.Subparcela < 1 || individuo.Subparcela > 4 {
			c.JSON(400, gin.H{"success": false, "message": fmt.Sprintf("Individuo %d: subparcela debe ser un entero entre 1 y 4", i+1)})
			return
		}
		if individuo.Azimut < 0 || individuo.Azimut > 360 {
			c.JSON(400, gin.H{"success": false, "message": fmt.Sprintf("Individuo %d: azimut debe estar entre 0 y 360", i+1)})
			return
		}
	}

	creados, err := ic.service.CreateIndividuosMultiple(individuos)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Error al registrar individuos"})
		return
	}

	c.JSON(201, gin.H{"success": true, "data": creados, "total": len(creados)})
}

// ImportIndividuos bulk-loads trees from a field-capture spreadsheet
func (ic *IndividuoController) ImportIndividuos(c *gin.Context) {
	file, _, err := c.Request.FormFile("archivo")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Se requiere un archivo Excel en el campo 'archivo'"})
		return
	}
	defer file.Close()

	result, err := ic.service.ImportIndividuosFromExcel(c.Request.Context(), file)
	if err != nil {
		if result != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error(), "errors": result.Errors})
			return
		}
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"success":  true,
		"imported": result.Imported,
		"errors":   result.Errors,
	})
}

// GetIndividuos lists the trees of one subplot
func (ic *IndividuoController) GetIndividuos(c *gin.Context) {
	conglomerado := c.Query("conglomerado")
	subparcelaStr := c.Query("subparcela")

	if conglomerado == "" || subparcelaStr == "" {
		c.JSON(400, gin.H{"success": false, "message": "Faltan parámetros: conglomerado y subparcela son requeridos"})
		return
	}

	subparcela, err := strconv.Atoi(subparcelaStr)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "subparcela debe ser un entero"})
		return
	}

	individuos, err := ic.service.GetIndividuos(conglomerado, subparcela)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Error al traer individuos"})
		return
	}

	c.JSON(200, gin.H{"success": true, "data": individuos, "total": len(individuos)})
}
