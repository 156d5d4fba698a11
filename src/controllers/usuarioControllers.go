package controllers

import (
	"errors"
	"strings"

	"github.com/InvForestal/IFN-Backend/src/dtos"
	"github.com/InvForestal/IFN-Backend/src/models"
	"github.com/InvForestal/IFN-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type UsuarioController struct {
	service *services.UsuarioService
}

func NewUsuarioController(service *services.UsuarioService) *UsuarioController {
	return &UsuarioController{service: service}
}

type loginRequest struct {
	Usuario    string `json:"usuario"`
	Contrasena string `json:"contrasena"`
}

type cambioConglomeradoRequest struct {
	Usuario        string `json:"usuario"`
	ConglomeradoID int    `json:"conglomerado_id"`
}

func conglomeradoResumen(brigadista *models.BrigadistaModel) *dtos.ConglomeradoResumenDTO {
	if brigadista.Conglomerado == nil {
		return nil
	}
	return &dtos.ConglomeradoResumenDTO{
		ID:       brigadista.Conglomerado.IdConglomerado,
		Nombre:   brigadista.Conglomerado.Nombre,
		Latitud:  brigadista.Conglomerado.Latitud,
		Longitud: brigadista.Conglomerado.Longitud,
	}
}

// Login authenticates a brigade member and issues a bearer token
func (uc *UsuarioController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	if strings.TrimSpace(req.Usuario) == "" || strings.TrimSpace(req.Contrasena) == "" {
		c.JSON(400, gin.H{"success": false, "message": "Usuario y contraseña son requeridos"})
		return
	}

	brigadista, token, err := uc.service.AuthenticateBrigadista(req.Usuario, req.Contrasena)
	if err != nil {
		if errors.Is(err, services.ErrCredencialesInvalidas) {
			c.JSON(401, gin.H{"success": false, "message": "Usuario o contraseña incorrectos"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Error interno del servidor"})
		return
	}

	c.JSON(200, gin.H{
		"success":       true,
		"id_brigadista": brigadista.IdBrigadista,
		"usuario":       brigadista.Usuario,
		"rol":           brigadista.Rol,
		"conglomerado":  conglomeradoResumen(brigadista),
		"token":         token,
		"message":       "Login exitoso",
	})
}

// UpdateConglomerado reassigns the member to another conglomerate
func (uc *UsuarioController) UpdateConglomerado(c *gin.Context) {
	var req cambioConglomeradoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	if strings.TrimSpace(req.Usuario) == "" || req.ConglomeradoID == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Usuario y conglomerado_id son requeridos"})
		return
	}

	brigadista, err := uc.service.UpdateConglomerado(req.Usuario, req.ConglomeradoID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Error al actualizar conglomerado en la base de datos"})
		return
	}

	c.JSON(200, gin.H{
		"success":      true,
		"usuario":      brigadista.Usuario,
		"rol":          brigadista.Rol,
		"conglomerado": conglomeradoResumen(brigadista),
		"message":      "Conglomerado actualizado correctamente",
	})
}

// GetUsuarios lists all accounts (protected, for the brigade chief views)
func (uc *UsuarioController) GetUsuarios(c *gin.Context) {
	brigadistas, err := uc.service.GetAllBrigadistas()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Error al obtener usuarios"})
		return
	}
	c.JSON(200, gin.H{"success": true, "data": brigadistas})
}
