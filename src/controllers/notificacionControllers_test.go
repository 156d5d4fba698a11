package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/InvForestal/IFN-Backend/src/middleware"
	"github.com/InvForestal/IFN-Backend/src/models"
	"github.com/InvForestal/IFN-Backend/src/routes"
	"github.com/InvForestal/IFN-Backend/src/services"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.SetSecretKey("clave-de-prueba")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.ConglomeradoModel{},
		&models.BrigadistaModel{},
		&models.SubparcelaModel{},
		&models.IndividuoArboreoModel{},
		&models.MuestraModel{},
		&models.NotificacionModel{},
		&models.NotificacionUsuarioModel{},
		&models.IncidenciaModel{},
	))

	router := gin.New()
	routes.SetupConglomeradoRoutes(router, services.NewConglomeradoService(db))
	routes.SetupUsuarioRoutes(router, services.NewUsuarioService(db))
	routes.SetupIndividuoRoutes(router, services.NewIndividuoService(db, nil))
	routes.SetupMuestraRoutes(router, services.NewMuestraService(db, nil))
	routes.SetupNotificacionRoutes(router, services.NewNotificacionService(db))
	routes.SetupReporteRoutes(router, services.NewReporteService(db))

	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var respuesta map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respuesta))
	return respuesta
}

func TestNotificaciones_CamposFaltantes(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/notificaciones/incidencia-mayor", gin.H{
		"categoria": "Derrumbe",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	respuesta := decode(t, w)
	assert.Equal(t, false, respuesta["success"])
}

func TestNotificaciones_ConglomeradoInexistente(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/notificaciones/incidencia-mayor", gin.H{
		"categoria":       "Derrumbe",
		"descripcion":     "Bloqueo",
		"conglomerado_id": 999,
		"usuario_creador": "alice",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotificaciones_FlujoCompleto(t *testing.T) {
	router, db := setupRouter(t)

	// Conglomerado Sector1 con tres brigadistas asignados
	w := doJSON(t, router, http.MethodPost, "/api/conglomerados", gin.H{
		"nombre": "Sector1", "latitud": 4.0, "longitud": -74.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var conglomerado models.ConglomeradoModel
	require.NoError(t, db.First(&conglomerado, "nombre = ?", "Sector1").Error)

	for _, usuario := range []string{"alice", "bob", "carol"} {
		require.NoError(t, db.Create(&models.BrigadistaModel{
			Usuario:        usuario,
			Contrasena:     "x",
			Rol:            models.RolBrigadista,
			ConglomeradoID: &conglomerado.IdConglomerado,
		}).Error)
	}

	// alice reporta la incidencia mayor
	w = doJSON(t, router, http.MethodPost, "/api/notificaciones/incidencia-mayor", gin.H{
		"categoria":       "Derrumbe",
		"descripcion":     "Landslide blocking path",
		"conglomerado_id": conglomerado.IdConglomerado,
		"usuario_creador": "alice",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	respuesta := decode(t, w)
	data := respuesta["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["usuarios_notificados"])
	notificacionID := int(data["notificacion_id"].(float64))

	// bob tiene una pendiente con los datos de la incidencia
	w = doJSON(t, router, http.MethodGet, "/api/notificaciones/pendientes/bob", nil)
	require.Equal(t, http.StatusOK, w.Code)
	respuesta = decode(t, w)
	pendientes := respuesta["data"].([]interface{})
	require.Len(t, pendientes, 1)
	primera := pendientes[0].(map[string]interface{})
	assert.Equal(t, "Derrumbe", primera["categoria"])
	assert.Equal(t, "Landslide blocking path", primera["descripcion"])

	// bob confirma
	w = doJSON(t, router, http.MethodPost, "/api/notificaciones/confirmar", gin.H{
		"notificacion_id": notificacionID,
		"usuario":         "bob",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// la lista de bob queda vacía, la de carol no cambia
	w = doJSON(t, router, http.MethodGet, "/api/notificaciones/pendientes/bob", nil)
	require.Equal(t, http.StatusOK, w.Code)
	respuesta = decode(t, w)
	assert.Empty(t, respuesta["data"])

	w = doJSON(t, router, http.MethodGet, "/api/notificaciones/pendientes/carol", nil)
	require.Equal(t, http.StatusOK, w.Code)
	respuesta = decode(t, w)
	assert.Len(t, respuesta["data"], 1)
}

func TestNotificaciones_SinOtrosBrigadistas(t *testing.T) {
	router, db := setupRouter(t)

	conglomerado := models.ConglomeradoModel{Nombre: "Solo", Latitud: 1, Longitud: 1}
	require.NoError(t, db.Create(&conglomerado).Error)
	require.NoError(t, db.Create(&models.BrigadistaModel{
		Usuario: "alice", Contrasena: "x", Rol: models.RolBrigadista,
		ConglomeradoID: &conglomerado.IdConglomerado,
	}).Error)

	w := doJSON(t, router, http.MethodPost, "/api/notificaciones/incidencia-mayor", gin.H{
		"categoria":       "Derrumbe",
		"descripcion":     "Bloqueo",
		"conglomerado_id": conglomerado.IdConglomerado,
		"usuario_creador": "alice",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var total int64
	require.NoError(t, db.Model(&models.NotificacionModel{}).Count(&total).Error)
	assert.Zero(t, total)
}

func TestLoginYListadoProtegido(t *testing.T) {
	router, db := setupRouter(t)

	servicio := services.NewUsuarioService(db)
	_, err := servicio.CreateBrigadista(&models.BrigadistaModel{
		Usuario: "maria", Contrasena: "secreta123", Rol: models.RolJefeDeBrigada,
	})
	require.NoError(t, err)

	// Sin token, el listado está protegido
	w := doJSON(t, router, http.MethodGet, "/usuarios", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Login correcto entrega token
	w = doJSON(t, router, http.MethodPost, "/usuarios", gin.H{
		"usuario": "maria", "contrasena": "secreta123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	respuesta := decode(t, w)
	assert.Equal(t, true, respuesta["success"])
	assert.Equal(t, "jefe de brigada", respuesta["rol"])
	token := respuesta["token"].(string)
	require.NotEmpty(t, token)

	// Con token, el listado responde
	req := httptest.NewRequest(http.MethodGet, "/usuarios", nil)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusOK, w2.Code)

	// Contraseña incorrecta
	w = doJSON(t, router, http.MethodPost, "/usuarios", gin.H{
		"usuario": "maria", "contrasena": "otra",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReporte_NoEncontrado(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/reportes/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReporte_RespuestaCompleta(t *testing.T) {
	router, db := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/conglomerados", gin.H{
		"nombre": "SectorHTTP", "latitud": 4.0, "longitud": -74.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var conglomerado models.ConglomeradoModel
	require.NoError(t, db.First(&conglomerado, "nombre = ?", "SectorHTTP").Error)

	require.NoError(t, db.Create(&models.IndividuoArboreoModel{
		NombreConglomerado: "SectorHTTP", Subparcela: 1, Dap: 15,
		Azimut: 90, Distancia: 2, Categoria: models.CategoriaPorDAP(15),
	}).Error)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/reportes/%d", conglomerado.IdConglomerado), nil)
	require.Equal(t, http.StatusOK, w.Code)
	respuesta := decode(t, w)
	data := respuesta["data"].(map[string]interface{})
	assert.Equal(t, "SectorHTTP", data["conglomeradoNombre"])
	assert.Equal(t, models.CategoriaLatizales, data["categoriaMasFrecuente"])
	// El POST de conglomerados crea las cuatro subparcelas
	assert.Len(t, data["subparcelas"], 4)
}
