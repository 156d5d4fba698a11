package services

import (
	"testing"

	"github.com/InvForestal/IFN-Backend/src/middleware"
	"github.com/InvForestal/IFN-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateBrigadista_HasheaContrasena(t *testing.T) {
	db := setupTestDB(t)
	service := NewUsuarioService(db)

	brigadista, err := service.CreateBrigadista(&models.BrigadistaModel{
		Usuario:    "maria",
		Contrasena: "secreta123",
		Rol:        models.RolBotanico,
	})
	require.NoError(t, err)

	assert.NotEqual(t, "secreta123", brigadista.Contrasena)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(brigadista.Contrasena), []byte("secreta123")))
}

func TestAuthenticateBrigadista(t *testing.T) {
	db := setupTestDB(t)
	middleware.SetSecretKey("clave-de-prueba")
	service := NewUsuarioService(db)

	conglomerado := crearConglomerado(t, db, "SectorLogin", 4.0, -74.0)
	_, err := service.CreateBrigadista(&models.BrigadistaModel{
		Usuario:        "maria",
		Contrasena:     "secreta123",
		Rol:            models.RolBrigadista,
		ConglomeradoID: &conglomerado.IdConglomerado,
	})
	require.NoError(t, err)

	t.Run("credenciales correctas", func(t *testing.T) {
		brigadista, token, err := service.AuthenticateBrigadista("maria", "secreta123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "maria", brigadista.Usuario)
		require.NotNil(t, brigadista.Conglomerado)
		assert.Equal(t, "SectorLogin", brigadista.Conglomerado.Nombre)
	})

	t.Run("contraseña incorrecta", func(t *testing.T) {
		_, _, err := service.AuthenticateBrigadista("maria", "otra")
		assert.ErrorIs(t, err, ErrCredencialesInvalidas)
	})

	t.Run("usuario inexistente", func(t *testing.T) {
		_, _, err := service.AuthenticateBrigadista("nadie", "secreta123")
		assert.ErrorIs(t, err, ErrCredencialesInvalidas)
	})
}

func TestUpdateConglomerado(t *testing.T) {
	db := setupTestDB(t)
	service := NewUsuarioService(db)

	origen := crearConglomerado(t, db, "SectorA", 4.0, -74.0)
	destino := crearConglomerado(t, db, "SectorB", 5.0, -73.0)
	crearBrigadista(t, db, "maria", models.RolBrigadista, &origen.IdConglomerado)

	brigadista, err := service.UpdateConglomerado("maria", destino.IdConglomerado)
	require.NoError(t, err)
	require.NotNil(t, brigadista.Conglomerado)
	assert.Equal(t, "SectorB", brigadista.Conglomerado.Nombre)

	t.Run("conglomerado inexistente", func(t *testing.T) {
		_, err := service.UpdateConglomerado("maria", 999)
		assert.ErrorIs(t, err, ErrConglomeradoNoEncontrado)
	})
}
