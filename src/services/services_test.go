package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/InvForestal/IFN-Backend/src/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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

	return db
}

func crearConglomerado(t *testing.T, db *gorm.DB, nombre string, lat, lng float64) *models.ConglomeradoModel {
	t.Helper()
	conglomerado := models.ConglomeradoModel{Nombre: nombre, Latitud: lat, Longitud: lng}
	require.NoError(t, db.Create(&conglomerado).Error)
	return &conglomerado
}

func crearBrigadista(t *testing.T, db *gorm.DB, usuario, rol string, conglomeradoID *int) *models.BrigadistaModel {
	t.Helper()
	brigadista := models.BrigadistaModel{
		Usuario:        usuario,
		Contrasena:     "x",
		Rol:            rol,
		ConglomeradoID: conglomeradoID,
	}
	require.NoError(t, db.Create(&brigadista).Error)
	return &brigadista
}

// fakeImageStore records uploads and returns deterministic URLs.
type fakeImageStore struct {
	uploads int
	fail    bool
}

func (f *fakeImageStore) Upload(ctx context.Context, folder, filename, contentType string, data []byte) (string, error) {
	if f.fail {
		return "", fmt.Errorf("bucket no disponible")
	}
	f.uploads++
	return fmt.Sprintf("https://cdn.test/%s/%s", folder, filename), nil
}
