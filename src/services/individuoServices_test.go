package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/InvForestal/IFN-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"
)

func TestCreateIndividuo_DerivaCategoria(t *testing.T) {
	db := setupTestDB(t)
	store := &fakeImageStore{}
	service := NewIndividuoService(db, store)

	individuo := models.IndividuoArboreoModel{
		NombreConglomerado: "Sector1",
		Subparcela:         2,
		Dap:                34.5,
		Azimut:             120,
		Distancia:          4.2,
	}
	require.NoError(t, service.CreateIndividuo(context.Background(), &individuo, []byte("png-bytes"), "arbol.png", "image/png"))

	assert.Equal(t, models.CategoriaFustal, individuo.Categoria)
	assert.False(t, individuo.FechaRegistro.IsZero())
	require.NotNil(t, individuo.ImagenURL)
	assert.Equal(t, "https://cdn.test/individuos/arbol.png", *individuo.ImagenURL)
	assert.Equal(t, 1, store.uploads)
}

func TestCreateIndividuo_SiFallaLaImagenContinua(t *testing.T) {
	db := setupTestDB(t)
	service := NewIndividuoService(db, &fakeImageStore{fail: true})

	individuo := models.IndividuoArboreoModel{
		NombreConglomerado: "Sector1",
		Subparcela:         1,
		Dap:                8,
		Azimut:             0,
		Distancia:          1,
	}
	require.NoError(t, service.CreateIndividuo(context.Background(), &individuo, []byte("bytes"), "a.jpg", "image/jpeg"))
	assert.Nil(t, individuo.ImagenURL)
}

func TestCreateIndividuo_SinStoreNiImagen(t *testing.T) {
	db := setupTestDB(t)
	service := NewIndividuoService(db, nil)

	individuo := models.IndividuoArboreoModel{
		NombreConglomerado: "Sector1",
		Subparcela:         1,
		Dap:                55,
		Azimut:             10,
		Distancia:          2,
	}
	require.NoError(t, service.CreateIndividuo(context.Background(), &individuo, nil, "", ""))
	assert.Equal(t, models.CategoriaFustalGrande, individuo.Categoria)
	assert.Nil(t, individuo.ImagenURL)
}

func TestCreateIndividuosMultiple(t *testing.T) {
	db := setupTestDB(t)
	service := NewIndividuoService(db, nil)

	creados, err := service.CreateIndividuosMultiple([]models.IndividuoArboreoModel{
		{NombreConglomerado: "Sector1", Subparcela: 1, Dap: 5, Azimut: 10, Distancia: 1},
		{NombreConglomerado: "Sector1", Subparcela: 1, Dap: 12, Azimut: 20, Distancia: 2},
		{NombreConglomerado: "Sector1", Subparcela: 2, Dap: 50, Azimut: 30, Distancia: 3},
	})
	require.NoError(t, err)
	require.Len(t, creados, 3)
	assert.Equal(t, models.CategoriaBrinzales, creados[0].Categoria)
	assert.Equal(t, models.CategoriaLatizales, creados[1].Categoria)
	assert.Equal(t, models.CategoriaFustalGrande, creados[2].Categoria)

	var total int64
	require.NoError(t, db.Model(&models.IndividuoArboreoModel{}).Count(&total).Error)
	assert.Equal(t, int64(3), total)
}

func TestGetIndividuos_FiltraPorConglomeradoYSubparcela(t *testing.T) {
	db := setupTestDB(t)
	service := NewIndividuoService(db, nil)

	_, err := service.CreateIndividuosMultiple([]models.IndividuoArboreoModel{
		{NombreConglomerado: "Sector1", Subparcela: 1, Dap: 5, Azimut: 10, Distancia: 1},
		{NombreConglomerado: "Sector1", Subparcela: 2, Dap: 12, Azimut: 20, Distancia: 2},
		{NombreConglomerado: "Sector2", Subparcela: 1, Dap: 50, Azimut: 30, Distancia: 3},
	})
	require.NoError(t, err)

	individuos, err := service.GetIndividuos("Sector1", 1)
	require.NoError(t, err)
	require.Len(t, individuos, 1)
	assert.Equal(t, 5.0, individuos[0].Dap)

	vacios, err := service.GetIndividuos("Sector1", 3)
	require.NoError(t, err)
	assert.Empty(t, vacios)
}

func excelDePrueba(t *testing.T, filas [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	encabezados := []interface{}{"Conglomerado", "Subparcela", "DAP", "Azimut", "Distancia", "Imagen"}
	for j, valor := range encabezados {
		celda, _ := excelize.CoordinatesToCellName(j+1, 1)
		require.NoError(t, f.SetCellValue("Sheet1", celda, valor))
	}
	for i, fila := range filas {
		for j, valor := range fila {
			celda, _ := excelize.CoordinatesToCellName(j+1, i+2)
			require.NoError(t, f.SetCellValue("Sheet1", celda, valor))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestImportIndividuosFromExcel(t *testing.T) {
	db := setupTestDB(t)
	service := NewIndividuoService(db, nil)

	buf := excelDePrueba(t, [][]interface{}{
		{"Sector1", 1, 5.5, 90, 2.1},
		{"Sector1", 2, 33, 180, 4.0},
		{"Sector1", "no-numero", 5, 90, 1}, // subparcela inválida
	})

	result, err := service.ImportIndividuosFromExcel(context.Background(), buf)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "subparcela inválida")

	individuos, err := service.GetIndividuos("Sector1", 2)
	require.NoError(t, err)
	require.Len(t, individuos, 1)
	assert.Equal(t, models.CategoriaFustal, individuos[0].Categoria)
}

func TestImportIndividuosFromExcel_TodoFalla(t *testing.T) {
	db := setupTestDB(t)
	service := NewIndividuoService(db, nil)

	buf := excelDePrueba(t, [][]interface{}{
		{"Sector1", 99, 5, 90, 1},
	})

	result, err := service.ImportIndividuosFromExcel(context.Background(), buf)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Zero(t, result.Imported)
}
