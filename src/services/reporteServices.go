package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/InvForestal/IFN-Backend/src/dtos"
	"github.com/InvForestal/IFN-Backend/src/models"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ReporteService struct {
	db *gorm.DB
}

func NewReporteService(db *gorm.DB) *ReporteService {
	return &ReporteService{db: db}
}

// GetReporteConglomerado computes the read-only summary of a conglomerate.
// Recomputed fully on every call; data volumes stay in the low thousands.
func (s *ReporteService) GetReporteConglomerado(idConglomerado int) (*dtos.ReporteConglomeradoDTO, error) {
	var conglomerado models.ConglomeradoModel
	if err := s.db.First(&conglomerado, "id_conglomerado = ?", idConglomerado).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConglomeradoNoEncontrado
		}
		return nil, err
	}

	var subparcelas []models.SubparcelaModel
	if err := s.db.Where("id_conglomerado = ?", idConglomerado).Find(&subparcelas).Error; err != nil {
		return nil, err
	}

	var individuos []models.IndividuoArboreoModel
	if err := s.db.Where("nombre_conglomerado = ?", conglomerado.Nombre).Find(&individuos).Error; err != nil {
		return nil, err
	}

	muestras := []models.MuestraModel{}
	if len(individuos) > 0 {
		ids := make([]int, 0, len(individuos))
		for _, individuo := range individuos {
			ids = append(ids, individuo.ID)
		}
		if err := s.db.Where("id_individuo IN ?", ids).Find(&muestras).Error; err != nil {
			return nil, err
		}
	}

	// Histograma de categorías
	conteoCategorias := map[string]int{}
	for _, individuo := range individuos {
		conteoCategorias[individuo.Categoria]++
	}

	nombres := make([]string, 0, len(conteoCategorias))
	for nombre := range conteoCategorias {
		nombres = append(nombres, nombre)
	}
	// Orden alfabético: deja el empate de la categoría más frecuente con una
	// regla determinista en vez del orden de iteración del mapa.
	sort.Strings(nombres)

	categorias := make([]dtos.CategoriaConteoDTO, 0, len(nombres))
	var masFrecuente *string
	maxCantidad := 0
	for _, nombre := range nombres {
		cantidad := conteoCategorias[nombre]
		categorias = append(categorias, dtos.CategoriaConteoDTO{Nombre: nombre, Cantidad: cantidad})
		if cantidad > maxCantidad {
			maxCantidad = cantidad
			n := nombre
			masFrecuente = &n
		}
	}

	// Conteos por subparcela: muestras cuentan a través de su individuo
	individuosPorSubparcela := map[int][]int{}
	for _, individuo := range individuos {
		individuosPorSubparcela[individuo.Subparcela] = append(individuosPorSubparcela[individuo.Subparcela], individuo.ID)
	}
	muestrasPorIndividuo := map[int]int{}
	for _, muestra := range muestras {
		muestrasPorIndividuo[muestra.IdIndividuo]++
	}

	subparcelasConConteos := make([]dtos.SubparcelaConteoDTO, 0, len(subparcelas))
	for _, sub := range subparcelas {
		idsSub := individuosPorSubparcela[sub.NumeroSubparcela]
		totalMuestras := 0
		for _, id := range idsSub {
			totalMuestras += muestrasPorIndividuo[id]
		}
		subparcelasConConteos = append(subparcelasConConteos, dtos.SubparcelaConteoDTO{
			ID:               sub.ID,
			IdConglomerado:   sub.IdConglomerado,
			NumeroSubparcela: sub.NumeroSubparcela,
			Individuos:       len(idsSub),
			Muestras:         totalMuestras,
		})
	}

	return &dtos.ReporteConglomeradoDTO{
		ConglomeradoNombre:    conglomerado.Nombre,
		Subparcelas:           subparcelasConConteos,
		CategoriaMasFrecuente: masFrecuente,
		Categorias:            categorias,
		Individuos:            individuos,
		Muestras:              muestras,
	}, nil
}

// ExportReporteExcel renders the conglomerate summary as an xlsx workbook
// with a summary sheet and one row per registered individual.
func (s *ReporteService) ExportReporteExcel(idConglomerado int) (*excelize.File, error) {
	reporte, err := s.GetReporteConglomerado(idConglomerado)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()

	resumen := "Resumen"
	f.SetSheetName("Sheet1", resumen)
	f.SetCellValue(resumen, "A1", "Conglomerado")
	f.SetCellValue(resumen, "B1", reporte.ConglomeradoNombre)
	if reporte.CategoriaMasFrecuente != nil {
		f.SetCellValue(resumen, "A2", "Categoría más frecuente")
		f.SetCellValue(resumen, "B2", *reporte.CategoriaMasFrecuente)
	}

	f.SetCellValue(resumen, "A4", "Subparcela")
	f.SetCellValue(resumen, "B4", "Individuos")
	f.SetCellValue(resumen, "C4", "Muestras")
	fila := 5
	for _, sub := range reporte.Subparcelas {
		f.SetCellValue(resumen, fmt.Sprintf("A%d", fila), sub.NumeroSubparcela)
		f.SetCellValue(resumen, fmt.Sprintf("B%d", fila), sub.Individuos)
		f.SetCellValue(resumen, fmt.Sprintf("C%d", fila), sub.Muestras)
		fila++
	}

	fila++
	f.SetCellValue(resumen, fmt.Sprintf("A%d", fila), "Categoría")
	f.SetCellValue(resumen, fmt.Sprintf("B%d", fila), "Cantidad")
	fila++
	for _, categoria := range reporte.Categorias {
		f.SetCellValue(resumen, fmt.Sprintf("A%d", fila), categoria.Nombre)
		f.SetCellValue(resumen, fmt.Sprintf("B%d", fila), categoria.Cantidad)
		fila++
	}

	individuosSheet := "Individuos"
	if _, err := f.NewSheet(individuosSheet); err != nil {
		return nil, err
	}
	encabezados := []string{"ID", "Subparcela", "DAP (cm)", "Azimut", "Distancia (m)", "Categoría", "Fecha registro"}
	for i, encabezado := range encabezados {
		celda, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(individuosSheet, celda, encabezado)
	}
	for i, individuo := range reporte.Individuos {
		valores := []interface{}{
			individuo.ID,
			individuo.Subparcela,
			individuo.Dap,
			individuo.Azimut,
			individuo.Distancia,
			individuo.Categoria,
			individuo.FechaRegistro.Format("2006-01-02 15:04"),
		}
		for j, valor := range valores {
			celda, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(individuosSheet, celda, valor)
		}
	}

	return f, nil
}
