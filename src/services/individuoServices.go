package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/InvForestal/IFN-Backend/src/models"
	"github.com/InvForestal/IFN-Backend/src/utils"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ImportResult struct {
	Imported int
	Errors   []string
}

type IndividuoService struct {
	db    *gorm.DB
	store ImageStore
}

// NewIndividuoService creates the service; store may be nil when no image
// bucket is configured (registrations then proceed without photos).
func NewIndividuoService(db *gorm.DB, store ImageStore) *IndividuoService {
	return &IndividuoService{db: db, store: store}
}

// CreateIndividuo derives the growth category from the DAP, uploads the photo
// if one was sent and persists the individual. A failed upload does not fail
// the registration.
func (s *IndividuoService) CreateIndividuo(ctx context.Context, individuo *models.IndividuoArboreoModel, imagen []byte, filename, contentType string) error {
	individuo.Categoria = models.CategoriaPorDAP(individuo.Dap)
	if individuo.FechaRegistro.IsZero() {
		individuo.FechaRegistro = time.Now()
	}

	if len(imagen) > 0 && s.store != nil {
		url, err := s.store.Upload(ctx, "individuos", filename, contentType, imagen)
		if err != nil {
			log.Printf("[INDIVIDUOS] Error subiendo imagen, continuando sin imagen: %v", err)
		} else {
			individuo.ImagenURL = &url
		}
	}

	return s.db.Create(individuo).Error
}

// CreateIndividuosMultiple inserts a batch of individuals in one transaction.
func (s *IndividuoService) CreateIndividuosMultiple(individuos []models.IndividuoArboreoModel) ([]models.IndividuoArboreoModel, error) {
	now := time.Now()
	for i := range individuos {
		individuos[i].Categoria = models.CategoriaPorDAP(individuos[i].Dap)
		if individuos[i].FechaRegistro.IsZero() {
			individuos[i].FechaRegistro = now
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&individuos).Error
	})
	if err != nil {
		return nil, err
	}
	return individuos, nil
}

// GetIndividuos lists the individuals of one subplot of a conglomerate.
func (s *IndividuoService) GetIndividuos(conglomerado string, subparcela int) ([]models.IndividuoArboreoModel, error) {
	var individuos []models.IndividuoArboreoModel
	err := s.db.
		Where("nombre_conglomerado = ? AND subparcela = ?", conglomerado, subparcela).
		Find(&individuos).Error
	return individuos, err
}

// ImportIndividuosFromExcel reads a field-capture spreadsheet and registers
// one individual per row. Expected columns: conglomerado, subparcela, dap,
// azimut, distancia and an optional imagen column holding a Google Drive
// share URL, which is downloaded and re-uploaded to the image bucket.
func (s *IndividuoService) ImportIndividuosFromExcel(ctx context.Context, r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("archivo excel inválido: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer la hoja %s: %w", sheet, err)
	}

	result := &ImportResult{Imported: 0, Errors: []string{}}

	for i, row := range rows {
		// Fila de encabezado o vacía → la salto
		if i == 0 || len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		if len(row) < 5 {
			result.Errors = append(result.Errors, fmt.Sprintf("Fila %d: faltan columnas", i+1))
			continue
		}

		nombreConglomerado := strings.TrimSpace(row[0])

		subparcela, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil || subparcela < 1 || subparcela > 4 {
			result.Errors = append(result.Errors, fmt.Sprintf("Fila %d: subparcela inválida: %s", i+1, row[1]))
			continue
		}

		dap, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Fila %d: dap inválido: %s", i+1, row[2]))
			continue
		}

		azimut, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Fila %d: azimut inválido: %s", i+1, row[3]))
			continue
		}

		distancia, err := strconv.ParseFloat(strings.TrimSpace(row[4]), 64)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Fila %d: distancia inválida: %s", i+1, row[4]))
			continue
		}

		individuo := models.IndividuoArboreoModel{
			NombreConglomerado: nombreConglomerado,
			Subparcela:         subparcela,
			Dap:                dap,
			Azimut:             azimut,
			Distancia:          distancia,
			Categoria:          models.CategoriaPorDAP(dap),
			FechaRegistro:      time.Now(),
		}

		// Columna opcional de imagen: URL compartida de Google Drive
		if len(row) > 5 {
			driveURL := strings.TrimSpace(row[5])
			if driveURL != "" && utils.IsGoogleDriveURL(driveURL) {
				url, err := s.importImagenFromDrive(ctx, driveURL)
				if err != nil {
					result.Errors = append(result.Errors, fmt.Sprintf("Fila %d: imagen no importada: %v", i+1, err))
					// sigo con la fila, pero sin imagen
				} else {
					individuo.ImagenURL = &url
				}
			}
		}

		if err := s.db.Create(&individuo).Error; err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Fila %d: %v", i+1, err))
			continue
		}

		result.Imported++
	}

	if result.Imported == 0 && len(result.Errors) > 0 {
		return result, fmt.Errorf("no se pudo importar ningún individuo")
	}

	return result, nil
}

func (s *IndividuoService) importImagenFromDrive(ctx context.Context, driveURL string) (string, error) {
	if s.store == nil {
		return "", fmt.Errorf("no hay bucket de imágenes configurado")
	}

	fileID, err := utils.ExtractFileIDFromURL(driveURL)
	if err != nil {
		return "", err
	}

	body, name, mimeType, err := utils.DownloadFileFromGoogleDrive(fileID)
	if err != nil {
		return "", err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("error leyendo imagen descargada: %w", err)
	}

	return s.store.Upload(ctx, "individuos", name, mimeType, data)
}
