package services

import (
	"context"
	"log"
	"time"

	"github.com/InvForestal/IFN-Backend/src/models"
	"gorm.io/gorm"
)

type MuestraService struct {
	db    *gorm.DB
	store ImageStore
}

func NewMuestraService(db *gorm.DB, store ImageStore) *MuestraService {
	return &MuestraService{db: db, store: store}
}

// CreateMuestra registers a botanical sample against its individual. The
// photo upload is best-effort: on failure the sample is saved without it.
func (s *MuestraService) CreateMuestra(ctx context.Context, muestra *models.MuestraModel, imagen []byte, filename, contentType string) error {
	if muestra.FechaRegistro.IsZero() {
		muestra.FechaRegistro = time.Now()
	}

	if len(imagen) > 0 && s.store != nil {
		url, err := s.store.Upload(ctx, "muestras", filename, contentType, imagen)
		if err != nil {
			log.Printf("[MUESTRAS] Error subiendo imagen, continuando sin imagen: %v", err)
		} else {
			muestra.ImagenURL = &url
		}
	}

	return s.db.Create(muestra).Error
}

// GetMuestrasPorIndividuos lists the samples collected from any of the given
// individuals.
func (s *MuestraService) GetMuestrasPorIndividuos(idsIndividuos []int) ([]models.MuestraModel, error) {
	muestras := []models.MuestraModel{}
	if len(idsIndividuos) == 0 {
		return muestras, nil
	}
	err := s.db.Where("id_individuo IN ?", idsIndividuos).Find(&muestras).Error
	return muestras, err
}
