package services

import (
	"time"

	"github.com/InvForestal/IFN-Backend/src/models"
	"gorm.io/gorm"
)

type IncidenciaService struct {
	db *gorm.DB
}

func NewIncidenciaService(db *gorm.DB) *IncidenciaService {
	return &IncidenciaService{db: db}
}

// CreateIncidencia registers a field incident report.
func (s *IncidenciaService) CreateIncidencia(incidencia *models.IncidenciaModel) error {
	if incidencia.Fecha.IsZero() {
		incidencia.Fecha = time.Now()
	}
	return s.db.Create(incidencia).Error
}

// GetAllIncidencias lists every incident, most recent first.
func (s *IncidenciaService) GetAllIncidencias() ([]models.IncidenciaModel, error) {
	incidencias := []models.IncidenciaModel{}
	err := s.db.Order("fecha DESC").Find(&incidencias).Error
	return incidencias, err
}
