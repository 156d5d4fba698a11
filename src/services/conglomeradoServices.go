package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/InvForestal/IFN-Backend/src/models"
	"gorm.io/gorm"
)

// Cache entry
type CacheEntry struct {
	Data      interface{}
	ExpiresAt time.Time
}

// PaginaConglomerados is one page of the conglomerate picker modal.
type PaginaConglomerados struct {
	Data       []models.ConglomeradoModel
	Total      int64
	Page       int
	TotalPages int
	HasMore    bool
}

type ConglomeradoService struct {
	db    *gorm.DB
	cache map[string]*CacheEntry
	mutex sync.RWMutex
}

func NewConglomeradoService(db *gorm.DB) *ConglomeradoService {
	service := &ConglomeradoService{
		db:    db,
		cache: make(map[string]*CacheEntry),
	}

	// Clean up cache every 30 minutes
	go service.cleanupCache()

	return service
}

func (s *ConglomeradoService) cleanupCache() {
	ticker := time.NewTicker(30 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for key, entry := range s.cache {
			if now.After(entry.ExpiresAt) {
				delete(s.cache, key)
			}
		}
		s.mutex.Unlock()
	}
}

func (s *ConglomeradoService) setCache(key string, data interface{}, duration time.Duration) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cache[key] = &CacheEntry{
		Data:      data,
		ExpiresAt: time.Now().Add(duration),
	}
}

func (s *ConglomeradoService) getCache(key string) (interface{}, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, exists := s.cache[key]
	if !exists || time.Now().After(entry.ExpiresAt) {
		return nil, false
	}

	return entry.Data, true
}

func (s *ConglomeradoService) invalidateCache(pattern string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for key := range s.cache {
		if strings.HasPrefix(key, pattern) {
			delete(s.cache, key)
		}
	}
}

func (s *ConglomeradoService) GetAllConglomerados() ([]models.ConglomeradoModel, error) {
	cacheKey := "all_conglomerados"

	// Try to get from cache
	if cached, found := s.getCache(cacheKey); found {
		return cached.([]models.ConglomeradoModel), nil
	}

	var conglomerados []models.ConglomeradoModel
	err := s.db.Find(&conglomerados).Error

	if err == nil {
		// Save to cache for 5 minutes
		s.setCache(cacheKey, conglomerados, 5*time.Minute)
	}

	return conglomerados, err
}

// GetConglomeradosPaginados returns one page of conglomerates ordered by
// nombre, optionally filtered by a case-insensitive substring search.
func (s *ConglomeradoService) GetConglomeradosPaginados(page, limit int, search string) (*PaginaConglomerados, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	cacheKey := fmt.Sprintf("conglomerados_p%d_l%d_s%s", page, limit, search)
	if cached, found := s.getCache(cacheKey); found {
		return cached.(*PaginaConglomerados), nil
	}

	query := s.db.Model(&models.ConglomeradoModel{})
	search = strings.TrimSpace(search)
	if search != "" {
		query = query.Where("LOWER(nombre) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var conglomerados []models.ConglomeradoModel
	if err := query.Order("nombre").Offset(offset).Limit(limit).Find(&conglomerados).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	pagina := &PaginaConglomerados{
		Data:       conglomerados,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		HasMore:    int64(offset+len(conglomerados)) < total,
	}

	s.setCache(cacheKey, pagina, 5*time.Minute)

	return pagina, nil
}

// CreateConglomerado registers a new sampling plot and its four subplots.
func (s *ConglomeradoService) CreateConglomerado(conglomerado *models.ConglomeradoModel) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(conglomerado).Error; err != nil {
			return err
		}

		subparcelas := make([]models.SubparcelaModel, 0, 4)
		for n := 1; n <= 4; n++ {
			subparcelas = append(subparcelas, models.SubparcelaModel{
				IdConglomerado:   conglomerado.IdConglomerado,
				NumeroSubparcela: n,
			})
		}
		return tx.Create(&subparcelas).Error
	})

	if err != nil {
		return err
	}

	s.invalidateCache("all_conglomerados")
	s.invalidateCache("conglomerados_")

	return nil
}

// GetConglomeradoPorID resolves a conglomerate by primary key.
func (s *ConglomeradoService) GetConglomeradoPorID(id int) (*models.ConglomeradoModel, error) {
	var conglomerado models.ConglomeradoModel
	if err := s.db.First(&conglomerado, "id_conglomerado = ?", id).Error; err != nil {
		return nil, err
	}
	return &conglomerado, nil
}
