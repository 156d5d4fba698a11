package services

import (
	"errors"
	"time"

	"github.com/InvForestal/IFN-Backend/src/middleware"
	"github.com/InvForestal/IFN-Backend/src/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UsuarioService struct {
	db *gorm.DB
}

// NewUsuarioService creates a new instance of UsuarioService
func NewUsuarioService(db *gorm.DB) *UsuarioService {
	return &UsuarioService{db: db}
}

// GetAllBrigadistas retrieves all brigade member accounts
func (s *UsuarioService) GetAllBrigadistas() ([]models.BrigadistaModel, error) {
	var brigadistas []models.BrigadistaModel
	result := s.db.Find(&brigadistas)
	if result.Error != nil {
		return nil, result.Error
	}
	return brigadistas, nil
}

// CreateBrigadista creates a new account, hashing the password before saving
func (s *UsuarioService) CreateBrigadista(brigadista *models.BrigadistaModel) (*models.BrigadistaModel, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(brigadista.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	brigadista.Contrasena = string(hashedPassword)

	result := s.db.Create(brigadista)
	if result.Error != nil {
		return nil, result.Error
	}
	return brigadista, nil
}

// AuthenticateBrigadista checks credentials and returns the account (with its
// assigned conglomerate preloaded) plus a signed JWT.
func (s *UsuarioService) AuthenticateBrigadista(usuario, contrasena string) (*models.BrigadistaModel, string, error) {
	var brigadista models.BrigadistaModel
	result := s.db.Preload("Conglomerado").Where("usuario = ?", usuario).First(&brigadista)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, "", ErrCredencialesInvalidas
		}
		return nil, "", result.Error
	}

	// Compare the provided password with the hashed password in the database
	if err := bcrypt.CompareHashAndPassword([]byte(brigadista.Contrasena), []byte(contrasena)); err != nil {
		return nil, "", ErrCredencialesInvalidas
	}

	claims := jwt.MapClaims{
		"id":      brigadista.IdBrigadista,
		"usuario": brigadista.Usuario,
		"rol":     brigadista.Rol,
		"exp":     time.Now().Add(time.Hour * 12).Unix(), // Token expires in 12 hours
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(middleware.GetSecretKey()))
	if err != nil {
		return nil, "", err
	}

	return &brigadista, tokenString, nil
}

// UpdateConglomerado reassigns a brigade member to a different conglomerate
// and returns the refreshed account.
func (s *UsuarioService) UpdateConglomerado(usuario string, conglomeradoID int) (*models.BrigadistaModel, error) {
	var conglomerado models.ConglomeradoModel
	if err := s.db.First(&conglomerado, "id_conglomerado = ?", conglomeradoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConglomeradoNoEncontrado
		}
		return nil, err
	}

	result := s.db.Model(&models.BrigadistaModel{}).
		Where("usuario = ?", usuario).
		Update("conglomerado_id", conglomeradoID)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var brigadista models.BrigadistaModel
	if err := s.db.Preload("Conglomerado").Where("usuario = ?", usuario).First(&brigadista).Error; err != nil {
		return nil, err
	}
	return &brigadista, nil
}
