package main

import (
	"log"
	"os"

	"github.com/InvForestal/IFN-Backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Migrate schema if not exists
	if err := db.AutoMigrate(&models.BrigadistaModel{}); err != nil {
		log.Fatalf("failed to migrate brigadista model: %v", err)
	}

	var brigadista models.BrigadistaModel
	result := db.Where("usuario = ?", "admin").First(&brigadista)
	if result.Error == nil {
		log.Println("User 'admin' already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	nuevo := models.BrigadistaModel{
		Usuario:    "admin",
		Contrasena: string(hashedPassword),
		Rol:        models.RolJefeDeBrigada,
	}
	if err := db.Create(&nuevo).Error; err != nil {
		log.Fatalf("failed to create user: %v", err)
	}
	log.Println("User 'admin' created")
}
