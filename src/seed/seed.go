package seed

import (
	"log"

	"github.com/InvForestal/IFN-Backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Seed(db *gorm.DB) {
	// Cuenta inicial de jefe de brigada
	var brigadista models.BrigadistaModel
	result := db.Where("usuario = ?", "admin").First(&brigadista)
	if result.Error == nil {
		log.Println("User 'admin' already exists")
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)

		nuevo := models.BrigadistaModel{
			Usuario:    "admin",
			Contrasena: string(hashedPassword),
			Rol:        models.RolJefeDeBrigada,
		}
		if err := db.Create(&nuevo).Error; err != nil {
			log.Printf("Failed to create user: %v\n", err)
		} else {
			log.Println("User 'admin' created")
		}
	}

	// Subparcelas: cada conglomerado tiene las sub-cuadrantes 1 a 4
	log.Println("Checking subplots for all conglomerates...")
	var conglomerados []models.ConglomeradoModel
	if err := db.Find(&conglomerados).Error; err != nil {
		log.Printf("Failed to fetch conglomerates: %v\n", err)
		return
	}

	createdCount := 0
	for _, conglomerado := range conglomerados {
		for n := 1; n <= 4; n++ {
			var existing models.SubparcelaModel
			checkResult := db.Where("id_conglomerado = ? AND numero_subparcela = ?", conglomerado.IdConglomerado, n).First(&existing)
			if checkResult.Error == nil {
				continue
			}
			subparcela := models.SubparcelaModel{
				IdConglomerado:   conglomerado.IdConglomerado,
				NumeroSubparcela: n,
			}
			if err := db.Create(&subparcela).Error; err != nil {
				log.Printf("Failed to create subplot %d for conglomerate %d: %v\n", n, conglomerado.IdConglomerado, err)
			} else {
				createdCount++
			}
		}
	}
	if createdCount > 0 {
		log.Printf("Finished creating %d new subplots\n", createdCount)
	} else {
		log.Println("All subplots already exist")
	}
}
