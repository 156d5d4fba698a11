package main

import (
	"context"
	"log"
	"os"

	"github.com/InvForestal/IFN-Backend/src/db"
	"github.com/InvForestal/IFN-Backend/src/middleware"
	"github.com/InvForestal/IFN-Backend/src/models"
	"github.com/InvForestal/IFN-Backend/src/routes"
	"github.com/InvForestal/IFN-Backend/src/seed"
	"github.com/InvForestal/IFN-Backend/src/services"
	"github.com/InvForestal/IFN-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

func main() {

	// Database connection
	db, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(
		&models.ConglomeradoModel{},
		&models.BrigadistaModel{},
		&models.SubparcelaModel{},
		&models.IndividuoArboreoModel{},
		&models.MuestraModel{},
		&models.NotificacionModel{},
		&models.NotificacionUsuarioModel{},
		&models.IncidenciaModel{},
	); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	seed.Seed(db)

	// JWT secret setup
	middleware.SetSecretKey(os.Getenv("JWT_SECRET"))

	// Image bucket setup (optional: registrations work without photos)
	var store services.ImageStore
	if s3Store, err := utils.NewS3ImageStoreFromEnv(context.Background()); err != nil {
		log.Printf("Image bucket not configured, continuing without uploads: %v\n", err)
	} else {
		store = s3Store
	}

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":4000"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())
	router.MaxMultipartMemory = 10 << 20 // 10MB por imagen de campo

	// Services setup
	conglomeradoService := services.NewConglomeradoService(db)
	usuarioService := services.NewUsuarioService(db)
	individuoService := services.NewIndividuoService(db, store)
	muestraService := services.NewMuestraService(db, store)
	notificacionService := services.NewNotificacionService(db)
	reporteService := services.NewReporteService(db)
	incidenciaService := services.NewIncidenciaService(db)

	// Routes setup
	routes.SetupConglomeradoRoutes(router, conglomeradoService)
	routes.SetupUsuarioRoutes(router, usuarioService)
	routes.SetupIndividuoRoutes(router, individuoService)
	routes.SetupMuestraRoutes(router, muestraService)
	routes.SetupNotificacionRoutes(router, notificacionService)
	routes.SetupReporteRoutes(router, reporteService)
	routes.SetupIncidenciaRoutes(router, incidenciaService)

	router.GET("/", func(c *gin.Context) {
		c.String(200, "Servidor IFN funcionando correctamente")
	})

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}
}
