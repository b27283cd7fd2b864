package main

import (
	"log"

	"portfolio-service/internal/config"
	"portfolio-service/internal/handlers"
	"portfolio-service/internal/metrics"
	"portfolio-service/internal/models"
	"portfolio-service/internal/repository"
	"portfolio-service/internal/services"
	"portfolio-service/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	cfg := InitConfig()
	db := ConnectDatabase(cfg)
	MigrateDatabase(db)
	minioClient := InitMinIOClient(cfg)

	uploader := storage.NewMinioUploader(minioClient, cfg)
	uploadMetrics := metrics.NewUploadMetrics()
	uploadService := services.NewUploadService(uploader, uploadMetrics)

	projectService := services.NewProjectService(repository.NewProjectRepository(db))
	certService := services.NewCertificateService(repository.NewCertificateRepository(db))
	messageService := services.NewMessageService(repository.NewMessageRepository(db))
	resumeService := services.NewResumeService(repository.NewResumeRepository(db), uploadService)

	app := fiber.New()

	// Register Prometheus metrics endpoint
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	ph := handlers.NewProjectHandler(projectService, uploadService)
	api.Get("/projects", ph.ListProjects)
	api.Post("/projects", ph.CreateProject)
	api.Put("/projects", ph.UpdateProject)
	api.Delete("/projects", ph.DeleteProject)
	api.Post("/projects/upload", ph.UploadImages)

	ch := handlers.NewCertificateHandler(certService, uploadService)
	api.Get("/certificates", ch.ListCertificates)
	api.Post("/certificates", ch.CreateCertificate)
	api.Put("/certificates", ch.UpdateCertificate)
	api.Delete("/certificates", ch.DeleteCertificate)
	api.Post("/certificates/upload", ch.UploadImage)

	mh := handlers.NewMessageHandler(messageService)
	api.Get("/contact", mh.ListMessages)
	api.Post("/contact", mh.CreateMessage)
	api.Delete("/contact", mh.DeleteMessage)

	rh := handlers.NewResumeHandler(resumeService)
	api.Get("/resume/latest", rh.Latest)
	api.Post("/resume/upload", rh.Upload)

	api.Get("/swagger/*", swagger.HandlerDefault)

	// Add Health check endpoint
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	routes := app.GetRoutes()
	log.Println("Registered routes:")
	for _, r := range routes {
		log.Printf("  %s %s\n", r.Method, r.Path)
	}

	// Start the Fiber server
	port := cfg.AppPort
	if port == "" {
		port = "8080"
		log.Printf("Defaulting to port %s", port)
	}
	log.Printf("Server listening on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

func InitConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	return cfg
}

func ConnectDatabase(cfg *config.Config) *gorm.DB {
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	return db
}

func MigrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Project{},
		&models.Certificate{},
		&models.Message{},
		&models.Resume{},
	)
	if err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}
}

func InitMinIOClient(cfg *config.Config) *minio.Client {
	minioClient, err := storage.NewMinioClient(cfg)
	if err != nil {
		log.Fatalf("MinIO client initialization failed: %v", err)
	}
	return minioClient
}
