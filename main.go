package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"job-email-generator/config"
	"job-email-generator/internal/app"
	"job-email-generator/internal/database"
	"job-email-generator/internal/mailer"
	"job-email-generator/internal/server"
	"job-email-generator/internal/services"
	"job-email-generator/internal/storage/postgres"
	"job-email-generator/internal/suggest"

	_ "job-email-generator/docs" // Import generated docs

	"github.com/go-playground/validator/v10"
)

// @title           Job Email Generator API
// @version         1.0
// @description     Resume storage and job-application email generation service using Gin and pgx.

// @contact.name   API Support
// @contact.email  support@example.com

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize Redis Client ---
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := database.Migrate(context.Background(), dbPool); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	validate := validator.New()

	resumeRepo := postgres.NewResumeRepo(dbPool)
	historyRepo := postgres.NewEmailHistoryRepo(dbPool)

	resumeService := services.NewResumeService(resumeRepo, historyRepo)
	historyService := services.NewEmailHistoryService(historyRepo)
	emailService := services.NewEmailService(resumeRepo, historyRepo, mailer.NewGmailSender())
	autoSaver := services.NewAutoSaver(resumeService, services.DefaultAutoSaveDelay)

	application := &app.Application{
		Config:      cfg,
		DBPool:      dbPool,
		RedisClient: redisClient,
		Validator:   validate,

		ResumeRepo:  resumeRepo,
		HistoryRepo: historyRepo,

		ResumeService:  resumeService,
		HistoryService: historyService,
		EmailService:   emailService,
		AutoSaver:      autoSaver,

		SkillsClient:     suggest.NewSkillsClient(cfg.Suggest.BaseURL, cfg.Suggest.APIKey),
		UniversityClient: suggest.NewUniversityClient(redisClient),
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down server...")

	// Drop queued autosaves; a fired timer mid-shutdown would race the pool close.
	autoSaver.Stop()

	log.Println("Application gracefully stopped.")
}
