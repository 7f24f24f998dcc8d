package app

import (
	"job-email-generator/config"
	"job-email-generator/internal/services"
	"job-email-generator/internal/storage"
	"job-email-generator/internal/suggest"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client
	Validator   *validator.Validate

	ResumeRepo  storage.ResumeRepository
	HistoryRepo storage.EmailHistoryRepository

	ResumeService  services.ResumeService
	HistoryService services.EmailHistoryService
	EmailService   services.EmailService
	AutoSaver      *services.AutoSaver

	SkillsClient     *suggest.SkillsClient
	UniversityClient *suggest.UniversityClient
}
