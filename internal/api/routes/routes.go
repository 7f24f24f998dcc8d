package routes

import (
	"log"

	"job-email-generator/internal/api/handlers"
	"job-email-generator/internal/api/middleware"
	"job-email-generator/internal/app"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	//Create handlers
	resumeHandler := handlers.NewResumeHandler(app.ResumeService, app.AutoSaver, app.Validator)
	historyHandler := handlers.NewEmailHistoryHandler(app.HistoryService)
	emailHandler := handlers.NewEmailHandler(app.EmailService, app.Validator)
	templateHandler := handlers.NewTemplateHandler()
	suggestionHandler := handlers.NewSuggestionHandler(app.SkillsClient, app.UniversityClient)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.Auth.JWTSecret)

	// --- Register Resource Routes ---
	RegisterResumeRoutes(apiV1, resumeHandler, authMiddleware)
	RegisterHistoryRoutes(apiV1, historyHandler, authMiddleware)
	RegisterEmailRoutes(apiV1, emailHandler, templateHandler, authMiddleware)
	RegisterSuggestionRoutes(apiV1, suggestionHandler)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
