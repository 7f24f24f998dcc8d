package routes

import (
	"job-email-generator/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterEmailRoutes registers generation, sending and the template catalog
func RegisterEmailRoutes(rg *gin.RouterGroup, emailHandler handlers.EmailHandlerInterface, templateHandler *handlers.TemplateHandler, authMiddleware gin.HandlerFunc) {
	emails := rg.Group("/emails")
	emails.Use(authMiddleware)
	{
		emails.POST("/generate", emailHandler.GenerateEmail)
		emails.POST("/send", emailHandler.SendEmail)
		emails.POST("/mailto", emailHandler.BuildMailto)
	}

	// The catalog is static and safe to serve unauthenticated.
	rg.GET("/templates", templateHandler.ListTemplates)
}
