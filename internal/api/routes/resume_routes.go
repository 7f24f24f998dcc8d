package routes

import (
	"job-email-generator/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterResumeRoutes registers all routes related to the resume document
func RegisterResumeRoutes(rg *gin.RouterGroup, resumeHandler handlers.ResumeHandlerInterface, authMiddleware gin.HandlerFunc) {
	resume := rg.Group("/resume")
	resume.Use(authMiddleware)
	{
		resume.GET("", resumeHandler.GetResume)
		resume.POST("", resumeHandler.SaveResume)
		resume.POST("/autosave", resumeHandler.AutoSaveResume)
		resume.DELETE("", resumeHandler.DeleteResume)
	}
}
