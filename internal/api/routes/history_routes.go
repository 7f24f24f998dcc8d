package routes

import (
	"job-email-generator/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterHistoryRoutes registers all routes related to email history
func RegisterHistoryRoutes(rg *gin.RouterGroup, historyHandler handlers.EmailHistoryHandlerInterface, authMiddleware gin.HandlerFunc) {
	history := rg.Group("/history")
	history.Use(authMiddleware)
	{
		history.GET("", historyHandler.ListHistory)
		history.DELETE("/:id", historyHandler.DeleteHistory)
	}
}
