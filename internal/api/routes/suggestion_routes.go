package routes

import (
	"job-email-generator/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterSuggestionRoutes registers the autocomplete proxy routes. They
// serve no user data, so they stay outside the auth middleware.
func RegisterSuggestionRoutes(rg *gin.RouterGroup, suggestionHandler handlers.SuggestionHandlerInterface) {
	suggestions := rg.Group("/suggestions")
	{
		suggestions.GET("/positions", suggestionHandler.GetPositions)
		suggestions.GET("/skills/:position", suggestionHandler.GetSkills)
		suggestions.GET("/degrees", suggestionHandler.GetDegrees)
		suggestions.GET("/universities", suggestionHandler.SearchUniversities)
	}
}
