package handlers

import "github.com/gin-gonic/gin"

// ResumeHandlerInterface defines the methods needed by the resume routes.
type ResumeHandlerInterface interface {
	GetResume(c *gin.Context)
	SaveResume(c *gin.Context)
	AutoSaveResume(c *gin.Context)
	DeleteResume(c *gin.Context)
}

// EmailHistoryHandlerInterface defines the methods needed by the history routes.
type EmailHistoryHandlerInterface interface {
	ListHistory(c *gin.Context)
	DeleteHistory(c *gin.Context)
}

// EmailHandlerInterface defines the methods needed by the email routes.
type EmailHandlerInterface interface {
	GenerateEmail(c *gin.Context)
	SendEmail(c *gin.Context)
	BuildMailto(c *gin.Context)
}

// SuggestionHandlerInterface defines the methods needed by the suggestion routes.
type SuggestionHandlerInterface interface {
	GetPositions(c *gin.Context)
	GetSkills(c *gin.Context)
	GetDegrees(c *gin.Context)
	SearchUniversities(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ ResumeHandlerInterface = (*ResumeHandler)(nil)
var _ EmailHistoryHandlerInterface = (*EmailHistoryHandler)(nil)
var _ EmailHandlerInterface = (*EmailHandler)(nil)
var _ SuggestionHandlerInterface = (*SuggestionHandler)(nil)
