package handlers

import (
	"errors"
	"log"
	"net/http"

	"job-email-generator/internal/api/middleware"
	"job-email-generator/internal/services"
	"job-email-generator/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ResumeHandler holds the service dependencies for resume operations
type ResumeHandler struct {
	service   services.ResumeService
	autosaver *services.AutoSaver
	validator *validator.Validate
}

// NewResumeHandler creates a new ResumeHandler
func NewResumeHandler(service services.ResumeService, autosaver *services.AutoSaver, validate *validator.Validate) *ResumeHandler {
	return &ResumeHandler{service: service, autosaver: autosaver, validator: validate}
}

// GetResume godoc
// @Summary      Load the caller's resume
// @Description  Returns the caller's resume document, or an explicit null when none has been saved yet.
// @Tags         resume
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ResumeResponse "Resume document or null"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /resume [get]
func (h *ResumeHandler) GetResume(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resume, err := h.service.Load(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrResumeNotFound) {
			// A missing resume is a normal first-visit state, not an error.
			c.JSON(http.StatusOK, dto.ResumeResponse{Resume: nil})
			return
		}
		log.Printf("Error loading resume for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load resume"})
		return
	}

	c.JSON(http.StatusOK, dto.ResumeResponse{Resume: resume})
}

// SaveResume godoc
// @Summary      Save the caller's resume
// @Description  Overwrites the whole resume document. An explicit save cancels any pending autosave.
// @Tags         resume
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        resume body dto.SaveResumeRequest true "Full resume document"
// @Success      200  {object}  dto.ResumeResponse "Saved document with server-assigned timestamps"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /resume [post]
func (h *ResumeHandler) SaveResume(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.SaveResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": formatValidationErrors(validationErrors)})
		return
	}

	// The explicit save carries the newest document; a queued autosave would
	// only replay an older one.
	h.autosaver.Cancel(userID)

	resume, err := h.service.Save(c.Request.Context(), userID, &req)
	if err != nil {
		log.Printf("Error saving resume for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save resume"})
		return
	}

	c.JSON(http.StatusOK, dto.ResumeResponse{Resume: resume})
}

// AutoSaveResume godoc
// @Summary      Queue a debounced resume save
// @Description  Schedules a save of the submitted document. Rapid calls within the debounce window coalesce into one save of the last payload.
// @Tags         resume
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        resume body dto.SaveResumeRequest true "Full resume document"
// @Success      202  {object}  map[string]bool "Save scheduled"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Router       /resume/autosave [post]
func (h *ResumeHandler) AutoSaveResume(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.SaveResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	h.autosaver.Schedule(userID, &req)
	c.JSON(http.StatusAccepted, gin.H{"scheduled": true})
}

// DeleteResume godoc
// @Summary      Delete the caller's resume
// @Description  Removes the resume document and the caller's email history (account-deletion flow).
// @Tags         resume
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]bool "Deleted"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      404  {object}  map[string]string "No resume to delete"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /resume [delete]
func (h *ResumeHandler) DeleteResume(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	h.autosaver.Cancel(userID)

	if err := h.service.Delete(c.Request.Context(), userID); err != nil {
		if errors.Is(err, services.ErrResumeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
			return
		}
		log.Printf("Error deleting resume for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete resume"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
