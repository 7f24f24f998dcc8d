package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"job-email-generator/internal/api/middleware"
	"job-email-generator/internal/services"
	"job-email-generator/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// EmailHistoryHandler holds the service dependency for history operations
type EmailHistoryHandler struct {
	service services.EmailHistoryService
}

// NewEmailHistoryHandler creates a new EmailHistoryHandler
func NewEmailHistoryHandler(service services.EmailHistoryService) *EmailHistoryHandler {
	return &EmailHistoryHandler{service: service}
}

// ListHistory godoc
// @Summary      List the caller's email history
// @Description  Returns send attempts newest first. Defaults to the 50 most recent when no paging is given.
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "Page size (default 50, max 200)"
// @Param        offset  query  int  false  "Rows to skip"
// @Success      200  {object}  dto.EmailHistoryListResponse "History page"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /history [get]
func (h *EmailHistoryHandler) ListHistory(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, err := h.service.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		log.Printf("Error listing email history for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load email history"})
		return
	}

	// Echo the paging values the service actually applied.
	if limit <= 0 {
		limit = services.DefaultHistoryLimit
	} else if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	c.JSON(http.StatusOK, dto.EmailHistoryListResponse{Entries: entries, Limit: limit, Offset: offset})
}

// DeleteHistory godoc
// @Summary      Delete one history entry
// @Description  Removes a single send record by id. Unknown or foreign ids report not found.
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "History entry ID" Format(uuid)
// @Success      200  {object}  dto.DeleteHistoryResponse "Deleted"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      404  {object}  map[string]string "Entry not found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /history/{id} [delete]
func (h *EmailHistoryHandler) DeleteHistory(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entryID := c.Param("id")
	if err := h.service.Delete(c.Request.Context(), userID, entryID); err != nil {
		if errors.Is(err, services.ErrHistoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "History entry not found"})
			return
		}
		log.Printf("Error deleting history entry %s for user %s: %v", entryID, userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete history entry"})
		return
	}

	c.JSON(http.StatusOK, dto.DeleteHistoryResponse{Success: true})
}
