package handlers

import (
	"net/http"

	"job-email-generator/internal/email"

	"github.com/gin-gonic/gin"
)

// TemplateHandler serves the static template catalog
type TemplateHandler struct{}

// NewTemplateHandler creates a new TemplateHandler
func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

// ListTemplates godoc
// @Summary      List email templates
// @Description  Returns the catalog of the six built-in email templates with names, subjects and previews.
// @Tags         templates
// @Produce      json
// @Success      200  {array}  email.TemplateMetadata "Template catalog"
// @Router       /templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, email.TemplateRegistry)
}
