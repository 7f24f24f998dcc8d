package handlers

import (
	"errors"
	"log"
	"net/http"

	"job-email-generator/internal/api/middleware"
	"job-email-generator/internal/mailer"
	"job-email-generator/internal/services"
	"job-email-generator/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// EmailHandler holds the service dependency for generation and sending
type EmailHandler struct {
	service   services.EmailService
	validator *validator.Validate
}

// NewEmailHandler creates a new EmailHandler
func NewEmailHandler(service services.EmailService, validate *validator.Validate) *EmailHandler {
	return &EmailHandler{service: service, validator: validate}
}

// GenerateEmail godoc
// @Summary      Generate an application email
// @Description  Renders an email from the caller's resume and the chosen template. Unknown template ids fall back to the first template; users without a resume get a generic email.
// @Tags         emails
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.GenerateEmailRequest true "Template and job details"
// @Success      200  {object}  dto.GenerateEmailResponse "Generated email"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /emails/generate [post]
func (h *EmailHandler) GenerateEmail(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.GenerateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": formatValidationErrors(validationErrors)})
		return
	}

	generated, err := h.service.Generate(c.Request.Context(), userID, &req)
	if err != nil {
		log.Printf("Error generating email for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate email"})
		return
	}

	c.JSON(http.StatusOK, dto.GenerateEmailResponse{
		Subject:  generated.Subject,
		BodyText: generated.BodyText,
		BodyHTML: generated.BodyHTML,
	})
}

// SendEmail godoc
// @Summary      Send an application email via Gmail
// @Description  Renders the email and sends it through the Gmail API with the caller's OAuth token. Every attempt is recorded in history.
// @Tags         emails
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.SendEmailRequest true "Template, job details, token and attachments"
// @Success      200  {object}  dto.SendEmailResponse "Email sent"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401  {object}  map[string]interface{} "Unauthorized or Gmail token expired (authError=true)"
// @Failure      502  {object}  map[string]string "Gmail send failed"
// @Router       /emails/send [post]
func (h *EmailHandler) SendEmail(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": formatValidationErrors(validationErrors)})
		return
	}

	entry, err := h.service.SendGmail(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, mailer.ErrAuthExpired) {
			// The client treats authError as a signal to re-run the OAuth flow.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Gmail authorization expired", "authError": true})
			return
		}
		log.Printf("Error sending email for user %s: %v", userID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send email"})
		return
	}

	c.JSON(http.StatusOK, dto.SendEmailResponse{Success: true, Entry: entry})
}

// BuildMailto godoc
// @Summary      Build a mailto link for the email
// @Description  Renders the email and returns a mailto: URI for the caller's own mail client. Attachments are noted in the body for manual attaching. The attempt is recorded as pending.
// @Tags         emails
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.MailtoRequest true "Template, job details and attachment names"
// @Success      200  {object}  dto.MailtoResponse "Mailto URI"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /emails/mailto [post]
func (h *EmailHandler) BuildMailto(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.MailtoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": formatValidationErrors(validationErrors)})
		return
	}

	uri, entry, err := h.service.BuildMailto(c.Request.Context(), userID, &req)
	if err != nil {
		log.Printf("Error building mailto for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build mailto link"})
		return
	}

	c.JSON(http.StatusOK, dto.MailtoResponse{URI: uri, Entry: entry})
}
