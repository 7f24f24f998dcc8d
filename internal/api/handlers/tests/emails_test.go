package routes_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"job-email-generator/internal/api/handlers"
	"job-email-generator/internal/api/middleware"
	"job-email-generator/internal/api/routes"
	"job-email-generator/internal/email"
	"job-email-generator/internal/mailer"
	"job-email-generator/internal/models"
	"job-email-generator/internal/services"
	"job-email-generator/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockEmailService is a mock type for the services.EmailService interface
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) Generate(ctx context.Context, userID string, req *dto.GenerateEmailRequest) (*email.GeneratedEmail, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*email.GeneratedEmail), args.Error(1)
}

func (m *MockEmailService) SendGmail(ctx context.Context, userID string, req *dto.SendEmailRequest) (*models.EmailHistory, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EmailHistory), args.Error(1)
}

func (m *MockEmailService) BuildMailto(ctx context.Context, userID string, req *dto.MailtoRequest) (string, *models.EmailHistory, error) {
	args := m.Called(ctx, userID, req)
	var entry *models.EmailHistory
	if args.Get(1) != nil {
		entry = args.Get(1).(*models.EmailHistory)
	}
	return args.String(0), entry, args.Error(2)
}

// Ensure mock implements the interface
var _ services.EmailService = (*MockEmailService)(nil)

func setupEmailRouter(svc services.EmailService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	emailHandler := handlers.NewEmailHandler(svc, validator.New())
	templateHandler := handlers.NewTemplateHandler()
	router := gin.New()
	group := router.Group("/api/v1")
	routes.RegisterEmailRoutes(group, emailHandler, templateHandler, middleware.JWTAuthMiddleware(testSecret))
	return router
}

func TestEmailHandler_GenerateEmail(t *testing.T) {
	mockSvc := new(MockEmailService)
	router := setupEmailRouter(mockSvc)

	t.Run("Success", func(t *testing.T) {
		generated := &email.GeneratedEmail{
			Subject:  "Application for Engineer - Jane Doe",
			BodyText: "Dear Hiring Manager,",
			BodyHTML: "<p>Dear Hiring Manager,</p>",
		}
		mockSvc.On("Generate", mock.Anything, testUserID, mock.Anything).Return(generated, nil).Once()

		body, _ := json.Marshal(dto.GenerateEmailRequest{
			TemplateID:     1,
			CompanyName:    "Acme",
			Position:       "Engineer",
			RecipientEmail: "hr@acme.example",
		})
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(t, http.MethodPost, "/api/v1/emails/generate", body))

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp dto.GenerateEmailResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, generated.Subject, resp.Subject)
		assert.Equal(t, generated.BodyHTML, resp.BodyHTML)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Zero template id passes validation", func(t *testing.T) {
		generated := &email.GeneratedEmail{
			Subject:  "Application for Engineer - Jane Doe",
			BodyText: "Dear Hiring Manager,",
			BodyHTML: "<p>Dear Hiring Manager,</p>",
		}
		mockSvc.On("Generate", mock.Anything, testUserID, mock.MatchedBy(func(req *dto.GenerateEmailRequest) bool {
			return req.TemplateID == 0
		})).Return(generated, nil).Once()

		body, _ := json.Marshal(dto.GenerateEmailRequest{
			TemplateID:     0,
			CompanyName:    "Acme",
			Position:       "Engineer",
			RecipientEmail: "hr@acme.example",
		})
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(t, http.MethodPost, "/api/v1/emails/generate", body))

		assert.Equal(t, http.StatusOK, recorder.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Validation failure", func(t *testing.T) {
		mockSvc := new(MockEmailService)
		router := setupEmailRouter(mockSvc)

		body, _ := json.Marshal(dto.GenerateEmailRequest{
			TemplateID:  1,
			CompanyName: "Acme",
			// Position and RecipientEmail missing.
		})
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(t, http.MethodPost, "/api/v1/emails/generate", body))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Validation failed")
		mockSvc.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestEmailHandler_SendEmail(t *testing.T) {
	sendBody := func() []byte {
		body, _ := json.Marshal(dto.SendEmailRequest{
			TemplateID:     1,
			CompanyName:    "Acme",
			Position:       "Engineer",
			RecipientEmail: "hr@acme.example",
			AccessToken:    "ya29.token",
		})
		return body
	}

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockEmailService)
		router := setupEmailRouter(mockSvc)

		entry := &models.EmailHistory{UserID: testUserID, Status: models.EmailStatusSent}
		mockSvc.On("SendGmail", mock.Anything, testUserID, mock.Anything).Return(entry, nil).Once()

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(t, http.MethodPost, "/api/v1/emails/send", sendBody()))

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp dto.SendEmailResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Gmail auth expired surfaces authError flag", func(t *testing.T) {
		mockSvc := new(MockEmailService)
		router := setupEmailRouter(mockSvc)

		mockSvc.On("SendGmail", mock.Anything, testUserID, mock.Anything).Return(nil, mailer.ErrAuthExpired).Once()

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(t, http.MethodPost, "/api/v1/emails/send", sendBody()))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"authError":true`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Upstream failure maps to bad gateway", func(t *testing.T) {
		mockSvc := new(MockEmailService)
		router := setupEmailRouter(mockSvc)

		mockSvc.On("SendGmail", mock.Anything, testUserID, mock.Anything).Return(nil, assert.AnError).Once()

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(t, http.MethodPost, "/api/v1/emails/send", sendBody()))

		assert.Equal(t, http.StatusBadGateway, recorder.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestEmailHandler_BuildMailto(t *testing.T) {
	mockSvc := new(MockEmailService)
	router := setupEmailRouter(mockSvc)

	entry := &models.EmailHistory{UserID: testUserID, Status: models.EmailStatusPending}
	mockSvc.On("BuildMailto", mock.Anything, testUserID, mock.Anything).
		Return("mailto:hr@acme.example?subject=Hello", entry, nil).Once()

	body, _ := json.Marshal(dto.MailtoRequest{
		TemplateID:     1,
		CompanyName:    "Acme",
		Position:       "Engineer",
		RecipientEmail: "hr@acme.example",
	})
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, authedRequest(t, http.MethodPost, "/api/v1/emails/mailto", body))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp dto.MailtoResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "mailto:hr@acme.example?subject=Hello", resp.URI)
	require.NotNil(t, resp.Entry)
	assert.Equal(t, models.EmailStatusPending, resp.Entry.Status)
	mockSvc.AssertExpectations(t)
}

func TestTemplateCatalogRoute(t *testing.T) {
	mockSvc := new(MockEmailService)
	router := setupEmailRouter(mockSvc)

	// The catalog needs no token.
	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodGet, "/api/v1/templates", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var catalog []email.TemplateMetadata
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &catalog))
	require.Len(t, catalog, 6)
	assert.Equal(t, "Professional Introduction", catalog[0].Name)
}
