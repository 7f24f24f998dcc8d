package services

import (
	"context"

	"job-email-generator/internal/email"
	"job-email-generator/internal/models"
	"job-email-generator/internal/transport/dto"
)

type ResumeService interface {
	Load(ctx context.Context, userID string) (*models.ResumeData, error)
	Save(ctx context.Context, userID string, req *dto.SaveResumeRequest) (*models.ResumeData, error)
	Delete(ctx context.Context, userID string) error
}

type EmailHistoryService interface {
	Record(ctx context.Context, entry *models.EmailHistory) (*models.EmailHistory, error)
	List(ctx context.Context, userID string, limit, offset int) ([]models.EmailHistory, error)
	Delete(ctx context.Context, userID, entryID string) error
}

type EmailService interface {
	Generate(ctx context.Context, userID string, req *dto.GenerateEmailRequest) (*email.GeneratedEmail, error)
	SendGmail(ctx context.Context, userID string, req *dto.SendEmailRequest) (*models.EmailHistory, error)
	BuildMailto(ctx context.Context, userID string, req *dto.MailtoRequest) (string, *models.EmailHistory, error)
}
