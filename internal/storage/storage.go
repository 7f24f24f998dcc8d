package storage

import (
	"context"

	"job-email-generator/internal/models"

	"github.com/google/uuid"
)

// ResumeRepository defines the interface for resume document operations.
// One document per userId; Upsert overwrites the whole body.
type ResumeRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.ResumeData, error)
	Upsert(ctx context.Context, resume *models.ResumeData) (*models.ResumeData, error)
	Delete(ctx context.Context, userID string) error
}

// EmailHistoryRepository defines the interface for email history operations.
// Entries are insert-only except for deletion by id.
type EmailHistoryRepository interface {
	Insert(ctx context.Context, entry *models.EmailHistory) (*models.EmailHistory, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.EmailHistory, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
	DeleteAllByUser(ctx context.Context, userID string) error
}
