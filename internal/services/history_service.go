package services

import (
	"context"
	"errors"
	"fmt"

	"job-email-generator/internal/models"
	"job-email-generator/internal/storage"

	"github.com/google/uuid"
)

const (
	// DefaultHistoryLimit is applied when the caller does not page explicitly.
	DefaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

type emailHistoryService struct {
	history storage.EmailHistoryRepository
}

// NewEmailHistoryService creates a new EmailHistoryService.
func NewEmailHistoryService(history storage.EmailHistoryRepository) EmailHistoryService {
	return &emailHistoryService{history: history}
}

// Record persists a send attempt. The id and sent date are assigned by the
// repository when left empty.
func (s *emailHistoryService) Record(ctx context.Context, entry *models.EmailHistory) (*models.EmailHistory, error) {
	saved, err := s.history.Insert(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to record email history: %w", err)
	}
	return saved, nil
}

// List returns the user's history newest-sent-first. Out-of-range paging
// values are clamped rather than rejected.
func (s *emailHistoryService) List(ctx context.Context, userID string, limit, offset int) ([]models.EmailHistory, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := s.history.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list email history: %w", err)
	}
	return entries, nil
}

// Delete removes one entry by id. The entry must belong to the calling user;
// a mismatch is reported the same way as a missing id.
func (s *emailHistoryService) Delete(ctx context.Context, userID, entryID string) error {
	id, err := uuid.Parse(entryID)
	if err != nil {
		return ErrHistoryNotFound
	}

	if err := s.history.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrHistoryNotFound
		}
		return fmt.Errorf("failed to delete email history entry: %w", err)
	}
	return nil
}
