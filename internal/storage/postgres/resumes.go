package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"job-email-generator/internal/models"
	"job-email-generator/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ResumeRepo implements storage.ResumeRepository on top of a resumes table
// holding one JSONB document per user. The document body is schemaless on
// the database side; created_at and last_updated live in columns so the
// server, not the client, owns them.
type ResumeRepo struct {
	pool *pgxpool.Pool
}

// NewResumeRepo creates a new ResumeRepo.
func NewResumeRepo(pool *pgxpool.Pool) *ResumeRepo {
	return &ResumeRepo{pool: pool}
}

var _ storage.ResumeRepository = (*ResumeRepo)(nil)

// GetByUserID loads the resume document for a user. Returns
// storage.ErrNotFound when the user has never saved one.
func (r *ResumeRepo) GetByUserID(ctx context.Context, userID string) (*models.ResumeData, error) {
	var raw []byte
	resume := models.NewResumeData(userID)

	err := r.pool.QueryRow(ctx,
		`SELECT data, created_at, last_updated FROM resumes WHERE user_id = $1`,
		userID,
	).Scan(&raw, &resume.CreatedAt, &resume.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error loading resume for user %s: %v", userID, err)
		return nil, err
	}

	if err := json.Unmarshal(raw, resume); err != nil {
		return nil, fmt.Errorf("failed to decode resume document for user %s: %w", userID, err)
	}
	resume.UserID = userID
	return resume, nil
}

// Upsert stores the whole document, creating it on first save. Concurrent
// saves race with last write wins; there is no version check.
func (r *ResumeRepo) Upsert(ctx context.Context, resume *models.ResumeData) (*models.ResumeData, error) {
	raw, err := json.Marshal(resume)
	if err != nil {
		return nil, fmt.Errorf("failed to encode resume document: %w", err)
	}

	err = r.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, data, created_at, last_updated)
		 VALUES ($1, $2, now(), now())
		 ON CONFLICT (user_id)
		 DO UPDATE SET data = EXCLUDED.data, last_updated = now()
		 RETURNING created_at, last_updated`,
		resume.UserID, raw,
	).Scan(&resume.CreatedAt, &resume.LastUpdated)
	if err != nil {
		log.Printf("Error saving resume for user %s: %v", resume.UserID, err)
		return nil, err
	}

	return resume, nil
}

// Delete removes a user's resume document (account-deletion flow).
func (r *ResumeRepo) Delete(ctx context.Context, userID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM resumes WHERE user_id = $1`, userID)
	if err != nil {
		log.Printf("Error deleting resume for user %s: %v", userID, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
