package postgres

import (
	"context"
	"log"

	"job-email-generator/internal/models"
	"job-email-generator/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EmailHistoryRepo implements storage.EmailHistoryRepository.
type EmailHistoryRepo struct {
	pool *pgxpool.Pool
}

// NewEmailHistoryRepo creates a new EmailHistoryRepo.
func NewEmailHistoryRepo(pool *pgxpool.Pool) *EmailHistoryRepo {
	return &EmailHistoryRepo{pool: pool}
}

var _ storage.EmailHistoryRepository = (*EmailHistoryRepo)(nil)

// Insert stores a new history entry. The id is server-assigned when the
// caller leaves it empty.
func (r *EmailHistoryRepo) Insert(ctx context.Context, entry *models.EmailHistory) (*models.EmailHistory, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO email_history
		 (id, user_id, company_name, position, recipient_email, template_id, template_name,
		  sent_date, status, cv_filename, cover_letter_filename, email_subject, email_preview)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		entry.ID, entry.UserID, entry.CompanyName, entry.Position, entry.RecipientEmail,
		entry.TemplateID, entry.TemplateName, entry.SentDate, entry.Status,
		entry.Attachments.CV, entry.Attachments.CoverLetter, entry.EmailSubject, entry.EmailPreview,
	)
	if err != nil {
		log.Printf("Error inserting email history entry for user %s: %v", entry.UserID, err)
		return nil, err
	}

	return entry, nil
}

// ListByUser returns a user's history newest-sent-first. Offset pagination;
// an insert between two pages can shift a row at the boundary, which is
// acceptable for a low-volume personal history view.
func (r *EmailHistoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.EmailHistory, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, company_name, position, recipient_email, template_id, template_name,
		        sent_date, status, cv_filename, cover_letter_filename, email_subject, email_preview
		 FROM email_history
		 WHERE user_id = $1
		 ORDER BY sent_date DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		log.Printf("Error listing email history for user %s: %v", userID, err)
		return nil, err
	}
	defer rows.Close()

	entries := []models.EmailHistory{}
	for rows.Next() {
		var e models.EmailHistory
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.CompanyName, &e.Position, &e.RecipientEmail,
			&e.TemplateID, &e.TemplateName, &e.SentDate, &e.Status,
			&e.Attachments.CV, &e.Attachments.CoverLetter, &e.EmailSubject, &e.EmailPreview,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Delete removes one entry by id, scoped to its owner. A missing id and a
// foreign id both map to storage.ErrNotFound.
func (r *EmailHistoryRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM email_history WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		log.Printf("Error deleting email history entry %s: %v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteAllByUser removes every entry for a user (account-deletion flow).
// Zero rows is fine; a user may never have sent anything.
func (r *EmailHistoryRepo) DeleteAllByUser(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM email_history WHERE user_id = $1`, userID)
	if err != nil {
		log.Printf("Error deleting email history for user %s: %v", userID, err)
		return err
	}
	return nil
}
