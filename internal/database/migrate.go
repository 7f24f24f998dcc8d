package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema statements are idempotent so Migrate can run on every startup.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS resumes (
		user_id      TEXT PRIMARY KEY,
		data         JSONB NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		last_updated TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS email_history (
		id                    UUID PRIMARY KEY,
		user_id               TEXT NOT NULL,
		company_name          TEXT NOT NULL,
		position              TEXT NOT NULL,
		recipient_email       TEXT NOT NULL,
		template_id           INT NOT NULL,
		template_name         TEXT NOT NULL,
		sent_date             TIMESTAMPTZ NOT NULL,
		status                TEXT NOT NULL,
		cv_filename           TEXT NOT NULL DEFAULT '',
		cover_letter_filename TEXT NOT NULL DEFAULT '',
		email_subject         TEXT NOT NULL,
		email_preview         TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_email_history_user_sent
		ON email_history (user_id, sent_date DESC)`,
}

// Migrate applies the schema. Called once at startup before the server
// accepts traffic.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	log.Println("Database schema is up to date")
	return nil
}
