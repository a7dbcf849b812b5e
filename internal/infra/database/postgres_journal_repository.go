// internal/infra/database/postgres_journal_repository.go
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"homework_status_bot/internal/domain/homework"

	"github.com/lib/pq"
)

const journalSchema = `CREATE TABLE IF NOT EXISTS homework_notifications (
	id            BIGSERIAL PRIMARY KEY,
	homework_name TEXT        NOT NULL,
	status        TEXT        NOT NULL,
	message       TEXT        NOT NULL,
	sent_at       TIMESTAMPTZ NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// PostgresJournalRepository records every delivered notification.
type PostgresJournalRepository struct {
	db *sql.DB
}

func NewPostgresJournalRepository(db *sql.DB) *PostgresJournalRepository {
	return &PostgresJournalRepository{db: db}
}

// EnsureSchema creates the journal table if it does not exist yet.
func (r *PostgresJournalRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, journalSchema); err != nil {
		return fmt.Errorf("error creating homework_notifications table: %w", err)
	}
	return nil
}

func (r *PostgresJournalRepository) Record(ctx context.Context, d *homework.Delivery) error {
	query := `INSERT INTO homework_notifications (homework_name, status, message, sent_at)
               VALUES ($1, $2, $3, $4)
               RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, d.HomeworkName, string(d.Status), d.Message, d.SentAt).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("error recording delivery (%s): %w", pqErr.Code.Name(), err)
		}
		return fmt.Errorf("error recording delivery: %w", err)
	}
	return nil
}
