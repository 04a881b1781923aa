package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// JournalRepo records game notifications for later review.
type JournalRepo struct {
	db *sqlx.DB
}

func NewJournalRepo(db *sqlx.DB) *JournalRepo {
	return &JournalRepo{db: db}
}

// Insert stores an entry, assigning an id and timestamp when missing.
func (r *JournalRepo) Insert(ctx context.Context, e JournalEntry) (string, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO journal (id, kind, objective_id, text, chapter, level, created_at)
		VALUES (:id, :kind, :objective_id, :text, :chapter, :level, :created_at)
	`, e)
	if err != nil {
		return "", fmt.Errorf("journal insert: %w", err)
	}
	return e.ID, nil
}

// Recent returns up to limit entries, newest first.
func (r *JournalRepo) Recent(ctx context.Context, limit int) ([]JournalEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	var out []JournalEntry
	err := r.db.SelectContext(ctx, &out, `
		SELECT id, kind, COALESCE(objective_id, '') AS objective_id, text,
			COALESCE(chapter, 0) AS chapter, COALESCE(level, 0) AS level, created_at
		FROM journal
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("journal recent: %w", err)
	}
	return out, nil
}

func (r *JournalRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM journal`); err != nil {
		return 0, fmt.Errorf("journal count: %w", err)
	}
	return n, nil
}

// Prune keeps the newest keep entries and deletes the rest. It returns the
// number of rows removed.
func (r *JournalRepo) Prune(ctx context.Context, keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}
	var removed int
	err := WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var ids []string
		if err := tx.SelectContext(ctx, &ids, `
			SELECT id FROM journal
			ORDER BY created_at DESC, rowid DESC
			LIMIT -1 OFFSET ?
		`, keep); err != nil {
			return fmt.Errorf("journal prune select: %w", err)
		}
		for _, id := range ids {
			if _, err := tx.ExecContext(ctx, `DELETE FROM journal WHERE id = ?`, id); err != nil {
				return fmt.Errorf("journal prune delete: %w", err)
			}
		}
		removed = len(ids)
		return nil
	})
	return removed, err
}
