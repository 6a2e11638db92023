package documents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// docRowID is the fixed primary key of the single document row. The
// editor is single-user, so the table never holds more than one row.
const docRowID = 1

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Load reads the stored document text.
func (r *PGRepo) Load(ctx context.Context) (string, error) {
	const query = `
SELECT body
FROM cv_documents
WHERE id = $1`

	var body string
	err := r.DB.QueryRowContext(ctx, query, docRowID).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("load document: %w", err)
	}
	return body, nil
}

// Save upserts the single document row. Last write wins.
func (r *PGRepo) Save(ctx context.Context, text string) error {
	const query = `
INSERT INTO cv_documents (id, body, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (id) DO UPDATE
SET body = EXCLUDED.body, updated_at = now()`

	if _, err := r.DB.ExecContext(ctx, query, docRowID, text); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
