package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"chefctl/internal/modules/history/domain"
	historyout "chefctl/internal/modules/history/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteSubmissionStore journals submissions in a local database file next
// to the credentials blob.
type SQLiteSubmissionStore struct {
	db *sql.DB
}

func NewSQLiteSubmissionStore(dbPath string) (historyout.SubmissionStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteSubmissionStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteSubmissionStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS submissions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  date TEXT NOT NULL,
  menu_id TEXT NOT NULL,
  order_id TEXT NOT NULL,
  foods TEXT NOT NULL,
  submitted_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create submissions table: %w", err)
	}
	return nil
}

func (s *SQLiteSubmissionStore) Append(ctx context.Context, submission domain.Submission) error {
	foods, err := json.Marshal(submission.Foods)
	if err != nil {
		return fmt.Errorf("encode foods: %w", err)
	}
	const stmt = `
INSERT INTO submissions (date, menu_id, order_id, foods, submitted_at)
VALUES (?, ?, ?, ?, ?);
`
	_, err = s.db.ExecContext(ctx, stmt,
		submission.Date,
		submission.MenuID,
		submission.OrderID,
		string(foods),
		submission.SubmittedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

func (s *SQLiteSubmissionStore) List(ctx context.Context, limit int) ([]domain.Submission, error) {
	const query = `
SELECT id, date, menu_id, order_id, foods, submitted_at
FROM submissions
ORDER BY id DESC
LIMIT ?;
`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	var out []domain.Submission
	for rows.Next() {
		var sub domain.Submission
		var foods, submittedAt string
		if err := rows.Scan(&sub.ID, &sub.Date, &sub.MenuID, &sub.OrderID, &foods, &submittedAt); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		if err := json.Unmarshal([]byte(foods), &sub.Foods); err != nil {
			return nil, fmt.Errorf("decode foods: %w", err)
		}
		ts, err := time.Parse(time.RFC3339, submittedAt)
		if err != nil {
			return nil, fmt.Errorf("parse submitted_at: %w", err)
		}
		sub.SubmittedAt = ts
		out = append(out, sub)
	}
	return out, rows.Err()
}
