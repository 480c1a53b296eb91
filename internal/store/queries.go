package store

import (
	"context"
	"fmt"
	"time"

	"github.com/vijay-prabhu/internmatch/internal/posting"
)

// SavePostings upserts a batch of postings in one transaction. A posting
// fetched again keeps its ID (the ID is derived from identity fields) and
// refreshes everything else.
func (s *Store) SavePostings(ctx context.Context, postings []posting.Posting) error {
	if len(postings) == 0 {
		return nil
	}

	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO postings (
			id, title, company, location, stipend, days_old,
			relevance, apply_url, description, source, fetched_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			stipend = excluded.stipend,
			days_old = excluded.days_old,
			relevance = excluded.relevance,
			apply_url = excluded.apply_url,
			description = excluded.description,
			source = excluded.source,
			fetched_at = excluded.fetched_at
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, p := range postings {
		id := p.ID
		if id == "" {
			id = p.MakeID()
		}
		if _, err := stmt.ExecContext(ctx, id, p.Title, p.Company, p.Location,
			p.Stipend, p.AgeDays, p.Relevance, p.ApplyURL, p.Description,
			p.Source, p.FetchedAt); err != nil {
			return fmt.Errorf("failed to save posting %q: %w", p.Title, err)
		}
	}

	return tx.Commit()
}

// ListRecent returns postings fetched at or after the given time, oldest
// fetch first so re-ranking preserves fetch order.
func (s *Store) ListRecent(ctx context.Context, since time.Time) ([]posting.Posting, error) {
	rows, err := s.QueryContext(ctx, `
		SELECT id, title, company, location, stipend, days_old,
		       relevance, apply_url, description, source, fetched_at
		FROM postings
		WHERE fetched_at >= ?
		ORDER BY fetched_at ASC, id ASC
	`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list postings: %w", err)
	}
	defer rows.Close()

	var postings []posting.Posting
	for rows.Next() {
		var p posting.Posting
		if err := rows.Scan(&p.ID, &p.Title, &p.Company, &p.Location,
			&p.Stipend, &p.AgeDays, &p.Relevance, &p.ApplyURL,
			&p.Description, &p.Source, &p.FetchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan posting: %w", err)
		}
		postings = append(postings, p)
	}

	return postings, rows.Err()
}

// Count returns the number of cached postings.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.QueryRowContext(ctx, `SELECT COUNT(*) FROM postings`).Scan(&n)
	return n, err
}

// Prune deletes postings fetched before the given time and returns how
// many were removed.
func (s *Store) Prune(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.ExecContext(ctx, `DELETE FROM postings WHERE fetched_at < ?`, before)
	if err != nil {
		return 0, fmt.Errorf("failed to prune postings: %w", err)
	}
	return res.RowsAffected()
}
