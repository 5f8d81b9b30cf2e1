package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/google/uuid"
)

// render-related database operations

// ErrNotFound indicates the requested render record does not exist
var ErrNotFound = errors.New("render not found")

// CreateRender inserts a new render record, retrying on SQLite lock errors
func (db *DB) CreateRender(ctx context.Context, render *Render) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	if render.GUID == "" {
		render.GUID = uuid.New().String()
	}
	if render.CreatedAt.IsZero() {
		render.CreatedAt = time.Now()
	}

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO renders (guid, category, style, prompt, created_at)
			VALUES (?, ?, ?, ?, ?)`

		result, err := db.conn.ExecContext(ctx, query,
			render.GUID, render.Category, render.Style, render.Prompt, render.CreatedAt)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("create render: %w", err)}
		}

		id, err := result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get insert id: %w", err)}
		}
		render.ID = id
		return nil
	})
}

// GetRender retrieves a render record by its GUID
func (db *DB) GetRender(ctx context.Context, guid string) (*Render, error) {
	var render Render
	err := db.conn.GetContext(ctx, &render, "SELECT * FROM renders WHERE guid = ?", guid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, guid)
	}
	if err != nil {
		return nil, fmt.Errorf("get render: %w", err)
	}
	return &render, nil
}

// UpdateFeedback attaches a rating and tags to an existing render record.
// Unknown GUIDs return ErrNotFound so the caller can surface the failure.
func (db *DB) UpdateFeedback(ctx context.Context, guid string, rating int, tags []string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `UPDATE renders SET rating = ?, tags = ? WHERE guid = ?`

		result, err := db.conn.ExecContext(ctx, query, rating, Tags(tags), guid)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("update feedback: %w", err)}
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get rows affected: %w", err)}
		}
		if affected == 0 {
			return &criticalError{err: fmt.Errorf("%w: %s", ErrNotFound, guid)}
		}
		return nil
	})
}

// TopRatedPrompts returns the most recent five-star prompt texts for
// the given category and style pair, newest first.
func (db *DB) TopRatedPrompts(ctx context.Context, category, style string, limit int) ([]string, error) {
	query := `
		SELECT prompt FROM renders
		WHERE category = ? AND style = ? AND rating = 5
		ORDER BY created_at DESC
		LIMIT ?`

	var prompts []string
	err := db.conn.SelectContext(ctx, &prompts, query, category, style, limit)
	if err != nil {
		return nil, fmt.Errorf("get top rated prompts: %w", err)
	}
	return prompts, nil
}

// LowRatedRenders returns recent poorly rated records for a category,
// style-agnostic, skipping rows without feedback tags.
func (db *DB) LowRatedRenders(ctx context.Context, category string, limit int) ([]Render, error) {
	query := `
		SELECT * FROM renders
		WHERE category = ? AND rating IS NOT NULL AND rating < 3 AND tags IS NOT NULL
		ORDER BY created_at DESC
		LIMIT ?`

	var renders []Render
	err := db.conn.SelectContext(ctx, &renders, query, category, limit)
	if err != nil {
		return nil, fmt.Errorf("get low rated renders: %w", err)
	}
	return renders, nil
}

// ListRenders retrieves render records with optional category/style filters
func (db *DB) ListRenders(ctx context.Context, category, style string, limit int) ([]Render, error) {
	query := "SELECT * FROM renders"
	conds := []string{}
	args := []interface{}{}

	if category != "" {
		conds = append(conds, "category = ?")
		args = append(args, category)
	}
	if style != "" {
		conds = append(conds, "style = ?")
		args = append(args, style)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, limit)

	var renders []Render
	err := db.conn.SelectContext(ctx, &renders, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list renders: %w", err)
	}
	return renders, nil
}

// FeedbackStats returns aggregate feedback statistics
func (db *DB) FeedbackStats(ctx context.Context) (*FeedbackStats, error) {
	stats := &FeedbackStats{ByRating: make(map[string]int64)}

	err := db.conn.GetContext(ctx, &stats.Total, "SELECT COUNT(*) FROM renders")
	if err != nil {
		return nil, fmt.Errorf("get render count: %w", err)
	}

	var ratingCounts []struct {
		Rating int64 `db:"rating"`
		Count  int64 `db:"count"`
	}
	query := `
		SELECT rating, COUNT(*) as count FROM renders
		WHERE rating IS NOT NULL
		GROUP BY rating`

	if err := db.conn.SelectContext(ctx, &ratingCounts, query); err != nil {
		return nil, fmt.Errorf("get rating counts: %w", err)
	}
	for _, rc := range ratingCounts {
		stats.ByRating[fmt.Sprintf("%d", rc.Rating)] = rc.Count
		stats.Rated += rc.Count
	}

	var avg sql.NullFloat64
	err = db.conn.GetContext(ctx, &avg, "SELECT AVG(rating) FROM renders WHERE rating IS NOT NULL")
	if err != nil {
		return nil, fmt.Errorf("get average rating: %w", err)
	}
	if avg.Valid {
		stats.Average = avg.Float64
	}

	return stats, nil
}

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}
