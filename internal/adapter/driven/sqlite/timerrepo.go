package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/xsukax/sharetimer/internal/domain/model"
	"github.com/xsukax/sharetimer/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.TimerStore = (*TimerRepo)(nil)

// createdAtLayout keeps every fractional-second digit so the stored strings
// compare lexicographically in chronological order. RFC3339Nano trims
// trailing zeros, which breaks ORDER BY within a second.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// TimerRepo is the SQLite implementation of the TimerStore port interface.
type TimerRepo struct {
	db *DB
}

// NewTimerRepo creates a new TimerRepo backed by the given DB.
func NewTimerRepo(db *DB) *TimerRepo {
	return &TimerRepo{db: db}
}

// Create inserts a new timer and returns the id assigned by the database.
// The insert is a single statement, so a failure leaves no partial record.
func (r *TimerRepo) Create(ctx context.Context, timer model.Timer) (int64, error) {
	const query = `INSERT INTO timers (start_timestamp, duration_seconds, creator_ip, created_at, title)
	               VALUES (?, ?, ?, ?, ?)`

	createdAt := timer.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := r.db.Writer.ExecContext(ctx, query,
		timer.StartTimestamp,
		timer.DurationSeconds,
		timer.CreatorIP,
		createdAt.UTC().Format(createdAtLayout),
		timer.Title,
	)
	if err != nil {
		return 0, fmt.Errorf("insert timer: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("timer insert id: %w", err)
	}

	return id, nil
}

// GetByID retrieves a timer by its primary key. Returns
// driven.ErrTimerNotFound when no timer has the given id.
func (r *TimerRepo) GetByID(ctx context.Context, id int64) (*model.Timer, error) {
	const query = `SELECT id, start_timestamp, duration_seconds, creator_ip, created_at, title
	               FROM timers WHERE id = ?`

	timer, err := scanTimer(r.db.Reader.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get timer %d: %w", id, driven.ErrTimerNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get timer %d: %w", id, err)
	}

	return timer, nil
}

// ListByCreator returns the creator's timers ordered by creation time
// descending, truncated to limit. The id tiebreak keeps the order strict
// when several timers share a creation second.
func (r *TimerRepo) ListByCreator(ctx context.Context, creatorIP string, limit int) ([]model.Timer, error) {
	const query = `SELECT id, start_timestamp, duration_seconds, creator_ip, created_at, title
	               FROM timers
	               WHERE creator_ip = ?
	               ORDER BY created_at DESC, id DESC
	               LIMIT ?`

	rows, err := r.db.Reader.QueryContext(ctx, query, creatorIP, limit)
	if err != nil {
		return nil, fmt.Errorf("list timers for %s: %w", creatorIP, err)
	}
	defer rows.Close()

	var timers []model.Timer
	for rows.Next() {
		timer, err := scanTimer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan timer: %w", err)
		}
		timers = append(timers, *timer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate timers: %w", err)
	}

	return timers, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTimer(s scanner) (*model.Timer, error) {
	var timer model.Timer
	var createdAt string

	err := s.Scan(
		&timer.ID,
		&timer.StartTimestamp,
		&timer.DurationSeconds,
		&timer.CreatorIP,
		&createdAt,
		&timer.Title,
	)
	if err != nil {
		return nil, err
	}

	timer.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}

	return &timer, nil
}

// parseTime tries multiple SQLite datetime formats.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		createdAtLayout,
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05.000",
		time.RFC3339,
		time.RFC3339Nano,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}
