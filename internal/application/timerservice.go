// Package application contains the use-case services that orchestrate the
// domain model over the driven ports.
package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xsukax/sharetimer/internal/domain/model"
	"github.com/xsukax/sharetimer/internal/domain/port/driven"
)

// MaxDurationSeconds caps a timer at 365 days.
const MaxDurationSeconds = 365 * 24 * 3600

// Validation errors surfaced to the user; nothing is persisted when either
// is returned.
var (
	ErrInvalidDuration = errors.New("timer duration must be greater than 0 seconds")
	ErrDurationTooLong = errors.New("maximum timer duration is 365 days")
)

// CreateTimerInput carries the parsed creation fields. Negative time fields
// are clamped to zero rather than rejected; an empty title defaults to
// model.DefaultTitle.
type CreateTimerInput struct {
	Days      int64
	Hours     int64
	Minutes   int64
	Seconds   int64
	Title     string
	CreatorIP string
}

// ComputeDuration converts day/hour/minute/second fields into total seconds.
// Each field is independently clamped to be non-negative first.
func ComputeDuration(days, hours, minutes, seconds int64) int64 {
	return clamp(days)*86400 + clamp(hours)*3600 + clamp(minutes)*60 + clamp(seconds)
}

func clamp(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

// TimerService implements the create/view/list use cases.
type TimerService struct {
	store       driven.TimerStore
	recentLimit int
	now         func() time.Time
}

// NewTimerService creates a TimerService. recentLimit bounds ListRecent.
func NewTimerService(store driven.TimerStore, recentLimit int) *TimerService {
	return &TimerService{
		store:       store,
		recentLimit: recentLimit,
		now:         time.Now,
	}
}

// Create validates the input, persists a new timer starting now, and returns
// the stored record with its assigned id. Returns ErrInvalidDuration when the
// computed total is not positive and ErrDurationTooLong past the 365-day cap.
func (s *TimerService) Create(ctx context.Context, in CreateTimerInput) (*model.Timer, error) {
	total := ComputeDuration(in.Days, in.Hours, in.Minutes, in.Seconds)
	if total <= 0 {
		return nil, ErrInvalidDuration
	}
	if total > MaxDurationSeconds {
		return nil, ErrDurationTooLong
	}

	now := s.now()
	timer := model.Timer{
		StartTimestamp:  now.Unix(),
		DurationSeconds: total,
		CreatorIP:       in.CreatorIP,
		CreatedAt:       now.UTC(),
		Title:           model.NormalizeTitle(in.Title),
	}

	id, err := s.store.Create(ctx, timer)
	if err != nil {
		return nil, fmt.Errorf("create timer: %w", err)
	}
	timer.ID = id

	return &timer, nil
}

// Get returns the timer with the given id, or driven.ErrTimerNotFound.
func (s *TimerService) Get(ctx context.Context, id int64) (*model.Timer, error) {
	timer, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, driven.ErrTimerNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get timer %d: %w", id, err)
	}
	return timer, nil
}

// ListRecent returns the creator's most recent timers, newest first,
// truncated to the configured limit.
func (s *TimerService) ListRecent(ctx context.Context, creatorIP string) ([]model.Timer, error) {
	timers, err := s.store.ListByCreator(ctx, creatorIP, s.recentLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent timers: %w", err)
	}
	return timers, nil
}
