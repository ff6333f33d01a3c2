// Package driven defines the driven ports the application core depends on.
package driven

import (
	"context"
	"errors"

	"github.com/xsukax/sharetimer/internal/domain/model"
)

// ErrTimerNotFound indicates the requested timer id does not exist.
var ErrTimerNotFound = errors.New("timer not found")

// TimerStore defines the driven port for timer persistence. Timers are
// insert-only: there are no update or delete operations anywhere.
// GetByID returns ErrTimerNotFound when no timer has the given id.
type TimerStore interface {
	Create(ctx context.Context, timer model.Timer) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Timer, error)
	ListByCreator(ctx context.Context, creatorIP string, limit int) ([]model.Timer, error)
}
