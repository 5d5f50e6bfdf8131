// Package cooldown persists the time of the last successful refresh and
// derives how long manual refreshes stay disabled.
package cooldown

import (
	"strconv"
	"time"

	"github.com/abelbrown/intercede/internal/logging"
)

// Duration is how long refreshes stay disabled after a successful fetch.
const Duration = 30 * time.Minute

// Key is the persisted entry holding the last fetch time in Unix
// milliseconds.
const Key = "intercede_last_fetch"

// KV is the persistence the cooldown needs. *store.Store satisfies it.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Store tracks the cooldown window. Absent or unreadable state is treated
// as "cooldown expired"; it never blocks the user.
type Store struct {
	kv       KV
	duration time.Duration
	now      func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithDuration overrides the cooldown length.
func WithDuration(d time.Duration) Option {
	return func(s *Store) { s.duration = d }
}

// New creates a Store persisting to kv.
func New(kv KV, opts ...Option) *Store {
	s := &Store{
		kv:       kv,
		duration: Duration,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LastFetch returns the persisted last-fetch time. ok is false when no
// fetch has been recorded or the stored value cannot be read.
func (s *Store) LastFetch() (time.Time, bool) {
	raw, ok, err := s.kv.Get(Key)
	if err != nil {
		logging.Warn("Failed to read cooldown", "error", err)
		return time.Time{}, false
	}
	if !ok {
		return time.Time{}, false
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logging.Warn("Ignoring unreadable cooldown value", "value", raw, "error", err)
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}

// Remaining returns how long refreshes stay disabled, in [0, Duration].
func (s *Store) Remaining() time.Duration {
	last, ok := s.LastFetch()
	if !ok {
		return 0
	}
	remaining := s.duration - s.now().Sub(last)
	if remaining < 0 {
		return 0
	}
	// A last-fetch time in the future (clock stepped back) still caps at one window
	if remaining > s.duration {
		return s.duration
	}
	return remaining
}

// ReadyAt returns when the cooldown ends. The zero time means no
// cooldown has been recorded.
func (s *Store) ReadyAt() time.Time {
	last, ok := s.LastFetch()
	if !ok {
		return time.Time{}
	}
	return last.Add(s.duration)
}

// MarkNow records a successful refresh at the current time. The stored
// value never moves backwards.
func (s *Store) MarkNow() error {
	now := s.now()
	if last, ok := s.LastFetch(); ok && last.After(now) {
		now = last
	}
	if err := s.kv.Set(Key, strconv.FormatInt(now.UnixMilli(), 10)); err != nil {
		return err
	}
	logging.Info("Cooldown started", "until", now.Add(s.duration).Format(time.RFC3339))
	return nil
}

// Reset clears the cooldown so the next refresh is allowed immediately.
func (s *Store) Reset() error {
	if err := s.kv.Delete(Key); err != nil {
		return err
	}
	logging.Info("Cooldown reset")
	return nil
}
