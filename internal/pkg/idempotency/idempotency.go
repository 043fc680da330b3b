// Package idempotency guards at-least-once message delivery. Each logical
// operation is keyed in Redis; the first consumer to claim the key runs the
// work, later deliveries of the same key are rejected with a sentinel error.
package idempotency

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrAlreadyInProgress = errors.New("operation already in progress")
	ErrAlreadyCompleted  = errors.New("operation already completed")
	ErrAlreadyFailed     = errors.New("operation already failed")
	ErrInvalidState      = errors.New("invalid state")
)

// State is what Acquire found under the key.
type State string

const (
	StateNone       State = "none"
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
	StateFailed     State = "failed"
	StateError      State = "error"
)

func (s State) String() string { return string(s) }

// Idempotency is the consumer-facing surface. Exec covers the common path;
// the lower-level methods exist for callers that need the state transition
// split across process boundaries.
type Idempotency interface {
	Acquire(ctx context.Context, key string, lockDuration time.Duration) (State, error)
	MarkCompleted(ctx context.Context, key string, ttl time.Duration) error
	MarkFailed(ctx context.Context, key string, ttl time.Duration) error
	Exec(ctx context.Context, key string, fn func(context.Context) error, opts ...Option) error
}

const (
	keyPrefix = "idempotency:"

	defaultLockDuration = time.Minute
	defaultStateTTL     = time.Minute
)

// Option tunes a single Exec call.
type Option func(*execOptions)

type execOptions struct {
	lockDuration time.Duration
	stateTTL     time.Duration
}

// WithLockDuration caps how long a crashed worker can hold the in-progress
// lock before the key becomes claimable again.
func WithLockDuration(d time.Duration) Option {
	return func(o *execOptions) { o.lockDuration = d }
}

// WithStateTTL sets how long the completed or failed verdict is remembered,
// i.e. the deduplication window.
func WithStateTTL(d time.Duration) Option {
	return func(o *execOptions) { o.stateTTL = d }
}

// StateTracker implements Idempotency on Redis.
type StateTracker struct {
	client *redis.Client
}

// New builds a StateTracker on the given Redis client.
func New(client *redis.Client) *StateTracker {
	return &StateTracker{client: client}
}

// Acquire attempts to claim key. StateNone means the claim succeeded and the
// caller owns the work; any other state reports what a previous claimant did.
func (s *StateTracker) Acquire(ctx context.Context, key string, lockDuration time.Duration) (State, error) {
	rk := keyPrefix + key

	claimed, err := s.client.SetNX(ctx, rk, StateInProgress.String(), lockDuration).Result()
	if err != nil {
		return StateError, err
	}
	if claimed {
		return StateNone, nil
	}

	current, err := s.client.Get(ctx, rk).Result()
	if errors.Is(err, redis.Nil) {
		// Key expired between SetNX and Get; retry the claim once.
		claimed, err = s.client.SetNX(ctx, rk, StateInProgress.String(), lockDuration).Result()
		if err != nil {
			return StateError, err
		}
		if claimed {
			return StateNone, nil
		}
		return StateError, ErrInvalidState
	}
	if err != nil {
		return StateError, err
	}

	switch State(current) {
	case StateInProgress, StateCompleted, StateFailed:
		return State(current), nil
	default:
		return StateError, ErrInvalidState
	}
}

// MarkCompleted records a success verdict for ttl.
func (s *StateTracker) MarkCompleted(ctx context.Context, key string, ttl time.Duration) error {
	return s.client.Set(ctx, keyPrefix+key, StateCompleted.String(), ttl).Err()
}

// MarkFailed records a failure verdict for ttl.
func (s *StateTracker) MarkFailed(ctx context.Context, key string, ttl time.Duration) error {
	return s.client.Set(ctx, keyPrefix+key, StateFailed.String(), ttl).Err()
}

// Exec runs fn at most once per key within the dedup window. Repeat calls
// return ErrAlreadyInProgress, ErrAlreadyCompleted or ErrAlreadyFailed.
func (s *StateTracker) Exec(ctx context.Context, key string, fn func(context.Context) error, opts ...Option) error {
	cfg := execOptions{lockDuration: defaultLockDuration, stateTTL: defaultStateTTL}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.lockDuration <= 0 {
		cfg.lockDuration = defaultLockDuration
	}
	if cfg.stateTTL <= 0 {
		cfg.stateTTL = defaultStateTTL
	}

	state, err := s.Acquire(ctx, key, cfg.lockDuration)
	if err != nil {
		return err
	}
	switch state {
	case StateInProgress:
		return ErrAlreadyInProgress
	case StateCompleted:
		return ErrAlreadyCompleted
	case StateFailed:
		return ErrAlreadyFailed
	}

	if err := fn(ctx); err != nil {
		if markErr := s.MarkFailed(ctx, key, cfg.stateTTL); markErr != nil {
			return markErr
		}
		return err
	}
	return s.MarkCompleted(ctx, key, cfg.stateTTL)
}
