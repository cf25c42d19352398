package repository

import (
	"context"
	"time"

	"cv-amplify/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4/pgxpool"
)

// Execer is the subset of *pgxpool.Pool the repository needs.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
}

// Event statuses.
const (
	StatusSucceeded = "succeeded"
	StatusRejected  = "rejected"
	StatusFailed    = "failed"
)

// GenerationEvent is the metadata recorded for one generation request. Draft
// content is never stored.
type GenerationEvent struct {
	ID         uuid.UUID
	UserID     *uuid.UUID
	Filters    domain.FilterSelection
	Status     string
	DurationMS int64
	CreatedAt  time.Time
}

// NewGenerationEvent stamps an event with a fresh id and the current time.
func NewGenerationEvent(user *domain.Identity, filters domain.FilterSelection, status string, elapsed time.Duration) *GenerationEvent {
	ev := &GenerationEvent{
		ID:         uuid.New(),
		Filters:    filters,
		Status:     status,
		DurationMS: elapsed.Milliseconds(),
		CreatedAt:  time.Now().UTC(),
	}
	if user != nil {
		id := user.ID
		ev.UserID = &id
	}
	return ev
}

// StatusFor classifies a generation outcome.
func StatusFor(err error) string {
	switch domain.UserMessage(err) {
	case "":
		return StatusSucceeded
	case domain.MsgEmptyDraft, domain.MsgBadRequest:
		return StatusRejected
	}
	return StatusFailed
}

type EventsRepo struct {
	db Execer
}

// NewEventsRepo returns a repository over pool. A nil pool yields a
// repository whose Save is a no-op.
func NewEventsRepo(pool *pgxpool.Pool) *EventsRepo {
	if pool == nil {
		return &EventsRepo{}
	}
	return &EventsRepo{db: pool}
}

func (r *EventsRepo) Enabled() bool {
	return r != nil && r.db != nil
}

func (r *EventsRepo) Save(ctx context.Context, ev *GenerationEvent) error {
	if !r.Enabled() {
		return nil
	}
	_, err := r.db.Exec(ctx, `INSERT INTO generation_events (id, user_id, tone, focus, highlight, status, duration_ms, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO NOTHING`,
		ev.ID, ev.UserID, string(ev.Filters.Tone), string(ev.Filters.Focus), string(ev.Filters.Highlight),
		ev.Status, ev.DurationMS, ev.CreatedAt)
	return err
}
