package store

import (
	"context"
	"time"
)

// Store persists humanization run history. The rewrite core itself is
// stateless; run records are an optional audit surface owned by the facade.
type Store interface {
	Close() error

	SaveRun(ctx context.Context, r Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)
}

// Run is one humanization invocation's audit record.
type Run struct {
	ID           string    // ULID, assigned by the facade
	CreatedAt    time.Time
	InputWords   int
	OutputWords  int
	StepsApplied []string
	ElapsedMs    int64
	ScoreBefore  int
	ScoreAfter   int
	RiskBefore   string
	RiskAfter    string
}
