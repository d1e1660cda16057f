// Package humantone is the facade over the humanization engine: a rewrite
// pipeline that mutates AI-generated text toward human-sounding prose, and a
// heuristic scorer that estimates AI-detector risk.
package humantone

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/humantone/humantone/pkg/humantone/lexicon"
	"github.com/humantone/humantone/pkg/humantone/rewrite"
	"github.com/humantone/humantone/pkg/humantone/score"
	"github.com/humantone/humantone/pkg/humantone/store"
	"github.com/humantone/humantone/pkg/humantone/textseg"
)

// Engine ties the pipeline, scorer and optional run-history store together.
type Engine struct {
	pipeline *rewrite.Pipeline
	scorer   *score.Scorer
	store    store.Store

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy

	newSource func() rewrite.Source
}

// Options configures an Engine instance.
type Options struct {
	// Lexicon overrides the built-in tables. Nil means lexicon.Default().
	Lexicon *lexicon.Lexicon

	// Store, when set, receives one audit record per Humanize call.
	Store store.Store

	// NewSource supplies the per-call randomness source. Nil means a
	// time-seeded math/rand source per call.
	NewSource func() rewrite.Source
}

// New creates an Engine with the given dependencies.
func New(opts Options) *Engine {
	lex := opts.Lexicon
	if lex == nil {
		lex = lexicon.Default()
	}
	newSource := opts.NewSource
	if newSource == nil {
		newSource = func() rewrite.Source {
			return rewrite.NewSource(time.Now().UnixNano())
		}
	}
	return &Engine{
		pipeline:  rewrite.New(lex),
		scorer:    score.New(lex),
		store:     opts.Store,
		entropy:   ulid.Monotonic(rand.Reader, 0),
		newSource: newSource,
	}
}

// Close releases the run-history store, if any.
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}

// HumanizeRequest is one document plus its pipeline configuration.
type HumanizeRequest struct {
	Document string
	Config   rewrite.Config
}

// HumanizeResponse carries the transformed document, the pipeline metadata,
// and the detector-risk reports before and after transformation.
type HumanizeResponse struct {
	RunID        string
	Content      string
	StepsApplied []string
	WordCount    int
	Elapsed      time.Duration
	Before       score.Report
	After        score.Report
}

// Humanize validates the configuration, runs the pipeline, scores the
// document before and after, and persists an audit record when a store is
// configured. The document itself is never persisted.
func (e *Engine) Humanize(ctx context.Context, req HumanizeRequest) (HumanizeResponse, error) {
	if err := req.Config.Validate(); err != nil {
		return HumanizeResponse{}, err
	}

	before := e.scorer.Score(req.Document)
	result := e.pipeline.Run(req.Document, req.Config, e.newSource())
	after := e.scorer.Score(result.Content)

	resp := HumanizeResponse{
		RunID:        e.newRunID(),
		Content:      result.Content,
		StepsApplied: result.StepsApplied,
		WordCount:    result.WordCount,
		Elapsed:      result.Elapsed,
		Before:       before,
		After:        after,
	}

	if e.store != nil {
		run := store.Run{
			ID:           resp.RunID,
			CreatedAt:    time.Now().UTC(),
			InputWords:   textseg.WordCount(req.Document),
			OutputWords:  result.WordCount,
			StepsApplied: result.StepsApplied,
			ElapsedMs:    result.Elapsed.Milliseconds(),
			ScoreBefore:  before.Score,
			ScoreAfter:   after.Score,
			RiskBefore:   string(before.RiskLevel),
			RiskAfter:    string(after.RiskLevel),
		}
		if err := e.store.SaveRun(ctx, run); err != nil {
			return HumanizeResponse{}, err
		}
	}

	return resp, nil
}

// Score runs the human-likeness scorer on arbitrary text.
func (e *Engine) Score(text string) score.Report {
	return e.scorer.Score(text)
}

// Runs returns up to limit persisted run records, newest first. Returns nil
// when no store is configured.
func (e *Engine) Runs(ctx context.Context, limit int) ([]store.Run, error) {
	if e.store == nil {
		return nil, nil
	}
	return e.store.ListRuns(ctx, limit)
}

func (e *Engine) newRunID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ulid.MustNew(ulid.Now(), e.entropy).String()
}
