// Package fetch produces raw posting collections from external job boards.
// It owns all timing and retry policy so the filter/rank core never sees a
// network concern: a failed query degrades to fewer postings, and only a
// completely empty fetch surfaces as ErrNoPostings.
package fetch

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/vijay-prabhu/internmatch/internal/enrich"
	"github.com/vijay-prabhu/internmatch/internal/posting"
)

// ErrNoPostings signals that every source failed or returned nothing. It is
// distinct from "zero postings matched the filter criteria".
var ErrNoPostings = errors.New("no postings available from any source")

// Query is one search request against a source.
type Query struct {
	Term     string
	Location string
	Limit    int
}

// Source fetches raw postings for a single query. Implementations must
// return partial results instead of panicking on malformed pages.
type Source interface {
	Name() string
	Fetch(ctx context.Context, q Query) ([]posting.Raw, error)
}

// Config tunes the fetcher.
type Config struct {
	Location   string
	MaxResults int
	Delay      time.Duration // pause between queries, rate-limit courtesy
	// Progress, when set, is called after each completed query.
	Progress func(done, total int)
}

// Fetcher expands a skill profile into search terms and runs them across
// every source, merging and deduplicating the results.
type Fetcher struct {
	sources []Source
	cfg     Config
	logger  *zap.Logger
	now     func() time.Time
}

// New creates a Fetcher. A nil logger is replaced with a no-op one.
func New(sources []Source, cfg Config, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 100
	}
	return &Fetcher{
		sources: sources,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
	}
}

// Fetch runs all generated search terms against all sources. Per-query
// failures are logged and skipped; the context is checked between queries.
// The returned postings are enriched, internship-filtered, and deduplicated.
func (f *Fetcher) Fetch(ctx context.Context, skills []string) ([]posting.Posting, error) {
	terms := SearchTerms(skills)
	if len(terms) == 0 || len(f.sources) == 0 {
		return nil, ErrNoPostings
	}

	perQuery := f.cfg.MaxResults / len(terms)
	if perQuery < 1 {
		perQuery = 1
	}
	if perQuery > 50 {
		perQuery = 50
	}

	total := len(terms) * len(f.sources)
	done := 0
	var raws []posting.Raw

	for _, term := range terms {
		for _, src := range f.sources {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			batch, err := src.Fetch(ctx, Query{
				Term:     term,
				Location: f.cfg.Location,
				Limit:    perQuery,
			})
			if err != nil {
				f.logger.Warn("query failed",
					zap.String("source", src.Name()),
					zap.String("term", term),
					zap.Error(err))
			} else {
				f.logger.Debug("query done",
					zap.String("source", src.Name()),
					zap.String("term", term),
					zap.Int("postings", len(batch)))
				raws = append(raws, batch...)
			}

			done++
			if f.cfg.Progress != nil {
				f.cfg.Progress(done, total)
			}

			if f.cfg.Delay > 0 && done < total {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(f.cfg.Delay):
				}
			}
		}
	}

	if len(raws) == 0 {
		return nil, ErrNoPostings
	}

	// Keep internships only, drop obvious senior roles.
	kept := raws[:0:0]
	for _, r := range raws {
		if enrich.IsInternship(r.Title, r.Description) {
			kept = append(kept, r)
		}
	}

	postings := posting.Dedupe(posting.FromRawBatch(kept, skills, f.now()))
	f.logger.Info("fetch complete",
		zap.Int("raw", len(raws)),
		zap.Int("internships", len(kept)),
		zap.Int("unique", len(postings)))

	return postings, nil
}
