// Package pipeline composes the posting pipeline: dedupe, filter, rank.
// It is the single entrypoint callers use to turn a raw posting collection
// plus user preferences into an ordered top-N result.
package pipeline

import (
	"errors"

	"github.com/vijay-prabhu/internmatch/internal/filter"
	"github.com/vijay-prabhu/internmatch/internal/posting"
	"github.com/vijay-prabhu/internmatch/internal/rank"
)

// ErrNoSkills is returned when the caller provides no skill profile; every
// other anomaly degrades to conservative defaults instead of erroring.
var ErrNoSkills = errors.New("at least one skill is required")

// Options are the recognized pipeline options.
type Options struct {
	Skills     []string
	MinStipend float64
	MaxAgeDays int
	TopN       int
}

// DefaultOptions returns the documented defaults: no stipend floor, one
// week of age, top 25 results.
func DefaultOptions() Options {
	return Options{
		MinStipend: 0,
		MaxAgeDays: 7,
		TopN:       25,
	}
}

// Result carries the ranked postings along with stage counts, so callers
// can tell "zero postings matched criteria" apart from "no input at all".
type Result struct {
	Postings []rank.ScoredPosting
	Total    int // postings in, after dedupe
	Filtered int // postings surviving the hard constraints
}

// Run executes the full pipeline over an in-memory posting collection.
// The input is consumed read-only; each invocation works on its own copy.
func Run(postings []posting.Posting, opts Options) (Result, error) {
	if len(opts.Skills) == 0 {
		return Result{}, ErrNoSkills
	}
	// TopN 0 means "use the default"; negative means "no truncation".
	if opts.TopN == 0 {
		opts.TopN = DefaultOptions().TopN
	}
	if opts.MaxAgeDays <= 0 {
		opts.MaxAgeDays = DefaultOptions().MaxAgeDays
	}

	deduped := posting.Dedupe(postings)

	filtered := filter.Apply(deduped, filter.Criteria{
		MinStipend: opts.MinStipend,
		MaxAgeDays: opts.MaxAgeDays,
	})

	ranked := rank.Rank(filtered, rank.DefaultConfig(), opts.TopN)

	return Result{
		Postings: ranked,
		Total:    len(deduped),
		Filtered: len(filtered),
	}, nil
}
