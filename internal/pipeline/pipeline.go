// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline composes identifier resolution, detail fetching, and
// affiliation classification into a single sequential run.
package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// Resolver turns a query into identifiers.
type Resolver interface {
	Resolve(ctx context.Context, query string) ([]string, error)
}

// Fetcher turns identifiers into raw records, in identifier order.
type Fetcher interface {
	FetchDetails(ctx context.Context, ids []string) (types.FetchOutput, error)
}

// Classifier decides whether a raw record is retained.
type Classifier interface {
	Classify(rec types.RawRecord) (types.ClassifiedRecord, bool)
}

// Output holds the result of one run. Identifiers and Fetched let callers
// tell "no results" apart from "nothing survived the filter".
type Output struct {
	Query       string
	Identifiers []string
	Fetched     int
	Records     []types.ClassifiedRecord
	Failures    []types.FetchFailure
	Timestamp   time.Time
}

// Pipeline runs the three stages in order.
type Pipeline struct {
	Resolver   Resolver
	Fetcher    Fetcher
	Classifier Classifier
	Logger     *zap.Logger
}

// New returns a Pipeline. A nil logger disables logging.
func New(r Resolver, f Fetcher, c Classifier, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{Resolver: r, Fetcher: f, Classifier: c, Logger: logger}
}

// Run resolves query, fetches every identifier, and classifies every fetched
// record. Resolver and fetcher errors abort the run and are returned as-is.
// Empty results at either stage return early with an empty Records slice.
func (p *Pipeline) Run(ctx context.Context, query string) (Output, error) {
	out := Output{Query: query, Records: []types.ClassifiedRecord{}, Timestamp: time.Now()}

	p.Logger.Debug("fetching papers", zap.String("query", query))
	ids, err := p.Resolver.Resolve(ctx, query)
	if err != nil {
		return Output{}, err
	}
	out.Identifiers = ids
	p.Logger.Debug("pmids fetched", zap.Strings("pmids", ids))
	if len(ids) == 0 {
		return out, nil
	}

	fetched, err := p.Fetcher.FetchDetails(ctx, ids)
	if err != nil {
		return Output{}, err
	}
	out.Fetched = len(fetched.Records)
	out.Failures = fetched.Failures
	p.Logger.Debug("paper details fetched",
		zap.Int("records", len(fetched.Records)),
		zap.Int("failures", len(fetched.Failures)))
	if len(fetched.Records) == 0 {
		return out, nil
	}

	for _, rec := range fetched.Records {
		cr, ok := p.Classifier.Classify(rec)
		if !ok {
			continue
		}
		out.Records = append(out.Records, cr)
	}
	p.Logger.Debug("papers filtered",
		zap.Int("fetched", out.Fetched),
		zap.Int("retained", len(out.Records)))
	return out, nil
}
