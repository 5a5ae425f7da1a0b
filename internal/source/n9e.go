// Package source provides the machine list sources of the inventory tool.
package source

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"inventory-tool/internal/client/n9e"
	"inventory-tool/internal/model"
)

// TargetFetcher fetches N9E targets for a query.
type TargetFetcher interface {
	GetTargets(ctx context.Context, query string) ([]n9e.TargetData, error)
}

// N9ESource loads machines from Nightingale targets.
type N9ESource struct {
	client      TargetFetcher
	queries     []string
	concurrency int
	logger      zerolog.Logger
}

// NewN9ESource creates a source that merges the targets of every query.
// No queries means a single unfiltered fetch.
func NewN9ESource(client TargetFetcher, queries []string, concurrency int, logger zerolog.Logger) *N9ESource {
	if len(queries) == 0 {
		queries = []string{""}
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &N9ESource{
		client:      client,
		queries:     queries,
		concurrency: concurrency,
		logger:      logger.With().Str("component", "n9e-source").Logger(),
	}
}

// Name returns the source identifier.
func (s *N9ESource) Name() string {
	return "n9e"
}

// Load fetches all queries concurrently and merges them in query order.
// A machine seen by several queries keeps its first occurrence.
func (s *N9ESource) Load(ctx context.Context) ([]model.MachineRecord, error) {
	results := make([][]n9e.TargetData, len(s.queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, query := range s.queries {
		g.Go(func() error {
			targets, err := s.client.GetTargets(ctx, query)
			if err != nil {
				return fmt.Errorf("query %q: %w", query, err)
			}
			results[i] = targets
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load targets from N9E: %w", err)
	}

	var records []model.MachineRecord
	seen := make(map[string]bool)
	var skipped int

	for _, targets := range results {
		for _, target := range targets {
			rec, err := target.ToMachineRecord()
			if err != nil {
				s.logger.Warn().Err(err).Str("ident", target.Ident).Msg("skipping target")
				skipped++
				continue
			}
			if seen[rec.Name] {
				continue
			}
			seen[rec.Name] = true
			records = append(records, rec)
		}
	}

	s.logger.Info().
		Int("queries", len(s.queries)).
		Int("records", len(records)).
		Int("skipped", skipped).
		Msg("N9E targets loaded")

	return records, nil
}
