// Package service provides business logic services for the inventory tool.
package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"inventory-tool/internal/model"
	"inventory-tool/internal/source"
)

// Builder loads the machine list and groups it into role buckets.
type Builder struct {
	source     source.Source
	classifier *Classifier
	logger     zerolog.Logger
}

// NewBuilder creates a new Builder with the given dependencies.
func NewBuilder(src source.Source, classifier *Classifier, logger zerolog.Logger) (*Builder, error) {
	if src == nil {
		return nil, fmt.Errorf("source cannot be nil")
	}
	if classifier == nil {
		return nil, fmt.Errorf("classifier cannot be nil")
	}
	return &Builder{
		source:     src,
		classifier: classifier,
		logger:     logger.With().Str("component", "builder").Logger(),
	}, nil
}

// Build loads every machine from the source and classifies it.
// Machines matching no role are kept out of the buckets and logged.
func (b *Builder) Build(ctx context.Context) (*model.Inventory, error) {
	b.logger.Debug().Str("source", b.source.Name()).Msg("loading machine list")

	records, err := b.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	inv := b.classifier.Group(records)

	for _, rec := range inv.Unclassified() {
		b.logger.Warn().
			Str("name", rec.Name).
			Str("address", rec.Address).
			Msg("machine matches no role, skipping")
	}

	counts := inv.RoleCounts()
	event := b.logger.Info().
		Int("records", len(records)).
		Int("classified", inv.Count()).
		Int("unclassified", len(inv.Unclassified()))
	for _, role := range inv.Roles() {
		event = event.Int("role_"+role, counts[role])
	}
	event.Msg("inventory built")

	return inv, nil
}
