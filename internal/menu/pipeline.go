package menu

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"navmenu/internal/lookup"
	"navmenu/internal/models"
)

// ErrNoSources is returned when every CMS source failed in one pass.
var ErrNoSources = errors.New("no cms source could be fetched")

// Fetcher fetches one pass over the CMS collections.
type Fetcher interface {
	FetchCollections(ctx context.Context) models.Collections
}

// Pipeline runs fetch and transform as one unit.
type Pipeline struct {
	fetcher Fetcher
	tables  lookup.Tables
}

// NewPipeline creates a pipeline over f using tables for classification.
func NewPipeline(f Fetcher, tables lookup.Tables) *Pipeline {
	return &Pipeline{fetcher: f, tables: tables}
}

// Load fetches the collections and builds the full tree.
// A panic while transforming is returned as an error.
func (p *Pipeline) Load(ctx context.Context) (tree []models.MenuNode, err error) {
	c := p.fetcher.FetchCollections(ctx)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.IndianDestinations == nil && c.IndianExperiences == nil && c.WorldDestinations == nil {
		return nil, ErrNoSources
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("build menu: %v", r)
			tree = nil
		}
	}()

	tree = Build(c, p.tables)
	slog.Debug("menu built",
		"indian_destinations", c.IndianDestinations != nil,
		"indian_experiences", c.IndianExperiences != nil,
		"world_destinations", c.WorldDestinations != nil,
	)
	return tree, nil
}
