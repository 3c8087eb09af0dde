// Package service answers tour requests given as grid text, with an optional
// result cache in front of the solver.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/katalvlaran/orienteer/cache"
	"github.com/katalvlaran/orienteer/grid"
	"github.com/katalvlaran/orienteer/pathfind"
	"github.com/katalvlaran/orienteer/solver"
)

// ErrBadGrid wraps every grid parsing or validation failure.
var ErrBadGrid = errors.New("service: bad grid")

// Config holds the dependencies of Tours.
type Config struct {
	Store        cache.Store // nil disables caching
	Heuristic    string      // pathfind heuristic name; empty means manhattan
	Workers      int         // matrix build workers
	MaxLandmarks int         // landmark ceiling; 0 means grid.DefaultMaxLandmarks
	Logger       *log.Logger
}

// Outcome is the answer to one request.
type Outcome struct {
	Length int
	Order  []grid.Cell
	Cached bool
}

// Solved reports whether a tour exists.
func (o Outcome) Solved() bool { return o.Length != solver.NoSolution }

// Tours solves grids through the cache.
type Tours struct {
	store        cache.Store
	heuristic    pathfind.Heuristic
	name         string
	workers      int
	maxLandmarks int
	logger       *log.Logger
}

// NewTours validates c and returns a ready Tours.
func NewTours(c Config) (*Tours, error) {
	h, err := pathfind.ParseHeuristic(c.Heuristic)
	if err != nil {
		return nil, err
	}
	name := c.Heuristic
	if name == "" {
		name = pathfind.NameManhattan
	}
	if c.MaxLandmarks == 0 {
		c.MaxLandmarks = grid.DefaultMaxLandmarks
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard, "", 0)
	}

	return &Tours{
		store:        c.Store,
		heuristic:    h,
		name:         name,
		workers:      c.Workers,
		maxLandmarks: c.MaxLandmarks,
		logger:       c.Logger,
	}, nil
}

// Solve parses text ("W,H" header plus rows) and returns the tour length.
// Cache failures are logged and bypassed.
func (t *Tours) Solve(ctx context.Context, text string) (Outcome, error) {
	g, err := grid.Parse(strings.NewReader(text), grid.WithMaxLandmarks(t.maxLandmarks))
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %w", ErrBadGrid, err)
	}

	key := cache.Key(g, t.name)
	if t.store != nil {
		e, ok, err := t.store.Get(ctx, key)
		switch {
		case err != nil:
			t.logger.Printf("[CACHE] [WARN] get %s: %v", key[:12], err)
		case ok:
			return Outcome{Length: e.Length, Order: e.Order, Cached: true}, nil
		}
	}

	if err = ctx.Err(); err != nil {
		return Outcome{}, err
	}
	res, err := solver.Solve(g,
		solver.WithHeuristic(t.heuristic),
		solver.WithWorkers(t.workers),
		solver.WithLogger(t.logger),
	)
	if err != nil {
		return Outcome{}, err
	}

	if t.store != nil {
		if err = t.store.Put(ctx, key, cache.Entry{Length: res.Length, Order: res.Order}); err != nil {
			t.logger.Printf("[CACHE] [WARN] put %s: %v", key[:12], err)
		}
	}

	return Outcome{Length: res.Length, Order: res.Order}, nil
}
