// Package cache stores solved tours keyed by grid content, so that repeated
// requests for the same map skip the pathfinding and the DP.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/katalvlaran/orienteer/grid"
)

// ErrNoStores indicates Chain was called without stores.
var ErrNoStores = errors.New("cache: no stores")

// Entry is a cached outcome. Length is solver.NoSolution for unsolvable grids.
type Entry struct {
	Length int         `json:"length"`
	Order  []grid.Cell `json:"order,omitempty"`
}

// Store is a key/value store of entries.
// Get reports a miss as (Entry{}, false, nil).
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Put(ctx context.Context, key string, e Entry) error
}

// Key derives the cache key of a grid solved with the named heuristic:
// hex SHA-256 of the canonical grid text, a NUL byte and the heuristic name.
func Key(g *grid.Grid, heuristic string) string {
	h := sha256.New()
	h.Write([]byte(g.String()))
	h.Write([]byte{0})
	h.Write([]byte(heuristic))

	return hex.EncodeToString(h.Sum(nil))
}

// chain queries stores in order.
type chain []Store

// Chain returns a Store that reads from the first store holding the key and
// writes to every store. A hit in a later store is copied into the earlier ones.
func Chain(stores ...Store) (Store, error) {
	if len(stores) == 0 {
		return nil, ErrNoStores
	}

	return chain(stores), nil
}

func (c chain) Get(ctx context.Context, key string) (Entry, bool, error) {
	for i, s := range c {
		e, ok, err := s.Get(ctx, key)
		if err != nil {
			return Entry{}, false, err
		}
		if !ok {
			continue
		}
		for _, upper := range c[:i] {
			if err = upper.Put(ctx, key, e); err != nil {
				return Entry{}, false, err
			}
		}

		return e, true, nil
	}

	return Entry{}, false, nil
}

func (c chain) Put(ctx context.Context, key string, e Entry) error {
	var errs []error
	for _, s := range c {
		if err := s.Put(ctx, key, e); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
