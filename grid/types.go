package grid

import (
	"errors"
)

// Sentinel errors for grid construction and validation.
// Every one of them is a precondition failure: the solver never runs on a grid
// that produced one of these.
var (
	// ErrBadHeader indicates the first line is not a "W,H" dimension pair.
	ErrBadHeader = errors.New("grid: malformed dimension header")
	// ErrDimensions indicates width or height lies outside the configured limits.
	ErrDimensions = errors.New("grid: dimensions out of range")
	// ErrRowCount indicates fewer terrain rows than the declared height.
	ErrRowCount = errors.New("grid: row count does not match height")
	// ErrRowWidth indicates a terrain row whose length differs from the declared width.
	ErrRowWidth = errors.New("grid: row length does not match width")
	// ErrIllegalTerrain indicates a character outside the terrain alphabet ". # S G @".
	ErrIllegalTerrain = errors.New("grid: illegal terrain character")
	// ErrDuplicateOrigin indicates more than one 'S' cell.
	ErrDuplicateOrigin = errors.New("grid: more than one origin")
	// ErrDuplicateGoal indicates more than one 'G' cell.
	ErrDuplicateGoal = errors.New("grid: more than one goal")
	// ErrMissingOrigin indicates no 'S' cell.
	ErrMissingOrigin = errors.New("grid: origin not found")
	// ErrMissingGoal indicates no 'G' cell.
	ErrMissingGoal = errors.New("grid: goal not found")
	// ErrTooManyLandmarks indicates the landmark count exceeds the configured ceiling.
	ErrTooManyLandmarks = errors.New("grid: too many landmarks")
)

const (
	// DefaultMaxWidth and DefaultMaxHeight bound the grid dimensions.
	DefaultMaxWidth  = 100
	DefaultMaxHeight = 100

	// DefaultMaxLandmarks is the reference landmark ceiling (origin + goal + 13 waypoints).
	DefaultMaxLandmarks = 15

	// HardMaxLandmarks is the largest ceiling WithMaxLandmarks accepts.
	// It matches the tour solver's own limit; the DP table is 2^K·K entries.
	HardMaxLandmarks = 20
)

// Landmark indices inside the ordered landmark list.
const (
	OriginIndex = 0
	GoalIndex   = 1
)

// Cell is a grid coordinate: X is the column, Y the row. Comparable by value.
type Cell struct {
	X, Y int
}

// Terrain classifies a single cell.
type Terrain uint8

const (
	// Free is walkable ground ('.').
	Free Terrain = iota
	// Obstacle is a wall ('#').
	Obstacle
	// Origin is the tour start ('S').
	Origin
	// Goal is the tour end ('G').
	Goal
	// Waypoint is a mandatory checkpoint ('@').
	Waypoint
)

// terrainRunes maps each terrain class to its text symbol.
var terrainRunes = [...]byte{
	Free:     '.',
	Obstacle: '#',
	Origin:   'S',
	Goal:     'G',
	Waypoint: '@',
}

// Byte returns the text symbol of t.
func (t Terrain) Byte() byte {
	if int(t) < len(terrainRunes) {
		return terrainRunes[t]
	}

	return '?'
}

// String implements fmt.Stringer.
func (t Terrain) String() string {
	switch t {
	case Free:
		return "free"
	case Obstacle:
		return "obstacle"
	case Origin:
		return "origin"
	case Goal:
		return "goal"
	case Waypoint:
		return "waypoint"
	default:
		return "unknown"
	}
}

// terrainOf parses a text symbol. ok is false for characters outside the alphabet.
func terrainOf(b byte) (t Terrain, ok bool) {
	switch b {
	case '.':
		return Free, true
	case '#':
		return Obstacle, true
	case 'S':
		return Origin, true
	case 'G':
		return Goal, true
	case '@':
		return Waypoint, true
	default:
		return 0, false
	}
}

// Options contains tunable validation limits.
type Options struct {
	// MaxWidth and MaxHeight bound the accepted dimensions (inclusive).
	MaxWidth, MaxHeight int
	// MaxLandmarks bounds origin + goal + waypoints.
	MaxLandmarks int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the reference limits: 100×100 cells, 15 landmarks.
func DefaultOptions() Options {
	return Options{
		MaxWidth:     DefaultMaxWidth,
		MaxHeight:    DefaultMaxHeight,
		MaxLandmarks: DefaultMaxLandmarks,
	}
}

// WithMaxLandmarks sets the landmark ceiling. Values below 2 fall back to 2,
// values above HardMaxLandmarks are clamped.
func WithMaxLandmarks(n int) Option {
	return func(o *Options) {
		if n < 2 {
			n = 2
		}
		if n > HardMaxLandmarks {
			n = HardMaxLandmarks
		}
		o.MaxLandmarks = n
	}
}

// WithMaxSize sets the dimension limits. Non-positive values leave the
// corresponding limit unchanged.
func WithMaxSize(w, h int) Option {
	return func(o *Options) {
		if w > 0 {
			o.MaxWidth = w
		}
		if h > 0 {
			o.MaxHeight = h
		}
	}
}

// Grid is an immutable obstacle grid with its ordered landmark list.
// terrain is stored row-major: terrain[y*Width+x].
type Grid struct {
	Width, Height int
	terrain       []Terrain
	landmarks     []Cell
}
