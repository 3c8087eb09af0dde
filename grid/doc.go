// Package grid models the orienteering map: a rectangular field of free cells
// and obstacles carrying one origin, one goal, and a small set of waypoints.
//
// What:
//
//   - Grid wraps a W×H terrain field and the ordered landmark list
//     (index 0 origin, index 1 goal, 2.. waypoints in row-major order).
//   - Parse reads the text format "W,H" followed by H rows over ". # S G @".
//   - Traversable answers the only question the solver asks: can this cell be
//     stepped on? Out-of-bounds cells are not traversable.
//
// Limits:
//
//   - 1 ≤ W ≤ 100 and 1 ≤ H ≤ 100 by default (WithMaxSize).
//   - At most 15 landmarks by default (WithMaxLandmarks, hard cap 20), because the
//     tour solver's table grows as 2^K·K.
//
// Errors:
//
//   - ErrBadHeader, ErrDimensions, ErrRowCount, ErrRowWidth: malformed text.
//   - ErrIllegalTerrain: a byte outside the terrain alphabet.
//   - ErrDuplicateOrigin, ErrDuplicateGoal, ErrMissingOrigin, ErrMissingGoal.
//   - ErrTooManyLandmarks: waypoint count over the ceiling.
//
// A Grid is immutable once built and safe for concurrent readers.
package grid
