// Package tour finds the cheapest Hamiltonian path between two fixed
// endpoints of a small complete distance matrix.
//
// Solve runs the Held–Karp subset DP over flat int32 tables sized from the
// actual K, keeps a parent table and returns both the optimal length and the
// visiting order. K is limited to MaxLandmarks.
//
// Inf entries are missing edges; if every start→end ordering needs one,
// Solve returns ErrNoTour.
package tour
