// Package pathfind computes shortest step counts between two cells of an
// obstacle grid with unit-cost moves in the four cardinal directions.
//
// The search is best-first over f = g + h, where g is the number of steps from
// the source and h is a Heuristic estimate to the target. Cells move between two
// disjoint sets, the frontier (not yet finalised) and the visited set, and a
// visited cell is re-opened when a strictly cheaper route to it turns up.
//
// Heuristics:
//
//   - Manhattan (default): admissible and consistent on a 4-connected unit grid,
//     so Find returns a true shortest path.
//   - SquaredEuclidean: dx²+dy², overestimates beyond one step. Paths it returns
//     are valid but may be longer than necessary.
//
// Storage:
//
//	All nodes of a run live in one growable arena; membership is a map from
//	cell to arena index and parent links are arena indices. The frontier is a
//	binary heap keyed on (f, insertion order) with stale entries skipped on pop.
//
// Complexity:
//
//	Time O(N log N), memory O(N) for N traversable cells reached.
//
// Errors:
//
//   - ErrNilGrid:     g is nil.
//   - ErrBlocked:     source or target is an obstacle or out of bounds.
//   - ErrUnreachable: no path exists.
package pathfind
