// Package orienteer solves orienteering tours on rectangular grids.
//
// A grid holds one origin 'S', one goal 'G', waypoints '@', free cells '.'
// and obstacles '#'. The answer is the fewest four-directional unit steps of
// a walk from S to G that passes every waypoint, or -1 when some landmark
// cannot reach another.
//
// Pipeline:
//
//	grid/      parse and validate the map, collect landmarks (S, G, @...)
//	pathfind/  best-first search between two cells
//	distance/  landmark distance matrix and Floyd–Warshall closure
//	tour/      Held–Karp DP over landmark subsets, origin → goal
//	solver/    the three stages above behind one call
//
// Around it:
//
//	cache/     LRU and Redis result caches keyed by grid content
//	service/   text in, cached tour out
//	api/       gin HTTP API (POST /api/v1/tours)
//	config/    ORIENTEER_* environment and .env loading
//	cmd/orienteer  command-line tool and server entry point
//
// Quick example:
//
//	3,3
//	S.@
//	...
//	@.G
//
// needs 8 steps: both corners lie two steps from S or G and four from each other.
package orienteer
