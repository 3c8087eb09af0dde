// Package solver ties the pipeline together: landmark distance matrix,
// closure and Held–Karp tour, from origin (landmark 0) to goal (landmark 1).
//
// The answer is Result.Length, the fewest unit steps of a walk that touches
// every landmark. NoSolution means some landmark cannot reach another.
package solver
