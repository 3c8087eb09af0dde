package pathfind

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/orienteer/grid"
)

// noParent marks the source node in the arena.
const noParent = -1

// offsets lists neighbour moves in expansion order: up, down, left, right.
var offsets = [4]grid.Cell{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}

// ShortestSteps returns the number of unit moves on the path Find discovers
// from source to target, or ErrUnreachable.
func ShortestSteps(g Walkable, source, target grid.Cell, opts ...Option) (int, error) {
	p, err := Find(g, source, target, opts...)
	if err != nil {
		return 0, err
	}

	return p.Steps(), nil
}

// Find runs a best-first search from source to target over the four-connected
// traversable cells of g with unit edge costs, ranking frontier cells by
// f = g + h.
//
// Selection:
//   - The frontier cell with the smallest f is finalised next; among equal f the
//     one inserted into the frontier earliest wins. A cell re-opened from the
//     visited set counts as a fresh insertion; an in-place improvement keeps its place.
//
// Relaxation of a neighbour reached with a new f:
//   - unseen              → insert into the frontier.
//   - in the frontier     → overwrite g/h/f/parent if the new f is strictly smaller.
//   - in the visited set  → if strictly smaller, overwrite and move back to the frontier.
//
// Equal f never replaces an entry: the route found first at a given f is kept.
//
// The search ends when the target is selected (success) or the frontier empties
// (ErrUnreachable). With the default Manhattan heuristic the path is a shortest one.
//
// Complexity: O(N log N) time for N traversable cells with a consistent heuristic,
// O(N) memory; all working state is dropped when Find returns.
func Find(g Walkable, source, target grid.Cell, opts ...Option) (Path, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Path{}, ErrNilGrid
	}
	if !g.Traversable(source) || !g.Traversable(target) {
		return Path{}, ErrBlocked
	}

	r := newRunner(g, target, cfg.Heuristic)
	r.open(r.add(source, 0, noParent))

	for {
		cur, ok := r.pop()
		if !ok {
			return Path{Expanded: r.expanded, Reopened: r.reopened}, ErrUnreachable
		}
		r.expanded++
		r.close(cur)

		if r.arena[cur].cell == target {
			return Path{Cells: r.trace(cur), Expanded: r.expanded, Reopened: r.reopened}, nil
		}
		r.expand(cur)
	}
}

// node is a search state. parent is an arena index, noParent for the source.
// seq is the frontier insertion order; stamp invalidates older heap entries.
// A node is in the frontier exactly when its cell is not in the visited set.
type node struct {
	cell    grid.Cell
	g, h, f int
	parent  int32
	seq     uint64
	stamp   uint32
}

// entry is a heap record; it is live only while stamp matches its node.
type entry struct {
	f     int
	seq   uint64
	idx   int32
	stamp uint32
}

// runner holds the mutable state of a single search.
type runner struct {
	g         Walkable
	target    grid.Cell
	heuristic Heuristic

	arena    []node                // every cell seen so far
	index    map[grid.Cell]int32   // cell → arena index
	visited  mapset.Set[grid.Cell] // finalised cells
	frontier *heap.Heap[entry]     // lazy min-heap over (f, seq)
	nextSeq  uint64
	expanded int
	reopened int
}

func newRunner(g Walkable, target grid.Cell, h Heuristic) *runner {
	return &runner{
		g:         g,
		target:    target,
		heuristic: h,
		index:     make(map[grid.Cell]int32),
		visited:   mapset.New[grid.Cell](),
		frontier: heap.New[entry](func(a, b entry) bool {
			if a.f != b.f {
				return a.f < b.f
			}

			return a.seq < b.seq
		}),
	}
}

// add appends a fresh node for c with cost gc and returns its arena index.
func (r *runner) add(c grid.Cell, gc int, parent int32) int32 {
	h := r.heuristic(c, r.target)
	r.arena = append(r.arena, node{cell: c, g: gc, h: h, f: gc + h, parent: parent})
	idx := int32(len(r.arena) - 1)
	r.index[c] = idx

	return idx
}

// open places idx at the back of the frontier order.
func (r *runner) open(idx int32) {
	n := &r.arena[idx]
	n.seq = r.nextSeq
	r.nextSeq++
	r.push(idx)
}

// push records the node's current f in the heap, superseding older entries.
func (r *runner) push(idx int32) {
	n := &r.arena[idx]
	n.stamp++
	r.frontier.Push(entry{f: n.f, seq: n.seq, idx: idx, stamp: n.stamp})
}

// pop returns the live frontier node with minimal (f, seq).
func (r *runner) pop() (int32, bool) {
	for {
		e, ok := r.frontier.Pop()
		if !ok {
			return 0, false
		}
		n := &r.arena[e.idx]
		if n.stamp == e.stamp && !r.visited.Has(n.cell) {
			return e.idx, true
		}
	}
}

// close moves idx from the frontier to the visited set.
func (r *runner) close(idx int32) {
	r.visited.Put(r.arena[idx].cell)
}

// expand relaxes the four orthogonal neighbours of cur.
func (r *runner) expand(cur int32) {
	from := r.arena[cur].cell
	gc := r.arena[cur].g + 1

	for _, d := range offsets {
		c := grid.Cell{X: from.X + d.X, Y: from.Y + d.Y}
		if !r.g.Traversable(c) {
			continue
		}

		idx, seen := r.index[c]
		if !seen {
			r.open(r.add(c, gc, cur))
			continue
		}

		n := &r.arena[idx]
		h := r.heuristic(c, r.target)
		f := gc + h
		if f >= n.f {
			continue
		}
		n.g, n.h, n.f, n.parent = gc, h, f, cur

		if !r.visited.Has(c) {
			// improved in place: keeps its frontier position
			r.push(idx)
			continue
		}
		r.visited.Remove(c)
		r.reopened++
		r.open(idx)
	}
}

// trace walks parent links from idx back to the source.
func (r *runner) trace(idx int32) []grid.Cell {
	var cells []grid.Cell
	for at := idx; at != noParent; at = r.arena[at].parent {
		cells = append(cells, r.arena[at].cell)
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}

	return cells
}
