// Package topo: extraction of one concrete cycle for diagnostics.
package topo

import "github.com/lrioseco/pmap/core"

// Visitation states for the cycle walk.
const (
	white = iota // unvisited
	gray         // on the current DFS path
	black        // fully explored
)

// ExtractCycle returns one closed prerequisite path in s, following edges in
// prerequisite → dependent direction, e.g. [A B C A] when A gates B, B gates
// C and C gates A. It returns nil when the curriculum is acyclic.
//
// The walk is restricted to the stuck set reported by Sort, where every
// remaining course sits on or behind a cycle, and visits codes in ascending
// order so the reported cycle is deterministic.
//
// Returns ErrNilStore for a nil store.
// Complexity: O((V + E) log V) for the embedded Sort, then O(V + E).
func ExtractCycle(s *core.Store) ([]string, error) {
	res, err := Sort(s)
	if err != nil {
		return nil, err
	}
	if !res.HasCycle {
		return nil, nil
	}

	// Membership index of the stuck subgraph; edges leaving it are ignored.
	stuck := make(map[string]struct{}, len(res.Stuck))
	for _, code := range res.Stuck {
		stuck[code] = struct{}{}
	}

	w := &cycleWalker{store: s, stuck: stuck, state: make(map[string]int, len(stuck))}
	for _, code := range res.Stuck {
		if w.state[code] == white {
			if cycle := w.visit(code); cycle != nil {
				return cycle, nil
			}
		}
	}

	// Unreachable: a non-empty stuck set always contains a cycle.
	return nil, nil
}

// cycleWalker carries DFS state for ExtractCycle.
type cycleWalker struct {
	store *core.Store
	stuck map[string]struct{}
	state map[string]int
	path  []string
}

// visit explores u depth-first; on meeting a gray vertex it closes the loop
// and returns the cycle slice, otherwise nil.
func (w *cycleWalker) visit(u string) []string {
	w.state[u] = gray
	w.path = append(w.path, u)

	for _, v := range w.store.Dependents(u) {
		if _, in := w.stuck[v]; !in {
			continue
		}
		if w.state[v] == gray {
			return w.close(v)
		}
		if w.state[v] == white {
			if cycle := w.visit(v); cycle != nil {
				return cycle
			}
		}
	}

	w.state[u] = black
	w.path = w.path[:len(w.path)-1]

	return nil
}

// close slices the current path from the first occurrence of v and appends v
// again, producing a closed walk v → … → v.
func (w *cycleWalker) close(v string) []string {
	start := 0
	for i, code := range w.path {
		if code == v {
			start = i
			break
		}
	}
	cycle := make([]string, 0, len(w.path)-start+1)
	cycle = append(cycle, w.path[start:]...)
	cycle = append(cycle, v)

	return cycle
}
