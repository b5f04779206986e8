// Package topo: result type, sentinel errors, and the deterministic
// ready-queue used by Kahn's algorithm.
package topo

import "errors"

// ErrNilStore indicates a nil *core.Store was passed to an engine entry point.
var ErrNilStore = errors.New("topo: nil store")

// TopoResult is the outcome of one topological pass over the curriculum.
//
// When HasCycle is false, Order is a permutation of all course codes such
// that every prerequisite appears before the courses it gates, and Stuck is
// empty. When HasCycle is true, Order holds the partial order of the
// courses that did become ready, and Stuck lists (ascending by code) the
// courses whose indegree never reached zero — those on a directed cycle or
// downstream of one.
type TopoResult struct {
	Order    []string
	HasCycle bool
	Stuck    []string
}

// codeHeap is a min-heap of course codes ordered lexicographically.
// It implements container/heap.Interface; Kahn's ready queue uses it so that
// whenever several courses are simultaneously ready, the smallest code is
// dequeued first.
type codeHeap []string

func (h codeHeap) Len() int            { return len(h) }
func (h codeHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h codeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *codeHeap) Push(x interface{}) { *h = append(*h, x.(string)) }

func (h *codeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	code := old[n-1]
	*h = old[:n-1]

	return code
}
