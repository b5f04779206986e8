// Package topo: Kahn's algorithm over the curriculum store.
package topo

import (
	"container/heap"

	"github.com/lrioseco/pmap/core"
)

// Sort computes a topological order of all courses in s using Kahn's
// algorithm. The store is not mutated.
//
// Indegree of a course is the size of its prerequisite set. All courses
// with indegree 0 seed the ready heap; each dequeue appends to the order
// and decrements the indegree of every dependent course, enqueueing those
// that reach zero. Ties are always broken ascending by code (see codeHeap).
//
// If every course is dequeued, the result is a complete order with
// HasCycle=false. Otherwise HasCycle=true and Stuck lists the courses whose
// indegree never reached zero. No recursion is used, so arbitrarily deep
// prerequisite chains are safe.
//
// Returns ErrNilStore for a nil store.
// Complexity: O((V + E) log V) time, O(V) memory.
func Sort(s *core.Store) (TopoResult, error) {
	if s == nil {
		return TopoResult{}, ErrNilStore
	}

	// 1) Snapshot the vertex set and compute indegrees.
	codes := s.Codes()
	indegree := make(map[string]int, len(codes))
	for _, code := range codes {
		indegree[code] = len(s.Prerequisites(code))
	}

	// 2) Seed the ready heap with all indegree-0 courses.
	//    codes is already sorted, so the heap starts in canonical shape.
	ready := &codeHeap{}
	for _, code := range codes {
		if indegree[code] == 0 {
			heap.Push(ready, code)
		}
	}

	// 3) Dequeue, append, and relax dependents until the heap drains.
	order := make([]string, 0, len(codes))
	for ready.Len() > 0 {
		u := heap.Pop(ready).(string)
		order = append(order, u)
		for _, v := range s.Dependents(u) {
			indegree[v]--
			if indegree[v] == 0 {
				heap.Push(ready, v)
			}
		}
	}

	// 4) A full order means no cycle.
	if len(order) == len(codes) {
		return TopoResult{Order: order}, nil
	}

	// 5) Courses never dequeued are exactly those on or downstream of a cycle.
	stuck := make([]string, 0, len(codes)-len(order))
	for _, code := range codes {
		if indegree[code] > 0 {
			stuck = append(stuck, code)
		}
	}

	return TopoResult{Order: order, HasCycle: true, Stuck: stuck}, nil
}
