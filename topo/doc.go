// Package topo answers the two global ordering questions about a curriculum:
// is the prerequisite graph free of cycles, and in what order can all
// courses legally be taken.
//
// Sort runs Kahn's algorithm over the store. The ready queue is a min-heap
// keyed by course code, so ties always break lexicographically ascending and
// the produced order is reproducible across runs. A cycle is not an error:
// Sort reports it as a normal result (TopoResult.HasCycle) together with the
// set of courses that never became ready (Stuck) — exactly the courses on or
// downstream of a cycle.
//
// ExtractCycle complements Sort for diagnostics: it walks the stuck
// subgraph depth-first and returns one concrete closed prerequisite path,
// e.g. [A B C A], for presentation to the user.
//
// Complexity:
//
//   - Sort:         O((V + E) log V) time, O(V) memory (heap + indegree map)
//   - ExtractCycle: O(V + E) time on top of one Sort, O(V) memory
package topo
