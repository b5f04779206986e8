// Package core provides the in-memory curriculum store: the catalog of
// courses, the prerequisite adjacency between them, and the set of courses
// already passed.
//
// The store is deliberately permissive on writes and strict on queries:
// AddPrerequisite accepts self-loops and edges that close a cycle, because
// detecting those situations is the job of the topology engine (package
// topo), not a write-time constraint. The only structural invariants the
// store enforces are referential ones:
//
//   - every code referenced by a prerequisite edge must name a registered course
//   - the passed-set is a subset of the registered courses
//   - credit weights are positive integers
//
// Determinism: every enumeration surface (Courses, Codes, Prerequisites,
// Dependents, Edges, Passed) returns results sorted lexicographically
// ascending by course code, so downstream algorithms produce reproducible
// output without re-sorting.
//
// Concurrency: a single sync.RWMutex guards all three catalogs. Mutations
// take the write lock; accessors take the read lock and return defensive
// copies, never aliases of internal state.
//
// Errors (sentinel, branch with errors.Is):
//
//	ErrEmptyCourseCode  - course code is empty after normalization.
//	ErrDuplicateCourse  - AddCourse for a code that is already registered.
//	ErrInvalidCredits   - credit weight is not a positive integer.
//	ErrUnknownCourse    - an operation referenced an unregistered code.
package core
