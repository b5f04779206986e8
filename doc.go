// Package pmap models an academic curriculum as a directed graph of courses
// and prerequisite edges, and answers three questions about it:
//
//   - Is the curriculum internally consistent (no prerequisite cycle)?
//   - In what order can the courses legally be taken?
//   - Given what is already passed and a credit cap, what next?
//
// Everything is organized under small, flat subpackages:
//
//	core/      — curriculum store: courses, prerequisite adjacency, passed-set
//	topo/      — Kahn's topological sort + cycle extraction
//	candidate/ — effective-indegree candidates and blocked report
//	suggest/   — greedy bounded semester suggestion (desbloqueo/creditos/nivel)
//	plan/      — multi-semester projection by repeated suggestion
//	dataset/   — JSON/YAML load & save, embedded example curriculum
//	export/    — CSV and XLSX writers for suggestions and plans
//	viz/       — Graphviz DOT rendering with passed/candidate coloring
//	metrics/   — graph size and timed-sort snapshot
//	cmd/pmap/  — the planner CLI
//
// The engine packages are pure data-in/data-out: they never log, never touch
// files, and report cycles as result values rather than errors. File formats
// and presentation live at the edges (dataset, export, viz, cmd).
//
// Quick ASCII example:
//
//	MAT101 ──► MAT102 ──► EDA1 ──► EDA2
//	   │
//	   └─────► FIS101
//
// With MAT101 passed and a 16-credit cap, the planner proposes MAT102 and
// FIS101 for the next semester.
package pmap
