// Package candidate computes which courses can be taken next, relative to a
// passed-set.
//
// A course is a candidate iff it is not passed and its effective indegree is
// zero, where effective indegree counts only prerequisites that are not yet
// passed. Each candidate is annotated with its credit weight and its unlock
// count: the number of currently-unpassed courses that list it as a direct
// prerequisite. The unlock count feeds the suggestion engine's "desbloqueo"
// ranking.
//
// Blocked is the complementary report: every unpassed course whose effective
// indegree is still positive, together with the prerequisites it is missing.
// For any store and passed-set, passed ∪ candidates ∪ blocked partitions the
// course catalog.
//
// Both entry points are pure read-only passes: calling them twice with the
// same store and passed-set yields identical output. By default the store's
// own passed-set is used; WithPassed substitutes a hypothetical one, which
// is how planning simulates future semesters without mutating the store.
//
// A course that lists itself as a prerequisite can never reach effective
// indegree zero unless it is itself marked passed, so it is naturally
// excluded from the candidates and reported as blocked on itself. That is
// the intended cycle-safety of the effective-indegree rule.
//
// Complexity: O(E) for effective indegrees and unlock counts, O(V log V)
// for the sorted outputs.
package candidate
