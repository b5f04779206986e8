// Package core: read accessors and cloning.
//
// Determinism:
//   - Every slice-returning accessor sorts by course code ascending.
//
// Concurrency:
//   - Read lock only; every result is a fresh copy. Callers may mutate
//     returned collections freely without affecting the store.
package core

import "sort"

// HasCourse reports whether the code names a registered course.
// Complexity: O(1).
func (s *Store) HasCourse(code string) bool {
	code = NormalizeCode(code)

	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.courses[code]

	return exists
}

// Course returns the course record for code, or false if unregistered.
// Complexity: O(1).
func (s *Store) Course(code string) (Course, bool) {
	code = NormalizeCode(code)

	s.mu.RLock()
	defer s.mu.RUnlock()
	c, exists := s.courses[code]

	return c, exists
}

// Courses returns all course records sorted by code ascending.
// Complexity: O(V log V).
func (s *Store) Courses() []Course {
	s.mu.RLock()
	out := make([]Course, 0, len(s.courses))
	for _, c := range s.courses {
		out = append(out, c)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })

	return out
}

// Codes returns all registered course codes sorted ascending.
// Complexity: O(V log V).
func (s *Store) Codes() []string {
	s.mu.RLock()
	out := make([]string, 0, len(s.courses))
	for code := range s.courses {
		out = append(out, code)
	}
	s.mu.RUnlock()

	sort.Strings(out)

	return out
}

// Prerequisites returns the prerequisite codes of course, sorted ascending.
// The result is empty (never nil-shared) when the course has no
// prerequisites or is unregistered.
// Complexity: O(P log P) where P is the prerequisite count.
func (s *Store) Prerequisites(course string) []string {
	return s.sortedSet(s.prereqs, course)
}

// Dependents returns the codes of courses that list code as a direct
// prerequisite, sorted ascending.
// Complexity: O(D log D) where D is the dependent count.
func (s *Store) Dependents(code string) []string {
	return s.sortedSet(s.unlocks, code)
}

// Edges returns every prerequisite relation, sorted by (Prereq, Course).
// Complexity: O(E log E).
func (s *Store) Edges() []Edge {
	s.mu.RLock()
	out := make([]Edge, 0, len(s.prereqs))
	for course, set := range s.prereqs {
		for prereq := range set {
			out = append(out, Edge{Prereq: prereq, Course: course})
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Prereq != out[j].Prereq {
			return out[i].Prereq < out[j].Prereq
		}

		return out[i].Course < out[j].Course
	})

	return out
}

// EdgeCount returns the number of prerequisite relations.
// Complexity: O(V).
func (s *Store) EdgeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, set := range s.prereqs {
		n += len(set)
	}

	return n
}

// CourseCount returns the number of registered courses.
// Complexity: O(1).
func (s *Store) CourseCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.courses)
}

// IsPassed reports whether the course is in the passed-set.
// Complexity: O(1).
func (s *Store) IsPassed(code string) bool {
	code = NormalizeCode(code)

	s.mu.RLock()
	defer s.mu.RUnlock()
	_, passed := s.passed[code]

	return passed
}

// Passed returns the passed-set as a sorted slice of codes.
// Complexity: O(V log V).
func (s *Store) Passed() []string {
	s.mu.RLock()
	out := make([]string, 0, len(s.passed))
	for code := range s.passed {
		out = append(out, code)
	}
	s.mu.RUnlock()

	sort.Strings(out)

	return out
}

// PassedSet returns a copy of the passed-set keyed by code.
// Complexity: O(V).
func (s *Store) PassedSet() map[string]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]struct{}, len(s.passed))
	for code := range s.passed {
		out[code] = struct{}{}
	}

	return out
}

// Clone returns a deep copy of the store: courses, both adjacency indexes,
// and the passed-set. The clone shares no mutable state with the source, so
// hypothetical planning (mark-passed-and-resuggest loops) leaves the
// original untouched.
// Complexity: O(V + E).
func (s *Store) Clone() *Store {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clone := NewStore()
	for code, c := range s.courses {
		clone.courses[code] = c
	}
	for course, set := range s.prereqs {
		cp := make(map[string]struct{}, len(set))
		for prereq := range set {
			cp[prereq] = struct{}{}
		}
		clone.prereqs[course] = cp
	}
	for prereq, set := range s.unlocks {
		cp := make(map[string]struct{}, len(set))
		for course := range set {
			cp[course] = struct{}{}
		}
		clone.unlocks[prereq] = cp
	}
	for code := range s.passed {
		clone.passed[code] = struct{}{}
	}

	return clone
}

// sortedSet copies one bucket of a nested set index into a sorted slice.
func (s *Store) sortedSet(index map[string]map[string]struct{}, key string) []string {
	key = NormalizeCode(key)

	s.mu.RLock()
	set := index[key]
	out := make([]string, 0, len(set))
	for code := range set {
		out = append(out, code)
	}
	s.mu.RUnlock()

	sort.Strings(out)

	return out
}
