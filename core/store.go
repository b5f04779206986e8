// Package core: mutation methods on Store.
//
// All writes take the single write lock. Validation order is fixed per
// method so callers observe stable error precedence.
package core

import (
	"fmt"
	"strings"
)

// AddCourse registers a new course under its normalized code.
// Returns ErrEmptyCourseCode if the code normalizes to "",
// ErrInvalidCredits if credits < 1, and ErrDuplicateCourse if the code is
// already registered.
// Complexity: O(1) amortized.
func (s *Store) AddCourse(code, name string, credits int) error {
	code = NormalizeCode(code)
	if code == "" {
		return ErrEmptyCourseCode
	}
	if credits < 1 {
		return fmt.Errorf("%w: %q has credits=%d", ErrInvalidCredits, code, credits)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.courses[code]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCourse, code)
	}
	s.courses[code] = Course{Code: code, Name: trimName(name, code), Credits: credits}

	return nil
}

// AddPrerequisite records the edge prereq → course: prereq must be passed
// before course may be taken. Both codes must already be registered,
// otherwise ErrUnknownCourse is returned. Self-loops (course == prereq) are
// accepted; the topology engine surfaces them as a 1-node cycle. Idempotent.
// Complexity: O(1) amortized.
func (s *Store) AddPrerequisite(course, prereq string) error {
	course = NormalizeCode(course)
	prereq = NormalizeCode(prereq)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.courses[course]; !exists {
		return fmt.Errorf("%w: %s", ErrUnknownCourse, course)
	}
	if _, exists := s.courses[prereq]; !exists {
		return fmt.Errorf("%w: %s", ErrUnknownCourse, prereq)
	}

	set, ok := s.prereqs[course]
	if !ok {
		set = make(map[string]struct{})
		s.prereqs[course] = set
	}
	set[prereq] = struct{}{}

	// Maintain the reverse index in lockstep with the forward adjacency.
	rev, ok := s.unlocks[prereq]
	if !ok {
		rev = make(map[string]struct{})
		s.unlocks[prereq] = rev
	}
	rev[course] = struct{}{}

	return nil
}

// MarkPassed adds the course to the passed-set.
// Returns ErrUnknownCourse if the code is not registered. Idempotent.
// Complexity: O(1).
func (s *Store) MarkPassed(code string) error {
	code = NormalizeCode(code)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.courses[code]; !exists {
		return fmt.Errorf("%w: %s", ErrUnknownCourse, code)
	}
	s.passed[code] = struct{}{}

	return nil
}

// trimName trims the display name, falling back to the code itself when the
// name is blank so listings never show an empty column.
func trimName(name, code string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}

	return code
}
