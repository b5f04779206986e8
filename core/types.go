// Package core: central Course, Edge, and Store types.
//
// This file declares the value types, sentinel errors, and the NewStore
// constructor. Mutation methods live in store.go, read accessors in views.go.
package core

import (
	"errors"
	"strings"
	"sync"
)

// Sentinel errors for store operations.
var (
	// ErrEmptyCourseCode indicates that a course code is empty after normalization.
	ErrEmptyCourseCode = errors.New("core: course code is empty")

	// ErrDuplicateCourse indicates AddCourse was called with an already-registered code.
	ErrDuplicateCourse = errors.New("core: duplicate course")

	// ErrInvalidCredits indicates a non-positive credit weight.
	ErrInvalidCredits = errors.New("core: credits must be a positive integer")

	// ErrUnknownCourse indicates an operation referenced a code absent from the catalog.
	ErrUnknownCourse = errors.New("core: unknown course")
)

// Course is an immutable course record.
//
// Code uniquely identifies the course within its Store. Credits is always a
// positive integer once the record has been admitted by AddCourse.
type Course struct {
	// Code is the normalized course code, e.g. "MAT101".
	Code string

	// Name is the human-readable course title.
	Name string

	// Credits is the credit weight of the course.
	Credits int
}

// Edge is one prerequisite relation: Prereq must be passed before Course.
type Edge struct {
	// Prereq is the course that must be passed first.
	Prereq string

	// Course is the course gated by Prereq.
	Course string
}

// Store is the in-memory curriculum model.
//
// It owns three catalogs: the course registry, the prerequisite adjacency
// (course → set of prereq codes, with the reverse index maintained alongside
// for O(deg) dependent lookups), and the passed-set.
type Store struct {
	mu sync.RWMutex

	courses map[string]Course
	prereqs map[string]map[string]struct{} // course code → prereq codes
	unlocks map[string]map[string]struct{} // prereq code → dependent course codes
	passed  map[string]struct{}
}

// NewStore creates an empty curriculum store.
// Complexity: O(1).
func NewStore() *Store {
	return &Store{
		courses: make(map[string]Course),
		prereqs: make(map[string]map[string]struct{}),
		unlocks: make(map[string]map[string]struct{}),
		passed:  make(map[string]struct{}),
	}
}

// NormalizeCode canonicalizes a course code: surrounding whitespace is
// trimmed and the result upper-cased. All store operations apply it to their
// code arguments, so "mat101 " and "MAT101" name the same course.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
