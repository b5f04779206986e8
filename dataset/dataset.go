// Package dataset: document shape and the store ↔ document mapping.
package dataset

import (
	"errors"
	"fmt"

	"github.com/lrioseco/pmap/core"
)

// Sentinel errors for dataset operations.
var (
	// ErrNilStore indicates a nil *core.Store was passed to Encode or Save.
	ErrNilStore = errors.New("dataset: nil store")

	// ErrMalformedPair indicates a prerequisite entry that is not a
	// two-element [prereq, course] pair.
	ErrMalformedPair = errors.New("dataset: malformed prerequisite pair")

	// ErrUnknownFormat indicates a file extension that is neither JSON nor YAML.
	ErrUnknownFormat = errors.New("dataset: unknown file format")
)

// CourseRecord is one course entry of a persisted document.
type CourseRecord struct {
	Code    string `json:"code" yaml:"code"`
	Name    string `json:"name" yaml:"name"`
	Credits int    `json:"credits" yaml:"credits"`
}

// Document is the flat persisted form of a curriculum store.
// Prerequisites holds [prereq, course] pairs, edge direction prereq → course.
type Document struct {
	Courses       []CourseRecord `json:"courses" yaml:"courses"`
	Prerequisites [][]string     `json:"prerequisites" yaml:"prerequisites"`
	Passed        []string       `json:"passed" yaml:"passed"`
}

// Encode snapshots the store into a document. Courses, prerequisite pairs,
// and the passed list all come out sorted ascending, so encoding is
// deterministic.
//
// Returns ErrNilStore for a nil store.
// Complexity: O(V log V + E log E).
func Encode(s *core.Store) (Document, error) {
	if s == nil {
		return Document{}, ErrNilStore
	}

	doc := Document{
		Courses:       make([]CourseRecord, 0, s.CourseCount()),
		Prerequisites: make([][]string, 0, s.EdgeCount()),
		Passed:        s.Passed(),
	}
	for _, c := range s.Courses() {
		doc.Courses = append(doc.Courses, CourseRecord{Code: c.Code, Name: c.Name, Credits: c.Credits})
	}
	for _, e := range s.Edges() {
		doc.Prerequisites = append(doc.Prerequisites, []string{e.Prereq, e.Course})
	}

	return doc, nil
}

// Build constructs a store from a document, validating every record through
// the core mutators: duplicate codes, non-positive credits, unregistered
// edge endpoints, and unregistered passed codes all fail with the
// corresponding core sentinel. Prerequisite entries must be exact
// [prereq, course] pairs (ErrMalformedPair otherwise).
// Complexity: O(V + E).
func Build(doc Document) (*core.Store, error) {
	s := core.NewStore()
	for _, rec := range doc.Courses {
		if err := s.AddCourse(rec.Code, rec.Name, rec.Credits); err != nil {
			return nil, fmt.Errorf("dataset: course %q: %w", rec.Code, err)
		}
	}
	for i, pair := range doc.Prerequisites {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: entry %d has %d elements", ErrMalformedPair, i, len(pair))
		}
		if err := s.AddPrerequisite(pair[1], pair[0]); err != nil {
			return nil, fmt.Errorf("dataset: prerequisite %v: %w", pair, err)
		}
	}
	for _, code := range doc.Passed {
		if err := s.MarkPassed(code); err != nil {
			return nil, fmt.Errorf("dataset: passed %q: %w", code, err)
		}
	}

	return s, nil
}
