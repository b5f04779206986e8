// Package candidate: types, options, and the candidate/blocked passes.
package candidate

import (
	"errors"

	"github.com/lrioseco/pmap/core"
)

// ErrNilStore indicates a nil *core.Store was passed to an engine entry point.
var ErrNilStore = errors.New("candidate: nil store")

// Candidate is a course that can be taken now: not passed, all
// prerequisites satisfied.
type Candidate struct {
	// Code is the course code.
	Code string

	// Credits is the course's credit weight.
	Credits int

	// Unlocks is the number of currently-unpassed courses that list this
	// course as a direct prerequisite.
	Unlocks int
}

// BlockedCourse is a course that cannot be taken yet, with the
// prerequisites still missing, sorted ascending.
type BlockedCourse struct {
	Code    string
	Missing []string
}

// Option configures a candidate or blocked pass.
type Option func(*options)

type options struct {
	passed   map[string]struct{}
	override bool
}

// WithPassed substitutes a hypothetical passed-set (normalized course
// codes) for the store's own. Courses in the set need not exist in the
// store; unknown codes simply satisfy no prerequisite.
func WithPassed(codes ...string) Option {
	return func(o *options) {
		o.override = true
		o.passed = make(map[string]struct{}, len(codes))
		for _, code := range codes {
			o.passed[core.NormalizeCode(code)] = struct{}{}
		}
	}
}

// resolve applies options and picks the effective passed-set.
func resolve(s *core.Store, opts []Option) map[string]struct{} {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.override {
		return o.passed
	}

	return s.PassedSet()
}

// Candidates returns, ascending by code, every unpassed course whose
// prerequisites are all in the passed-set, annotated with credits and
// unlock count. The store is not mutated.
//
// Returns ErrNilStore for a nil store.
// Complexity: O(V log V + E).
func Candidates(s *core.Store, opts ...Option) ([]Candidate, error) {
	if s == nil {
		return nil, ErrNilStore
	}
	passed := resolve(s, opts)

	out := make([]Candidate, 0)
	for _, code := range s.Codes() { // ascending code order
		if _, done := passed[code]; done {
			continue
		}
		if effectiveIndegree(s, code, passed) != 0 {
			continue
		}
		out = append(out, Candidate{
			Code:    code,
			Credits: creditsOf(s, code),
			Unlocks: unlockCount(s, code, passed),
		})
	}

	return out, nil
}

// Blocked returns, ascending by code, every unpassed course with effective
// indegree > 0, each with its missing prerequisites sorted ascending.
//
// Returns ErrNilStore for a nil store.
// Complexity: O(V log V + E).
func Blocked(s *core.Store, opts ...Option) ([]BlockedCourse, error) {
	if s == nil {
		return nil, ErrNilStore
	}
	passed := resolve(s, opts)

	out := make([]BlockedCourse, 0)
	for _, code := range s.Codes() {
		if _, done := passed[code]; done {
			continue
		}
		missing := make([]string, 0)
		for _, prereq := range s.Prerequisites(code) { // sorted ascending
			if _, done := passed[prereq]; !done {
				missing = append(missing, prereq)
			}
		}
		if len(missing) > 0 {
			out = append(out, BlockedCourse{Code: code, Missing: missing})
		}
	}

	return out, nil
}

// effectiveIndegree counts the prerequisites of code not in passed.
func effectiveIndegree(s *core.Store, code string, passed map[string]struct{}) int {
	n := 0
	for _, prereq := range s.Prerequisites(code) {
		if _, done := passed[prereq]; !done {
			n++
		}
	}

	return n
}

// unlockCount counts the unpassed direct dependents of code.
func unlockCount(s *core.Store, code string, passed map[string]struct{}) int {
	n := 0
	for _, dep := range s.Dependents(code) {
		if _, done := passed[dep]; !done {
			n++
		}
	}

	return n
}

// creditsOf reads the credit weight; a registered code always resolves.
func creditsOf(s *core.Store, code string) int {
	c, _ := s.Course(code)

	return c.Credits
}
