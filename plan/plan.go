// Package plan projects a full study plan by repeated application of the
// single-semester suggestion heuristic.
//
// Semesters clones the store, suggests a semester under the credit cap,
// marks every picked course as passed on the clone, and repeats until no
// candidate fits or the semester limit is reached. The source store is
// never mutated. No lookahead optimization is attempted: each semester is
// exactly what suggest.Next would propose at that point.
package plan

import (
	"errors"

	"github.com/lrioseco/pmap/candidate"
	"github.com/lrioseco/pmap/core"
	"github.com/lrioseco/pmap/suggest"
)

// ErrNilStore indicates a nil *core.Store was passed to Semesters.
var ErrNilStore = errors.New("plan: nil store")

// DefaultMaxSemesters bounds the projection when no explicit limit is set.
const DefaultMaxSemesters = 12

// Semester is one projected term: the picked courses in selection order and
// their total credits.
type Semester struct {
	Courses []candidate.Candidate
	Total   int
}

// Option configures a plan projection.
type Option func(*options)

type options struct {
	maxSemesters int
}

// WithMaxSemesters caps the number of projected terms. Values below 1 are
// ignored in favor of DefaultMaxSemesters.
func WithMaxSemesters(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.maxSemesters = n
		}
	}
}

// Semesters projects consecutive semesters under the credit cap and
// criterion. The projection stops as soon as a semester comes back empty
// (nothing cursable fits) or the semester limit is reached; an empty plan
// is a valid result when nothing can be taken at all.
//
// Errors: ErrNilStore for a nil store; cap and criterion validation is
// delegated to suggest.Next (ErrInvalidCap, ErrUnknownCriterion).
// Complexity: O(S · (V log V + E + C log C)) for S projected semesters.
func Semesters(s *core.Store, cap int, crit suggest.Criterion, opts ...Option) ([]Semester, error) {
	if s == nil {
		return nil, ErrNilStore
	}
	o := options{maxSemesters: DefaultMaxSemesters}
	for _, opt := range opts {
		opt(&o)
	}

	sim := s.Clone()
	plan := make([]Semester, 0, o.maxSemesters)
	for term := 0; term < o.maxSemesters; term++ {
		cands, err := candidate.Candidates(sim)
		if err != nil {
			return nil, err
		}
		sel, err := suggest.Next(cands, cap, crit)
		if err != nil {
			return nil, err
		}
		if sel.Count() == 0 {
			break
		}
		plan = append(plan, Semester{Courses: sel.Courses, Total: sel.Total})
		for _, c := range sel.Courses {
			if err = sim.MarkPassed(c.Code); err != nil {
				return nil, err
			}
		}
	}

	return plan, nil
}
