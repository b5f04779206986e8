// Package suggest: greedy bounded selection over ranked candidates.
package suggest

import (
	"fmt"
	"sort"

	"github.com/lrioseco/pmap/candidate"
)

// Selection is the proposed next semester. Courses holds the accepted
// candidates in ranking order (selection order equals sorted order), and
// Total the credits they consume; Total never exceeds the cap that produced
// the selection.
type Selection struct {
	Courses []candidate.Candidate
	Total   int
}

// Count returns the number of selected courses.
func (s Selection) Count() int { return len(s.Courses) }

// Codes returns the selected course codes in selection order.
func (s Selection) Codes() []string {
	out := make([]string, 0, len(s.Courses))
	for _, c := range s.Courses {
		out = append(out, c.Code)
	}

	return out
}

// Next greedily selects candidates under the credit cap, visiting them in
// the total order of the given criterion. A candidate whose credits exceed
// the remaining budget is skipped and the scan continues, so a later,
// cheaper course can still be accepted. An empty selection is success:
// callers must not treat it as an error.
//
// Returns ErrInvalidCap when cap < 1 and ErrUnknownCriterion for a
// criterion outside the supported set. The input slice is not reordered.
// Complexity: O(C log C) sort + O(C) scan.
func Next(cands []candidate.Candidate, cap int, crit Criterion) (Selection, error) {
	if cap < 1 {
		return Selection{}, fmt.Errorf("%w: %d", ErrInvalidCap, cap)
	}
	less, err := order(crit)
	if err != nil {
		return Selection{}, err
	}

	ranked := make([]candidate.Candidate, len(cands))
	copy(ranked, cands)
	sort.SliceStable(ranked, func(i, j int) bool { return less(ranked[i], ranked[j]) })

	sel := Selection{Courses: make([]candidate.Candidate, 0, len(ranked))}
	remaining := cap
	for _, c := range ranked {
		if c.Credits > remaining {
			continue // over budget; keep scanning cheaper candidates
		}
		sel.Courses = append(sel.Courses, c)
		sel.Total += c.Credits
		remaining -= c.Credits
	}

	return sel, nil
}

// order maps a criterion onto its strict total order over candidates.
func order(crit Criterion) (func(a, b candidate.Candidate) bool, error) {
	switch crit {
	case Desbloqueo:
		return func(a, b candidate.Candidate) bool {
			if a.Unlocks != b.Unlocks {
				return a.Unlocks > b.Unlocks
			}
			if a.Credits != b.Credits {
				return a.Credits < b.Credits
			}

			return a.Code < b.Code
		}, nil
	case Creditos:
		return func(a, b candidate.Candidate) bool {
			if a.Credits != b.Credits {
				return a.Credits < b.Credits
			}
			if a.Unlocks != b.Unlocks {
				return a.Unlocks > b.Unlocks
			}

			return a.Code < b.Code
		}, nil
	case Nivel:
		return func(a, b candidate.Candidate) bool {
			la, lb := Level(a.Code), Level(b.Code)
			if la != lb {
				return la < lb
			}

			return a.Code < b.Code
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCriterion, crit)
	}
}
