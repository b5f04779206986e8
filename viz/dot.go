// Package viz renders the curriculum as Graphviz DOT source.
//
// The renderer owns no drawing: it hands back a DOT string, which external
// tooling (dot, xdot, online viewers) turns into an image. Nodes are
// color-coded the way the planner's historical plot did: passed courses
// lightgreen, current candidates khaki, everything else lightblue. Nodes
// and edges come out sorted, so the output is deterministic and diffable.
package viz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lrioseco/pmap/candidate"
	"github.com/lrioseco/pmap/core"
)

// ErrNilStore indicates a nil *core.Store was passed to DOT.
var ErrNilStore = errors.New("viz: nil store")

// Node fill colors per course class.
const (
	colorPassed    = "lightgreen"
	colorCandidate = "khaki"
	colorOther     = "lightblue"
)

// DOT renders the prerequisite graph as a directed Graphviz document.
// Edges point prerequisite → dependent. The candidate list decides which
// unpassed courses get the candidate color; pass the output of
// candidate.Candidates for the store's own passed-set, or any hypothetical
// candidate list for what-if renderings.
// Complexity: O(V log V + E log E).
func DOT(s *core.Store, cands []candidate.Candidate) (string, error) {
	if s == nil {
		return "", ErrNilStore
	}

	isCandidate := make(map[string]struct{}, len(cands))
	for _, c := range cands {
		isCandidate[c.Code] = struct{}{}
	}

	var b strings.Builder
	b.WriteString("digraph malla {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=box, style=filled];\n")

	for _, c := range s.Courses() {
		color := colorOther
		switch {
		case s.IsPassed(c.Code):
			color = colorPassed
		case hasCode(isCandidate, c.Code):
			color = colorCandidate
		}
		fmt.Fprintf(&b, "  %s [label=%s, fillcolor=%s];\n",
			quote(c.Code), quote(fmt.Sprintf("%s\\n%d cr", c.Code, c.Credits)), color)
	}
	for _, e := range s.Edges() {
		fmt.Fprintf(&b, "  %s -> %s;\n", quote(e.Prereq), quote(e.Course))
	}
	b.WriteString("}\n")

	return b.String(), nil
}

// hasCode reports set membership; split out for readability in the switch.
func hasCode(set map[string]struct{}, code string) bool {
	_, ok := set[code]

	return ok
}

// quote wraps an identifier in DOT double quotes, escaping embedded ones.
func quote(id string) string {
	return `"` + strings.ReplaceAll(id, `"`, `\"`) + `"`
}
