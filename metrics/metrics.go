// Package metrics takes a quick diagnostic snapshot of a curriculum: vertex
// and edge counts plus a timed topological pass. It is presentation fodder
// for the CLI's metrics view, not an observability layer.
package metrics

import (
	"errors"
	"time"

	"github.com/lrioseco/pmap/core"
	"github.com/lrioseco/pmap/topo"
)

// ErrNilStore indicates a nil *core.Store was passed to Collect.
var ErrNilStore = errors.New("metrics: nil store")

// Metrics is one snapshot of curriculum size and topology health.
type Metrics struct {
	// Courses is the vertex count.
	Courses int

	// Edges is the prerequisite-relation count.
	Edges int

	// SortDuration is the wall time of the embedded topological sort.
	SortDuration time.Duration

	// HasCycle mirrors the topological result.
	HasCycle bool

	// Stuck lists the courses involved in or downstream of a cycle, if any.
	Stuck []string
}

// Collect sizes the store and times one topo.Sort over it.
// Complexity: O((V + E) log V), dominated by the sort.
func Collect(s *core.Store) (Metrics, error) {
	if s == nil {
		return Metrics{}, ErrNilStore
	}

	start := time.Now()
	res, err := topo.Sort(s)
	elapsed := time.Since(start)
	if err != nil {
		return Metrics{}, err
	}

	return Metrics{
		Courses:      s.CourseCount(),
		Edges:        s.EdgeCount(),
		SortDuration: elapsed,
		HasCycle:     res.HasCycle,
		Stuck:        res.Stuck,
	}, nil
}
