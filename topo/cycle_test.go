package topo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrioseco/pmap/topo"
)

// TestExtractCycle_Acyclic returns nil on a DAG.
func TestExtractCycle_Acyclic(t *testing.T) {
	s := buildStore(t, []string{"A", "B"}, [][2]string{{"A", "B"}})
	cycle, err := topo.ExtractCycle(s)
	require.NoError(t, err)
	assert.Nil(t, cycle)
}

// TestExtractCycle_NilStore verifies the sentinel propagates.
func TestExtractCycle_NilStore(t *testing.T) {
	_, err := topo.ExtractCycle(nil)
	assert.ErrorIs(t, err, topo.ErrNilStore)
}

// TestExtractCycle_Triangle returns the closed walk A→B→C→A.
func TestExtractCycle_Triangle(t *testing.T) {
	s := buildStore(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}})
	cycle, err := topo.ExtractCycle(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "A"}, cycle)
}

// TestExtractCycle_SelfLoop reports a one-course cycle as [A A].
func TestExtractCycle_SelfLoop(t *testing.T) {
	s := buildStore(t, []string{"A"}, [][2]string{{"A", "A"}})
	cycle, err := topo.ExtractCycle(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A"}, cycle)
}

// TestExtractCycle_ClosedWalk checks the generic contract on a graph with
// extra acyclic context: first and last element match, every step is a real
// prerequisite edge, and only stuck courses appear.
func TestExtractCycle_ClosedWalk(t *testing.T) {
	edges := [][2]string{{"X", "B"}, {"B", "C"}, {"C", "D"}, {"D", "B"}, {"D", "E"}}
	s := buildStore(t, []string{"B", "C", "D", "E", "X"}, edges)

	cycle, err := topo.ExtractCycle(s)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(cycle), 3)
	assert.Equal(t, cycle[0], cycle[len(cycle)-1])

	res, err := topo.Sort(s)
	require.NoError(t, err)
	stuck := map[string]bool{}
	for _, code := range res.Stuck {
		stuck[code] = true
	}
	for i := 0; i+1 < len(cycle); i++ {
		assert.True(t, stuck[cycle[i]], "cycle member %s must be stuck", cycle[i])
		assert.Contains(t, s.Dependents(cycle[i]), cycle[i+1],
			"%s → %s must be a prerequisite edge", cycle[i], cycle[i+1])
	}
}
