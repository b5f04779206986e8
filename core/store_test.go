package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrioseco/pmap/core"
)

// TestAddCourse_Basic verifies insertion and normalization of a single course.
func TestAddCourse_Basic(t *testing.T) {
	s := core.NewStore()
	require.NoError(t, s.AddCourse(" mat101 ", "Cálculo I", 4))

	c, ok := s.Course("MAT101")
	require.True(t, ok)
	assert.Equal(t, "MAT101", c.Code)
	assert.Equal(t, "Cálculo I", c.Name)
	assert.Equal(t, 4, c.Credits)
	assert.True(t, s.HasCourse("mat101")) // lookup normalizes too
}

// TestAddCourse_EmptyCode ensures a blank code is rejected.
func TestAddCourse_EmptyCode(t *testing.T) {
	s := core.NewStore()
	assert.ErrorIs(t, s.AddCourse("   ", "X", 3), core.ErrEmptyCourseCode)
}

// TestAddCourse_Duplicate ensures re-registering a code fails with ErrDuplicateCourse.
func TestAddCourse_Duplicate(t *testing.T) {
	s := core.NewStore()
	require.NoError(t, s.AddCourse("EDA1", "Estructuras de Datos I", 3))
	assert.ErrorIs(t, s.AddCourse("eda1", "other", 5), core.ErrDuplicateCourse)
}

// TestAddCourse_InvalidCredits covers zero and negative credit weights.
func TestAddCourse_InvalidCredits(t *testing.T) {
	s := core.NewStore()
	assert.ErrorIs(t, s.AddCourse("A", "A", 0), core.ErrInvalidCredits)
	assert.ErrorIs(t, s.AddCourse("A", "A", -2), core.ErrInvalidCredits)
	assert.False(t, s.HasCourse("A"))
}

// TestAddCourse_BlankNameFallsBackToCode checks the display-name fallback.
func TestAddCourse_BlankNameFallsBackToCode(t *testing.T) {
	s := core.NewStore()
	require.NoError(t, s.AddCourse("FIS101", "  ", 3))
	c, _ := s.Course("FIS101")
	assert.Equal(t, "FIS101", c.Name)
}

// TestAddPrerequisite_UnknownEndpoints ensures both endpoints must be registered.
func TestAddPrerequisite_UnknownEndpoints(t *testing.T) {
	s := core.NewStore()
	require.NoError(t, s.AddCourse("A", "A", 3))

	assert.ErrorIs(t, s.AddPrerequisite("B", "A"), core.ErrUnknownCourse)
	assert.ErrorIs(t, s.AddPrerequisite("A", "B"), core.ErrUnknownCourse)
	assert.Empty(t, s.Prerequisites("A"))
}

// TestAddPrerequisite_SelfLoopAccepted verifies the permissive-write policy:
// a self-referencing prerequisite is stored, not rejected.
func TestAddPrerequisite_SelfLoopAccepted(t *testing.T) {
	s := core.NewStore()
	require.NoError(t, s.AddCourse("A", "A", 3))
	require.NoError(t, s.AddPrerequisite("A", "A"))
	assert.Equal(t, []string{"A"}, s.Prerequisites("A"))
}

// TestAddPrerequisite_Idempotent ensures duplicate edges collapse into one.
func TestAddPrerequisite_Idempotent(t *testing.T) {
	s := core.NewStore()
	require.NoError(t, s.AddCourse("A", "A", 3))
	require.NoError(t, s.AddCourse("B", "B", 3))
	require.NoError(t, s.AddPrerequisite("B", "A"))
	require.NoError(t, s.AddPrerequisite("B", "A"))

	assert.Equal(t, []string{"A"}, s.Prerequisites("B"))
	assert.Equal(t, 1, s.EdgeCount())
}

// TestAddPrerequisite_CycleAccepted verifies that an edge closing a cycle is
// stored; cycle detection is a query, not a write-time constraint.
func TestAddPrerequisite_CycleAccepted(t *testing.T) {
	s := core.NewStore()
	for _, code := range []string{"A", "B", "C"} {
		require.NoError(t, s.AddCourse(code, code, 3))
	}
	require.NoError(t, s.AddPrerequisite("B", "A"))
	require.NoError(t, s.AddPrerequisite("C", "B"))
	require.NoError(t, s.AddPrerequisite("A", "C")) // closes A→B→C→A

	assert.Equal(t, 3, s.EdgeCount())
}

// TestMarkPassed covers the unknown-code error and idempotence.
func TestMarkPassed(t *testing.T) {
	s := core.NewStore()
	require.NoError(t, s.AddCourse("MAT101", "Cálculo I", 4))

	assert.ErrorIs(t, s.MarkPassed("NOPE"), core.ErrUnknownCourse)

	require.NoError(t, s.MarkPassed("mat101"))
	require.NoError(t, s.MarkPassed("MAT101")) // idempotent
	assert.True(t, s.IsPassed("MAT101"))
	assert.Equal(t, []string{"MAT101"}, s.Passed())
}

// TestViews_SortedAndDefensive checks deterministic ordering and that
// returned collections are copies, not aliases of store internals.
func TestViews_SortedAndDefensive(t *testing.T) {
	s := core.NewStore()
	for _, code := range []string{"C", "A", "B"} {
		require.NoError(t, s.AddCourse(code, code, 3))
	}
	require.NoError(t, s.AddPrerequisite("C", "A"))
	require.NoError(t, s.AddPrerequisite("C", "B"))
	require.NoError(t, s.AddPrerequisite("B", "A"))

	assert.Equal(t, []string{"A", "B", "C"}, s.Codes())
	assert.Equal(t, []string{"A", "B"}, s.Prerequisites("C"))
	assert.Equal(t, []string{"B", "C"}, s.Dependents("A"))
	assert.Equal(t, []core.Edge{
		{Prereq: "A", Course: "B"},
		{Prereq: "A", Course: "C"},
		{Prereq: "B", Course: "C"},
	}, s.Edges())

	// Mutating a returned view must not leak back into the store.
	prereqs := s.Prerequisites("C")
	prereqs[0] = "ZZZ"
	assert.Equal(t, []string{"A", "B"}, s.Prerequisites("C"))

	passed := s.PassedSet()
	passed["A"] = struct{}{}
	assert.False(t, s.IsPassed("A"))
}

// TestClone_Isolation verifies that a clone diverges independently.
func TestClone_Isolation(t *testing.T) {
	s := core.NewStore()
	require.NoError(t, s.AddCourse("A", "A", 3))
	require.NoError(t, s.AddCourse("B", "B", 4))
	require.NoError(t, s.AddPrerequisite("B", "A"))
	require.NoError(t, s.MarkPassed("A"))

	clone := s.Clone()
	require.NoError(t, clone.AddCourse("C", "C", 5))
	require.NoError(t, clone.MarkPassed("B"))

	assert.False(t, s.HasCourse("C"))
	assert.False(t, s.IsPassed("B"))
	assert.True(t, clone.IsPassed("A"))
	assert.Equal(t, []string{"A"}, clone.Prerequisites("B"))
	assert.Equal(t, 2, s.CourseCount())
	assert.Equal(t, 3, clone.CourseCount())
}
