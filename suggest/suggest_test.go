package suggest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrioseco/pmap/candidate"
	"github.com/lrioseco/pmap/suggest"
)

// cand is a shorthand constructor for test fixtures.
func cand(code string, credits, unlocks int) candidate.Candidate {
	return candidate.Candidate{Code: code, Credits: credits, Unlocks: unlocks}
}

// TestNext_InvalidCap rejects caps below 1.
func TestNext_InvalidCap(t *testing.T) {
	for _, cap := range []int{0, -1, -100} {
		_, err := suggest.Next(nil, cap, suggest.Creditos)
		assert.ErrorIs(t, err, suggest.ErrInvalidCap, "cap=%d", cap)
	}
}

// TestNext_UnknownCriterion rejects unrecognized criterion names.
func TestNext_UnknownCriterion(t *testing.T) {
	_, err := suggest.Next(nil, 10, suggest.Criterion("aleatorio"))
	assert.ErrorIs(t, err, suggest.ErrUnknownCriterion)
}

// TestNext_GreedyCreditos verifies the reference scenario: A(3), B(4), C(5)
// with cap 7 under creditos picks A then B, skips C, total 7.
func TestNext_GreedyCreditos(t *testing.T) {
	cands := []candidate.Candidate{cand("A", 3, 0), cand("B", 4, 0), cand("C", 5, 0)}

	sel, err := suggest.Next(cands, 7, suggest.Creditos)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, sel.Codes())
	assert.Equal(t, 7, sel.Total)
	assert.Equal(t, 2, sel.Count())
}

// TestNext_SkipThenAccept ensures a too-expensive course is skipped while a
// later, cheaper one still fits.
func TestNext_SkipThenAccept(t *testing.T) {
	// Desbloqueo order: X (3 unlocks, 6cr), Y (2 unlocks, 5cr), Z (1 unlock, 2cr).
	cands := []candidate.Candidate{cand("X", 6, 3), cand("Y", 5, 2), cand("Z", 2, 1)}

	sel, err := suggest.Next(cands, 8, suggest.Desbloqueo)
	require.NoError(t, err)
	// X fits (remaining 2), Y does not, Z fits.
	assert.Equal(t, []string{"X", "Z"}, sel.Codes())
	assert.Equal(t, 8, sel.Total)
}

// TestNext_EmptySelectionIsSuccess: every candidate over cap yields an
// empty, non-error selection.
func TestNext_EmptySelectionIsSuccess(t *testing.T) {
	cands := []candidate.Candidate{cand("A", 9, 0), cand("B", 12, 0)}

	sel, err := suggest.Next(cands, 5, suggest.Creditos)
	require.NoError(t, err)
	assert.Empty(t, sel.Courses)
	assert.Zero(t, sel.Total)
}

// TestNext_DesbloqueoOrder checks the full tie-break chain: unlocks desc,
// credits asc, code asc.
func TestNext_DesbloqueoOrder(t *testing.T) {
	cands := []candidate.Candidate{
		cand("D", 3, 1),
		cand("C", 4, 2),
		cand("B", 3, 2), // ties with C on unlocks, wins on credits
		cand("A", 3, 2), // ties with B fully, wins on code
	}

	sel, err := suggest.Next(cands, 100, suggest.Desbloqueo)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, sel.Codes())
}

// TestNext_CreditosTieBreaks checks credits asc, then unlocks desc, then code.
func TestNext_CreditosTieBreaks(t *testing.T) {
	cands := []candidate.Candidate{
		cand("B", 3, 1),
		cand("A", 3, 1), // full tie with B, code decides
		cand("C", 3, 4), // same credits, more unlocks: first
		cand("D", 2, 0), // cheapest: before all
	}

	sel, err := suggest.Next(cands, 100, suggest.Creditos)
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "C", "A", "B"}, sel.Codes())
}

// TestNext_NivelOrder sorts by leading digit group, digitless codes last.
func TestNext_NivelOrder(t *testing.T) {
	cands := []candidate.Candidate{
		cand("MAT2030", 3, 0),
		cand("FIS1010", 3, 0),
		cand("TALLER", 3, 0), // no digits: level 9999
		cand("EDA1010", 3, 0),
	}

	sel, err := suggest.Next(cands, 100, suggest.Nivel)
	require.NoError(t, err)
	assert.Equal(t, []string{"EDA1010", "FIS1010", "MAT2030", "TALLER"}, sel.Codes())
}

// TestNext_TotalNeverExceedsCap fuzzes a few caps over a fixed pool.
func TestNext_TotalNeverExceedsCap(t *testing.T) {
	cands := []candidate.Candidate{
		cand("A", 3, 2), cand("B", 4, 1), cand("C", 5, 3), cand("D", 2, 0), cand("E", 6, 5),
	}
	for cap := 1; cap <= 22; cap++ {
		for _, crit := range []suggest.Criterion{suggest.Desbloqueo, suggest.Creditos, suggest.Nivel} {
			sel, err := suggest.Next(cands, cap, crit)
			require.NoError(t, err)
			assert.LessOrEqual(t, sel.Total, cap, "cap=%d crit=%s", cap, crit)
		}
	}
}

// TestNext_InputNotReordered ensures the caller's slice survives untouched.
func TestNext_InputNotReordered(t *testing.T) {
	cands := []candidate.Candidate{cand("B", 4, 0), cand("A", 3, 0)}
	_, err := suggest.Next(cands, 10, suggest.Creditos)
	require.NoError(t, err)
	assert.Equal(t, "B", cands[0].Code)
	assert.Equal(t, "A", cands[1].Code)
}

// TestParseCriterion covers defaulting and rejection.
func TestParseCriterion(t *testing.T) {
	crit, err := suggest.ParseCriterion("")
	require.NoError(t, err)
	assert.Equal(t, suggest.Desbloqueo, crit)

	for _, name := range []string{"desbloqueo", "creditos", "nivel"} {
		crit, err = suggest.ParseCriterion(name)
		require.NoError(t, err)
		assert.Equal(t, suggest.Criterion(name), crit)
	}

	_, err = suggest.ParseCriterion("optimo")
	assert.ErrorIs(t, err, suggest.ErrUnknownCriterion)
}

// TestLevel covers digit extraction cases.
func TestLevel(t *testing.T) {
	assert.Equal(t, 1020, suggest.Level("MAT1020"))
	assert.Equal(t, 1, suggest.Level("EDA1"))
	assert.Equal(t, 101, suggest.Level("FIS101A2")) // first digit group only
	assert.Equal(t, 9999, suggest.Level("TALLER"))
}
