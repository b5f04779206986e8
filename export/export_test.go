package export_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/lrioseco/pmap/candidate"
	"github.com/lrioseco/pmap/core"
	"github.com/lrioseco/pmap/export"
	"github.com/lrioseco/pmap/plan"
	"github.com/lrioseco/pmap/suggest"
)

// fixture builds a store plus a two-course selection under criterion creditos.
func fixture(t *testing.T) (*core.Store, suggest.Selection) {
	t.Helper()
	s := core.NewStore()
	require.NoError(t, s.AddCourse("A", "Intro", 3))
	require.NoError(t, s.AddCourse("B", "Core", 4))
	require.NoError(t, s.AddCourse("C", "Capstone", 5))

	cands, err := candidate.Candidates(s)
	require.NoError(t, err)
	sel, err := suggest.Next(cands, 7, suggest.Creditos)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, sel.Codes())

	return s, sel
}

// TestWriteCSV_Layout pins the exact historical CSV shape.
func TestWriteCSV_Layout(t *testing.T) {
	s, sel := fixture(t)

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, s, sel, suggest.Creditos))

	want := "codigo,nombre,creditos,desbloquea,criterio\n" +
		"A,Intro,3,0,creditos\n" +
		"B,Core,4,0,creditos\n" +
		"\n" +
		"total_creditos,7\n"
	assert.Equal(t, want, buf.String())
}

// TestWriteCSV_EmptySelection still emits header and zero total.
func TestWriteCSV_EmptySelection(t *testing.T) {
	s, _ := fixture(t)

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, s, suggest.Selection{}, suggest.Nivel))
	assert.Contains(t, buf.String(), "codigo,nombre,creditos,desbloquea,criterio\n")
	assert.Contains(t, buf.String(), "total_creditos,0\n")
}

// TestWriteCSV_NilStore verifies the sentinel.
func TestWriteCSV_NilStore(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, export.WriteCSV(&buf, nil, suggest.Selection{}, suggest.Creditos), export.ErrNilStore)
}

// TestWriteSelectionXLSX writes a workbook and reads key cells back.
func TestWriteSelectionXLSX(t *testing.T) {
	s, sel := fixture(t)
	path := filepath.Join(t.TempDir(), "sugerencia.xlsx")
	require.NoError(t, export.WriteSelectionXLSX(path, s, sel, suggest.Creditos))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	got := func(cell string) string {
		v, cellErr := f.GetCellValue("Sugerencia", cell)
		require.NoError(t, cellErr)
		return v
	}
	assert.Equal(t, "codigo", got("A1"))
	assert.Equal(t, "A", got("A2"))
	assert.Equal(t, "Intro", got("B2"))
	assert.Equal(t, "B", got("A3"))
	assert.Equal(t, "total_creditos", got("A5"))
	assert.Equal(t, "7", got("B5"))
}

// TestWritePlanXLSX writes a two-term plan and spot-checks rows.
func TestWritePlanXLSX(t *testing.T) {
	s := core.NewStore()
	require.NoError(t, s.AddCourse("A", "Intro", 3))
	require.NoError(t, s.AddCourse("B", "Core", 4))
	require.NoError(t, s.AddPrerequisite("B", "A"))

	semesters, err := plan.Semesters(s, 6, suggest.Desbloqueo)
	require.NoError(t, err)
	require.Len(t, semesters, 2)

	path := filepath.Join(t.TempDir(), "plan.xlsx")
	require.NoError(t, export.WritePlanXLSX(path, s, semesters, suggest.Desbloqueo))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	got := func(cell string) string {
		v, cellErr := f.GetCellValue("Plan", cell)
		require.NoError(t, cellErr)
		return v
	}
	assert.Equal(t, "semestre", got("A1"))
	assert.Equal(t, "1", got("A2"))
	assert.Equal(t, "A", got("B2"))
	assert.Equal(t, "total_creditos", got("B3"))
	assert.Equal(t, "2", got("A4"))
	assert.Equal(t, "B", got("B4"))
}
