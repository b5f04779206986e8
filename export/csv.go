// Package export renders suggestion and plan results into tabular files.
//
// The CSV layout is the planner's historical one: a header row
// (codigo, nombre, creditos, desbloquea, criterio), one row per selected
// course, a blank separator row, and a trailing total_creditos row. XLSX
// output carries the same columns, with an extra leading semestre column in
// plan workbooks. The package only reads core/suggest/plan data; it owns
// the file formats, never the semantics.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/lrioseco/pmap/core"
	"github.com/lrioseco/pmap/suggest"
)

// ErrNilStore indicates a nil *core.Store was passed to a writer.
var ErrNilStore = errors.New("export: nil store")

// csvHeader is the fixed column layout of suggestion exports.
var csvHeader = []string{"codigo", "nombre", "creditos", "desbloquea", "criterio"}

// WriteCSV renders one suggestion as CSV onto w. Course names are resolved
// from the store; the criterion is repeated per row so the file is
// self-describing when detached from the run that produced it.
func WriteCSV(w io.Writer, s *core.Store, sel suggest.Selection, crit suggest.Criterion) error {
	if s == nil {
		return ErrNilStore
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for _, c := range sel.Courses {
		rec, _ := s.Course(c.Code)
		row := []string{c.Code, rec.Name, strconv.Itoa(c.Credits), strconv.Itoa(c.Unlocks), string(crit)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write row %s: %w", c.Code, err)
		}
	}
	// Separator, then the totals row, same shape as the historical export.
	if err := cw.Write([]string{""}); err != nil {
		return fmt.Errorf("export: write separator: %w", err)
	}
	if err := cw.Write([]string{"total_creditos", strconv.Itoa(sel.Total)}); err != nil {
		return fmt.Errorf("export: write total: %w", err)
	}
	cw.Flush()

	return cw.Error()
}
