// Package export: XLSX workbooks via excelize.
package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/lrioseco/pmap/core"
	"github.com/lrioseco/pmap/plan"
	"github.com/lrioseco/pmap/suggest"
)

const (
	suggestionSheet = "Sugerencia"
	planSheet       = "Plan"
)

// WriteSelectionXLSX writes one suggestion as an XLSX workbook at path,
// single sheet "Sugerencia", same columns as the CSV export plus the
// trailing total row.
func WriteSelectionXLSX(path string, s *core.Store, sel suggest.Selection, crit suggest.Criterion) error {
	if s == nil {
		return ErrNilStore
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	f.SetSheetName(f.GetSheetName(0), suggestionSheet)

	if err := writeRow(f, suggestionSheet, 1, csvHeader); err != nil {
		return err
	}
	row := 2
	for _, c := range sel.Courses {
		rec, _ := s.Course(c.Code)
		cells := []string{c.Code, rec.Name, strconv.Itoa(c.Credits), strconv.Itoa(c.Unlocks), string(crit)}
		if err := writeRow(f, suggestionSheet, row, cells); err != nil {
			return err
		}
		row++
	}
	if err := writeRow(f, suggestionSheet, row+1, []string{"total_creditos", strconv.Itoa(sel.Total)}); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}

	return nil
}

// WritePlanXLSX writes a projected multi-semester plan at path, single
// sheet "Plan", one row per planned course with a leading semestre column
// and a per-semester credit total.
func WritePlanXLSX(path string, s *core.Store, semesters []plan.Semester, crit suggest.Criterion) error {
	if s == nil {
		return ErrNilStore
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	f.SetSheetName(f.GetSheetName(0), planSheet)

	header := append([]string{"semestre"}, csvHeader...)
	if err := writeRow(f, planSheet, 1, header); err != nil {
		return err
	}
	row := 2
	for term, sem := range semesters {
		for _, c := range sem.Courses {
			rec, _ := s.Course(c.Code)
			cells := []string{
				strconv.Itoa(term + 1),
				c.Code, rec.Name, strconv.Itoa(c.Credits), strconv.Itoa(c.Unlocks), string(crit),
			}
			if err := writeRow(f, planSheet, row, cells); err != nil {
				return err
			}
			row++
		}
		totals := []string{strconv.Itoa(term + 1), "total_creditos", strconv.Itoa(sem.Total)}
		if err := writeRow(f, planSheet, row, totals); err != nil {
			return err
		}
		row++
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}

	return nil
}

// writeRow sets one sheet row starting at column A.
func writeRow(f *excelize.File, sheet string, row int, cells []string) error {
	for i, value := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("export: cell (%d,%d): %w", i+1, row, err)
		}
		if err = f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("export: set %s!%s: %w", sheet, cell, err)
		}
	}

	return nil
}
