package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lrioseco/pmap/candidate"
	"github.com/lrioseco/pmap/core"
	"github.com/lrioseco/pmap/export"
	"github.com/lrioseco/pmap/plan"
	"github.com/lrioseco/pmap/suggest"
)

// suggestFlags are shared by suggest, plan and export.
type suggestFlags struct {
	cap      int
	criterio string
}

func (f *suggestFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.cap, "cap", 16, "tope de créditos por semestre")
	cmd.Flags().StringVar(&f.criterio, "criterio", string(suggest.Desbloqueo), "criterio de ranking: desbloqueo | creditos | nivel")
}

// criterion parses the flag value.
func (f *suggestFlags) criterion() (suggest.Criterion, error) {
	return suggest.ParseCriterion(strings.ToLower(strings.TrimSpace(f.criterio)))
}

// newSuggestCmd proposes the next semester.
func newSuggestCmd(a *app) *cobra.Command {
	var flags suggestFlags

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Sugiere el próximo semestre bajo un tope de créditos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			crit, err := flags.criterion()
			if err != nil {
				return err
			}
			s, err := a.loadStore()
			if err != nil {
				return err
			}
			cands, err := candidate.Candidates(s)
			if err != nil {
				return err
			}
			sel, err := suggest.Next(cands, flags.cap, crit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if sel.Count() == 0 {
				fmt.Fprintln(out, "No se pudo sugerir un conjunto sin exceder el tope.")
				return nil
			}
			fmt.Fprintln(out, "Sugerencia de próximo semestre:")
			for _, c := range sel.Courses {
				fmt.Fprintf(out, "  - %s (%d cr) — desbloquea %d materia(s)\n", c.Code, c.Credits, c.Unlocks)
			}
			fmt.Fprintf(out, "Total créditos: %d / %d\n", sel.Total, flags.cap)

			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

// newPlanCmd projects the full plan, semester by semester.
func newPlanCmd(a *app) *cobra.Command {
	var (
		flags     suggestFlags
		semestres int
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Proyecta el plan completo por semestres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			crit, err := flags.criterion()
			if err != nil {
				return err
			}
			s, err := a.loadStore()
			if err != nil {
				return err
			}
			semesters, err := plan.Semesters(s, flags.cap, crit, plan.WithMaxSemesters(semestres))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(semesters) == 0 {
				fmt.Fprintln(out, "No hay materias cursables; revisa prerrequisitos o aprobadas.")
				return nil
			}
			for i, sem := range semesters {
				fmt.Fprintf(out, "Semestre %d (%d cr):\n", i+1, sem.Total)
				for _, c := range sem.Courses {
					fmt.Fprintf(out, "  - %s (%d cr) — desbloquea %d materia(s)\n", c.Code, c.Credits, c.Unlocks)
				}
			}

			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&semestres, "semestres", plan.DefaultMaxSemesters, "máximo de semestres a proyectar")

	return cmd
}

// newExportCmd writes the suggestion (or plan) to CSV or XLSX by extension.
func newExportCmd(a *app) *cobra.Command {
	var (
		flags    suggestFlags
		outPath  string
		fullPlan bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exporta la sugerencia (CSV o XLSX, según extensión)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			crit, err := flags.criterion()
			if err != nil {
				return err
			}
			s, err := a.loadStore()
			if err != nil {
				return err
			}
			if dir := filepath.Dir(outPath); dir != "." {
				if err = os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("crear directorio %s: %w", dir, err)
				}
			}

			switch ext := strings.ToLower(filepath.Ext(outPath)); ext {
			case ".csv":
				if fullPlan {
					return fmt.Errorf("el plan completo solo se exporta a .xlsx")
				}
				var sel suggest.Selection
				if sel, err = nextSelection(s, flags.cap, crit); err != nil {
					return err
				}
				f, createErr := os.Create(outPath)
				if createErr != nil {
					return fmt.Errorf("crear %s: %w", outPath, createErr)
				}
				defer func() { _ = f.Close() }()
				if err = export.WriteCSV(f, s, sel, crit); err != nil {
					return err
				}
			case ".xlsx":
				if fullPlan {
					var semesters []plan.Semester
					if semesters, err = plan.Semesters(s, flags.cap, crit); err != nil {
						return err
					}
					if err = export.WritePlanXLSX(outPath, s, semesters, crit); err != nil {
						return err
					}
					break
				}
				var sel suggest.Selection
				if sel, err = nextSelection(s, flags.cap, crit); err != nil {
					return err
				}
				if err = export.WriteSelectionXLSX(outPath, s, sel, crit); err != nil {
					return err
				}
			default:
				return fmt.Errorf("extensión no soportada: %q (usa .csv o .xlsx)", ext)
			}
			a.log.Infow("sugerencia exportada", "path", outPath, "criterio", crit, "cap", flags.cap)

			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&outPath, "out", "o", "out/sugerencia.csv", "archivo de salida (.csv o .xlsx)")
	cmd.Flags().BoolVar(&fullPlan, "plan", false, "exporta el plan completo en vez de un semestre")

	return cmd
}

// nextSelection runs the candidate + suggestion pipeline once.
func nextSelection(s *core.Store, cap int, crit suggest.Criterion) (suggest.Selection, error) {
	cands, err := candidate.Candidates(s)
	if err != nil {
		return suggest.Selection{}, err
	}

	return suggest.Next(cands, cap, crit)
}
