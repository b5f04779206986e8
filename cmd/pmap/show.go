package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lrioseco/pmap/candidate"
	"github.com/lrioseco/pmap/metrics"
	"github.com/lrioseco/pmap/topo"
	"github.com/lrioseco/pmap/viz"
)

// newCoursesCmd lists the catalog, marking passed courses.
func newCoursesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "courses",
		Short: "Lista las materias registradas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadStore()
			if err != nil {
				return err
			}
			for _, c := range s.Courses() {
				mark := " "
				if s.IsPassed(c.Code) {
					mark = "✓"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %-8s | %2d cr | %s\n", mark, c.Code, c.Credits, c.Name)
			}

			return nil
		},
	}
}

// newPrereqsCmd lists every prerequisite edge P -> C.
func newPrereqsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prereqs",
		Short: "Lista los prerrequisitos (P -> C)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadStore()
			if err != nil {
				return err
			}
			edges := s.Edges()
			if len(edges) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "(ninguno)")
				return nil
			}
			for _, e := range edges {
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", e.Prereq, e.Course)
			}

			return nil
		},
	}
}

// newTopoCmd runs cycle detection plus topological ordering.
func newTopoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "topo",
		Short: "Detecta ciclos y muestra un orden topológico",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadStore()
			if err != nil {
				return err
			}
			res, err := topo.Sort(s)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !res.HasCycle {
				fmt.Fprintln(out, "Sin ciclos. Orden topológico:")
				fmt.Fprintln(out, "  "+strings.Join(res.Order, " -> "))
				return nil
			}

			fmt.Fprintln(out, "Se detectó un ciclo en los prerrequisitos.")
			fmt.Fprintf(out, "Materias atascadas: %s\n", strings.Join(res.Stuck, ", "))
			cycle, err := topo.ExtractCycle(s)
			if err != nil {
				return err
			}
			if len(cycle) > 0 {
				fmt.Fprintln(out, "Ciclo ejemplo: "+strings.Join(cycle, " -> "))
			}

			return nil
		},
	}
}

// newCandidatesCmd lists courses with effective indegree zero.
func newCandidatesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "candidates",
		Short: "Lista las materias cursables ahora",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadStore()
			if err != nil {
				return err
			}
			cands, err := candidate.Candidates(s)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(cands) == 0 {
				fmt.Fprintln(out, "No hay candidatas disponibles.")
				return nil
			}
			for _, c := range cands {
				fmt.Fprintf(out, "%s (%d cr) — desbloquea %d materia(s)\n", c.Code, c.Credits, c.Unlocks)
			}

			return nil
		},
	}
}

// newBlockedCmd reports courses still gated by missing prerequisites.
func newBlockedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "blocked",
		Short: "Reporta materias bloqueadas y sus prerrequisitos faltantes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadStore()
			if err != nil {
				return err
			}
			blocked, err := candidate.Blocked(s)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(blocked) == 0 {
				fmt.Fprintln(out, "(ninguna)")
				return nil
			}
			for _, b := range blocked {
				fmt.Fprintf(out, "%s necesita: %s\n", b.Code, strings.Join(b.Missing, ", "))
			}

			return nil
		},
	}
}

// newMetricsCmd prints graph size and sort timing.
func newMetricsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Muestra métricas del grafo (V, E, tiempo de orden)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadStore()
			if err != nil {
				return err
			}
			m, err := metrics.Collect(s)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Materias: %d, prerrequisitos: %d\n", m.Courses, m.Edges)
			fmt.Fprintf(out, "Orden topológico en %.2f ms — ciclo: %v\n",
				float64(m.SortDuration.Microseconds())/1000.0, m.HasCycle)
			if m.HasCycle {
				fmt.Fprintf(out, "Atascadas: %s\n", strings.Join(m.Stuck, ", "))
			}

			return nil
		},
	}
}

// newDotCmd renders the curriculum as Graphviz DOT.
func newDotCmd(a *app) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Genera el grafo en formato Graphviz DOT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadStore()
			if err != nil {
				return err
			}
			cands, err := candidate.Candidates(s)
			if err != nil {
				return err
			}
			doc, err := viz.DOT(s, cands)
			if err != nil {
				return err
			}
			if outPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), doc)
				return nil
			}
			if err = os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", outPath, err)
			}
			a.log.Infow("grafo exportado", "path", outPath)

			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "archivo de salida (por defecto stdout)")

	return cmd
}
