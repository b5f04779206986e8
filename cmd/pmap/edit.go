package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lrioseco/pmap/dataset"
)

// newInitCmd seeds the dataset file with the embedded example curriculum.
func newInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Crea el dataset con la malla de ejemplo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(a.dataPath); err == nil && !force {
				return fmt.Errorf("%s ya existe (usa --force para sobrescribir)", a.dataPath)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := a.saveStore(dataset.Example()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Dataset de ejemplo creado en %s\n", a.dataPath)

			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "sobrescribe un dataset existente")

	return cmd
}

// newAddCourseCmd registers a course and persists the dataset.
func newAddCourseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add-course <codigo> <nombre> <creditos>",
		Short: "Agrega una materia",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			credits, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("créditos inválidos %q: %w", args[2], err)
			}
			s, err := a.loadStore()
			if err != nil {
				return err
			}
			if err = s.AddCourse(args[0], args[1], credits); err != nil {
				return err
			}
			if err = a.saveStore(s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Agregada %s.\n", args[0])

			return nil
		},
	}
}

// newAddPrereqCmd records a prerequisite edge and persists the dataset.
func newAddPrereqCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add-prereq <prerrequisito> <materia>",
		Short: "Agrega un prerrequisito (P debe aprobarse antes que C)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadStore()
			if err != nil {
				return err
			}
			if err = s.AddPrerequisite(args[1], args[0]); err != nil {
				return err
			}
			if err = a.saveStore(s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Agregado prerrequisito: %s -> %s\n", args[0], args[1])

			return nil
		},
	}
}

// newPassCmd marks a course as passed and persists the dataset.
func newPassCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pass <codigo>",
		Short: "Marca una materia como aprobada",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadStore()
			if err != nil {
				return err
			}
			if err = s.MarkPassed(args[0]); err != nil {
				return err
			}
			if err = a.saveStore(s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marcada %s como aprobada.\n", args[0])

			return nil
		},
	}
}
