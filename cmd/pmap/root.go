package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lrioseco/pmap/core"
	"github.com/lrioseco/pmap/dataset"
)

// defaultDataPath is where the planner looks for the curriculum unless
// --data overrides it.
const defaultDataPath = "data/malla.json"

// app carries the wiring every subcommand needs: the dataset location and a
// logger for diagnostics. Results go to stdout via fmt; the engine packages
// themselves never log.
type app struct {
	dataPath string
	verbose  bool
	log      *zap.SugaredLogger
}

// newRootCmd assembles the pmap command tree.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "pmap",
		Short:         "Planificador de malla y prerrequisitos",
		Long:          "pmap modela una malla curricular como un grafo dirigido de prerrequisitos:\ndetecta ciclos, calcula un orden topológico y sugiere el próximo semestre\nbajo un tope de créditos.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.dataPath, "data", defaultDataPath, "ruta del dataset (.json, .yaml o .yml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "diagnóstico detallado")

	root.AddCommand(
		newInitCmd(a),
		newCoursesCmd(a),
		newPrereqsCmd(a),
		newTopoCmd(a),
		newCandidatesCmd(a),
		newBlockedCmd(a),
		newSuggestCmd(a),
		newPlanCmd(a),
		newExportCmd(a),
		newDotCmd(a),
		newMetricsCmd(a),
		newAddCourseCmd(a),
		newAddPrereqCmd(a),
		newPassCmd(a),
	)

	return root
}

// initLogger builds the zap logger according to verbosity.
func (a *app) initLogger() error {
	cfg := zap.NewProductionConfig()
	if a.verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	a.log = logger.Sugar()

	return nil
}

// loadStore reads the configured dataset.
func (a *app) loadStore() (*core.Store, error) {
	s, err := dataset.Load(a.dataPath)
	if err != nil {
		return nil, fmt.Errorf("no se pudo cargar %s (¿ejecutaste 'pmap init'?): %w", a.dataPath, err)
	}
	a.log.Debugw("dataset cargado", "path", a.dataPath, "materias", s.CourseCount(), "prerrequisitos", s.EdgeCount())

	return s, nil
}

// saveStore persists the store back to the configured dataset.
func (a *app) saveStore(s *core.Store) error {
	if err := dataset.Save(s, a.dataPath); err != nil {
		return err
	}
	a.log.Infow("dataset guardado", "path", a.dataPath)

	return nil
}
