// Command scip-solve reads an optimization problem file (LP, MPS, or
// any other format SCIP has a reader for), optionally applies a YAML
// parameter file, solves it, and reports the result.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/solvio/goscip/scip"
)

// Options holds the flags of the solve command.
type Options struct {
	ParamsFile    string
	TimeLimit     float64
	Quiet         bool
	Verbose       bool
	WriteSolution string
}

// NewSolveCommand creates the root command.
func NewSolveCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "scip-solve [flags] <problem-file>",
		Short: "Solve an optimization problem with SCIP",
		Long: `Solve an LP/MIP problem instance with the SCIP solver.

The problem format is detected from the file extension (.lp, .mps, ...).
Parameters can be supplied as a YAML map of SCIP parameter names to
values, e.g.:

  limits/gap: 0.01
  presolving/maxrounds: 0
  display/verblevel: 4

Example:
  scip-solve model.lp
  scip-solve --params params.yaml --time-limit 60 model.mps`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.ParamsFile, "params", "", "YAML file with SCIP parameters")
	cmd.Flags().Float64Var(&opts.TimeLimit, "time-limit", 0, "time limit in seconds (0 = none)")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress solver output")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging")
	cmd.Flags().StringVar(&opts.WriteSolution, "write-solution", "", "write the best solution to this file")

	return cmd
}

func run(opts *Options, problemFile string) error {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))

	var modelOpts []scip.Option
	if opts.Quiet {
		modelOpts = append(modelOpts, scip.WithHideOutput())
	}
	if opts.TimeLimit > 0 {
		modelOpts = append(modelOpts, scip.WithTimeLimit(opts.TimeLimit))
	}

	model, err := scip.New(modelOpts...)
	if err != nil {
		return fmt.Errorf("creating solver: %w", err)
	}
	defer model.Close()

	if opts.ParamsFile != "" {
		slog.Debug("applying parameters", "file", opts.ParamsFile)
		if err := applyParams(model, opts.ParamsFile); err != nil {
			return fmt.Errorf("applying parameters: %w", err)
		}
	}

	slog.Info("reading problem", "file", problemFile)
	if err := model.ReadProb(problemFile); err != nil {
		return fmt.Errorf("reading problem: %w", err)
	}
	slog.Info("problem read", "vars", model.NVars())

	solved, err := model.Solve()
	if err != nil {
		return fmt.Errorf("solving: %w", err)
	}
	defer solved.Close()

	status := solved.Status()
	slog.Info("solve finished",
		"status", status.String(),
		"nodes", solved.NNodes(),
		"objective", solved.ObjVal(),
		"bound", solved.BestBound(),
	)

	if _, ok := solved.BestSol(); ok && opts.WriteSolution != "" {
		slog.Info("writing solution", "file", opts.WriteSolution)
		if err := solved.WriteBestSol(opts.WriteSolution); err != nil {
			return fmt.Errorf("writing solution: %w", err)
		}
	}

	fmt.Printf("status: %s\n", status)
	if _, ok := solved.BestSol(); ok {
		fmt.Printf("objective: %g\n", solved.ObjVal())
	}
	return nil
}

// applyParams reads a YAML map of SCIP parameter names to values and
// dispatches each entry to the setter matching its YAML type.
func applyParams(model *scip.Model, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	params := make(map[string]any)
	if err := yaml.Unmarshal(data, &params); err != nil {
		return err
	}
	for name, value := range params {
		switch v := value.(type) {
		case bool:
			err = model.SetBoolParam(name, v)
		case int:
			err = model.SetIntParam(name, v)
		case float64:
			err = model.SetRealParam(name, v)
		case string:
			err = model.SetStringParam(name, v)
		default:
			err = fmt.Errorf("parameter %q has unsupported type %T", name, value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := NewSolveCommand().Execute(); err != nil {
		slog.Error("scip-solve failed", "error", err)
		os.Exit(1)
	}
}
