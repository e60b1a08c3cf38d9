package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goaoc/internal/logging"
	"github.com/yaklabco/goaoc/pkg/config"
	"github.com/yaklabco/goaoc/pkg/puzzle"
	_ "github.com/yaklabco/goaoc/pkg/puzzle/solutions" // Register built-in solvers
	"github.com/yaklabco/goaoc/pkg/reporter"
	"github.com/yaklabco/goaoc/pkg/runner"
)

type solveFlags struct {
	inputs      []string
	inputDir    string
	pattern     string
	format      string
	jobs        int
	skipMissing bool
	compact     bool
	noTimings   bool
}

func newSolveCommand() *cobra.Command {
	flags := &solveFlags{}

	cmd := &cobra.Command{
		Use:     "solve [puzzles...]",
		Aliases: []string{"run"},
		Short:   "Solve puzzles",
		Long:    solveLongDescription,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, flags)
		},
	}

	addSolveFlags(cmd, flags)

	return cmd
}

const solveLongDescription = `Solve puzzles and print both answers.

Without arguments every enabled puzzle is solved. Arguments select puzzles
by ID, name, alias or glob pattern over IDs and names.

Inputs default to <input-dir>/<pattern>, where the pattern may use the
placeholders {year}, {day}, {day1}, {id} and {name}. --input overrides the
input of one puzzle; "-" reads it from standard input.`

const solveExamples = `  goaoc solve                          # Solve every enabled puzzle
  goaoc solve 2023-05                  # Solve one puzzle by ID
  goaoc solve seeds --input -          # Read the input from stdin
  goaoc solve '2023-*' --format table  # Solve all 2023 puzzles as a table
  goaoc solve --input 2022-01=cal.txt  # Override one puzzle's input
  goaoc solve --skip-missing --jobs 4  # Skip puzzles without an input file`

func runSolve(cmd *cobra.Command, args []string, flags *solveFlags) error {
	logger := logging.Default()
	ctx := commandContext(cmd)
	registry := puzzle.DefaultRegistry

	// Only flags the user set override lower configuration layers.
	cliCfg := &config.Config{
		InputDir:     flags.inputDir,
		InputPattern: flags.pattern,
		Jobs:         flags.jobs,
		SkipMissing:  flags.skipMissing,
	}
	if cmd.Flags().Changed("format") {
		cliCfg.Format = config.OutputFormat(strings.ToLower(flags.format))
	}

	loadResult, err := loadConfig(cmd, registry, cliCfg)
	if err != nil {
		return err
	}
	cfg := loadResult.Config

	format, err := reporter.FromConfig(cfg.Format)
	if err != nil {
		return withExitCode(ExitInvalidUsage, fmt.Errorf("invalid format: %w", err))
	}

	inputs, err := parseInputs(registry, args, flags.inputs)
	if err != nil {
		return withExitCode(ExitInvalidUsage, err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("get working directory: %w", err))
	}

	runOpts := runner.OptionsFromConfig(cfg)
	runOpts.Puzzles = args
	runOpts.WorkingDir = workDir
	runOpts.Inputs = inputs
	runOpts.Stdin = cmd.InOrStdin()

	logger.Debug("starting solve run",
		logging.FieldPuzzles, runOpts.Puzzles,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
		logging.FieldFormat, format,
	)

	result, err := runner.New(registry).Run(ctx, runOpts)
	if err != nil {
		if errors.Is(err, runner.ErrUnknownPuzzle) {
			return withExitCode(ExitInvalidUsage, err)
		}
		return withExitCode(ExitInternalError, errors.Join(errors.New("solve run failed"), err))
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode(cmd),
		ShowSummary: true,
		ShowTimings: !flags.noTimings,
		Compact:     flags.compact,
	})
	if err != nil {
		return withExitCode(ExitInternalError, fmt.Errorf("create reporter: %w", err))
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return withExitCode(ExitIOError, fmt.Errorf("report results: %w", err))
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return withExitCode(ExitPuzzleFailure, ErrPuzzlesFailed)
	}

	return nil
}

// parseInputs maps --input values to canonical puzzle IDs. A value is either
// KEY=PATH or a bare PATH, which applies to the single puzzle named on the
// command line.
func parseInputs(registry *puzzle.Registry, args, values []string) (map[string]string, error) {
	if len(values) == 0 {
		return nil, nil
	}

	inputs := make(map[string]string, len(values))
	for _, value := range values {
		key, path, ok := strings.Cut(value, "=")
		if !ok {
			if len(args) != 1 {
				return nil, fmt.Errorf("--input %q: a bare path needs exactly one puzzle argument; use KEY=PATH", value)
			}
			key, path = args[0], value
		}

		if path == "" {
			return nil, fmt.Errorf("--input %q: empty path", value)
		}

		id, _, found := registry.Resolve(key)
		if !found {
			return nil, fmt.Errorf("--input %q: %w: %s", value, runner.ErrUnknownPuzzle, key)
		}
		inputs[id] = path
	}

	return inputs, nil
}

func addSolveFlags(cmd *cobra.Command, flags *solveFlags) {
	cmd.Example = solveExamples
	cmd.Flags().StringArrayVarP(&flags.inputs, "input", "i", nil,
		`input for a puzzle: PATH (with one puzzle argument) or KEY=PATH; "-" reads stdin`)
	cmd.Flags().StringVar(&flags.inputDir, "input-dir", "", "directory holding puzzle inputs (default \"inputs\")")
	cmd.Flags().StringVar(&flags.pattern, "pattern", "", "input file pattern under the input directory (default \"{year}/day{day}.txt\")")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "output format: text, table, json, summary")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.skipMissing, "skip-missing", false, "skip puzzles without an input file instead of failing")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format (json)")
	cmd.Flags().BoolVar(&flags.noTimings, "no-timings", false, "hide solver durations in text output")
}
