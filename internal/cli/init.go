package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goaoc/internal/logging"
	"github.com/yaklabco/goaoc/pkg/config"
	"github.com/yaklabco/goaoc/pkg/fsutil"
	"github.com/yaklabco/goaoc/pkg/puzzle"
)

// defaultConfigFile is the file init writes when --output is not given.
const defaultConfigFile = ".goaoc.yml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new goaoc configuration file",
		Long: `Create a new .goaoc.yml configuration file in the current directory
with the default input layout. The file can be customized to move inputs,
disable puzzles, or point single puzzles at other input files.

Examples:
  goaoc init                      Create minimal .goaoc.yml
  goaoc init --full               List every puzzle in the template
  goaoc init --output custom.yml  Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.force, "force", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate full template with every puzzle listed")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigFile, "Output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = defaultConfigFile
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("resolve path: %w", err))
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return withExitCode(ExitInvalidUsage,
				fmt.Errorf("file %q already exists; use --force to overwrite", outputPath))
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content := config.GenerateTemplate(config.TemplateOptions{
		Full:    flags.full,
		Puzzles: templatePuzzles(puzzle.DefaultRegistry),
	})

	if err := fsutil.WriteAtomic(commandContext(cmd), absPath, content, fsutil.DefaultFileMode); err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("write file: %w", err))
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'goaoc list' to see all available puzzles")

	return nil
}

// templatePuzzles converts registered puzzles to template metadata.
func templatePuzzles(registry *puzzle.Registry) []config.PuzzleInfo {
	puzzles := registry.Puzzles()
	infos := make([]config.PuzzleInfo, 0, len(puzzles))
	for _, p := range puzzles {
		infos = append(infos, config.PuzzleInfo{
			ID:    p.ID(),
			Name:  p.Name(),
			Title: p.Title(),
			Tags:  p.Tags(),
		})
	}
	return infos
}
