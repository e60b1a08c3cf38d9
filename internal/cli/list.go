package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goaoc/internal/logging"
	"github.com/yaklabco/goaoc/pkg/config"
	"github.com/yaklabco/goaoc/pkg/puzzle"
)

type listFlags struct {
	format string
}

const formatJSON = "json"

// puzzleInfo represents a puzzle in JSON output.
type puzzleInfo struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	Year    int      `json:"year"`
	Day     int      `json:"day"`
	Tags    []string `json:"tags"`
	Enabled bool     `json:"enabled"`
}

func newListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List available puzzle solvers",
		Long: `List all registered puzzle solvers with their IDs, names, titles
and tags, and whether the current configuration enables them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "output format: text, json")

	return cmd
}

func runList(cmd *cobra.Command, flags *listFlags) error {
	format := strings.ToLower(flags.format)
	if format != "text" && format != formatJSON {
		return withExitCode(ExitInvalidUsage, fmt.Errorf("invalid format %q: must be text or json", flags.format))
	}

	registry := puzzle.DefaultRegistry
	loadResult, err := loadConfig(cmd, registry, nil)
	if err != nil {
		return err
	}

	puzzles := registry.Puzzles()

	if format == formatJSON {
		return outputPuzzlesJSON(cmd.OutOrStdout(), puzzles, loadResult.Config)
	}

	logger := logging.NewWithWriter(cmd.OutOrStdout(), "info")
	if len(puzzles) == 0 {
		logger.Info("no puzzles registered")
		return nil
	}

	for _, p := range puzzles {
		logger.Info(p.ID(),
			logging.FieldName, p.Name(),
			logging.FieldTitle, p.Title(),
			logging.FieldTags, strings.Join(p.Tags(), ","),
			logging.FieldEnabled, loadResult.Config.PuzzleEnabled(p.ID()),
		)
	}

	return nil
}

// outputPuzzlesJSON writes puzzles as a JSON array.
func outputPuzzlesJSON(w io.Writer, puzzles []puzzle.Puzzle, cfg *config.Config) error {
	infos := make([]puzzleInfo, 0, len(puzzles))
	for _, p := range puzzles {
		tags := p.Tags()
		if tags == nil {
			tags = []string{}
		}
		infos = append(infos, puzzleInfo{
			ID:      p.ID(),
			Name:    p.Name(),
			Title:   p.Title(),
			Year:    p.Year(),
			Day:     p.Day(),
			Tags:    tags,
			Enabled: cfg.PuzzleEnabled(p.ID()),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("encoding puzzles: %w", err))
	}
	return nil
}
