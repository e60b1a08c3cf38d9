package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/goaoc/internal/logging"
	"github.com/yaklabco/goaoc/pkg/fsutil"
	"github.com/yaklabco/goaoc/pkg/puzzle"
)

// ErrSolverPanic wraps a panic raised inside a solver.
var ErrSolverPanic = errors.New("solver panicked")

// Runner solves puzzles from a registry.
type Runner struct {
	// Registry resolves puzzle keys to solvers.
	Registry *puzzle.Registry
}

// New creates a new Runner over the given registry.
func New(registry *puzzle.Registry) *Runner {
	return &Runner{Registry: registry}
}

// Run selects puzzles per opts and solves them concurrently.
// It returns outcomes in puzzle ID order and aggregate stats.
//
// The runner:
//   - Resolves and reads each puzzle's input
//   - Solves puzzles concurrently with at most opts.Jobs workers
//   - Records solver failures per puzzle instead of aborting the run
//   - Respects context cancellation
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	puzzles, err := Select(r.Registry, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Outcomes: make([]Outcome, 0, len(puzzles)),
	}
	result.Stats.Selected = len(puzzles)

	if len(puzzles) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(puzzles))

	logger := logging.FromContext(ctx)
	logger.Debug("Starting run", logging.FieldPuzzles, len(puzzles), logging.FieldJobs, jobs)

	// Workers write to distinct slots, so outcomes need no locking and keep
	// the selection order.
	outcomes := make([]*Outcome, len(puzzles))

	stdin := &sharedStdin{src: opts.Stdin}

	var group errgroup.Group
	group.SetLimit(jobs)

	for i, p := range puzzles {
		if ctx.Err() != nil {
			break
		}
		group.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			outcome := r.solve(ctx, p, opts, stdin)
			outcomes[i] = &outcome
			return nil
		})
	}

	// Workers never return errors; failures live in the outcomes.
	_ = group.Wait()

	for _, outcome := range outcomes {
		if outcome != nil {
			result.accumulate(*outcome)
		}
	}

	logger.Debug("Finished run",
		logging.FieldSelected, result.Stats.Selected,
		logging.FieldSolved, result.Stats.Solved,
		logging.FieldSkipped, result.Stats.Skipped,
		logging.FieldErrored, result.Stats.Errored,
		logging.FieldDuration, result.Stats.Total,
	)

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// sharedStdin reads stdin at most once per run. Every puzzle whose input
// is "-" gets the same bytes.
type sharedStdin struct {
	once    sync.Once
	src     io.Reader
	content []byte
	info    *fsutil.FileInfo
	err     error
}

func (s *sharedStdin) read(ctx context.Context) ([]byte, *fsutil.FileInfo, error) {
	s.once.Do(func() {
		s.content, s.info, s.err = fsutil.ReadInput(ctx, fsutil.StdinPath, s.src)
	})
	return s.content, s.info, s.err
}

// readInput reads a puzzle input from a file or from the shared stdin.
func readInput(ctx context.Context, path string, stdin *sharedStdin) ([]byte, *fsutil.FileInfo, error) {
	if path == fsutil.StdinPath {
		return stdin.read(ctx)
	}
	return fsutil.ReadFile(ctx, path)
}

// solve reads the input for one puzzle and runs its solver.
func (r *Runner) solve(ctx context.Context, p puzzle.Puzzle, opts Options, stdin *sharedStdin) Outcome {
	outcome := Outcome{ID: p.ID(), Name: p.Name(), Title: p.Title()}

	logger := logging.FromContext(ctx).With(logging.FieldPuzzle, p.ID())
	ctx = logging.WithLogger(ctx, logger)

	path, err := ResolveInput(p, opts)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.InputPath = path

	content, info, err := readInput(ctx, path, stdin)
	if err != nil {
		if opts.SkipMissing && errors.Is(err, fsutil.ErrNotFound) {
			logger.Debug("Skipping puzzle without input", logging.FieldInput, path)
			outcome.Skipped = true
			return outcome
		}
		outcome.Error = fmt.Errorf("read input: %w", err)
		return outcome
	}
	outcome.InputHash = info.HashString()

	logger.Debug("Solving puzzle", logging.FieldInput, path)

	start := time.Now()
	answer, err := safeSolve(ctx, p, string(content))
	outcome.Duration = time.Since(start)

	if err != nil {
		outcome.Error = err
		logger.Debug("Puzzle failed", logging.FieldError, err)
		return outcome
	}

	outcome.Answer = answer
	logger.Debug("Solved puzzle", logging.FieldDuration, outcome.Duration)
	return outcome
}

// safeSolve runs a solver, converting a panic into an error.
func safeSolve(ctx context.Context, p puzzle.Puzzle, input string) (answer puzzle.Answer, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			answer = puzzle.Answer{}
			err = fmt.Errorf("%w: %v", ErrSolverPanic, rec)
		}
	}()
	return p.Solve(ctx, input)
}
