package orchestration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Task produces one sequence. It is given the batch context.
type Task func(ctx context.Context) ([]int64, error)

// Result encapsulates the outcome of a single task.
type Result struct {
	// Index is the position of the task in the batch.
	Index int
	// Sequence is the generated sequence. It is nil if an error occurred.
	Sequence []int64
	// Duration is the time taken by the task.
	Duration time.Duration
	// Err contains any error returned by the task, or the context error if
	// the batch was canceled before the task started.
	Err error
}

// Execute runs tasks concurrently, at most limit at a time (no limit when
// limit <= 0), and returns their results in task order.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - tasks: The tasks to execute.
//   - limit: The maximum number of tasks running at once.
//
// Returns:
//   - []Result: One result per task, indexed like tasks.
func Execute(ctx context.Context, tasks []Task, limit int) []Result {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	results := make([]Result, len(tasks))

	for i, task := range tasks {
		task, i := task, i
		g.Go(func() error {
			startTime := time.Now()
			var seq []int64
			err := ctx.Err()
			if err == nil {
				seq, err = task(ctx)
			}
			if err != nil {
				seq = nil
			}
			results[i] = Result{Index: i, Sequence: seq, Duration: time.Since(startTime), Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// Summary aggregates a batch of results.
type Summary struct {
	// Succeeded and Failed count the results by outcome.
	Succeeded int
	Failed    int
	// Terms is the total number of terms produced by successful tasks.
	Terms int
	// Slowest is the longest single task duration.
	Slowest time.Duration
	// Err joins every task error, each prefixed with its task index. It is
	// nil when all tasks succeeded.
	Err error
}

// Summarize processes the results of a batch into a Summary.
func Summarize(results []Result) Summary {
	var s Summary
	var errs []error
	for _, res := range results {
		if res.Duration > s.Slowest {
			s.Slowest = res.Duration
		}
		if res.Err != nil {
			s.Failed++
			errs = append(errs, fmt.Errorf("request %d: %w", res.Index, res.Err))
			continue
		}
		s.Succeeded++
		s.Terms += len(res.Sequence)
	}
	s.Err = errors.Join(errs...)
	return s
}
