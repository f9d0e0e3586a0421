package orchestration

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// constTask returns a task that yields seq and err.
func constTask(seq []int64, err error) Task {
	return func(context.Context) ([]int64, error) { return seq, err }
}

// TestExecute verifies that the orchestrator runs tasks and returns their
// results in task order.
func TestExecute(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		tasks     []Task
		limit     int
		wantSeqs  [][]int64
		wantError []bool
	}{
		{
			name:      "No tasks",
			tasks:     nil,
			wantSeqs:  [][]int64{},
			wantError: []bool{},
		},
		{
			name:      "Single success",
			tasks:     []Task{constTask([]int64{0, 1, 1}, nil)},
			wantSeqs:  [][]int64{{0, 1, 1}},
			wantError: []bool{false},
		},
		{
			name:      "Single failure",
			tasks:     []Task{constTask(nil, errors.New("mock error"))},
			wantSeqs:  [][]int64{nil},
			wantError: []bool{true},
		},
		{
			name: "Failure does not cancel siblings",
			tasks: []Task{
				constTask(nil, errors.New("mock error")),
				constTask([]int64{5, 5}, nil),
			},
			limit:     1,
			wantSeqs:  [][]int64{nil, {5, 5}},
			wantError: []bool{true, false},
		},
		{
			name:      "Partial sequence is dropped on error",
			tasks:     []Task{constTask([]int64{0, 1}, errors.New("mock error"))},
			wantSeqs:  [][]int64{nil},
			wantError: []bool{true},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			results := Execute(context.Background(), tt.tasks, tt.limit)
			if len(results) != len(tt.tasks) {
				t.Fatalf("expected %d results, got %d", len(tt.tasks), len(results))
			}
			for i, res := range results {
				if res.Index != i {
					t.Errorf("result %d has Index %d", i, res.Index)
				}
				if (res.Err != nil) != tt.wantError[i] {
					t.Errorf("result %d: error = %v, want error %v", i, res.Err, tt.wantError[i])
				}
				if !reflect.DeepEqual(res.Sequence, tt.wantSeqs[i]) {
					t.Errorf("result %d: sequence = %v, want %v", i, res.Sequence, tt.wantSeqs[i])
				}
			}
		})
	}
}

// TestExecute_Limit verifies that no more than limit tasks run at once.
func TestExecute_Limit(t *testing.T) {
	t.Parallel()
	const limit = 3
	var running, peak atomic.Int64

	task := func(context.Context) ([]int64, error) {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		running.Add(-1)
		return []int64{0}, nil
	}

	tasks := make([]Task, 20)
	for i := range tasks {
		tasks[i] = task
	}
	results := Execute(context.Background(), tasks, limit)

	if got := peak.Load(); got > limit {
		t.Errorf("peak concurrency = %d, want at most %d", got, limit)
	}
	for _, res := range results {
		if res.Err != nil {
			t.Errorf("result %d: unexpected error: %v", res.Index, res.Err)
		}
	}
}

// TestExecute_CanceledContext verifies that tasks are skipped once the batch
// context is done.
func TestExecute_CanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int64
	task := func(context.Context) ([]int64, error) {
		calls.Add(1)
		return []int64{0}, nil
	}

	results := Execute(ctx, []Task{task, task, task}, 0)
	if calls.Load() != 0 {
		t.Errorf("tasks ran %d times after cancellation", calls.Load())
	}
	for _, res := range results {
		if !errors.Is(res.Err, context.Canceled) {
			t.Errorf("result %d: error = %v, want context.Canceled", res.Index, res.Err)
		}
	}
}

// TestSummarize verifies the aggregation of batch results.
func TestSummarize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		results       []Result
		wantSucceeded int
		wantFailed    int
		wantTerms     int
		wantSlowest   time.Duration
		wantErrParts  []string
	}{
		{
			name: "All success",
			results: []Result{
				{Index: 0, Sequence: []int64{0, 1, 1}, Duration: time.Millisecond},
				{Index: 1, Sequence: []int64{5, 5}, Duration: 2 * time.Millisecond},
			},
			wantSucceeded: 2,
			wantTerms:     5,
			wantSlowest:   2 * time.Millisecond,
		},
		{
			name: "All failure",
			results: []Result{
				{Index: 0, Duration: time.Millisecond, Err: errors.New("fail a")},
				{Index: 1, Duration: time.Millisecond, Err: errors.New("fail b")},
			},
			wantFailed:   2,
			wantSlowest:  time.Millisecond,
			wantErrParts: []string{"request 0: fail a", "request 1: fail b"},
		},
		{
			name: "Mixed success/failure",
			results: []Result{
				{Index: 0, Sequence: []int64{}, Duration: 3 * time.Millisecond},
				{Index: 1, Duration: time.Millisecond, Err: errors.New("fail")},
			},
			wantSucceeded: 1,
			wantFailed:    1,
			wantSlowest:   3 * time.Millisecond,
			wantErrParts:  []string{"request 1: fail"},
		},
		{
			name: "Empty batch",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := Summarize(tt.results)
			if s.Succeeded != tt.wantSucceeded || s.Failed != tt.wantFailed {
				t.Errorf("succeeded/failed = %d/%d, want %d/%d", s.Succeeded, s.Failed, tt.wantSucceeded, tt.wantFailed)
			}
			if s.Terms != tt.wantTerms {
				t.Errorf("Terms = %d, want %d", s.Terms, tt.wantTerms)
			}
			if s.Slowest != tt.wantSlowest {
				t.Errorf("Slowest = %v, want %v", s.Slowest, tt.wantSlowest)
			}
			if len(tt.wantErrParts) == 0 {
				if s.Err != nil {
					t.Errorf("Err = %v, want nil", s.Err)
				}
				return
			}
			if s.Err == nil {
				t.Fatal("Err = nil, want joined errors")
			}
			for _, part := range tt.wantErrParts {
				if !strings.Contains(s.Err.Error(), part) {
					t.Errorf("Err = %q, should contain %q", s.Err.Error(), part)
				}
			}
		})
	}
}
