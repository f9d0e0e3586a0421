package fibonacci

import (
	"context"
	"runtime"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/agbru/fibseq/internal/logging"
	"github.com/agbru/fibseq/internal/orchestration"
)

// BatchResult is the outcome of one request of a batch.
type BatchResult = orchestration.Result

// BatchSummary aggregates the results of a batch.
type BatchSummary = orchestration.Summary

// Summarize aggregates batch results.
var Summarize = orchestration.Summarize

// GenerateBatch evaluates independent requests concurrently and returns one
// result per request, in request order. A failing request does not affect
// the others. Requests not yet started when ctx is done fail with the
// context error.
//
// Each request is evaluated exactly like GenerateContext, so it is logged,
// recorded and traced individually; its span is a child of the batch span.
func (g *Generator) GenerateBatch(ctx context.Context, requests ...[]Option) []BatchResult {
	ctx, span := g.tracer.Start(ctx, batchSpanName)
	defer span.End()

	tasks := make([]orchestration.Task, len(requests))
	for i, opts := range requests {
		opts := opts
		tasks[i] = func(ctx context.Context) ([]int64, error) {
			return g.GenerateContext(ctx, opts...)
		}
	}

	limit := g.concurrency
	if limit == 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	results := orchestration.Execute(ctx, tasks, limit)

	summary := orchestration.Summarize(results)
	span.SetAttributes(
		attribute.Int("fibseq.requests", len(requests)),
		attribute.Int("fibseq.failed", summary.Failed),
	)
	if summary.Err != nil {
		span.SetStatus(codes.Error, summary.Err.Error())
	}
	g.logger.Debug("batch generated",
		logging.Int("requests", len(requests)),
		logging.Int("failed", summary.Failed),
		logging.Int("terms", summary.Terms),
	)
	return results
}
