package resolver

import (
	"context"

	"go.trai.ch/scout/internal/core/domain"
	"go.trai.ch/scout/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Invocation pairs a source with the batch it should answer.
type Invocation struct {
	Source  ports.Source
	Request domain.FetchRequest
}

// InvocationResult is one completed invocation. A failed invocation
// carries its error and an empty result.
type InvocationResult struct {
	Source domain.SourceName
	Result domain.BatchResult
	Err    error
}

// Scheduler runs source invocations with a fixed parallelism ceiling.
type Scheduler struct {
	parallelism int
}

// NewScheduler creates a Scheduler running at most parallelism
// invocations at a time.
func NewScheduler(parallelism int) *Scheduler {
	return &Scheduler{parallelism: parallelism}
}

// Fetch runs every invocation and returns once all have completed.
// Results are positionally keyed to invocations, so callers can fold
// them in submission order regardless of completion order. One
// invocation failing never cancels its siblings.
func (s *Scheduler) Fetch(ctx context.Context, invocations []Invocation) []InvocationResult {
	results := make([]InvocationResult, len(invocations))

	var g errgroup.Group
	g.SetLimit(s.parallelism)

	for i, inv := range invocations {
		g.Go(func() error {
			results[i] = s.run(ctx, inv)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (s *Scheduler) run(ctx context.Context, inv Invocation) InvocationResult {
	name := inv.Source.Name()

	if err := ctx.Err(); err != nil {
		return InvocationResult{Source: name, Result: domain.BatchResult{}, Err: err}
	}

	result, err := inv.Source.Fetch(ctx, inv.Request)
	if err != nil {
		return InvocationResult{Source: name, Result: domain.BatchResult{}, Err: err}
	}
	if result == nil {
		result = domain.BatchResult{}
	}
	return InvocationResult{Source: name, Result: result}
}
