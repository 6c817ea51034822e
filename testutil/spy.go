package testutil

import (
	"context"
	"sync/atomic"

	"github.com/skillsenselab/rpckit/rpc"
)

// Spy wraps a pipeline handler and counts invocations, so tests can assert a
// handler never ran after a rejection.
type Spy[In, Ctx, Out any] struct {
	calls   atomic.Int64
	handler rpc.Handler[In, Ctx, Out]
}

// NewSpy wraps handler. A nil handler returns the zero output.
func NewSpy[In, Ctx, Out any](handler rpc.Handler[In, Ctx, Out]) *Spy[In, Ctx, Out] {
	return &Spy[In, Ctx, Out]{handler: handler}
}

// Handle implements rpc.Handler.
func (s *Spy[In, Ctx, Out]) Handle(ctx context.Context, ac Ctx, in In) (Out, error) {
	s.calls.Add(1)
	if s.handler == nil {
		var zero Out
		return zero, nil
	}
	return s.handler(ctx, ac, in)
}

// Calls reports how many times the handler ran.
func (s *Spy[In, Ctx, Out]) Calls() int64 {
	return s.calls.Load()
}
