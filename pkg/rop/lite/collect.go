package lite

import (
	"context"
	"sync"

	"github.com/ib-77/ropsync/pkg/rop"
	"github.com/ib-77/ropsync/pkg/safe"
)

// Collection holds the drained outcomes of a pipeline. Order within each
// vector is arrival order.
type Collection[T any] struct {
	Successes *safe.Vector[T]
	Failures  *safe.Vector[rop.Result[T]]
}

// Failed reports whether any outcome failed, joining all failure messages.
// A zero Collection has no failures.
func (c Collection[T]) Failed() rop.VoidResult {
	if c.Failures == nil {
		return rop.Ok()
	}
	failures := c.Failures.Copy()
	outcomes := make([]rop.Outcome, len(failures))
	for i, f := range failures {
		outcomes[i] = f
	}
	if msg := rop.JoinMessages(outcomes...); msg != "" {
		return rop.FailedVoid(msg)
	}
	return rop.Ok()
}

// Collect drains input on lines goroutines until it is closed or ctx ends.
func Collect[T any](ctx context.Context, input <-chan rop.Result[T], lines int) Collection[T] {
	c := Collection[T]{
		Successes: safe.NewVector[T](),
		Failures:  safe.NewVector[rop.Result[T]](),
	}
	if lines < 1 {
		lines = 1
	}

	var wg sync.WaitGroup
	for range lines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case r, ok := <-input:
					if !ok {
						return
					}
					if r.IsSuccess() {
						c.Successes.PushBack(r.Value())
					} else {
						c.Failures.PushBack(r)
					}
				}
			}
		}()
	}
	wg.Wait()
	return c
}
