package core

import (
	"context"
	"sync"

	"github.com/ib-77/ropsync/pkg/rop"
)

// CancellationHandlers receive the work a line abandons when its context
// ends. Any of them may be nil.
type CancellationHandlers[In, Out any] struct {
	// OnCancelUnprocessed gets input that was taken (or, with ProcessRemaining,
	// drained) but never processed.
	OnCancelUnprocessed func(ctx context.Context, unprocessed rop.Result[In])
	// OnCancelProcessed gets a processed result that could not be delivered.
	OnCancelProcessed func(ctx context.Context, in rop.Result[In], processed rop.Result[Out])
}

// Locomotive drives one line: it takes results from inputCh, runs engine on
// each and forwards the outcome to outCh until inputCh is closed or ctx ends.
// wg.Done is called on return.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In], outCh chan<- rop.Result[Out],
	engine func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out],
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, in rop.Result[Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			drainRemaining(ctx, inputCh, handlers)
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in)
				}
				drainRemaining(ctx, inputCh, handlers)
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					return
				}

				select {
				case <-ctx.Done():
					if handlers.OnCancelProcessed != nil {
						handlers.OnCancelProcessed(ctx, in, pr)
					}
					drainRemaining(ctx, inputCh, handlers)
					return
				case outCh <- pr:
					if onSuccess != nil {
						onSuccess(ctx, pr)
					}
				}
			}
		}
	}
}

func drainRemaining[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In],
	handlers CancellationHandlers[In, Out]) {

	if !IsProcessRemainingEnabled(ctx, false) {
		return
	}
	for in := range inputCh {
		if handlers.OnCancelUnprocessed != nil {
			handlers.OnCancelUnprocessed(ctx, in)
		}
	}
}
