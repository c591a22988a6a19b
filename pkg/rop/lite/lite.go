package lite

import (
	"context"
	"sync"

	"github.com/ib-77/ropsync/pkg/rop"
	"github.com/ib-77/ropsync/pkg/rop/core"
	"github.com/ib-77/ropsync/pkg/rop/solo"
)

// Engine processes one result and delivers its outcome on the returned
// channel.
type Engine[In, Out any] func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out]

func Run[T any](ctx context.Context, inputCh <-chan rop.Result[T], engine Engine[T, T], lines int) <-chan rop.Result[T] {
	return Turnout(ctx, inputCh, engine, lines)
}

// Turnout runs engine over inputCh on lines goroutines. The output channel is
// closed once every line has stopped.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In], engine Engine[In, Out],
	lines int) <-chan rop.Result[Out] {
	return TurnoutWithHandlers(ctx, inputCh, engine, core.CancellationHandlers[In, Out]{}, lines)
}

// TurnoutWithHandlers is Turnout that reports abandoned work to handlers when
// ctx ends.
func TurnoutWithHandlers[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In], engine Engine[In, Out],
	handlers core.CancellationHandlers[In, Out], lines int) <-chan rop.Result[Out] {

	if lines < 1 {
		lines = 1
	}

	out := make(chan rop.Result[Out])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, handlers, nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// lift runs step on its own goroutine. The buffered channel lets step finish
// even when the line has already given up on it.
func lift[Out any](step func() rop.Result[Out]) <-chan rop.Result[Out] {
	ch := make(chan rop.Result[Out], 1)
	go func() {
		defer close(ch)
		ch <- step()
	}()
	return ch
}

func Validate[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) Engine[T, T] {
	return func(ctx context.Context, input rop.Result[T]) <-chan rop.Result[T] {
		return lift(func() rop.Result[T] { return solo.AndValidate(ctx, input, validate) })
	}
}

func Switch[In, Out any](switchOnSuccess func(ctx context.Context, r In) rop.Result[Out]) Engine[In, Out] {
	return func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out] {
		return lift(func() rop.Result[Out] { return solo.Switch(ctx, input, switchOnSuccess) })
	}
}

func Map[In, Out any](mapOnSuccess func(ctx context.Context, r In) Out) Engine[In, Out] {
	return func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out] {
		return lift(func() rop.Result[Out] { return solo.Map(ctx, input, mapOnSuccess) })
	}
}

func Try[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) Engine[In, Out] {
	return func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out] {
		return lift(func() rop.Result[Out] { return solo.Try(ctx, input, onTryExecute) })
	}
}

func Tee[T any](sideEffect func(ctx context.Context, r rop.Result[T])) Engine[T, T] {
	return func(ctx context.Context, input rop.Result[T]) <-chan rop.Result[T] {
		return lift(func() rop.Result[T] { return solo.Tee(ctx, input, sideEffect) })
	}
}

func DoubleTee[T any](sideEffect func(ctx context.Context, r T),
	sideEffectOnError func(ctx context.Context, err error)) Engine[T, T] {
	return func(ctx context.Context, input rop.Result[T]) <-chan rop.Result[T] {
		return lift(func() rop.Result[T] { return solo.DoubleTee(ctx, input, sideEffect, sideEffectOnError) })
	}
}

type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnError   func(ctx context.Context, err error) Out
}

// Finally reduces every result from input to an Out. The output channel is
// closed when input is closed or ctx ends.
func Finally[In, Out any](ctx context.Context, input <-chan rop.Result[In],
	handlers FinallyHandlers[In, Out]) <-chan Out {

	out := make(chan Out)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-input:
				if !ok {
					return
				}
				select {
				case out <- solo.Finally(ctx, in, handlers.OnSuccess, handlers.OnError):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
