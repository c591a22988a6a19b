package chain

import (
	"context"

	"github.com/ib-77/ropsync/pkg/rop"
)

// RepeatUntil runs step at least once and keeps running it while until
// reports true for the latest value. The first failure stops the loop.
func (c *Chain[T]) RepeatUntil(step func(ctx context.Context, t T) rop.Result[T],
	until func(ctx context.Context, t T) bool) *Chain[T] {

	if !c.result.IsSuccess() {
		return c
	}

	for {
		c = Then(c, step)

		if !c.result.IsSuccess() || !until(c.ctx, c.result.Value()) {
			return c
		}
	}
}

// While runs step as long as while reports true. It may not run step at all.
func (c *Chain[T]) While(step func(ctx context.Context, t T) rop.Result[T],
	while func(ctx context.Context, t T) bool) *Chain[T] {

	for c.result.IsSuccess() && while(c.ctx, c.result.Value()) {
		c = Then(c, step)
	}
	return c
}

// WhileChain is While for steps that build a whole sub-chain.
func (c *Chain[T]) WhileChain(step func(ctx context.Context, t T) *Chain[T],
	while func(ctx context.Context, t T) bool) *Chain[T] {

	for c.result.IsSuccess() && while(c.ctx, c.result.Value()) {
		c = step(c.ctx, c.result.Value())
	}
	return c
}

// And returns the first failed chain among c and required, otherwise the
// last one.
func (c *Chain[T]) And(required ...*Chain[T]) *Chain[T] {
	last := c
	for _, ch := range append([]*Chain[T]{c}, required...) {
		if !ch.result.IsSuccess() {
			return ch
		}
		last = ch
	}
	return last
}
