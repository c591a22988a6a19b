package core

import (
	"context"
	"sync"
	"testing"

	"github.com/ib-77/ropsync/pkg/rop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, 4, GetWorkerMaxCount(ctx, 4))
	assert.Equal(t, 2, GetWorkerMaxCount(WithWorkerOptions(ctx, 2), 4))
	assert.Equal(t, 4, GetWorkerMaxCount(WithWorkerOptions(ctx, 0), 4))

	assert.True(t, IsProcessRemainingEnabled(ctx, true))
	assert.False(t, IsProcessRemainingEnabled(WithProcessOptions(ctx, false), true))
}

func TestToChanAndBack(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, []int{1, 2, 3}, FromChanMany(ctx, ToChanMany(ctx, []int{1, 2, 3})))
	assert.Equal(t, "only", FromChanFirstOrDefault(ctx, ToChan(ctx, "only"), "default"))
	assert.Equal(t, "default", FromChanFirstOrDefault(ctx, ToChanMany(ctx, []string{}), "default"))

	results := FromChanMany(ctx, ToChanManyResults(ctx, []string{"a", "b"}))
	require.Len(t, results, 2)
	assert.True(t, results[0].IsSuccess())
	assert.Equal(t, "b", results[1].Value())
}

func TestToChanHandlers(t *testing.T) {
	t.Parallel()

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	var startFail []int
	ch := ToChanManyResultsWithHandlers(cancelled, ToChanHandlers[int]{
		OnStartFail: func(_ context.Context, input []int) { startFail = input },
	}, []int{1, 2})
	for range ch {
		t.Error("nothing should be sent on a cancelled context")
	}
	assert.Equal(t, []int{1, 2}, startFail)

	ctx, cancel2 := context.WithCancel(context.Background())
	rest := make(chan []int, 1)
	ch = ToChanManyResultsWithHandlers(ctx, ToChanHandlers[int]{
		OnBreak: func(_ context.Context, r []int) { rest <- r },
	}, []int{1, 2, 3})
	first := <-ch
	assert.Equal(t, 1, first.Value())
	// nobody reads ch any more, so cancellation is the only way forward
	cancel2()
	assert.Equal(t, []int{2, 3}, <-rest)
	for range ch {
	}
}

func TestFromChanMany_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	never := make(chan int)
	assert.Empty(t, FromChanMany(ctx, never))
	assert.Equal(t, 9, FromChanFirstOrDefault(ctx, never, 9))
}

func TestLocomotive_ForwardsUntilInputCloses(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	in := make(chan rop.Result[int], 3)
	in <- rop.Success(1)
	in <- rop.Failed[int]("bad")
	in <- rop.Success(3)
	close(in)

	out := make(chan rop.Result[string], 3)
	engine := func(ctx context.Context, r rop.Result[int]) <-chan rop.Result[string] {
		ch := make(chan rop.Result[string], 1)
		ch <- rop.Chain(r, func(v int) rop.Result[string] { return rop.Success(string(rune('a' + v))) })
		close(ch)
		return ch
	}

	var delivered int
	var wg sync.WaitGroup
	wg.Add(1)
	Locomotive(ctx, in, out, engine, CancellationHandlers[int, string]{},
		func(context.Context, rop.Result[string]) { delivered++ }, &wg)
	wg.Wait()
	close(out)

	var got []string
	for r := range out {
		got = append(got, r.ValueOrDefault("!"+r.ErrorMessage()))
	}
	assert.Equal(t, []string{"b", "!bad", "d"}, got)
	assert.Equal(t, 3, delivered)
}
