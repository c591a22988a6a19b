package solo

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/ropsync/pkg/rop"
	"github.com/stretchr/testify/require"
)

// helper validators for int values that ignore prior result and validate captured value
func validateNonNegative(v int) func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
	return func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
		if v < 0 {
			return rop.Fail[int](errors.New("negative"))
		}
		return rop.Success(v)
	}
}

func validateEven(v int) func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
	return func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
		if v%2 != 0 {
			return rop.Fail[int](errors.New("odd"))
		}
		return rop.Success(v)
	}
}

func passThrough[T any]() func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
	return func(ctx context.Context, in rop.Result[T]) rop.Result[T] { return in }
}

func TestValidateAll_AllSuccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := 10
	res := ValidateAll[int](ctx, rop.Success(v), true, validateNonNegative(v), validateEven(v))

	if !res.IsSuccess() {
		t.Fatalf("expected success, got error: %v", res.Err())
	}
	if res.Value() != v {
		t.Fatalf("expected result %d, got %d", v, res.Value())
	}
}

func TestValidateAll_FailBreakOnFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := -1
	executed := 0
	v1 := func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
		executed++
		return validateNonNegative(v)(ctx, in)
	}
	v2 := func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
		executed++
		return validateEven(v)(ctx, in)
	}

	res := ValidateAll[int](ctx, rop.Success(v), true, v1, v2)

	if res.IsSuccess() {
		t.Fatalf("expected failure, got success: %v", res.Value())
	}
	if executed != 1 {
		t.Fatalf("expected only first validator to execute, got %d", executed)
	}
	if res.ErrorMessage() != "negative" {
		t.Fatalf("expected 'negative' error, got: %v", res.Err())
	}
}

func TestValidateAll_AccumulateErrors_NoBreak(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := -3
	res := ValidateAll[int](ctx, rop.Success(v), false, validateNonNegative(v), validateNonNegative(v), validateEven(v))

	if res.IsSuccess() {
		t.Fatalf("expected failure, got success: %v", res.Value())
	}

	errs := rop.GetErrors(res.Err())
	if len(errs) != 3 {
		t.Fatalf("expected 3 accumulated errors, got %d", len(errs))
	}
	if errs[0].Error() != "negative" || errs[1].Error() != "negative" || errs[2].Error() != "odd" {
		t.Fatalf("expected errors ['negative', 'negative', 'odd'], got ['%s','%s','%s']",
			errs[0].Error(), errs[1].Error(), errs[2].Error())
	}
}

func TestValidateAll_InitialInputFail(t *testing.T) {
	t.Parallel()

	res := ValidateAll[int](context.Background(), rop.Fail[int](errors.New("initial")), true, passThrough[int]())

	if res.IsSuccess() {
		t.Fatalf("expected failure, got success")
	}
	if res.ErrorMessage() != "initial" {
		t.Fatalf("expected initial error to pass through, got: %v", res.Err())
	}
}

func TestValidateAll_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := ValidateAll[int](ctx, rop.Success(42), false, validateNonNegative(42), validateEven(42))

	if !res.IsSuccess() || res.Value() != 42 {
		t.Fatalf("expected untouched input 42, got success=%v err=%v", res.IsSuccess(), res.Err())
	}
}

func TestValidateAll_NoValidators(t *testing.T) {
	t.Parallel()

	res := ValidateAll[int](context.Background(), rop.Success(7), false)

	if !res.IsSuccess() || res.Value() != 7 {
		t.Fatalf("expected success with 7, got success=%v err=%v", res.IsSuccess(), res.Err())
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	notEmpty := func(_ context.Context, s string) (bool, string) { return s != "", "empty" }

	require.Equal(t, "x", Validate(ctx, "x", notEmpty).Value())
	require.Equal(t, "empty", Validate(ctx, "", notEmpty).ErrorMessage())

	called := false
	res := AndValidate(ctx, Failed[string]("earlier"), func(context.Context, string) (bool, string) {
		called = true
		return true, ""
	})
	require.False(t, called)
	require.Equal(t, "earlier", res.ErrorMessage())
}

func TestSwitchAndMap(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	sw := Switch(ctx, Succeed(3), func(_ context.Context, v int) rop.Result[string] {
		return rop.Success(strconv.Itoa(v * 2))
	})
	require.Equal(t, "6", sw.Value())

	called := false
	failed := Switch(ctx, Failed[int]("e"), func(_ context.Context, v int) rop.Result[string] {
		called = true
		return rop.Success("never")
	})
	require.False(t, called)
	require.Equal(t, "e", failed.ErrorMessage())

	require.Equal(t, 9, Map(ctx, Succeed(3), func(_ context.Context, v int) int { return v * v }).Value())
	require.Equal(t, "e", Map(ctx, Failed[int]("e"), func(_ context.Context, v int) int { return v }).ErrorMessage())
}

func TestTry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	parse := func(_ context.Context, s string) (int, error) { return strconv.Atoi(s) }

	require.Equal(t, 12, Try(ctx, Succeed("12"), parse).Value())

	bad := Try(ctx, Succeed("x"), parse)
	require.False(t, bad.IsSuccess())
	var numErr *strconv.NumError
	require.ErrorAs(t, bad.Err(), &numErr)

	require.Equal(t, "prior", Try(ctx, Failed[string]("prior"), parse).ErrorMessage())
}

func TestTees(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seen := 0
	Tee(ctx, Succeed(1), func(context.Context, rop.Result[int]) { seen++ })
	Tee(ctx, Failed[int]("x"), func(context.Context, rop.Result[int]) { seen++ })
	require.Equal(t, 1, seen)

	TeeIf(ctx, Succeed(1),
		func(_ context.Context, r rop.Result[int]) bool { return r.Value() > 5 },
		func(context.Context, rop.Result[int]) { seen++ })
	require.Equal(t, 1, seen)

	var gotErr error
	DoubleTee(ctx, Failed[int]("dt"),
		func(context.Context, int) { seen++ },
		func(_ context.Context, err error) { gotErr = err })
	require.Equal(t, 1, seen)
	require.EqualError(t, gotErr, "dt")
}

func TestFailOnErrorAndFinally(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	res := FailOnError(ctx, Succeed(4), func(_ context.Context, v int) error {
		if v%2 == 0 {
			return errors.New("even")
		}
		return nil
	})
	require.Equal(t, "even", res.ErrorMessage())

	describe := func(r rop.Result[int]) string {
		return Finally(ctx, r,
			func(_ context.Context, v int) string { return "ok:" + strconv.Itoa(v) },
			func(_ context.Context, err error) string { return "err:" + err.Error() })
	}
	require.Equal(t, "ok:1", describe(Succeed(1)))
	require.Equal(t, "err:even", describe(res))
}
