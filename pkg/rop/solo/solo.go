package solo

import (
	"context"
	"errors"

	"github.com/ib-77/ropsync/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Failed[T any](msg string) rop.Result[T] {
	return rop.Failed[T](msg)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if !input.IsSuccess() {
		return input
	}

	if isValid, errMsg := validate(ctx, input.Value()); !isValid {
		return rop.Failed[T](errMsg)
	}
	return input
}

// ValidateAll runs every validator against input and joins the failures.
// With breakOnError the first failure stops the run.
func ValidateAll[T any](
	ctx context.Context,
	input rop.Result[T],
	breakOnError bool,
	inputsF ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current rop.Result[T]) rop.Result[T] {

			if current.IsFailure() {
				e := rop.GetErrors(err)
				e = append(e, current.Err())
				err = errors.Join(e...)
			}

			if rop.IsNil(err) {
				return current
			}

			return rop.Fail[T](err)
		},
		inputsF...,
	)
}

// Switch is rop.Chain with a context.
func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	return rop.Chain(input, func(r In) rop.Result[Out] {
		return onSuccess(ctx, r)
	})
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if !input.IsSuccess() {
		return rop.As[Out](input)
	}
	return rop.Success(onSuccess(ctx, input.Value()))
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input rop.Result[T],
	condition func(ctx context.Context, r rop.Result[T]) bool,
	onSuccessAndCondition func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() && condition(ctx, input) {
		onSuccessAndCondition(ctx, input)
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	} else {
		onError(ctx, input.Err())
	}

	return input
}

func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	return rop.Chain(input, func(r In) rop.Result[Out] {
		return rop.Try(func() (Out, error) { return onTryExecute(ctx, r) })
	})
}

func FailOnError[T any](ctx context.Context, input rop.Result[T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T] {

	if input.IsSuccess() {
		if err := maybeErr(ctx, input.Value()); err != nil {
			return rop.Fail[T](err)
		}
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onError(ctx, input.Err())
}

// Join feeds input through inputsF in order, passing every intermediate
// result through concat. It stops early when ctx is done, or on the first
// failure when breakOnError is set.
func Join[T any](ctx context.Context,
	input rop.Result[T],
	breakOnError bool,
	concat func(ctx context.Context, current rop.Result[T]) rop.Result[T],
	inputsF ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	if len(inputsF) == 0 || concat == nil || ctx.Err() != nil {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if ctx.Err() != nil || (finalResult.IsFailure() && breakOnError) {
		return finalResult
	}

	for _, in := range inputsF[1:] {
		if ctx.Err() != nil {
			return finalResult
		}

		nextRes := concat(ctx, in(ctx, finalResult))
		if nextRes.IsFailure() && breakOnError {
			return nextRes
		}
		finalResult = nextRes
	}
	return finalResult
}
