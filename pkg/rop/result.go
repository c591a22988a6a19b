// Package rop holds the result algebra shared by every fallible operation in
// the module: Result[T] carries a value or a failure, VoidResult carries only
// success or failure, and DataResult[T] carries a payload on both paths.
//
// Composition goes through Chain, Or/OrElse and VoidResult.And rather than
// branching on IsSuccess at every step. All combinators short-circuit: a
// continuation is never invoked on a failed operand.
package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result holds either a value of type T or a failure. Exactly one of the two
// is present for any Result built by Success, Fail, Failed or Try. A Result
// is immutable once constructed.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail wraps err as a failed Result. A nil err is replaced by ErrUnknown so
// that a failure never reports an empty message.
func Fail[T any](err error) Result[T] {
	if IsNil(err) {
		err = ErrUnknown
	}
	return Result[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failed builds a failed Result from a human-readable message. An empty msg
// is replaced by ErrUnknown's text, so a failure never has an empty message.
func Failed[T any](msg string) Result[T] {
	return Fail[T](newError(msg))
}

// Try invokes f and converts its (value, error) pair into a Result.
func Try[T any](f func() (T, error)) Result[T] {
	v, err := f()
	if err != nil {
		return Fail[T](err)
	}
	return Success(v)
}

// Value returns the held value. It panics when r is a failure.
func (r Result[T]) Value() T {
	if !r.isSuccess {
		panic(fmt.Sprintf("rop: Value called on a failed Result: %q", r.ErrorMessage()))
	}
	return r.result
}

func (r Result[T]) ValueOrDefault(defaultValue T) T {
	if r.isSuccess {
		return r.result
	}
	return defaultValue
}

// Get returns the value and the error; exactly one of them is meaningful.
func (r Result[T]) Get() (T, error) {
	if r.isSuccess {
		return r.result, nil
	}
	var zero T
	return zero, r.err
}

func (r Result[T]) Err() error {
	return r.err
}

// ErrorMessage returns the failure text, or "" on success.
func (r Result[T]) ErrorMessage() string {
	if r.err == nil {
		return ""
	}
	return r.err.Error()
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && r.err != nil
}

// IsEmpty reports whether r is the zero Result, which is neither a success
// nor a failure.
func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isSuccess
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Or returns r when it succeeded, otherwise other.
func (r Result[T]) Or(other Result[T]) Result[T] {
	if r.isSuccess {
		return r
	}
	return other
}

// OrElse is the lazy form of Or: fallback runs only when r failed.
func (r Result[T]) OrElse(fallback func() Result[T]) Result[T] {
	if r.isSuccess {
		return r
	}
	return fallback()
}

// As re-types a failed outcome to Result[U], keeping its error. The identity
// of a failed Result is preserved. As panics on a successful outcome since
// there is no U to produce.
func As[U any](o Outcome) Result[U] {
	if o.IsSuccess() {
		panic(fmt.Sprintf("rop: As[%T] called on a successful outcome", *new(U)))
	}

	out := Fail[U](o.Err())
	if src, ok := o.(Identified); ok && src.Id() != uuid.Nil {
		out.id = src.Id()
		out.createdAt = src.CreatedAt()
	}
	return out
}

// Chain is monadic bind: a failed r is re-typed with As and f is not called;
// otherwise f receives the value and its Result is returned.
func Chain[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if !r.isSuccess {
		return As[U](r)
	}
	return f(r.result)
}

// Equal compares success flags, and values only when both succeeded. Error
// messages and identity are ignored.
func Equal[T comparable](a, b Result[T]) bool {
	if a.isSuccess != b.isSuccess {
		return false
	}
	return !a.isSuccess || a.result == b.result
}

// EqualFunc is Equal for value types that are not comparable.
func EqualFunc[T any](a, b Result[T], eq func(x, y T) bool) bool {
	if a.isSuccess != b.isSuccess {
		return false
	}
	return !a.isSuccess || eq(a.result, b.result)
}
