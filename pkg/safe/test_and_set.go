package safe

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/ib-77/ropsync/pkg/rop"
)

// ErrWaitCanceled is returned by WaitDifferentContext when its context ends
// before the value changes.
var ErrWaitCanceled = errors.New("wait for a different value canceled")

// TestAndSet is a single value guarded by a mutex.
//
// The wait methods block on a Cond owned by the caller. TestAndSet never
// broadcasts that Cond: whoever changes the value through a Set method and
// wants waiters to wake must call Broadcast on it. A bounded wait ends on its
// own timer or context without waking anyone else.
type TestAndSet[T comparable] struct {
	mu   Mutex
	data T
}

func NewTestAndSet[T comparable](value T) *TestAndSet[T] {
	return &TestAndSet[T]{data: value}
}

// SetOnDifferent stores newValue only when the current value is not
// oldValue. This is the inverse of SetAndFailOnDifferent.
func (t *TestAndSet[T]) SetOnDifferent(oldValue, newValue T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.data != oldValue {
		t.data = newValue
	}
}

func (t *TestAndSet[T]) SetUnconditionally(value T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data = value
}

// SetAndFailOnDifferent is compare-and-swap: it stores newValue and reports
// true only when the current value equals oldValue.
func (t *TestAndSet[T]) SetAndFailOnDifferent(oldValue, newValue T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.data != oldValue {
		return false
	}
	t.data = newValue
	return true
}

// SetAndFailOnDifferentAny stores newValue when the current value matches
// any of oldValues and reports whether it did.
func (t *TestAndSet[T]) SetAndFailOnDifferentAny(oldValues []T, newValue T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !slices.Contains(oldValues, t.data) {
		return false
	}
	t.data = newValue
	return true
}

// SetAndFailOnEqual stores newValue and reports true only when the current
// value differs from oldValue.
func (t *TestAndSet[T]) SetAndFailOnEqual(oldValue, newValue T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.data == oldValue {
		return false
	}
	t.data = newValue
	return true
}

func (t *TestAndSet[T]) Value() T {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.data
}

func (t *TestAndSet[T]) Equal(value T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.data == value
}

func (t *TestAndSet[T]) NotEqual(value T) bool {
	return !t.Equal(value)
}

// WaitDifferent blocks until the value differs from value and returns the new
// value. It has no timeout: another goroutine must change the value and
// broadcast cond.
func (t *TestAndSet[T]) WaitDifferent(cond *Cond, value T) T {
	t.checkCond(cond)
	v, _ := awaitDifferent[T, struct{}](t, cond, value, nil)
	return v
}

// WaitForDifferent is WaitDifferent bounded by timeout. It returns the value
// current at wake-up, changed or not; callers compare it with value to tell a
// change from a timeout.
func (t *TestAndSet[T]) WaitForDifferent(cond *Cond, timeout time.Duration, value T) T {
	t.checkCond(cond)
	if timeout <= 0 {
		return t.Value()
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	v, _ := awaitDifferent(t, cond, value, timer.C)
	return v
}

// WaitDifferentContext is WaitDifferent that gives up when ctx ends. On
// cancellation the failure wraps both ErrWaitCanceled and ctx.Err().
func (t *TestAndSet[T]) WaitDifferentContext(ctx context.Context, cond *Cond, value T) rop.Result[T] {
	t.checkCond(cond)
	v, changed := awaitDifferent(t, cond, value, ctx.Done())
	if !changed {
		return rop.Fail[T](fmt.Errorf("%w: %w", ErrWaitCanceled, ctx.Err()))
	}
	return rop.Success(v)
}

// awaitDifferent re-checks the value after every broadcast of cond. The wake
// channel is taken while t.mu is held, so a Set followed by Broadcast cannot
// slip in between the check and the wait. A nil stop never fires.
func awaitDifferent[T comparable, S any](t *TestAndSet[T], cond *Cond, value T, stop <-chan S) (T, bool) {
	for {
		t.mu.Lock()
		if t.data != value {
			v := t.data
			t.mu.Unlock()
			return v, true
		}
		wake := cond.wait()
		t.mu.Unlock()

		select {
		case <-wake:
		case <-stop:
			return t.Value(), false
		}
	}
}

func (t *TestAndSet[T]) checkCond(cond *Cond) {
	if cond == nil {
		panic("safe: TestAndSet wait needs a non-nil Cond")
	}
}
