package safe

import "slices"

// Vector is an ordered sequence guarded by one mutex. The zero value is an
// empty Vector ready to use. A Vector must not be copied after first use.
type Vector[T any] struct {
	mu   Mutex
	data []T
}

// NewVector returns a Vector holding a copy of initial.
func NewVector[T any](initial ...T) *Vector[T] {
	return &Vector[T]{data: slices.Clone(initial)}
}

// PushBack appends v and returns the new size.
func (v *Vector[T]) PushBack(value T) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.data = append(v.data, value)
	return len(v.data)
}

func (v *Vector[T]) Front() (T, bool) {
	return v.At(0)
}

func (v *Vector[T]) Back() (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.data) == 0 {
		var zero T
		return zero, false
	}
	return v.data[len(v.data)-1], true
}

// At returns the element at index i, or false when i is out of range.
func (v *Vector[T]) At(i int) (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, false
	}
	return v.data[i], true
}

func (v *Vector[T]) IsEmpty() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.data) == 0
}

func (v *Vector[T]) Size() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.data)
}

// Copy returns a snapshot that shares no storage with v. It is never nil.
func (v *Vector[T]) Copy() []T {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

// ModifyElement applies fn to the element at index i in place and returns the
// updated element, or false when i is out of range. fn runs under the lock.
func (v *Vector[T]) ModifyElement(i int, fn func(value *T)) (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, false
	}
	fn(&v.data[i])
	return v.data[i], true
}

// ModifyElements applies fn to every element in order under a single lock
// acquisition. It stops as soon as fn returns false and then reports false;
// it reports true once every element was visited.
func (v *Vector[T]) ModifyElements(fn func(value *T) bool) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.data {
		if !fn(&v.data[i]) {
			return false
		}
	}
	return true
}

// FindIf returns the first element, in insertion order, satisfying pred.
func (v *Vector[T]) FindIf(pred func(value T) bool) (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, item := range v.data {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (v *Vector[T]) CountIf(pred func(value T) bool) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	n := 0
	for _, item := range v.data {
		if pred(item) {
			n++
		}
	}
	return n
}

// EraseFirst removes and returns the first element satisfying pred.
func (v *Vector[T]) EraseFirst(pred func(value T) bool) (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	i := slices.IndexFunc(v.data, pred)
	if i < 0 {
		var zero T
		return zero, false
	}
	item := v.data[i]
	v.data = slices.Delete(v.data, i, i+1)
	return item, true
}

// EraseIf removes every element satisfying pred, keeping the relative order
// of the survivors, and returns how many were removed.
func (v *Vector[T]) EraseIf(pred func(value T) bool) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	before := len(v.data)
	v.data = slices.DeleteFunc(v.data, pred)
	return before - len(v.data)
}
