package rop

// DataResult is a VoidResult that always carries a payload. On failure the
// payload is a best-effort value (a partially read buffer, a half-filled
// record) that callers may still use.
type DataResult[T any] struct {
	VoidResult
	data T
}

func NewDataResult[T any](data T) DataResult[T] {
	return DataResult[T]{data: data}
}

// FailData pairs a best-effort payload with err.
func FailData[T any](data T, err error) DataResult[T] {
	return DataResult[T]{VoidResult: FailVoid(err), data: data}
}

// FailedData pairs a best-effort payload with a failure message. An empty msg
// becomes ErrUnknown.
func FailedData[T any](data T, msg string) DataResult[T] {
	return DataResult[T]{VoidResult: FailedVoid(msg), data: data}
}

// Value returns the payload regardless of success.
func (d DataResult[T]) Value() T {
	return d.data
}

// Void drops the payload.
func (d DataResult[T]) Void() VoidResult {
	return d.VoidResult
}

// ToResult turns d into a Result, discarding the payload on failure.
func (d DataResult[T]) ToResult() Result[T] {
	if d.IsSuccess() {
		return Success(d.data)
	}
	return Fail[T](d.err)
}
