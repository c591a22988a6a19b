package rop

// VoidResult is the payload-free form of the algebra. The zero value is a
// success; a failure always carries a non-empty message.
type VoidResult struct {
	err error
}

// Ok returns a successful VoidResult.
func Ok() VoidResult {
	return VoidResult{}
}

// FailVoid wraps err as a failed VoidResult. A nil err becomes ErrUnknown.
func FailVoid(err error) VoidResult {
	if IsNil(err) {
		err = ErrUnknown
	}
	return VoidResult{err: err}
}

// FailedVoid builds a failed VoidResult from a message. An empty msg becomes
// ErrUnknown.
func FailedVoid(msg string) VoidResult {
	return VoidResult{err: newError(msg)}
}

// FailIf is a declarative guard clause: it fails with msg when predicate
// reports true and succeeds otherwise.
func FailIf(predicate func() bool, msg string) VoidResult {
	if predicate() {
		return FailedVoid(msg)
	}
	return Ok()
}

// TryVoid runs f and converts its error into a VoidResult.
func TryVoid(f func() error) VoidResult {
	if err := f(); err != nil {
		return FailVoid(err)
	}
	return Ok()
}

// FromResult drops the payload of any outcome, keeping success and error.
func FromResult(o Outcome) VoidResult {
	if o.IsSuccess() {
		return Ok()
	}
	return FailVoid(o.Err())
}

func (v VoidResult) IsSuccess() bool {
	return v.err == nil
}

func (v VoidResult) IsFailure() bool {
	return v.err != nil
}

func (v VoidResult) Err() error {
	return v.err
}

func (v VoidResult) ErrorMessage() string {
	if v.err == nil {
		return ""
	}
	return v.err.Error()
}

// Or returns v when it succeeded, otherwise other converted to a VoidResult.
func (v VoidResult) Or(other Outcome) VoidResult {
	if v.IsSuccess() {
		return v
	}
	return FromResult(other)
}

// And combines two independent steps. Both failing yields a failure whose
// message joins both messages with " and "; a single failure is returned
// unchanged.
func (v VoidResult) And(other VoidResult) VoidResult {
	switch {
	case v.IsSuccess() && other.IsSuccess():
		return Ok()
	case v.IsFailure() && other.IsFailure():
		return VoidResult{err: &andError{first: v.err, second: other.err}}
	case v.IsFailure():
		return v
	default:
		return other
	}
}

// AndThen runs next only when v succeeded.
func (v VoidResult) AndThen(next func() VoidResult) VoidResult {
	if v.IsFailure() {
		return v
	}
	return next()
}

type andError struct {
	first, second error
}

func (e *andError) Error() string {
	return e.first.Error() + " and " + e.second.Error()
}

func (e *andError) Unwrap() []error {
	return []error{e.first, e.second}
}
