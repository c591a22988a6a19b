package logging

import (
	"fmt"

	"github.com/ib-77/ropsync/pkg/rop"
	"go.uber.org/zap"
)

// ErrorOnFailure logs the message of a failed outcome at error level and
// reports whether o failed.
func ErrorOnFailure(l *zap.SugaredLogger, o rop.Outcome) bool {
	if o.IsSuccess() {
		return false
	}
	l.WithOptions(zap.AddCallerSkip(1)).Error(o.ErrorMessage())
	return true
}

// WarnOnFailure is ErrorOnFailure at warning level.
func WarnOnFailure(l *zap.SugaredLogger, o rop.Outcome) bool {
	if o.IsSuccess() {
		return false
	}
	l.WithOptions(zap.AddCallerSkip(1)).Warn(o.ErrorMessage())
	return true
}

// Failed logs the formatted message as an error and returns it as a failed
// Result.
func Failed[T any](l *zap.SugaredLogger, template string, args ...interface{}) rop.Result[T] {
	msg := fmt.Sprintf(template, args...)
	l.WithOptions(zap.AddCallerSkip(1)).Error(msg)
	return rop.Failed[T](msg)
}

// FailedVoid is Failed for VoidResult.
func FailedVoid(l *zap.SugaredLogger, template string, args ...interface{}) rop.VoidResult {
	msg := fmt.Sprintf(template, args...)
	l.WithOptions(zap.AddCallerSkip(1)).Error(msg)
	return rop.FailedVoid(msg)
}
