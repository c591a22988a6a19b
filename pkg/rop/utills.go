package rop

import (
	"context"
	"errors"
	"reflect"
	"strings"
)

// ErrUnknown stands in for a failure that was built without a message.
var ErrUnknown = errors.New("unknown failure")

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// JoinMessages concatenates the messages of all failed outcomes with " and ".
// It returns "" when none failed.
func JoinMessages(outcomes ...Outcome) string {
	msgs := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		if !o.IsSuccess() {
			msgs = append(msgs, o.ErrorMessage())
		}
	}
	return strings.Join(msgs, " and ")
}

func newError(msg string) error {
	if msg == "" {
		return ErrUnknown
	}
	return errors.New(msg)
}
