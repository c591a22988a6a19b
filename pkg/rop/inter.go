package rop

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the success-or-failure view shared by Result, VoidResult and
// DataResult.
type Outcome interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// Err returns the error if the operation failed, nil otherwise
	Err() error
	// ErrorMessage returns the failure text, "" on success
	ErrorMessage() string
}

// ValueProvider is an Outcome that also yields a value.
type ValueProvider[T any] interface {
	Outcome
	Value() T
}

// Identified is implemented by outcomes that carry an identity.
type Identified interface {
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

var (
	_ ValueProvider[int] = Result[int]{}
	_ ValueProvider[int] = DataResult[int]{}
	_ Outcome            = VoidResult{}
	_ Identified         = Result[int]{}
)
