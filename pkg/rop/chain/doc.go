// Package chain provides a fluent wrapper around rop.Result[T]
// for building synchronous chains using solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - Or/OrElse: fall back to another chain when this one failed
// - Finally: collapse the chain into a final value via handlers
package chain
