// Package solo contains single-value, synchronous primitives that operate on
// rop.Result[T] and take a context for the callbacks they invoke. They are the
// building blocks for error-aware pipelines without channels.
//
// Highlights:
// - Succeed/Fail/Failed: construct Result[T]
// - Validate/AndValidate/ValidateAll: turn invalid input into a failure
// - Switch: move from Result[In] to Result[Out] (context-aware rop.Chain)
// - Map: transform successful values
// - Try: call a function (Out, error) and convert the error to a failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
package solo
