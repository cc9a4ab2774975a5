// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. The reader package builds every combinator on top of them, so
// the failure and cancellation rules live here in one place.
//
// Highlights:
// - Succeed/Fail/Cancel: construct Result[T]
// - Validate/ValidateAll: check a value, producing invalid-input failures
// - Switch: move from Result[In] to Result[Out] through a result-returning step
// - Map: transform successful values
// - Try: call a function (Out, error) and convert the error to a failure
// - Recover: replace a failure (never a cancellation) with another result
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error/cancel handlers
package solo
