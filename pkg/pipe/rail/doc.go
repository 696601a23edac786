// Package rail contains single-value, synchronous primitives that operate
// on pipe.Result[T]. These functions form the building blocks for
// error-aware chains: once a result is failed, every later stage is skipped
// and the error travels to the end of the chain unchanged.
//
// The short-circuit decision lives here and only here. Stages always
// receive the unwrapped success value, never the container, so a stage has
// nothing to re-check; Pipe is the sole authority on the error state.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Pipe: short-circuiting bind from Result[In] to Result[Out]
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Validate/AndValidate/ValidateAll: produce failure on invalid input
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
package rail
