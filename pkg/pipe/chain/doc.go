// Package chain provides a fluent wrapper around pipe.Result[T] for
// building synchronous error-aware chains using rail primitives.
//
// A chain reads left to right like an infix pipeline; each step consumes
// the previous result and the first failure short-circuits everything after
// it. The chain itself holds no state beyond the in-flight result.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: pipe into a stage returning a new Result
// - ThenTry: call a function (T, error) and convert error to failure
// - Map: transform the successful value
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
//
// Type-switching steps (T -> U) use the package-level Then/ThenTry/Map/
// Finally, since Go methods cannot introduce new type parameters.
package chain
