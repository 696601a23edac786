package chain

import (
	"github.com/pipeof/pipeof/pkg/pipe"
	"github.com/pipeof/pipeof/pkg/pipe/rail"
)

// Chain wraps a pipe.Result to enable fluent left-to-right chaining
type Chain[T any] struct {
	result pipe.Result[T]
}

// Start creates a new chain from a pipe.Result
func Start[T any](result pipe.Result[T]) Chain[T] {
	return Chain[T]{result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](value T) Chain[T] {
	return Chain[T]{result: pipe.Success(value)}
}

// Result returns the underlying pipe.Result
func (c Chain[T]) Result() pipe.Result[T] {
	return c.result
}

// Then composes a stage that already returns pipe.Result[T]
func (c Chain[T]) Then(stage func(t T) pipe.Result[T]) Chain[T] {
	return Chain[T]{result: rail.Pipe(c.result, stage)}
}

// ThenTry composes a stage that returns (T, error)
func (c Chain[T]) ThenTry(try func(t T) (T, error)) Chain[T] {
	return Chain[T]{result: rail.Try(c.result, try)}
}

// Map composes a pure transformation
func (c Chain[T]) Map(onSuccess func(t T) T) Chain[T] {
	return Chain[T]{result: rail.Map(c.result, onSuccess)}
}

// Ensure triggers a side effect on success without changing the result
func (c Chain[T]) Ensure(onSuccess func(t T)) Chain[T] {
	return Chain[T]{result: rail.Tee(c.result,
		func(r pipe.Result[T]) {
			onSuccess(r.Result())
		})}
}

// Finally collapses the chain to a final value, delegating to rail.Finally
func (c Chain[T]) Finally(onSuccess func(t T) T, onFailure func(err error) T) T {
	return rail.Finally(c.result, onSuccess, onFailure)
}

// Then chains a stage that switches the value type. Methods cannot add
// type parameters, hence the free-function spelling for T -> U steps.
func Then[T, U any](c Chain[T], stage func(t T) pipe.Result[U]) Chain[U] {
	return Chain[U]{result: rail.Pipe(c.result, stage)}
}

// ThenTry chains a (U, error) stage that switches the value type
func ThenTry[T, U any](c Chain[T], try func(t T) (U, error)) Chain[U] {
	return Chain[U]{result: rail.Try(c.result, try)}
}

// Map chains a pure transformation that switches the value type
func Map[T, U any](c Chain[T], onSuccess func(t T) U) Chain[U] {
	return Chain[U]{result: rail.Map(c.result, onSuccess)}
}

// Finally collapses the chain into a final value of a different type
func Finally[T, U any](c Chain[T], onSuccess func(t T) U, onFailure func(err error) U) U {
	return rail.Finally(c.result, onSuccess, onFailure)
}
