// Package fn generalizes the fixed composer to arbitrary types. Pipe applies
// one stage to one value; PipeN variants compose stages whose signatures
// differ at every step, with each intermediate type inferred; Fold runs a
// variadic same-type chain.
//
// The invocability constraint of the composition is the type system itself:
// a right-hand side that cannot be invoked with the left-hand value does not
// compile, so no coercion or runtime check ever happens.
//
// Key operations:
// - Pipe: apply a single stage (T -> R)
// - Pipe2..Pipe5: left-to-right composition across changing types
// - Fold: N-stage same-type chain, identity for N == 0
package fn
