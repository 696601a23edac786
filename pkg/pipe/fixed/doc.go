// Package fixed is the smallest possible pipe composer: one concrete value
// type (string), one concrete stage signature. Chaining repeated Pipe calls
// reads left to right:
//
//	out := fixed.Pipe(fixed.Pipe("start", trim), upper)
//
// It exists to motivate the generic composer in package fn, which lifts the
// same operation to arbitrary value and stage types.
package fixed
