package fn

// Pipe invokes fn with v and returns its result. The stage may be a named
// function, a closure, a method value or any value of a func type; the
// compiler rejects a stage that cannot accept v.
func Pipe[T, R any](v T, fn func(T) R) R {
	return fn(v)
}

// Pipe2 threads v through two stages of independent signatures.
func Pipe2[A, B, C any](v A, f1 func(A) B, f2 func(B) C) C {
	return f2(f1(v))
}

// Pipe3 threads v through three stages of independent signatures.
func Pipe3[A, B, C, D any](v A, f1 func(A) B, f2 func(B) C, f3 func(C) D) D {
	return f3(f2(f1(v)))
}

// Pipe4 threads v through four stages of independent signatures.
func Pipe4[A, B, C, D, E any](v A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E) E {
	return f4(f3(f2(f1(v))))
}

// Pipe5 threads v through five stages of independent signatures.
func Pipe5[A, B, C, D, E, F any](v A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F) F {
	return f5(f4(f3(f2(f1(v)))))
}

// Fold threads v through same-type stages from left to right. With zero
// stages it returns v unchanged.
func Fold[T any](v T, stages ...func(T) T) T {
	for _, stage := range stages {
		v = stage(v)
	}
	return v
}
