package fixed

// Stage is the single transformer signature this composer accepts:
// a unary function over string.
type Stage func(s string) string

// Pipe feeds s into stage and returns whatever the stage produced. The
// composer performs no validation and has no side effects of its own.
func Pipe(s string, stage Stage) string {
	return stage(s)
}
