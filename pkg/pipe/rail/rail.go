package rail

import (
	"errors"

	"github.com/pipeof/pipeof/pkg/pipe"
)

func Succeed[T any](input T) pipe.Result[T] {
	return pipe.Success(input)
}

func Fail[T any](err error) pipe.Result[T] {
	return pipe.Fail[T](err)
}

// Pipe is the short-circuiting bind. A failed input is re-typed and
// returned without invoking the stage; a successful input is unwrapped and
// handed to the stage, whose result is returned exactly as produced.
func Pipe[In, Out any](input pipe.Result[In],
	stage func(r In) pipe.Result[Out]) pipe.Result[Out] {

	if input.IsSuccess() {
		return stage(input.Result())
	}
	return pipe.FailFrom[In, Out](input)
}

// Map lifts a pure transformation into the success track.
func Map[In, Out any](input pipe.Result[In],
	onSuccess func(r In) Out) pipe.Result[Out] {

	if input.IsSuccess() {
		return pipe.Success(onSuccess(input.Result()))
	}
	return pipe.FailFrom[In, Out](input)
}

// Try runs a (value, error) function on the success track, converting a
// non-nil error into a failure.
func Try[In, Out any](input pipe.Result[In],
	onTryExecute func(r In) (Out, error)) pipe.Result[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(input.Result())
		if err != nil {
			return pipe.Fail[Out](err)
		}

		return pipe.Success(out)
	}
	return pipe.FailFrom[In, Out](input)
}

func Validate[T any](input T,
	validate func(in T) (isValid bool, errMsg string)) pipe.Result[T] {
	return AndValidate(Succeed(input), validate)
}

func AndValidate[T any](input pipe.Result[T],
	validate func(in T) (valid bool, errMsg string)) pipe.Result[T] {

	if input.IsSuccess() {

		if isValid, errMsg := validate(input.Result()); isValid {
			return pipe.Success(input.Result())
		} else {
			return pipe.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

// ValidateAll applies every validator to a successful input, joining
// collected failures into one error. With breakOnError it stops at the
// first failing validator.
func ValidateAll[T any](input pipe.Result[T],
	breakOnError bool,
	validators ...func(in T) (valid bool, errMsg string)) pipe.Result[T] {

	if !input.IsSuccess() {
		return input
	}

	var errs []error
	for _, validate := range validators {
		if isValid, errMsg := validate(input.Result()); !isValid {
			errs = append(errs, errors.New(errMsg))
			if breakOnError {
				break
			}
		}
	}

	if len(errs) > 0 {
		return pipe.Fail[T](errors.Join(errs...))
	}
	return input
}

func FailOnError[T any](input pipe.Result[T],
	maybeErr func(in T) error) pipe.Result[T] {
	if input.IsSuccess() {
		err := maybeErr(input.Result())
		if err != nil {
			return pipe.Fail[T](err)
		}
	}
	return input
}

func Tee[T any](input pipe.Result[T],
	onSuccess func(r pipe.Result[T])) pipe.Result[T] {

	if input.IsSuccess() {
		onSuccess(input)
	}

	return input
}

func DoubleTee[T any](input pipe.Result[T],
	onSuccess func(r T),
	onError func(err error)) pipe.Result[T] {

	if input.IsSuccess() {
		onSuccess(input.Result())
	} else {
		onError(input.Err())
	}

	return input
}

// Finally collapses a result into a plain value. The consumer states both
// branches explicitly; exactly one handler runs.
func Finally[In, Out any](input pipe.Result[In],
	onSuccess func(r In) Out,
	onError func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onError(input.Err())
}
