package pipe

import (
	"errors"
	"testing"
)

func TestSuccess(t *testing.T) {
	t.Parallel()
	res := Success(42)

	if !res.IsSuccess() || res.Result() != 42 {
		t.Fatalf("expected success with 42, got: success=%v, val=%v, err=%v", res.IsSuccess(), res.Result(), res.Err())
	}
	if res.IsFailure() || res.IsEmpty() {
		t.Fatalf("success result must be neither failure nor empty")
	}
	if res.Err() != nil {
		t.Fatalf("success result must carry no error, got: %v", res.Err())
	}
	if res.CreatedAt().IsZero() {
		t.Fatalf("expected a creation timestamp")
	}
}

func TestFail(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	res := Fail[int](err)

	if res.IsSuccess() || !res.IsFailure() {
		t.Fatalf("expected failure, got: success=%v", res.IsSuccess())
	}
	if !errors.Is(res.Err(), err) {
		t.Fatalf("expected error 'boom', got: %v", res.Err())
	}
	if res.Result() != 0 {
		t.Fatalf("failed result must hold the zero value, got: %v", res.Result())
	}
}

func TestMutualExclusivity(t *testing.T) {
	t.Parallel()

	if s := Success("x"); s.IsSuccess() == s.IsFailure() {
		t.Fatalf("a result cannot be both or neither of success/failure")
	}
	if f := Fail[string](errors.New("no")); f.IsSuccess() == f.IsFailure() {
		t.Fatalf("a result cannot be both or neither of success/failure")
	}
}

func TestZeroValueIsEmpty(t *testing.T) {
	t.Parallel()
	var res Result[int]

	if !res.IsEmpty() {
		t.Fatalf("zero value must report empty")
	}
	if res.IsSuccess() || res.IsFailure() {
		t.Fatalf("zero value is neither success nor failure")
	}
}

func TestMustResult_Success(t *testing.T) {
	t.Parallel()
	res := Success("ok")

	if got := res.MustResult(); got != "ok" {
		t.Fatalf("expected 'ok', got: %v", got)
	}
}

func TestMustResult_PanicsOnFailure(t *testing.T) {
	t.Parallel()
	res := Fail[string](errors.New("boom"))

	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustResult to panic on a failed result")
		}
	}()
	_ = res.MustResult()
}

func TestFailFrom_PreservesErrorAndIdentity(t *testing.T) {
	t.Parallel()
	err := errors.New("overflow")
	from := Fail[int](err)

	to := FailFrom[int, string](from)

	if to.IsSuccess() {
		t.Fatalf("expected re-typed result to stay failed")
	}
	if !errors.Is(to.Err(), err) {
		t.Fatalf("expected the original error, got: %v", to.Err())
	}
	if to.Id() != from.Id() {
		t.Fatalf("expected id to survive the type switch")
	}
	if !to.CreatedAt().Equal(from.CreatedAt()) {
		t.Fatalf("expected creation time to survive the type switch")
	}
}

func TestIds_AreUnique(t *testing.T) {
	t.Parallel()

	a := Success(1)
	b := Success(1)
	if a.Id() == b.Id() {
		t.Fatalf("distinct results must have distinct ids")
	}
}
