package result

import (
	"testing"

	"github.com/shopflow/storekit/pkg/apperr"
)

func TestSuccess_Accessors(t *testing.T) {
	t.Parallel()
	r := Success(42)

	if !r.IsSuccess() || r.IsFailure() {
		t.Fatalf("expected success variant, got success=%v failure=%v", r.IsSuccess(), r.IsFailure())
	}
	if r.Value() != 42 {
		t.Fatalf("expected value 42, got %v", r.Value())
	}
	if v, ok := r.Get(); !ok || v != 42 {
		t.Fatalf("expected (42, true), got (%v, %v)", v, ok)
	}
	if r.Err() != nil {
		t.Fatalf("expected nil error on success, got %v", r.Err())
	}
	if r.ErrMessage() != "" {
		t.Fatalf("expected empty error message on success, got %q", r.ErrMessage())
	}
}

func TestFailure_Accessors(t *testing.T) {
	t.Parallel()
	e := apperr.NewNetwork("down", 0, "")
	r := Failure[int](e)

	if r.IsSuccess() || !r.IsFailure() {
		t.Fatalf("expected failure variant, got success=%v failure=%v", r.IsSuccess(), r.IsFailure())
	}
	if r.Err() != e {
		t.Fatalf("expected the original error back, got %v", r.Err())
	}
	if r.Value() != 0 {
		t.Fatalf("expected zero value on failure, got %v", r.Value())
	}
	if _, ok := r.Get(); ok {
		t.Fatalf("expected comma-ok false on failure")
	}
	if r.ErrMessage() != "down" {
		t.Fatalf("expected error message 'down', got %q", r.ErrMessage())
	}
}

func TestFailureFrom_DefaultsToCauseMessage(t *testing.T) {
	t.Parallel()
	r := FailureFrom[int](errTest("socket closed"))

	if r.ErrMessage() != "socket closed" {
		t.Fatalf("expected cause message, got %q", r.ErrMessage())
	}
	if r.Err().Kind() != apperr.KindGeneral {
		t.Fatalf("expected generic wrap, got kind %q", r.Err().Kind())
	}
}

func TestMustValue_Success(t *testing.T) {
	t.Parallel()
	if got := Success("ok").MustValue(); got != "ok" {
		t.Fatalf("expected 'ok', got %q", got)
	}
}

func TestMustValue_PanicsWithTaxonomyError(t *testing.T) {
	t.Parallel()
	e := apperr.NewNotFound("gone", "product", "3")

	defer func() {
		v := recover()
		if v == nil {
			t.Fatalf("expected MustValue to panic on failure")
		}
		app, ok := v.(apperr.AppError)
		if !ok {
			t.Fatalf("expected panic payload to satisfy AppError, got %T", v)
		}
		if app != apperr.AppError(e) {
			t.Fatalf("expected the wrapped error, got %v", app)
		}
	}()
	Failure[int](e).MustValue()
}

func TestEqual_Structural(t *testing.T) {
	t.Parallel()
	e := apperr.NewCacheMiss("cold", "k")

	if !Success(5).Equal(Success(5)) {
		t.Fatalf("equal success values must compare equal")
	}
	if Success(5).Equal(Success(6)) {
		t.Fatalf("different success values must not compare equal")
	}
	if !Failure[int](e).Equal(Failure[int](e)) {
		t.Fatalf("failures over the same error must compare equal")
	}
	if Success(0).Equal(Failure[int](e)) {
		t.Fatalf("different variants must not compare equal")
	}
}

func TestValueOr_And_Laziness(t *testing.T) {
	t.Parallel()
	e := apperr.New("bad")

	if got := Failure[int](e).ValueOr(9); got != 9 {
		t.Fatalf("expected default 9, got %v", got)
	}
	if got := Success(1).ValueOr(9); got != 1 {
		t.Fatalf("expected payload 1, got %v", got)
	}

	invoked := false
	got := Success(1).ValueOrElse(func() int {
		invoked = true
		return 9
	})
	if got != 1 || invoked {
		t.Fatalf("supplier must not run on success; got=%v invoked=%v", got, invoked)
	}

	got = Failure[int](e).ValueOrElse(func() int { return 9 })
	if got != 9 {
		t.Fatalf("expected supplier value 9, got %v", got)
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }
