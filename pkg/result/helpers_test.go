package result

import (
	"context"
	"testing"

	"github.com/shopflow/storekit/pkg/apperr"
)

func TestWrap_Success(t *testing.T) {
	t.Parallel()
	r := Wrap(func() (int, error) { return 5, nil })
	if !r.IsSuccess() || r.Value() != 5 {
		t.Fatalf("expected success 5, got %v / %v", r.Value(), r.Err())
	}
}

func TestWrap_ReturnedError(t *testing.T) {
	t.Parallel()
	r := Wrap(func() (int, error) { return 0, errTest("db down") })
	if !r.IsFailure() || r.ErrMessage() != "db down" {
		t.Fatalf("expected wrapped failure 'db down', got %v", r.Err())
	}
}

func TestWrap_PanicBecomesFailure(t *testing.T) {
	t.Parallel()
	zero := 0
	r := Wrap(func() (int, error) { return 1 / zero, nil })

	if !r.IsFailure() {
		t.Fatalf("expected the division fault to surface as a failure")
	}
	err := r.Err()
	if err.Kind() != apperr.KindGeneral {
		t.Fatalf("expected generic wrap, got kind %q", err.Kind())
	}
	if err.Unwrap() == nil {
		t.Fatalf("expected the runtime fault to be kept as cause")
	}
}

func TestWrapCtx(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	r := WrapCtx(ctx, func(ctx context.Context) (string, error) {
		return "done", ctx.Err()
	})
	if !r.IsSuccess() || r.Value() != "done" {
		t.Fatalf("expected success, got %v / %v", r.Value(), r.Err())
	}

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	f := WrapCtx(cancelled, func(ctx context.Context) (string, error) {
		return "", ctx.Err()
	})
	if !f.IsFailure() {
		t.Fatalf("expected the context error to become a failure")
	}
}

func TestCombine_Empty(t *testing.T) {
	t.Parallel()
	r := Combine[int](nil)
	if !r.IsSuccess() || len(r.Value()) != 0 {
		t.Fatalf("combine of no results must be an empty success, got %v / %v", r.Value(), r.Err())
	}
}

func TestCombine_AllSuccessPreservesOrder(t *testing.T) {
	t.Parallel()
	r := Combine([]Result[int]{Success(1), Success(2), Success(3)})
	if !r.IsSuccess() {
		t.Fatalf("expected success, got %v", r.Err())
	}
	got := r.Value()
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("expected ordered [1 2 3], got %v", got)
	}
}

func TestCombine_FirstErrorWins(t *testing.T) {
	t.Parallel()
	e1 := apperr.New("first")
	e2 := apperr.New("second")
	r := Combine([]Result[int]{Success(1), Failure[int](e1), Failure[int](e2)})

	if !r.IsFailure() {
		t.Fatalf("expected failure")
	}
	if r.Err() != apperr.AppError(e1) {
		t.Fatalf("expected the first failure to win, got %v", r.Err())
	}
}
