package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/shopflow/storekit/pkg/apperr"
	"github.com/shopflow/storekit/pkg/result"
)

func TestFromValue_And_Result(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue(ctx, 7).Result()
	if !out.IsSuccess() || out.Value() != 7 {
		t.Fatalf("expected success 7, got success=%v val=%v err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestFromOp(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromOp(ctx, func(context.Context) (int, error) { return 3, nil }).Result()
	if !out.IsSuccess() || out.Value() != 3 {
		t.Fatalf("expected success 3, got %v / %v", out.Value(), out.Err())
	}

	failed := FromOp(ctx, func(context.Context) (int, error) { return 0, errors.New("op down") }).Result()
	if !failed.IsFailure() || failed.ErrMessage() != "op down" {
		t.Fatalf("expected failure 'op down', got %v", failed.Err())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	invoked := false

	out := Start(ctx, result.Failure[int](apperr.New("boom"))).
		Then(func(_ context.Context, v int) result.Result[int] {
			invoked = true
			return result.Success(v + 1)
		}).
		Result()
	if invoked {
		t.Fatalf("then must not run after a failure")
	}
	if out.IsSuccess() || out.ErrMessage() != "boom" {
		t.Fatalf("expected failure 'boom', got success=%v err=%v", out.IsSuccess(), out.Err())
	}
}

func TestPipeline_SuccessPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	seen := 0

	out := FromValue(ctx, 3).
		Map(func(_ context.Context, v int) int { return v * 2 }).
		Validate(func(v int) bool { return v > 0 }, "must be positive").
		Ensure(func(_ context.Context, v int) { seen = v }).
		ThenTry(func(_ context.Context, v int) (int, error) { return v + 1, nil }).
		Result()

	if !out.IsSuccess() || out.Value() != 7 {
		t.Fatalf("expected success 7, got %v / %v", out.Value(), out.Err())
	}
	if seen != 6 {
		t.Fatalf("expected ensure to observe 6, got %v", seen)
	}
}

func TestFilter_ProducesValidationFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue(ctx, 1).
		Filter(func(v int) bool { return v > 5 }).
		Result()
	if !result.HasError[*apperr.ValidationError](out) {
		t.Fatalf("expected a validation failure, got %v", out.Err())
	}
}

func TestCatch_Recovers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := Start(ctx, result.Failure[string](apperr.NewCacheMiss("cold", "k"))).
		Catch(func(_ context.Context, err apperr.AppError) result.Result[string] {
			if apperr.IsCache(err) {
				return result.Success("refetched")
			}
			return result.Failure[string](err)
		}).
		Result()
	if !out.IsSuccess() || out.Value() != "refetched" {
		t.Fatalf("expected recovery, got %v / %v", out.Value(), out.Err())
	}
}

func TestFinally_CollapsesBothBranches(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := FromValue(ctx, 3).Finally(
		func(_ context.Context, v int) int { return v + 100 },
		func(_ context.Context, err apperr.AppError) int { return -1 })
	if ok != 103 {
		t.Fatalf("expected 103, got %d", ok)
	}

	bad := Start(ctx, result.Failure[int](apperr.New("x"))).Finally(
		func(_ context.Context, v int) int { return v },
		func(_ context.Context, err apperr.AppError) int { return -1 })
	if bad != -1 {
		t.Fatalf("expected -1 for failure, got %d", bad)
	}
}

func TestTypeChangingSteps(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	msg := Finally(
		Map(
			ThenTry(FromValue(ctx, "21"),
				func(_ context.Context, s string) (int, error) { return strconv.Atoi(s) }),
			func(_ context.Context, v int) int { return v * 2 }),
		func(_ context.Context, v int) string { return "val:" + strconv.Itoa(v) },
		func(_ context.Context, err apperr.AppError) string { return "err" })

	if msg != "val:42" {
		t.Fatalf("expected val:42, got %q", msg)
	}

	bad := Finally(
		Then(FromValue(ctx, "x"),
			func(_ context.Context, s string) result.Result[int] {
				n, err := strconv.Atoi(s)
				if err != nil {
					return result.FailureFrom[int](err, "not a number")
				}
				return result.Success(n)
			}),
		func(_ context.Context, v int) string { return "val" },
		func(_ context.Context, err apperr.AppError) string { return "err:" + err.Message() })

	if bad != "err:not a number" {
		t.Fatalf("expected err:not a number, got %q", bad)
	}
}
