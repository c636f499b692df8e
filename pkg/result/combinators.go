package result

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopflow/storekit/pkg/apperr"
)

// recovered normalizes a panic payload into the taxonomy. A panic carrying
// an AppError (for example from MustValue) passes through unchanged.
func recovered(v any) apperr.AppError {
	if err, ok := v.(error); ok {
		return apperr.From(err)
	}
	return apperr.New(fmt.Sprint(v))
}

// protect runs fn and converts a panic into a failure, so no fault raised
// inside caller-supplied code can escape a combinator.
func protect[U any](fn func() Result[U]) (res Result[U]) {
	defer func() {
		if v := recover(); v != nil {
			res = Failure[U](recovered(v))
		}
	}()
	return fn()
}

// Map transforms the success value. On failure the error passes through
// untouched and fn is never invoked. A panic inside fn becomes a failure.
func Map[In, Out any](r Result[In], fn func(In) Out) Result[Out] {
	if r.IsFailure() {
		return failFrom[In, Out](r)
	}
	return protect(func() Result[Out] {
		return Success(fn(r.value))
	})
}

// MapCtx is the suspending counterpart of Map: fn runs inline with the
// given context and may report an error, which becomes a failure via the
// taxonomy. Failures short-circuit without invoking fn.
func MapCtx[In, Out any](ctx context.Context, r Result[In], fn func(context.Context, In) (Out, error)) Result[Out] {
	if r.IsFailure() {
		return failFrom[In, Out](r)
	}
	return protect(func() Result[Out] {
		out, err := fn(ctx, r.value)
		if err != nil {
			return FailureFrom[Out](err)
		}
		return Success(out)
	})
}

// Switch moves from Result[In] to Result[Out] through a function that
// already returns a Result; its result is returned directly, never
// double-wrapped. Failures short-circuit.
func Switch[In, Out any](r Result[In], onSuccess func(In) Result[Out]) Result[Out] {
	if r.IsFailure() {
		return failFrom[In, Out](r)
	}
	return protect(func() Result[Out] {
		return onSuccess(r.value)
	})
}

// SwitchCtx is the suspending counterpart of Switch.
func SwitchCtx[In, Out any](ctx context.Context, r Result[In], onSuccess func(context.Context, In) Result[Out]) Result[Out] {
	if r.IsFailure() {
		return failFrom[In, Out](r)
	}
	return protect(func() Result[Out] {
		return onSuccess(ctx, r.value)
	})
}

// Try calls a conventional (Out, error) function on the success value and
// converts a returned error into a failure.
func Try[In, Out any](r Result[In], fn func(In) (Out, error)) Result[Out] {
	if r.IsFailure() {
		return failFrom[In, Out](r)
	}
	return protect(func() Result[Out] {
		out, err := fn(r.value)
		if err != nil {
			return FailureFrom[Out](err)
		}
		return Success(out)
	})
}

// AndThen discards the current success value and evaluates fn. Failures
// short-circuit without evaluating fn.
func AndThen[In, Out any](r Result[In], fn func() Result[Out]) Result[Out] {
	if r.IsFailure() {
		return failFrom[In, Out](r)
	}
	return protect(fn)
}

// AndThenCtx is the suspending counterpart of AndThen.
func AndThenCtx[In, Out any](ctx context.Context, r Result[In], fn func(context.Context) Result[Out]) Result[Out] {
	if r.IsFailure() {
		return failFrom[In, Out](r)
	}
	return protect(func() Result[Out] {
		return fn(ctx)
	})
}

// Fold reduces the result to a single value; exactly one branch runs.
// Unlike every other combinator, Fold is transparent: a panic inside either
// branch propagates to the caller.
func Fold[T, R any](r Result[T], onSuccess func(T) R, onFailure func(apperr.AppError) R) R {
	if r.IsSuccess() {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}

// Match is Fold under the name pattern-matching callers expect.
func Match[T, R any](r Result[T], onSuccess func(T) R, onFailure func(apperr.AppError) R) R {
	return Fold(r, onSuccess, onFailure)
}

// HasError reports whether r failed with an error of concrete type E,
// traversing wrapped causes.
func HasError[E apperr.AppError, T any](r Result[T]) bool {
	_, ok := ErrorAs[E](r)
	return ok
}

// ErrorAs narrows the failure payload to concrete type E, traversing
// wrapped causes.
func ErrorAs[E apperr.AppError, T any](r Result[T]) (E, bool) {
	var target E
	if r.IsSuccess() {
		return target, false
	}
	ok := errors.As(r.err, &target)
	return target, ok
}
