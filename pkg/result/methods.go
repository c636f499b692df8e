package result

import (
	"context"

	"github.com/shopflow/storekit/pkg/apperr"
)

// FilterFailedMessage is the validation message attached when a Filter
// predicate rejects a success value.
const FilterFailedMessage = "Filter condition not met"

// ValueOr returns the success payload or the given default.
func (r Result[T]) ValueOr(def T) T {
	if r.isSuccess {
		return r.value
	}
	return def
}

// ValueOrElse returns the success payload or the supplier's value. The
// supplier is never invoked on success; laziness is part of the contract.
func (r Result[T]) ValueOrElse(supplier func() T) T {
	if r.isSuccess {
		return r.value
	}
	return supplier()
}

// Filter keeps a success value only when the predicate holds; otherwise the
// result becomes a validation failure. Failures pass through.
func (r Result[T]) Filter(predicate func(T) bool) Result[T] {
	return r.Validate(predicate, FilterFailedMessage)
}

// Validate is Filter with a caller-supplied failure message.
func (r Result[T]) Validate(predicate func(T) bool, errMsg string) Result[T] {
	if r.IsFailure() {
		return r
	}
	return protect(func() Result[T] {
		if predicate(r.value) {
			return r
		}
		return Failure[T](apperr.NewValidation(errMsg, nil))
	})
}

// Tee invokes fn on the success value for its side effect and returns the
// receiver unchanged. A panic inside fn is swallowed: observation must not
// alter the pipeline. On failure fn is never invoked.
func (r Result[T]) Tee(fn func(T)) Result[T] {
	if r.IsFailure() {
		return r
	}
	func() {
		defer func() { _ = recover() }()
		fn(r.value)
	}()
	return r
}

// TeeCtx is the suspending counterpart of Tee: the effect runs to completion
// before the receiver is returned, and both a returned error and a panic are
// swallowed.
func (r Result[T]) TeeCtx(ctx context.Context, fn func(context.Context, T) error) Result[T] {
	if r.IsFailure() {
		return r
	}
	func() {
		defer func() { _ = recover() }()
		_ = fn(ctx, r.value)
	}()
	return r
}

// Catch lets a handler recover from a failure: it may rebuild a success or
// re-wrap into a different failure. A panic inside the handler is captured
// into a generic failure. On success the handler is never invoked.
func (r Result[T]) Catch(handler func(apperr.AppError) Result[T]) Result[T] {
	if r.isSuccess {
		return r
	}
	return protect(func() Result[T] {
		return handler(r.err)
	})
}

// CatchCtx is the suspending counterpart of Catch.
func (r Result[T]) CatchCtx(ctx context.Context, handler func(context.Context, apperr.AppError) Result[T]) Result[T] {
	if r.isSuccess {
		return r
	}
	return protect(func() Result[T] {
		return handler(ctx, r.err)
	})
}

// Contains reports whether the result succeeded with a value satisfying the
// predicate. It never raises: a panicking predicate counts as false.
func (r Result[T]) Contains(predicate func(T) bool) (held bool) {
	if r.IsFailure() {
		return false
	}
	defer func() {
		if recover() != nil {
			held = false
		}
	}()
	return predicate(r.value)
}
