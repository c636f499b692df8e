package chain

import (
	"context"

	"github.com/shopflow/storekit/pkg/apperr"
	"github.com/shopflow/storekit/pkg/result"
)

// Chain wraps a result.Result with a context to enable fluent pipelines.
type Chain[T any] struct {
	ctx context.Context
	res result.Result[T]
}

// Start begins a chain from an existing result.
func Start[T any](ctx context.Context, r result.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue begins a chain from a successful value.
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, result.Success(v))
}

// FromOp begins a chain by running a (T, error) operation under the chain's
// context.
func FromOp[T any](ctx context.Context, op func(context.Context) (T, error)) Chain[T] {
	return Start(ctx, result.WrapCtx(ctx, op))
}

// Result returns the underlying result.
func (c Chain[T]) Result() result.Result[T] {
	return c.res
}

// Then composes a function that already returns a same-typed result.
func (c Chain[T]) Then(onSuccess func(context.Context, T) result.Result[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: result.SwitchCtx(c.ctx, c.res, onSuccess)}
}

// ThenTry composes a conventional (T, error) function, like a repository
// call.
func (c Chain[T]) ThenTry(try func(context.Context, T) (T, error)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: result.MapCtx(c.ctx, c.res, try)}
}

// Map transforms the successful value.
func (c Chain[T]) Map(onSuccess func(context.Context, T) T) Chain[T] {
	return c.ThenTry(func(ctx context.Context, v T) (T, error) {
		return onSuccess(ctx, v), nil
	})
}

// Filter keeps the value only when the predicate holds.
func (c Chain[T]) Filter(predicate func(T) bool) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: c.res.Filter(predicate)}
}

// Validate is Filter with a caller-supplied failure message.
func (c Chain[T]) Validate(predicate func(T) bool, errMsg string) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: c.res.Validate(predicate, errMsg)}
}

// Ensure runs a side effect on success without changing the result.
func (c Chain[T]) Ensure(onSuccess func(context.Context, T)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: c.res.TeeCtx(c.ctx, func(ctx context.Context, v T) error {
		onSuccess(ctx, v)
		return nil
	})}
}

// Catch lets a handler recover from a failure.
func (c Chain[T]) Catch(handler func(context.Context, apperr.AppError) result.Result[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: c.res.CatchCtx(c.ctx, handler)}
}

// Finally collapses the chain into a final value; exactly one handler runs.
func (c Chain[T]) Finally(onSuccess func(context.Context, T) T, onFailure func(context.Context, apperr.AppError) T) T {
	return result.Fold(c.res,
		func(v T) T { return onSuccess(c.ctx, v) },
		func(err apperr.AppError) T { return onFailure(c.ctx, err) })
}

// Then chains a type-changing step. Methods cannot introduce new type
// parameters, so cross-type steps live at package level.
func Then[In, Out any](c Chain[In], onSuccess func(context.Context, In) result.Result[Out]) Chain[Out] {
	return Chain[Out]{ctx: c.ctx, res: result.SwitchCtx(c.ctx, c.res, onSuccess)}
}

// ThenTry chains a type-changing (Out, error) step.
func ThenTry[In, Out any](c Chain[In], try func(context.Context, In) (Out, error)) Chain[Out] {
	return Chain[Out]{ctx: c.ctx, res: result.MapCtx(c.ctx, c.res, try)}
}

// Map chains a type-changing pure transformation.
func Map[In, Out any](c Chain[In], onSuccess func(context.Context, In) Out) Chain[Out] {
	return ThenTry(c, func(ctx context.Context, v In) (Out, error) {
		return onSuccess(ctx, v), nil
	})
}

// Finally collapses a chain into a value of a different type.
func Finally[T, Out any](c Chain[T], onSuccess func(context.Context, T) Out, onFailure func(context.Context, apperr.AppError) Out) Out {
	return result.Fold(c.res,
		func(v T) Out { return onSuccess(c.ctx, v) },
		func(err apperr.AppError) Out { return onFailure(c.ctx, err) })
}
