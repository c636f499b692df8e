package result

import "context"

// Wrap executes a conventional (T, error) operation and captures its outcome
// as a Result. Both a returned error and a panic become failures; no fault
// escapes.
func Wrap[T any](operation func() (T, error)) Result[T] {
	return protect(func() Result[T] {
		v, err := operation()
		if err != nil {
			return FailureFrom[T](err)
		}
		return Success(v)
	})
}

// WrapCtx is the suspending counterpart of Wrap.
func WrapCtx[T any](ctx context.Context, operation func(context.Context) (T, error)) Result[T] {
	return protect(func() Result[T] {
		v, err := operation(ctx)
		if err != nil {
			return FailureFrom[T](err)
		}
		return Success(v)
	})
}

// Combine folds a list of results into a result of the ordered value list.
// The first failure in input order wins; later failures are discarded. An
// empty input yields Success of an empty list.
func Combine[T any](results []Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.IsFailure() {
			return failFrom[T, []T](r)
		}
		values = append(values, r.value)
	}
	return Success(values)
}
