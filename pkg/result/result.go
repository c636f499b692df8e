package result

import (
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/shopflow/storekit/pkg/apperr"
)

// Result holds either a success value of type T or a taxonomy failure,
// never both. Values are immutable; combinators always produce a new Result.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       apperr.AppError
	isSuccess bool
}

// Success builds the success variant.
func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure builds the failure variant from a taxonomy error.
func Failure[T any](err apperr.AppError) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailureFrom builds the failure variant from any error, normalizing it into
// the taxonomy via apperr.From. The optional message overrides the cause's
// own text.
func FailureFrom[T any](cause error, msg ...string) Result[T] {
	return Failure[T](apperr.From(cause, msg...))
}

// failFrom carries a failure across a type change, keeping identity and
// creation time of the original result.
func failFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Value returns the success payload, or the zero value of T on failure.
func (r Result[T]) Value() T {
	return r.value
}

// Get returns the success payload with a comma-ok flag.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.isSuccess
}

// Err returns the failure payload, or nil on success.
func (r Result[T]) Err() apperr.AppError {
	if r.isSuccess {
		return nil
	}
	return r.err
}

// ErrMessage returns the failure message, or "" on success.
func (r Result[T]) ErrMessage() string {
	if r.isSuccess || r.err == nil {
		return ""
	}
	return r.err.Message()
}

// MustValue returns the success payload or panics with the taxonomy error.
// It is the single point where a failure value turns back into a raised
// fault; everything else in this package stays value-based.
func (r Result[T]) MustValue() T {
	if !r.isSuccess {
		panic(r.err)
	}
	return r.value
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// CreatedAt returns the creation time (UTC).
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// Id returns the identity assigned at construction. Failures carried across
// combinators keep the identity of the result that failed first.
func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Equal reports structural equality: same variant and equal payload.
// Identity and creation time are ignored.
func (r Result[T]) Equal(other Result[T]) bool {
	if r.isSuccess != other.isSuccess {
		return false
	}
	if r.isSuccess {
		return reflect.DeepEqual(r.value, other.value)
	}
	return reflect.DeepEqual(r.err, other.err)
}
