// Package result implements the two-variant success/failure container the
// storekit pipeline is built on, together with its combinator algebra.
//
// Boundary code (repositories, services) catches faults, classifies them
// into the apperr taxonomy and returns a Result; from there failures travel
// as values and short-circuit the rest of the pipeline. Consumers reduce a
// Result through Fold/Match or explicit IsSuccess/IsFailure checks.
//
// Highlights:
//   - Success/Failure/FailureFrom: construct Result[T]
//   - Map/Switch/Try/AndThen: transform or sequence on success
//   - MapCtx/SwitchCtx/AndThenCtx/WrapCtx: context-threaded counterparts
//   - Filter/Validate: predicate checks producing validation failures
//   - Tee/TeeCtx: side effects that cannot alter the pipeline
//   - Catch/CatchCtx: failure recovery
//   - Fold/Match: reduce to a concrete value (transparent to panics)
//   - Wrap/Combine: lift (T, error) operations and merge result lists
//
// Every combinator that evaluates caller-supplied code converts a panic into
// a failure, with two deliberate exceptions: Fold/Match propagate, and
// MustValue turns a failure back into a raised fault.
//
// For fluent pipelines over a single context, see package chain.
package result
