// Package chain provides a fluent wrapper around result.Result for building
// pipelines that thread a single context.Context.
//
// Key operations:
//   - Start/FromValue/FromOp: begin a chain from a result, value or operation
//   - Then: switch to a new result via a function
//   - ThenTry: call a function (T, error) and convert the error to a failure
//   - Map: transform the successful value
//   - Filter/Validate: predicate checks
//   - Ensure: run side effects on success without changing the result
//   - Catch: recover from a failure
//   - Finally: collapse the chain into a final value via handlers
//
// Type-changing steps (Then, ThenTry, Map, Finally) also exist as package
// functions because Go methods cannot introduce type parameters.
package chain
