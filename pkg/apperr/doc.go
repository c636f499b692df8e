// Package apperr defines the closed set of typed failures used across the
// storekit pipeline in place of raw errors. Every failure carries a human
// message, an optional machine code and an optional wrapped cause, and is
// classified by a Kind (concrete variant) that belongs to a Class (layer).
//
// Boundary code converts faults into a taxonomy value as close to their
// origin as possible; from there failures travel as result.Result payloads,
// never as raised errors. Branching on failure kind goes through the Kind or
// Class discriminators, or through errors.As against a concrete type from
// this package. String-matching on messages is a contract violation.
//
// All values are immutable after construction. Interop with the standard
// library is preserved: every variant implements error and Unwrap, so
// errors.Is/As traverse wrapped causes.
package apperr
