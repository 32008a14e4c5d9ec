// Package errs provides the standardized error types used across the tavern
// application.
//
// Validation failures use ValueIsRequiredError and ValueIsInvalidError and are
// raised at entity construction, before any store call. Read misses use
// ObjectNotFoundError. Persistence failures are classified into exactly one of
// three kinds:
//
//   - TransientError: connectivity was lost mid-operation. The whole logical
//     operation may be retried because every store mutation is atomic.
//   - ConstraintViolationError: a permanent referential-integrity failure,
//     carrying the violated relation.
//   - PersistenceError: any other storage failure, with the original cause
//     preserved for diagnostics.
//
// Each error type follows the same shape: a sentinel variable for errors.Is
// matching, a struct carrying details, constructors with and without a cause,
// and Error/Unwrap methods.
package errs
