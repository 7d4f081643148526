// Package errs provides the standardized error types used across the shipment
// tracking application. It implements a consistent pattern for error creation,
// formatting, and unwrapping.
//
// The taxonomy mirrors the rejection kinds the API surfaces to callers:
//   - ObjectNotFoundError: unresolved identifiers, including cross-tenant access
//   - ForbiddenError: role/ownership/field-restriction violations
//   - InvalidStateError: terminal-state and illegal-successor violations
//   - ConflictError: duplicate codes and delete-while-referenced cases
//   - ValueIsInvalidError / ValueIsOutOfRangeError / ValueIsRequiredError:
//     malformed input
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrForbidden)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Handlers in the HTTP adapter map the sentinels to response codes, which keeps
// error classification in one place throughout the application.
package errs
