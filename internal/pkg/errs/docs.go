// Package errs provides standardized error types for the greenfleet application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package maps the application's failure taxonomy to typed errors:
//   - ValueIsRequiredError / ValueIsInvalidError: bad input, the caller's fault
//   - ObjectNotFoundError: a referenced entity is absent
//   - InvalidStateError / InvalidTransitionError: operation not legal from the current state
//   - ConflictError: a lost concurrency race, expected and recoverable
//   - ResourceUnavailableError: no free port or capacity
//   - ForbiddenError: actor not authorized for this entity
//   - UnavailableError: dependency timeout or outage, safe to retry
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// ConflictError and ResourceUnavailableError carry human-readable detail because
// they surface directly to losing callers ("order already taken", the contended
// port number).
package errs
