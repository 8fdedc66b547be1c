// Package errs provides standardized error types for the tanker brokerage
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package defines the error taxonomy of the order lifecycle engine:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed or out-of-range input, caught before any write
//   - ObjectNotFoundError: a referenced order, bid, offer, or user is absent
//   - ConflictError: a precondition on current state failed, including the
//     losing side of a confirmation race
//   - DeadlineExpiredError: an operation-specific deadline has passed
//   - InvalidStateError: the object exists but is not in the predecessor state
//     a transition requires; carries the actual current state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Unexpected store-level failures are never wrapped into these kinds; they
// propagate as-is and surface as generic internal errors at the boundary.
package errs
