package errs

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors used as the unwrap targets for every error kind in the
// package. Callers classify errors with errors.Is against these.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrConflict          = errors.New("conflict")
	ErrDeadlineExpired   = errors.New("deadline expired")
	ErrInvalidState      = errors.New("invalid state")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", " "), "\n", " ")
}

// ObjectNotFoundError indicates that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause (typically a storage-level lookup failure).
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value is malformed or violates
// a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping the
// underlying validation failure.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a value outside its permitted bounds.
// Min and Max are carried so callers can report the acceptable range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping
// an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return sanitize(msg)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ConflictError indicates that a precondition on the current state failed,
// including the losing side of a race. The Detail is specific enough for a
// caller to distinguish "already claimed" from other conflicts.
type ConflictError struct {
	Detail string
	Cause  error
}

// NewConflictError creates a ConflictError without a cause.
func NewConflictError(detail string) *ConflictError {
	return &ConflictError{Detail: detail}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(detail string, cause error) *ConflictError {
	return &ConflictError{Detail: detail, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrConflict, e.Detail, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrConflict, e.Detail))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// DeadlineExpiredError indicates that an operation-specific wall-clock
// deadline passed before the operation was attempted. Name identifies which
// deadline (e.g. "supplier deadline", "driver offer deadline").
type DeadlineExpiredError struct {
	Name     string
	Deadline time.Time
	Cause    error
}

// NewDeadlineExpiredError creates a DeadlineExpiredError without a cause.
func NewDeadlineExpiredError(name string, deadline time.Time) *DeadlineExpiredError {
	return &DeadlineExpiredError{Name: name, Deadline: deadline}
}

// NewDeadlineExpiredErrorWithCause creates a DeadlineExpiredError wrapping an
// underlying cause.
func NewDeadlineExpiredErrorWithCause(name string, deadline time.Time, cause error) *DeadlineExpiredError {
	return &DeadlineExpiredError{Name: name, Deadline: deadline, Cause: cause}
}

func (e *DeadlineExpiredError) Error() string {
	msg := fmt.Sprintf("%s: %s passed at %s", ErrDeadlineExpired, e.Name, e.Deadline.Format(time.RFC3339))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return sanitize(msg)
}

func (e *DeadlineExpiredError) Unwrap() error {
	return ErrDeadlineExpired
}

// InvalidStateError indicates that an object exists but is not in the state a
// transition requires. CurrentState is reported for caller diagnostics.
type InvalidStateError struct {
	Operation     string
	RequiredState string
	CurrentState  string
	Cause         error
}

// NewInvalidStateError creates an InvalidStateError without a cause.
func NewInvalidStateError(operation, requiredState, currentState string) *InvalidStateError {
	return &InvalidStateError{Operation: operation, RequiredState: requiredState, CurrentState: currentState}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping an
// underlying cause.
func NewInvalidStateErrorWithCause(operation, requiredState, currentState string, cause error) *InvalidStateError {
	return &InvalidStateError{
		Operation:     operation,
		RequiredState: requiredState,
		CurrentState:  currentState,
		Cause:         cause,
	}
}

func (e *InvalidStateError) Error() string {
	msg := fmt.Sprintf("%s: %s requires status %s, current status is %s",
		ErrInvalidState, e.Operation, e.RequiredState, e.CurrentState)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return sanitize(msg)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}
