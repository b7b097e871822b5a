package apperrors

import "errors"

// Sentinel errors for the expected business conditions. Services return
// these (usually wrapped in a CustomError carrying the human-readable
// message); the HTTP layer maps them onto transport status codes.
var (
	// Business-rule conditions, all surfaced as 400.
	ErrNotFound        = errors.New("resource not found")
	ErrAlreadyExists   = errors.New("resource already exists")
	ErrConflict        = errors.New("conflict")
	ErrValidation      = errors.New("validation failed")
	ErrNothingToUpdate = errors.New("nothing to update")

	// Authentication, surfaced as 401 with a uniform message.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
)

// CustomError attaches a caller-facing message to a sentinel error.
type CustomError struct {
	Err     error
	Message string
}

func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewNotFoundError wraps ErrNotFound with a message.
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrNotFound, Message: message}
}

// NewAlreadyExistsError wraps ErrAlreadyExists with a message.
func NewAlreadyExistsError(message string) error {
	return &CustomError{Err: ErrAlreadyExists, Message: message}
}

// NewConflictError wraps ErrConflict with a message.
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewValidationError wraps ErrValidation with a message.
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidation, Message: message}
}

// IsBusinessError reports whether the error is one of the expected
// business conditions that map to a 400 response.
func IsBusinessError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAlreadyExists) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNothingToUpdate)
}
