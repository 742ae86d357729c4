package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that a write lost a race against a concurrent update.
var ErrConflict = errors.New("resource was modified concurrently")

// ErrInvalidPeriod indicates a missing, malformed or inverted reporting period.
var ErrInvalidPeriod = errors.New("invalid period")

// ErrUnsupportedCountry is matched by every UnsupportedCountryError.
var ErrUnsupportedCountry = errors.New("unsupported country")

// UnsupportedCountryError is returned when no declaration format exists for a country.
type UnsupportedCountryError struct {
	Country string
}

func (e *UnsupportedCountryError) Error() string {
	return fmt.Sprintf("no VAT declaration format for country %q", e.Country)
}

// Is lets errors.Is(err, ErrUnsupportedCountry) match.
func (e *UnsupportedCountryError) Is(target error) bool {
	return target == ErrUnsupportedCountry
}

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}
