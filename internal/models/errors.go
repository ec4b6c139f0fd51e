package models

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the service layer. The HTTP layer maps these
// onto status codes; everything else is a 500.
var (
	ErrCityNotFound   = errors.New("city not found")
	ErrPageNotFound   = errors.New("page not found")
	ErrDuplicateCity  = errors.New("a city with this name already exists")
	ErrDuplicateTitle = errors.New("a page with this title already exists in this city")
	ErrPageLimit      = errors.New("this city has reached its page limit (100 pages)")
)

// ValidationError reports a rejected input field. Never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// GenerationError wraps a failed or unparseable language-model call on a
// synchronous generation path. Failed attempts are never cached.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed during %s: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// IsGeneration reports whether err is a GenerationError.
func IsGeneration(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}
