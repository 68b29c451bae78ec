package models

import (
	"errors"
	"fmt"
)

var (
	// ErrLocationNotFound is returned when geocoding yields no candidates.
	ErrLocationNotFound = errors.New("location not found")
	// ErrInvalidStride is returned when an hourly sample step is not positive.
	ErrInvalidStride = errors.New("interval must be a positive number")
)

// NetworkError reports a failed transport call or a non-2xx response.
// StatusCode is zero when no response was received.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("could not connect to API: status %d", e.StatusCode)
	}
	return fmt.Sprintf("could not connect to API: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ParseError reports a payload that is not valid JSON or lacks expected fields.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed %s response: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
