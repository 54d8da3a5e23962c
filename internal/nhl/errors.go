package nhl

import (
	"errors"
	"fmt"
)

// ErrNoUpcomingGame reports that neither schedule window held a future game.
var ErrNoUpcomingGame = errors.New("no upcoming games found")

// StatusError captures a non-200 response from the upstream API. Callers
// treat it as "data absent" rather than a fatal condition.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status %d for %s", e.StatusCode, e.URL)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var sErr *StatusError
	if errors.As(err, &sErr) {
		return sErr, true
	}
	return nil, false
}

// SchemaError captures a payload that did not decode into the expected shape.
type SchemaError struct {
	URL string
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("unexpected payload from %s: %v", e.URL, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// AsSchemaError attempts to unwrap an error into a SchemaError.
func AsSchemaError(err error) (*SchemaError, bool) {
	var sErr *SchemaError
	if errors.As(err, &sErr) {
		return sErr, true
	}
	return nil, false
}
