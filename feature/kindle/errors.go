package kindle

import (
	"errors"
	"fmt"
)

var (
	// ErrCredential is returned when the session cookie is missing or unusable.
	ErrCredential = errors.New("kindle cookie is missing or invalid")
	// ErrUnauthorized is wrapped by FetchError when upstream rejects the session.
	ErrUnauthorized = errors.New("kindle session rejected")
)

// FetchError reports a failed upstream request.
type FetchError struct {
	// Op names the request ("html", "api" or "fetch" for the combined result).
	Op string
	// URL is the requested address.
	URL string
	// Status is the HTTP status code, zero when no response was received.
	Status int
	// Err is the underlying cause.
	Err error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("kindle %s request to %s failed with status %d: %v", e.Op, e.URL, e.Status, e.Err)
	}
	return fmt.Sprintf("kindle %s request to %s failed: %v", e.Op, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
