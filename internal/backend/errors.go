package backend

import "errors"

var (
	// ErrRequestFailed is wrapped by every error returned from Generate
	ErrRequestFailed = errors.New("flashcard request failed")

	// ErrTransport is returned when the request never produced a response
	ErrTransport = errors.New("transport error")

	// ErrBadStatus is returned for any non-2xx response
	ErrBadStatus = errors.New("unexpected status code")

	// ErrInvalidResponse is returned when the body is not a JSON object
	ErrInvalidResponse = errors.New("invalid response body")

	// ErrInvalidBaseURL is returned by NewClient for an unusable origin
	ErrInvalidBaseURL = errors.New("invalid backend URL")
)
