package view

import "errors"

// RequestFailureMessage is the only text a user sees for a failed request.
// The underlying cause is logged.
const RequestFailureMessage = "Backend error – check terminal. Common: missing GROQ_API_KEY or yt-dlp issue"

var (
	// ErrEmptyURL is returned by Submit for blank input
	ErrEmptyURL = errors.New("url is required")

	// ErrNoCards is returned by the export functions when there is nothing to export
	ErrNoCards = errors.New("no flashcards to export")
)
