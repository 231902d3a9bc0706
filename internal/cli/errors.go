package cli

import "errors"

// ErrGenerationFailed is returned by generate when the backend request failed
var ErrGenerationFailed = errors.New("flashcard generation failed")
