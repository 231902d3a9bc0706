package model

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// GenerationRequest represents a single submission to the backend
type GenerationRequest struct {
	ID         string        // random token identifying the submission in logs
	URL        string        // source URL as submitted
	Status     RequestStatus // Loading until resolved
	Cards      []Flashcard   // cards returned on success
	LastError  string        // failure detail, never shown to the user
	Stale      bool          // resolved after a newer request was issued; informational
	StartedAt  time.Time     // when the request was issued
	FinishedAt time.Time     // when the request resolved

	done     chan struct{}
	doneOnce sync.Once
}

// NewGenerationRequest creates a loading request with a fresh token
func NewGenerationRequest(sourceURL string) *GenerationRequest {
	return &GenerationRequest{
		ID:        uuid.NewString(),
		URL:       sourceURL,
		Status:    RequestStatusLoading,
		StartedAt: time.Now(),
		done:      make(chan struct{}),
	}
}

// Done returns a channel closed once the request has resolved
func (gr *GenerationRequest) Done() <-chan struct{} {
	return gr.done
}

// Resolve records the outcome and closes the Done channel. Only the first
// call has any effect.
func (gr *GenerationRequest) Resolve(cards []Flashcard, err error) {
	gr.doneOnce.Do(func() {
		if err != nil {
			gr.Status = RequestStatusError
			gr.LastError = err.Error()
		} else {
			gr.Status = RequestStatusSuccess
			gr.Cards = CloneCards(cards)
		}
		gr.FinishedAt = time.Now()
		close(gr.done)
	})
}

// GetElapsedString returns the request duration as "1.2s", or "—" while in flight
func (gr *GenerationRequest) GetElapsedString() string {
	if gr.FinishedAt.IsZero() || gr.StartedAt.IsZero() {
		return "—"
	}
	return fmt.Sprintf("%.1fs", gr.FinishedAt.Sub(gr.StartedAt).Seconds())
}

// GetDisplayURL returns host and path without scheme, or the raw input when
// it does not parse as an absolute URL
func (gr *GenerationRequest) GetDisplayURL() string {
	raw := strings.TrimSpace(gr.URL)
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return raw
	}

	display := parsed.Host + strings.TrimSuffix(parsed.Path, "/")
	if parsed.RawQuery != "" {
		display += "?" + parsed.RawQuery
	}
	return display
}
