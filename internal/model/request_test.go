package model

import (
	"errors"
	"testing"
	"time"
)

func TestNewGenerationRequest(t *testing.T) {
	req := NewGenerationRequest("https://example.com/article")

	if req.ID == "" {
		t.Error("Expected request ID to be set")
	}

	if req.Status != RequestStatusLoading {
		t.Errorf("Expected status to be Loading, got %s", req.Status)
	}

	if req.StartedAt.IsZero() {
		t.Error("Expected StartedAt to be set")
	}

	other := NewGenerationRequest("https://example.com/article")
	if other.ID == req.ID {
		t.Errorf("Expected distinct request IDs, both were %s", req.ID)
	}
}

func TestGenerationRequest_Resolve(t *testing.T) {
	tests := []struct {
		name           string
		cards          []Flashcard
		err            error
		expectedStatus RequestStatus
		expectedCards  int
		expectedError  string
	}{
		{
			name:           "success with cards",
			cards:          []Flashcard{{Front: "Q1", Back: "A1"}, {Front: "Q2", Back: "A2"}},
			expectedStatus: RequestStatusSuccess,
			expectedCards:  2,
		},
		{
			name:           "success without cards",
			expectedStatus: RequestStatusSuccess,
		},
		{
			name:           "failure",
			err:            errors.New("connection refused"),
			expectedStatus: RequestStatusError,
			expectedError:  "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewGenerationRequest("https://example.com")
			req.Resolve(tt.cards, tt.err)

			select {
			case <-req.Done():
			default:
				t.Fatal("Done channel should be closed after Resolve")
			}

			if req.Status != tt.expectedStatus {
				t.Errorf("Status = %s, expected %s", req.Status, tt.expectedStatus)
			}
			if len(req.Cards) != tt.expectedCards {
				t.Errorf("len(Cards) = %d, expected %d", len(req.Cards), tt.expectedCards)
			}
			if req.LastError != tt.expectedError {
				t.Errorf("LastError = %q, expected %q", req.LastError, tt.expectedError)
			}
			if req.FinishedAt.IsZero() {
				t.Error("Expected FinishedAt to be set")
			}
		})
	}
}

func TestGenerationRequest_ResolveOnce(t *testing.T) {
	req := NewGenerationRequest("https://example.com")
	req.Resolve([]Flashcard{{Front: "Q", Back: "A"}}, nil)
	req.Resolve(nil, errors.New("late failure"))

	if req.Status != RequestStatusSuccess {
		t.Errorf("Second Resolve should be ignored, status = %s", req.Status)
	}
	if req.LastError != "" {
		t.Errorf("Second Resolve should be ignored, LastError = %q", req.LastError)
	}
}

func TestGenerationRequest_GetElapsedString(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		finished time.Time
		expected string
	}{
		{time.Time{}, "—"},
		{start.Add(1500 * time.Millisecond), "1.5s"},
		{start.Add(42 * time.Second), "42.0s"},
	}

	for _, test := range tests {
		req := &GenerationRequest{StartedAt: start, FinishedAt: test.finished}
		result := req.GetElapsedString()
		if result != test.expected {
			t.Errorf("GetElapsedString() with FinishedAt=%v = %s, expected %s", test.finished, result, test.expected)
		}
	}
}

func TestGenerationRequest_GetDisplayURL(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://youtube.com/watch?v=123", "youtube.com/watch?v=123"},
		{"https://example.com/posts/go/", "example.com/posts/go"},
		{"  https://example.com  ", "example.com"},
		{"not a url", "not a url"},
		{"", ""},
	}

	for _, test := range tests {
		req := &GenerationRequest{URL: test.url}
		result := req.GetDisplayURL()
		if result != test.expected {
			t.Errorf("GetDisplayURL() with url='%s' = '%s', expected '%s'", test.url, result, test.expected)
		}
	}
}

func TestCloneCards(t *testing.T) {
	original := []Flashcard{{Front: "Q", Back: "A"}}
	clone := CloneCards(original)
	clone[0].Front = "changed"

	if original[0].Front != "Q" {
		t.Errorf("CloneCards should copy, original mutated to %q", original[0].Front)
	}

	empty := CloneCards(nil)
	if empty == nil || len(empty) != 0 {
		t.Errorf("CloneCards(nil) = %#v, expected empty non-nil slice", empty)
	}
}
