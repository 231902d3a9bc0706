package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ytget/flashcards/internal/model"
)

// Wire constants
const (
	GeneratePath = "/generate"
	URLFieldName = "url"

	// maxErrorBodyBytes bounds how much of a failed response ends up in logs
	maxErrorBodyBytes = 512
)

// Client talks to the flashcard generation backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets an overall request timeout; zero means no timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithTransport replaces the underlying round tripper (still logged)
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = NewLoggingRoundTripper(rt)
	}
}

// NewClient creates a client for the backend at baseURL (scheme + host,
// optionally with a path prefix)
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme must be http or https: %q", ErrInvalidBaseURL, baseURL)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("%w: missing host: %q", ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		baseURL: trimmed,
		httpClient: &http.Client{
			Transport: NewLoggingRoundTripper(nil),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized backend origin
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Endpoint returns the full generation endpoint URL
func (c *Client) Endpoint() string {
	return c.baseURL + GeneratePath
}

// generateResponse mirrors the backend body. Flashcards is decoded lazily so
// an unexpected shape degrades to an empty list instead of an error.
type generateResponse struct {
	Flashcards json.RawMessage `json:"flashcards"`
}

// Generate posts sourceURL to the backend and returns the generated cards.
// A response without a usable "flashcards" field yields an empty slice.
func (c *Client) Generate(ctx context.Context, sourceURL string) ([]model.Flashcard, error) {
	body, contentType, err := encodeForm(sourceURL)
	if err != nil {
		return nil, fmt.Errorf("%w: encode form: %v", ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), body)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %v", ErrRequestFailed, ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, fmt.Errorf("%w: %w: %d: %s", ErrRequestFailed, ErrBadStatus,
			resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w: %v", ErrRequestFailed, ErrInvalidResponse, err)
	}

	// Any valid JSON that is not an object carrying flashcards is an empty result
	var decoded generateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return []model.Flashcard{}, nil
	}

	return decodeCards(decoded.Flashcards), nil
}

// decodeCards tolerates a missing, null or mis-shaped field
func decodeCards(raw json.RawMessage) []model.Flashcard {
	cards := []model.Flashcard{}
	if len(raw) == 0 {
		return cards
	}
	if err := json.Unmarshal(raw, &cards); err != nil || cards == nil {
		return []model.Flashcard{}
	}
	return cards
}

// encodeForm builds the multipart body carrying the single url field
func encodeForm(sourceURL string) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField(URLFieldName, sourceURL); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return &buf, writer.FormDataContentType(), nil
}
