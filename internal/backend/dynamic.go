package backend

import (
	"context"

	"github.com/ytget/flashcards/internal/model"
)

// OriginFunc returns the backend origin to use for the next request
type OriginFunc func() string

// DynamicGenerator builds a Client per request from the current origin, so
// an origin changed at runtime applies to the next submission.
type DynamicGenerator struct {
	origin OriginFunc
	opts   []Option
}

// NewDynamicGenerator creates a generator that resolves its origin on every call
func NewDynamicGenerator(origin OriginFunc, opts ...Option) *DynamicGenerator {
	return &DynamicGenerator{origin: origin, opts: opts}
}

// Generate resolves the origin and delegates to a Client
func (g *DynamicGenerator) Generate(ctx context.Context, sourceURL string) ([]model.Flashcard, error) {
	client, err := NewClient(g.origin(), g.opts...)
	if err != nil {
		return nil, err
	}
	return client.Generate(ctx, sourceURL)
}
