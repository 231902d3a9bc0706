package backend

import (
	"context"

	"github.com/ytget/flashcards/internal/model"
)

// Generator defines the interface for turning a source URL into flashcards.
type Generator interface {
	Generate(ctx context.Context, sourceURL string) ([]model.Flashcard, error)
}
