package view

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ytget/flashcards/internal/model"
	"github.com/ytget/flashcards/internal/platform"
)

// Export artifact
const (
	ExportFileName = "flashcards.csv"
	exportFilePerm = 0644
)

// exportableCards returns the current cards, or ErrNoCards when the view is
// not in a successful state with at least one card
func (v *FlashcardView) exportableCards() ([]model.Flashcard, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.status != model.RequestStatusSuccess || len(v.cards) == 0 {
		return nil, ErrNoCards
	}
	return model.CloneCards(v.cards), nil
}

// ExportCSV writes the current card sequence to w
func (v *FlashcardView) ExportCSV(w io.Writer) error {
	cards, err := v.exportableCards()
	if err != nil {
		return err
	}
	return WriteCSV(w, cards)
}

// ExportString returns the CSV text of the current card sequence
func (v *FlashcardView) ExportString() (string, error) {
	cards, err := v.exportableCards()
	if err != nil {
		return "", err
	}
	return EncodeCSV(cards), nil
}

// ExportFile writes flashcards.csv into dir, creating dir when needed, and
// returns the written path. An existing file is replaced.
func (v *FlashcardView) ExportFile(dir string) (string, error) {
	cards, err := v.exportableCards()
	if err != nil {
		return "", err
	}

	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, ExportFileName)
	if err := os.WriteFile(path, []byte(EncodeCSV(cards)), exportFilePerm); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", ExportFileName, err)
	}

	log.Printf("Exported %d flashcards to %s", len(cards), path)
	return path, nil
}
