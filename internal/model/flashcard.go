package model

// Flashcard is a single question/answer pair as returned by the backend.
// Cards carry no identifier; they are addressed by position in the sequence.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// CloneCards returns a copy of cards so callers cannot alias view state.
// A nil or empty input yields an empty, non-nil slice.
func CloneCards(cards []Flashcard) []Flashcard {
	out := make([]Flashcard, len(cards))
	copy(out, cards)
	return out
}
