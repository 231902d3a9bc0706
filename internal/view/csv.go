package view

import (
	"io"
	"strconv"
	"strings"

	"github.com/ytget/flashcards/internal/model"
)

// CSV layout
const (
	CSVHeader   = "Front,Back"
	csvRowDelim = "\n"
)

// EncodeCSV renders cards as a header row followed by one
// `<n>,"<front>","<back>"` row per card, 1-based, newline separated and
// without a trailing newline. Front and back are always quoted and embedded
// quotes are doubled, so commas and line breaks survive a round trip.
// Text without double quotes is written byte for byte as received.
func EncodeCSV(cards []model.Flashcard) string {
	var b strings.Builder
	b.WriteString(CSVHeader)
	for i, card := range cards {
		b.WriteString(csvRowDelim)
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteByte(',')
		b.WriteString(quoteField(card.Front))
		b.WriteByte(',')
		b.WriteString(quoteField(card.Back))
	}
	return b.String()
}

// WriteCSV writes EncodeCSV(cards) to w
func WriteCSV(w io.Writer, cards []model.Flashcard) error {
	_, err := io.WriteString(w, EncodeCSV(cards))
	return err
}

func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
