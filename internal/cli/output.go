package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/ytget/flashcards/internal/model"
	"github.com/ytget/flashcards/internal/textutil"
)

const (
	// cardIndent lines the wrapped text up after the "Q: " marker
	cardIndent = "   "
)

var (
	questionColor = color.New(color.FgMagenta, color.Bold)
	answerColor   = color.New(color.FgCyan)
	headerColor   = color.New(color.FgHiWhite, color.Bold)
	errorColor    = color.New(color.FgRed, color.Bold)
	noticeColor   = color.New(color.FgHiBlack)
)

// outputWidth returns the terminal width when w is a terminal
func outputWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		return textutil.TerminalWidth(f)
	}
	return textutil.DefaultTerminalWidth
}

// printCards writes a numbered, wrapped Q/A listing
func printCards(w io.Writer, cards []model.Flashcard) {
	width := outputWidth(w) - len(cardIndent) - 4

	headerColor.Fprintf(w, "%d Flashcards Ready\n\n", len(cards))
	for i, card := range cards {
		front := textutil.Wrap(card.Front, width)
		back := textutil.Wrap(card.Back, width)

		fmt.Fprintf(w, "%2d. ", i+1)
		questionColor.Fprint(w, "Q: ")
		fmt.Fprintln(w, front[0])
		if len(front) > 1 {
			fmt.Fprintln(w, textutil.Indent(front[1:], "    "+cardIndent))
		}

		fmt.Fprint(w, "    ")
		answerColor.Fprint(w, "A: ")
		fmt.Fprintln(w, back[0])
		if len(back) > 1 {
			fmt.Fprintln(w, textutil.Indent(back[1:], "    "+cardIndent))
		}
		fmt.Fprintln(w)
	}
}

// printError writes a failure line in red
func printError(w io.Writer, message string) {
	errorColor.Fprintln(w, message)
}

// printNotice writes a dimmed status line
func printNotice(w io.Writer, format string, args ...any) {
	noticeColor.Fprintf(w, format+"\n", args...)
}
