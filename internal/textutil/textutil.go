// Package textutil lays card text out for terminal output.
package textutil

import (
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// Layout defaults
const (
	DefaultTerminalWidth = 80
	MinWrapWidth         = 10
	FallbackWrapWidth    = 40
)

// Wrap breaks text into lines no wider than width runes.
// Words longer than width are kept whole on their own line. Only whitespace
// is reflowed; every other character is kept as is.
func Wrap(text string, width int) []string {
	if width < MinWrapWidth {
		width = FallbackWrapWidth
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var result []string
	var currentLine string
	currentWidth := 0

	for _, word := range words {
		wordWidth := utf8.RuneCountInString(word)
		switch {
		case currentWidth == 0:
			currentLine = word
			currentWidth = wordWidth
		case currentWidth+1+wordWidth <= width:
			currentLine += " " + word
			currentWidth += 1 + wordWidth
		default:
			result = append(result, currentLine)
			currentLine = word
			currentWidth = wordWidth
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}
	return result
}

// Indent prefixes every line with prefix
func Indent(lines []string, prefix string) string {
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(prefix)
		b.WriteString(line)
	}
	return b.String()
}

// TerminalWidth returns the width of the terminal attached to f,
// or DefaultTerminalWidth when f is not a terminal.
func TerminalWidth(f *os.File) int {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return DefaultTerminalWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	return width
}
