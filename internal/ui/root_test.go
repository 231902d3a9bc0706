package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/flashcards/internal/config"
	"github.com/ytget/flashcards/internal/model"
	"github.com/ytget/flashcards/internal/view"
)

// gatedGenerator blocks every request until the test releases it
type gatedGenerator struct {
	release chan result
}

type result struct {
	cards []model.Flashcard
	err   error
}

func newGatedGenerator() *gatedGenerator {
	return &gatedGenerator{release: make(chan result, 4)}
}

func (g *gatedGenerator) Generate(ctx context.Context, _ string) ([]model.Flashcard, error) {
	select {
	case r := <-g.release:
		return r.cards, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func newTestRoot(t *testing.T, gen *gatedGenerator) (*RootUI, *view.FlashcardView) {
	t.Helper()

	a := test.NewApp()
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	settings := config.NewSettings(a, &config.Config{
		BackendURL: config.DefaultBackendURL,
		ExportDir:  t.TempDir(),
	})
	settings.SetAutoRevealOnExport(false)

	v := view.New(gen)
	return NewRootUI(w, a, v, settings), v
}

func submit(ui *RootUI, url string) {
	ui.urlEntry.SetText(url)
	test.Tap(ui.generateBtn)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	assert.Eventually(t, cond, 2*time.Second, 10*time.Millisecond)
}

func TestRootUI_InitialState(t *testing.T) {
	ui, _ := newTestRoot(t, newGatedGenerator())

	assert.Equal(t, GenerateLabel, ui.generateBtn.Text)
	assert.False(t, ui.generateBtn.Disabled())
	assert.False(t, ui.spinner.Visible())
	assert.False(t, ui.errorLabel.Visible())
	assert.False(t, ui.resultsContainer.Visible())
	assert.Equal(t, URLPlaceholder, ui.urlEntry.PlaceHolder)
}

func TestRootUI_EmptyInputDoesNotSubmit(t *testing.T) {
	ui, v := newTestRoot(t, newGatedGenerator())

	submit(ui, "   ")

	assert.Equal(t, model.RequestStatusIdle, v.Snapshot().Status)
	waitFor(t, func() bool { return ui.Notification() == PleaseEnterURLMessage })
}

func TestRootUI_NonHTTPInputIsFlagged(t *testing.T) {
	ui, v := newTestRoot(t, newGatedGenerator())

	submit(ui, "youtube.com/watch?v=abc")

	assert.Equal(t, model.RequestStatusIdle, v.Snapshot().Status)
	waitFor(t, func() bool { return ui.Notification() != "" })
}

func TestRootUI_LoadingThenSuccess(t *testing.T) {
	gen := newGatedGenerator()
	ui, v := newTestRoot(t, gen)

	submit(ui, "https://youtube.com/watch?v=abc")

	// Loading is rendered before the backend answers
	assert.Equal(t, model.RequestStatusLoading, v.Snapshot().Status)
	waitFor(t, func() bool { return ui.generateBtn.Text == GeneratingLabel })
	assert.True(t, ui.generateBtn.Disabled())
	assert.True(t, ui.spinner.Visible())

	gen.release <- result{cards: []model.Flashcard{
		{Front: "Q1", Back: "A1"},
		{Front: "Q2", Back: "A2"},
	}}

	waitFor(t, func() bool { return ui.generateBtn.Text == GenerateLabel })
	waitFor(t, func() bool { return ui.resultsContainer.Visible() })
	assert.False(t, ui.generateBtn.Disabled())
	assert.False(t, ui.errorLabel.Visible())
	assert.Equal(t, fmt.Sprintf(CardsReadyFormat, 2), ui.headerLabel.Text)
	assert.Len(t, ui.cardGrid.Tiles(), 2)
	assert.False(t, ui.exportBtn.Disabled())
}

func TestRootUI_ErrorBanner(t *testing.T) {
	gen := newGatedGenerator()
	ui, _ := newTestRoot(t, gen)

	submit(ui, "https://example.com/article")
	gen.release <- result{err: errors.New("connection refused")}

	waitFor(t, func() bool { return ui.errorLabel.Visible() })
	assert.Contains(t, ui.errorLabel.Text, view.RequestFailureMessage)
	assert.False(t, ui.resultsContainer.Visible())
	assert.True(t, ui.exportBtn.Disabled())
}

func TestRootUI_TapFlipsCard(t *testing.T) {
	gen := newGatedGenerator()
	ui, v := newTestRoot(t, gen)

	submit(ui, "https://example.com/article")
	gen.release <- result{cards: []model.Flashcard{{Front: "Q1", Back: "A1"}}}
	waitFor(t, func() bool { return len(ui.cardGrid.Tiles()) == 1 })

	tile := ui.cardGrid.Tiles()[0]
	test.Tap(tile)

	assert.True(t, v.IsFlipped(0))
	waitFor(t, func() bool { return tile.IsFlipped() })
	assert.Equal(t, "A1", tile.Text())

	test.Tap(tile)
	assert.False(t, v.IsFlipped(0))
	waitFor(t, func() bool { return !tile.IsFlipped() })
}

func TestRootUI_ExportWritesFile(t *testing.T) {
	gen := newGatedGenerator()
	ui, _ := newTestRoot(t, gen)

	submit(ui, "https://example.com/article")
	gen.release <- result{cards: []model.Flashcard{{Front: "A", Back: "B"}}}
	waitFor(t, func() bool { return !ui.exportBtn.Disabled() })

	test.Tap(ui.exportBtn)

	path := ui.LastExportPath()
	require.NotEmpty(t, path)
	assert.Equal(t, view.ExportFileName, filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Front,Back\n1,\"A\",\"B\"", string(data))
}

func TestRootUI_CopyToClipboard(t *testing.T) {
	gen := newGatedGenerator()
	ui, _ := newTestRoot(t, gen)

	submit(ui, "https://example.com/article")
	gen.release <- result{cards: []model.Flashcard{{Front: "A", Back: "B"}}}
	waitFor(t, func() bool { return !ui.copyBtn.Disabled() })

	test.Tap(ui.copyBtn)

	assert.Equal(t, "Front,Back\n1,\"A\",\"B\"", ui.app.Clipboard().Content())
	waitFor(t, func() bool { return ui.Notification() == CopiedMessage })
}

func TestValidateURL(t *testing.T) {
	ui := &RootUI{}

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty allowed", "", false},
		{"https", "https://youtube.com/watch?v=abc", false},
		{"http", "http://example.com/article", false},
		{"no scheme", "example.com", true},
		{"ftp", "ftp://example.com/file", true},
		{"scheme only", "https://", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ui.validateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestRootUI_OpenExportBeforeExport(t *testing.T) {
	ui, _ := newTestRoot(t, newGatedGenerator())

	ui.onOpenExport()

	waitFor(t, func() bool { return ui.Notification() == NothingExportedMessage })
}
