package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/flashcards/internal/model"
	"github.com/ytget/flashcards/internal/view"
)

func TestCardTile_StartsOnFront(t *testing.T) {
	test.NewApp()

	tile := NewCardTile(0, model.Flashcard{Front: "What is Go?", Back: "A language"}, nil)

	assert.False(t, tile.IsFlipped())
	assert.Equal(t, FrontMarker, tile.Marker())
	assert.Equal(t, "What is Go?", tile.Text())
}

func TestCardTile_TapWithoutOwnerFlipsLocally(t *testing.T) {
	test.NewApp()

	tile := NewCardTile(0, model.Flashcard{Front: "Q1", Back: "A1"}, nil)

	test.Tap(tile)
	assert.True(t, tile.IsFlipped())
	assert.Equal(t, BackMarker, tile.Marker())
	assert.Equal(t, "A1", tile.Text())

	test.Tap(tile)
	assert.False(t, tile.IsFlipped())
	assert.Equal(t, "Q1", tile.Text())
}

func TestCardTile_TapReportsIndex(t *testing.T) {
	test.NewApp()

	var tapped []int
	tile := NewCardTile(3, model.Flashcard{Front: "Q", Back: "A"}, func(index int) {
		tapped = append(tapped, index)
	})

	test.Tap(tile)

	assert.Equal(t, []int{3}, tapped)
	assert.False(t, tile.IsFlipped(), "owner decides the face")
}

func TestCardTile_ShowsTextAsSent(t *testing.T) {
	test.NewApp()

	tests := []struct {
		name  string
		front string
		back  string
	}{
		{"comparison", "Is a<b true when a=1?", "Yes, if b>1"},
		{"generics", "What does List<String> mean?", "A list of strings"},
		{"tag-like text", "Use <div> for blocks", "Tom &amp; Jerry"},
		{"padding", "  spaced  ", "\tline\nbreak"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := NewCardTile(0, model.Flashcard{Front: tt.front, Back: tt.back}, nil)
			assert.Equal(t, tt.front, tile.Text())

			tile.SetFlipped(true)
			assert.Equal(t, tt.back, tile.Text())
		})
	}
}

func TestCardGrid_Update(t *testing.T) {
	test.NewApp()

	grid := NewCardGrid(nil)
	snap := view.Snapshot{
		Status:    model.RequestStatusSuccess,
		RequestID: "req-1",
		Cards: []model.Flashcard{
			{Front: "Q1", Back: "A1"},
			{Front: "Q2", Back: "A2"},
		},
		Flipped: map[int]bool{1: true},
	}

	grid.Update(snap)
	tiles := grid.Tiles()
	if assert.Len(t, tiles, 2) {
		assert.False(t, tiles[0].IsFlipped())
		assert.True(t, tiles[1].IsFlipped())
		assert.Equal(t, "A2", tiles[1].Text())
	}

	// Same request: tiles are kept, only faces change
	snap.Flipped = map[int]bool{0: true}
	grid.Update(snap)
	assert.Same(t, tiles[0], grid.Tiles()[0])
	assert.True(t, grid.Tiles()[0].IsFlipped())
	assert.False(t, grid.Tiles()[1].IsFlipped())

	// New request with no cards clears the grid
	grid.Update(view.Snapshot{Status: model.RequestStatusLoading, RequestID: "req-2"})
	assert.Empty(t, grid.Tiles())
}

func TestCardGrid_LateResultReplacesTiles(t *testing.T) {
	test.NewApp()

	grid := NewCardGrid(nil)
	grid.Update(view.Snapshot{
		Status:    model.RequestStatusSuccess,
		RequestID: "req-2",
		Cards:     []model.Flashcard{{Front: "S", Back: "2"}},
	})
	require.Len(t, grid.Tiles(), 1)
	assert.Equal(t, "S", grid.Tiles()[0].Text())

	// an earlier request resolving last takes over with the same card count
	grid.Update(view.Snapshot{
		Status:    model.RequestStatusSuccess,
		RequestID: "req-1",
		Cards:     []model.Flashcard{{Front: "F", Back: "1"}},
	})
	require.Len(t, grid.Tiles(), 1)
	assert.Equal(t, "F", grid.Tiles()[0].Text())
}
