package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/flashcards/internal/view"
)

// CardGrid lays out the generated cards as a wrapping grid of tiles
type CardGrid struct {
	// Cards data
	requestID string
	tiles     []*CardTile

	// UI components
	grid      *fyne.Container
	container *container.Scroll

	// Callbacks
	onFlip func(index int)
}

// NewCardGrid creates an empty card grid. onFlip is called with the index
// of a tapped card.
func NewCardGrid(onFlip func(index int)) *CardGrid {
	cg := &CardGrid{
		tiles:  make([]*CardTile, 0),
		onFlip: onFlip,
	}
	cg.createUI()
	return cg
}

// createUI creates the user interface for the card grid
func (cg *CardGrid) createUI() {
	cg.grid = container.NewGridWrap(fyne.NewSize(CardTileWidth, CardTileHeight))
	cg.container = container.NewVScroll(cg.grid)
}

// Container returns the scrollable grid
func (cg *CardGrid) Container() fyne.CanvasObject {
	return cg.container
}

// Tiles returns the tiles currently displayed
func (cg *CardGrid) Tiles() []*CardTile {
	return cg.tiles
}

// Update renders snap. Tiles are rebuilt when a different request produced
// the cards; otherwise only the flip state is synced.
func (cg *CardGrid) Update(snap view.Snapshot) {
	if snap.RequestID != cg.requestID || len(snap.Cards) != len(cg.tiles) {
		cg.rebuild(snap)
	}

	for i, tile := range cg.tiles {
		tile.SetFlipped(snap.IsFlipped(i))
	}
}

// rebuild replaces all tiles with the cards from snap
func (cg *CardGrid) rebuild(snap view.Snapshot) {
	cg.requestID = snap.RequestID
	cg.tiles = make([]*CardTile, 0, len(snap.Cards))

	objects := make([]fyne.CanvasObject, 0, len(snap.Cards))
	for i, card := range snap.Cards {
		tile := NewCardTile(i, card, cg.onFlip)
		cg.tiles = append(cg.tiles, tile)
		objects = append(objects, tile)
	}

	cg.grid.Objects = objects
	cg.grid.Refresh()
	cg.container.ScrollToTop()

	if len(objects) > 0 {
		log.Printf("Card grid rebuilt: request=%s cards=%d", snap.RequestID, len(objects))
	}
}
