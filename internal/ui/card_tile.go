package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/flashcards/internal/model"
)

// Face colors
var (
	frontFill = ColorCardFront
	backFill  = color.RGBA{R: 252, G: 231, B: 243, A: 255}
)

// CardTile is a single flippable card. It shows the question until tapped,
// then the answer on the accent color.
type CardTile struct {
	widget.BaseWidget

	index   int
	front   string
	back    string
	flipped bool

	onTap func(index int)

	// UI components
	background *canvas.Rectangle
	marker     *canvas.Text
	body       *widget.Label
}

// NewCardTile creates a tile for the card at index
func NewCardTile(index int, card model.Flashcard, onTap func(index int)) *CardTile {
	ct := &CardTile{
		index: index,
		front: card.Front,
		back:  card.Back,
		onTap: onTap,
	}
	ct.ExtendBaseWidget(ct)
	ct.createUI()
	ct.updateFace()
	return ct
}

// createUI creates the UI components
func (ct *CardTile) createUI() {
	ct.background = canvas.NewRectangle(frontFill)
	ct.background.CornerRadius = CardCornerRad
	ct.background.StrokeColor = ColorCardBorder
	ct.background.StrokeWidth = 1

	ct.marker = canvas.NewText(FrontMarker, ColorPurple)
	ct.marker.TextStyle = fyne.TextStyle{Bold: true}
	ct.marker.TextSize = MarkerSize

	ct.body = widget.NewLabel("")
	ct.body.Wrapping = fyne.TextWrapWord
	ct.body.Alignment = fyne.TextAlignCenter
}

// updateFace syncs the visible face with the flipped flag
func (ct *CardTile) updateFace() {
	if ct.flipped {
		ct.background.FillColor = backFill
		ct.background.StrokeColor = ColorPink
		ct.marker.Text = BackMarker
		ct.marker.Color = ColorPink
		ct.body.SetText(ct.back)
		return
	}
	ct.background.FillColor = frontFill
	ct.background.StrokeColor = ColorCardBorder
	ct.marker.Text = FrontMarker
	ct.marker.Color = ColorPurple
	ct.body.SetText(ct.front)
}

// Index returns the position of the card in the generated sequence
func (ct *CardTile) Index() int {
	return ct.index
}

// IsFlipped reports whether the answer face is showing
func (ct *CardTile) IsFlipped() bool {
	return ct.flipped
}

// Marker returns the face marker currently shown ("Q" or "A")
func (ct *CardTile) Marker() string {
	return ct.marker.Text
}

// Text returns the text currently shown on the tile
func (ct *CardTile) Text() string {
	return ct.body.Text
}

// SetFlipped shows the answer face when flipped is true
func (ct *CardTile) SetFlipped(flipped bool) {
	if ct.flipped == flipped {
		return
	}
	ct.flipped = flipped
	ct.updateFace()
	ct.Refresh()
}

// Tapped flips the card through the owner callback
func (ct *CardTile) Tapped(_ *fyne.PointEvent) {
	if ct.onTap != nil {
		ct.onTap(ct.index)
		return
	}
	ct.SetFlipped(!ct.flipped)
}

// Cursor shows a pointer over the tile on desktop
func (ct *CardTile) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// MinSize keeps every tile the same size inside the grid
func (ct *CardTile) MinSize() fyne.Size {
	return fyne.NewSize(CardTileWidth, CardTileHeight)
}

// CreateRenderer creates the widget renderer
func (ct *CardTile) CreateRenderer() fyne.WidgetRenderer {
	header := container.NewHBox(ct.marker)
	content := container.NewPadded(container.NewBorder(header, nil, nil, nil, container.NewVScroll(ct.body)))
	return &cardTileRenderer{
		tile:    ct,
		objects: []fyne.CanvasObject{ct.background, content},
		content: content,
	}
}

// cardTileRenderer renders the card tile widget
type cardTileRenderer struct {
	tile    *CardTile
	objects []fyne.CanvasObject
	content *fyne.Container
}

// Layout arranges the components
func (r *cardTileRenderer) Layout(size fyne.Size) {
	r.tile.background.Resize(size)
	r.content.Resize(size)
}

// MinSize returns the minimum size
func (r *cardTileRenderer) MinSize() fyne.Size {
	return fyne.NewSize(CardTileWidth, CardTileHeight)
}

// Refresh refreshes the renderer
func (r *cardTileRenderer) Refresh() {
	r.tile.background.Refresh()
	r.tile.marker.Refresh()
	r.tile.body.Refresh()
	r.content.Refresh()
}

// Objects returns the container objects
func (r *cardTileRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy cleans up the renderer
func (r *cardTileRenderer) Destroy() {}
