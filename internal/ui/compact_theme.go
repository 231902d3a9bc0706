package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette
var (
	ColorPurple     = color.RGBA{R: 124, G: 58, B: 237, A: 255}
	ColorPink       = color.RGBA{R: 219, G: 39, B: 119, A: 255}
	ColorCardFront  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorCardDark   = color.RGBA{R: 38, G: 30, B: 56, A: 255}
	ColorCardBorder = color.RGBA{R: 221, G: 214, B: 254, A: 255}
)

// CompactTheme defines a compact theme for the UI with reduced padding and the
// purple/pink palette
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 220, G: 38, B: 38, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 245, G: 158, B: 11, A: 255}
	case theme.ColorNamePrimary:
		return ColorPurple
	case theme.ColorNameFocus:
		return color.RGBA{R: 124, G: 58, B: 237, A: 96}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 24, G: 18, B: 38, A: 255}
		}
		return color.RGBA{R: 250, G: 245, B: 255, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 22 // Title is the only heading
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 6
	case theme.SizeNameSelectionRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}
