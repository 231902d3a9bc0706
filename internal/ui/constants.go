package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window texts
const (
	AppTitle           = "AI Flashcard Generator"
	AppSubtitle        = "Paste any YouTube video or article → get perfect flashcards instantly"
	URLPlaceholder     = "https://youtube.com/watch?v=... or any article URL"
	GenerateLabel      = "Generate"
	GeneratingLabel    = "Generating..."
	CardsReadyFormat   = "%d Flashcards Ready"
	ExportCSVLabel     = "Export CSV"
	CopyClipboardLabel = "Copy to Clipboard"
	FooterHint         = "Click any card to flip • Export and import into Anki/Quizlet"
	OpenExportLabel    = "Open Last Export"
	EmptyResultMessage = "No flashcards were generated for this URL"
)

// Card faces
const (
	FrontMarker = "Q"
	BackMarker  = "A"
)

// Notifications
const (
	PleaseEnterURLMessage  = "Please enter a URL"
	ExportedFormat         = "Exported to %s"
	CopiedMessage          = "CSV copied to clipboard"
	SettingsSavedMessage   = "Settings saved"
	ExportFailedFormat     = "Export failed: %v"
	RevealFailedFormat     = "Could not open file manager: %v"
	OpenFailedFormat       = "Could not open file: %v"
	NothingExportedMessage = "Nothing exported yet"
)

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconCopy     = "📋"
	IconFile     = "📄"
	IconError    = "❌"
)

// Layout sizing (card grid)
const (
	CardTileWidth  float32 = 260
	CardTileHeight float32 = 170
	CardCornerRad  float32 = 12
	MarkerSize     float32 = 28
)

// Window sizing
const (
	WindowWidth  float32 = 900
	WindowHeight float32 = 680
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 320
)

// Delays
const (
	NotificationAutoHide = 4 * time.Second
)
