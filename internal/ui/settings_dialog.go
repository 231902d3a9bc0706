package ui

import (
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/flashcards/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	backendEntry    *widget.Entry
	exportDirEntry  *widget.Entry
	autoRevealCheck *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, window, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Backend origin
	sd.backendEntry = widget.NewEntry()
	sd.backendEntry.SetPlaceHolder(config.DefaultBackendURL)
	sd.backendEntry.Validator = func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil // Empty restores the default
		}
		return config.ValidateBackendURL(s)
	}

	// Export directory selection
	sd.exportDirEntry = widget.NewEntry()
	sd.exportDirEntry.SetPlaceHolder("Export directory path")

	browseDirBtn := widget.NewButton("Browse", sd.onBrowseDirectory)
	exportDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.exportDirEntry)

	sd.autoRevealCheck = widget.NewCheck("Reveal exported file in file manager", nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel("Backend"),
		widget.NewSeparator(),

		widget.NewLabel("Backend URL:"),
		sd.backendEntry,

		widget.NewSeparator(),
		widget.NewLabel("Export"),
		widget.NewSeparator(),

		widget.NewLabel("Export Directory:"),
		exportDirRow,
		sd.autoRevealCheck,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.backendEntry.SetText(sd.settings.GetBackendURL())
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnExport())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.exportDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if err := sd.settings.SetBackendURL(sd.backendEntry.Text); err != nil {
		log.Printf("Rejected backend URL %q: %v", sd.backendEntry.Text, err)
		dialog.ShowError(err, sd.window)
		return
	}

	sd.settings.SetExportDirectory(sd.exportDirEntry.Text)
	sd.settings.SetAutoRevealOnExport(sd.autoRevealCheck.Checked)

	log.Printf("Settings saved: backend=%s export_dir=%s auto_reveal=%v",
		sd.settings.GetBackendURL(), sd.settings.GetExportDirectory(), sd.settings.GetAutoRevealOnExport())

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
