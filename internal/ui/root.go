package ui

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/flashcards/internal/config"
	"github.com/ytget/flashcards/internal/model"
	"github.com/ytget/flashcards/internal/platform"
	"github.com/ytget/flashcards/internal/view"
)

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	app      fyne.App
	view     *view.FlashcardView
	settings *config.Settings

	// Form
	urlEntry    *widget.Entry
	generateBtn *widget.Button
	spinner     *widget.ProgressBarInfinite
	errorLabel  *widget.Label

	// Results
	resultsContainer *fyne.Container
	headerLabel      *widget.Label
	exportBtn        *widget.Button
	copyBtn          *widget.Button
	cardGrid         *CardGrid

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationMu        sync.Mutex
	notificationTimer     *time.Timer

	lastExportPath string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, v *view.FlashcardView, settings *config.Settings) *RootUI {
	ui := &RootUI{
		window:   window,
		app:      app,
		view:     v,
		settings: settings,
	}

	window.SetTitle(AppTitle)

	ui.setupUI()

	// Listeners may fire from the request goroutine; always render the
	// latest state on the UI thread rather than the snapshot passed in.
	v.OnChange(func(view.Snapshot) {
		fyne.Do(ui.refresh)
	})
	ui.refresh()

	log.Printf("RootUI initialized: backend=%s", settings.GetBackendURL())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	titleLabel := widget.NewRichTextFromMarkdown("# " + AppTitle)
	for _, seg := range titleLabel.Segments {
		if text, ok := seg.(*widget.TextSegment); ok {
			text.Style.Alignment = fyne.TextAlignCenter
		}
	}
	subtitleLabel := widget.NewLabelWithStyle(AppSubtitle, fyne.TextAlignCenter, fyne.TextStyle{})
	subtitleLabel.Wrapping = fyne.TextWrapWord

	// Create URL entry
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(URLPlaceholder)
	ui.urlEntry.Validator = ui.validateURL
	// Trigger generation when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onGenerateClick()
	}

	ui.generateBtn = widget.NewButton(GenerateLabel, ui.onGenerateClick)
	ui.generateBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	formRow := container.NewBorder(nil, nil, settingsBtn, ui.generateBtn, ui.urlEntry)

	ui.spinner = widget.NewProgressBarInfinite()
	ui.spinner.Hide()

	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorLabel.Hide()

	// Create notification panel under the form (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationLabel.Truncation = fyne.TextTruncateEllipsis
	ui.notificationContainer = container.NewPadded(ui.notificationLabel)
	ui.notificationContainer.Hide()

	top := container.NewVBox(
		titleLabel,
		subtitleLabel,
		formRow,
		ui.spinner,
		ui.errorLabel,
		ui.notificationContainer,
	)

	// Results header with export actions
	ui.headerLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.exportBtn = widget.NewButton(IconFile+" "+ExportCSVLabel, ui.onExportClick)
	ui.exportBtn.Importance = widget.HighImportance
	ui.copyBtn = widget.NewButton(IconCopy+" "+CopyClipboardLabel, ui.onCopyClick)

	header := container.NewBorder(nil, nil, ui.headerLabel, container.NewHBox(ui.exportBtn, ui.copyBtn))

	ui.cardGrid = NewCardGrid(ui.onFlip)

	footer := widget.NewLabelWithStyle(FooterHint, fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	ui.resultsContainer = container.NewBorder(header, footer, nil, nil, ui.cardGrid.Container())
	ui.resultsContainer.Hide()

	content := container.NewBorder(
		container.NewPadded(top), // top
		nil,                      // bottom
		nil,                      // left
		nil,                      // right
		container.NewPadded(ui.resultsContainer),
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem("Settings", ui.onShowSettings)
	exportItem := fyne.NewMenuItem(ExportCSVLabel, ui.onExportClick)
	copyItem := fyne.NewMenuItem(CopyClipboardLabel, ui.onCopyClick)
	openItem := fyne.NewMenuItem(OpenExportLabel, ui.onOpenExport)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu("File", exportItem, copyItem, openItem, fyne.NewMenuItemSeparator(), settingsItem),
	)

	ui.window.SetMainMenu(mainMenu)
}

// validateURL flags input that is not an absolute http(s) URL
func (ui *RootUI) validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed
	}

	parsedURL, err := url.Parse(strings.TrimSpace(input))
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("URL must include a host")
	}

	return nil
}

// onGenerateClick handles the generate button click
func (ui *RootUI) onGenerateClick() {
	urlText := strings.TrimSpace(ui.urlEntry.Text)
	if urlText == "" {
		ui.showNotification(PleaseEnterURLMessage)
		return
	}

	if err := ui.validateURL(urlText); err != nil {
		ui.showNotification(err.Error())
		return
	}

	// Clean URL from any special characters that might cause display issues
	cleanURL := strings.ReplaceAll(urlText, "\n", "")
	cleanURL = strings.ReplaceAll(cleanURL, "\r", "")
	cleanURL = strings.ReplaceAll(cleanURL, "\t", " ")
	cleanURL = strings.TrimSpace(cleanURL)

	log.Printf("Processing URL: %s", cleanURL)

	ui.hideNotification()
	if _, err := ui.view.Submit(cleanURL); err != nil {
		if errors.Is(err, view.ErrEmptyURL) {
			ui.showNotification(PleaseEnterURLMessage)
			return
		}
		log.Printf("Submit failed: %v", err)
		ui.showNotification(err.Error())
	}
}

// onFlip flips the tapped card
func (ui *RootUI) onFlip(index int) {
	revealed := ui.view.ToggleFlip(index)
	log.Printf("Card %d flipped: revealed=%v", index, revealed)
}

// refresh renders the current view state. Must run on the UI thread.
func (ui *RootUI) refresh() {
	snap := ui.view.Snapshot()

	if snap.Status.IsActive() {
		ui.generateBtn.SetText(GeneratingLabel)
		ui.generateBtn.Disable()
		ui.spinner.Show()
		ui.spinner.Start()
	} else {
		ui.generateBtn.SetText(GenerateLabel)
		ui.generateBtn.Enable()
		ui.spinner.Stop()
		ui.spinner.Hide()
	}

	if snap.Status == model.RequestStatusError && snap.Error != "" {
		ui.errorLabel.SetText(IconError + " " + snap.Error)
		ui.errorLabel.Show()
	} else {
		ui.errorLabel.SetText("")
		ui.errorLabel.Hide()
	}

	ui.cardGrid.Update(snap)
	if snap.CardCount() > 0 {
		ui.headerLabel.SetText(fmt.Sprintf(CardsReadyFormat, snap.CardCount()))
		ui.resultsContainer.Show()
	} else {
		ui.headerLabel.SetText("")
		ui.resultsContainer.Hide()
	}

	if snap.CanExport() {
		ui.exportBtn.Enable()
		ui.copyBtn.Enable()
	} else {
		ui.exportBtn.Disable()
		ui.copyBtn.Disable()
	}
}

// onExportClick writes the CSV into the export directory
func (ui *RootUI) onExportClick() {
	dir := ui.settings.GetExportDirectory()

	path, err := ui.view.ExportFile(dir)
	if err != nil {
		log.Printf("Export to %s failed: %v", dir, err)
		ui.showNotification(fmt.Sprintf(ExportFailedFormat, err))
		return
	}

	ui.lastExportPath = path
	ui.showNotification(fmt.Sprintf(ExportedFormat, path))

	if ui.settings.GetAutoRevealOnExport() {
		ui.onRevealFile(path)
	}
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	go func() {
		if err := platform.OpenFileInManager(filePath); err != nil {
			log.Printf("Error revealing file %s: %v", filePath, err)
			ui.showNotification(fmt.Sprintf(RevealFailedFormat, err))
			return
		}
		log.Printf("File revealed successfully: %s", filePath)
	}()
}

// onOpenExport opens the last exported CSV with the default application
func (ui *RootUI) onOpenExport() {
	if ui.lastExportPath == "" {
		ui.showNotification(NothingExportedMessage)
		return
	}

	path := ui.lastExportPath
	go func() {
		if err := platform.OpenFileWithDefaultApp(path); err != nil {
			log.Printf("Error opening file %s: %v", path, err)
			ui.showNotification(fmt.Sprintf(OpenFailedFormat, err))
			return
		}
		log.Printf("File opened successfully: %s", path)
	}()
}

// onCopyClick copies the CSV text to the clipboard
func (ui *RootUI) onCopyClick() {
	csvText, err := ui.view.ExportString()
	if err != nil {
		log.Printf("Copy to clipboard failed: %v", err)
		ui.showNotification(fmt.Sprintf(ExportFailedFormat, err))
		return
	}

	ui.app.Clipboard().SetContent(csvText)
	ui.showNotification(CopiedMessage)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, func() {
		ui.showNotification(SettingsSavedMessage)
	})
}

// showNotification displays a message in the notification panel under the
// form and hides it again after NotificationAutoHide.
func (ui *RootUI) showNotification(message string) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil {
		return
	}

	ui.notificationMu.Lock()
	if ui.notificationTimer != nil {
		ui.notificationTimer.Stop()
	}
	ui.notificationTimer = time.AfterFunc(NotificationAutoHide, ui.hideNotification)
	ui.notificationMu.Unlock()

	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationContainer.Hide()
	})
}

// LastExportPath returns the path of the most recent CSV export
func (ui *RootUI) LastExportPath() string {
	return ui.lastExportPath
}

// Notification returns the text of the notification panel
func (ui *RootUI) Notification() string {
	if !ui.notificationContainer.Visible() {
		return ""
	}
	return ui.notificationLabel.Text
}
