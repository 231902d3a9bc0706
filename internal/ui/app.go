package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/flashcards/internal/backend"
	"github.com/ytget/flashcards/internal/config"
	"github.com/ytget/flashcards/internal/view"
)

const (
	AppID = "com.ytget.flashcards"
)

// NewGenerator returns a generator that follows the backend URL in settings
func NewGenerator(settings *config.Settings, cfg *config.Config) (backend.Generator, error) {
	timeout, err := cfg.Timeout()
	if err != nil {
		return nil, err
	}
	return backend.NewDynamicGenerator(settings.GetBackendURL, backend.WithTimeout(timeout)), nil
}

// Run opens the main window and blocks until it is closed
func Run(cfg *config.Config, version string) error {
	log.Printf("Flashcards v%s starting...", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppTitle, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp, cfg)
	generator, err := NewGenerator(settings, cfg)
	if err != nil {
		return err
	}

	rootUI := NewRootUI(myWindow, myApp, view.New(generator), settings)
	myWindow.SetTitle(windowTitle)
	log.Printf("Export directory: %s", rootUI.settings.GetExportDirectory())

	// Show and run
	myWindow.ShowAndRun()
	return nil
}
