package config

import (
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyBackendURL       = "backend_url"
	KeyExportDir        = "export_directory"
	KeyAutoRevealExport = "auto_reveal_on_export"
)

// Settings manages runtime configuration changed from the settings dialog.
// Values not set by the user fall back to the startup Config.
type Settings struct {
	app      fyne.App
	defaults *Config
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App, defaults *Config) *Settings {
	if defaults == nil {
		defaults = Default()
	}
	return &Settings{app: app, defaults: defaults}
}

// GetBackendURL returns the configured backend origin
func (s *Settings) GetBackendURL() string {
	value := s.app.Preferences().String(KeyBackendURL)
	if value == "" {
		return s.defaults.BackendURL
	}
	return value
}

// SetBackendURL sets the backend origin; an empty value restores the default
func (s *Settings) SetBackendURL(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		s.app.Preferences().RemoveValue(KeyBackendURL)
		return nil
	}
	if err := ValidateBackendURL(value); err != nil {
		return err
	}
	s.app.Preferences().SetString(KeyBackendURL, strings.TrimRight(value, "/"))
	return nil
}

// GetExportDirectory returns the configured export directory
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		return s.defaults.ResolveExportDir()
	}
	return dir
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		s.app.Preferences().RemoveValue(KeyExportDir)
		return
	}
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetAutoRevealOnExport returns whether to reveal exported files
func (s *Settings) GetAutoRevealOnExport() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealExport, s.defaults.AutoReveal)
}

// SetAutoRevealOnExport sets whether to reveal exported files
func (s *Settings) SetAutoRevealOnExport(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealExport, autoReveal)
}
