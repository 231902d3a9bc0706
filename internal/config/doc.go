// Package config resolves the startup configuration (built-in defaults, the
// TOML config file, a .env file and FLASHCARDS_* environment variables) and
// exposes the runtime settings the desktop window persists through Fyne
// preferences.
package config
