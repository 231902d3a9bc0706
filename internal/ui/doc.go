package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the URL form to the flashcard view and renders its snapshots:
// the loading spinner, the error banner, the card grid and the export actions.
