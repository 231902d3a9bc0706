package view

// Package view holds the flashcard form state machine independent of any
// toolkit: Idle -> Loading -> Success|Error -> Loading ... It owns the card
// sequence, the per-card flip flags and CSV export. Renderers subscribe with
// OnChange and draw from Snapshot values.
