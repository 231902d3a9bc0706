package model

// Package model defines the domain data shared across the app: flashcards,
// request status values and the generation request lifecycle. Structures are
// plain data; state transitions are driven by the view package.
