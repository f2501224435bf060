package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It subscribes to the view state controller, renders the
// fetched record, the sprite and the click counter, and formats client
// errors into display strings at this boundary only.
