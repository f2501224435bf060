package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Text fragments
const (
	AppTitle = "Poke Viewer"

	CounterLabelFormat = "Clicks: %d"
	CounterButtonText  = "+1"

	LoadingText       = "Fetching..."
	ErrorFallbackText = "Something went wrong"

	HeightLabelFormat = "Height: %s"
	WeightLabelFormat = "Weight: %s"

	MenuFile     = "File"
	MenuSettings = "Settings"
)

// Layout sizing
const (
	SpriteSize float32 = 192
)
