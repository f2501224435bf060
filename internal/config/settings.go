package config

import (
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeySpecies = "default_species"
)

// Default values
const (
	DefaultSpecies = "mewtwo"
)

// Settings manages per-user application preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetSpecies returns the species fetched on startup
func (s *Settings) GetSpecies() string {
	species := s.app.Preferences().String(KeySpecies)
	if species == "" {
		s.SetSpecies(DefaultSpecies)
		return DefaultSpecies
	}
	return species
}

// SetSpecies stores the startup species. The API expects lowercase
// identifiers, so the value is normalized before saving. The new species
// applies at the next launch; the running session keeps its single fetch.
func (s *Settings) SetSpecies(species string) {
	species = strings.ToLower(strings.TrimSpace(species))
	if species == "" {
		species = DefaultSpecies
	}
	s.app.Preferences().SetString(KeySpecies, species)
}
