package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestSpecies(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	species := settings.GetSpecies()
	if species != DefaultSpecies {
		t.Errorf("Expected default species %s, got %s", DefaultSpecies, species)
	}

	// Test setting custom value
	settings.SetSpecies("pikachu")
	if got := settings.GetSpecies(); got != "pikachu" {
		t.Errorf("Expected species pikachu, got %s", got)
	}
}

func TestSpecies_Normalization(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Pikachu", "pikachu"},
		{"  MEWTWO  ", "mewtwo"},
		{"mr-mime", "mr-mime"},
		{"", DefaultSpecies},
		{"   ", DefaultSpecies},
	}

	for _, tc := range tests {
		app := test.NewApp()
		settings := NewSettings(app)
		settings.SetSpecies(tc.input)
		if got := settings.GetSpecies(); got != tc.expected {
			t.Errorf("SetSpecies(%q) then GetSpecies() = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}
