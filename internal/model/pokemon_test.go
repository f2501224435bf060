package model

import (
	"encoding/json"
	"testing"
)

func TestPokemon_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"mewtwo", "Mewtwo"},
		{"pikachu", "Pikachu"},
		{"mr-mime", "Mr-mime"},
		{"x", "X"},
		{"", ""},
	}

	for _, test := range tests {
		p := &Pokemon{Name: test.name}
		result := p.DisplayName()
		if result != test.expected {
			t.Errorf("DisplayName() with name='%s' = '%s', expected '%s'", test.name, result, test.expected)
		}
	}
}

func TestPokemon_HeightMeters(t *testing.T) {
	tests := []struct {
		height   int
		expected string
	}{
		{20, "2.0 m"},
		{7, "0.7 m"},
		{0, "0.0 m"},
		{123, "12.3 m"},
	}

	for _, test := range tests {
		p := &Pokemon{Height: test.height}
		result := p.HeightMeters()
		if result != test.expected {
			t.Errorf("HeightMeters() with height=%d = '%s', expected '%s'", test.height, result, test.expected)
		}
	}
}

func TestPokemon_WeightKilograms(t *testing.T) {
	tests := []struct {
		weight   int
		expected string
	}{
		{1220, "122.0 kg"},
		{60, "6.0 kg"},
		{5, "0.5 kg"},
	}

	for _, test := range tests {
		p := &Pokemon{Weight: test.weight}
		result := p.WeightKilograms()
		if result != test.expected {
			t.Errorf("WeightKilograms() with weight=%d = '%s', expected '%s'", test.weight, result, test.expected)
		}
	}
}

func TestPokemon_SpriteURL(t *testing.T) {
	p := &Pokemon{Sprites: Sprites{FrontDefault: "https://example.com/6.png"}}
	if !p.HasSprite() {
		t.Error("HasSprite() should be true when front_default is set")
	}
	if p.SpriteURL() != "https://example.com/6.png" {
		t.Errorf("SpriteURL() = '%s', expected sprite URL", p.SpriteURL())
	}

	empty := &Pokemon{}
	if empty.HasSprite() {
		t.Error("HasSprite() should be false without a sprite URL")
	}
}

func TestPokemon_DecodeRoundTrip(t *testing.T) {
	original := Pokemon{
		Name:    "mewtwo",
		Height:  20,
		Weight:  1220,
		Sprites: Sprites{FrontDefault: "https://example.com/sprites/6.png"},
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	var decoded Pokemon
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	if decoded != original {
		t.Errorf("round-trip mismatch: got %+v, expected %+v", decoded, original)
	}
}

func TestPokemon_DecodeIgnoresUnknownFields(t *testing.T) {
	body := `{
		"name": "mewtwo",
		"height": 20,
		"weight": 1220,
		"base_experience": 340,
		"abilities": [{"ability": {"name": "pressure"}}],
		"sprites": {"front_default": "https://example.com/6.png", "back_default": null}
	}`

	var p Pokemon
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	if p.Name != "mewtwo" || p.Height != 20 || p.Weight != 1220 {
		t.Errorf("decoded fields mismatch: %+v", p)
	}
	if p.SpriteURL() != "https://example.com/6.png" {
		t.Errorf("SpriteURL() = '%s', expected sprite URL", p.SpriteURL())
	}
}

func TestPokemon_DecodeNullSprite(t *testing.T) {
	body := `{"name": "mewtwo", "height": 20, "weight": 1220, "sprites": {"front_default": null}}`

	var p Pokemon
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	if p.HasSprite() {
		t.Error("HasSprite() should be false for a null front_default")
	}
}
