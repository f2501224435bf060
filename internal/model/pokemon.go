package model

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Pokemon represents a single record returned by the PokeAPI. Height and
// Weight keep the API's native units (decimeters and hectograms); the
// display helpers convert them. The record is never mutated after decoding.
type Pokemon struct {
	Name    string  `json:"name"`
	Height  int     `json:"height"`
	Weight  int     `json:"weight"`
	Sprites Sprites `json:"sprites"`
}

// Sprites holds the sprite URLs of a Pokemon. FrontDefault is empty when
// the API reports null.
type Sprites struct {
	FrontDefault string `json:"front_default"`
}

// DisplayName returns the name with its first rune uppercased, remainder unchanged
func (p *Pokemon) DisplayName() string {
	if p.Name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(p.Name)
	return string(unicode.ToUpper(r)) + p.Name[size:]
}

// HeightMeters returns the height formatted in meters, e.g. "2.0 m"
func (p *Pokemon) HeightMeters() string {
	return fmt.Sprintf("%.1f m", float64(p.Height)/10.0)
}

// WeightKilograms returns the weight formatted in kilograms, e.g. "122.0 kg"
func (p *Pokemon) WeightKilograms() string {
	return fmt.Sprintf("%.1f kg", float64(p.Weight)/10.0)
}

// SpriteURL returns the default front sprite URL, or "" if the API has none
func (p *Pokemon) SpriteURL() string {
	return p.Sprites.FrontDefault
}

// HasSprite reports whether a sprite URL is available
func (p *Pokemon) HasSprite() bool {
	return p.Sprites.FrontDefault != ""
}
