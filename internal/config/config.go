// Package config provides YAML-based display configuration loading for the
// game: terminal key handling and the color palette.
package config

import (
	"fmt"

	"github.com/vovakirdan/heart-quest/internal/core"
)

// DisplayConfig contains presentation settings shared by every backend.
type DisplayConfig struct {
	KeyHoldFrames int           `yaml:"key_hold_frames"`
	Palette       PaletteConfig `yaml:"palette"`
}

// PaletteConfig holds palette entries as "#rrggbb" strings.
type PaletteConfig struct {
	Pink       string `yaml:"pink"`
	LightPink  string `yaml:"light_pink"`
	DarkerPink string `yaml:"darker_pink"`
	Red        string `yaml:"red"`
	White      string `yaml:"white"`
	Gold       string `yaml:"gold"`
	DarkPurple string `yaml:"dark_purple"`
	HUD        string `yaml:"hud"`
	BoyHead    string `yaml:"boy_head"`
	BoyBody    string `yaml:"boy_body"`
	GirlHead   string `yaml:"girl_head"`
	GirlDress  string `yaml:"girl_dress"`
}

// Palette is the parsed color palette used for drawing.
type Palette struct {
	Pink       core.RGBA // Player body
	LightPink  core.RGBA // Background gradient top
	DarkerPink core.RGBA // Background gradient bottom, ambient decorations
	Red        core.RGBA // Common hearts, lose banner
	White      core.RGBA // Player wings
	Gold       core.RGBA // Valuable hearts
	DarkPurple core.RGBA // Win banner
	HUD        core.RGBA // Score, timer and instruction text
	BoyHead    core.RGBA
	BoyBody    core.RGBA
	GirlHead   core.RGBA
	GirlDress  core.RGBA
}

// Parse converts the hex strings into colors.
// Empty entries fall back to the default palette.
func (p PaletteConfig) Parse() (Palette, error) {
	def := DefaultPalette()
	var out Palette

	entries := []struct {
		name string
		hex  string
		dst  *core.RGBA
		def  core.RGBA
	}{
		{"pink", p.Pink, &out.Pink, def.Pink},
		{"light_pink", p.LightPink, &out.LightPink, def.LightPink},
		{"darker_pink", p.DarkerPink, &out.DarkerPink, def.DarkerPink},
		{"red", p.Red, &out.Red, def.Red},
		{"white", p.White, &out.White, def.White},
		{"gold", p.Gold, &out.Gold, def.Gold},
		{"dark_purple", p.DarkPurple, &out.DarkPurple, def.DarkPurple},
		{"hud", p.HUD, &out.HUD, def.HUD},
		{"boy_head", p.BoyHead, &out.BoyHead, def.BoyHead},
		{"boy_body", p.BoyBody, &out.BoyBody, def.BoyBody},
		{"girl_head", p.GirlHead, &out.GirlHead, def.GirlHead},
		{"girl_dress", p.GirlDress, &out.GirlDress, def.GirlDress},
	}

	for _, e := range entries {
		if e.hex == "" {
			*e.dst = e.def
			continue
		}
		c, err := core.ParseHex(e.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("palette %s: %w", e.name, err)
		}
		*e.dst = c
	}
	return out, nil
}

// Validate checks the numeric settings and fills zero values with defaults.
func (d *DisplayConfig) Validate() error {
	def := DefaultDisplayConfig()
	if d.KeyHoldFrames == 0 {
		d.KeyHoldFrames = def.KeyHoldFrames
	}
	if d.KeyHoldFrames < 1 {
		return fmt.Errorf("key_hold_frames must be positive, got %d", d.KeyHoldFrames)
	}
	return nil
}
