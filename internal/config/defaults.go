package config

import (
	_ "embed"

	"github.com/vovakirdan/heart-quest/internal/core"
)

//go:embed defaults/display.yaml
var defaultDisplayYAML []byte

// DefaultDisplayConfig returns the default display configuration.
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		KeyHoldFrames: 30,
		Palette: PaletteConfig{
			Pink:       "#ffc0cb",
			LightPink:  "#ffdfe6",
			DarkerPink: "#ff96b4",
			Red:        "#ff0000",
			White:      "#ffffff",
			Gold:       "#ffd700",
			DarkPurple: "#800080",
			HUD:        "#add8e6",
			BoyHead:    "#87ceeb",
			BoyBody:    "#00008b",
			GirlHead:   "#ffc0cb",
			GirlDress:  "#ff69b4",
		},
	}
}

// DefaultPalette returns the built-in colors.
func DefaultPalette() Palette {
	return Palette{
		Pink:       core.RGB(255, 192, 203),
		LightPink:  core.RGB(255, 223, 230),
		DarkerPink: core.RGB(255, 150, 180),
		Red:        core.RGB(255, 0, 0),
		White:      core.RGB(255, 255, 255),
		Gold:       core.RGB(255, 215, 0),
		DarkPurple: core.RGB(128, 0, 128),
		HUD:        core.RGB(173, 216, 230),
		BoyHead:    core.RGB(135, 206, 235),
		BoyBody:    core.RGB(0, 0, 139),
		GirlHead:   core.RGB(255, 192, 203),
		GirlDress:  core.RGB(255, 105, 180),
	}
}

// DefaultYAML returns the embedded default display YAML.
func DefaultYAML() []byte {
	return defaultDisplayYAML
}
