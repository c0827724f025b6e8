package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/heart-quest/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseDisplay(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}
	if cfg != DefaultDisplayConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultDisplayConfig())
	}

	pal, err := cfg.Palette.Parse()
	if err != nil {
		t.Fatalf("default palette should parse: %v", err)
	}
	if pal != DefaultPalette() {
		t.Errorf("parsed palette = %+v, expected %+v", pal, DefaultPalette())
	}
}

func TestDefaultKeyHoldOutlastsAutoRepeatDelay(t *testing.T) {
	// Terminals start auto-repeating after up to about 500ms; shorter holds
	// drop a held key before the first repeat arrives.
	cfg, err := ParseDisplay(DefaultYAML())
	if err != nil {
		t.Fatal(err)
	}
	if ms := cfg.KeyHoldFrames * 1000 / core.TickRate; ms < 450 {
		t.Errorf("default key hold = %dms, expected at least 450ms", ms)
	}
}

func TestParseDisplayEmpty(t *testing.T) {
	cfg, err := ParseDisplay(nil)
	if err != nil {
		t.Fatalf("empty document should parse: %v", err)
	}
	if cfg != DefaultDisplayConfig() {
		t.Errorf("empty document = %+v, expected defaults", cfg)
	}
}

func TestParseDisplayPartial(t *testing.T) {
	cfg, err := ParseDisplay([]byte("palette:\n  gold: \"#102030\"\n"))
	if err != nil {
		t.Fatalf("ParseDisplay failed: %v", err)
	}
	if cfg.KeyHoldFrames != DefaultDisplayConfig().KeyHoldFrames {
		t.Error("missing keys should keep defaults")
	}

	pal, err := cfg.Palette.Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if pal.Gold != core.RGB(0x10, 0x20, 0x30) {
		t.Errorf("Gold = %v, expected override", pal.Gold)
	}
	if pal.Red != DefaultPalette().Red {
		t.Error("untouched palette entries should keep defaults")
	}
}

func TestParseDisplayErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"frame rate is not configurable", "tick_rate: 30\n", "tick_rate"},
		{"unknown key", "palette:\n  teal: \"#008080\"\n", "teal"},
		{"negative hold", "key_hold_frames: -2\n", "key_hold_frames"},
		{"bad color", "palette:\n  red: crimson\n", "palette red"},
		{"bad yaml", "key_hold_frames: [\n", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDisplay([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadDisplayCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "display.yaml")
	if err := os.WriteFile(path, []byte("key_hold_frames: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDisplay(path)
	if err != nil {
		t.Fatalf("LoadDisplay failed: %v", err)
	}
	if cfg.KeyHoldFrames != 3 {
		t.Errorf("KeyHoldFrames = %d, expected 3", cfg.KeyHoldFrames)
	}
}

func TestLoadDisplayMissingCustomPath(t *testing.T) {
	_, err := LoadDisplay(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("missing custom config should be an error")
	}
}
