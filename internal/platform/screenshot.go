package platform

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/heart-quest/internal/core"
)

// ScreenshotDir returns the directory screenshots are written to.
func ScreenshotDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("platform: cannot get home directory: %w", err)
	}
	return filepath.Join(home, ".heartquest", "screenshots"), nil
}

// SaveScreenshot writes the canvas raster as a timestamped PNG and returns
// its path. Text runs are not part of the raster and are not included.
func SaveScreenshot(c *core.Canvas, gameID string) (string, error) {
	dir, err := ScreenshotDir()
	if err != nil {
		return "", err
	}
	return WriteScreenshot(c, dir, gameID, time.Now())
}

// WriteScreenshot writes the canvas raster into dir.
func WriteScreenshot(c *core.Canvas, dir, gameID string, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("platform: cannot create screenshot directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s.png", gameID, at.Format("20060102_150405"))
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("platform: create screenshot: %w", err)
	}
	if err := png.Encode(f, c.Image()); err != nil {
		f.Close()
		return "", fmt.Errorf("platform: encode screenshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("platform: close screenshot: %w", err)
	}
	return path, nil
}
