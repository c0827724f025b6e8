package platform

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/heart-quest/internal/core"
)

func TestWriteScreenshot(t *testing.T) {
	c := core.NewCanvas(10, 10, 4, 3)
	red := core.RGB(255, 0, 0)
	c.FillRect(0, 0, 5, 10, red)

	dir := filepath.Join(t.TempDir(), "shots")
	at := time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)
	path, err := WriteScreenshot(c, dir, "hearts", at)
	if err != nil {
		t.Fatalf("WriteScreenshot: %v", err)
	}
	if want := filepath.Join(dir, "hearts_20260214_093000.png"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("size = %v, want 4x3", b)
	}
	r, g, _, a := img.At(0, 0).RGBA()
	if r>>8 != 255 || g != 0 || a>>8 != 255 {
		t.Errorf("pixel (0,0) = %v, want red", img.At(0, 0))
	}
	if _, _, _, a := img.At(3, 0).RGBA(); a != 0 {
		t.Errorf("pixel (3,0) alpha = %d, want transparent", a)
	}
}
