package screenshot

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/image/bmp"
)

func TestSaveRGBAFlipsRows(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	c, err := New(dir, "meshview", FormatPNG)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	c.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

	// 1x2 image: bottom row red, top row blue in OpenGL order.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}

	path, err := c.SaveRGBA(pixels, 1, 2)
	if err != nil {
		t.Fatalf("SaveRGBA failed: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "meshview_2024-03-01_12-00-00") {
		t.Errorf("unexpected filename %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	r, _, b, _ := img.At(0, 0).RGBA()
	if b == 0 || r != 0 {
		t.Error("expected top pixel to be blue after flip")
	}
	r, _, b, _ = img.At(0, 1).RGBA()
	if r == 0 || b != 0 {
		t.Error("expected bottom pixel to be red after flip")
	}
}

func TestSaveRGBASizeMismatch(t *testing.T) {
	c, err := New(t.TempDir(), "x", FormatPNG)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := c.SaveRGBA(make([]byte, 7), 1, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestSaveRGBABMP(t *testing.T) {
	c, err := New(t.TempDir(), "shot", FormatBMP)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	path, err := c.SaveRGBA(make([]byte, 2*2*4), 2, 2)
	if err != nil {
		t.Fatalf("SaveRGBA failed: %v", err)
	}
	if filepath.Ext(path) != ".bmp" {
		t.Errorf("expected .bmp file, got %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	cfg, err := bmp.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 2 || cfg.Height != 2 {
		t.Errorf("expected 2x2, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestNewUnknownFormat(t *testing.T) {
	if _, err := New(t.TempDir(), "x", "gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}
