// Package screenshot saves rendered frames as PNG or BMP files.
package screenshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/bmp"
)

// Image formats.
const (
	FormatPNG = "png"
	FormatBMP = "bmp"
)

// ErrUnknownFormat is returned by New for an unsupported image format.
var ErrUnknownFormat = errors.New("unknown screenshot format")

var encoders = map[string]func(io.Writer, image.Image) error{
	FormatPNG: png.Encode,
	FormatBMP: bmp.Encode,
}

// Capture writes frames to timestamped files in one directory.
type Capture struct {
	outputDir string
	prefix    string
	format    string
	now       func() time.Time
}

// New creates a capture writing prefix_<timestamp>.<format> files into
// outputDir.
func New(outputDir, prefix, format string) (*Capture, error) {
	if _, ok := encoders[format]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &Capture{
		outputDir: outputDir,
		prefix:    prefix,
		format:    format,
		now:       time.Now,
	}, nil
}

// Filename returns the path the next capture will be written to.
func (c *Capture) Filename() string {
	timestamp := c.now().Format("2006-01-02_15-04-05.000")
	return filepath.Join(c.outputDir, fmt.Sprintf("%s_%s.%s", c.prefix, timestamp, c.format))
}

// SaveRGBA writes raw RGBA pixels read back from OpenGL. Rows are flipped
// since OpenGL has its origin at the bottom-left.
func (c *Capture) SaveRGBA(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}

	return c.save(img)
}

func (c *Capture) save(img image.Image) (string, error) {
	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := c.Filename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := encoders[c.format](file, img); err != nil {
		return "", fmt.Errorf("encoding %s: %w", c.format, err)
	}
	return filename, nil
}
