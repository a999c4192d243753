// Package debug provides developer tooling such as framebuffer screenshots.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// timestampLayout names screenshots; sortable and filesystem safe.
const timestampLayout = "2006-01-02_15-04-05"

// ScreenshotCapture writes PNG screenshots to a directory.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// NewScreenshotCapture creates a new screenshot capture handler.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// CaptureFromPixels saves raw RGBA pixel data with width*height*4 bytes.
// Rows are flipped vertically since OpenGL has its origin at bottom-left.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("invalid screenshot size %dx%d", width, height)
	}
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

	return sc.CaptureFromImage(img)
}

// CaptureFromImage saves an existing image.
func (sc *ScreenshotCapture) CaptureFromImage(img image.Image) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.GenerateFilename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", filename, err)
	}

	return filename, nil
}

// GenerateFilename returns the path the next screenshot would be saved to.
func (sc *ScreenshotCapture) GenerateFilename() string {
	filename := fmt.Sprintf("%s_%s.png", sc.prefix, sc.now().Format(timestampLayout))
	if sc.outputDir != "" {
		filename = filepath.Join(sc.outputDir, filename)
	}
	return filename
}
