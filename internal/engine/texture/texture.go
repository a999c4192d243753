// Package texture decodes image files into RGBA pixel data ready for upload.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"path"
	"strings"

	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
)

// Image is a decoded texture.
type Image struct {
	Name string
	RGBA *image.RGBA
}

// Width returns the image width in pixels.
func (i *Image) Width() int {
	return i.RGBA.Bounds().Dx()
}

// Height returns the image height in pixels.
func (i *Image) Height() int {
	return i.RGBA.Bounds().Dy()
}

// Loader reads raw asset bytes by path.
type Loader interface {
	Load(path string) ([]byte, error)
}

// Load reads and decodes an image through the loader.
func Load(loader Loader, name string) (*Image, error) {
	data, err := loader.Load(name)
	if err != nil {
		return nil, fmt.Errorf("loading texture %s: %w", name, err)
	}
	return Decode(name, data)
}

// Decode decodes image data. TGA is selected by file extension since it has
// no signature; everything else is sniffed by the registered decoders.
func Decode(name string, data []byte) (*Image, error) {
	if strings.EqualFold(path.Ext(name), ".tga") {
		img, err := DecodeTGA(data)
		if err != nil {
			return nil, fmt.Errorf("decoding texture %s: %w", name, err)
		}
		return &Image{Name: name, RGBA: img}, nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding texture %s: %w", name, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decoding texture %s: empty %s image", name, format)
	}
	return &Image{Name: name, RGBA: ToRGBA(img)}, nil
}

// ToRGBA converts any image to a tightly packed *image.RGBA anchored at (0,0).
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba
	}

	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// Solid returns a 1x1 image of a single color, used as a fallback texture.
func Solid(name string, c color.RGBA) *Image {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, c)
	return &Image{Name: name, RGBA: img}
}
