package texture

import (
	"fmt"
	"image"
	"image/color"
)

// TGA image types.
const (
	tgaUncompressed = 2
	tgaRLE          = 10
)

// DecodeTGA decodes a TGA image file.
// Supports uncompressed (type 2) and RLE compressed (type 10) true-color data.
// Rows are stored bottom-up unless bit 5 of the descriptor is set.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("tga: header too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	// bytes 3-11: color map spec and origin, unused
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("tga: color-mapped images not supported")
	}
	if imageType != tgaUncompressed && imageType != tgaRLE {
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("tga: unsupported bit depth %d", bpp)
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("tga: empty image %dx%d", width, height)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("tga: data truncated")
	}

	dec := tgaDecoder{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		src:         data[offset:],
		bpp:         bpp / 8,
		topToBottom: descriptor&0x20 != 0,
	}

	if imageType == tgaUncompressed {
		if len(dec.src) < width*height*dec.bpp {
			return nil, fmt.Errorf("tga: pixel data truncated")
		}
		for dec.n < width*height {
			dec.put(dec.read())
		}
		return dec.img, nil
	}

	if err := dec.decodeRLE(); err != nil {
		return nil, err
	}
	return dec.img, nil
}

// tgaDecoder walks TGA pixel data in file order.
type tgaDecoder struct {
	img         *image.RGBA
	src         []byte
	pos         int // read offset in src
	n           int // pixels written
	bpp         int // bytes per pixel
	topToBottom bool
}

func (d *tgaDecoder) remaining() int {
	return len(d.src) - d.pos
}

// read consumes one BGR(A) pixel.
func (d *tgaDecoder) read() color.RGBA {
	p := d.src[d.pos : d.pos+d.bpp]
	d.pos += d.bpp
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if d.bpp == 4 {
		c.A = p[3]
	}
	return c
}

// put stores the next pixel, flipping rows for bottom-up images.
func (d *tgaDecoder) put(c color.RGBA) {
	b := d.img.Bounds()
	x := d.n % b.Dx()
	y := d.n / b.Dx()
	if !d.topToBottom {
		y = b.Dy() - 1 - y
	}
	d.img.SetRGBA(x, y, c)
	d.n++
}

func (d *tgaDecoder) decodeRLE() error {
	total := d.img.Bounds().Dx() * d.img.Bounds().Dy()

	for d.n < total && d.remaining() > 0 {
		packet := d.src[d.pos]
		d.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			// Run-length packet: one pixel repeated count times.
			if d.remaining() < d.bpp {
				break
			}
			c := d.read()
			for i := 0; i < count && d.n < total; i++ {
				d.put(c)
			}
			continue
		}

		for i := 0; i < count && d.n < total; i++ {
			if d.remaining() < d.bpp {
				break
			}
			d.put(d.read())
		}
	}

	if d.n < total {
		return fmt.Errorf("tga: RLE data truncated at pixel %d of %d", d.n, total)
	}
	return nil
}
