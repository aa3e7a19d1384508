package rasterkit

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is a Canvas backed by an 8-bit RGB pixel buffer.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGB format, 3 bytes per pixel
}

var (
	_ Canvas      = (*Pixmap)(nil)
	_ SpanFiller  = (*Pixmap)(nil)
	_ image.Image = (*Pixmap)(nil)
)

// NewPixmap creates a new black pixmap with the given dimensions.
// Negative dimensions are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	width = max(width, 0)
	height = max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*3),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGB format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Set sets the color of a single pixel.
func (p *Pixmap) Set(pt Point, c Color) {
	if pt.X < 0 || pt.X >= p.width || pt.Y < 0 || pt.Y >= p.height {
		return
	}
	i := (pt.Y*p.width + pt.X) * 3
	p.data[i+0], p.data[i+1], p.data[i+2] = c.bytes()
}

// Get returns the color of a single pixel.
func (p *Pixmap) Get(pt Point) Color {
	if pt.X < 0 || pt.X >= p.width || pt.Y < 0 || pt.Y >= p.height {
		return Color{}
	}
	i := (pt.Y*p.width + pt.X) * 3
	return fromBytes(p.data[i+0], p.data[i+1], p.data[i+2])
}

// FillSpan sets the pixels x0..x1 (inclusive) of row y.
// The span must already lie inside the pixmap.
func (p *Pixmap) FillSpan(x0, x1, y int, c Color) {
	r, g, b := c.bytes()
	row := p.data[(y*p.width+x0)*3 : (y*p.width+x1+1)*3]
	for i := 0; i < len(row); i += 3 {
		row[i+0] = r
		row[i+1] = g
		row[i+2] = b
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	r, g, b := c.bytes()
	for i := 0; i < len(p.data); i += 3 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
	}
}

// ToImage converts the pixmap to an opaque image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for src, dst := 0, 0; src < len(p.data); src, dst = src+3, dst+4 {
		img.Pix[dst+0] = p.data[src+0]
		img.Pix[dst+1] = p.data[src+1]
		img.Pix[dst+2] = p.data[src+2]
		img.Pix[dst+3] = 255
	}
	return img
}

// FromImage creates a pixmap from an image. Alpha is discarded.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())

	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			pm.Set(Pt(x, y), FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}

	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("rasterkit: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("rasterkit: close %s: %w", path, cerr)
		}
	}()

	if err := png.Encode(f, p.ToImage()); err != nil {
		return fmt.Errorf("rasterkit: encode %s: %w", path, err)
	}
	return nil
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.Get(Pt(x, y)).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
