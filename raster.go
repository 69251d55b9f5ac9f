package qmandel

import (
	"image"
	"image/color"
)

// RGB is an opaque 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// Color converts c to a color.RGBA with full alpha.
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Gray returns the gray RGB with all channels set to v.
func Gray(v uint8) RGB {
	return RGB{R: v, G: v, B: v}
}

// Raster is a width×height grid of RGB pixels stored row-major,
// row 0 at the top.
type Raster struct {
	width  int
	height int
	pix    []RGB
}

// NewRaster creates a black raster with the given dimensions.
// Negative dimensions are treated as zero.
func NewRaster(width, height int) *Raster {
	width, height = max(width, 0), max(height, 0)
	return &Raster{
		width:  width,
		height: height,
		pix:    make([]RGB, width*height),
	}
}

// Width returns the width of the raster.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the height of the raster.
func (r *Raster) Height() int {
	return r.height
}

// Pixel returns a pointer to the pixel at (x, y), or nil if the
// coordinates are out of bounds.
func (r *Raster) Pixel(x, y int) *RGB {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return nil
	}
	return &r.pix[y*r.width+x]
}

// Set sets the pixel at (x, y). Out-of-bounds writes are ignored.
func (r *Raster) Set(x, y int, c RGB) {
	if p := r.Pixel(x, y); p != nil {
		*p = c
	}
}

// Get returns the pixel at (x, y), or black if out of bounds.
func (r *Raster) Get(x, y int) RGB {
	if p := r.Pixel(x, y); p != nil {
		return *p
	}
	return RGB{}
}

// Fill sets every pixel to c.
func (r *Raster) Fill(c RGB) {
	for i := range r.pix {
		r.pix[i] = c
	}
}

// ToImage converts the raster to an opaque image.RGBA.
func (r *Raster) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	for i, c := range r.pix {
		j := i * 4
		img.Pix[j+0] = c.R
		img.Pix[j+1] = c.G
		img.Pix[j+2] = c.B
		img.Pix[j+3] = 0xff
	}
	return img
}

// At implements the image.Image interface.
func (r *Raster) At(x, y int) color.Color {
	return r.Get(x, y).Color()
}

// Bounds implements the image.Image interface.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// ColorModel implements the image.Image interface.
func (r *Raster) ColorModel() color.Model {
	return color.RGBAModel
}
