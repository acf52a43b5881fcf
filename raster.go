package grade

import (
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Raster is a rectangular pixel buffer of interleaved RGBA bytes with
// straight (non-premultiplied) alpha. It is the working surface of the
// pipeline: affine and per-pixel passes mutate it in place, convolution
// passes replace its contents wholesale. A Raster is owned by exactly
// one caller for the duration of a pass; the engine never retains it.
type Raster struct {
	width  int
	height int
	pix    []uint8 // RGBA format, 4 bytes per pixel
}

// NewRaster creates a new raster with the given dimensions, filled
// with transparent black.
func NewRaster(width, height int) *Raster {
	return &Raster{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// Width returns the width of the raster in pixels.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the height of the raster in pixels.
func (r *Raster) Height() int {
	return r.height
}

// Stride returns the number of bytes per row.
func (r *Raster) Stride() int {
	return r.width * 4
}

// Data returns the raw pixel data (RGBA format).
func (r *Raster) Data() []uint8 {
	return r.pix
}

// Clone returns a deep copy of the raster.
func (r *Raster) Clone() *Raster {
	c := &Raster{
		width:  r.width,
		height: r.height,
		pix:    make([]uint8, len(r.pix)),
	}
	copy(c.pix, r.pix)
	return c
}

// CopyFrom overwrites this raster's pixels with src's. This is how a
// convolution result replaces the working buffer. Rasters of different
// dimensions are left unchanged.
func (r *Raster) CopyFrom(src *Raster) {
	if src == nil || src.width != r.width || src.height != r.height {
		return
	}
	copy(r.pix, src.pix)
}

// Fill sets every pixel to the given RGBA bytes.
func (r *Raster) Fill(red, green, blue, alpha uint8) {
	for i := 0; i < len(r.pix); i += 4 {
		r.pix[i+0] = red
		r.pix[i+1] = green
		r.pix[i+2] = blue
		r.pix[i+3] = alpha
	}
}

// GetPixel returns the RGB channels of a single pixel as a working
// Pixel. Out-of-range coordinates return the zero pixel.
func (r *Raster) GetPixel(x, y int) Pixel {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return Pixel{}
	}
	i := (y*r.width + x) * 4
	return Pixel{
		R: float64(r.pix[i+0]),
		G: float64(r.pix[i+1]),
		B: float64(r.pix[i+2]),
	}
}

// SetPixel stores a working Pixel at (x, y), clamping and rounding
// each channel. Alpha is left untouched.
func (r *Raster) SetPixel(x, y int, p Pixel) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	i := (y*r.width + x) * 4
	r.pix[i+0] = clampUint8(p.R)
	r.pix[i+1] = clampUint8(p.G)
	r.pix[i+2] = clampUint8(p.B)
}

// Alpha returns the alpha byte at (x, y). Out-of-range coordinates
// return 0.
func (r *Raster) Alpha(x, y int) uint8 {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return 0
	}
	return r.pix[(y*r.width+x)*4+3]
}

// RGBA returns the raw bytes of a single pixel.
func (r *Raster) RGBA(x, y int) (red, green, blue, alpha uint8) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return 0, 0, 0, 0
	}
	i := (y*r.width + x) * 4
	return r.pix[i+0], r.pix[i+1], r.pix[i+2], r.pix[i+3]
}

// SetRGBA stores raw bytes for a single pixel.
func (r *Raster) SetRGBA(x, y int, red, green, blue, alpha uint8) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	i := (y*r.width + x) * 4
	r.pix[i+0] = red
	r.pix[i+1] = green
	r.pix[i+2] = blue
	r.pix[i+3] = alpha
}

// ToImage converts the raster to an image.NRGBA sharing no memory
// with the raster.
func (r *Raster) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.width, r.height))
	copy(img.Pix, r.pix)
	return img
}

// ToRGBA converts the raster to a premultiplied image.RGBA, the format
// most draw targets expect. Lossy for semi-transparent pixels.
func (r *Raster) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	xdraw.Draw(img, img.Bounds(), r.ToImage(), image.Point{}, xdraw.Src)
	return img
}

// FromImage creates a raster from an image. Non-NRGBA sources are
// converted through a straight-alpha intermediate so semi-transparent
// pixels keep their color values.
func FromImage(img image.Image) *Raster {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	r := NewRaster(width, height)

	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == width*4 && bounds.Min == (image.Point{}) {
		copy(r.pix, nrgba.Pix[:width*height*4])
		return r
	}

	tmp := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(tmp, tmp.Bounds(), img, bounds.Min, xdraw.Src)
	copy(r.pix, tmp.Pix)
	return r
}

// SavePNG saves the raster to a PNG file.
func (r *Raster) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, r.ToImage())
}

// At implements the image.Image interface.
func (r *Raster) At(x, y int) color.Color {
	red, green, blue, alpha := r.RGBA(x, y)
	return color.NRGBA{R: red, G: green, B: blue, A: alpha}
}

// Bounds implements the image.Image interface.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// ColorModel implements the image.Image interface.
func (r *Raster) ColorModel() color.Model {
	return color.NRGBAModel
}
