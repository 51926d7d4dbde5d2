package rgb565

import (
	"image"
	"image/color"
	"image/draw"
)

// Image is a fixed size grid of packed colors stored row by row.
// All accessors are bounds checked and never panic.
type Image struct {
	width  int
	height int
	pix    []Color
}

// NewImage allocates a black image. Negative dimensions are treated as 0.
func NewImage(width, height int) *Image {
	width = max(width, 0)
	height = max(height, 0)
	return &Image{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

func (m *Image) Width() int {
	if m == nil {
		return 0
	}
	return m.width
}

func (m *Image) Height() int {
	if m == nil {
		return 0
	}
	return m.height
}

func (m *Image) valid(p image.Point) bool {
	return m != nil && p.X >= 0 && p.Y >= 0 && p.X < m.width && p.Y < m.height
}

func (m *Image) offset(p image.Point) int { return p.Y*m.width + p.X }

// Clear sets every pixel to c.
func (m *Image) Clear(c Color) {
	if m == nil {
		return
	}
	for i := range m.pix {
		m.pix[i] = c
	}
}

// SetPixel writes c at p. It reports false and leaves the image unchanged
// if p lies outside of the image.
func (m *Image) SetPixel(p image.Point, c Color) bool {
	if !m.valid(p) {
		return false
	}
	m.pix[m.offset(p)] = c
	return true
}

// Pixel returns the color at p and whether p lies inside of the image.
func (m *Image) Pixel(p image.Point) (Color, bool) {
	if !m.valid(p) {
		return 0, false
	}
	return m.pix[m.offset(p)], true
}

// Row returns the pixels of row y for bulk copies.
// The returned slice aliases the image, writes to it change the image.
func (m *Image) Row(y int) ([]Color, bool) {
	if m == nil || y < 0 || y >= m.height {
		return nil, false
	}
	start := y * m.width
	return m.pix[start : start+m.width : start+m.width], true
}

var _ draw.Image = (*Image)(nil)

func (m *Image) ColorModel() color.Model { return Model }

func (m *Image) Bounds() image.Rectangle {
	return image.Rectangle{Max: image.Point{X: m.Width(), Y: m.Height()}}
}

func (m *Image) At(x, y int) color.Color {
	c, _ := m.Pixel(image.Point{X: x, Y: y})
	return c
}

func (m *Image) Set(x, y int, c color.Color) {
	if c == nil {
		return
	}
	m.SetPixel(image.Point{X: x, Y: y}, Model.Convert(c).(Color))
}
