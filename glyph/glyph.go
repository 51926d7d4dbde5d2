// Package glyph draws text into images, addressing text by the top left
// corner of its cell rather than by the baseline.
package glyph

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/srlehn/fbstat/internal/errors"
)

const (
	FaceBasic     = `basic`
	FaceGoRegular = `goregular`
)

// Face is a font face with precomputed cell metrics.
type Face struct {
	face    font.Face
	height  int
	ascent  int
	advance int
}

// NewFace wraps f.
func NewFace(f font.Face) *Face {
	if f == nil {
		return nil
	}
	m := f.Metrics()
	adv, ok := f.GlyphAdvance('M')
	if !ok {
		adv = m.Height / 2
	}
	return &Face{
		face:    f,
		height:  m.Height.Ceil(),
		ascent:  m.Ascent.Ceil(),
		advance: adv.Round(),
	}
}

// Basic returns the 7x13 bitmap face.
func Basic() *Face { return NewFace(basicfont.Face7x13) }

// GoRegular returns the Go Regular TrueType face at size points (72 DPI).
func GoRegular(size float64) (*Face, error) {
	if size <= 0 {
		return nil, errors.Errorf(`invalid font size %v`, size)
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.New(err)
	}
	return NewFace(truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})), nil
}

// ByName returns the face registered under name.
func ByName(name string, size float64) (*Face, error) {
	switch name {
	case ``, FaceBasic:
		return Basic(), nil
	case FaceGoRegular:
		return GoRegular(size)
	default:
		return nil, errors.Errorf(`unknown font %q`, name)
	}
}

// Height is the height of a text line in pixels.
func (f *Face) Height() int { return f.height }

// DrawString draws s with its cell's top left corner at pos and returns the
// position for the text that follows.
func (f *Face) DrawString(dst draw.Image, pos image.Point, s string, c color.Color) image.Point {
	if f == nil || dst == nil {
		return pos
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: f.face,
		Dot:  fixed.P(pos.X, pos.Y+f.ascent),
	}
	d.DrawString(s)
	return image.Point{X: d.Dot.X.Round(), Y: pos.Y}
}

// DrawChar draws a single rune like DrawString.
func (f *Face) DrawChar(dst draw.Image, pos image.Point, r rune, c color.Color) image.Point {
	return f.DrawString(dst, pos, string(r), c)
}

// DrawSwatch draws a small filled square sitting on the baseline, used as
// a legend marker.
func (f *Face) DrawSwatch(dst draw.Image, pos image.Point, c color.Color) image.Point {
	if f == nil || dst == nil {
		return pos
	}
	side := max(min(f.advance, f.ascent)-2, 1)
	left := pos.X + (f.advance-side)/2
	top := pos.Y + f.ascent - side
	draw.Draw(dst, image.Rect(left, top, left+side, top+side), image.NewUniform(c), image.Point{}, draw.Src)
	return image.Point{X: pos.X + f.advance, Y: pos.Y}
}
