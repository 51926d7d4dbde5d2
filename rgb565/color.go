// Package rgb565 implements the 16 bit packed color format used by small
// display panels and an image type backed by it.
package rgb565

import (
	"image/color"
)

// Color is a packed 16 bit color: 5 bits red, 6 bits green, 5 bits blue.
type Color uint16

const (
	redBits   = 5
	greenBits = 6
	blueBits  = 5

	redShift   = greenBits + blueBits
	greenShift = blueBits

	redMax   = 1<<redBits - 1
	greenMax = 1<<greenBits - 1
	blueMax  = 1<<blueBits - 1
)

// New packs 8 bit channels, dropping the low bits of each.
func New(red, green, blue uint8) Color {
	return pack(int(red>>(8-redBits)), int(green>>(8-greenBits)), int(blue>>(8-blueBits)))
}

func pack(r, g, b int) Color {
	return Color((r&redMax)<<redShift | (g&greenMax)<<greenShift | b&blueMax)
}

func (c Color) red5() int   { return int(c>>redShift) & redMax }
func (c Color) green6() int { return int(c>>greenShift) & greenMax }
func (c Color) blue5() int  { return int(c) & blueMax }

// Red returns the red channel scaled back to 8 bits.
func (c Color) Red() uint8 {
	r := c.red5()
	return uint8(r<<3 | r>>2)
}

// Green returns the green channel scaled back to 8 bits.
func (c Color) Green() uint8 {
	g := c.green6()
	return uint8(g<<2 | g>>4)
}

// Blue returns the blue channel scaled back to 8 bits.
func (c Color) Blue() uint8 {
	b := c.blue5()
	return uint8(b<<3 | b>>2)
}

// Blend interpolates every packed channel from a to b.
// An alpha of 0 yields a, 255 yields b.
func Blend(alpha uint8, a, b Color) Color {
	mix := func(x, y int) int { return x + int(alpha)*(y-x)/255 }
	return pack(
		mix(a.red5(), b.red5()),
		mix(a.green6(), b.green6()),
		mix(a.blue5(), b.blue5()),
	)
}

var _ color.Color = Color(0)

func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.Red())
	r |= r << 8
	g = uint32(c.Green())
	g |= g << 8
	b = uint32(c.Blue())
	b |= b << 8
	return r, g, b, 0xffff
}

// Model converts any color to Color. Transparency is ignored.
var Model color.Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if c565, ok := c.(Color); ok {
		return c565
	}
	r, g, b, _ := c.RGBA()
	return New(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
