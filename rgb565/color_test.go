package rgb565_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srlehn/fbstat/rgb565"
)

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestColorQuantization(t *testing.T) {
	for v := 0; v < 256; v++ {
		c := uint8(v)
		assert.LessOrEqual(t, absDiff(c, rgb565.New(c, 0, 0).Red()), 7, `red %d`, v)
		assert.LessOrEqual(t, absDiff(c, rgb565.New(0, c, 0).Green()), 3, `green %d`, v)
		assert.LessOrEqual(t, absDiff(c, rgb565.New(0, 0, c).Blue()), 7, `blue %d`, v)
	}
	assert.Equal(t, rgb565.Color(0xFFFF), rgb565.New(255, 255, 255))
	assert.Equal(t, rgb565.Color(0xF800), rgb565.New(255, 0, 0))
	assert.Equal(t, rgb565.Color(0x07E0), rgb565.New(0, 255, 0))
	assert.Equal(t, rgb565.Color(0x001F), rgb565.New(0, 0, 255))
}

func TestColorRepack(t *testing.T) {
	for v := 0; v <= 0xFFFF; v++ {
		c := rgb565.Color(v)
		if got := rgb565.New(c.Red(), c.Green(), c.Blue()); got != c {
			t.Fatalf(`repacking %#04x yielded %#04x`, v, uint16(got))
		}
	}
}

func TestBlendIdentity(t *testing.T) {
	for a := 0; a <= 0xFFFF; a += 97 {
		for b := 0; b <= 0xFFFF; b += 1031 {
			ca, cb := rgb565.Color(a), rgb565.Color(b)
			if got := rgb565.Blend(0, ca, cb); got != ca {
				t.Fatalf(`blend(0, %#04x, %#04x) = %#04x`, a, b, uint16(got))
			}
			if got := rgb565.Blend(255, ca, cb); got != cb {
				t.Fatalf(`blend(255, %#04x, %#04x) = %#04x`, a, b, uint16(got))
			}
		}
	}
}

func TestBlendMidpoint(t *testing.T) {
	black := rgb565.New(0, 0, 0)
	white := rgb565.New(255, 255, 255)
	mid := rgb565.Blend(128, black, white)
	assert.Equal(t, rgb565.Blend(128, black, white), mid)
	assert.InDelta(t, 128, int(mid.Red()), 8)
	assert.InDelta(t, 128, int(mid.Green()), 4)
	assert.InDelta(t, 128, int(mid.Blue()), 8)

	// descending channels must not leave the channel range
	down := rgb565.Blend(63, white, black)
	assert.Greater(t, down.Red(), mid.Red())
}

func TestModel(t *testing.T) {
	c := rgb565.Model.Convert(color.RGBA{R: 255, G: 128, B: 0, A: 255})
	assert.Equal(t, rgb565.New(255, 128, 0), c)
	c565 := rgb565.New(10, 20, 30)
	assert.Equal(t, c565, rgb565.Model.Convert(c565))

	r, g, b, a := rgb565.New(255, 255, 255).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff, 0xffff}, []uint32{r, g, b, a})
}
