//go:build linux

package framebuffer

import (
	"encoding/binary"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/fbstat/rgb565"
)

func memoryFramebuffer(width, height, bpp int, red, green, blue, transp bitfield) *Framebuffer {
	lineLength := width * bpp / 8
	return &Framebuffer{
		finfo: fixedScreenInfo{LineLength: uint32(lineLength), SmemLen: uint32(lineLength * height)},
		vinfo: variableScreenInfo{
			XRes:         uint32(width),
			YRes:         uint32(height),
			BitsPerPixel: uint32(bpp),
			Red:          red,
			Green:        green,
			Blue:         blue,
			Transp:       transp,
		},
		data: make([]byte, lineLength*height),
	}
}

func TestPutImage565(t *testing.T) {
	fb := memoryFramebuffer(6, 3, 16, bitfield{Offset: 11, Length: 5}, bitfield{Offset: 5, Length: 6}, bitfield{Length: 5}, bitfield{})
	require.True(t, fb.native565())

	img := rgb565.NewImage(2, 2)
	img.Clear(rgb565.Color(0xABCD))
	require.NoError(t, fb.PutImage(image.Point{Y: 2}, img))

	// centered: columns 2 and 3, second row is off screen
	for x := 0; x < 6; x++ {
		got := binary.LittleEndian.Uint16(fb.data[2*6*2+x*2:])
		if x == 2 || x == 3 {
			assert.Equal(t, uint16(0xABCD), got, `x=%d`, x)
		} else {
			assert.Zero(t, got, `x=%d`, x)
		}
	}
	for _, b := range fb.data[:2*6*2] {
		assert.Zero(t, b)
	}
}

func TestPutImage32(t *testing.T) {
	fb := memoryFramebuffer(2, 1, 32, bitfield{Offset: 16, Length: 8}, bitfield{Offset: 8, Length: 8}, bitfield{Length: 8}, bitfield{Offset: 24, Length: 8})
	require.False(t, fb.native565())

	img := rgb565.NewImage(1, 1)
	img.Clear(rgb565.New(255, 0, 255))
	require.NoError(t, fb.PutImage(image.Point{}, img))
	assert.Equal(t, []byte{0xff, 0, 0xff, 0xff, 0, 0, 0, 0}, fb.data)
}

func TestPutImageClipped(t *testing.T) {
	fb := memoryFramebuffer(2, 1, 16, bitfield{Offset: 11, Length: 5}, bitfield{Offset: 5, Length: 6}, bitfield{Length: 5}, bitfield{})
	img := rgb565.NewImage(4, 1)
	for x := 0; x < 4; x++ {
		img.SetPixel(image.Point{X: x}, rgb565.Color(0x1111*(x+1)))
	}
	require.NoError(t, fb.PutImage(image.Point{}, img))
	// centered: image columns 1 and 2 are visible
	assert.Equal(t, uint16(0x2222), binary.LittleEndian.Uint16(fb.data[0:]))
	assert.Equal(t, uint16(0x3333), binary.LittleEndian.Uint16(fb.data[2:]))

	fb32 := memoryFramebuffer(2, 1, 32, bitfield{Offset: 16, Length: 8}, bitfield{Offset: 8, Length: 8}, bitfield{Length: 8}, bitfield{})
	img.SetPixel(image.Point{X: 1}, rgb565.New(255, 0, 0))
	img.SetPixel(image.Point{X: 2}, rgb565.New(0, 0, 255))
	require.NoError(t, fb32.PutImage(image.Point{}, img))
	assert.Equal(t, []byte{0, 0, 0xff, 0, 0xff, 0, 0, 0}, fb32.data)
}

func TestClear(t *testing.T) {
	fb := memoryFramebuffer(3, 2, 16, bitfield{Offset: 11, Length: 5}, bitfield{Offset: 5, Length: 6}, bitfield{Length: 5}, bitfield{})
	require.NoError(t, fb.Clear(rgb565.Color(0x0102)))
	for i := 0; i < len(fb.data); i += 2 {
		assert.Equal(t, uint16(0x0102), binary.LittleEndian.Uint16(fb.data[i:]))
	}
	assert.Equal(t, image.Point{X: 3, Y: 2}, fb.Size())
}

func TestUnsupportedDepth(t *testing.T) {
	fb := memoryFramebuffer(2, 2, 8, bitfield{}, bitfield{}, bitfield{}, bitfield{})
	assert.Error(t, fb.PutImage(image.Point{}, rgb565.NewImage(1, 1)))
}
