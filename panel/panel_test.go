package panel_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/fbstat/panel"
	"github.com/srlehn/fbstat/rgb565"
)

type recordingSink struct {
	offsets []image.Point
	images  []*rgb565.Image
}

func (s *recordingSink) PutImage(offset image.Point, img *rgb565.Image) error {
	s.offsets = append(s.offsets, offset)
	s.images = append(s.images, img)
	return nil
}

func TestPanel(t *testing.T) {
	p := panel.New(320, 40, 15)
	assert.Equal(t, 320, p.Width())
	assert.Equal(t, 40, p.Height())
	assert.Equal(t, 15, p.YPosition())
	assert.Equal(t, 55, p.Bottom())

	next := panel.New(320, 10, p.Bottom())
	assert.Equal(t, 65, next.Bottom())

	s := &recordingSink{}
	require.NoError(t, p.Put(s))
	require.NoError(t, next.Put(s))
	assert.Equal(t, []image.Point{{Y: 15}, {Y: 55}}, s.offsets)
	assert.Same(t, p.Image(), s.images[0])

	assert.Error(t, p.Put(nil))
}
