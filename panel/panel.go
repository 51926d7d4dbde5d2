// Package panel provides a horizontal strip of the screen backed by its own
// pixel buffer.
package panel

import (
	"image"

	"github.com/srlehn/fbstat/internal/errors"
	"github.com/srlehn/fbstat/rgb565"
)

// Sink receives finished panel images. offset is the position of the
// image's top left corner on the target.
type Sink interface {
	PutImage(offset image.Point, img *rgb565.Image) error
}

// Panel owns an image and its vertical placement.
// Panels know nothing of each other, stacking is done via Bottom.
type Panel struct {
	yPosition int
	image     *rgb565.Image
}

func New(width, height, yPosition int) *Panel {
	return &Panel{
		yPosition: yPosition,
		image:     rgb565.NewImage(width, height),
	}
}

func (p *Panel) Image() *rgb565.Image { return p.image }
func (p *Panel) Width() int           { return p.image.Width() }
func (p *Panel) Height() int          { return p.image.Height() }
func (p *Panel) YPosition() int       { return p.yPosition }

// Bottom is the first row below the panel.
func (p *Panel) Bottom() int { return p.yPosition + p.image.Height() }

// Put hands the panel image to s at the panel's vertical position.
func (p *Panel) Put(s Sink) error {
	if p == nil || s == nil {
		return errors.NilParam()
	}
	return s.PutImage(image.Point{Y: p.yPosition}, p.image)
}
