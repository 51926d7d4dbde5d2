// Package snapshot composes the panels into an image and writes it as PNG
// on every flush.
package snapshot

import (
	"image"
	"image/draw"
	"io"
	"os"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/srlehn/fbstat/display"
	"github.com/srlehn/fbstat/internal/errors"
	"github.com/srlehn/fbstat/internal/logx"
	"github.com/srlehn/fbstat/rgb565"
)

const Name = `snapshot`

// DefaultSize is the resolution of the common 3.5" SPI displays.
var DefaultSize = image.Point{X: 480, Y: 320}

func init() {
	display.Register(Name, func(cfg display.Config) (display.Display, error) { return New(cfg) })
}

type Snapshot struct {
	frame  *rgb565.Image
	scale  int
	output string
	stdout io.Writer
	log    logx.LoggerProvider
}

var _ display.Display = (*Snapshot)(nil)

func New(cfg display.Config) (*Snapshot, error) {
	if len(cfg.Output) == 0 {
		return nil, errors.New(`no snapshot output file`)
	}
	size := cfg.Size
	if size.X <= 0 || size.Y <= 0 {
		size = DefaultSize
	}
	return &Snapshot{
		frame:  rgb565.NewImage(size.X, size.Y),
		scale:  max(cfg.Scale, 1),
		output: cfg.Output,
		stdout: os.Stdout,
		log:    cfg.Logger,
	}, nil
}

func (s *Snapshot) Name() string         { return Name }
func (s *Snapshot) Size() image.Point    { return s.frame.Bounds().Size() }
func (s *Snapshot) Frame() *rgb565.Image { return s.frame }

func (s *Snapshot) PutImage(offset image.Point, img *rgb565.Image) error {
	if img == nil {
		return errors.NilParam()
	}
	display.Compose(s.frame, img, offset)
	return nil
}

// Render returns the frame magnified by the scale factor without smoothing.
func (s *Snapshot) Render() *image.RGBA {
	b := s.frame.Bounds()
	dst := image.NewRGBA(image.Rectangle{Max: b.Max.Mul(s.scale)})
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), s.frame, b, draw.Src, nil)
	return dst
}

// Flush writes the PNG, replacing the previous one.
func (s *Snapshot) Flush() error {
	dc := gg.NewContextForRGBA(s.Render())
	if s.output == `-` {
		if err := dc.EncodePNG(s.stdout); err != nil {
			return errors.New(err)
		}
		return nil
	}
	if err := dc.SavePNG(s.output); err != nil {
		return errors.New(err)
	}
	logx.Debug(`snapshot written`, s.log, `file`, s.output)
	return nil
}

func (s *Snapshot) Close() error { return nil }
