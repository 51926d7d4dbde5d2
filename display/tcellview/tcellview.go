// Package tcellview previews the panels in a terminal. Every terminal cell
// shows two pixels stacked on top of each other using the upper half block.
package tcellview

import (
	"image"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/srlehn/fbstat/display"
	"github.com/srlehn/fbstat/internal/errors"
	"github.com/srlehn/fbstat/internal/logx"
	"github.com/srlehn/fbstat/rgb565"
)

const Name = `tcell`

const upperHalfBlock = '▀'

func init() {
	display.Register(Name, func(cfg display.Config) (display.Display, error) {
		scr, err := tcell.NewScreen()
		if err != nil {
			return nil, errors.New(err)
		}
		return New(scr, cfg)
	})
}

type View struct {
	scr   tcell.Screen
	frame *rgb565.Image
	done  chan struct{}
	once  sync.Once
	log   logx.LoggerProvider
}

var (
	_ display.Display = (*View)(nil)
	_ display.Stopper = (*View)(nil)
)

// New initializes scr and starts handling its events. q, Esc and Ctrl-C
// close Done.
func New(scr tcell.Screen, cfg display.Config) (*View, error) {
	if scr == nil {
		return nil, errors.NilParam()
	}
	if err := scr.Init(); err != nil {
		return nil, errors.New(err)
	}
	scr.HideCursor()
	scr.Clear()
	w, h := scr.Size()
	size := image.Point{X: w, Y: 2 * h}
	if cfg.Size.X > 0 {
		size.X = cfg.Size.X
	}
	if cfg.Size.Y > 0 {
		size.Y = cfg.Size.Y
	}
	v := &View{
		scr:   scr,
		frame: rgb565.NewImage(size.X, size.Y),
		done:  make(chan struct{}),
		log:   cfg.Logger,
	}
	go v.pollEvents()
	return v, nil
}

func (v *View) pollEvents() {
	for {
		switch ev := v.scr.PollEvent().(type) {
		case nil:
			// screen finalized
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				logx.Debug(`stop requested`, v.log, `display`, Name)
				v.stop()
			}
		case *tcell.EventResize:
			v.scr.Sync()
		}
	}
}

func (v *View) stop() { v.once.Do(func() { close(v.done) }) }

func (v *View) Done() <-chan struct{} { return v.done }
func (v *View) Name() string          { return Name }
func (v *View) Size() image.Point     { return v.frame.Bounds().Size() }

func (v *View) PutImage(offset image.Point, img *rgb565.Image) error {
	if img == nil {
		return errors.NilParam()
	}
	display.Compose(v.frame, img, offset)
	return nil
}

func cellColor(c rgb565.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.Red()), int32(c.Green()), int32(c.Blue()))
}

// Flush draws the frame, clipped to the terminal.
func (v *View) Flush() error {
	cols, rows := v.scr.Size()
	for cy := 0; cy < rows && 2*cy < v.frame.Height(); cy++ {
		upper, _ := v.frame.Row(2 * cy)
		lower, okLower := v.frame.Row(2*cy + 1)
		for x := 0; x < cols && x < len(upper); x++ {
			st := tcell.StyleDefault.Foreground(cellColor(upper[x]))
			if okLower {
				st = st.Background(cellColor(lower[x]))
			}
			v.scr.SetContent(x, cy, upperHalfBlock, nil, st)
		}
	}
	v.scr.Show()
	return nil
}

func (v *View) Close() error {
	v.scr.Fini()
	v.stop()
	return nil
}
