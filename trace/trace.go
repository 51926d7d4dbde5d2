// Package trace renders a scrolling stacked bar chart of several series, one
// pixel column per sample, with a horizontal grid and minute markers that
// stay visible through the bars.
package trace

import (
	"image"
	"math"
	"time"

	"github.com/srlehn/fbstat/glyph"
	"github.com/srlehn/fbstat/internal/errors"
	"github.com/srlehn/fbstat/panel"
	"github.com/srlehn/fbstat/rgb565"
)

// DefaultGridAlpha is the weight of the series color in its grid variant.
const DefaultGridAlpha = 63

var (
	DefaultForeground = rgb565.New(255, 255, 255)
	DefaultBackground = rgb565.New(0, 0, 0)
	DefaultGrid       = rgb565.New(48, 48, 48)
)

// Series describes one stacked segment.
type Series struct {
	Name  string
	Color rgb565.Color
}

type Config struct {
	Title       string
	Series      []Series // bottom to top
	Width       int
	TraceHeight int
	GridHeight  int
	YPosition   int
	Face        *glyph.Face
	Colors      *Colors // nil for DefaultColors
}

// Colors of the header text, the empty trace area and the grid.
// GridAlpha is the weight of the series color in its grid variant.
type Colors struct {
	Foreground rgb565.Color
	Background rgb565.Color
	Grid       rgb565.Color
	GridAlpha  uint8
}

func DefaultColors() Colors {
	return Colors{
		Foreground: DefaultForeground,
		Background: DefaultBackground,
		Grid:       DefaultGrid,
		GridAlpha:  DefaultGridAlpha,
	}
}

type paint struct {
	plain rgb565.Color
	grid  rgb565.Color
}

// Trace owns a panel and the window of samples shown on it.
type Trace struct {
	*panel.Panel
	traceHeight int
	gridHeight  int
	store       *Store
	palette     []paint
	background  rgb565.Color
	grid        rgb565.Color
	heights     []int16
}

// New sets up the panel: header below the trace area and the empty grid.
func New(cfg Config) (*Trace, error) {
	if cfg.Face == nil {
		cfg.Face = glyph.Basic()
	}
	if cfg.Width <= 0 || cfg.TraceHeight <= 0 {
		return nil, errors.Errorf(`invalid trace size %dx%d`, cfg.Width, cfg.TraceHeight)
	}
	if cfg.GridHeight <= 0 {
		return nil, errors.Errorf(`invalid grid height %d`, cfg.GridHeight)
	}
	if len(cfg.Series) == 0 {
		return nil, errors.New(`trace without series`)
	}
	colors := DefaultColors()
	if cfg.Colors != nil {
		colors = *cfg.Colors
	}

	fontHeight := cfg.Face.Height()
	t := &Trace{
		Panel:       panel.New(cfg.Width, cfg.TraceHeight+fontHeight+4, cfg.YPosition),
		traceHeight: cfg.TraceHeight,
		gridHeight:  cfg.GridHeight,
		store:       NewStore(cfg.Width, len(cfg.Series)),
		palette:     make([]paint, len(cfg.Series)),
		background:  colors.Background,
		grid:        colors.Grid,
		heights:     make([]int16, len(cfg.Series)),
	}
	for i, s := range cfg.Series {
		t.palette[i] = paint{
			plain: s.Color,
			grid:  rgb565.Blend(colors.GridAlpha, colors.Grid, s.Color),
		}
	}

	img := t.Image()
	img.Clear(colors.Background)

	pos := image.Point{Y: img.Height() - 2 - fontHeight}
	pos = cfg.Face.DrawString(img, pos, cfg.Title, colors.Foreground)
	for i, s := range cfg.Series {
		sep := ` `
		if i == 0 {
			sep = ` (`
		}
		pos = cfg.Face.DrawString(img, pos, sep+s.Name+`:`, colors.Foreground)
		pos = cfg.Face.DrawSwatch(img, pos, s.Color)
	}
	cfg.Face.DrawString(img, pos, `)`, colors.Foreground)

	for j := 0; j < cfg.TraceHeight+1; j += cfg.GridHeight {
		for i := 0; i < img.Width(); i++ {
			img.SetPixel(image.Point{X: i, Y: j}, colors.Grid)
		}
	}
	return t, nil
}

func (t *Trace) Store() *Store { return t.store }

// GridColor returns the plain and grid blended color of series i.
func (t *Trace) GridColor(i int) (plain, grid rgb565.Color) {
	return t.palette[i].plain, t.palette[i].grid
}

// Normalize scales value to a bar height relative to total.
// A non positive total yields 0.
func Normalize(value, total float64, traceHeight int) int16 {
	if !(total > 0) || !(value > 0) {
		return 0
	}
	h := math.Floor(value * float64(traceHeight) / total)
	if h > math.MaxInt16 {
		return math.MaxInt16
	}
	return int16(h)
}

// Update normalizes values against total, appends them and repaints.
// The values must not add up to more than total.
func (t *Trace) Update(values []float64, total float64, now time.Time) {
	for i := range t.heights {
		var v float64
		if i < len(values) {
			v = values[i]
		}
		t.heights[i] = Normalize(v, total, t.traceHeight)
	}
	t.UpdateHeights(t.heights, now)
}

// UpdateHeights appends already normalized heights and repaints.
func (t *Trace) UpdateHeights(heights []int16, now time.Time) {
	t.store.Push(heights, uint8(now.Second()))
	t.repaint()
}

// repaint draws every column, the window scrolls when full.
func (t *Trace) repaint() {
	img := t.Image()
	for i := 0; i < t.store.Len(); i++ {
		minute := t.store.Time(i) == 0
		onGrid := func(j int) bool { return minute || j%t.gridHeight == 0 }

		j := t.traceHeight - 1
		for s, p := range t.palette {
			for n := int16(0); n < t.store.Value(s, i); n++ {
				c := p.plain
				if onGrid(j) {
					c = p.grid
				}
				img.SetPixel(image.Point{X: i, Y: j}, c)
				j--
			}
		}
		for ; j >= 0; j-- {
			c := t.background
			if onGrid(j) {
				c = t.grid
			}
			img.SetPixel(image.Point{X: i, Y: j}, c)
		}
	}
}
