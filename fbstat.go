// Package fbstat shows system statistics as stacked panels on a small
// display, typically the framebuffer of a single board computer.
package fbstat

import (
	"context"
	"log/slog"
	"time"

	"github.com/srlehn/fbstat/display"
	"github.com/srlehn/fbstat/display/framebuffer"
	"github.com/srlehn/fbstat/glyph"
	"github.com/srlehn/fbstat/internal/errors"
	"github.com/srlehn/fbstat/internal/logx"
	"github.com/srlehn/fbstat/panels"
	"github.com/srlehn/fbstat/rgb565"
	"github.com/srlehn/fbstat/stats"
)

const (
	PanelInfo   = `info`
	PanelMemory = `memory`
	PanelCPU    = `cpu`
)

var (
	// chosen defaults
	DefaultDisplay     = framebuffer.Name
	DefaultInterval    = time.Second
	DefaultTraceHeight = 80
	DefaultGridHeight  = 20
	DefaultPanels      = []string{PanelInfo, PanelMemory, PanelCPU}
)

type panelConstructor func(ctx context.Context, cfg panels.Config, src stats.Source) (panels.Updater, error)

var panelConstructors = map[string]panelConstructor{
	PanelInfo: func(ctx context.Context, cfg panels.Config, src stats.Source) (panels.Updater, error) {
		return panels.NewInfo(ctx, cfg, src), nil
	},
	PanelMemory: func(_ context.Context, cfg panels.Config, src stats.Source) (panels.Updater, error) {
		return panels.NewMemory(cfg, src)
	},
	PanelCPU: func(_ context.Context, cfg panels.Config, src stats.Source) (panels.Updater, error) {
		return panels.NewCPU(cfg, src)
	},
}

// App renders its panels onto a display once per tick.
type App struct {
	display     display.Display
	displayName string
	displayCfg  display.Config
	interval    time.Duration
	traceHeight int
	gridHeight  int
	width       int
	face        *glyph.Face
	fsPath      string
	panelNames  []string
	source      stats.Source
	logger      *slog.Logger
	panels      []panels.Updater
}

var _ logx.LoggerProvider = (*App)(nil)

func (a *App) Logger() *slog.Logger {
	if a == nil {
		return nil
	}
	return a.logger
}

// New opens the display and lays out the panels from top to bottom.
func New(ctx context.Context, opts ...Option) (*App, error) {
	a := &App{
		displayName: DefaultDisplay,
		interval:    DefaultInterval,
		traceHeight: DefaultTraceHeight,
		gridHeight:  DefaultGridHeight,
		panelNames:  DefaultPanels,
		source:      stats.System{},
	}
	if err := a.setOptions(opts...); err != nil {
		return nil, err
	}
	if a.face == nil {
		a.face = glyph.Basic()
	}
	if a.display == nil {
		if a.displayCfg.Logger == nil {
			a.displayCfg.Logger = a
		}
		d, err := display.Open(a.displayName, a.displayCfg)
		if err != nil {
			return nil, err
		}
		a.display = d
	}
	if err := a.layout(ctx); err != nil {
		_ = a.display.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) layout(ctx context.Context) error {
	size := a.display.Size()
	width := a.width
	if width == 0 {
		width = size.X
	}
	if width <= 0 {
		return errors.Errorf(`display %q has no width`, a.display.Name())
	}
	cfg := panels.Config{
		Width:          width,
		TraceHeight:    a.traceHeight,
		GridHeight:     a.gridHeight,
		Face:           a.face,
		FileSystemPath: a.fsPath,
		Logger:         a,
	}
	for _, name := range a.panelNames {
		construct, ok := panelConstructors[name]
		if !ok {
			return errors.Errorf(`unknown panel %q`, name)
		}
		p, err := construct(ctx, cfg, a.source)
		if err != nil {
			return errors.WrapPrefix(err, name, 0)
		}
		a.panels = append(a.panels, p)
		cfg.YPosition = p.Panel().Bottom()
	}
	if cfg.YPosition > size.Y {
		logx.Warn(`panels exceed display height`, a, `height`, cfg.YPosition, `display_height`, size.Y)
	}
	if cl, ok := a.display.(interface{ Clear(rgb565.Color) error }); ok {
		if err := cl.Clear(rgb565.New(0, 0, 0)); err != nil {
			return err
		}
	}
	logx.Info(`layout done`, a, `display`, a.display.Name(), `panels`, a.panelNames, `width`, width, `height`, cfg.YPosition)
	return nil
}

// Panels returns the panels from top to bottom.
func (a *App) Panels() []panels.Updater { return a.panels }

// Tick samples, repaints and presents every panel once.
func (a *App) Tick(ctx context.Context, now time.Time) error {
	return logx.TimeIt(func() error {
		for _, p := range a.panels {
			if err := p.Update(ctx, now); err != nil {
				return err
			}
			if err := p.Panel().Put(a.display); err != nil {
				return err
			}
		}
		return a.display.Flush()
	}, `tick`, a)
}

// Run ticks until ctx is done or the display asks to stop.
func (a *App) Run(ctx context.Context) error {
	var stop <-chan struct{}
	if s, ok := a.display.(display.Stopper); ok {
		stop = s.Done()
	}
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()
	now := time.Now()
	for {
		if err := a.Tick(ctx, now); err != nil {
			return err
		}
		// stopping takes precedence over pending ticks
		select {
		case <-ctx.Done():
			return nil
		case <-stop:
			return nil
		default:
		}
		select {
		case <-ctx.Done():
			return nil
		case <-stop:
			return nil
		case now = <-ticker.C:
		}
	}
}

func (a *App) Close() error {
	if a == nil || a.display == nil {
		return nil
	}
	return a.display.Close()
}
