package fbstat

import (
	"log/slog"
	"time"

	"github.com/srlehn/fbstat/display"
	"github.com/srlehn/fbstat/glyph"
	"github.com/srlehn/fbstat/internal/errors"
	"github.com/srlehn/fbstat/stats"
)

type Option interface {
	ApplyOption(a *App) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*App) error

func (o OptFunc) ApplyOption(a *App) error { return o(a) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(a *App) error { return a.setOptions([]Option(o)...) }

func (a *App) setOptions(opts ...Option) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(a); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

// SetDisplay selects a registered display by name.
func SetDisplay(name string, cfg display.Config) Option {
	return OptFunc(func(a *App) error {
		a.displayName = name
		a.displayCfg = cfg
		return nil
	})
}

// SetDisplayInstance uses an already opened display. The app takes
// ownership and closes it.
func SetDisplayInstance(d display.Display) Option {
	return OptFunc(func(a *App) error {
		if d == nil {
			return errors.NilParam()
		}
		a.display = d
		return nil
	})
}

func SetInterval(d time.Duration) Option {
	return OptFunc(func(a *App) error {
		if d <= 0 {
			return errors.Errorf(`invalid interval %v`, d)
		}
		a.interval = d
		return nil
	})
}

func SetTraceHeight(h int) Option {
	return OptFunc(func(a *App) error {
		if h <= 0 {
			return errors.Errorf(`invalid trace height %d`, h)
		}
		a.traceHeight = h
		return nil
	})
}

func SetGridHeight(h int) Option {
	return OptFunc(func(a *App) error {
		if h <= 0 {
			return errors.Errorf(`invalid grid height %d`, h)
		}
		a.gridHeight = h
		return nil
	})
}

// SetWidth sets the panel width, 0 uses the display width.
func SetWidth(w int) Option {
	return OptFunc(func(a *App) error {
		if w < 0 {
			return errors.Errorf(`invalid width %d`, w)
		}
		a.width = w
		return nil
	})
}

func SetFace(f *glyph.Face) Option {
	return OptFunc(func(a *App) error { a.face = f; return nil })
}

func SetFileSystemPath(path string) Option {
	return OptFunc(func(a *App) error { a.fsPath = path; return nil })
}

// SetPanels sets the panels from top to bottom.
func SetPanels(names ...string) Option {
	return OptFunc(func(a *App) error {
		for _, name := range names {
			if _, ok := panelConstructors[name]; !ok {
				return errors.Errorf(`unknown panel %q`, name)
			}
		}
		a.panelNames = names
		return nil
	})
}

func SetSource(src stats.Source) Option {
	return OptFunc(func(a *App) error {
		if src == nil {
			return errors.NilParam()
		}
		a.source = src
		return nil
	})
}

func SetSLogger(h slog.Handler, enable bool) Option {
	return OptFunc(func(a *App) error {
		if enable {
			if h == nil {
				a.logger = slog.Default()
			} else {
				a.logger = slog.New(h)
			}
		} else {
			a.logger = nil
		}
		return nil
	})
}
