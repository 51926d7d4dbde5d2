// Package display defines where finished panels go and keeps a registry of
// the available implementations.
package display

import (
	"image"
	"slices"
	"sync"

	"github.com/srlehn/fbstat/internal/errors"
	"github.com/srlehn/fbstat/internal/logx"
	"github.com/srlehn/fbstat/panel"
	"github.com/srlehn/fbstat/rgb565"
)

type Display interface {
	panel.Sink
	Name() string
	// Size is the visible area in pixels.
	Size() image.Point
	// Flush presents everything put since the last call.
	Flush() error
	Close() error
}

// Stopper is implemented by displays the user can ask to quit.
type Stopper interface {
	Done() <-chan struct{}
}

type Config struct {
	// Device is the framebuffer device, empty for $FRAMEBUFFER or /dev/fb0.
	Device string
	// Output is the file snapshots are written to, "-" for stdout.
	Output string
	// Size overrides the display size for displays without a native one.
	Size image.Point
	// Scale is the integer magnification of snapshots.
	Scale  int
	Logger logx.LoggerProvider
}

type Opener func(cfg Config) (Display, error)

var (
	registry   = make(map[string]Opener)
	registryMu sync.Mutex
)

// Register makes a display available under name, usually from init.
func Register(name string, open Opener) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if open == nil {
		panic(`display: nil opener for ` + name)
	}
	if _, dup := registry[name]; dup {
		panic(`display: duplicate registration of ` + name)
	}
	registry[name] = open
}

// Open opens the display registered under name.
func Open(name string, cfg Config) (Display, error) {
	registryMu.Lock()
	open, ok := registry[name]
	registryMu.Unlock()
	if !ok {
		return nil, errors.Errorf(`unknown display %q, available: %v`, name, Names())
	}
	d, err := open(cfg)
	if err != nil {
		return nil, errors.WrapPrefix(err, name, 0)
	}
	return d, nil
}

// Names lists the registered displays in lexical order.
func Names() []string {
	registryMu.Lock()
	defer registryMu.Unlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Compose copies src into dst with its top left corner at offset,
// clipped to dst.
func Compose(dst, src *rgb565.Image, offset image.Point) {
	if dst == nil || src == nil {
		return
	}
	for y := 0; y < src.Height(); y++ {
		dstRow, ok := dst.Row(offset.Y + y)
		if !ok {
			continue
		}
		srcRow, _ := src.Row(y)
		x0 := max(offset.X, 0)
		x1 := min(offset.X+len(srcRow), len(dstRow))
		if x0 >= x1 {
			continue
		}
		copy(dstRow[x0:x1], srcRow[x0-offset.X:x1-offset.X])
	}
}
