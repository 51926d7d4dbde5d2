// Package panels contains the panels shown by fbstat, each fed by a
// stats.Source.
package panels

import (
	"context"
	"time"

	"github.com/srlehn/fbstat/glyph"
	"github.com/srlehn/fbstat/internal/logx"
	"github.com/srlehn/fbstat/panel"
)

// Updater is a panel that refreshes its image once per tick.
type Updater interface {
	Update(ctx context.Context, now time.Time) error
	Panel() *panel.Panel
}

// Config is shared by all panels.
type Config struct {
	Width       int
	TraceHeight int
	GridHeight  int
	YPosition   int
	Face        *glyph.Face
	// FileSystemPath is the mount point whose usage the info panel shows.
	FileSystemPath string
	Logger         logx.LoggerProvider
}

func (c Config) face() *glyph.Face {
	if c.Face == nil {
		return glyph.Basic()
	}
	return c.Face
}
