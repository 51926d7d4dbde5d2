package panels

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/srlehn/fbstat/glyph"
	"github.com/srlehn/fbstat/internal/logx"
	"github.com/srlehn/fbstat/panel"
	"github.com/srlehn/fbstat/rgb565"
	"github.com/srlehn/fbstat/stats"
)

var (
	infoHeading    = rgb565.New(255, 255, 0)
	infoForeground = rgb565.New(255, 255, 255)
	infoBackground = rgb565.New(0, 0, 0)
)

const (
	defaultFileSystemPath = `/tmp`
	notAvailable          = `N/A`
)

// Info shows two lines of text: network address, memory split and cpu
// usage, then time, temperature and filesystem usage.
type Info struct {
	panel       *panel.Panel
	face        *glyph.Face
	src         stats.Source
	cpu         *stats.CPU
	memorySplit string
	fsPath      string
	log         logx.LoggerProvider
}

var _ Updater = (*Info)(nil)

func NewInfo(ctx context.Context, cfg Config, src stats.Source) *Info {
	face := cfg.face()
	fsPath := cfg.FileSystemPath
	if len(fsPath) == 0 {
		fsPath = defaultFileSystemPath
	}
	return &Info{
		panel: panel.New(cfg.Width, 2*(face.Height()+4), cfg.YPosition),
		face:  face,
		src:   src,
		cpu:   stats.NewCPU(src),
		// the split is fixed at boot
		memorySplit: src.MemorySplit(ctx),
		fsPath:      fsPath,
		log:         cfg.Logger,
	}
}

func (p *Info) Panel() *panel.Panel { return p.panel }

func (p *Info) Update(ctx context.Context, now time.Time) error {
	img := p.panel.Image()
	img.Clear(infoBackground)

	heading := func(pos image.Point, s string) image.Point {
		return p.face.DrawString(img, pos, s, infoHeading)
	}
	text := func(pos image.Point, s string) image.Point {
		return p.face.DrawString(img, pos, s, infoForeground)
	}

	iface, addr := p.src.IPAddress(ctx)
	cpuUsage := notAvailable
	if s, err := p.cpu.Sample(ctx); !logx.IsErr(err, p.log, slog.LevelWarn, `panel`, `info`) {
		cpuUsage = s.String()
	}

	pos := heading(image.Point{}, `ip(`)
	pos = p.face.DrawChar(img, pos, rune(iface), infoForeground)
	pos = heading(pos, `) `)
	pos = text(pos, addr)
	pos = heading(pos, ` memory `)
	pos = text(pos, p.memorySplit)
	pos = text(pos, ` MB`)
	pos = heading(pos, ` CPU `)
	text(pos, cpuUsage)

	temperature := notAvailable
	if t, err := p.src.Temperature(ctx); !logx.IsErr(err, p.log, slog.LevelDebug, `panel`, `info`) {
		temperature = fmt.Sprintf(`%.1f`, t)
	}
	storage := notAvailable
	if fs, err := p.src.FileSystem(ctx, p.fsPath); !logx.IsErr(err, p.log, slog.LevelWarn, `panel`, `info`) {
		storage = fs.String()
	}

	pos = heading(image.Point{Y: p.face.Height() + 4}, `time `)
	pos = text(pos, stats.TimeString(now))
	pos = heading(pos, ` temperature `)
	pos = text(pos, temperature)
	pos = p.face.DrawChar(img, pos, '°', infoForeground)
	pos = text(pos, `C`)
	pos = heading(pos, ` hdd `)
	text(pos, storage)
	return nil
}
