package panels

import (
	"context"
	"log/slog"
	"time"

	"github.com/srlehn/fbstat/internal/logx"
	"github.com/srlehn/fbstat/panel"
	"github.com/srlehn/fbstat/rgb565"
	"github.com/srlehn/fbstat/stats"
	"github.com/srlehn/fbstat/trace"
)

var memorySeries = []trace.Series{
	{Name: `used`, Color: rgb565.New(0, 109, 44)},
	{Name: `buffers`, Color: rgb565.New(102, 194, 164)},
	{Name: `cached`, Color: rgb565.New(237, 248, 251)},
}

// Memory traces used, buffers and cached memory relative to total memory.
type Memory struct {
	trace *trace.Trace
	src   stats.Source
	log   logx.LoggerProvider
}

var _ Updater = (*Memory)(nil)

func NewMemory(cfg Config, src stats.Source) (*Memory, error) {
	tr, err := trace.New(trace.Config{
		Title:       `Memory`,
		Series:      memorySeries,
		Width:       cfg.Width,
		TraceHeight: cfg.TraceHeight,
		GridHeight:  cfg.GridHeight,
		YPosition:   cfg.YPosition,
		Face:        cfg.face(),
	})
	if err != nil {
		return nil, err
	}
	return &Memory{trace: tr, src: src, log: cfg.Logger}, nil
}

func (m *Memory) Panel() *panel.Panel { return m.trace.Panel }
func (m *Memory) Trace() *trace.Trace { return m.trace }

// Update appends a sample. Without readings an empty column is appended
// so the trace keeps scrolling in time.
func (m *Memory) Update(ctx context.Context, now time.Time) error {
	ms, err := m.src.Memory(ctx)
	if logx.IsErr(err, m.log, slog.LevelWarn, `panel`, `memory`) {
		ms = stats.MemoryStats{}
	}
	m.trace.Update(
		[]float64{float64(ms.Used), float64(ms.Buffers), float64(ms.Cached)},
		float64(ms.Total),
		now,
	)
	return nil
}
