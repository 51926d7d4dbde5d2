package panels_test

import (
	"bytes"
	"context"
	"image"
	"log/slog"
	"testing"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/fbstat/internal/errors"
	"github.com/srlehn/fbstat/internal/logx"
	"github.com/srlehn/fbstat/panels"
	"github.com/srlehn/fbstat/rgb565"
	"github.com/srlehn/fbstat/stats"
)

type fakeSource struct {
	mem   stats.MemoryStats
	times []cpu.TimesStat
	fail  bool
}

var errFake = errors.New(`fake failure`)

func (s *fakeSource) Memory(context.Context) (stats.MemoryStats, error) {
	if s.fail {
		return stats.MemoryStats{}, errFake
	}
	return s.mem, nil
}

func (s *fakeSource) CPUTimes(context.Context) (cpu.TimesStat, error) {
	if s.fail || len(s.times) == 0 {
		return cpu.TimesStat{}, errFake
	}
	t := s.times[0]
	s.times = s.times[1:]
	return t, nil
}

func (s *fakeSource) Temperature(context.Context) (float64, error) {
	if s.fail {
		return 0, errFake
	}
	return 47.2, nil
}

func (s *fakeSource) IPAddress(context.Context) (byte, string) {
	if s.fail {
		return stats.NoInterface, stats.NoAddress
	}
	return 'e', `10.1.2.3`
}

func (s *fakeSource) MemorySplit(context.Context) string { return `64/960` }

func (s *fakeSource) FileSystem(context.Context, string) (stats.FileSystemStats, error) {
	if s.fail {
		return stats.FileSystemStats{}, errFake
	}
	return stats.FileSystemStats{Total: 8 << 30, Available: 2 << 30}, nil
}

var testConfig = panels.Config{Width: 64, TraceHeight: 20, GridHeight: 5, YPosition: 3}

func countIn(m *rgb565.Image, rect image.Rectangle, c rgb565.Color) int {
	var n int
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if px, ok := m.Pixel(image.Point{X: x, Y: y}); ok && px == c {
				n++
			}
		}
	}
	return n
}

func TestMemory(t *testing.T) {
	src := &fakeSource{mem: stats.NewMemoryStats(1000, 250, 250, 0)}
	m, err := panels.NewMemory(testConfig, src)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Panel().YPosition())
	assert.Equal(t, 64, m.Panel().Width())

	require.NoError(t, m.Update(context.Background(), time.Unix(61, 0)))
	st := m.Trace().Store()
	require.Equal(t, 1, st.Len())
	assert.Equal(t, int16(10), st.Value(0, 0))
	assert.Equal(t, int16(5), st.Value(1, 0))
	assert.Equal(t, int16(0), st.Value(2, 0))
	assert.Equal(t, uint8(1), st.Time(0))

	src.fail = true
	require.NoError(t, m.Update(context.Background(), time.Unix(62, 0)))
	require.Equal(t, 2, st.Len())
	assert.Equal(t, int16(0), st.Value(0, 1))
}

func TestCPU(t *testing.T) {
	src := &fakeSource{times: []cpu.TimesStat{
		{User: 10, System: 10, Idle: 80},
		{User: 15, Nice: 5, System: 10, Idle: 100},
	}}
	c, err := panels.NewCPU(testConfig, src)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, c.Update(ctx, time.Unix(0, 0)))
	require.NoError(t, c.Update(ctx, time.Unix(1, 0)))

	st := c.Trace().Store()
	require.Equal(t, 2, st.Len())
	// 10% user and 10% system of a 20 pixel trace
	assert.Equal(t, []int16{2, 0, 2}, []int16{st.Value(0, 0), st.Value(1, 0), st.Value(2, 0)})
	// 5 of 30 seconds each for user and nice
	assert.Equal(t, []int16{3, 3, 0}, []int16{st.Value(0, 1), st.Value(1, 1), st.Value(2, 1)})
}

func TestInfo(t *testing.T) {
	var logs bytes.Buffer
	cfg := testConfig
	cfg.Width = 400
	cfg.Logger = logx.Prov(slog.New(slog.NewTextHandler(&logs, nil)))

	src := &fakeSource{times: []cpu.TimesStat{{User: 1, Idle: 1}}}
	p := panels.NewInfo(context.Background(), cfg, src)
	img := p.Panel().Image()
	assert.Equal(t, 2*(13+4), img.Height())
	require.NoError(t, p.Update(context.Background(), time.Now()))

	yellow := rgb565.New(255, 255, 0)
	white := rgb565.New(255, 255, 255)
	line1 := image.Rect(0, 0, img.Width(), 17)
	line2 := image.Rect(0, 17, img.Width(), 34)
	for _, r := range []image.Rectangle{line1, line2} {
		assert.Positive(t, countIn(img, r, yellow), `%v`, r)
		assert.Positive(t, countIn(img, r, white), `%v`, r)
	}
	assert.Empty(t, logs.String())

	src.fail = true
	require.NoError(t, p.Update(context.Background(), time.Now()))
	assert.Contains(t, logs.String(), `fake failure`)
}
