package trace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/fbstat/trace"
)

func column(s *trace.Store, i int) []int16 {
	col := make([]int16, s.Series())
	for k := range col {
		col[k] = s.Value(k, i)
	}
	return col
}

func firstSeries(s *trace.Store) []int16 {
	var vals []int16
	for i := 0; i < s.Len(); i++ {
		vals = append(vals, s.Value(0, i))
	}
	return vals
}

func TestStoreScenario(t *testing.T) {
	s := trace.NewStore(4, 3)
	s.Push([]int16{1, 0, 0}, 5)
	s.Push([]int16{2, 0, 0}, 10)
	s.Push([]int16{3, 0, 0}, 15)
	s.Push([]int16{1, 0, 0}, 20)
	require.Equal(t, 4, s.Len())
	assert.Equal(t, []int16{1, 2, 3, 1}, firstSeries(s))

	s.Push([]int16{2, 0, 0}, 25)
	require.Equal(t, 4, s.Len())
	assert.Equal(t, []int16{2, 3, 1, 2}, firstSeries(s))
	var times []uint8
	for i := 0; i < s.Len(); i++ {
		times = append(times, s.Time(i))
	}
	assert.Equal(t, []uint8{10, 15, 20, 25}, times)
}

func TestStoreSlidingWindow(t *testing.T) {
	const capacity = 6
	s := trace.NewStore(capacity, 2)
	assert.Equal(t, capacity, s.Cap())
	assert.Equal(t, 2, s.Series())
	assert.Zero(t, s.Len())

	for n := 0; n < capacity; n++ {
		s.Push([]int16{int16(n), int16(-n)}, uint8(n))
		assert.Equal(t, n+1, s.Len())
		for i := 0; i <= n; i++ {
			assert.Equal(t, []int16{int16(i), int16(-i)}, column(s, i))
		}
	}

	for extra := 0; extra < 2*capacity+1; extra++ {
		before := make([][]int16, s.Len())
		for i := range before {
			before[i] = column(s, i)
		}
		v := int16(100 + extra)
		s.Push([]int16{v, -v}, uint8(extra%60))
		assert.Equal(t, capacity, s.Len())
		for i := 0; i < capacity-1; i++ {
			assert.Equal(t, before[i+1], column(s, i))
		}
		assert.Equal(t, []int16{v, -v}, column(s, capacity-1))
		assert.Equal(t, uint8(extra%60), s.Time(capacity-1))
	}
}

func TestStoreShortAndLongSamples(t *testing.T) {
	s := trace.NewStore(2, 3)
	s.Push([]int16{7}, 1)
	s.Push([]int16{1, 2, 3, 4}, 2)
	assert.Equal(t, []int16{7, 0, 0}, column(s, 0))
	assert.Equal(t, []int16{1, 2, 3}, column(s, 1))
}

func TestStoreZeroCapacity(t *testing.T) {
	s := trace.NewStore(0, 2)
	s.Push([]int16{1, 2}, 3)
	assert.Zero(t, s.Len())
	assert.Zero(t, s.Cap())
}
