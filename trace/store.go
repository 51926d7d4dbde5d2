package trace

// Store is a sliding window of samples, one column per sample.
// Every column holds one height per series and the second of the minute it
// was sampled at. Once the window is full each push evicts the oldest column.
//
// Columns live in a ring: column i of the window is slot (head+i)%capacity.
type Store struct {
	values [][]int16
	time   []uint8
	head   int
	count  int
}

// NewStore allocates a window of capacity columns for the given number of
// series.
func NewStore(capacity, series int) *Store {
	capacity = max(capacity, 0)
	series = max(series, 0)
	s := &Store{
		values: make([][]int16, series),
		time:   make([]uint8, capacity),
	}
	for i := range s.values {
		s.values[i] = make([]int16, capacity)
	}
	return s
}

// Push appends a sample. Missing values are stored as 0, surplus values are
// dropped.
func (s *Store) Push(values []int16, timeBucket uint8) {
	capacity := len(s.time)
	if capacity == 0 {
		return
	}
	var slot int
	if s.count < capacity {
		slot = (s.head + s.count) % capacity
		s.count++
	} else {
		// the oldest slot becomes the newest
		slot = s.head
		s.head = (s.head + 1) % capacity
	}
	for i, series := range s.values {
		var v int16
		if i < len(values) {
			v = values[i]
		}
		series[slot] = v
	}
	s.time[slot] = timeBucket
}

// Len is the number of columns holding samples.
func (s *Store) Len() int { return s.count }

func (s *Store) Cap() int    { return len(s.time) }
func (s *Store) Series() int { return len(s.values) }

func (s *Store) slot(i int) int { return (s.head + i) % len(s.time) }

// Value returns the height of series at column i, i < Len().
func (s *Store) Value(series, i int) int16 { return s.values[series][s.slot(i)] }

// Time returns the time bucket of column i, i < Len().
func (s *Store) Time(i int) uint8 { return s.time[s.slot(i)] }
