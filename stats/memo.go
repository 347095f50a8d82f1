package stats

import (
	"math"
	"slices"
	"sync"

	"github.com/arloliu/varistat/internal/hash"
	"github.com/arloliu/varistat/internal/options"
)

// DefaultMemoCapacity is the number of results a Memo keeps when no capacity is given.
const DefaultMemoCapacity = 128

// Memo caches Calculate results keyed by an xxHash64 fingerprint of the sample
// and its configuration.
//
// Interactive front ends recompute the same summary whenever a view is
// redrawn; Memo makes those repeats free. Entries are evicted in insertion
// order once the capacity is reached. Results are returned as deep copies, so
// callers may modify them freely. A fingerprint match is confirmed against the
// stored sample and configuration before a cached result is returned.
//
// A Memo is safe for concurrent use.
type Memo struct {
	mu       sync.Mutex
	capacity int
	entries  map[uint64]memoEntry
	order    []uint64
	hits     uint64
	misses   uint64

	key func(values []float64, cfg Config) uint64
}

type memoEntry struct {
	values []float64
	cfg    Config
	res    Result
}

func (e memoEntry) matches(values []float64, cfg Config) bool {
	return slices.EqualFunc(e.values, values, sameFloat) &&
		sameOptional(e.cfg.Limits.USL, cfg.Limits.USL) &&
		sameOptional(e.cfg.Limits.LSL, cfg.Limits.LSL) &&
		sameOptional(e.cfg.Limits.Target, cfg.Limits.Target) &&
		slices.EqualFunc(e.cfg.Grades, cfg.Grades, func(a, b GradeBand) bool {
			return sameFloat(a.Max, b.Max) && a.Label == b.Label && a.Color == b.Color
		})
}

// sameFloat compares bit patterns, the same identity the fingerprint hashes.
func sameFloat(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}

func sameOptional(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}

	return sameFloat(*a, *b)
}

// NewMemo creates a memo holding at most capacity results.
// A capacity <= 0 selects DefaultMemoCapacity.
func NewMemo(capacity int) *Memo {
	if capacity <= 0 {
		capacity = DefaultMemoCapacity
	}

	return &Memo{
		capacity: capacity,
		entries:  make(map[uint64]memoEntry, capacity),
		order:    make([]uint64, 0, capacity),
		key:      fingerprint,
	}
}

// Calculate returns the cached result for the sample and options, computing
// and storing it on a miss. Errors are never cached.
func (m *Memo) Calculate(values []float64, opts ...Option) (Result, error) {
	cfg, err := options.Build(Config{}, opts...)
	if err != nil {
		return Result{}, err
	}

	key := m.key(values, cfg)

	m.mu.Lock()
	if e, ok := m.entries[key]; ok && e.matches(values, cfg) {
		m.hits++
		m.mu.Unlock()

		return e.res.Clone(), nil
	}
	m.misses++
	m.mu.Unlock()

	res, err := calculate(values, cfg)
	if err != nil {
		return Result{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// A colliding entry is replaced in place and keeps its eviction slot.
	if _, ok := m.entries[key]; !ok {
		if len(m.order) >= m.capacity {
			oldest := m.order[0]
			m.order = m.order[1:]
			delete(m.entries, oldest)
		}
		m.order = append(m.order, key)
	}
	m.entries[key] = memoEntry{
		values: slices.Clone(values),
		cfg:    Config{Limits: cloneLimits(cfg.Limits), Grades: slices.Clone(cfg.Grades)},
		res:    res.Clone(),
	}

	return res, nil
}

// Len returns the number of cached results.
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries)
}

// Stats returns the hit and miss counters.
func (m *Memo) Stats() (hits, misses uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.hits, m.misses
}

// Reset drops every cached result and zeroes the counters.
func (m *Memo) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.entries)
	m.order = m.order[:0]
	m.hits, m.misses = 0, 0
}

func fingerprint(values []float64, cfg Config) uint64 {
	fp := hash.NewFingerprint().
		Floats(values).
		OptionalFloat(cfg.Limits.USL).
		OptionalFloat(cfg.Limits.LSL).
		OptionalFloat(cfg.Limits.Target).
		Uint(uint64(len(cfg.Grades)))

	for _, b := range cfg.Grades {
		fp.Float(b.Max).String(b.Label).String(b.Color)
	}

	return fp.Sum()
}
