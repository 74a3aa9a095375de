// apps/wordlesim/internal/store/memory.go
//
// In-memory tally of simulated game outcomes, keyed by opening word and
// target word.
//
// Characteristics:
//   - One histogram (tries → games) per (opener, target) pair.
//   - Concurrency-safe via RWMutex so batch workers can record in parallel.
//   - State lives only as long as the process.

package store

import (
	"context"
	"sort"
	"sync"

	"github.com/robalobadob/wordle/apps/wordlesim/internal/game"
)

// Store collects game results.
type Store interface {
	// Record adds one outcome of a game opened with first against target.
	Record(ctx context.Context, first, target string, r game.Result) error

	// Tallies returns a snapshot of every histogram, sorted by opener and
	// then by target.
	Tallies(ctx context.Context) ([]Tally, error)
}

// Tally is the outcome histogram of one target under one opening word.
type Tally struct {
	Opener    string
	Target    string
	Histogram map[int]int // reported tries → number of games
}

type key struct{ opener, target string }

// Games is the number of recorded games.
func (t Tally) Games() int {
	n := 0
	for _, c := range t.Histogram {
		n += c
	}
	return n
}

// Best is the lowest non-zero try count, or 0 when none was recorded.
func (t Tally) Best() int {
	best := 0
	for tries := range t.Histogram {
		if tries > 0 && (best == 0 || tries < best) {
			best = tries
		}
	}
	return best
}

// Worst is the highest try count recorded.
func (t Tally) Worst() int {
	worst := 0
	for tries := range t.Histogram {
		if tries > worst {
			worst = tries
		}
	}
	return worst
}

// Average is the mean try count over games with non-zero tries.
// ok is false when every game reported zero.
func (t Tally) Average() (avg float64, ok bool) {
	sum, n := 0, 0
	for tries, c := range t.Histogram {
		if tries == 0 {
			continue
		}
		sum += tries * c
		n += c
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// Failures counts games whose tries exceeded budget.
func (t Tally) Failures(budget int) int {
	n := 0
	for tries, c := range t.Histogram {
		if tries > budget {
			n += c
		}
	}
	return n
}

// memory is a map-based Store implementation.
type memory struct {
	mu      sync.RWMutex        // guards tallies
	tallies map[key]map[int]int
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{tallies: make(map[key]map[int]int)}
}

// Record bumps the histogram bucket for r.Tries.
func (m *memory) Record(ctx context.Context, first, target string, r game.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := key{first, target}
	h, ok := m.tallies[k]
	if !ok {
		h = make(map[int]int)
		m.tallies[k] = h
	}
	h[r.Tries]++
	return nil
}

// Tallies copies every histogram so callers never share the store's maps.
func (m *memory) Tallies(ctx context.Context) ([]Tally, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Tally, 0, len(m.tallies))
	for k, h := range m.tallies {
		cp := make(map[int]int, len(h))
		for k, v := range h {
			cp[k] = v
		}
		out = append(out, Tally{Opener: k.opener, Target: k.target, Histogram: cp})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Opener != out[j].Opener {
			return out[i].Opener < out[j].Opener
		}
		return out[i].Target < out[j].Target
	})
	return out, nil
}
