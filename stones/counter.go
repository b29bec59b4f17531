package stones

import (
	"fmt"
	"math/bits"
	"slices"

	"github.com/samber/lo"
)

// The generation counts reported by Solve.
const (
	ShortDepth = 25
	LongDepth  = 75
)

// A Counter counts descendants of stones without building the row.
//
// Counting happens in two phases. Sweep walks breadth-first from a set of
// starting stones and caches the transition of every stone reachable within
// the given number of blinks. Count then recurses over those cached
// transitions, memoizing the count for each (stone, depth) pair. A Counter
// may be reused across calls; its caches only grow.
//
// A Counter is not safe for concurrent use.
type Counter struct {
	next map[uint64][]uint64
	memo map[memoKey]uint64

	visited int
	hits    int
	misses  int
}

type memoKey struct {
	stone uint64
	depth int
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{
		next: make(map[uint64][]uint64),
		memo: make(map[memoKey]uint64),
	}
}

// Sweep caches the transition of every stone reachable from stones within
// depth blinks. It returns an error wrapping ErrOverflow if any reachable
// stone cannot be multiplied without overflowing; transitions cached before
// the failure remain valid.
func (c *Counter) Sweep(stones []uint64, depth int) error {
	if depth < 1 {
		panic(fmt.Sprintf("stones: sweep to depth %d", depth))
	}
	// firstSeen records the remaining depth at which each stone was first
	// reached in this sweep. Levels are visited in decreasing remaining
	// depth, so a stone can never show up again with more depth remaining.
	firstSeen := make(map[uint64]int)
	frontier := slices.Clone(stones)
	for ; depth > 0; depth-- {
		var next []uint64
		for _, stone := range frontier {
			if d, ok := firstSeen[stone]; ok {
				if d < depth {
					panic(fmt.Sprintf("stones: stone %d first seen at depth %d, seen again at depth %d", stone, d, depth))
				}
				if d > depth {
					continue
				}
			} else {
				firstSeen[stone] = depth
			}
			c.visited++
			t, ok := c.next[stone]
			if !ok {
				var err error
				t, err = Transition(stone)
				if err != nil {
					return err
				}
				c.next[stone] = t
			}
			next = append(next, t...)
		}
		next = lo.Uniq(next)
		slices.Sort(next)
		frontier = next
	}
	return nil
}

// Count returns the number of stones that stone becomes after depth blinks.
// The stone's transitions must already be cached by a Sweep reaching at
// least depth blinks; Count panics otherwise, or if depth < 1.
func (c *Counter) Count(stone uint64, depth int) uint64 {
	if depth < 1 {
		panic(fmt.Sprintf("stones: count at depth %d", depth))
	}
	next, ok := c.next[stone]
	if !ok {
		panic(fmt.Sprintf("stones: no transition cached for stone %d", stone))
	}
	if depth == 1 {
		return uint64(len(next))
	}
	k := memoKey{stone, depth}
	if n, ok := c.memo[k]; ok {
		c.hits++
		return n
	}
	c.misses++
	var n uint64
	for _, child := range next {
		n = add(n, c.Count(child, depth-1))
	}
	c.memo[k] = n
	return n
}

// Total returns the number of stones the whole row becomes after depth
// blinks: the sum of Count over each stone.
func (c *Counter) Total(stones []uint64, depth int) uint64 {
	return lo.Reduce(stones, func(sum, stone uint64, _ int) uint64 {
		return add(sum, c.Count(stone, depth))
	}, 0)
}

// Solve sweeps stones once to LongDepth and returns the totals after
// ShortDepth and LongDepth blinks. Both totals share the memo.
func (c *Counter) Solve(stones []uint64) (short, long uint64, err error) {
	if len(stones) == 0 {
		return 0, 0, nil
	}
	if err := c.Sweep(stones, LongDepth); err != nil {
		return 0, 0, err
	}
	return c.Total(stones, ShortDepth), c.Total(stones, LongDepth), nil
}

// Stats describes the contents of a Counter's caches.
type Stats struct {
	Visited     int // stones processed by all sweeps, counting each sweep level separately
	Transitions int // distinct stones with a cached transition
	MemoEntries int
	MemoHits    int
	MemoMisses  int
}

// Stats returns a snapshot of c's cache statistics.
func (c *Counter) Stats() Stats {
	return Stats{
		Visited:     c.visited,
		Transitions: len(c.next),
		MemoEntries: len(c.memo),
		MemoHits:    c.hits,
		MemoMisses:  c.misses,
	}
}

func add(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		panic(fmt.Sprintf("stones: stone count %d + %d overflows uint64", a, b))
	}
	return sum
}
