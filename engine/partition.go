package engine

import (
	"fmt"

	"github.com/npillmayer/unger"
)

// PartitionGenerator enumerates the ways to split a number of input tokens
// into consecutive parts, one per right hand side symbol of a rule.
//
// Partitions are produced in lexicographic order. Every part but the last is
// at least as large as its minimum; the last part takes the rest and is not
// checked against its minimum. Clients have to reject partitions with a
// last part below the minimum themselves.
//
// Usage:
//
//     pg, _ := Partitions(3, []int{1, 0})
//     for pg.Next() {
//         fmt.Println(pg.Parts())   // [1 2], [2 1], [3 0]
//     }
//
type PartitionGenerator struct {
	total  int
	minima []int
	parts  []int
	state  int
}

const (
	pgFresh = iota
	pgRunning
	pgDone
)

// Partitions creates a generator for partitions of total into len(minima)
// parts. With no minima, the generator produces a single empty partition
// if total is 0, and nothing otherwise.
//
// A negative total or negative minima result in an error wrapping
// unger.ErrInvalidArgument.
func Partitions(total int, minima []int) (*PartitionGenerator, error) {
	if total < 0 {
		return nil, fmt.Errorf("partition of length %d: %w", total, unger.ErrInvalidArgument)
	}
	for i, m := range minima {
		if m < 0 {
			return nil, fmt.Errorf("minimum %d of part #%d: %w", m, i, unger.ErrInvalidArgument)
		}
	}
	m := make([]int, len(minima))
	copy(m, minima)
	return &PartitionGenerator{
		total:  total,
		minima: m,
		parts:  make([]int, len(minima)),
	}, nil
}

// Next advances to the next partition. It returns false if there are no more
// partitions.
func (pg *PartitionGenerator) Next() bool {
	k := len(pg.minima)
	switch pg.state {
	case pgDone:
		return false
	case pgFresh:
		pg.state = pgRunning
		if k == 0 && pg.total == 0 || k > 0 && pg.fill(0) {
			return true
		}
		pg.state = pgDone
		return false
	}
	// odometer: increment the rightmost part which may grow, reset all parts right of it
	for j := k - 2; j >= 0; j-- {
		if pg.parts[j] < pg.rest(j) {
			pg.parts[j]++
			if pg.fill(j + 1) {
				return true
			}
		}
	}
	pg.state = pgDone
	return false
}

// Parts returns the current partition. The slice is a copy and may be
// modified by the client.
func (pg *PartitionGenerator) Parts() []int {
	p := make([]int, len(pg.parts))
	copy(p, pg.parts)
	return p
}

// Reset restarts the generator.
func (pg *PartitionGenerator) Reset() {
	pg.state = pgFresh
	for i := range pg.parts {
		pg.parts[i] = 0
	}
}

// rest is the number of tokens left for parts j…k-1.
func (pg *PartitionGenerator) rest(j int) int {
	r := pg.total
	for i := 0; i < j; i++ {
		r -= pg.parts[i]
	}
	return r
}

// fill sets parts j…k-2 to their minima and the last part to the rest.
// It returns false if the minima do not fit.
func (pg *PartitionGenerator) fill(j int) bool {
	k := len(pg.minima)
	r := pg.rest(j)
	for i := j; i < k-1; i++ {
		if pg.minima[i] > r {
			return false
		}
		pg.parts[i] = pg.minima[i]
		r -= pg.minima[i]
	}
	pg.parts[k-1] = r
	return true
}
