// ════════════════════════════════════════════════════════════════════════════════════════════════
// Ordered Pair Merger
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Generalized Taxicab Search Engine
// Component: Sum-Ordered Frontier Extraction & Collision Detection
//
// Description:
//   Enumerates all pairs (a,b) with 1 <= b <= a <= bound in non-decreasing order of
//   a^n + b^n and reports every distinct pair collision within each run of equal sums.
//   The frontier holds one candidate per row, so memory stays O(bound) while the pair
//   space is O(bound²).
//
// Architecture:
//   - Seed: one node per row at its minimum column (b = 1)
//   - Step: extract-min, group by equal sum, emit all-pairs collisions, advance the row
//   - Stop: frontier empty, or the configured hit cap is reached mid-run
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package pairsearch

import (
	"taxicab/powtable"
	"taxicab/sumheap"
	"taxicab/uint128"
)

// Outcome describes how a search terminated. Both values are normal
// completions; the cap exit is an intentional abandonment mid-frontier.
type Outcome int

const (
	// OutcomeExhausted means every row was fully enumerated.
	OutcomeExhausted Outcome = iota

	// OutcomeCapReached means the hit cap stopped the search early.
	OutcomeCapReached
)

func (o Outcome) String() string {
	if o == OutcomeCapReached {
		return "cap-reached"
	}
	return "exhausted"
}

// Sink receives solution quadruples in extraction order. Push reports whether
// the record triggered a flush; the merger does not act on it.
type Sink interface {
	Push(a, b, c, d int32, sum uint128.Uint128) bool
}

// pair is one accumulated (a,b) of the run currently being grouped.
type pair struct {
	a, b int32
}

// Search drives the full extraction loop over the given power table.
// bound is the inclusive coordinate limit; maxHits of 0 disables the cap.
// Every emitted quadruple satisfies a^n + b^n = c^n + d^n with (a,b) != (c,d)
// as ordered pairs. Returns the termination outcome and total emitted count.
//
// The heap-ordering guarantee — each extracted sum is >= all previously
// extracted sums — is what makes single-pass run grouping correct without
// buffering the stream.
func Search(table powtable.Table, bound, maxHits int, sink Sink, meter *Meter) (Outcome, int) {
	frontier := sumheap.New(bound)
	for a := int32(1); a <= int32(bound); a++ {
		frontier.Push(sumheap.Node{A: a, B: 1, Sum: table.Sum(a, 1)})
	}

	prevSum := uint128.Max() // sentinel: no pair sum can match the first extraction
	run := make([]pair, 0, 8)
	hits := 0

	for {
		curr, ok := frontier.PopMin()
		if !ok {
			return OutcomeExhausted, hits
		}

		if curr.Sum.Equal(prevSum) {
			for _, p := range run {
				if p.a == curr.A && p.b == curr.B {
					continue // never report a pair against itself
				}
				sink.Push(p.a, p.b, curr.A, curr.B, curr.Sum)
				hits++
				if maxHits > 0 {
					meter.Record(hits)
					if hits >= maxHits {
						return OutcomeCapReached, hits
					}
				}
			}
			run = append(run, pair{curr.A, curr.B})
		} else {
			run = run[:0]
			run = append(run, pair{curr.A, curr.B})
			prevSum = curr.Sum
		}

		// Advance this row's frontier exactly one column.
		if nb := curr.B + 1; nb <= curr.A {
			frontier.Push(sumheap.Node{A: curr.A, B: nb, Sum: table.Sum(curr.A, nb)})
		}
	}
}
