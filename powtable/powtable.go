// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: powtable.go — Precomputed N-th Power Lookup Table
//
// Purpose:
//   - Builds pow[0..bound] with pow[i] = i^n once at startup.
//   - Gives the extraction loop O(1) sum construction with no exponentiation.
//
// Notes:
//   - Powers are built by repeated multiplication, not fast exponentiation:
//     n is a small build-time constant and exact word-by-word products keep
//     the numeric behavior trivially auditable.
//   - Construction fails if bound^n or bound^n + bound^n leaves 128 bits, so
//     every comparison downstream is overflow-free.
// ─────────────────────────────────────────────────────────────────────────────

package powtable

import (
	"errors"

	"taxicab/uint128"
)

// ErrOverflow indicates the configured exponent and bound produce sums that
// cannot be represented in 128 bits. The search cannot run under such a
// configuration; nothing is retried.
var ErrOverflow = errors.New("powtable: bound^n + bound^n exceeds 128 bits")

// Table holds i^n for 0 <= i <= bound. Immutable after Precompute returns.
type Table []uint128.Uint128

// Precompute builds the power table for the given exponent and inclusive
// bound. Pure function of its inputs; the only failure is representability.
func Precompute(n, bound int) (Table, error) {
	table := make(Table, bound+1)
	for i := 0; i <= bound; i++ {
		p := uint128.From64(1)
		ok := true
		for e := 0; e < n; e++ {
			if p, ok = p.Mul64Check(uint64(i)); !ok {
				return nil, ErrOverflow
			}
		}
		table[i] = p
	}

	// The merger compares pair sums, so the doubled top entry must also fit.
	if _, ok := table[bound].AddCheck(table[bound]); !ok {
		return nil, ErrOverflow
	}
	return table, nil
}

// Sum returns table[a] + table[b]. Representable by construction.
//
//go:nosplit
//go:inline
func (t Table) Sum(a, b int32) uint128.Uint128 {
	return t[a].Add(t[b])
}
