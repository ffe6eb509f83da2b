// ============================================================================
// UINT128: FIXED-WIDTH 128-BIT ARITHMETIC FOR POWER-SUM SEARCH
// ============================================================================
//
// Minimal 128-bit unsigned integer support sized for N-th power sums. The
// search needs exactly four capabilities — add, multiply-by-word, compare,
// decimal render — so this package provides those and nothing else; a full
// big-integer dependency would be two orders of magnitude more machinery
// than the bounded width requires.
//
// Core capabilities:
//   - Carry-propagating add with overflow detection (bits.Add64)
//   - 128×64 multiply with overflow detection (bits.Mul64)
//   - Three-way compare and max-sentinel support
//   - Exact base-10 rendering via repeated division by 10^19
//
// Safety model:
//   - Footgun variants (Add, Mul64) assume in-range input, wrap silently
//   - Checked variants (AddCheck, Mul64Check) report overflow for callers
//     that size tables at startup

package uint128

import (
	"math/bits"

	"taxicab/utils"
)

// decChunk is 10^19, the largest power of ten below 2^64. Non-leading chunks
// of a 128-bit decimal are exactly 19 digits wide.
const decChunk = uint64(10_000_000_000_000_000_000)

// Uint128 represents a 128-bit unsigned integer for exact power-sum
// arithmetic. Value = Hi·2⁶⁴ + Lo.
type Uint128 struct {
	Hi uint64 // High-order 64 bits
	Lo uint64 // Low-order 64 bits
}

// Max returns the largest representable value. Used as the run sentinel: no
// genuine pair sum can equal it, so the first extraction always opens a run.
//
//go:nosplit
//go:inline
func Max() Uint128 {
	return Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}
}

// From64 widens a uint64.
//
//go:nosplit
//go:inline
func From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// IsZero reports whether u == 0.
//
//go:nosplit
//go:inline
func (u Uint128) IsZero() bool {
	return u.Hi|u.Lo == 0
}

// ============================================================================
// ARITHMETIC
// ============================================================================

// Add returns u + v, wrapping on overflow.
//
//go:nosplit
//go:inline
func (u Uint128) Add(v Uint128) Uint128 {
	lo, carry := bits.Add64(u.Lo, v.Lo, 0)
	hi, _ := bits.Add64(u.Hi, v.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}
}

// AddCheck returns u + v and reports whether the sum stayed inside 128 bits.
//
//go:nosplit
//go:inline
func (u Uint128) AddCheck(v Uint128) (Uint128, bool) {
	lo, carry := bits.Add64(u.Lo, v.Lo, 0)
	hi, carry := bits.Add64(u.Hi, v.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}, carry == 0
}

// Mul64 returns u × m, wrapping on overflow.
//
//go:nosplit
//go:inline
func (u Uint128) Mul64(m uint64) Uint128 {
	hi, lo := bits.Mul64(u.Lo, m)
	return Uint128{Hi: hi + u.Hi*m, Lo: lo}
}

// Mul64Check returns u × m and reports whether the product stayed inside
// 128 bits. The power table uses this once per entry at startup.
//
//go:nosplit
//go:inline
func (u Uint128) Mul64Check(m uint64) (Uint128, bool) {
	hi, lo := bits.Mul64(u.Lo, m)
	hiHi, hiLo := bits.Mul64(u.Hi, m)
	sum, carry := bits.Add64(hi, hiLo, 0)
	return Uint128{Hi: sum, Lo: lo}, hiHi == 0 && carry == 0
}

// ============================================================================
// COMPARISON
// ============================================================================

// Cmp returns -1 if u < v, 0 if u == v, +1 if u > v.
//
//go:nosplit
//go:inline
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi != v.Hi:
		if u.Hi < v.Hi {
			return -1
		}
		return 1
	case u.Lo != v.Lo:
		if u.Lo < v.Lo {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports u < v. This is the heap ordering relation.
//
//go:nosplit
//go:inline
func (u Uint128) Less(v Uint128) bool {
	if u.Hi != v.Hi {
		return u.Hi < v.Hi
	}
	return u.Lo < v.Lo
}

// Equal reports u == v. This is the run-grouping relation.
//
//go:nosplit
//go:inline
func (u Uint128) Equal(v Uint128) bool {
	return u.Hi == v.Hi && u.Lo == v.Lo
}

// ============================================================================
// DECIMAL RENDERING
// ============================================================================

// divDecChunk returns (u / 10^19, u % 10^19). The high word is reduced first
// so the 128/64 hardware divide sees a remainder below the divisor.
//
//go:nosplit
//go:inline
func (u Uint128) divDecChunk() (Uint128, uint64) {
	q1 := u.Hi / decChunk
	r1 := u.Hi % decChunk
	q0, r0 := bits.Div64(r1, u.Lo, decChunk)
	return Uint128{Hi: q1, Lo: q0}, r0
}

// AppendDecimal appends the exact base-10 form of u to dst and returns the
// extended slice. Values above 64 bits are peeled into 19-digit chunks by
// repeated division; only the most significant chunk is printed unpadded.
// No allocation beyond dst growth.
func (u Uint128) AppendDecimal(dst []byte) []byte {
	if u.Hi == 0 {
		return utils.AppendU64(dst, u.Lo)
	}

	// A 128-bit value is at most 39 digits: one leading chunk plus two
	// full-width trailing chunks.
	var trailing [2]uint64
	n := 0
	for u.Hi != 0 {
		var rem uint64
		u, rem = u.divDecChunk()
		trailing[n] = rem
		n++
	}

	dst = utils.AppendU64(dst, u.Lo)
	for i := n - 1; i >= 0; i-- {
		dst = utils.AppendPaddedU64(dst, trailing[i], 19)
	}
	return dst
}

// String renders u in base 10. Convenience for diagnostics and tests; the
// sink formats via AppendDecimal directly.
func (u Uint128) String() string {
	return string(u.AppendDecimal(make([]byte, 0, 40)))
}
