package utils

import (
	"os"
	"unsafe"
)

///////////////////////////////////////////////////////////////////////////////
// Conversion Utilities — Zero-Alloc Casts
///////////////////////////////////////////////////////////////////////////////

// B2s converts a []byte to a string **without** allocation.
// ⚠️ Caller must ensure the input slice remains valid and unchanged.
// Used for human-readable print paths.
//
//go:nosplit
//go:inline
func B2s(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

///////////////////////////////////////////////////////////////////////////////
// Decimal Formatters — No fmt, No Intermediate Allocations
///////////////////////////////////////////////////////////////////////////////

// AppendU64 appends the decimal form of v to dst and returns the extended slice.
// Digits are produced backwards into a stack scratch array, then copied once.
//
//go:nosplit
//go:inline
func AppendU64(dst []byte, v uint64) []byte {
	var scratch [20]byte // MaxUint64 is 20 digits
	i := len(scratch)
	for {
		i--
		scratch[i] = byte('0' + v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	return append(dst, scratch[i:]...)
}

// AppendPaddedU64 appends v as exactly width decimal digits, zero-padded on
// the left. Used for the non-leading 10^19 chunks of a 128-bit decimal.
// ⚠️ v must fit in width digits; excess digits are not truncated.
//
//go:nosplit
//go:inline
func AppendPaddedU64(dst []byte, v uint64, width int) []byte {
	var scratch [20]byte
	i := len(scratch)
	for {
		i--
		scratch[i] = byte('0' + v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	for pad := width - (len(scratch) - i); pad > 0; pad-- {
		dst = append(dst, '0')
	}
	return append(dst, scratch[i:]...)
}

// Itoa renders a non-negative int as a string. ~3x cheaper than strconv for
// the short values logged here, and keeps debug free of strconv.
//
//go:nosplit
//go:inline
func Itoa(v int) string {
	if v < 0 {
		return "-" + Utoa(uint64(-v))
	}
	return Utoa(uint64(v))
}

// Utoa renders a uint64 as a decimal string.
//
//go:nosplit
//go:inline
func Utoa(v uint64) string {
	var scratch [20]byte
	i := len(scratch)
	for {
		i--
		scratch[i] = byte('0' + v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	return string(scratch[i:])
}

///////////////////////////////////////////////////////////////////////////////
// Decimal Parser — Early Exit on Malformed Input
///////////////////////////////////////////////////////////////////////////////

// ParseU64 parses ASCII decimal into a uint64, stopping at the first
// non-digit. Returns the value and the number of bytes consumed.
// Overflow is not detected; callers feed bounded fields.
//
//go:nosplit
//go:inline
func ParseU64(b []byte) (uint64, int) {
	var v uint64
	i := 0
	for ; i < len(b); i++ {
		c := b[i]
		if c < '0' || c > '9' {
			break
		}
		v = v*10 + uint64(c-'0')
	}
	return v, i
}

///////////////////////////////////////////////////////////////////////////////
// Console Sinks — Direct fd Writes
///////////////////////////////////////////////////////////////////////////////

// PrintInfo writes a message to stdout. Stage markers and the progress line
// belong here.
//
//go:nosplit
//go:inline
func PrintInfo(msg string) {
	os.Stdout.WriteString(msg)
}

// PrintWarning writes a message to stderr. Diagnostics and errors only.
//
//go:nosplit
//go:inline
func PrintWarning(msg string) {
	os.Stderr.WriteString(msg)
}
