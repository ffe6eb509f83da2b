// verify.go — round-trip validation of an emitted results file.
//
// After the search finishes, every line is re-read and the two power sums are
// recomputed from scratch; the printed sum must reproduce both exactly. This
// is the in-process version of the external validation script the search's
// output format was designed for.

package results

import (
	"errors"
	"os"
	"strings"

	"taxicab/uint128"
	"taxicab/utils"
)

// ErrMalformedLine indicates a results line that does not parse as
// "a b c d sum". Verification stops at the first malformed line because the
// writer can never legitimately produce one.
var ErrMalformedLine = errors.New("results: malformed solution line")

// VerifyFile recomputes a^n + b^n and c^n + d^n for every line of the results
// file and compares both against the printed sum. Returns the number of valid
// and invalid lines. Invalid means well-formed but numerically wrong; those
// are counted, not fatal, so a damaged file reports its full extent.
func VerifyFile(n int, path string) (valid, invalid int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, err
	}

	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		a, b, c, d, sumText, ok := splitLine(line)
		if !ok {
			return valid, invalid, ErrMalformedLine
		}

		left, okL := powSum(n, a, b)
		right, okR := powSum(n, c, d)
		if okL && okR && left.Equal(right) && left.String() == sumText {
			valid++
		} else {
			invalid++
		}
	}
	return valid, invalid, nil
}

// splitLine parses "a b c d sum" with single-space separation.
func splitLine(line string) (a, b, c, d uint64, sum string, ok bool) {
	fields := [4]uint64{}
	rest := line
	for i := 0; i < 4; i++ {
		v, n := utils.ParseU64([]byte(rest))
		if n == 0 || n >= len(rest) || rest[n] != ' ' {
			return 0, 0, 0, 0, "", false
		}
		fields[i] = v
		rest = rest[n+1:]
	}
	if rest == "" || strings.ContainsRune(rest, ' ') {
		return 0, 0, 0, 0, "", false
	}
	for i := 0; i < len(rest); i++ {
		if rest[i] < '0' || rest[i] > '9' {
			return 0, 0, 0, 0, "", false
		}
	}
	return fields[0], fields[1], fields[2], fields[3], rest, true
}

// powSum computes x^n + y^n without a table; verification runs once per line
// on arbitrary coordinates, so repeated multiplication is cheap enough.
func powSum(n int, x, y uint64) (uint128.Uint128, bool) {
	px, ok := pow(n, x)
	if !ok {
		return uint128.Uint128{}, false
	}
	py, ok := pow(n, y)
	if !ok {
		return uint128.Uint128{}, false
	}
	return px.AddCheck(py)
}

func pow(n int, x uint64) (uint128.Uint128, bool) {
	p := uint128.From64(1)
	ok := true
	for e := 0; e < n; e++ {
		if p, ok = p.Mul64Check(x); !ok {
			return uint128.Uint128{}, false
		}
	}
	return p, true
}
