package utils

import (
	"math"
	"math/rand"
	"strconv"
	"testing"
)

const (
	rndSeed = 69
	rndLoop = 1_000_000
)

/*──────────────────────────────────────────────────────────────────────────────
  B2s
──────────────────────────────────────────────────────────────────────────────*/

func TestB2s(t *testing.T) {
	if got := B2s(nil); got != "" {
		t.Fatalf("B2s(nil): %q", got)
	}
	if got := B2s([]byte{}); got != "" {
		t.Fatalf("B2s(empty): %q", got)
	}
	b := []byte("12 1 10 9 1729")
	if got := B2s(b); got != "12 1 10 9 1729" {
		t.Fatalf("B2s: %q", got)
	}
}

/*──────────────────────────────────────────────────────────────────────────────
  Decimal formatting
──────────────────────────────────────────────────────────────────────────────*/

func TestAppendU64Boundaries(t *testing.T) {
	cases := []uint64{0, 1, 9, 10, 99, 100, 1<<32 - 1, 1 << 32, math.MaxUint64}
	for _, v := range cases {
		got := string(AppendU64(nil, v))
		if want := strconv.FormatUint(v, 10); got != want {
			t.Fatalf("AppendU64(%d): want %s got %s", v, want, got)
		}
	}
}

func TestAppendU64Randomized(t *testing.T) {
	rng := rand.New(rand.NewSource(rndSeed))
	buf := make([]byte, 0, 20)
	for i := 0; i < rndLoop; i++ {
		v := rng.Uint64()
		buf = buf[:0]
		buf = AppendU64(buf, v)
		if want := strconv.FormatUint(v, 10); string(buf) != want {
			t.Fatalf("AppendU64(%d): want %s got %s", v, want, buf)
		}
	}
}

func TestAppendU64PreservesPrefix(t *testing.T) {
	got := AppendU64([]byte("n="), 42)
	if string(got) != "n=42" {
		t.Fatalf("prefix clobbered: %q", got)
	}
}

func TestAppendPaddedU64(t *testing.T) {
	cases := []struct {
		v     uint64
		width int
		want  string
	}{
		{0, 19, "0000000000000000000"},
		{1, 19, "0000000000000000001"},
		{9999999999999999999, 19, "9999999999999999999"},
		{12345, 8, "00012345"},
		{12345, 5, "12345"},
		{12345, 3, "12345"}, // width below digit count: no truncation
	}
	for _, tc := range cases {
		if got := string(AppendPaddedU64(nil, tc.v, tc.width)); got != tc.want {
			t.Fatalf("AppendPaddedU64(%d, %d): want %q got %q", tc.v, tc.width, tc.want, got)
		}
	}
}

func TestItoaUtoa(t *testing.T) {
	for _, v := range []int{0, 1, 100, 30000, 1001805, -1, -30000} {
		if got, want := Itoa(v), strconv.Itoa(v); got != want {
			t.Fatalf("Itoa(%d): want %s got %s", v, want, got)
		}
	}
	if got := Utoa(math.MaxUint64); got != "18446744073709551615" {
		t.Fatalf("Utoa(MaxUint64): %s", got)
	}
}

/*──────────────────────────────────────────────────────────────────────────────
  Decimal parsing
──────────────────────────────────────────────────────────────────────────────*/

func TestParseU64(t *testing.T) {
	cases := []struct {
		in   string
		v    uint64
		used int
	}{
		{"0", 0, 1},
		{"1729", 1729, 4},
		{"1001805 ", 1001805, 7},
		{"42abc", 42, 2},
		{"", 0, 0},
		{"x12", 0, 0},
	}
	for _, tc := range cases {
		v, used := ParseU64([]byte(tc.in))
		if v != tc.v || used != tc.used {
			t.Fatalf("ParseU64(%q): want (%d,%d) got (%d,%d)", tc.in, tc.v, tc.used, v, used)
		}
	}
}

func TestParseU64RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(rndSeed))
	buf := make([]byte, 0, 20)
	for i := 0; i < rndLoop; i++ {
		v := rng.Uint64()
		buf = AppendU64(buf[:0], v)
		got, used := ParseU64(buf)
		if got != v || used != len(buf) {
			t.Fatalf("round trip %d: got %d (used %d of %d)", v, got, used, len(buf))
		}
	}
}
