package pairsearch

import (
	"io"

	"taxicab/utils"
)

// Meter rewrites a single console progress line every interval accepted hits.
// It owns its scratch buffer so the hot loop never allocates for progress
// output. A nil Meter is valid and silent, which keeps the search loop free
// of console concerns under test.
type Meter struct {
	cap      int
	interval int
	out      io.Writer
	line     []byte
}

// NewMeter returns a meter for the given cap and cadence, or nil when the
// cap is zero: an uncapped search has no denominator to report against.
func NewMeter(cap, interval int, out io.Writer) *Meter {
	if cap <= 0 || interval <= 0 || out == nil {
		return nil
	}
	return &Meter{cap: cap, interval: interval, out: out, line: make([]byte, 0, 64)}
}

// Start emits the initial zero-hit line.
func (m *Meter) Start() {
	if m == nil {
		return
	}
	m.write(0)
}

// Record notes an accepted hit count and rewrites the line on interval
// boundaries. Carriage return, no newline: the line overwrites in place.
//
//go:nosplit
func (m *Meter) Record(hits int) {
	if m == nil || hits%m.interval != 0 {
		return
	}
	m.write(hits)
}

// Finish terminates the progress line so later output starts on a fresh row.
func (m *Meter) Finish() {
	if m == nil {
		return
	}
	io.WriteString(m.out, "\n")
}

func (m *Meter) write(hits int) {
	m.line = m.line[:0]
	m.line = append(m.line, '\r')
	m.line = utils.AppendU64(m.line, uint64(hits))
	m.line = append(m.line, '/')
	m.line = utils.AppendU64(m.line, uint64(m.cap))
	m.line = append(m.line, " hits found."...)
	m.out.Write(m.line)
}
