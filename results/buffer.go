// ════════════════════════════════════════════════════════════════════════════════════════════════
// Result Sink
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Generalized Taxicab Search Engine
// Component: Fixed-Buffer Solution Writer
//
// Description:
//   Accumulates formatted solution records in a fixed scratch buffer and flushes complete
//   buffers to the output stream. One record is "a b c d sum\n" with the sum rendered as
//   an exact 128-bit decimal. The buffer is allocated once and reused for the whole run.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package results

import (
	"io"

	"taxicab/uint128"
	"taxicab/utils"
)

// Buffer is the buffered solution sink. Not safe for concurrent use; the
// search is single-threaded by design.
type Buffer struct {
	buf     []byte // len = fill level, cap = fixed buffer size
	out     io.Writer
	slack   int
	lastErr error
}

// NewBuffer wraps out with a size-byte scratch buffer that flushes whenever
// fewer than slack bytes of headroom remain after a push.
func NewBuffer(out io.Writer, size, slack int) *Buffer {
	return &Buffer{buf: make([]byte, 0, size), out: out, slack: slack}
}

// Push appends one solution record and reports whether it triggered a flush.
// The report is observational; callers are free to ignore it. Write failures
// are latched into Err rather than surfaced here — the search loop has no
// recovery to offer, and teardown reports the first failure.
//
//go:nosplit
func (rb *Buffer) Push(a, b, c, d int32, sum uint128.Uint128) bool {
	rb.buf = utils.AppendU64(rb.buf, uint64(a))
	rb.buf = append(rb.buf, ' ')
	rb.buf = utils.AppendU64(rb.buf, uint64(b))
	rb.buf = append(rb.buf, ' ')
	rb.buf = utils.AppendU64(rb.buf, uint64(c))
	rb.buf = append(rb.buf, ' ')
	rb.buf = utils.AppendU64(rb.buf, uint64(d))
	rb.buf = append(rb.buf, ' ')
	rb.buf = sum.AppendDecimal(rb.buf)
	rb.buf = append(rb.buf, '\n')

	if len(rb.buf) >= cap(rb.buf)-rb.slack {
		rb.Flush()
		return true
	}
	return false
}

// Flush writes the buffered records out and clears the buffer. The first
// write error sticks; later flushes still drain the buffer so the fill level
// stays bounded.
func (rb *Buffer) Flush() error {
	if len(rb.buf) == 0 {
		return rb.lastErr
	}
	if _, err := rb.out.Write(rb.buf); err != nil && rb.lastErr == nil {
		rb.lastErr = err
	}
	rb.buf = rb.buf[:0]
	return rb.lastErr
}

// Err returns the first write failure observed, if any.
func (rb *Buffer) Err() error { return rb.lastErr }

// Close flushes any unwritten data exactly once and returns the first error
// seen over the sink's lifetime. It does not close the underlying writer;
// the caller owns the file handle.
func (rb *Buffer) Close() error {
	return rb.Flush()
}
