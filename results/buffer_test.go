package results

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"taxicab/uint128"
)

// Shared Test Helpers

func pushQuad(rb *Buffer, a, b, c, d int32, sum uint64) bool {
	return rb.Push(a, b, c, d, uint128.From64(sum))
}

func TestRecordFormat(t *testing.T) {
	var out bytes.Buffer
	rb := NewBuffer(&out, 1024, 200)
	pushQuad(rb, 12, 1, 10, 9, 1729)
	if err := rb.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := out.String(); got != "12 1 10 9 1729\n" {
		t.Fatalf("record format: %q", got)
	}
}

func TestWideSumFormat(t *testing.T) {
	var out bytes.Buffer
	rb := NewBuffer(&out, 1024, 200)
	rb.Push(5, 4, 3, 2, uint128.Uint128{Hi: 1, Lo: 0})
	rb.Close()
	if got := out.String(); got != "5 4 3 2 18446744073709551616\n" {
		t.Fatalf("wide sum format: %q", got)
	}
}

func TestFlushOnlyNearCapacity(t *testing.T) {
	var out bytes.Buffer
	rb := NewBuffer(&out, 256, 32)
	flushes := 0
	for i := int32(1); i <= 40; i++ {
		if pushQuad(rb, i, 1, i, 2, uint64(i)*1000) {
			flushes++
			if out.Len() == 0 {
				t.Fatalf("push %d reported flush but nothing was written", i)
			}
		}
	}
	if flushes == 0 {
		t.Fatalf("40 records never crossed a 256-byte buffer")
	}
	rb.Close()
	if lines := strings.Count(out.String(), "\n"); lines != 40 {
		t.Fatalf("want all 40 records after teardown, got %d", lines)
	}
}

func TestCloseFlushesRemainderOnce(t *testing.T) {
	var out bytes.Buffer
	rb := NewBuffer(&out, 4096, 200)
	pushQuad(rb, 2, 1, 1, 2, 50)
	pushQuad(rb, 9, 3, 8, 6, 50)
	if out.Len() != 0 {
		t.Fatalf("records written before any flush: %q", out.String())
	}
	rb.Close()
	want := out.String()
	rb.Close() // idempotent: buffer already drained
	if out.String() != want {
		t.Fatalf("second Close wrote again: %q vs %q", out.String(), want)
	}
	if lines := strings.Count(want, "\n"); lines != 2 {
		t.Fatalf("want 2 records, got %d in %q", lines, want)
	}
}

type failingWriter struct{ err error }

func (w *failingWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestWriteErrorLatched(t *testing.T) {
	boom := errors.New("disk gone")
	rb := NewBuffer(&failingWriter{err: boom}, 64, 8)
	for i := int32(0); i < 10; i++ {
		pushQuad(rb, i+1, 1, i+1, 1, 7)
	}
	if rb.Err() != boom {
		t.Fatalf("want latched error, got %v", rb.Err())
	}
	if rb.Close() != boom {
		t.Fatalf("Close should report the first write failure")
	}
}
