// Package textcap provides a writer that stops emitting output after a
// capped number of entries while still accepting writes, so callers can
// report the true total alongside a truncated listing.
package textcap

import "io"

type Writer struct {
	// remaining entries before the cap; -1 means no cap.
	remaining int
	skipped   int
	out       io.Writer
}

// New wraps out with an entry cap. max < 0 disables the cap.
func New(out io.Writer, max int) *Writer {
	return &Writer{remaining: max, out: out}
}

// Incr marks the end of one entry.
func (w *Writer) Incr() {
	if w.remaining > 0 {
		w.remaining--
		return
	}
	if w.remaining == 0 {
		w.skipped++
	}
}

// Skipped is the number of entries dropped by the cap so far.
func (w *Writer) Skipped() int {
	return w.skipped
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.remaining > 0 || w.remaining == -1 {
		return w.out.Write(p)
	}
	// Pretend the write happened so callers need no cap awareness.
	return len(p), nil
}
