package textcap

import (
	"fmt"
	"strings"
	"testing"
)

func emit(w *Writer, entries int) {
	for i := 0; i < entries; i++ {
		fmt.Fprintf(w, "entry %d\n", i)
		w.Incr()
	}
}

func TestCapped(t *testing.T) {
	var out strings.Builder
	w := New(&out, 2)
	emit(w, 5)

	if got := out.String(); got != "entry 0\nentry 1\n" {
		t.Fatalf("unexpected output %q", got)
	}
	if got := w.Skipped(); got != 3 {
		t.Fatalf("Skipped() = %d, want 3", got)
	}
}

func TestUncapped(t *testing.T) {
	var out strings.Builder
	w := New(&out, -1)
	emit(w, 4)

	if got := strings.Count(out.String(), "\n"); got != 4 {
		t.Fatalf("wrote %d entries, want 4", got)
	}
	if w.Skipped() != 0 {
		t.Fatalf("Skipped() = %d, want 0", w.Skipped())
	}
}

func TestCapOfZeroDropsEverything(t *testing.T) {
	var out strings.Builder
	w := New(&out, 0)
	emit(w, 3)

	if out.Len() != 0 {
		t.Fatalf("unexpected output %q", out.String())
	}
	if w.Skipped() != 3 {
		t.Fatalf("Skipped() = %d, want 3", w.Skipped())
	}
}

func TestWritePretendsSuccessPastCap(t *testing.T) {
	w := New(&strings.Builder{}, 0)
	n, err := w.Write([]byte("dropped"))
	if err != nil || n != len("dropped") {
		t.Fatalf("Write = %d, %v; want full length and nil error", n, err)
	}
}
