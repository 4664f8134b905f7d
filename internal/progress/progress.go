// Package progress draws a single-line console progress bar over a slice.
package progress

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// DefaultWidth is the number of cells in the bar.
const DefaultWidth = 60

// Bar renders progress for a known number of items.
type Bar struct {
	out   io.Writer
	width int
	total int
}

// New creates a bar for total items that writes to out.
// A width of zero or less selects DefaultWidth.
func New(out io.Writer, total, width int) *Bar {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Bar{out: out, width: width, total: total}
}

// Show overwrites the current console line with the state after done items.
func (b *Bar) Show(done int) {
	filled := 0
	if b.total > 0 {
		filled = b.width * done / b.total
	}
	if filled > b.width {
		filled = b.width
	}
	_, _ = fmt.Fprintf(b.out, "[%s%s] %d/%d\r",
		strings.Repeat("#", filled),
		strings.Repeat(".", b.width-filled),
		done, b.total)
}

// Finish moves the cursor off the progress line.
func (b *Bar) Finish() {
	_, _ = fmt.Fprintln(b.out)
}

// Iter yields the items of s in order, drawing the bar to out as they are
// consumed: once before the first item and once after each one. A newline
// is written when iteration ends, including when the caller breaks early.
func Iter[S ~[]E, E any](s S, out io.Writer) iter.Seq2[int, E] {
	return IterWidth(s, out, DefaultWidth)
}

// IterWidth is Iter with a custom bar width.
func IterWidth[S ~[]E, E any](s S, out io.Writer, width int) iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		bar := New(out, len(s), width)
		defer bar.Finish()

		bar.Show(0)
		for i, item := range s {
			if !yield(i, item) {
				return
			}
			bar.Show(i + 1)
		}
	}
}
