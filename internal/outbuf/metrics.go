package outbuf

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Metrics is a read-only snapshot of the visual-row layout of a line buffer
// at one display width. It is recomputed in full whenever the width or the
// line count changes and replaced atomically; it is never patched in place.
type Metrics struct {
	Width     int
	LineRows  []int // Visual rows occupied by each line (minimum 1).
	StartRows []int // Cumulative starting row of each line.
	TotalRows int
}

// Compute lays out lines at the given width. Control and ANSI sequences are
// stripped before measuring; character cells are counted with wide/narrow
// awareness, so a line of N columns occupies ceil(N/width) rows. An empty
// line still occupies one row.
func Compute(lines []string, width int) Metrics {
	if width < 1 {
		width = 1
	}
	metrics := Metrics{
		Width:     width,
		LineRows:  make([]int, len(lines)),
		StartRows: make([]int, len(lines)),
	}
	row := 0
	for i, line := range lines {
		columns := runewidth.StringWidth(ansi.Strip(line))
		rows := (columns + width - 1) / width
		if rows < 1 {
			rows = 1
		}
		metrics.LineRows[i] = rows
		metrics.StartRows[i] = row
		row += rows
	}
	metrics.TotalRows = row
	return metrics
}

// RowForOffset returns the absolute visual row containing byteOffset within
// the cleaned text of line lineIndex. The raw line may carry ANSI sequences;
// it is stripped the same way Compute strips it, so byte offsets produced by
// the search engine land on the row the user actually sees.
func (m Metrics) RowForOffset(line string, lineIndex, byteOffset int) int {
	if lineIndex < 0 || lineIndex >= len(m.StartRows) {
		return 0
	}
	if m.Width < 1 {
		return m.StartRows[lineIndex]
	}
	clean := ansi.Strip(line)
	column := 0
	for i, r := range clean {
		if i >= byteOffset {
			break
		}
		column += runewidth.RuneWidth(r)
	}
	return m.StartRows[lineIndex] + column/m.Width
}

// ClampOffset bounds a scroll offset to [0, totalRows-height]. Applying it
// twice yields the same result, so it is safe to run on every resize.
func ClampOffset(offset, totalRows, height int) int {
	max := totalRows - height
	if max < 0 {
		max = 0
	}
	if offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
