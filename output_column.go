package main

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/berkano/mvndash/internal/outbuf"
	"github.com/berkano/mvndash/internal/runner"
	"github.com/berkano/mvndash/internal/search"
)

// wrappedRow is one visual row of a buffered line: the chunk text plus its
// byte range within the line's cleaned text, kept so search matches can be
// highlighted at the right spot after wrapping.
type wrappedRow struct {
	text  string
	start int
	end   int
}

// wrapLine splits cleaned text into display-width chunks, counting wide
// runes as two columns. An empty line yields one empty row.
func wrapLine(clean string, width int) []wrappedRow {
	if width < 1 {
		width = 1
	}
	if clean == "" {
		return []wrappedRow{{}}
	}
	var rows []wrappedRow
	column := 0
	chunkStart := 0
	for i, r := range clean {
		w := runewidth.RuneWidth(r)
		if column+w > width && column > 0 {
			rows = append(rows, wrappedRow{text: clean[chunkStart:i], start: chunkStart, end: i})
			chunkStart = i
			column = 0
		}
		column += w
	}
	rows = append(rows, wrappedRow{text: clean[chunkStart:], start: chunkStart, end: len(clean)})
	return rows
}

// renderOutputRows produces exactly height rows of styled panel content for
// the given scroll offset, using the metrics snapshot to skip lines that
// sit entirely above the viewport.
func renderOutputRows(s styles, lines []string, metrics outbuf.Metrics, state *search.State, offset, width, height int) []string {
	rows := make([]string, 0, height)
	if height < 1 || len(lines) == 0 {
		for len(rows) < height {
			rows = append(rows, "")
		}
		return rows
	}

	// First line whose row span reaches the offset.
	first := sort.Search(len(lines), func(i int) bool {
		return metrics.StartRows[i]+metrics.LineRows[i] > offset
	})

	row := 0
	if first < len(lines) {
		row = metrics.StartRows[first]
	}
	for lineIndex := first; lineIndex < len(lines) && len(rows) < height; lineIndex++ {
		line := lines[lineIndex]
		clean := ansi.Strip(line)
		base := s.outLine
		if strings.HasPrefix(clean, runner.ErrPrefix) {
			base = s.errLine
		} else if strings.HasPrefix(clean, "ERROR: ") {
			base = s.failLine
		}
		for _, wrapped := range wrapLine(clean, width) {
			if row < offset {
				row++
				continue
			}
			rows = append(rows, renderRow(s, base, wrapped, state, lineIndex))
			row++
			if len(rows) >= height {
				break
			}
		}
	}
	for len(rows) < height {
		rows = append(rows, "")
	}
	return rows
}

// renderRow styles one wrapped row, splicing search-match highlighting into
// the byte ranges that overlap matches on this line. The current match gets
// a distinct background.
func renderRow(s styles, base lipgloss.Style, row wrappedRow, state *search.State, lineIndex int) string {
	if state == nil || len(state.Matches) == 0 {
		return base.Render(row.text)
	}

	type span struct {
		start, end int
		current    bool
	}
	var spans []span
	for i, match := range state.Matches {
		if match.Line != lineIndex || match.End <= row.start || match.Start >= row.end {
			continue
		}
		start := match.Start
		if start < row.start {
			start = row.start
		}
		end := match.End
		if end > row.end {
			end = row.end
		}
		spans = append(spans, span{start: start - row.start, end: end - row.start, current: i == state.Current})
	}
	if len(spans) == 0 {
		return base.Render(row.text)
	}

	var out strings.Builder
	cursor := 0
	for _, sp := range spans {
		if sp.start > cursor {
			out.WriteString(base.Render(row.text[cursor:sp.start]))
		}
		style := s.matchLine
		if sp.current {
			style = s.currentMatchLine
		}
		out.WriteString(style.Render(row.text[sp.start:sp.end]))
		cursor = sp.end
	}
	if cursor < len(row.text) {
		out.WriteString(base.Render(row.text[cursor:]))
	}
	return out.String()
}

// renderScrollBar returns one track/thumb cell per panel row, proportional
// to the visible share of the buffer.
func renderScrollBar(s styles, height, totalRows, visible, offset int) []string {
	cells := make([]string, height)
	track := s.scrollTrack.Render("│")
	thumb := s.scrollThumb.Render("┃")

	if height <= 0 {
		return cells
	}
	if totalRows <= visible || totalRows <= 0 {
		for i := range cells {
			cells[i] = track
		}
		return cells
	}

	thumbHeight := int(math.Round(float64(visible) / float64(totalRows) * float64(height)))
	if thumbHeight < 1 {
		thumbHeight = 1
	}
	maxOffset := totalRows - visible
	if maxOffset < 1 {
		maxOffset = 1
	}
	if offset < 0 {
		offset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	ratio := float64(offset) / float64(maxOffset)
	thumbStart := int(math.Round(ratio * float64(height-thumbHeight)))
	if thumbStart < 0 {
		thumbStart = 0
	}
	if thumbStart+thumbHeight > height {
		thumbStart = height - thumbHeight
	}
	for i := 0; i < height; i++ {
		if i >= thumbStart && i < thumbStart+thumbHeight {
			cells[i] = thumb
		} else {
			cells[i] = track
		}
	}
	return cells
}
