package outbuf

import (
	"strings"
	"testing"
)

func TestComputeTotalRowsCeiling(t *testing.T) {
	// 200 columns at width 80 wrap into ceil(200/80) = 3 rows.
	lines := []string{strings.Repeat("x", 200)}
	metrics := Compute(lines, 80)
	if metrics.TotalRows != 3 {
		t.Errorf("expected 3 rows for 200 columns at width 80, got %d", metrics.TotalRows)
	}
}

func TestComputeEmptyLineOccupiesOneRow(t *testing.T) {
	metrics := Compute([]string{"", "abc", ""}, 80)
	if metrics.TotalRows != 3 {
		t.Errorf("expected 3 rows, got %d", metrics.TotalRows)
	}
	for i, rows := range metrics.LineRows {
		if rows != 1 {
			t.Errorf("line %d: expected 1 row, got %d", i, rows)
		}
	}
}

func TestComputeStartRowsAreCumulative(t *testing.T) {
	lines := []string{
		strings.Repeat("a", 100), // 2 rows at width 80
		"short",                  // 1 row
		strings.Repeat("b", 240), // 3 rows
	}
	metrics := Compute(lines, 80)
	wantStarts := []int{0, 2, 3}
	for i, want := range wantStarts {
		if metrics.StartRows[i] != want {
			t.Errorf("line %d: expected start row %d, got %d", i, want, metrics.StartRows[i])
		}
	}
	if metrics.TotalRows != 6 {
		t.Errorf("expected 6 total rows, got %d", metrics.TotalRows)
	}
}

func TestComputeWideRunesCountTwoColumns(t *testing.T) {
	// 40 CJK characters occupy 80 columns: exactly one row at width 80,
	// two rows at width 79.
	line := strings.Repeat("漢", 40)
	if metrics := Compute([]string{line}, 80); metrics.TotalRows != 1 {
		t.Errorf("expected 1 row at width 80, got %d", metrics.TotalRows)
	}
	if metrics := Compute([]string{line}, 79); metrics.TotalRows != 2 {
		t.Errorf("expected 2 rows at width 79, got %d", metrics.TotalRows)
	}
}

func TestComputeStripsANSISequences(t *testing.T) {
	styled := "\x1b[31m" + strings.Repeat("e", 80) + "\x1b[0m"
	metrics := Compute([]string{styled}, 80)
	if metrics.TotalRows != 1 {
		t.Errorf("escape sequences must not count as columns, got %d rows", metrics.TotalRows)
	}
}

func TestComputeMinimumWidth(t *testing.T) {
	// Width below 1 is treated as 1 rather than dividing by zero.
	metrics := Compute([]string{"abc"}, 0)
	if metrics.TotalRows != 3 {
		t.Errorf("expected 3 rows at clamped width 1, got %d", metrics.TotalRows)
	}
}

func TestRowForOffsetWithinWrappedLine(t *testing.T) {
	lines := []string{"first", strings.Repeat("z", 200)}
	metrics := Compute(lines, 80)

	// Offset 0 sits on the line's first row.
	if row := metrics.RowForOffset(lines[1], 1, 0); row != 1 {
		t.Errorf("expected row 1, got %d", row)
	}
	// Byte 100 is column 100, i.e. the second visual row of the line.
	if row := metrics.RowForOffset(lines[1], 1, 100); row != 2 {
		t.Errorf("expected row 2, got %d", row)
	}
	// Byte 170 lands on the third visual row.
	if row := metrics.RowForOffset(lines[1], 1, 170); row != 3 {
		t.Errorf("expected row 3, got %d", row)
	}
}

func TestRowForOffsetWideRunes(t *testing.T) {
	// Each rune is 3 bytes and 2 columns wide. Byte offset 120 is rune 40,
	// column 80: the second row at width 80.
	line := strings.Repeat("漢", 60)
	metrics := Compute([]string{line}, 80)
	if row := metrics.RowForOffset(line, 0, 120); row != 1 {
		t.Errorf("expected row 1, got %d", row)
	}
	if row := metrics.RowForOffset(line, 0, 0); row != 0 {
		t.Errorf("expected row 0, got %d", row)
	}
}

func TestRowForOffsetOutOfRangeLine(t *testing.T) {
	metrics := Compute([]string{"only"}, 80)
	if row := metrics.RowForOffset("only", 5, 0); row != 0 {
		t.Errorf("expected row 0 for an out-of-range line index, got %d", row)
	}
}

func TestClampOffsetIdempotent(t *testing.T) {
	cases := []struct {
		offset, total, height int
		want                  int
	}{
		{0, 100, 20, 0},
		{50, 100, 20, 50},
		{95, 100, 20, 80},
		{-3, 100, 20, 0},
		{10, 5, 20, 0},
		{7, 0, 0, 0},
	}
	for _, c := range cases {
		once := ClampOffset(c.offset, c.total, c.height)
		if once != c.want {
			t.Errorf("ClampOffset(%d, %d, %d): expected %d, got %d", c.offset, c.total, c.height, c.want, once)
		}
		twice := ClampOffset(once, c.total, c.height)
		if twice != once {
			t.Errorf("ClampOffset not idempotent: %d then %d", once, twice)
		}
	}
}
