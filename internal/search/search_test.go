package search

import (
	"sort"
	"strings"
	"testing"
)

func TestFindLocatesMatchesAcrossLines(t *testing.T) {
	lines := []string{"line1", "other", "line2"}
	state, err := Find(lines, "line")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(state.Matches))
	}
	if state.Matches[0].Line != 0 || state.Matches[1].Line != 2 {
		t.Errorf("expected matches on lines 0 and 2, got %d and %d",
			state.Matches[0].Line, state.Matches[1].Line)
	}
	if state.Current != 0 {
		t.Errorf("expected current=0 on a fresh state, got %d", state.Current)
	}

	state.Next()
	if match := state.CurrentMatch(); match == nil || match.Line != 2 {
		t.Errorf("expected Next to land on line 2, got %+v", match)
	}
}

func TestFindMatchesSortedByLineAndStart(t *testing.T) {
	lines := []string{"aa a aa", "a", "no hits here?", "aaa"}
	state, err := Find(lines, "a+")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sorted := sort.SliceIsSorted(state.Matches, func(i, j int) bool {
		left, right := state.Matches[i], state.Matches[j]
		if left.Line != right.Line {
			return left.Line < right.Line
		}
		return left.Start < right.Start
	})
	if !sorted {
		t.Errorf("matches not sorted by (line, start): %+v", state.Matches)
	}
}

func TestFindNonOverlappingWithinLine(t *testing.T) {
	state, err := Find([]string{"abab"}, "ab")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %+v", state.Matches)
	}
	if state.Matches[0].Start != 0 || state.Matches[1].Start != 2 {
		t.Errorf("expected starts 0 and 2, got %d and %d",
			state.Matches[0].Start, state.Matches[1].Start)
	}
}

func TestFindInvalidPatternReturnsError(t *testing.T) {
	state, err := Find([]string{"anything"}, "([unclosed")
	if err == nil {
		t.Fatal("expected an error for an invalid pattern")
	}
	if state != nil {
		t.Error("expected nil state on compile failure")
	}
}

func TestFindNoMatchesIsValid(t *testing.T) {
	state, err := Find([]string{"alpha", "beta"}, "gamma")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state.Matches) != 0 {
		t.Errorf("expected no matches, got %+v", state.Matches)
	}
	if state.CurrentMatch() != nil {
		t.Error("expected nil CurrentMatch with no matches")
	}
}

func TestFindStripsANSIBeforeMatching(t *testing.T) {
	styled := "\x1b[31mBUILD\x1b[0m FAILURE"
	state, err := Find([]string{styled}, "BUILD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state.Matches) != 1 {
		t.Fatalf("expected 1 match, got %+v", state.Matches)
	}
	// Offsets are into the cleaned text, where BUILD starts at byte 0.
	if state.Matches[0].Start != 0 || state.Matches[0].End != 5 {
		t.Errorf("expected match at [0,5), got [%d,%d)",
			state.Matches[0].Start, state.Matches[0].End)
	}
}

func TestFindSkipsZeroWidthMatches(t *testing.T) {
	state, err := Find([]string{"abc"}, "x*")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state.Matches) != 0 {
		t.Errorf("expected zero-width matches to be skipped, got %+v", state.Matches)
	}
}

func TestNextPreviousAreInverses(t *testing.T) {
	lines := []string{"m", "m", "m", "m", "m"}
	state, err := Find(lines, "m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for start := 0; start < len(state.Matches); start++ {
		state.Current = start
		state.Next()
		state.Previous()
		if state.Current != start {
			t.Errorf("Next then Previous moved current from %d to %d", start, state.Current)
		}
		state.Previous()
		state.Next()
		if state.Current != start {
			t.Errorf("Previous then Next moved current from %d to %d", start, state.Current)
		}
	}
}

func TestCycleWrapsAround(t *testing.T) {
	state, err := Find([]string{"x x x"}, "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state.Current = len(state.Matches) - 1
	state.Next()
	if state.Current != 0 {
		t.Errorf("expected wrap to 0, got %d", state.Current)
	}
	state.Previous()
	if state.Current != len(state.Matches)-1 {
		t.Errorf("expected backward wrap to %d, got %d", len(state.Matches)-1, state.Current)
	}
}

func TestCycleOnEmptyStateIsNoOp(t *testing.T) {
	state := &State{Query: "q"}
	state.Next()
	state.Previous()
	state.JumpTo(3)
	if state.Current != 0 {
		t.Errorf("expected current to stay 0, got %d", state.Current)
	}
}

func TestJumpToClampsSilently(t *testing.T) {
	state, err := Find([]string{"y y y"}, "y")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state.JumpTo(99)
	if state.Current != 2 {
		t.Errorf("expected clamp to 2, got %d", state.Current)
	}
	state.JumpTo(-4)
	if state.Current != 0 {
		t.Errorf("expected clamp to 0, got %d", state.Current)
	}
}

func TestLiveRescanSeesNewLines(t *testing.T) {
	lines := []string{"error: one"}
	state, err := Find(lines, "error")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state.Matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(state.Matches))
	}

	lines = append(lines, "error: two")
	state, err = Find(lines, "error")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state.Matches) != 2 {
		t.Errorf("expected rescan to pick up the new line, got %d matches", len(state.Matches))
	}
}

func TestEnsureVisible(t *testing.T) {
	cases := []struct {
		offset, row, height int
		want                int
	}{
		{10, 15, 10, 10}, // already visible
		{10, 10, 10, 10}, // first visible row
		{10, 19, 10, 10}, // last visible row
		{10, 5, 10, 5},   // above: scroll up to the row
		{10, 25, 10, 16}, // below: row becomes the last visible
		{0, 0, 0, 0},     // degenerate viewport
	}
	for _, c := range cases {
		if got := EnsureVisible(c.offset, c.row, c.height); got != c.want {
			t.Errorf("EnsureVisible(%d, %d, %d): expected %d, got %d",
				c.offset, c.row, c.height, c.want, got)
		}
	}
}

func TestFindHandlesLongBuffers(t *testing.T) {
	var lines []string
	for i := 0; i < 2000; i++ {
		lines = append(lines, strings.Repeat("filler ", 8))
	}
	lines[1999] = "the needle sits at the very end"
	state, err := Find(lines, "needle")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state.Matches) != 1 || state.Matches[0].Line != 1999 {
		t.Errorf("expected a single match on line 1999, got %+v", state.Matches)
	}
}
