// Package search scans buffered build output for pattern matches and tracks
// the user's position in the match list. Lines are cleaned (ANSI stripped)
// before matching so byte offsets line up with the text the display layer
// shows and with the row metrics used to scroll a match into view.
package search

import (
	"fmt"
	"regexp"

	"github.com/charmbracelet/x/ansi"
)

// Match is one occurrence of the pattern, located by line index and byte
// range within that line's cleaned text.
type Match struct {
	Line  int
	Start int
	End   int
}

// State is the result of one scan. Matches are ordered by (Line, Start);
// Current indexes into Matches and wraps on cycling.
type State struct {
	Query   string
	Matches []Match
	Current int
}

// Find compiles pattern as a regular expression and scans every line in
// order, collecting all non-overlapping matches left to right. An invalid
// pattern returns an error so the caller can keep its previous state; an
// empty match list is a valid result, not an error.
func Find(lines []string, pattern string) (*State, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid search pattern: %w", err)
	}
	state := &State{Query: pattern}
	if pattern == "" {
		return state, nil
	}
	for index, line := range lines {
		clean := ansi.Strip(line)
		for _, loc := range re.FindAllStringIndex(clean, -1) {
			if loc[0] == loc[1] {
				// Zero-width matches would trap cycling on one spot.
				continue
			}
			state.Matches = append(state.Matches, Match{Line: index, Start: loc[0], End: loc[1]})
		}
	}
	return state, nil
}

// CurrentMatch returns the selected match, or nil when there are none.
func (s *State) CurrentMatch() *Match {
	if s == nil || len(s.Matches) == 0 {
		return nil
	}
	return &s.Matches[s.Current]
}

// Next advances to the following match, wrapping past the end.
func (s *State) Next() {
	if s == nil || len(s.Matches) == 0 {
		return
	}
	s.Current = (s.Current + 1) % len(s.Matches)
}

// Previous moves to the preceding match, wrapping to the end.
func (s *State) Previous() {
	if s == nil || len(s.Matches) == 0 {
		return
	}
	s.Current = (s.Current - 1 + len(s.Matches)) % len(s.Matches)
}

// JumpTo selects an arbitrary match index, clamping silently when the index
// is out of range.
func (s *State) JumpTo(index int) {
	if s == nil || len(s.Matches) == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(s.Matches) {
		index = len(s.Matches) - 1
	}
	s.Current = index
}

// EnsureVisible returns a scroll offset adjusted so that row is inside a
// viewport of the given height starting at offset. When the row is already
// visible the offset comes back unchanged.
func EnsureVisible(offset, row, height int) int {
	if height < 1 {
		return offset
	}
	if row < offset {
		return row
	}
	if row >= offset+height {
		return row - height + 1
	}
	return offset
}
