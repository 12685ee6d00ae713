package buffer

import (
	"bytes"
	"slices"

	"github.com/amirali/neveshtar/editor/syntax"
)

type SearchAction int

const (
	// SearchRestart searches forward from the top, used after the query
	// changed.
	SearchRestart SearchAction = iota
	SearchNext
	SearchPrev
	// SearchDone ends the search and removes the match highlight.
	SearchDone
)

// Search is an incremental search over one buffer. It highlights the
// current match and restores the row's previous tags before moving on.
type Search struct {
	lastMatch int // -1 means no match yet
	direction int // 1 = forward, -1 = backward

	savedRow  int
	savedTags []syntax.Tag
}

func NewSearch() *Search {
	return &Search{lastMatch: -1, direction: 1, savedRow: -1}
}

func (s *Search) restore(b *Buffer) {
	if s.savedTags != nil && b.validRow(s.savedRow) {
		row := b.Rows[s.savedRow]
		if len(row.Tags) == len(s.savedTags) {
			copy(row.Tags, s.savedTags)
		}
	}
	s.savedRow = -1
	s.savedTags = nil
}

// Step runs the search for query after one prompt key press and reports
// whether a match was found.
func (s *Search) Step(b *Buffer, query string, action SearchAction) bool {
	s.restore(b)

	switch action {
	case SearchDone:
		s.lastMatch = -1
		s.direction = 1
		return false
	case SearchNext:
		s.direction = 1
	case SearchPrev:
		s.direction = -1
	default:
		s.lastMatch = -1
		s.direction = 1
	}
	if s.lastMatch == -1 {
		s.direction = 1
	}
	if query == "" || len(b.Rows) == 0 {
		return false
	}

	q := []byte(query)
	current := s.lastMatch
	for range b.Rows {
		current += s.direction
		switch current {
		case -1:
			current = len(b.Rows) - 1
		case len(b.Rows):
			current = 0
		}

		row := b.Rows[current]
		rx := indexFold(row.Render, q)
		if rx == -1 {
			continue
		}
		s.lastMatch = current
		b.Cy = current
		b.Cx = RxToCx(row, rx, b.TabStop)
		// set RowOffset past the end so that the next scroll puts the
		// matching line at the top of the screen
		b.RowOffset = len(b.Rows)

		s.savedRow = current
		s.savedTags = slices.Clone(row.Tags)
		for i := rx; i < rx+len(q) && i < len(row.Tags); i++ {
			row.Tags[i] = syntax.TagMatch
		}
		return true
	}
	return false
}

// indexFold is a case-insensitive bytes.Index.
func indexFold(s, sep []byte) int {
	for i := 0; i+len(sep) <= len(s); i++ {
		if bytes.EqualFold(s[i:i+len(sep)], sep) {
			return i
		}
	}
	return -1
}
