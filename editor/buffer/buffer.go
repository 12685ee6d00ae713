package buffer

import (
	"slices"

	"github.com/amirali/neveshtar/editor/syntax"
	"github.com/amirali/neveshtar/tools"
)

const DefaultTabStop = 4

// Direction is a cursor motion.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
	Home
	End
)

// Buffer is one open document. The cursor row Cy may equal len(Rows), which
// stands for the empty line past the end of the file.
type Buffer struct {
	Cx int
	Cy int
	// Rendered column of the cursor, refreshed by the compositor.
	Rx int

	RowOffset int
	ColOffset int

	Rows []*Row

	// Number of mutations since the last load or save.
	Dirty int

	Filename string
	Syntax   *syntax.Profile

	// Selecting is set once a selection cell has been toggled and cleared
	// with the selection.
	Selecting bool

	TabStop int
}

func New(tabStop int) *Buffer {
	if tabStop < 1 {
		tabStop = DefaultTabStop
	}
	return &Buffer{TabStop: tabStop}
}

// SetSyntax binds a profile and rescans every row.
func (b *Buffer) SetSyntax(p *syntax.Profile) {
	b.Syntax = p
	open := false
	for _, row := range b.Rows {
		row.Tags, row.OpenComment = syntax.Scan(row.Render, p, open)
		row.clearSelection()
		open = row.OpenComment
	}
	b.Selecting = false
}

// updateSyntax rescans the row at `at` and keeps walking down while the
// open comment state at the end of a row changes, since that state is
// the starting state of the row below.
func (b *Buffer) updateSyntax(at int) {
	for next := at; next >= 0 && next < len(b.Rows); next++ {
		open := next > 0 && b.Rows[next-1].OpenComment
		row := b.Rows[next]
		tags, rowOpen := syntax.Scan(row.Render, b.Syntax, open)
		row.Tags = tags
		row.clearSelection()
		changed := row.OpenComment != rowOpen
		row.OpenComment = rowOpen
		if !changed {
			return
		}
	}
}

// touch finishes a mutation of the row at `at`.
func (b *Buffer) touch(at int) {
	b.updateSyntax(at)
	b.Dirty++
	if b.Selecting {
		b.ClearSelection()
	}
}

func (b *Buffer) validRow(at int) bool {
	return at >= 0 && at < len(b.Rows)
}

func (b *Buffer) InsertRow(at int, s []byte) {
	if at < 0 || at > len(b.Rows) {
		return
	}
	row := &Row{Chars: slices.Clone(s)}
	if row.Chars == nil {
		row.Chars = []byte{}
	}
	// start from the state the row below used to see, so the syntax pass
	// notices when the new row changes it.
	if at > 0 {
		row.OpenComment = b.Rows[at-1].OpenComment
	}
	row.update(b.TabStop)
	b.Rows = tools.InsertToSlice(b.Rows, row, at)
	b.touch(at)
}

func (b *Buffer) DeleteRow(at int) {
	if !b.validRow(at) {
		return
	}
	b.Rows = tools.RemoveFromSlice(b.Rows, at)
	// the row that moved up has a new predecessor.
	b.touch(at)
}

// RowInsertChar inserts c into row `at`. A column outside the row appends.
func (b *Buffer) RowInsertChar(at, col int, c byte) {
	if !b.validRow(at) {
		return
	}
	row := b.Rows[at]
	if col < 0 || col > len(row.Chars) {
		col = len(row.Chars)
	}
	row.Chars = slices.Insert(row.Chars, col, c)
	row.update(b.TabStop)
	b.touch(at)
}

func (b *Buffer) RowDeleteChar(at, col int) {
	if !b.validRow(at) {
		return
	}
	row := b.Rows[at]
	if col < 0 || col >= len(row.Chars) {
		return
	}
	row.Chars = slices.Delete(row.Chars, col, col+1)
	row.update(b.TabStop)
	b.touch(at)
}

func (b *Buffer) RowAppend(at int, s []byte) {
	if !b.validRow(at) {
		return
	}
	row := b.Rows[at]
	row.Chars = append(row.Chars, s...)
	row.update(b.TabStop)
	b.touch(at)
}

// SplitRow moves everything from col onwards into a new row below.
func (b *Buffer) SplitRow(at, col int) {
	if !b.validRow(at) {
		return
	}
	row := b.Rows[at]
	col = max(0, min(col, len(row.Chars)))
	tail := slices.Clone(row.Chars[col:])
	row.Chars = slices.Clip(row.Chars[:col])
	row.update(b.TabStop)
	b.touch(at)
	b.InsertRow(at+1, tail)
}

// JoinWithPrevious appends row `at` to the row above and removes it. It
// returns the column where the two rows meet, or -1 if there is no row
// above.
func (b *Buffer) JoinWithPrevious(at int) int {
	if at <= 0 || at >= len(b.Rows) {
		return -1
	}
	prev := b.Rows[at-1]
	col := len(prev.Chars)
	b.RowAppend(at-1, b.Rows[at].Chars)
	b.DeleteRow(at)
	return col
}

// CurrentRow returns the row under the cursor, or nil on the line past
// the end.
func (b *Buffer) CurrentRow() *Row {
	if !b.validRow(b.Cy) {
		return nil
	}
	return b.Rows[b.Cy]
}

func (b *Buffer) clampCursor() {
	b.Cy = max(0, min(b.Cy, len(b.Rows)))
	rowlen := 0
	if row := b.CurrentRow(); row != nil {
		rowlen = len(row.Chars)
	}
	b.Cx = max(0, min(b.Cx, rowlen))
}

func (b *Buffer) InsertChar(c byte) {
	if b.Cy == len(b.Rows) {
		b.InsertRow(len(b.Rows), nil)
	}
	b.RowInsertChar(b.Cy, b.Cx, c)
	b.Cx++
}

// InsertNewline breaks the line at the cursor. The new line starts with
// the leading spaces and tabs of the line above.
func (b *Buffer) InsertNewline() {
	indent := 0
	if b.Cx == 0 {
		b.InsertRow(b.Cy, nil)
	} else {
		b.SplitRow(b.Cy, b.Cx)
		row := b.Rows[b.Cy]
		for indent < len(row.Chars) && (row.Chars[indent] == ' ' || row.Chars[indent] == '\t') {
			b.RowInsertChar(b.Cy+1, indent, row.Chars[indent])
			indent++
		}
	}
	b.Cy++
	b.Cx = indent
}

// breakLine splits the line at the cursor without carrying indentation.
func (b *Buffer) breakLine() {
	if b.Cy >= len(b.Rows) {
		b.InsertRow(len(b.Rows), nil)
	} else {
		b.SplitRow(b.Cy, b.Cx)
	}
	b.Cy++
	b.Cx = 0
}

// DelChar deletes the character left of the cursor, joining with the
// previous line at column zero.
func (b *Buffer) DelChar() {
	if b.Cy == len(b.Rows) {
		return
	}
	if b.Cx == 0 && b.Cy == 0 {
		return
	}
	if b.Cx > 0 {
		b.RowDeleteChar(b.Cy, b.Cx-1)
		b.Cx--
	} else {
		b.Cx = b.JoinWithPrevious(b.Cy)
		b.Cy--
	}
}

func (b *Buffer) DuplicateRow() {
	row := b.CurrentRow()
	if row == nil {
		return
	}
	b.InsertRow(b.Cy+1, row.Chars)
	b.Cy++
}

func (b *Buffer) DeleteCurrentRow() {
	if b.CurrentRow() == nil {
		return
	}
	b.DeleteRow(b.Cy)
	b.clampCursor()
}

// Move moves the cursor one step. Left and Right wrap across line ends.
func (b *Buffer) Move(d Direction) {
	row := b.CurrentRow()
	switch d {
	case Left:
		if b.Cx != 0 {
			b.Cx--
		} else if b.Cy > 0 {
			b.Cy--
			b.Cx = len(b.Rows[b.Cy].Chars)
		}
	case Right:
		if row != nil && b.Cx < len(row.Chars) {
			b.Cx++
		} else if row != nil && b.Cx == len(row.Chars) {
			b.Cy++
			b.Cx = 0
		}
	case Up:
		if b.Cy != 0 {
			b.Cy--
		}
	case Down:
		if b.Cy < len(b.Rows) {
			b.Cy++
		}
	case Home:
		b.Cx = 0
	case End:
		if row != nil {
			b.Cx = len(row.Chars)
		}
	}
	// If the cursor ends up past the end of the line it's on
	// put the cursor at the end of the line.
	b.clampCursor()
}

// String returns the file contents, each row followed by a newline.
func (b *Buffer) String() string {
	return string(b.Bytes())
}

func (b *Buffer) Bytes() []byte {
	n := 0
	for _, row := range b.Rows {
		n += len(row.Chars) + 1
	}
	out := make([]byte, 0, n)
	for _, row := range b.Rows {
		out = append(out, row.Chars...)
		out = append(out, '\n')
	}
	return out
}
