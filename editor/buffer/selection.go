package buffer

// TabSentinel stands for a tab inside copied text, so paste can tell a
// real tab from the spaces it renders as.
const TabSentinel byte = 0x1f

func (b *Buffer) ClearSelection() {
	for _, row := range b.Rows {
		row.clearSelection()
	}
	b.Selecting = false
}

// span returns the rendered columns covered by raw column cx.
func span(row *Row, cx, tabStop int) (int, int) {
	return CxToRx(row, cx, tabStop), CxToRx(row, cx+1, tabStop)
}

// ToggleSelection flips the selection of the character next to the cursor
// in direction d: the one under the cursor for Right, the one before it
// for Left. Toggling is not idempotent, so passing over a character twice
// unselects it. Up and Down keep the selection as is.
func (b *Buffer) ToggleSelection(d Direction) {
	row := b.CurrentRow()
	if row == nil || len(row.Chars) == 0 {
		return
	}
	cx := -1
	switch d {
	case Right:
		if b.Cx < len(row.Chars) {
			cx = b.Cx
		}
	case Left:
		if b.Cx > 0 {
			cx = b.Cx - 1
		}
	}
	if cx >= 0 {
		from, to := span(row, cx, b.TabStop)
		for rx := from; rx < to && rx < len(row.Selected); rx++ {
			row.Selected[rx] = !row.Selected[rx]
		}
	}
	b.Selecting = true
}

// Copy collects the selected characters in reading order. Rows are joined
// with '\n' and tabs are replaced with TabSentinel.
func (b *Buffer) Copy() []byte {
	var out []byte
	line := -1
	for i, row := range b.Rows {
		rx := 0
		for _, c := range row.Chars {
			start := rx
			if c == '\t' {
				rx += (b.TabStop - 1) - (rx % b.TabStop)
			}
			rx++
			if start >= len(row.Selected) || !row.Selected[start] {
				continue
			}
			if line >= 0 && line != i {
				out = append(out, '\n')
			}
			line = i
			if c == '\t' {
				c = TabSentinel
			}
			out = append(out, c)
		}
	}
	return out
}

// Paste types clip at the cursor. '\n' breaks the line without carrying
// indentation, so pasted text lands exactly as it was copied.
func (b *Buffer) Paste(clip []byte) {
	for _, c := range clip {
		switch c {
		case TabSentinel:
			b.InsertChar('\t')
		case '\n':
			b.breakLine()
		default:
			b.InsertChar(c)
		}
	}
}
