package buffer

import (
	"github.com/amirali/neveshtar/editor/syntax"
)

type Row struct {
	// Raw character data for the row.
	Chars []byte
	// Actual characters to draw on the screen, tabs expanded.
	Render []byte
	// Syntax highlight value for each byte in Render.
	Tags []syntax.Tag
	// Selection overlay for each byte in Render.
	Selected []bool
	// Indicates whether this row ends inside an unclosed multiline comment.
	OpenComment bool
}

// update rebuilds Render from Chars. Tags and Selected are resized by the
// following syntax pass.
func (row *Row) update(tabStop int) {
	render := make([]byte, 0, len(row.Chars))
	for _, c := range row.Chars {
		if c == '\t' {
			// each tab must advance the cursor forward at least one column
			render = append(render, ' ')
			// append spaces until we get to a tab stop
			for len(render)%tabStop != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	row.Render = render
}

func (row *Row) clearSelection() {
	if len(row.Selected) != len(row.Render) {
		row.Selected = make([]bool, len(row.Render))
		return
	}
	for i := range row.Selected {
		row.Selected[i] = false
	}
}

// CxToRx maps a raw column to its rendered column.
func CxToRx(row *Row, cx, tabStop int) int {
	if cx > len(row.Chars) {
		cx = len(row.Chars)
	}
	rx := 0
	for _, c := range row.Chars[:cx] {
		if c == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

// RxToCx maps a rendered column back to the raw column whose span covers
// it. Columns past the end of the row map to the row length.
func RxToCx(row *Row, rx, tabStop int) int {
	curRx := 0
	for cx, c := range row.Chars {
		if c == '\t' {
			curRx += (tabStop - 1) - (curRx % tabStop)
		}
		curRx++
		if curRx > rx {
			return cx
		}
	}
	return len(row.Chars)
}
