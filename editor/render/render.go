// Package render composes the terminal frame for the current buffer: the
// visible rows with line numbers and colors, the status bar, the message
// bar and the final cursor position.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/amirali/neveshtar/editor/buffer"
	"github.com/amirali/neveshtar/editor/syntax"
)

// Status carries what the bars show besides the buffer itself.
type Status struct {
	// Position of the buffer in the buffer set, zero based.
	Index int
	Count int
	Mode  string

	Message     string
	MessageTime time.Time
}

type Compositor struct {
	// Rows is the number of text rows, not counting the two bars.
	Rows int
	Cols int

	StatusTimeout time.Duration
	Version       string
}

// cell states besides SGR color codes
const (
	stateDefault = -1
	stateReverse = -2
)

// GutterWidth is the width of the line number column, including the
// "| " separator.
func GutterWidth(b *buffer.Buffer) int {
	if len(b.Rows) == 0 {
		return 0
	}
	return len(strconv.Itoa(len(b.Rows))) + 2
}

func (c *Compositor) textCols(b *buffer.Buffer) int {
	return max(1, c.Cols-GutterWidth(b))
}

// Scroll refreshes b.Rx and moves the offsets so the cursor is visible.
func (c *Compositor) Scroll(b *buffer.Buffer) {
	b.Rx = 0
	if row := b.CurrentRow(); row != nil {
		b.Rx = buffer.CxToRx(row, b.Cx, b.TabStop)
	}
	// scroll up if the cursor is above the visible window.
	if b.Cy < b.RowOffset {
		b.RowOffset = b.Cy
	}
	// scroll down if the cursor is below the visible window.
	if b.Cy >= b.RowOffset+c.Rows {
		b.RowOffset = b.Cy - c.Rows + 1
	}
	// scroll left if the cursor is left of the visible window.
	if b.Rx < b.ColOffset {
		b.ColOffset = b.Rx
	}
	// scroll right if the cursor is right of the visible window.
	width := c.textCols(b)
	if b.Rx >= b.ColOffset+width {
		b.ColOffset = b.Rx - width + 1
	}
}

// Render scrolls b and returns one complete frame.
func (c *Compositor) Render(b *buffer.Buffer, st Status, now time.Time) []byte {
	c.Scroll(b)

	var sb strings.Builder

	sb.WriteString("\x1b[?25l") // hide the cursor
	sb.WriteString("\x1b[H")    // reposition the cursor at the top left.

	c.drawRows(&sb, b)
	c.drawStatusBar(&sb, b, st)
	c.drawMessageBar(&sb, st, now)

	// position the cursor
	fmt.Fprintf(&sb, "\x1b[%d;%dH", (b.Cy-b.RowOffset)+1, (b.Rx-b.ColOffset)+GutterWidth(b)+1)
	// show the cursor
	sb.WriteString("\x1b[?25h")
	return []byte(sb.String())
}

func (c *Compositor) drawRows(sb *strings.Builder, b *buffer.Buffer) {
	digits := GutterWidth(b) - 2
	width := c.textCols(b)
	for y := 0; y < c.Rows; y++ {
		filerow := y + b.RowOffset
		if filerow >= len(b.Rows) {
			if len(b.Rows) == 0 && b.Dirty == 0 && y == c.Rows/3 {
				c.drawWelcome(sb)
			} else {
				sb.WriteString("~")
			}
		} else {
			sb.WriteString("\x1b[0;90m")
			fmt.Fprintf(sb, "%*d| ", digits, filerow+1)
			sb.WriteString("\x1b[m") // reset all formatting
			drawCells(sb, b.Rows[filerow], b.ColOffset, width)
		}
		sb.WriteString("\x1b[K") // clear the line
		sb.WriteString("\r\n")
	}
}

func (c *Compositor) drawWelcome(sb *strings.Builder) {
	welcomeMsg := fmt.Sprintf("Neveshtar editor -- version %s", c.Version)
	if runewidth.StringWidth(welcomeMsg) > c.Cols {
		welcomeMsg = runewidth.Truncate(welcomeMsg, c.Cols, "")
	}
	padding := (c.Cols - runewidth.StringWidth(welcomeMsg)) / 2
	if padding > 0 {
		sb.WriteString("~")
		padding--
	}
	sb.WriteString(strings.Repeat(" ", padding))
	sb.WriteString(welcomeMsg)
}

// setState emits the escape needed to go from the current cell state to
// the next one. Nothing is written when they are equal.
func setState(sb *strings.Builder, current *int, next int) {
	if *current == next {
		return
	}
	switch {
	case *current == stateReverse && next == stateDefault:
		sb.WriteString("\x1b[27m")
	case *current == stateReverse:
		fmt.Fprintf(sb, "\x1b[27;%dm", next)
	case next == stateReverse:
		sb.WriteString("\x1b[39;7m")
	case next == stateDefault:
		sb.WriteString("\x1b[39m")
	default:
		fmt.Fprintf(sb, "\x1b[%dm", next)
	}
	*current = next
}

// drawCells writes width cells of row starting at rendered column from.
func drawCells(sb *strings.Builder, row *buffer.Row, from, width int) {
	start := min(from, len(row.Render))
	end := min(start+width, len(row.Render))

	current := stateDefault
	for i := start; i < end; i++ {
		ch := row.Render[i]
		switch {
		case ch < 32 || ch == 127:
			// deal with non-printable characters (e.g. Ctrl-A)
			sym := byte('?')
			if ch <= 26 {
				sym = '@' + ch
			}
			sb.WriteString("\x1b[7m") // use inverted colors
			sb.WriteByte(sym)
			sb.WriteString("\x1b[m") // reset all formatting
			switch current {
			case stateDefault:
			case stateReverse:
				sb.WriteString("\x1b[7m")
			default:
				fmt.Fprintf(sb, "\x1b[%dm", current)
			}
		case row.Selected[i]:
			setState(sb, &current, stateReverse)
			sb.WriteByte(ch)
		case row.Tags[i] == syntax.TagNormal:
			setState(sb, &current, stateDefault)
			sb.WriteByte(ch)
		default:
			setState(sb, &current, syntax.Color(row.Tags[i]))
			sb.WriteByte(ch)
		}
	}
	if current == stateReverse {
		sb.WriteString("\x1b[27m")
	}
	sb.WriteString("\x1b[39m") // reset to normal color
}

func (c *Compositor) drawStatusBar(sb *strings.Builder, b *buffer.Buffer, st Status) {
	// switch to inverted colors, and back to normal formatting when done.
	sb.WriteString("\x1b[7m")
	defer sb.WriteString("\x1b[m\r\n")

	filename := b.Filename
	if filename == "" {
		filename = "[No Name]"
	}
	dirtyStatus := ""
	if b.Dirty > 0 {
		dirtyStatus = "(modified)"
	}
	lmsg := fmt.Sprintf("%s - file %d/%d - %d lines %s",
		runewidth.Truncate(filename, 20, ""), st.Index+1, st.Count, len(b.Rows), dirtyStatus)
	if runewidth.StringWidth(lmsg) > c.Cols {
		lmsg = runewidth.Truncate(lmsg, c.Cols, "...")
	}
	sb.WriteString(lmsg)

	filetype := "no ft"
	if b.Syntax != nil {
		filetype = b.Syntax.Filetype
	}
	rmsg := fmt.Sprintf("%s | %d/%d", filetype, b.Cy+1, len(b.Rows))
	if st.Mode != "" {
		rmsg = st.Mode + " " + rmsg
	}

	l := runewidth.StringWidth(lmsg)
	rl := runewidth.StringWidth(rmsg)
	for l < c.Cols {
		if c.Cols-l == rl {
			sb.WriteString(rmsg)
			break
		}
		sb.WriteString(" ")
		l++
	}
}

func (c *Compositor) drawMessageBar(sb *strings.Builder, st Status, now time.Time) {
	sb.WriteString("\x1b[K")
	msg := st.Message
	if runewidth.StringWidth(msg) > c.Cols {
		msg = runewidth.Truncate(msg, c.Cols, "...")
	}
	// show the message until it times out.
	if msg != "" && now.Sub(st.MessageTime) < c.StatusTimeout {
		sb.WriteString(msg)
	}
}
