package buffer

import (
	"bytes"
	"testing"
)

func shift(b *Buffer, d Direction) {
	b.ToggleSelection(d)
	b.Move(d)
}

func selectedColumns(row *Row) []int {
	var cols []int
	for i, s := range row.Selected {
		if s {
			cols = append(cols, i)
		}
	}
	return cols
}

func TestToggleSelection(t *testing.T) {
	b := newBuffer(t, "", "abcd")
	shift(b, Right)
	shift(b, Right)
	if got := selectedColumns(b.Rows[0]); len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Fatalf("selected = %v, want [0 1]", got)
	}
	if !b.Selecting {
		t.Errorf("Selecting = false after toggle")
	}

	// going back over a cell unselects it
	shift(b, Left)
	if got := selectedColumns(b.Rows[0]); len(got) != 1 || got[0] != 0 {
		t.Fatalf("selected = %v, want [0]", got)
	}
	shift(b, Left)
	if got := selectedColumns(b.Rows[0]); len(got) != 0 {
		t.Fatalf("selected = %v, want none", got)
	}
	checkInvariants(t, b)
}

func TestToggleSelectionTab(t *testing.T) {
	b := newBuffer(t, "", "\tx")
	shift(b, Right)
	if got := selectedColumns(b.Rows[0]); len(got) != 4 {
		t.Fatalf("selected = %v, want the whole tab span", got)
	}
	shift(b, Left)
	if got := selectedColumns(b.Rows[0]); len(got) != 0 {
		t.Fatalf("selected = %v, want none", got)
	}
}

func TestEditClearsSelection(t *testing.T) {
	b := newBuffer(t, "", "abcd", "ef")
	shift(b, Right)
	b.Rows[1].Selected[0] = true
	b.InsertChar('z')
	if b.Selecting {
		t.Errorf("Selecting = true after an edit")
	}
	for i, row := range b.Rows {
		if cols := selectedColumns(row); len(cols) != 0 {
			t.Errorf("row %d selected = %v after an edit", i, cols)
		}
	}
	checkInvariants(t, b)
}

func TestCopy(t *testing.T) {
	b := newBuffer(t, "", "\tab", "", "cd", "ef")
	b.Rows[0].Selected[0] = true // tab
	b.Rows[0].Selected[4] = true // a
	b.Rows[2].Selected[1] = true // d
	b.Rows[3].Selected[0] = true // e
	b.Selecting = true

	want := []byte{TabSentinel, 'a', '\n', 'd', '\n', 'e'}
	if got := b.Copy(); !bytes.Equal(got, want) {
		t.Errorf("Copy() = %q, want %q", got, want)
	}
}

func TestCopyNothingSelected(t *testing.T) {
	b := newBuffer(t, "", "abc")
	if got := b.Copy(); len(got) != 0 {
		t.Errorf("Copy() = %q, want empty", got)
	}
}

func TestCopyPasteRoundTrip(t *testing.T) {
	b := newBuffer(t, "", "x\tab", "cd", "ef")
	b.Cx = 1
	for i := 0; i < 3; i++ {
		shift(b, Right) // tab, a, b
	}
	b.Move(Right) // wrap to the next line
	shift(b, Right)
	shift(b, Right) // c, d
	b.Move(Right)
	shift(b, Right) // e

	clip := b.Copy()
	want := []byte{TabSentinel, 'a', 'b', '\n', 'c', 'd', '\n', 'e'}
	if !bytes.Equal(clip, want) {
		t.Fatalf("Copy() = %q, want %q", clip, want)
	}

	dst := New(DefaultTabStop)
	dst.Paste(clip)
	if got := dst.String(); got != "\tab\ncd\ne\n" {
		t.Errorf("pasted = %q, want %q", got, "\tab\ncd\ne\n")
	}
	checkInvariants(t, dst)

	// pasting into the middle of a line keeps the surrounding text
	mid := newBuffer(t, "", "  [] ")
	mid.Cx = 3
	mid.Paste(clip)
	if got := mid.String(); got != "  [\tab\ncd\ne] \n" {
		t.Errorf("pasted = %q", got)
	}
}

func TestPasteAtCopySite(t *testing.T) {
	b := newBuffer(t, "", "\tif x", "y")
	for i := 0; i < 5; i++ {
		shift(b, Right)
	}
	b.Move(Right)
	shift(b, Right)
	clip := b.Copy()

	// delete what was selected and paste it back in place
	b.Cy, b.Cx = 0, 0
	b.DeleteCurrentRow()
	b.DeleteCurrentRow()
	b.Paste(clip)
	if got := b.String(); got != "\tif x\ny\n" {
		t.Errorf("buffer = %q, want %q", got, "\tif x\ny\n")
	}
}

func TestPasteLiteralSentinelByte(t *testing.T) {
	b := newBuffer(t, "", "a\x1fb")
	b.Cx = 1
	shift(b, Right)
	clip := b.Copy()
	if !bytes.Equal(clip, []byte{TabSentinel}) {
		t.Fatalf("Copy() = %q", clip)
	}

	// a literal sentinel byte comes back as a tab
	dst := New(DefaultTabStop)
	dst.Paste(clip)
	if got := dst.String(); got != "\t\n" {
		t.Errorf("pasted = %q, want %q", got, "\t\n")
	}
}
