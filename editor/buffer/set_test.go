package buffer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetCloseLast(t *testing.T) {
	s := NewSet(DefaultTabStop)
	first := s.Current()
	first.InsertChar('a')
	s.Close()
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if s.Current() == first {
		t.Errorf("Close kept the closed buffer")
	}
	if len(s.Current().Rows) != 0 {
		t.Errorf("new buffer is not empty")
	}
}

func TestSetAddNextClose(t *testing.T) {
	s := NewSet(DefaultTabStop)
	scratch := s.Current()
	a := New(DefaultTabStop)
	a.Filename = "a"
	s.Add(a)
	if s.Len() != 1 || s.Current() != a {
		t.Fatalf("Add did not replace the scratch buffer")
	}
	if s.Current() == scratch {
		t.Fatalf("scratch buffer still current")
	}

	b := s.New()
	c := s.New()
	if s.Len() != 3 || s.Index() != 2 || s.Current() != c {
		t.Fatalf("Len=%d Index=%d, want 3 and 2", s.Len(), s.Index())
	}
	s.Next()
	if s.Current() != a {
		t.Errorf("Next did not wrap to the first buffer")
	}
	s.Next()
	if s.Current() != b {
		t.Errorf("Next = %p, want %p", s.Current(), b)
	}

	s.Next()
	s.Close()
	if s.Len() != 2 || s.Index() != 1 || s.Current() != b {
		t.Errorf("after closing the last buffer Index=%d, want 1", s.Index())
	}
	s.Close()
	if s.Len() != 1 || s.Current() != a {
		t.Errorf("after closing b current is not a")
	}

	a.Dirty = 1
	if !s.AnyDirty() {
		t.Errorf("AnyDirty() = false")
	}
}

func TestLoad(t *testing.T) {
	b := New(DefaultTabStop)
	if err := b.Load(strings.NewReader("a\r\nb\n\n\tc")); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := b.String(); got != "a\nb\n\n\tc\n" {
		t.Errorf("String() = %q", got)
	}
	if b.Dirty != 0 {
		t.Errorf("Dirty = %d after load, want 0", b.Dirty)
	}
	checkInvariants(t, b)
}

func TestOpenAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.c")
	if err := os.WriteFile(path, []byte("int x;\n/* a\nb */\n"), 0644); err != nil {
		t.Fatal(err)
	}

	b, err := Open(path, DefaultTabStop)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if b.Syntax == nil || b.Syntax.Filetype != "c" {
		t.Fatalf("Syntax = %v, want c", b.Syntax)
	}
	if len(b.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(b.Rows))
	}

	b.Cy = 1
	b.InsertChar('!')
	n, err := b.Save()
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "int x;\n!/* a\nb */\n" || n != len(data) {
		t.Errorf("saved %d bytes %q", n, data)
	}
	if b.Dirty != 0 {
		t.Errorf("Dirty = %d after save", b.Dirty)
	}
}

func TestOpenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.py")
	b, err := Open(path, DefaultTabStop)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Open error = %v, want ErrNotExist", err)
	}
	if b == nil || b.Filename != path || len(b.Rows) != 0 {
		t.Fatalf("Open did not return an empty buffer bound to %s", path)
	}
	if b.Syntax == nil || b.Syntax.Filetype != "python" {
		t.Errorf("Syntax not selected for a missing file")
	}
}

func TestSaveError(t *testing.T) {
	b := New(DefaultTabStop)
	b.Filename = filepath.Join(t.TempDir(), "missing", "dir", "f.txt")
	b.InsertChar('a')
	if _, err := b.Save(); err == nil {
		t.Fatalf("Save into a missing directory succeeded")
	}
	if b.Dirty == 0 || b.String() != "a\n" {
		t.Errorf("failed save lost state: dirty=%d text=%q", b.Dirty, b.String())
	}
}
