package buffer

import (
	"github.com/amirali/neveshtar/tools"
)

// Set is the ordered list of open buffers. It always holds at least one
// buffer.
type Set struct {
	buffers []*Buffer
	current int
	tabStop int
}

func NewSet(tabStop int) *Set {
	s := &Set{tabStop: tabStop}
	s.New()
	return s
}

// scratch reports whether the set only holds the untouched buffer it was
// created with.
func (s *Set) scratch() bool {
	if len(s.buffers) != 1 {
		return false
	}
	b := s.buffers[0]
	return len(b.Rows) == 0 && b.Dirty == 0 && b.Filename == ""
}

// Add appends b and makes it current. An untouched scratch buffer is
// replaced instead of kept around.
func (s *Set) Add(b *Buffer) {
	if s.scratch() {
		s.buffers[0] = b
		s.current = 0
		return
	}
	s.buffers = append(s.buffers, b)
	s.current = len(s.buffers) - 1
}

// New opens an empty buffer and makes it current.
func (s *Set) New() *Buffer {
	b := New(s.tabStop)
	s.buffers = append(s.buffers, b)
	s.current = len(s.buffers) - 1
	return b
}

func (s *Set) Current() *Buffer {
	return s.buffers[s.current]
}

func (s *Set) Index() int {
	return s.current
}

func (s *Set) Len() int {
	return len(s.buffers)
}

func (s *Set) Next() {
	s.current = (s.current + 1) % len(s.buffers)
}

// Close removes the current buffer. Closing the last one leaves a fresh
// empty buffer in its place.
func (s *Set) Close() {
	s.buffers = tools.RemoveFromSlice(s.buffers, s.current)
	if len(s.buffers) == 0 {
		s.New()
		return
	}
	if s.current >= len(s.buffers) {
		s.current = len(s.buffers) - 1
	}
}

// AnyDirty reports whether any open buffer has unsaved changes.
func (s *Set) AnyDirty() bool {
	for _, b := range s.buffers {
		if b.Dirty > 0 {
			return true
		}
	}
	return false
}
