package buffer

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/amirali/neveshtar/editor/syntax"
)

// Open loads filename into a new buffer. The buffer is returned even when
// loading fails, bound to filename and holding whatever was read, so a
// missing file can still be edited and saved.
func Open(filename string, tabStop int) (*Buffer, error) {
	b := New(tabStop)
	b.Filename = filename
	b.SetSyntax(syntax.Lookup(filename))

	f, err := os.Open(filename)
	if err != nil {
		return b, err
	}
	defer f.Close()
	return b, b.Load(f)
}

// Load appends the lines read from r. Trailing '\n' and '\r' are stripped.
func (b *Buffer) Load(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			b.InsertRow(len(b.Rows), bytes.TrimRight(line, "\r\n"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
	}
	b.Dirty = 0
	return nil
}

// Save writes the buffer to its file and returns the number of bytes
// written.
func (b *Buffer) Save() (int, error) {
	f, err := os.OpenFile(b.Filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	n, err := f.Write(b.Bytes())
	if err != nil {
		return n, err
	}
	if err := f.Close(); err != nil {
		return n, err
	}
	b.Dirty = 0
	return n, nil
}
