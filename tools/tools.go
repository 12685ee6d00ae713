package tools

import (
	"bytes"
	"fmt"
	"io"
	"slices"
)

// separators lists the punctuation that ends a word for keyword and number
// recognition, in addition to whitespace and NUL.
const separators = ",.()+-/*=~%<>[];"

// InsertToSlice inserts value at index at. Out of range indexes leave s
// unchanged. The result may share storage with s.
func InsertToSlice[T any](s []T, value T, at int) []T {
	if at >= 0 && at <= len(s) {
		s = slices.Insert(s, at, value)
	}

	return s
}

// RemoveFromSlice removes the element at index at. Out of range indexes
// leave s unchanged. The result may share storage with s.
func RemoveFromSlice[T any](s []T, at int) []T {
	if at >= 0 && at < len(s) {
		s = slices.Delete(s, at, at+1)
	}

	return s
}

// GetCursorPosition asks the terminal for the cursor position with a DSR
// query written to out and parses the reply read from in.
func GetCursorPosition(in io.Reader, out io.Writer) (row, col int, err error) {
	if _, err = out.Write([]byte("\x1b[6n")); err != nil {
		return
	}
	if _, err = fmt.Fscanf(in, "\x1b[%d;%dR", &row, &col); err != nil {
		return
	}
	return
}

func IsSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0:
		return true
	}
	return bytes.IndexByte([]byte(separators), c) != -1
}
