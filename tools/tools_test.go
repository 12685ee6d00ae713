package tools

import (
	"bytes"
	"slices"
	"strings"
	"testing"
)

func TestInsertToSlice(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		at   int
		want []int
	}{
		{"front", []int{1, 2}, 0, []int{9, 1, 2}},
		{"middle", []int{1, 2}, 1, []int{1, 9, 2}},
		{"end", []int{1, 2}, 2, []int{1, 2, 9}},
		{"empty", nil, 0, []int{9}},
		{"negative is ignored", []int{1}, -1, []int{1}},
		{"past end is ignored", []int{1}, 3, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InsertToSlice(tt.in, 9, tt.at)
			if !slices.Equal(got, tt.want) {
				t.Errorf("InsertToSlice(%v, 9, %d) = %v, want %v", tt.in, tt.at, got, tt.want)
			}
		})
	}
}

func TestRemoveFromSlice(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		at   int
		want []int
	}{
		{"front", []int{1, 2, 3}, 0, []int{2, 3}},
		{"last", []int{1, 2, 3}, 2, []int{1, 2}},
		{"at len is ignored", []int{1, 2}, 2, []int{1, 2}},
		{"negative is ignored", []int{1}, -1, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemoveFromSlice(tt.in, tt.at)
			if !slices.Equal(got, tt.want) {
				t.Errorf("RemoveFromSlice(%v, %d) = %v, want %v", tt.in, tt.at, got, tt.want)
			}
		})
	}
}

func TestIsSeparator(t *testing.T) {
	for _, c := range []byte(" \t\x00,.()+-/*=~%<>[];") {
		if !IsSeparator(c) {
			t.Errorf("IsSeparator(%q) = false, want true", c)
		}
	}
	for _, c := range []byte("aZ09_\"'{}") {
		if IsSeparator(c) {
			t.Errorf("IsSeparator(%q) = true, want false", c)
		}
	}
}

func TestGetCursorPosition(t *testing.T) {
	var out bytes.Buffer
	row, col, err := GetCursorPosition(strings.NewReader("\x1b[24;80R"), &out)
	if err != nil {
		t.Fatalf("GetCursorPosition: %v", err)
	}
	if row != 24 || col != 80 {
		t.Errorf("GetCursorPosition = %d,%d, want 24,80", row, col)
	}
	if out.String() != "\x1b[6n" {
		t.Errorf("query = %q, want %q", out.String(), "\x1b[6n")
	}
}
