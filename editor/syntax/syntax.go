package syntax

import (
	"path/filepath"
	"strings"
)

// Tag classifies one rendered character for coloring.
type Tag uint8

const (
	TagNormal Tag = iota
	TagComment
	TagMLComment
	TagKeyword1
	TagKeyword2
	TagString
	TagNumber
	TagMatch
)

type Flags int

const (
	HighlightNumbers Flags = 1 << iota
	HighlightStrings
)

// Profile is the highlighting rule set of one file type. Profiles are built
// once at package initialization and never modified.
type Profile struct {
	Filetype string
	// Patterns matched against a file name. A leading dot matches the
	// extension, anything else matches a substring.
	Filematch []string
	// Keywords ending in "|" are type-like and highlight as TagKeyword2.
	Keywords []string
	// single line comment start
	Scs string
	// multi line comment start pattern
	Mcs string
	// multi line comment end pattern
	Mce string
	Flags Flags
}

var hldb = []*Profile{
	syntaxC, syntaxCPP, syntaxPython, syntaxJavaScript, syntaxGo, syntaxLua,
}

// Profiles returns the registry in lookup order.
func Profiles() []*Profile {
	out := make([]*Profile, len(hldb))
	copy(out, hldb)
	return out
}

// Lookup returns the first profile matching filename, or nil. Extension
// patterns are compared with the extension of the last path element only,
// so a dot in a directory name never matches.
func Lookup(filename string) *Profile {
	if filename == "" {
		return nil
	}
	ext := filepath.Ext(filename)
	for _, s := range hldb {
		for _, pattern := range s.Filematch {
			isExt := strings.HasPrefix(pattern, ".")
			if (isExt && pattern == ext) ||
				(!isExt && strings.Contains(filename, pattern)) {
				return s
			}
		}
	}
	return nil
}

// Color returns the SGR foreground code for a tag.
func Color(t Tag) int {
	switch t {
	case TagComment, TagMLComment:
		return 36
	case TagKeyword1:
		return 33
	case TagKeyword2:
		return 32
	case TagString:
		return 35
	case TagNumber:
		return 31
	case TagMatch:
		return 34
	default:
		return 37
	}
}
