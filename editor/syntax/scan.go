package syntax

import (
	"bytes"
	"strings"

	"github.com/amirali/neveshtar/tools"
)

// Scan classifies every byte of a rendered row. open reports whether the
// previous row ended inside a multi-line comment; the second result is the
// same flag for the end of this row. A nil profile tags everything as
// TagNormal.
func Scan(render []byte, p *Profile, open bool) ([]Tag, bool) {
	tags := make([]Tag, len(render))
	if p == nil {
		return tags, false
	}

	scs := []byte(p.Scs)
	mcs := []byte(p.Mcs)
	mce := []byte(p.Mce)
	hasBlock := len(mcs) > 0 && len(mce) > 0

	prevSep := true

	// set to the quote when inside of a string.
	// set to zero when outside of a string.
	var strQuote byte

	inComment := open && hasBlock

	idx := 0
	for idx < len(render) {
		c := render[idx]
		prevTag := TagNormal
		if idx > 0 {
			prevTag = tags[idx-1]
		}

		if len(scs) > 0 && strQuote == 0 && !inComment &&
			bytes.HasPrefix(render[idx:], scs) {
			fill(tags[idx:], TagComment)
			break
		}

		if hasBlock && strQuote == 0 {
			if inComment {
				tags[idx] = TagMLComment
				if bytes.HasPrefix(render[idx:], mce) {
					fill(tags[idx:idx+len(mce)], TagMLComment)
					idx += len(mce)
					inComment = false
					prevSep = true
					continue
				}
				idx++
				continue
			} else if bytes.HasPrefix(render[idx:], mcs) {
				fill(tags[idx:idx+len(mcs)], TagMLComment)
				idx += len(mcs)
				inComment = true
				continue
			}
		}

		if p.Flags&HighlightStrings != 0 {
			if strQuote != 0 {
				tags[idx] = TagString
				// deal with escape quote when inside a string
				if c == '\\' && idx+1 < len(render) {
					tags[idx+1] = TagString
					idx += 2
					continue
				}
				if c == strQuote {
					strQuote = 0
				}
				idx++
				prevSep = true
				continue
			} else if c == '"' || c == '\'' {
				strQuote = c
				tags[idx] = TagString
				idx++
				continue
			}
		}

		if p.Flags&HighlightNumbers != 0 {
			if isDigit(c) && (prevSep || prevTag == TagNumber) ||
				c == '.' && prevTag == TagNumber {
				tags[idx] = TagNumber
				idx++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if n, tag := matchKeyword(render[idx:], p.Keywords); n > 0 {
				fill(tags[idx:idx+n], tag)
				idx += n
				prevSep = false
				continue
			}
		}

		prevSep = tools.IsSeparator(c)
		idx++
	}

	return tags, inComment
}

// matchKeyword returns the length and tag of the first keyword that starts
// s and is followed by a separator or the end of s.
func matchKeyword(s []byte, keywords []string) (int, Tag) {
	for _, kw := range keywords {
		tag := TagKeyword1
		if k, ok := strings.CutSuffix(kw, "|"); ok {
			kw = k
			tag = TagKeyword2
		}
		end := len(kw)
		if end == 0 || end > len(s) || string(s[:end]) != kw {
			continue
		}
		if end == len(s) || tools.IsSeparator(s[end]) {
			return end, tag
		}
	}
	return 0, TagNormal
}

func fill(tags []Tag, t Tag) {
	for i := range tags {
		tags[i] = t
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
