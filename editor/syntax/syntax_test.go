package syntax

import (
	"testing"
)

var testProfile = &Profile{
	Filetype:  "test",
	Filematch: []string{".t"},
	Keywords:  []string{"if", "int|"},
	Scs:       "//",
	Mcs:       "/*",
	Mce:       "*/",
	Flags:     HighlightNumbers | HighlightStrings,
}

// tagString renders tags as one letter per byte for compact comparisons.
func tagString(tags []Tag) string {
	letters := map[Tag]byte{
		TagNormal:    '.',
		TagComment:   'c',
		TagMLComment: 'm',
		TagKeyword1:  'k',
		TagKeyword2:  'K',
		TagString:    's',
		TagNumber:    'n',
		TagMatch:     'x',
	}
	out := make([]byte, len(tags))
	for i, t := range tags {
		out[i] = letters[t]
	}
	return string(out)
}

func TestScan(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		open     bool
		want     string
		wantOpen bool
	}{
		{"type keyword", "int x;", false, "KKK...", false},
		{"keyword needs leading separator", "xint", false, "....", false},
		{"keyword needs trailing separator", "intx", false, "....", false},
		{"keyword at end of row", "x if", false, "..kk", false},
		{"plain keyword", "if(x)", false, "kk...", false},
		{"line comment", "x // if", false, "..ccccc", false},
		{"string", `a "if" b`, false, `..ssss..`, false},
		{"single quote", `'a'`, false, "sss", false},
		{"escaped quote", `"a\"b"`, false, "ssssss", false},
		{"comment marker in string", `"//"x`, false, "ssss.", false},
		{"number", "x = 12.5;", false, "....nnnn.", false},
		{"number glued to word", "x12", false, "...", false},
		{"block comment", "a /* if */ b", false, "..mmmmmmmm..", false},
		{"block comment left open", "a /* if", false, "..mmmmm", true},
		{"continues open comment", "x */ if", true, "mmmm.kk", false},
		{"stays open", "int", true, "mmm", true},
		{"line comment inside block", "// */", true, "mmmmm", false},
		{"empty row keeps open", "", true, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags, open := Scan([]byte(tt.text), testProfile, tt.open)
			if len(tags) != len(tt.text) {
				t.Fatalf("len(tags) = %d, want %d", len(tags), len(tt.text))
			}
			if got := tagString(tags); got != tt.want {
				t.Errorf("Scan(%q) = %s, want %s", tt.text, got, tt.want)
			}
			if open != tt.wantOpen {
				t.Errorf("Scan(%q) open = %v, want %v", tt.text, open, tt.wantOpen)
			}
		})
	}
}

func TestScanKeywordOrder(t *testing.T) {
	p := &Profile{Keywords: []string{"in", "int|"}}
	tags, _ := Scan([]byte("int"), p, false)
	if got := tagString(tags); got != "KKK" {
		t.Errorf("Scan = %s, want KKK", got)
	}
	p = &Profile{Keywords: []string{"in", "i"}}
	tags, _ = Scan([]byte("in i"), p, false)
	if got := tagString(tags); got != "kk.k" {
		t.Errorf("Scan = %s, want kk.k", got)
	}
}

func TestScanNilProfile(t *testing.T) {
	tags, open := Scan([]byte("/* int"), nil, true)
	if got := tagString(tags); got != "......" {
		t.Errorf("Scan = %s, want all normal", got)
	}
	if open {
		t.Errorf("open = true, want false without a profile")
	}
}

func TestScanWithoutBlockComments(t *testing.T) {
	tags, open := Scan([]byte("x"), syntaxLua, true)
	if open || tags[0] != TagNormal {
		t.Errorf("Scan with no block markers: open=%v tag=%d, want false and normal", open, tags[0])
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"main.c", "c"},
		{"dir/x.h", "c++"},
		{"a.cpp", "c++"},
		{"script.py", "python"},
		{"app.js", "javascript"},
		{"main.go", "go"},
		{"init.lua", "lua"},
		{"README", ""},
		{"", ""},
		{"c.txt", ""},
		{"src.c/README", ""},
		{"pkg.d/main.go", "go"},
		{"notes.c.txt", ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			p := Lookup(tt.filename)
			got := ""
			if p != nil {
				got = p.Filetype
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestProfilesIsACopy(t *testing.T) {
	ps := Profiles()
	ps[0] = nil
	if Profiles()[0] == nil {
		t.Errorf("modifying Profiles() result changed the registry")
	}
}

func TestColor(t *testing.T) {
	if Color(TagKeyword1) == Color(TagKeyword2) {
		t.Errorf("keyword colors should differ")
	}
	if Color(TagComment) != Color(TagMLComment) {
		t.Errorf("comment colors should match")
	}
	if Color(TagNormal) != 37 {
		t.Errorf("Color(TagNormal) = %d, want 37", Color(TagNormal))
	}
}
