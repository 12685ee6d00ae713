package syntax

// Lua block comments start with the line comment marker, so only the
// line form is recognized.
var syntaxLua = &Profile{
	Filetype:  "lua",
	Filematch: []string{".lua"},
	Keywords: []string{
		"end", "in", "repeat", "break", "local", "return", "do", "for",
		"then", "else", "function", "elseif", "if", "until", "while",

		"and|", "false|", "nil|", "not|", "true|", "or|",
	},
	Scs:   "--",
	Flags: HighlightNumbers | HighlightStrings,
}
