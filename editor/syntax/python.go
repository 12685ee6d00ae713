package syntax

var syntaxPython = &Profile{
	Filetype:  "python",
	Filematch: []string{".py"},
	Keywords: []string{
		"False", "None", "True", "and", "as", "assert", "async", "await",
		"break", "class", "continue", "def", "del", "elif", "else", "except",
		"finally", "for", "from", "global", "if", "import", "in", "is",
		"lambda", "nonlocal", "not", "or", "pass", "raise", "return", "try",
		"while", "with", "yield",

		"str|", "int|", "float|", "complex|", "list|", "tuple|", "range|",
		"dict|", "set|", "frozenset|", "bool|", "bytes|", "bytearray|",
		"memoryview|",
	},
	Scs:   "#",
	Mcs:   "'''",
	Mce:   "'''",
	Flags: HighlightNumbers | HighlightStrings,
}
