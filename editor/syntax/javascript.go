package syntax

var syntaxJavaScript = &Profile{
	Filetype:  "javascript",
	Filematch: []string{".js", ".mjs"},
	Keywords: []string{
		"abstract", "arguments", "await", "break", "case", "catch", "class",
		"continue", "debugger", "default", "delete", "do", "else", "enum",
		"eval", "export", "extends", "false", "final", "finally", "for",
		"function", "goto", "if", "implements", "import", "in", "instanceof",
		"interface", "let", "native", "new", "null", "package", "private",
		"protected", "public", "return", "static", "super", "switch",
		"synchronized", "this", "throw", "throws", "transient", "true", "try",
		"typeof", "var", "while", "with", "yield",

		"boolean|", "byte|", "char|", "const|", "double|", "float|", "int|",
		"long|", "short|", "void|", "volatile|",
	},
	Scs:   "//",
	Mcs:   "/*",
	Mce:   "*/",
	Flags: HighlightNumbers | HighlightStrings,
}
