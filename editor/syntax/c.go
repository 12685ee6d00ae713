package syntax

var syntaxC = &Profile{
	Filetype:  "c",
	Filematch: []string{".c"},
	Keywords: []string{
		"break", "case", "continue", "do", "default", "else", "enum",
		"extern", "for", "if", "goto", "NULL", "register", "return",
		"static", "sizeof", "struct", "switch", "typedef", "union", "while",

		"auto|", "char|", "const|", "double|", "float|", "int|", "long|",
		"signed|", "short|", "void|", "volatile|", "unsigned|",
	},
	Scs:   "//",
	Mcs:   "/*",
	Mce:   "*/",
	Flags: HighlightNumbers | HighlightStrings,
}

var syntaxCPP = &Profile{
	Filetype:  "c++",
	Filematch: []string{".h", ".cpp", ".hpp", ".cc"},
	Keywords: []string{
		"asm", "break", "case", "catch", "class", "continue", "const_cast",
		"do", "default", "delete", "dynamic_cast", "else", "enum", "extern",
		"explicit", "false", "for", "friend", "if", "goto", "inline",
		"mutable", "namespace", "new", "NULL", "operator", "private",
		"protected", "public", "register", "reinterpret_cast", "return",
		"static", "static_cast", "sizeof", "struct", "switch", "template",
		"this", "throw", "true", "try", "typedef", "typeid", "typename",
		"union", "using", "virtual", "while",

		"auto|", "bool|", "char|", "const|", "double|", "float|", "int|",
		"long|", "signed|", "short|", "void|", "volatile|", "unsigned|",
		"wchar_t|",
	},
	Scs:   "//",
	Mcs:   "/*",
	Mce:   "*/",
	Flags: HighlightNumbers | HighlightStrings,
}
