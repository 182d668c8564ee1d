package lexer

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z' ||
		r == '_'
}

func isIdentRune(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}

func isSpace(r rune) bool {
	return r == ' ' ||
		r == '\t' ||
		r == '\r'
}
