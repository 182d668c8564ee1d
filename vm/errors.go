package vm

import "git.sr.ht/~mango/func/token"

func runtimeErrorf(pos token.Position, format string, args ...any) error {
	return token.Errorf(token.ErrRuntime, pos, format, args...)
}

func errNoVariable(name token.Token) error {
	return runtimeErrorf(name.Pos, "Variable `%s` doesn't exist.", name.Lexeme)
}

func errNoFunction(name token.Token) error {
	return runtimeErrorf(name.Pos, "Function `%s` doesn't exist.", name.Lexeme)
}

func errArity(name token.Token, want, got int) error {
	return runtimeErrorf(name.Pos, "Function `%s` expects %d arguments, got %d.",
		name.Lexeme, want, got)
}

func errDepth(pos token.Position, limit int) error {
	return runtimeErrorf(pos, "Maximum recursion depth of %d exceeded", limit)
}
