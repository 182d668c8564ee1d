package parser

import "git.sr.ht/~mango/func/token"

// parseError is raised with panic inside the parser and recovered by Parse.
type parseError struct {
	err *token.Error
}

func errExpected(want token.Kind, got token.Token) parseError {
	return parseError{token.Errorf(token.ErrParse, got.Pos,
		"Expected `%s`, found `%s`", want, got.Kind)}
}

func errUnexpected(got token.Token) parseError {
	return parseError{token.Errorf(token.ErrParse, got.Pos,
		"Unexpected token `%s`", got.Kind)}
}

func die(e parseError) {
	panic(e)
}
