// Package lexer turns func source text into a stream of tokens.
package lexer

import (
	"unicode/utf8"

	"git.sr.ht/~mango/func/object"
	"git.sr.ht/~mango/func/token"
)

const eof rune = -1

type Lexer struct {
	path  string        // Source path reported in positions
	input string        // The input string to lex
	start int           // The start of the current token in input
	pos   int           // The pos of the cursor in input
	width int           // Width of the last rune lexed
	row   int           // Current 1-based row
	toks  []token.Token // Tokens emitted so far
	err   error         // First lexing error, if any
}

func New(path, input string) *Lexer {
	return &Lexer{
		path:  path,
		input: input,
		row:   1,
	}
}

// Lex scans the whole input.  The returned slice always ends with an EOF
// token.  Scanning stops at the first error.
func (l *Lexer) Lex() ([]token.Token, error) {
	for state := lexDefault; state != nil; {
		state = state(l)
	}
	if l.err != nil {
		return nil, l.err
	}
	return l.toks, nil
}

func (l *Lexer) position() token.Position {
	return token.Position{Path: l.path, Row: l.row}
}

func (l *Lexer) emit(k token.Kind) {
	l.emitLiteral(k, nil)
}

func (l *Lexer) emitLiteral(k token.Kind, lit object.Object) {
	l.toks = append(l.toks, token.Token{
		Kind:    k,
		Lexeme:  l.input[l.start:l.pos],
		Literal: lit,
		Pos:     l.position(),
	})
	l.start = l.pos
}

func (l *Lexer) next() rune {
	var r rune

	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width
	return r
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) backup() {
	l.pos -= l.width
}

// accept consumes the next rune if it is r.
func (l *Lexer) accept(r rune) bool {
	if l.next() == r {
		return true
	}
	l.backup()
	return false
}

func (l *Lexer) acceptRun(f func(rune) bool) int {
	n := 0
	for f(l.next()) {
		n++
	}
	l.backup()
	return n
}

func (l *Lexer) errorf(format string, args ...any) lexFn {
	l.err = token.Errorf(token.ErrLex, l.position(), format, args...)
	return nil
}
