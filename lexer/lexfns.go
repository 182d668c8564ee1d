package lexer

import (
	"errors"
	"strconv"
	"strings"

	"git.sr.ht/~mango/func/object"
	"git.sr.ht/~mango/func/token"
)

var escapes = map[rune]rune{
	'\\': '\\',
	'"':  '"',
	'0':  '\000',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// Operators that may be followed by ‘=’ to form a two-character operator
var withEq = map[rune][2]token.Kind{
	'=': {token.Assign, token.Eq},
	'!': {token.Bang, token.NotEq},
	'>': {token.Greater, token.GreaterEq},
	'<': {token.Less, token.LessEq},
}

var single = map[rune]token.Kind{
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'%': token.Percent,
	'(': token.ParenOpen,
	')': token.ParenClose,
	'{': token.BraceOpen,
	'}': token.BraceClose,
	'[': token.BracketOpen,
	']': token.BracketClose,
	',': token.Comma,
	';': token.Semicolon,
}

type lexFn func(*Lexer) lexFn

func lexDefault(l *Lexer) lexFn {
	for {
		l.start = l.pos
		switch r := l.next(); {
		case r == eof:
			l.emit(token.EOF)
			return nil
		case r == '\n':
			l.row++
		case isSpace(r):
		case r == '/' && l.peek() == '/':
			return lexComment
		case r == '"':
			return lexString
		case isDigit(r):
			return lexNumber
		case isIdentStart(r):
			return lexIdent
		case r == '&':
			if !l.accept('&') {
				return l.errorf("Unexpected character `&`")
			}
			l.emit(token.And)
		case r == '|':
			if !l.accept('|') {
				return l.errorf("Unexpected character `|`")
			}
			l.emit(token.Or)
		default:
			if ks, ok := withEq[r]; ok {
				if l.accept('=') {
					l.emit(ks[1])
				} else {
					l.emit(ks[0])
				}
			} else if k, ok := single[r]; ok {
				l.emit(k)
			} else {
				return l.errorf("Unexpected character `%c`", r)
			}
		}
	}
}

// lexComment skips to the end of the line.  The newline itself is left for
// lexDefault so that the row is counted.
func lexComment(l *Lexer) lexFn {
	for r := l.next(); r != '\n' && r != eof; r = l.next() {
	}
	l.backup()
	return lexDefault
}

func lexNumber(l *Lexer) lexFn {
	l.acceptRun(isDigit)
	if l.accept('.') {
		l.acceptRun(isDigit)
	}

	s := l.input[l.start:l.pos]
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return l.errorf("Invalid number `%s`", s)
	}
	l.emitLiteral(token.Number, object.Number(f))
	return lexDefault
}

func lexIdent(l *Lexer) lexFn {
	l.acceptRun(isIdentRune)

	switch k := token.Lookup(l.input[l.start:l.pos]); k {
	case token.True:
		l.emitLiteral(k, object.Boolean(true))
	case token.False:
		l.emitLiteral(k, object.Boolean(false))
	case token.Nil:
		l.emitLiteral(k, object.Nil{})
	default:
		l.emit(k)
	}
	return lexDefault
}

func lexString(l *Lexer) lexFn {
	sb := strings.Builder{}

	for {
		switch r := l.next(); r {
		case eof, '\n':
			l.backup()
			return l.errorf("Unterminated string")
		case '\\':
			e := l.next()
			if e == eof || e == '\n' {
				l.backup()
				return l.errorf("Unterminated string")
			}
			x, ok := escapes[e]
			if !ok {
				return l.errorf("Invalid escape sequence `\\%c`", e)
			}
			sb.WriteRune(x)
		case '"':
			l.emitLiteral(token.String, object.String(sb.String()))
			return lexDefault
		default:
			sb.WriteRune(r)
		}
	}
}
