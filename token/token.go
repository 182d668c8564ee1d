package token

import (
	"fmt"

	"git.sr.ht/~mango/func/object"
)

type Kind int

const (
	// EOF is the sentinel appended to every token stream
	EOF Kind = iota

	Ident  // An identifier
	Number // A numeric literal, integer or with one fractional part
	String // A double-quoted string

	Let
	Func
	If
	Else
	True
	False
	Nil
	Return
	Read
	Write
	Push
	Pop

	Plus    // The ‘+’ operator
	Minus   // The ‘-’ operator
	Star    // The ‘*’ operator
	Slash   // The ‘/’ operator
	Percent // The ‘%’ operator
	Bang    // The ‘!’ operator
	Assign  // The ‘=’ operator

	Eq        // The ‘==’ operator
	NotEq     // The ‘!=’ operator
	Greater   // The ‘>’ operator
	GreaterEq // The ‘>=’ operator
	Less      // The ‘<’ operator
	LessEq    // The ‘<=’ operator
	And       // The ‘&&’ operator
	Or        // The ‘||’ operator

	ParenOpen
	ParenClose
	BraceOpen
	BraceClose
	BracketOpen
	BracketClose
	Comma
	Semicolon
)

var keywords = map[string]Kind{
	"let":    Let,
	"func":   Func,
	"if":     If,
	"else":   Else,
	"true":   True,
	"false":  False,
	"nil":    Nil,
	"return": Return,
	"read":   Read,
	"write":  Write,
	"push":   Push,
	"pop":    Pop,
}

// Lookup returns the keyword kind of ident, or Ident if it is not a keyword.
func Lookup(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return Ident
}

// IsLiteral reports whether tokens of kind k carry a literal value.
func (k Kind) IsLiteral() bool {
	return k == Number ||
		k == String ||
		k == True ||
		k == False ||
		k == Nil
}

// IsBuiltin reports whether k names one of the console builtins.
func (k Kind) IsBuiltin() bool {
	return k == Read ||
		k == Write ||
		k == Push ||
		k == Pop
}

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"

	case Ident:
		return "identifier"
	case Number:
		return "number"
	case String:
		return "string"

	case Let:
		return "let"
	case Func:
		return "func"
	case If:
		return "if"
	case Else:
		return "else"
	case True:
		return "true"
	case False:
		return "false"
	case Nil:
		return "nil"
	case Return:
		return "return"
	case Read:
		return "read"
	case Write:
		return "write"
	case Push:
		return "push"
	case Pop:
		return "pop"

	case Plus:
		return "+"
	case Minus:
		return "-"
	case Star:
		return "*"
	case Slash:
		return "/"
	case Percent:
		return "%"
	case Bang:
		return "!"
	case Assign:
		return "="

	case Eq:
		return "=="
	case NotEq:
		return "!="
	case Greater:
		return ">"
	case GreaterEq:
		return ">="
	case Less:
		return "<"
	case LessEq:
		return "<="
	case And:
		return "&&"
	case Or:
		return "||"

	case ParenOpen:
		return "("
	case ParenClose:
		return ")"
	case BraceOpen:
		return "{"
	case BraceClose:
		return "}"
	case BracketOpen:
		return "["
	case BracketClose:
		return "]"
	case Comma:
		return ","
	case Semicolon:
		return ";"
	}

	panic("unreachable")
}

// Token is a single lexical unit.  Literal is only set for numbers, strings,
// booleans and nil.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal object.Object
	Pos     Position
}

// Maximum length of a lexeme before truncation in diagnostics
const maxStrLen = 20

func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "EOF"
	case Ident, Number, String:
		if len(t.Lexeme) > maxStrLen {
			return fmt.Sprintf("%.*s…", maxStrLen, t.Lexeme)
		}
		return t.Lexeme
	}
	return t.Kind.String()
}
