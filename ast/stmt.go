package ast

import (
	"fmt"
	"strings"

	"git.sr.ht/~mango/func/token"
)

// Let declares Name in the current scope.  Value is nil for a bare ‘let x’.
type Let struct {
	Keyword token.Token
	Name    token.Token
	Value   Expr
}

// Assign rebinds an existing variable
type Assign struct {
	Name  token.Token
	Value Expr
}

// Function is a named function definition
type Function struct {
	Name   token.Token
	Params []token.Token
	Body   *Block
}

type BuiltinKind int

const (
	BuiltinRead BuiltinKind = iota
	BuiltinWrite
	BuiltinPush
	BuiltinPop
)

func (k BuiltinKind) String() string {
	switch k {
	case BuiltinRead:
		return "read"
	case BuiltinWrite:
		return "write"
	case BuiltinPush:
		return "push"
	case BuiltinPop:
		return "pop"
	}
	panic("unreachable")
}

// BuiltinCall is an invocation of read, write, push or pop.  The shapes are
// fixed by the parser: read and pop take a single Ident, push takes an
// expression followed by an Ident, and write takes one or more expressions.
type BuiltinCall struct {
	Kind    BuiltinKind
	Keyword token.Token
	Args    []Expr
}

type Return struct {
	Keyword token.Token
	Value   Expr // Nil for a bare ‘return’
}

type ExprStmt struct {
	Expr Expr
}

func (s *Let) Pos() token.Position         { return s.Keyword.Pos }
func (s *Assign) Pos() token.Position      { return s.Name.Pos }
func (s *Function) Pos() token.Position    { return s.Name.Pos }
func (s *BuiltinCall) Pos() token.Position { return s.Keyword.Pos }
func (s *Return) Pos() token.Position      { return s.Keyword.Pos }
func (s *ExprStmt) Pos() token.Position    { return s.Expr.Pos() }

func (s *Let) String() string {
	if s.Value == nil {
		return fmt.Sprintf("let %s", s.Name.Lexeme)
	}
	return fmt.Sprintf("let %s = %s", s.Name.Lexeme, s.Value)
}

func (s *Assign) String() string {
	return fmt.Sprintf("%s = %s", s.Name.Lexeme, s.Value)
}

func (s *Function) String() string {
	ps := make([]string, len(s.Params))
	for i, p := range s.Params {
		ps[i] = p.Lexeme
	}
	return fmt.Sprintf("func %s(%s) %s", s.Name.Lexeme, strings.Join(ps, ", "), s.Body)
}

func (s *BuiltinCall) String() string {
	return fmt.Sprintf("%s(%s)", s.Kind, join(s.Args, ", "))
}

func (s *Return) String() string {
	if s.Value == nil {
		return "return"
	}
	return "return " + s.Value.String()
}

func (s *ExprStmt) String() string {
	return s.Expr.String()
}

func (_ *Let) isStatement()         {}
func (_ *Assign) isStatement()      {}
func (_ *Function) isStatement()    {}
func (_ *BuiltinCall) isStatement() {}
func (_ *Return) isStatement()      {}
func (_ *ExprStmt) isStatement()    {}
