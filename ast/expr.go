package ast

import (
	"fmt"
	"strings"

	"git.sr.ht/~mango/func/token"
)

// Block is a brace-delimited list of statements.  Its value is that of the
// last statement, or nil when empty.
type Block struct {
	Lbrace token.Token
	Stmts  []Statement
}

// If is a conditional expression.  Else is nil, an *If or a *Block.
type If struct {
	Keyword token.Token
	Cond    Expr
	Then    *Block
	Else    Expr
}

type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

type Unary struct {
	Op    token.Token
	Right Expr
}

type Group struct {
	Lparen token.Token
	Inner  Expr
}

type Call struct {
	Name token.Token
	Args []Expr
}

type Ident struct {
	Name token.Token
}

// Literal is a number, string, boolean or nil.  The value is carried by the
// token.
type Literal struct {
	Tok token.Token
}

// Array is an array literal.  Elements are restricted to literal tokens.
type Array struct {
	Lbrack token.Token
	Elems  []token.Token
}

func (e *Block) Pos() token.Position   { return e.Lbrace.Pos }
func (e *If) Pos() token.Position      { return e.Keyword.Pos }
func (e *Binary) Pos() token.Position  { return e.Op.Pos }
func (e *Unary) Pos() token.Position   { return e.Op.Pos }
func (e *Group) Pos() token.Position   { return e.Lparen.Pos }
func (e *Call) Pos() token.Position    { return e.Name.Pos }
func (e *Ident) Pos() token.Position   { return e.Name.Pos }
func (e *Literal) Pos() token.Position { return e.Tok.Pos }
func (e *Array) Pos() token.Position   { return e.Lbrack.Pos }

func (e *Block) String() string {
	if len(e.Stmts) == 0 {
		return "{}"
	}
	return "{ " + join(e.Stmts, "; ") + " }"
}

func (e *If) String() string {
	s := fmt.Sprintf("if %s %s", e.Cond, e.Then)
	if e.Else != nil {
		s += " else " + e.Else.String()
	}
	return s
}

func (e *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Op.Kind, e.Right)
}

func (e *Unary) String() string {
	return fmt.Sprintf("(%s%s)", e.Op.Kind, e.Right)
}

// String does not add parentheses around a form that already renders its
// own.
func (e *Group) String() string {
	switch e.Inner.(type) {
	case *Binary, *Unary:
		return e.Inner.String()
	}
	return "(" + e.Inner.String() + ")"
}

func (e *Call) String() string {
	return fmt.Sprintf("%s(%s)", e.Name.Lexeme, join(e.Args, ", "))
}

func (e *Ident) String() string {
	return e.Name.Lexeme
}

func (e *Literal) String() string {
	return e.Tok.Lexeme
}

func (e *Array) String() string {
	ss := make([]string, len(e.Elems))
	for i, t := range e.Elems {
		ss[i] = t.Lexeme
	}
	return "[" + strings.Join(ss, ", ") + "]"
}

func (_ *Block) isExpr()   {}
func (_ *If) isExpr()      {}
func (_ *Binary) isExpr()  {}
func (_ *Unary) isExpr()   {}
func (_ *Group) isExpr()   {}
func (_ *Call) isExpr()    {}
func (_ *Ident) isExpr()   {}
func (_ *Literal) isExpr() {}
func (_ *Array) isExpr()   {}
