// Package ast defines the syntax tree produced by the parser.  Every node
// renders itself in a fully parenthesised canonical form through String.
package ast

import (
	"strings"

	"git.sr.ht/~mango/func/token"
)

// Node is anything that can appear in a program
type Node interface {
	Pos() token.Position
	String() string
}

type Statement interface {
	Node
	isStatement()
}

type Expr interface {
	Node
	isExpr()
}

// Program is a complete script
type Program []Statement

func (p Program) String() string {
	sb := strings.Builder{}
	for i, s := range p {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(s.String())
	}
	return sb.String()
}

func join[T Node](xs []T, sep string) string {
	ss := make([]string, len(xs))
	for i, x := range xs {
		ss[i] = x.String()
	}
	return strings.Join(ss, sep)
}
