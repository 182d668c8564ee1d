package parser

import (
	"git.sr.ht/~mango/func/ast"
	"git.sr.ht/~mango/func/token"
)

// Binary operators by precedence level, lowest first.  Each level folds to
// the left over the level after it.
var levels = [][]token.Kind{
	{token.And},
	{token.Or},
	{token.Eq, token.NotEq},
	{token.Greater, token.GreaterEq, token.Less, token.LessEq},
	{token.Plus, token.Minus},
	{token.Star, token.Slash, token.Percent},
}

var builtins = map[token.Kind]ast.BuiltinKind{
	token.Read:  ast.BuiltinRead,
	token.Write: ast.BuiltinWrite,
	token.Push:  ast.BuiltinPush,
	token.Pop:   ast.BuiltinPop,
}

func (p *Parser) parseProgram() ast.Program {
	prog := ast.Program{}

	for {
		switch p.peek().Kind {
		case token.Semicolon:
			p.next()
		case token.EOF:
			return prog
		default:
			prog = append(prog, p.parseStatement())
		}
	}
}

func (p *Parser) parseStatement() ast.Statement {
	switch t := p.peek(); t.Kind {
	case token.Func:
		return p.parseFunction()
	case token.Let:
		return p.parseLet()
	case token.Return:
		return p.parseReturn()
	case token.Read, token.Write, token.Push, token.Pop:
		return p.parseBuiltin()
	case token.Ident:
		if p.peekNext().Kind == token.Assign {
			p.next()
			p.next() // Consume ‘=’
			return &ast.Assign{Name: t, Value: p.parseExpr()}
		}
	}

	return &ast.ExprStmt{Expr: p.parseExpr()}
}

func (p *Parser) parseFunction() *ast.Function {
	p.expect(token.Func)
	fn := &ast.Function{Name: p.expect(token.Ident)}

	p.expect(token.ParenOpen)
	if _, ok := p.match(token.ParenClose); !ok {
		for {
			fn.Params = append(fn.Params, p.expect(token.Ident))
			if _, ok := p.match(token.Comma); !ok {
				break
			}
		}
		p.expect(token.ParenClose)
	}

	fn.Body = p.parseBlock()
	return fn
}

func (p *Parser) parseLet() *ast.Let {
	s := &ast.Let{
		Keyword: p.expect(token.Let),
		Name:    p.expect(token.Ident),
	}
	if _, ok := p.match(token.Assign); ok {
		s.Value = p.parseExpr()
	}
	return s
}

func (p *Parser) parseReturn() *ast.Return {
	s := &ast.Return{Keyword: p.expect(token.Return)}
	switch p.peek().Kind {
	case token.BraceClose, token.Semicolon, token.EOF:
	default:
		s.Value = p.parseExpr()
	}
	return s
}

func (p *Parser) parseBuiltin() *ast.BuiltinCall {
	kw := p.next()
	s := &ast.BuiltinCall{Kind: builtins[kw.Kind], Keyword: kw}

	p.expect(token.ParenOpen)
	switch s.Kind {
	case ast.BuiltinRead, ast.BuiltinPop:
		s.Args = []ast.Expr{p.parseIdent()}
	case ast.BuiltinPush:
		s.Args = []ast.Expr{p.parseExpr()}
		p.expect(token.Comma)
		s.Args = append(s.Args, p.parseIdent())
	case ast.BuiltinWrite:
		s.Args = p.parseExprList()
	}
	p.expect(token.ParenClose)

	return s
}

// parseExprList parses one or more comma separated expressions.
func (p *Parser) parseExprList() []ast.Expr {
	xs := []ast.Expr{p.parseExpr()}
	for {
		if _, ok := p.match(token.Comma); !ok {
			return xs
		}
		xs = append(xs, p.parseExpr())
	}
}

func (p *Parser) parseIdent() *ast.Ident {
	return &ast.Ident{Name: p.expect(token.Ident)}
}

// parseExpr parses a full expression.  Blocks and ifs are primaries, so they
// may be operands: ‘if c { 1 } else { 2 } + 1’ adds to the chosen branch.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseBinary(0)
}

func (p *Parser) parseBinary(level int) ast.Expr {
	if level == len(levels) {
		return p.parseUnary()
	}

	lhs := p.parseBinary(level + 1)
	for {
		op, ok := p.match(levels[level]...)
		if !ok {
			return lhs
		}
		lhs = &ast.Binary{
			Left:  lhs,
			Op:    op,
			Right: p.parseBinary(level + 1),
		}
	}
}

func (p *Parser) parseUnary() ast.Expr {
	if op, ok := p.match(token.Minus, token.Bang); ok {
		return &ast.Unary{Op: op, Right: p.parsePrimary()}
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() ast.Expr {
	switch t := p.peek(); {
	case t.Kind.IsLiteral():
		p.next()
		return &ast.Literal{Tok: t}
	case t.Kind == token.Ident:
		p.next()
		if _, ok := p.match(token.ParenOpen); !ok {
			return &ast.Ident{Name: t}
		}
		call := &ast.Call{Name: t}
		if _, ok := p.match(token.ParenClose); !ok {
			call.Args = p.parseExprList()
			p.expect(token.ParenClose)
		}
		return call
	case t.Kind == token.BracketOpen:
		return p.parseArray()
	case t.Kind == token.ParenOpen:
		p.next()
		g := &ast.Group{Lparen: t, Inner: p.parseExpr()}
		p.expect(token.ParenClose)
		return g
	case t.Kind == token.BraceOpen:
		return p.parseBlock()
	case t.Kind == token.If:
		return p.parseIf()
	default:
		die(errUnexpected(t))
	}
	panic("unreachable")
}

func (p *Parser) parseArray() *ast.Array {
	a := &ast.Array{Lbrack: p.expect(token.BracketOpen)}
	if _, ok := p.match(token.BracketClose); ok {
		return a
	}

	for {
		t := p.next()
		if !t.Kind.IsLiteral() {
			die(errUnexpected(t))
		}
		a.Elems = append(a.Elems, t)

		if _, ok := p.match(token.Comma); !ok {
			break
		}
	}
	p.expect(token.BracketClose)
	return a
}

func (p *Parser) parseBlock() *ast.Block {
	b := &ast.Block{Lbrace: p.expect(token.BraceOpen)}

	for {
		switch p.peek().Kind {
		case token.Semicolon:
			p.next()
		case token.BraceClose:
			p.next()
			return b
		case token.EOF:
			die(errExpected(token.BraceClose, p.peek()))
		default:
			b.Stmts = append(b.Stmts, p.parseStatement())
		}
	}
}

func (p *Parser) parseIf() *ast.If {
	e := &ast.If{Keyword: p.expect(token.If)}
	e.Cond = p.parseExpr()
	e.Then = p.parseBlock()

	if _, ok := p.match(token.Else); ok {
		if p.peek().Kind == token.If {
			e.Else = p.parseIf()
		} else {
			e.Else = p.parseBlock()
		}
	}
	return e
}
