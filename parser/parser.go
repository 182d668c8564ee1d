// Package parser builds an AST from a token stream by recursive descent.
package parser

import (
	"git.sr.ht/~mango/func/ast"
	"git.sr.ht/~mango/func/token"
)

type Parser struct {
	toks []token.Token
	pos  int
}

func New(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

// Parse consumes the whole token stream.  On failure no partial program is
// returned.
func (p *Parser) Parse() (prog ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(parseError)
			if !ok {
				panic(r)
			}
			prog, err = nil, pe.err
		}
	}()

	return p.parseProgram(), nil
}

// eofAt returns the EOF token reported once the stream is exhausted.  Well
// formed streams already end in EOF; this only guards hand-built ones.
func (p *Parser) eofAt() token.Token {
	t := token.Token{Kind: token.EOF}
	if n := len(p.toks); n > 0 {
		t.Pos = p.toks[n-1].Pos
	}
	return t
}

func (p *Parser) peek() token.Token {
	if p.pos >= len(p.toks) {
		return p.eofAt()
	}
	return p.toks[p.pos]
}

func (p *Parser) peekNext() token.Token {
	if p.pos+1 >= len(p.toks) {
		return p.eofAt()
	}
	return p.toks[p.pos+1]
}

func (p *Parser) next() token.Token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

// match consumes the next token if it is of any of the given kinds.
func (p *Parser) match(ks ...token.Kind) (token.Token, bool) {
	t := p.peek()
	for _, k := range ks {
		if t.Kind == k {
			p.next()
			return t, true
		}
	}
	return t, false
}

func (p *Parser) expect(k token.Kind) token.Token {
	t, ok := p.match(k)
	if !ok {
		die(errExpected(k, t))
	}
	return t
}
