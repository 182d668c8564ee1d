package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~mango/func/object"
	"git.sr.ht/~mango/func/token"
)

func getTokens(t *testing.T, s string) []token.Token {
	t.Helper()
	toks, err := New("test.fn", s).Lex()
	require.NoError(t, err)
	return toks
}

func getKinds(t *testing.T, s string) []token.Kind {
	t.Helper()
	var ks []token.Kind
	for _, tok := range getTokens(t, s) {
		ks = append(ks, tok.Kind)
	}
	return ks
}

func assertKinds(t *testing.T, want []token.Kind, s string) {
	t.Helper()
	if diff := cmp.Diff(want, getKinds(t, s)); diff != "" {
		t.Fatalf("token kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestEmitTokenKinds(t *testing.T) {
	s := `
	let x = 1 + 2 * 3;
	func f(a, b) { return a % b }
	if x >= 10 && !done || y != nil { write("big") } else { pop(xs) }
	push([1, 2.5, true], ys) read(z)
	a == b <= c < d > e - f / g`

	assertKinds(t, []token.Kind{
		token.Let, token.Ident, token.Assign, token.Number, token.Plus,
		token.Number, token.Star, token.Number, token.Semicolon,

		token.Func, token.Ident, token.ParenOpen, token.Ident, token.Comma,
		token.Ident, token.ParenClose, token.BraceOpen, token.Return,
		token.Ident, token.Percent, token.Ident, token.BraceClose,

		token.If, token.Ident, token.GreaterEq, token.Number, token.And,
		token.Bang, token.Ident, token.Or, token.Ident, token.NotEq,
		token.Nil, token.BraceOpen, token.Write, token.ParenOpen,
		token.String, token.ParenClose, token.BraceClose, token.Else,
		token.BraceOpen, token.Pop, token.ParenOpen, token.Ident,
		token.ParenClose, token.BraceClose,

		token.Push, token.ParenOpen, token.BracketOpen, token.Number,
		token.Comma, token.Number, token.Comma, token.True,
		token.BracketClose, token.Comma, token.Ident, token.ParenClose,
		token.Read, token.ParenOpen, token.Ident, token.ParenClose,

		token.Ident, token.Eq, token.Ident, token.LessEq, token.Ident,
		token.Less, token.Ident, token.Greater, token.Ident, token.Minus,
		token.Ident, token.Slash, token.Ident,

		token.EOF,
	}, s)
}

func TestSkipComment(t *testing.T) {
	s := `
	// This is ignored
	write(1) // So is this
	// And this, at EOF`

	toks := getTokens(t, s)
	assertKinds(t, []token.Kind{
		token.Write, token.ParenOpen, token.Number, token.ParenClose, token.EOF,
	}, s)
	require.Equal(t, 3, toks[0].Pos.Row)
	require.Equal(t, 4, toks[len(toks)-1].Pos.Row)
}

func TestLiterals(t *testing.T) {
	toks := getTokens(t, `12 3.75 "a\tb\"c" true false nil 7.`)

	want := []object.Object{
		object.Number(12),
		object.Number(3.75),
		object.String("a\tb\"c"),
		object.Boolean(true),
		object.Boolean(false),
		object.Nil{},
		object.Number(7),
		nil,
	}
	got := make([]object.Object, 0, len(toks))
	for _, tok := range toks {
		got = append(got, tok.Literal)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("literal mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, `"a\tb\"c"`, toks[2].Lexeme)
}

func TestPositions(t *testing.T) {
	toks := getTokens(t, "let a = 1\n\nlet b = 2\n")

	require.Equal(t, token.Position{Path: "test.fn", Row: 1}, toks[0].Pos)
	require.Equal(t, token.Position{Path: "test.fn", Row: 3}, toks[4].Pos)
	require.Equal(t, 4, toks[len(toks)-1].Pos.Row)
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name, src, msg string
		row            int
	}{
		{"unterminated at eof", "let s = \"abc", "Unterminated string", 1},
		{"unterminated at newline", "\n\nwrite(\"abc\n)", "Unterminated string", 3},
		{"unexpected character", "let a = 1\nlet b = 2 $ 3", "Unexpected character `$`", 2},
		{"lone ampersand", "a & b", "Unexpected character `&`", 1},
		{"lone pipe", "a | b", "Unexpected character `|`", 1},
		{"bad escape", `"\q"`, "Invalid escape sequence `\\q`", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := New("test.fn", tt.src).Lex()
			require.Nil(t, toks)
			require.ErrorIs(t, err, token.ErrLex)

			var e *token.Error
			require.ErrorAs(t, err, &e)
			require.Equal(t, tt.msg, e.Msg)
			require.Equal(t, tt.row, e.Pos.Row)
			require.Equal(t, "test.fn", e.Pos.Path)
		})
	}
}
