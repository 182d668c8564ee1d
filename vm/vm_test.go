package vm

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~mango/func/ast"
	"git.sr.ht/~mango/func/lexer"
	"git.sr.ht/~mango/func/object"
	"git.sr.ht/~mango/func/parser"
	"git.sr.ht/~mango/func/token"
)

func compile(t *testing.T, src string) ast.Program {
	t.Helper()
	toks, err := lexer.New("test.fn", src).Lex()
	require.NoError(t, err)
	prog, err := parser.New(toks).Parse()
	require.NoError(t, err)
	return prog
}

func newTestVM(stdin string, out *bytes.Buffer) *Interpreter {
	return New(&Options{
		Stdin:  strings.NewReader(stdin),
		Stdout: out,
	})
}

func run(t *testing.T, src, stdin string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newTestVM(stdin, &out).Interpret(compile(t, src))
	return out.String(), err
}

func TestWrite(t *testing.T) {
	tests := []struct {
		src, want string
	}{
		{"write(1 + 2 * 3)", "7"},
		{"write((1 + 2) * 3)", "9"},
		{"write(10 - 2 - 3)", "5"},
		{"write(7 / 2, 7 % 2)", "3.51"},
		{"write(-7 % 3)", "-1"},
		{`write("a" + "b", 1, true, nil)`, "ab1truenil"},
		{`write([1, "a", false, nil])`, `[1, "a", false, nil]`},
		{`write(!nil, !0, !(!""))`, "truefalsetrue"},
		{"write(-(2 + 3))", "-5"},
		{"write(1 == 1, 1 != 1, \"a\" == \"a\", nil == nil)", "truefalsetruetrue"},
		{"write(1 == \"1\", [1] == [1], [1] == [2])", "falsetruefalse"},
		{`write("abc" < "abd", "b" > "abc", "a" <= "a", "" >= "a")`, "truetruetruefalse"},
		{"write(2 > 1, 2 >= 3, 1 < 2, 2 <= 2)", "truefalsetruetrue"},
		{"write(true && nil, 0 || false, false || 1 && 1)", "falsetruetrue"},
		{"write(if 1 > 2 { 1 } else { 2 })", "2"},
		{"write(if false { 1 })", "nil"},
		{"write({ 1; 2 }, {})", "2nil"},
		{"write(if true { 1 } else { 2 } + 1, { 2 } * 3)", "26"},
		{"let x; write(x)", "nil"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			out, err := run(t, tt.src, "")
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestStringComparison(t *testing.T) {
	var out bytes.Buffer
	vm := newTestVM("", &out)
	require.NoError(t, vm.Interpret(compile(t, `let s = "a" < "b"`)))

	v, ok := vm.Lookup("s")
	require.True(t, ok)
	require.Equal(t, object.Boolean(true), v)
}

func TestScoping(t *testing.T) {
	tests := []struct {
		name, src, want string
	}{
		{"shadow vanishes", "let x = 1 { let x = 2 write(x) } write(x)", "21"},
		{"outer assignment persists", "let x = 1 { x = 2 } write(x)", "2"},
		{"nested assignment", "let x = 1 { { { x = x + 1 } } } write(x)", "2"},
		{"function sees globals", "let g = 5 func f() { return g } write(f())", "5"},
		{"function assigns globals", "let g = 5 func f() { g = 6 } f() write(g)", "6"},
		{"params shadow globals", "let a = 1 func f(a) { a = 9 return a } write(f(2), a)", "91"},
		{"let inside if", "let x = 1 if true { let x = 3 } write(x)", "1"},
		{"definition after use site", "func a() { return b() } func b() { return 1 } write(a())", "1"},
		{"redefinition overwrites", "func f() { 1 } func f() { 2 } write(f())", "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.src, "")
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestReturn(t *testing.T) {
	tests := []struct {
		name, src, want string
	}{
		{
			"early return from nested block",
			`func f(x) { if x > 1 { { return "big" } } return "small" } write(f(2), f(0))`,
			"bigsmall",
		},
		{
			"implicit value of body",
			"func f(x) { x * 2 } write(f(4))",
			"8",
		},
		{
			"bare return",
			"func f() { write(1) if true { return } write(2) } write(f())",
			"1nil",
		},
		{
			"return does not leak across calls",
			"func g() { return 1 } func f() { g() return 2 } write(f())",
			"2",
		},
		{
			"top-level return is discarded",
			"return 1 write(2)",
			"2",
		},
		{
			"return in block value",
			"func f() { let x = { return 1 } return x + 1 } write(f())",
			"2",
		},
		{
			"recursion",
			"func fact(n) { if n <= 1 { return 1 } return n * fact(n - 1) } write(fact(10))",
			"3628800",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.src, "")
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestArrays(t *testing.T) {
	out, err := run(t, `
	let a = [1]
	let b = a
	push(2, a)
	write(a, b)
	pop(b) pop(b)
	write(b, a)`, "")
	require.NoError(t, err)
	require.Equal(t, "[1, 2][1][][1, 2]", out)
}

func TestRead(t *testing.T) {
	out, err := run(t, `
	let a = 0 let b = 0 let c = 0
	write("> ")
	read(a) read(b) read(c)
	write(a, "|", b, "|", c, "|")`, "alice\r\nbob")
	require.NoError(t, err)
	require.Equal(t, "> alice|bob||", out)
}

func TestRuntimeErrors(t *testing.T) {
	tests := []struct {
		src, msg string
		row      int
	}{
		{"write(x)", "Variable `x` doesn't exist.", 1},
		{"x = 1", "Variable `x` doesn't exist.", 1},
		{"read(z)", "Variable `z` doesn't exist.", 1},
		{"pop(q)", "Variable `q` doesn't exist.", 1},
		{"f()", "Function `f` doesn't exist.", 1},
		{"func f(a) { a }\nf(1, 2)", "Function `f` expects 1 arguments, got 2.", 2},
		{"1 + true", "Type mismatch, `+` doesn't support `boolean` as it's operand", 1},
		{"nil + 1", "Type mismatch, `+` doesn't support `nil` as it's operand", 1},
		{`1 + "a"`, "Type mismatch, `+` expects same type on both side", 1},
		{`"a" - "b"`, "Type mismatch, `-` doesn't support `string` as it's operand", 1},
		{"true > false", "Type mismatch, `>` doesn't support `boolean` as it's operand", 1},
		{"[1] < [2]", "Type mismatch, `<` doesn't support `array` as it's operand", 1},
		{`1 <= "a"`, "Type mismatch, `<=` expects same type on both side", 1},
		{`-"a"`, "Type mismatch, `-` does not support `string` as it's operand", 1},
		{"let n = 1\npush(2, n)", "Type mismatch, `number` doesn't support `push`", 2},
		{"let n = nil\npop(n)", "Type mismatch, `nil` doesn't support `pop`", 2},
		{"let a = 1\n\nwrite(a + nil)", "Type mismatch, `+` doesn't support `nil` as it's operand", 3},
		{"func f() { return y }\n{ let y = 1; f() }", "Variable `y` doesn't exist.", 1},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := run(t, tt.src, "")
			require.ErrorIs(t, err, token.ErrRuntime)

			var e *token.Error
			require.ErrorAs(t, err, &e)
			require.Equal(t, tt.msg, e.Msg)
			require.Equal(t, tt.row, e.Pos.Row)
		})
	}
}

func TestOutputBeforeError(t *testing.T) {
	out, err := run(t, `write("kept") write(missing)`, "")
	require.Error(t, err)
	require.Equal(t, "kept", out)
}

func TestMaxDepth(t *testing.T) {
	var out bytes.Buffer
	vm := New(&Options{Stdout: &out, MaxDepth: 50})

	err := vm.Interpret(compile(t, "func f(n) { return f(n + 1) }\nf(0)"))
	require.ErrorIs(t, err, token.ErrRuntime)
	require.EqualError(t, err, "RuntimeError: Maximum recursion depth of 50 exceeded in line 1.")

	// The interpreter stays usable afterwards
	require.NoError(t, vm.Interpret(compile(t, "func g(n) { if n > 0 { return g(n - 1) } 0 } g(10)")))
	require.Zero(t, vm.frames.Len())
}

// Only calls count towards the limit, not the blocks inside them.
func TestMaxDepthCountsCalls(t *testing.T) {
	var out bytes.Buffer
	vm := New(&Options{Stdout: &out, MaxDepth: 50})

	src := "func f(n) { if n > 0 { { return f(n - 1) } } 0 }\n"
	require.NoError(t, vm.Interpret(compile(t, src+"write(f(49))")))
	require.Equal(t, "0", out.String())

	err := vm.Interpret(compile(t, src+"f(50)"))
	require.EqualError(t, err, "RuntimeError: Maximum recursion depth of 50 exceeded in line 1.")
}

func TestDeterminism(t *testing.T) {
	prog := compile(t, `
	let xs = [1]
	func fib(n) { if n < 2 { return n } fib(n - 1) + fib(n - 2) }
	push(fib(10), xs)
	write(xs, " ", "b" > "a", "\n")
	pop(xs) push(2, xs)
	xs`)

	var out1, out2 bytes.Buffer
	v1, err := newTestVM("", &out1).Eval(prog)
	require.NoError(t, err)
	v2, err := newTestVM("", &out2).Eval(prog)
	require.NoError(t, err)

	require.Equal(t, "[1, 55] true\n", out1.String())
	require.Equal(t, out1.String(), out2.String())
	require.True(t, object.Equal(v1, v2))
	require.Equal(t, "[1, 2]", v1.String())
}

func TestDefaultOptions(t *testing.T) {
	vm := New(nil)
	require.Equal(t, DefaultMaxDepth, vm.opts.MaxDepth)
	require.NotNil(t, vm.opts.Stdin)
	require.NotNil(t, vm.opts.Stdout)
}

func TestEval(t *testing.T) {
	var out bytes.Buffer
	vm := newTestVM("", &out)

	v, err := vm.Eval(compile(t, "let x = 2"))
	require.NoError(t, err)
	require.Equal(t, object.Nil{}, v)

	v, err = vm.Eval(compile(t, "x * 21"))
	require.NoError(t, err)
	require.Equal(t, object.Number(42), v)

	v, err = vm.Eval(nil)
	require.NoError(t, err)
	require.Equal(t, object.Nil{}, v)
}

// Successive runs share bindings, and a failed run leaves the ones committed
// before it intact.
func TestSession(t *testing.T) {
	var out bytes.Buffer
	vm := newTestVM("", &out)

	require.NoError(t, vm.Interpret(compile(t, "let x = 1 func inc(n) { n + 1 }")))

	_, err := vm.Eval(compile(t, "x = inc(x) { let y = 2; write(y + z) }"))
	require.ErrorIs(t, err, token.ErrRuntime)
	require.Same(t, vm.globals, vm.env)

	v, err := vm.Eval(compile(t, "x"))
	require.NoError(t, err)
	require.Equal(t, object.Number(2), v)

	_, ok := vm.Lookup("y")
	require.False(t, ok)
}

func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.fn")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, f := range files {
		base := strings.TrimSuffix(f, ".fn")
		t.Run(filepath.Base(base), func(t *testing.T) {
			src, err := os.ReadFile(f)
			require.NoError(t, err)
			want, err := os.ReadFile(base + ".out")
			require.NoError(t, err)

			in, err := os.ReadFile(base + ".in")
			if err != nil && !os.IsNotExist(err) {
				t.Fatal(err)
			}

			got, err := run(t, string(src), string(in))
			require.NoError(t, err)
			if diff := cmp.Diff(string(want), got); diff != "" {
				t.Fatalf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
