package vm

import (
	"cmp"
	"math"
	"slices"

	"git.sr.ht/~mango/func/ast"
	"git.sr.ht/~mango/func/object"
	"git.sr.ht/~mango/func/token"
)

var arith = map[token.Kind]func(x, y float64) float64{
	token.Plus:    func(x, y float64) float64 { return x + y },
	token.Minus:   func(x, y float64) float64 { return x - y },
	token.Star:    func(x, y float64) float64 { return x * y },
	token.Slash:   func(x, y float64) float64 { return x / y },
	token.Percent: math.Mod,
}

// Operand kinds each operator accepts.  Operators not listed here accept
// anything.
var operands = map[token.Kind][]object.Kind{
	token.Plus:      {object.KindNumber, object.KindString},
	token.Minus:     {object.KindNumber},
	token.Star:      {object.KindNumber},
	token.Slash:     {object.KindNumber},
	token.Percent:   {object.KindNumber},
	token.Greater:   {object.KindNumber, object.KindString},
	token.GreaterEq: {object.KindNumber, object.KindString},
	token.Less:      {object.KindNumber, object.KindString},
	token.LessEq:    {object.KindNumber, object.KindString},
}

// evalFlow evaluates e keeping track of a return that unwinds out of a block
// or conditional.
func (vm *Interpreter) evalFlow(e ast.Expr) (outcome, error) {
	switch e := e.(type) {
	case *ast.Block:
		return vm.execBlock(e, vm.env)
	case *ast.If:
		return vm.execIf(e)
	}

	v, err := vm.eval(e)
	if err != nil {
		return outcome{}, err
	}
	return outcome{val: v}, nil
}

// eval evaluates e for its value.  A return inside a block used as a value
// only ends that block.
func (vm *Interpreter) eval(e ast.Expr) (object.Object, error) {
	switch e := e.(type) {
	case *ast.Block, *ast.If:
		o, err := vm.evalFlow(e)
		if err != nil {
			return nil, err
		}
		return o.val, nil

	case *ast.Literal:
		return e.Tok.Literal, nil

	case *ast.Array:
		xs := make(object.Array, len(e.Elems))
		for i, t := range e.Elems {
			xs[i] = t.Literal
		}
		return xs, nil

	case *ast.Ident:
		v, ok := vm.env.get(e.Name.Lexeme)
		if !ok {
			return nil, errNoVariable(e.Name)
		}
		return v, nil

	case *ast.Group:
		return vm.eval(e.Inner)

	case *ast.Unary:
		return vm.evalUnary(e)

	case *ast.Binary:
		return vm.evalBinary(e)

	case *ast.Call:
		return vm.call(e)
	}

	panic("unreachable")
}

func (vm *Interpreter) evalUnary(e *ast.Unary) (object.Object, error) {
	v, err := vm.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.Bang:
		return object.Boolean(!object.Truthy(v)), nil
	case token.Minus:
		if n, ok := v.(object.Number); ok {
			return -n, nil
		}
		return nil, runtimeErrorf(e.Op.Pos,
			"Type mismatch, `%s` does not support `%s` as it's operand",
			e.Op.Kind, v.Kind())
	}

	panic("unreachable")
}

// evalBinary evaluates both operands before applying the operator, the
// logical operators included.
func (vm *Interpreter) evalBinary(e *ast.Binary) (object.Object, error) {
	l, err := vm.eval(e.Left)
	if err != nil {
		return nil, err
	}
	r, err := vm.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.And:
		return object.Boolean(object.Truthy(l) && object.Truthy(r)), nil
	case token.Or:
		return object.Boolean(object.Truthy(l) || object.Truthy(r)), nil
	case token.Eq:
		return object.Boolean(object.Equal(l, r)), nil
	case token.NotEq:
		return object.Boolean(!object.Equal(l, r)), nil
	}

	switch l := l.(type) {
	case object.Number:
		if r, ok := r.(object.Number); ok {
			if f, ok := arith[e.Op.Kind]; ok {
				return object.Number(f(float64(l), float64(r))), nil
			}
			return object.Boolean(compare(e.Op.Kind, l, r)), nil
		}
	case object.String:
		if r, ok := r.(object.String); ok && supports(e.Op.Kind, object.KindString) {
			if e.Op.Kind == token.Plus {
				return l + r, nil
			}
			return object.Boolean(compare(e.Op.Kind, l, r)), nil
		}
	}

	return nil, typeMismatch(e.Op, l, r)
}

func compare[T cmp.Ordered](k token.Kind, x, y T) bool {
	switch k {
	case token.Greater:
		return x > y
	case token.GreaterEq:
		return x >= y
	case token.Less:
		return x < y
	case token.LessEq:
		return x <= y
	}
	panic("unreachable")
}

func supports(op token.Kind, k object.Kind) bool {
	ks, ok := operands[op]
	return !ok || slices.Contains(ks, k)
}

// typeMismatch names the first operand the operator cannot take at all.  If
// both are acceptable on their own they must differ in kind.
func typeMismatch(op token.Token, l, r object.Object) error {
	for _, v := range [...]object.Object{l, r} {
		if !supports(op.Kind, v.Kind()) {
			return runtimeErrorf(op.Pos,
				"Type mismatch, `%s` doesn't support `%s` as it's operand",
				op.Kind, v.Kind())
		}
	}
	return runtimeErrorf(op.Pos,
		"Type mismatch, `%s` expects same type on both side", op.Kind)
}
