package vm

import (
	"git.sr.ht/~mango/func/ast"
	"git.sr.ht/~mango/func/log"
	"git.sr.ht/~mango/func/object"
)

type flow int

const (
	flowNormal flow = iota
	flowReturn      // A return statement is unwinding to the nearest call
)

// outcome is the result of executing a statement
type outcome struct {
	val  object.Object
	flow flow
}

var nilOutcome = outcome{val: object.Nil{}}

func (vm *Interpreter) execStmt(s ast.Statement) (outcome, error) {
	if log.Enabled() {
		log.Tracef("exec %s at %s", s, s.Pos())
	}

	switch s := s.(type) {
	case *ast.Let:
		var v object.Object = object.Nil{}
		if s.Value != nil {
			var err error
			if v, err = vm.eval(s.Value); err != nil {
				return outcome{}, err
			}
		}
		vm.env.declare(s.Name.Lexeme, v)
		return nilOutcome, nil

	case *ast.Assign:
		v, err := vm.eval(s.Value)
		if err != nil {
			return outcome{}, err
		}
		if !vm.env.assign(s.Name.Lexeme, v) {
			return outcome{}, errNoVariable(s.Name)
		}
		return nilOutcome, nil

	case *ast.Function:
		vm.functions[s.Name.Lexeme] = s
		return nilOutcome, nil

	case *ast.BuiltinCall:
		return nilOutcome, vm.execBuiltin(s)

	case *ast.Return:
		var v object.Object = object.Nil{}
		if s.Value != nil {
			var err error
			if v, err = vm.eval(s.Value); err != nil {
				return outcome{}, err
			}
		}
		return outcome{val: v, flow: flowReturn}, nil

	case *ast.ExprStmt:
		return vm.evalFlow(s.Expr)
	}

	panic("unreachable")
}

// execBlock runs b in a fresh scope whose parent is parent.  Execution stops
// at the first return, which is passed on to the caller.
func (vm *Interpreter) execBlock(b *ast.Block, parent *scope) (outcome, error) {
	saved := vm.env
	vm.env = newScope(parent)
	defer func() { vm.env = saved }()

	res := nilOutcome
	for _, s := range b.Stmts {
		o, err := vm.execStmt(s)
		if err != nil {
			return outcome{}, err
		}
		if res = o; o.flow == flowReturn {
			break
		}
	}
	return res, nil
}

func (vm *Interpreter) execIf(e *ast.If) (outcome, error) {
	c, err := vm.eval(e.Cond)
	if err != nil {
		return outcome{}, err
	}

	switch {
	case object.Truthy(c):
		return vm.execBlock(e.Then, vm.env)
	case e.Else != nil:
		return vm.evalFlow(e.Else)
	}
	return nilOutcome, nil
}

// call invokes a user function.  Arguments are evaluated in the caller's
// scope, the body runs in a scope that only sees globals and parameters.
func (vm *Interpreter) call(c *ast.Call) (object.Object, error) {
	fn, ok := vm.functions[c.Name.Lexeme]
	if !ok {
		return nil, errNoFunction(c.Name)
	}
	if len(c.Args) != len(fn.Params) {
		return nil, errArity(c.Name, len(fn.Params), len(c.Args))
	}

	args := make([]object.Object, len(c.Args))
	for i, a := range c.Args {
		v, err := vm.eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if err := vm.enter(frame{fn.Name.Lexeme, c.Pos()}); err != nil {
		return nil, err
	}
	defer vm.leave()

	if log.Enabled() {
		log.Tracef("call %s%v depth %d", vm.frames.Peek().name, args, vm.frames.Len())
	}

	params := newScope(vm.globals)
	for i, p := range fn.Params {
		params.declare(p.Lexeme, args[i])
	}

	saved := vm.env
	vm.env = params
	defer func() { vm.env = saved }()

	o, err := vm.execBlock(fn.Body, params)
	if err != nil {
		return nil, err
	}
	return o.val, nil
}
