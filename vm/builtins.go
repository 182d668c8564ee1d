package vm

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"git.sr.ht/~mango/func/ast"
	"git.sr.ht/~mango/func/object"
)

func (vm *Interpreter) execBuiltin(s *ast.BuiltinCall) error {
	switch s.Kind {
	case ast.BuiltinRead:
		return vm.builtinRead(s.Args[0].(*ast.Ident))
	case ast.BuiltinWrite:
		return vm.builtinWrite(s.Args)
	case ast.BuiltinPush:
		return vm.builtinPush(s.Args[0], s.Args[1].(*ast.Ident))
	case ast.BuiltinPop:
		return vm.builtinPop(s.Args[0].(*ast.Ident))
	}
	panic("unreachable")
}

// builtinRead stores one line of input in an existing variable.  The line
// terminator is dropped; at end of input the empty string is stored.
func (vm *Interpreter) builtinRead(id *ast.Ident) error {
	if _, ok := vm.env.get(id.Name.Lexeme); !ok {
		return errNoVariable(id.Name)
	}

	// Make sure any prompt is visible before blocking
	if err := vm.out.Flush(); err != nil {
		return errors.Wrap(err, "failed to flush output")
	}

	line, err := vm.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return errors.Wrap(err, "failed to read input")
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	vm.env.assign(id.Name.Lexeme, object.String(line))
	return nil
}

func (vm *Interpreter) builtinWrite(args []ast.Expr) error {
	for _, a := range args {
		v, err := vm.eval(a)
		if err != nil {
			return err
		}
		vm.out.WriteString(v.String())
	}
	return errors.Wrap(vm.out.Flush(), "failed to flush output")
}

func (vm *Interpreter) builtinPush(x ast.Expr, id *ast.Ident) error {
	v, err := vm.eval(x)
	if err != nil {
		return err
	}
	return vm.rebind(id, func(xs object.Object) (object.Object, error) {
		return object.Push(xs, v)
	})
}

func (vm *Interpreter) builtinPop(id *ast.Ident) error {
	return vm.rebind(id, object.Pop)
}

// rebind replaces the array bound to id with the result of f.
func (vm *Interpreter) rebind(id *ast.Ident, f func(object.Object) (object.Object, error)) error {
	cur, ok := vm.env.get(id.Name.Lexeme)
	if !ok {
		return errNoVariable(id.Name)
	}

	v, err := f(cur)
	if err != nil {
		return runtimeErrorf(id.Name.Pos, "%s", err)
	}
	vm.env.assign(id.Name.Lexeme, v)
	return nil
}
