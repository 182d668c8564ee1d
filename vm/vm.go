// Package vm evaluates func programs by walking their syntax tree.
package vm

import (
	"bufio"

	"github.com/pkg/errors"

	"git.sr.ht/~mango/func/ast"
	"git.sr.ht/~mango/func/log"
	"git.sr.ht/~mango/func/object"
	"git.sr.ht/~mango/func/pkg/stack"
	"git.sr.ht/~mango/func/token"
)

// frame records one active function call.  The frame stack bounds recursion
// depth and names the innermost function in traces.
type frame struct {
	name string
	pos  token.Position
}

// Interpreter holds the state of one program run: the global scope, the
// function table and the console.  Bindings persist across calls to
// Interpret, which is what the REPL relies on.  An Interpreter is not safe
// for concurrent use.
type Interpreter struct {
	globals   *scope
	env       *scope
	functions map[string]*ast.Function
	frames    stack.Stack[frame]

	in  *bufio.Reader
	out *bufio.Writer

	opts Options
}

func New(opts *Options) *Interpreter {
	var o Options
	if opts != nil {
		o = *opts
	}
	o.normalize()

	g := newScope(nil)
	return &Interpreter{
		globals:   g,
		env:       g,
		functions: make(map[string]*ast.Function, 16),
		frames:    stack.New[frame](64),
		in:        bufio.NewReader(o.Stdin),
		out:       bufio.NewWriter(o.Stdout),
		opts:      o,
	}
}

// Interpret runs prog to completion or until the first error.  Output
// written before the error is kept.
func (vm *Interpreter) Interpret(prog ast.Program) error {
	_, err := vm.Eval(prog)
	return err
}

// Eval is like Interpret but also returns the value of the last statement.
// A top-level return ends nothing; its value is simply the statement value.
func (vm *Interpreter) Eval(prog ast.Program) (object.Object, error) {
	var v object.Object = object.Nil{}

	for _, s := range prog {
		o, err := vm.execStmt(s)
		if err != nil {
			vm.reset()
			return nil, err
		}
		v = o.val
	}

	if err := vm.out.Flush(); err != nil {
		return nil, errors.Wrap(err, "failed to flush output")
	}
	return v, nil
}

// Lookup returns the global binding of name.
func (vm *Interpreter) Lookup(name string) (object.Object, bool) {
	return vm.globals.get(name)
}

// reset returns to the global scope after an aborted run so that a later
// Eval starts from the committed bindings.
func (vm *Interpreter) reset() {
	vm.env = vm.globals
	for vm.frames.Pop() != nil {
	}
	vm.out.Flush()
}

func (vm *Interpreter) enter(f frame) error {
	if vm.frames.Len() >= vm.opts.MaxDepth {
		if top := vm.frames.Peek(); top != nil && log.Enabled() {
			log.Tracef("depth limit hit calling %s from %s (%s)", f.name, top.name, top.pos)
		}
		return errDepth(f.pos, vm.opts.MaxDepth)
	}
	vm.frames.Push(f)
	return nil
}

func (vm *Interpreter) leave() {
	vm.frames.Pop()
}
