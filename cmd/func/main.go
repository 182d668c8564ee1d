package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/davecgh/go-spew/spew"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"git.sr.ht/~mango/func/ast"
	"git.sr.ht/~mango/func/config"
	"git.sr.ht/~mango/func/lexer"
	"git.sr.ht/~mango/func/log"
	"git.sr.ht/~mango/func/object"
	"git.sr.ht/~mango/func/parser"
	"git.sr.ht/~mango/func/token"
	"git.sr.ht/~mango/func/vm"
)

const usage = "Usage: func [-hlav] [-c config] [-d depth] [-e code] [file]"

type flags struct {
	dumpTokens bool
	dumpAST    bool
	verbose    bool
	config     string
	depth      int
	code       *string
}

// driver ties one interpreter to the process’ standard streams
type driver struct {
	flags
	vm             *vm.Interpreter
	stdout, stderr io.Writer
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log.Stderr = stderr

	f, rest, err := parseFlags(args)
	if err != nil {
		log.Err("%s", err)
		fmt.Fprintln(stderr, usage)
		return 1
	}
	if f == nil {
		fmt.Fprintln(stdout, usage)
		return 0
	}

	cfg, err := loadConfig(f.config)
	if err != nil {
		log.Err("%s", err)
		return 1
	}
	if err := log.SetLevel(cfg.LogLevel); err != nil {
		log.Err("%s", err)
		return 1
	}
	if f.verbose {
		log.SetVerbose(true)
	}

	depth := cfg.MaxDepth
	if f.depth > 0 {
		depth = f.depth
	}

	d := &driver{
		flags: *f,
		vm: vm.New(&vm.Options{
			Stdin:    stdin,
			Stdout:   stdout,
			MaxDepth: depth,
		}),
		stdout: stdout,
		stderr: stderr,
	}

	switch {
	case f.code != nil:
		err = d.runCode(*f.code)
	case len(rest) == 1:
		err = d.runFile(rest[0])
	case isTerminal(stdin):
		return d.repl(cfg)
	default:
		err = d.runReader("<stdin>", stdin)
	}

	if err != nil {
		d.report(err)
		return 1
	}
	return 0
}

// parseFlags returns nil flags when usage was requested.
func parseFlags(args []string) (*flags, []string, error) {
	opts, optind, err := getopt.Getopts(args, "hlavc:d:e:")
	if err != nil {
		return nil, nil, err
	}

	f := &flags{}
	for _, opt := range opts {
		switch opt.Option {
		case 'h':
			return nil, nil, nil
		case 'l':
			f.dumpTokens = true
		case 'a':
			f.dumpAST = true
		case 'v':
			f.verbose = true
		case 'c':
			f.config = opt.Value
		case 'd':
			n, err := strconv.Atoi(opt.Value)
			if err != nil || n <= 0 {
				return nil, nil, errors.Errorf("invalid depth ‘%s’", opt.Value)
			}
			f.depth = n
		case 'e':
			s := opt.Value
			f.code = &s
		}
	}

	rest := args[optind:]
	if len(rest) > 1 || len(rest) == 1 && f.code != nil {
		return nil, nil, errors.New("too many arguments")
	}
	return f, rest, nil
}

// loadConfig reads the given file, or the default one if it exists.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(config.Expand(path), false)
	}
	p, err := config.DefaultPath()
	if err != nil {
		return config.Default(), nil
	}
	return config.Load(p, true)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (d *driver) runFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open ‘%s’", path)
	}
	defer f.Close()
	return d.runReader(path, f)
}

func (d *driver) runReader(path string, r io.Reader) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrapf(err, "failed to read ‘%s’", path)
	}
	_, err = d.eval(path, string(src))
	return err
}

// runCode evaluates a -e snippet and prints its value.
func (d *driver) runCode(code string) error {
	v, err := d.eval("-e", code)
	if err == nil {
		d.printValue(v)
	}
	return err
}

// printValue shows the result of an evaluation unless it is nil.
func (d *driver) printValue(v object.Object) {
	if _, ok := v.(object.Nil); v != nil && !ok {
		fmt.Fprintln(d.stdout, v)
	}
}

// eval runs src through the whole pipeline.  With -l or -a the intermediate
// forms are dumped instead and nothing is run.
func (d *driver) eval(path, src string) (object.Object, error) {
	toks, err := lexer.New(path, src).Lex()
	if err != nil {
		return nil, err
	}
	if d.dumpTokens {
		dumpTokens(d.stdout, toks)
	}

	prog, err := parser.New(toks).Parse()
	if err != nil {
		return nil, err
	}
	if d.dumpAST {
		dumpAST(d.stdout, prog)
	}

	if d.dumpTokens || d.dumpAST {
		return nil, nil
	}
	return d.vm.Eval(prog)
}

func (d *driver) report(err error) {
	var e *token.Error
	if errors.As(err, &e) {
		log.Err("%s", e.Report())
	} else {
		log.Err("%s", err)
	}
}

func dumpTokens(w io.Writer, toks []token.Token) {
	for _, t := range toks {
		fmt.Fprintf(w, "%s\t%-10s %s\n", t.Pos, t.Kind, t)
	}
}

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
}

func dumpAST(w io.Writer, prog ast.Program) {
	for _, s := range prog {
		fmt.Fprintf(w, "// %s\n", s)
		spewConfig.Fdump(w, s)
	}
}
