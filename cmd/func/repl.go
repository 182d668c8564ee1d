package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"

	"git.sr.ht/~mango/func/config"
)

// repl reads one line at a time against a single interpreter.  A failing
// line is reported and leaves earlier bindings in place.
func (d *driver) repl(cfg config.Config) int {
	for _, p := range cfg.Preload {
		if err := d.runFile(p); err != nil {
			d.report(err)
		}
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	loadHistory(ln, cfg.History)
	defer func() {
		if err := saveHistory(ln, cfg.History); err != nil {
			d.report(err)
		}
	}()

	for {
		line, err := ln.Prompt(cfg.Prompt)
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(d.stderr, "^D")
			return 0
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case err != nil:
			d.report(errors.Wrap(err, "failed to read line"))
			return 1
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		d.evalLine(line)
	}
}

func (d *driver) evalLine(line string) {
	v, err := d.eval("<repl>", line)
	if err != nil {
		d.report(err)
		return
	}
	d.printValue(v)
}

func loadHistory(ln *liner.State, path string) {
	if path == "" {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	ln.ReadHistory(f)
}

func saveHistory(ln *liner.State, path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create history directory")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create history file ‘%s’", path)
	}
	defer f.Close()

	if _, err := ln.WriteHistory(f); err != nil {
		return errors.Wrapf(err, "failed to write history file ‘%s’", path)
	}
	return nil
}
