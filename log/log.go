// Package log prints driver diagnostics and evaluator traces.  Traces go
// through fortio.org/log and are silent unless verbose logging is enabled.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	flog "fortio.org/log"
	"github.com/pkg/errors"
)

// Stderr is where Err writes.  Tests may replace it.
var Stderr io.Writer = os.Stderr

// Err prints a diagnostic to the standard error according to format.  It also
// prepends the program name and appends a newline, much like the warnx(3)
// function from C.
func Err(format string, args ...any) {
	fmt.Fprintf(Stderr, "func: "+format+"\n", args...)
}

// Tracef logs an evaluation step at verbose level.
func Tracef(format string, args ...any) {
	flog.LogVf(format, args...)
}

// Enabled reports whether Tracef output is currently emitted, so callers can
// skip building expensive arguments.
func Enabled() bool {
	return flog.LogVerbose()
}

func SetVerbose(v bool) {
	if v {
		flog.SetLogLevel(flog.Verbose)
	} else {
		flog.SetLogLevel(flog.Info)
	}
}

// SetLevel sets the trace level by name: debug, verbose, info, warning or
// error.
func SetLevel(name string) error {
	var lvl flog.Level
	switch strings.ToLower(name) {
	case "debug":
		lvl = flog.Debug
	case "verbose":
		lvl = flog.Verbose
	case "", "info":
		lvl = flog.Info
	case "warning", "warn":
		lvl = flog.Warning
	case "error":
		lvl = flog.Error
	default:
		return errors.Errorf("invalid log level ‘%s’", name)
	}
	flog.SetLogLevel(lvl)
	return nil
}
