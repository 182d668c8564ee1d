package vm

import (
	"io"
	"os"
)

// DefaultMaxDepth bounds the nesting of calls and blocks when Options leaves
// MaxDepth unset.
const DefaultMaxDepth = 10000

type Options struct {
	Stdin    io.Reader // Source for ‘read’; defaults to os.Stdin
	Stdout   io.Writer // Sink for ‘write’; defaults to os.Stdout
	MaxDepth int       // Maximum number of nested calls and blocks
}

func (o *Options) normalize() {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
}
