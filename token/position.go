package token

import "fmt"

// Position is a location in a source file.  Only the row is tracked; it is
// 1-based.
type Position struct {
	Path string
	Row  int
}

func (p Position) String() string {
	if p.Path == "" {
		return fmt.Sprintf("line %d", p.Row)
	}
	return fmt.Sprintf("%s:%d", p.Path, p.Row)
}
