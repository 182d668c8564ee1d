package object

import "fmt"

// ErrUnsupported is returned when an operation is applied to a value that
// lacks the capability, e.g. pushing onto a number.
type ErrUnsupported struct {
	Recv Kind   // Kind of the receiver
	Op   string // Attempted operation
}

func (e ErrUnsupported) Error() string {
	return fmt.Sprintf("Type mismatch, `%s` doesn't support `%s`", e.Recv, e.Op)
}

// Truthy maps any value to a boolean for use in conditions.  Only false and
// nil are falsy.
func Truthy(o Object) bool {
	switch o := o.(type) {
	case Boolean:
		return bool(o)
	case Nil:
		return false
	}
	return true
}

// Push returns a new array holding the elements of recv followed by x.
func Push(recv, x Object) (Object, error) {
	xs, ok := recv.(Array)
	if !ok {
		return nil, ErrUnsupported{recv.Kind(), "push"}
	}

	ys := make(Array, len(xs), len(xs)+1)
	copy(ys, xs)
	return append(ys, x), nil
}

// Pop returns a new array holding all but the last element of recv.  Popping
// an empty array yields an empty array.
func Pop(recv Object) (Object, error) {
	xs, ok := recv.(Array)
	if !ok {
		return nil, ErrUnsupported{recv.Kind(), "pop"}
	}

	if len(xs) == 0 {
		return Array{}, nil
	}
	ys := make(Array, len(xs)-1)
	copy(ys, xs)
	return ys, nil
}

// Equal reports structural equality.  Values of different kinds are never
// equal.
func Equal(a, b Object) bool {
	switch a := a.(type) {
	case Number:
		b, ok := b.(Number)
		return ok && a == b
	case String:
		b, ok := b.(String)
		return ok && a == b
	case Boolean:
		b, ok := b.(Boolean)
		return ok && a == b
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Array:
		b, ok := b.(Array)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !Equal(a[i], b[i]) {
				return false
			}
		}
		return true
	}
	return false
}
