// Package object implements the runtime values of func.  Values are
// immutable from the point of view of the language: operations that change an
// array return a new one.
package object

import (
	"math"
	"strconv"
	"strings"
)

type Object interface {
	Kind() Kind
	String() string
	isObject()
}

type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindBoolean
	KindArray
	KindNil
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindArray:
		return "array"
	case KindNil:
		return "nil"
	}
	panic("unreachable")
}

type (
	Number  float64
	String  string
	Boolean bool
	Array   []Object
	Nil     struct{}
)

func (_ Number) Kind() Kind  { return KindNumber }
func (_ String) Kind() Kind  { return KindString }
func (_ Boolean) Kind() Kind { return KindBoolean }
func (_ Array) Kind() Kind   { return KindArray }
func (_ Nil) Kind() Kind     { return KindNil }

func (_ Number) isObject()  {}
func (_ String) isObject()  {}
func (_ Boolean) isObject() {}
func (_ Array) isObject()   {}
func (_ Nil) isObject()     {}

func (n Number) String() string {
	switch f := float64(n); {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}

func (s String) String() string {
	return string(s)
}

func (b Boolean) String() string {
	return strconv.FormatBool(bool(b))
}

// String renders the elements separated by commas.  String elements are
// quoted so that ["1"] and [1] print differently.
func (a Array) String() string {
	sb := strings.Builder{}
	sb.WriteByte('[')
	for i, x := range a {
		if i > 0 {
			sb.WriteString(", ")
		}
		if s, ok := x.(String); ok {
			sb.WriteString(strconv.Quote(string(s)))
		} else {
			sb.WriteString(x.String())
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

func (_ Nil) String() string {
	return "nil"
}
