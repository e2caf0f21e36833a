package tilted

import (
	"math"
	"strconv"
)

// Func identifies one of the named unary functions understood by the
// calculator. The set is closed: exactly the six trigonometric functions and
// their inverses.
type Func int8

const (
	FuncNone Func = iota

	FuncSin
	FuncCos
	FuncTan
	FuncSec
	FuncCsc
	FuncCot

	FuncAsin
	FuncAcos
	FuncAtan
	FuncAsec
	FuncAcsc
	FuncAcot
)

var funcNames = map[Func]string{
	FuncSin:  "sin",
	FuncCos:  "cos",
	FuncTan:  "tan",
	FuncSec:  "sec",
	FuncCsc:  "csc",
	FuncCot:  "cot",
	FuncAsin: "asin",
	FuncAcos: "acos",
	FuncAtan: "atan",
	FuncAsec: "asec",
	FuncAcsc: "acsc",
	FuncAcot: "acot",
}

var funcsByName = func() map[string]Func {
	m := make(map[string]Func, len(funcNames))
	for f, name := range funcNames {
		m[name] = f
	}
	return m
}()

// FuncByName resolves a lower-case function name. The second result is false
// if the name is not one of the twelve known functions.
func FuncByName(name string) (Func, bool) {
	f, ok := funcsByName[name]
	return f, ok
}

func (f Func) String() string {
	if s, ok := funcNames[f]; ok {
		return s
	}
	return "Func(" + strconv.Itoa(int(f)) + ")"
}

// eval applies the function to an operand. Integer operands convert to float
// first; the result is always float.
func (f Func) eval(x Number) Number {
	v := x.Float64()
	switch f {
	case FuncSin:
		v = math.Sin(v)
	case FuncCos:
		v = math.Cos(v)
	case FuncTan:
		v = math.Tan(v)
	case FuncSec:
		v = 1 / math.Cos(v)
	case FuncCsc:
		v = 1 / math.Sin(v)
	case FuncCot:
		v = 1 / math.Tan(v)
	case FuncAsin:
		v = math.Asin(v)
	case FuncAcos:
		v = math.Acos(v)
	case FuncAtan:
		v = math.Atan(v)
	case FuncAsec:
		v = math.Acos(1 / v)
	case FuncAcsc:
		v = math.Asin(1 / v)
	case FuncAcot:
		v = math.Atan(1 / v)
	default:
		panic("tilted: invalid function " + f.String())
	}
	return NewFloat(v)
}
