package tilted

import (
	"math"
	"math/big"
	"strconv"
)

// Number is the numeric value produced by evaluating an expression. It is
// either an exact 128-bit two's-complement integer or a float64. The zero
// Number is the integer 0.
//
// Every operation on Numbers is total. Integer results wrap at 128 bits, any
// float operand promotes the whole operation to float, and division by zero
// of either kind yields NaN instead of an error.
type Number struct {
	kind numKind
	i    *big.Int
	f    float64
}

type numKind int8

const (
	numInt numKind = iota
	numFlt
)

// epsilon is the tolerance for float comparisons: machine epsilon scaled by
// 1000, enough to absorb rounding from trig functions and int/float mixing.
const epsilon = 0x1p-52 * 1e3

// Integer wraparound bounds. intMod is 2^128, intMask is 2^128 - 1.
var (
	intMod  = new(big.Int).Lsh(big.NewInt(1), 128)
	intMask = new(big.Int).Sub(intMod, big.NewInt(1))
	intMin  = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	intMax  = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

// wrap reduces x into [-2^127, 2^127) with two's-complement semantics and
// returns it. wrap modifies x.
func wrap(x *big.Int) *big.Int {
	if x.Cmp(intMin) >= 0 && x.Cmp(intMax) <= 0 {
		return x
	}
	// big.Int bitwise ops use two's-complement semantics for negatives, so
	// masking gives x mod 2^128 directly.
	x.And(x, intMask)
	if x.Bit(127) == 1 {
		x.Sub(x, intMod)
	}
	return x
}

// NewInt creates an integer Number. Narrower signed widths convert through
// int64.
func NewInt(x int64) Number {
	return Number{kind: numInt, i: big.NewInt(x)}
}

// NewUint creates an integer Number from an unsigned value. Narrower unsigned
// widths convert through uint64.
func NewUint(x uint64) Number {
	return Number{kind: numInt, i: new(big.Int).SetUint64(x)}
}

// NewFromBig creates an integer Number from x, wrapped into 128 bits. x is
// copied and may be reused by the caller.
func NewFromBig(x *big.Int) Number {
	return Number{kind: numInt, i: wrap(new(big.Int).Set(x))}
}

// NewFloat creates a float Number. float32 values convert through float64.
func NewFloat(x float64) Number {
	return Number{kind: numFlt, f: x}
}

// IsInt reports whether n is the integer variant.
func (n Number) IsInt() bool {
	return n.kind == numInt
}

// Big returns the value of an integer Number as a new big.Int, or nil for a
// float Number.
func (n Number) Big() *big.Int {
	if n.kind != numInt {
		return nil
	}
	return new(big.Int).Set(n.int())
}

// Float64 returns the value of n as a float64, converting an integer variant.
// Integers beyond float64 range round in the usual IEEE way.
func (n Number) Float64() float64 {
	if n.kind == numFlt {
		return n.f
	}
	f, _ := new(big.Float).SetInt(n.int()).Float64()
	return f
}

// int returns the backing integer, tolerating the zero Number.
func (n Number) int() *big.Int {
	if n.i == nil {
		return big.NewInt(0)
	}
	return n.i
}

// Add returns n + o. Integer addition wraps at 128 bits; any float operand
// gives a float result.
func (n Number) Add(o Number) Number {
	if n.kind == numInt && o.kind == numInt {
		return Number{kind: numInt, i: wrap(new(big.Int).Add(n.int(), o.int()))}
	}
	return NewFloat(n.Float64() + o.Float64())
}

// Sub returns n - o. Integer subtraction wraps at 128 bits; any float operand
// gives a float result.
func (n Number) Sub(o Number) Number {
	if n.kind == numInt && o.kind == numInt {
		return Number{kind: numInt, i: wrap(new(big.Int).Sub(n.int(), o.int()))}
	}
	return NewFloat(n.Float64() - o.Float64())
}

// Mul returns n * o. Integer multiplication wraps at 128 bits; any float
// operand gives a float result.
func (n Number) Mul(o Number) Number {
	if n.kind == numInt && o.kind == numInt {
		return Number{kind: numInt, i: wrap(new(big.Int).Mul(n.int(), o.int()))}
	}
	return NewFloat(n.Float64() * o.Float64())
}

// Div returns n / o. Division by integer 0 or float 0.0 yields NaN whatever
// the dividend. Integer division truncates toward zero; any float operand
// gives a float result.
func (n Number) Div(o Number) Number {
	if o.Equal(NewInt(0)) || o.Equal(NewFloat(0)) {
		return NewFloat(math.NaN())
	}
	if n.kind == numInt && o.kind == numInt {
		return Number{kind: numInt, i: wrap(new(big.Int).Quo(n.int(), o.int()))}
	}
	return NewFloat(n.Float64() / o.Float64())
}

// Neg returns -n, preserving the representation. The most negative integer
// wraps to itself.
func (n Number) Neg() Number {
	if n.kind == numInt {
		return Number{kind: numInt, i: wrap(new(big.Int).Neg(n.int()))}
	}
	return NewFloat(-n.f)
}

// Pow returns n raised to o. An integer base with a non-negative integer
// exponent stays integer, wrapping at 128 bits; an integer base with a
// negative integer exponent, or any float operand, goes through math.Pow.
func (n Number) Pow(o Number) Number {
	if n.kind == numInt && o.kind == numInt {
		if o.int().Sign() >= 0 {
			// Exponentiation modulo 2^128 is exactly two's-complement
			// wraparound, and stays fast for huge exponents.
			r := new(big.Int).And(n.int(), intMask)
			r.Exp(r, o.int(), intMod)
			return Number{kind: numInt, i: wrap(r)}
		}
	}
	return NewFloat(math.Pow(n.Float64(), o.Float64()))
}

// Equal reports whether n and o are equal. Two integers compare exactly; any
// float operand compares in floating point within epsilon. NaN is not equal
// to anything, itself included.
func (n Number) Equal(o Number) bool {
	if n.kind == numInt && o.kind == numInt {
		return n.int().Cmp(o.int()) == 0
	}
	return math.Abs(n.Float64()-o.Float64()) < epsilon
}

// Cmp compares n and o, returning -1, 0, or +1. Two integers compare exactly;
// any float operand compares in floating point, with values within epsilon
// reported as equal. The second result is false when the comparison is
// unordered, which happens only when a NaN is involved.
func (n Number) Cmp(o Number) (int, bool) {
	if n.kind == numInt && o.kind == numInt {
		return n.int().Cmp(o.int()), true
	}
	a, b := n.Float64(), o.Float64()
	if math.IsNaN(a) || math.IsNaN(b) {
		return 0, false
	}
	if math.Abs(a-b) < epsilon {
		return 0, true
	}
	if a < b {
		return -1, true
	}
	return 1, true
}

// String formats n. Integers print as plain decimal; floats use the default
// shortest formatting, printing NaN for the not-a-number sentinel.
func (n Number) String() string {
	if n.kind == numInt {
		return n.int().String()
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}
