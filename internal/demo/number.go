package demo

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ErrNotNumeric is returned when text cannot be read as a number.
var ErrNotNumeric = errors.New("not a number")

// Kind reports whether a Number holds an integer or a float.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
)

// String returns the string representation of a kind
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Number is an arbitrary-precision integer or a float64.
// The zero value is the integer 0.
type Number struct {
	kind Kind
	i    *big.Int // nil means 0
	f    float64
}

// Int wraps an integer.
func Int(v int64) Number {
	return Number{kind: KindInt, i: big.NewInt(v)}
}

// BigInt wraps a copy of v.
func BigInt(v *big.Int) Number {
	return Number{kind: KindInt, i: new(big.Int).Set(v)}
}

// Float wraps a float.
func Float(v float64) Number {
	return Number{kind: KindFloat, f: v}
}

// Kind returns the kind of n.
func (n Number) Kind() Kind {
	return n.kind
}

// IsFloat reports whether n is a float.
func (n Number) IsFloat() bool {
	return n.kind == KindFloat
}

// BigInt returns n as a new big.Int, truncating floats toward zero.
// NaN and infinities yield 0.
func (n Number) BigInt() *big.Int {
	if n.kind == KindFloat {
		if math.IsNaN(n.f) || math.IsInf(n.f, 0) {
			return new(big.Int)
		}
		i, _ := big.NewFloat(n.f).Int(nil)
		return i
	}
	return new(big.Int).Set(n.int())
}

// Float64 returns n as a float. Integers too large for a float64 become ±Inf.
func (n Number) Float64() float64 {
	if n.kind == KindFloat {
		return n.f
	}
	f, _ := new(big.Float).SetInt(n.int()).Float64()
	return f
}

// Equal reports whether n and m have the same kind and value.
// NaN is not equal to anything.
func (n Number) Equal(m Number) bool {
	if n.kind != m.kind {
		return false
	}
	if n.kind == KindFloat {
		return n.f == m.f
	}
	return n.int().Cmp(m.int()) == 0
}

func (n Number) int() *big.Int {
	if n.i == nil {
		return new(big.Int)
	}
	return n.i
}

// String formats n the way Python's repr does: integers in full, floats in
// positional notation with at least one fractional digit when
// 1e-4 <= |x| < 1e16, exponent notation otherwise.
func (n Number) String() string {
	if n.kind == KindInt {
		return n.int().String()
	}

	x := n.f
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}

	if abs := math.Abs(x); abs == 0 || (abs >= 1e-4 && abs < 1e16) {
		s := strconv.FormatFloat(x, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	return strconv.FormatFloat(x, 'e', -1, 64)
}

// Sum returns a + b. The result is a float if either operand is a float,
// otherwise an integer. Integers never overflow.
func Sum(a, b Number) Number {
	if a.kind == KindFloat || b.kind == KindFloat {
		return Float(a.Float64() + b.Float64())
	}
	return Number{kind: KindInt, i: new(big.Int).Add(a.int(), b.int())}
}

// ParseNumber reads s as a base-10 integer of any size, falling back to a
// decimal float. Text that is neither, including nan, inf and hex floats,
// returns an error wrapping ErrNotNumeric.
func ParseNumber(s string) (Number, error) {
	t := strings.TrimSpace(s)
	if i, ok := new(big.Int).SetString(t, 10); ok {
		return Number{kind: KindInt, i: i}, nil
	}

	if strings.ContainsAny(t, "xX") {
		return Number{}, fmt.Errorf("parsing %q: hex floats not supported: %w", s, ErrNotNumeric)
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}, fmt.Errorf("parsing %q: %w", s, ErrNotNumeric)
	}
	return Float(f), nil
}
