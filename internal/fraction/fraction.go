package fraction

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

var (
	// ErrInvalidArgument is returned when a fraction is built with a zero denominator.
	ErrInvalidArgument = errors.New("denominator cannot be zero")

	// ErrDivisionByZero is returned when dividing by a fraction whose numerator is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrSyntax is returned by Parse for text that is not "n/d" or "n".
	ErrSyntax = errors.New("invalid fraction syntax")
)

// Fraction is a rational number numerator/denominator.
//
// The zero value is not a valid Fraction; use New, MustNew or Parse.
// Values are immutable: every operation returns a new Fraction.
// The sign is kept where it was given, so New(1, -2) prints as "1/-2".
type Fraction struct {
	num int64
	den int64
}

// New returns num/den as given, without reduction.
func New(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrInvalidArgument
	}
	return Fraction{num: num, den: den}, nil
}

// MustNew is like New but panics on a zero denominator. Intended for literals.
func MustNew(num, den int64) Fraction {
	f, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return f
}

// Parse reads "n/d" or a bare integer "n" (meaning n/1).
func Parse(s string) (Fraction, error) {
	s = strings.TrimSpace(s)
	numText, denText, hasSlash := strings.Cut(s, "/")
	num, err := strconv.ParseInt(strings.TrimSpace(numText), 10, 64)
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	if !hasSlash {
		return New(num, 1)
	}
	den, err := strconv.ParseInt(strings.TrimSpace(denText), 10, 64)
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return New(num, den)
}

// Num returns the stored numerator.
func (f Fraction) Num() int64 { return f.num }

// Den returns the stored denominator.
func (f Fraction) Den() int64 { return f.den }

// Add returns f + g, reduced.
func (f Fraction) Add(g Fraction) Fraction {
	return Fraction{num: f.num*g.den + g.num*f.den, den: f.den * g.den}.Reduce()
}

// Sub returns f - g, reduced.
func (f Fraction) Sub(g Fraction) Fraction {
	return Fraction{num: f.num*g.den - g.num*f.den, den: f.den * g.den}.Reduce()
}

// Mul returns f * g, reduced.
func (f Fraction) Mul(g Fraction) Fraction {
	return Fraction{num: f.num * g.num, den: f.den * g.den}.Reduce()
}

// Div returns f / g, reduced. It fails with ErrDivisionByZero when g is zero.
func (f Fraction) Div(g Fraction) (Fraction, error) {
	if g.num == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	return Fraction{num: f.num * g.den, den: f.den * g.num}.Reduce(), nil
}

// Neg returns -f, keeping the sign on the numerator side.
func (f Fraction) Neg() Fraction { return Fraction{num: -f.num, den: f.den} }

// Reduce returns f divided through by gcd(|num|, |den|).
// A zero numerator reduces to 0/1 (or 0/-1 for a negative denominator).
func (f Fraction) Reduce() Fraction {
	// gcd is at most 1<<63; that case wraps to MinInt64, which still
	// divides exactly since both terms are then 0 or MinInt64.
	d := int64(gcd(f.num, f.den))
	if d == 1 {
		return f
	}
	return Fraction{num: f.num / d, den: f.den / d}
}

// Equal reports whether f and g denote the same rational number.
// It compares by cross-multiplication, so 1/2 equals 2/4 and -1/2 equals 1/-2.
// The products are those of Cmp, so Equal never disagrees with the ordering.
func (f Fraction) Equal(g Fraction) bool {
	return f.Cmp(g) == 0
}

// Cmp compares f and g exactly and returns -1, 0 or +1.
// Products are taken on big integers so large terms cannot overflow.
func (f Fraction) Cmp(g Fraction) int {
	// a/b ? c/d  <=>  a*d*b*d ? c*b*b*d, which multiplies both sides by (b*d)^2 > 0.
	bd := new(big.Int).Mul(big.NewInt(f.den), big.NewInt(g.den))
	lhs := new(big.Int).Mul(big.NewInt(f.num), big.NewInt(g.den))
	rhs := new(big.Int).Mul(big.NewInt(g.num), big.NewInt(f.den))
	lhs.Mul(lhs, bd)
	rhs.Mul(rhs, bd)
	return lhs.Cmp(rhs)
}

// Greater reports whether f > g.
func (f Fraction) Greater(g Fraction) bool { return f.Cmp(g) > 0 }

// Less reports whether f < g.
func (f Fraction) Less(g Fraction) bool { return f.Cmp(g) < 0 }

// GreaterOrEqual reports whether f >= g.
func (f Fraction) GreaterOrEqual(g Fraction) bool { return f.Cmp(g) >= 0 }

// LessOrEqual reports whether f <= g.
func (f Fraction) LessOrEqual(g Fraction) bool { return f.Cmp(g) <= 0 }

// ApproxCompare compares f and g through their float64 values.
// It can report 0 for distinct fractions whose values round to the same float.
func (f Fraction) ApproxCompare(g Fraction) int {
	a, b := f.Float64(), g.Float64()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Float64 returns num/den as a floating-point value.
func (f Fraction) Float64() float64 {
	return float64(f.num) / float64(f.den)
}

// String renders the stored terms as "num/den".
func (f Fraction) String() string {
	return strconv.FormatInt(f.num, 10) + "/" + strconv.FormatInt(f.den, 10)
}

// MarshalText implements encoding.TextMarshaler.
func (f Fraction) MarshalText() ([]byte, error) {
	if f.den == 0 {
		return nil, ErrInvalidArgument
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (f *Fraction) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// gcd is Euclid's algorithm on absolute values; gcd(0, d) = |d|.
// It works on uint64 so |MinInt64| is representable.
func gcd(x, y int64) uint64 {
	a, b := abs(x), abs(y)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(x int64) uint64 {
	u := uint64(x)
	if x < 0 {
		u = -u
	}
	return u
}
