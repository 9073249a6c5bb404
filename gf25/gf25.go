package gf25

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"smallcurve/internal/mod5"
)

// tSquared is the reduction constant: t^2+2 = 0 gives t^2 = -2 = 3 (mod 5).
const tSquared = 3

// ErrNotInvertible is returned when the additive identity is inverted or
// used as a divisor.
var ErrNotInvertible = errors.New("gf25: element is not invertible")

// Elem is an element a + b*t of GF(5^2). Both coefficients are kept
// reduced in [0,4] at all times.
type Elem struct {
	a, b uint8
}

// New folds the integer coefficients into [0,4] and returns a + b*t.
// Negative inputs are accepted and folded Euclidean-style.
func New(a, b int) Elem {
	return Elem{a: mod5.Fold(a), b: mod5.Fold(b)}
}

// Zero returns the additive identity.
func Zero() Elem { return Elem{} }

// One returns the multiplicative identity.
func One() Elem { return Elem{a: 1} }

// Coeffs returns the reduced coefficients (a, b) of a + b*t.
func (x Elem) Coeffs() (a, b uint8) { return x.a, x.b }

// Index returns the position of x in the fixed enumeration order used by
// All: a + 5*b, in [0,24].
func (x Elem) Index() int { return int(x.a) + mod5.Q*int(x.b) }

// IsZero reports whether x is the additive identity.
func (x Elem) IsZero() bool { return x.a == 0 && x.b == 0 }

// Add returns x+y, componentwise mod 5.
func (x Elem) Add(y Elem) Elem {
	return Elem{a: mod5.Add(x.a, y.a), b: mod5.Add(x.b, y.b)}
}

// Sub returns x-y, componentwise mod 5.
func (x Elem) Sub(y Elem) Elem {
	return Elem{a: mod5.Sub(x.a, y.a), b: mod5.Sub(x.b, y.b)}
}

// Neg returns the additive inverse -x.
func (x Elem) Neg() Elem {
	return Elem{a: mod5.Sub(0, x.a), b: mod5.Sub(0, x.b)}
}

// Mul returns the product x*y. The schoolbook product
// (a+bt)(c+dt) = ac + (ad+bc)t + bd*t^2 is reduced with t^2 = 3, so the
// constant term picks up 3*bd.
func (x Elem) Mul(y Elem) Elem {
	ac := mod5.Mul(x.a, y.a)
	bd := mod5.Mul(x.b, y.b)
	cross := mod5.Add(mod5.Mul(x.a, y.b), mod5.Mul(x.b, y.a))
	return Elem{a: mod5.Add(ac, mod5.Mul(tSquared, bd)), b: cross}
}

// Inverse returns x^-1 via the conjugate identity
// (a+bt)^-1 = (a-bt)/(a^2-3b^2). The norm a^2-3b^2 vanishes only for the
// zero element (the norm form is anisotropic because t^2+2 is irreducible
// over F_5), and that case reports ErrNotInvertible instead of a value.
func (x Elem) Inverse() (Elem, error) {
	norm := mod5.Sub(mod5.Mul(x.a, x.a), mod5.Mul(tSquared, mod5.Mul(x.b, x.b)))
	ninv, err := mod5.Inv(norm)
	if err != nil {
		return Elem{}, fmt.Errorf("%w: zero norm", ErrNotInvertible)
	}
	return Elem{a: mod5.Mul(x.a, ninv), b: mod5.Sub(0, mod5.Mul(x.b, ninv))}, nil
}

// Div returns x/y = x * y^-1, reporting ErrNotInvertible for y = 0.
func (x Elem) Div(y Elem) (Elem, error) {
	inv, err := y.Inverse()
	if err != nil {
		return Elem{}, err
	}
	return x.Mul(inv), nil
}

// String renders the element the way the demonstration prints it: "0"
// when both coefficients vanish, a bare coefficient for base-field
// values, "2t" for pure t-multiples and "1 + 2t" for the rest.
func (x Elem) String() string {
	switch {
	case x.a == 0 && x.b == 0:
		return "0"
	case x.b == 0:
		return fmt.Sprintf("%d", x.a)
	case x.a == 0:
		return fmt.Sprintf("%dt", x.b)
	default:
		return fmt.Sprintf("%d + %dt", x.a, x.b)
	}
}

// Random samples a uniform element by drawing one byte per coefficient
// from r and folding mod 5. A nil reader falls back to crypto/rand; a
// keyed PRNG gives a deterministic stream.
func Random(r io.Reader) (Elem, error) {
	if r == nil {
		r = rand.Reader
	}
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Elem{}, fmt.Errorf("gf25: sample: %w", err)
	}
	return Elem{a: buf[0] % mod5.Q, b: buf[1] % mod5.Q}, nil
}

// All returns the 25 field elements in the fixed order a + 5*b (a varies
// fastest), matching Index.
func All() []Elem {
	out := make([]Elem, 0, mod5.Q*mod5.Q)
	for b := uint8(0); b < mod5.Q; b++ {
		for a := uint8(0); a < mod5.Q; a++ {
			out = append(out, Elem{a: a, b: b})
		}
	}
	return out
}
