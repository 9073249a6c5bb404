// Package mod5 provides scalar arithmetic over the base field F_5.
// The modulus is fixed; nothing here generalizes over q.
package mod5

import "errors"

// Q is the base-field modulus.
const Q = 5

// ErrNoInverse is returned when the zero residue is inverted.
var ErrNoInverse = errors.New("mod5: residue 0 has no inverse")

// Fold maps any integer to its non-negative remainder mod 5.
func Fold(v int) uint8 {
	r := v % Q
	if r < 0 {
		r += Q
	}
	return uint8(r)
}

// Add returns a+b mod 5. Inputs must already be reduced.
func Add(a, b uint8) uint8 {
	s := a + b
	if s >= Q {
		s -= Q
	}
	return s
}

// Sub returns a-b mod 5, computed as a+5-b so no intermediate goes negative.
func Sub(a, b uint8) uint8 {
	s := a + Q - b
	if s >= Q {
		s -= Q
	}
	return s
}

// Mul returns a*b mod 5. Inputs must already be reduced.
func Mul(a, b uint8) uint8 {
	return (a * b) % Q
}

// Inv returns the multiplicative inverse of a mod 5 by exhaustive search
// over the four nonzero residues. The scan is linear in the modulus and
// relies on it staying tiny.
func Inv(a uint8) (uint8, error) {
	a %= Q
	if a == 0 {
		return 0, ErrNoInverse
	}
	for i := uint8(1); i < Q; i++ {
		if Mul(a, i) == 1 {
			return i, nil
		}
	}
	// Unreachable: 5 is prime, so every nonzero residue has an inverse.
	return 0, ErrNoInverse
}
