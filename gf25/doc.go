package gf25

// Package gf25 implements the 25-element field GF(5^2), constructed as
// F_5[t]/(t^2+2) over the power basis {1, t}. The reduction polynomial
// forces t^2 = 3 (mod 5), and that single constant drives every product
// in the package.
//
// Elements are immutable values, always stored with both coefficients
// reduced mod 5, and compare with ==. Inversion uses the conjugate-norm
// identity over a bounded inverse search in the base field. The curve
// package builds the chord-and-tangent group law on top of these
// operations.
