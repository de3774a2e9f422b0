// Package field implements arithmetic over a prime field GF(p) with an
// arbitrary caller-supplied modulus. It is the numeric primitive that
// elliptic-curve point and signature code builds on; the curve group
// law itself lives with those consumers.
package field

import (
	"fmt"
	"math/big"
)

// FieldElement is one residue class modulo a prime. Elements are
// immutable: every operation returns a new element and never mutates
// its operands.
//
// A validly constructed element satisfies 0 <= num < prime. The
// operators assume that invariant on their inputs and preserve it on
// their outputs, with one documented exception (see Neg).
type FieldElement struct {
	num   *big.Int
	prime *big.Int
}

// New constructs the field element num mod prime. It fails with a
// *ValueError unless 0 <= num < prime. The inputs are copied, so the
// caller may keep mutating them.
func New(num, prime *big.Int) (FieldElement, error) {
	if num.Sign() < 0 || num.Cmp(prime) >= 0 {
		max := new(big.Int).Sub(prime, big.NewInt(1))
		return FieldElement{}, &ValueError{
			Message: fmt.Sprintf("num %s not in field range 0 to %s", num, max),
		}
	}
	return FieldElement{
		num:   new(big.Int).Set(num),
		prime: new(big.Int).Set(prime),
	}, nil
}

// Num returns a copy of the residue.
func (fe FieldElement) Num() *big.Int {
	return new(big.Int).Set(fe.num)
}

// Prime returns a copy of the field modulus.
func (fe FieldElement) Prime() *big.Int {
	return new(big.Int).Set(fe.prime)
}

// Equal reports structural equality: both residue and modulus match.
// Elements of different fields are never equal.
func (fe FieldElement) Equal(other FieldElement) bool {
	return fe.num.Cmp(other.num) == 0 && fe.prime.Cmp(other.prime) == 0
}

func (fe FieldElement) String() string {
	return fmt.Sprintf("%s (mod %s)", fe.num, fe.prime)
}

// mustSamePrime panics when the operands belong to different fields.
// Mixing moduli is a caller bug, not a runtime condition to recover
// from.
func (fe FieldElement) mustSamePrime(other FieldElement) {
	if fe.prime.Cmp(other.prime) != 0 {
		panic(fmt.Sprintf("field: operands have different moduli %s and %s", fe.prime, other.prime))
	}
}

// Add returns (fe + other) mod p. Panics if the moduli differ.
func (fe FieldElement) Add(other FieldElement) FieldElement {
	fe.mustSamePrime(other)
	num := new(big.Int).Add(fe.num, other.num)
	num.Mod(num, fe.prime)
	return FieldElement{num: num, prime: fe.prime}
}

// Sub returns (fe - other) mod p. Panics if the moduli differ.
// The result is computed without a signed intermediate: when the
// minuend is smaller, the difference is taken the other way around and
// subtracted from the modulus.
func (fe FieldElement) Sub(other FieldElement) FieldElement {
	fe.mustSamePrime(other)
	num := new(big.Int)
	if fe.num.Cmp(other.num) < 0 {
		num.Sub(other.num, fe.num)
		num.Mod(num, fe.prime)
		num.Sub(fe.prime, num)
	} else {
		num.Sub(fe.num, other.num)
	}
	return FieldElement{num: num, prime: fe.prime}
}

// Neg returns the additive inverse p - (num mod p). Note the boundary:
// negating the zero element yields a residue equal to p itself, not
// zero, which falls outside the usual [0, p) range.
func (fe FieldElement) Neg() FieldElement {
	num := new(big.Int).Mod(fe.num, fe.prime)
	num.Sub(fe.prime, num)
	return FieldElement{num: num, prime: fe.prime}
}

// Mul returns (fe * other) mod p. Panics if the moduli differ.
func (fe FieldElement) Mul(other FieldElement) FieldElement {
	fe.mustSamePrime(other)
	num := new(big.Int).Mul(fe.num, other.num)
	num.Mod(num, fe.prime)
	return FieldElement{num: num, prime: fe.prime}
}

// Div returns floor(fe.num / other.num) mod p. Panics if the moduli
// differ, or when dividing by the zero element.
//
// This is integer division of the residues, not multiplication by the
// modular inverse of other; callers needing true field division must
// compute the inverse themselves.
func (fe FieldElement) Div(other FieldElement) FieldElement {
	fe.mustSamePrime(other)
	num := new(big.Int).Div(fe.num, other.num)
	num.Mod(num, fe.prime)
	return FieldElement{num: num, prime: fe.prime}
}

// Pow returns fe raised to the given power, reduced mod p. For
// power >= 0 the exponent is used directly. For power < 0 the
// effective exponent is 1 + |power|; this is not a Fermat reduction of
// the exponent and does not in general compute the modular inverse.
func (fe FieldElement) Pow(power int64) FieldElement {
	exp := power
	if power < 0 {
		exp = 1 - power
	}
	num := new(big.Int).Exp(fe.num, big.NewInt(exp), fe.prime)
	return FieldElement{num: num, prime: fe.prime}
}
