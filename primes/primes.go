// Package primes provides the moduli of fields commonly paired with
// elliptic-curve code. Accessors return fresh copies so callers cannot
// corrupt the package state.
package primes

import "math/big"

var (
	secp256k1P = mustParse("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")
	secp256k1N = mustParse("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	babyBear   = big.NewInt(2013265921)
)

// Secp256k1P returns the secp256k1 base field modulus, 2^256 - 2^32 - 977.
func Secp256k1P() *big.Int {
	return new(big.Int).Set(secp256k1P)
}

// Secp256k1N returns the order of the secp256k1 group.
func Secp256k1N() *big.Int {
	return new(big.Int).Set(secp256k1N)
}

// BabyBear returns the BabyBear modulus, 2^31 - 2^27 + 1.
func BabyBear() *big.Int {
	return new(big.Int).Set(babyBear)
}

func mustParse(hex string) *big.Int {
	v, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		panic("primes: bad constant " + hex)
	}
	return v
}
