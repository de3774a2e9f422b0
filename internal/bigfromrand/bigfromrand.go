// Package bigfromrand turns raw reader or XOF output into uniform
// big.Int values below a bound.
package bigfromrand

import (
	"io"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// slackBytes is read beyond the bound's own length before reducing,
// keeping the modular-reduction bias below 2^-128.
const slackBytes = 16

// FromReader returns a uniform value in [0, bound) drawn from rng.
// bound must be positive.
func FromReader(rng io.Reader, bound *big.Int) (*big.Int, error) {
	buf := make([]byte, len(bound.Bytes())+slackBytes)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return nil, err
	}
	v := new(big.Int).SetBytes(buf)
	return v.Mod(v, bound), nil
}

// FromShake returns a uniform value in [0, bound) squeezed from a
// SHAKE instance that has already absorbed its input. bound must be
// positive.
func FromShake(shake sha3.ShakeHash, bound *big.Int) *big.Int {
	buf := make([]byte, len(bound.Bytes())+slackBytes)
	shake.Read(buf)
	v := new(big.Int).SetBytes(buf)
	return v.Mod(v, bound)
}
