package field

import (
	"encoding/binary"
	"io"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/aerius-labs/ecc-field-go/internal/bigfromrand"
)

// Domain separator for deterministic element derivation.
var deriveDomainSep = []byte{
	0x66, 0x65, 0x2d, 0x64, 0x72, 0x76, 0x00, 0x01,
	0x9b, 0x3c, 0xe1, 0x4f, 0x07, 0xa2, 0x58, 0xd0,
}

// RandElement returns a uniform element of GF(prime) drawn from rng.
// It panics if the reader fails.
func RandElement(rng io.Reader, prime *big.Int) FieldElement {
	num, err := bigfromrand.FromReader(rng, prime)
	if err != nil {
		panic("failed to sample field element: " + err.Error())
	}
	return FieldElement{num: num, prime: new(big.Int).Set(prime)}
}

// DeriveElement deterministically derives an element of GF(prime) from
// a seed and an index. The derivation is SHAKE128 over a fixed domain
// separator, the seed, and the big-endian index, reduced mod prime.
func DeriveElement(prime *big.Int, seed []byte, index uint64) FieldElement {
	shake := sha3.NewShake128()
	shake.Write(deriveDomainSep)
	shake.Write(seed)

	indexBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(indexBytes, index)
	shake.Write(indexBytes)

	return FieldElement{
		num:   bigfromrand.FromShake(shake, prime),
		prime: new(big.Int).Set(prime),
	}
}
