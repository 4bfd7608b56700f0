package bigint

import (
	"math/big"
)

// This is the only file in the package that may import math/big; see
// TestArithmeticDoesNotImportMathBig.

// IntFromBigInt creates an Int from a big.Int. The conversion is exact.
func IntFromBigInt(v *big.Int) Int {
	words := v.Bits()

	var mag nat
	switch intSize {
	case 64:
		mag = make(nat, len(words))
		for i, w := range words {
			mag[i] = uint64(w)
		}

	case 32:
		mag = make(nat, (len(words)+1)/2)
		for i, w := range words {
			mag[i/2] |= uint64(w) << (32 * uint(i%2))
		}

	default:
		panic("bigint: unsupported bit size")
	}

	return norm(v.Sign() < 0, mag)
}

// IntoBigInt copies this Int into a big.Int, allowing you to retain and
// recycle memory.
func (i Int) IntoBigInt(b *big.Int) {
	m := i.words.mszw()
	bits := b.Bits()[:0]

	switch intSize {
	case 64:
		for j := 0; j < m; j++ {
			bits = append(bits, big.Word(i.words[j]))
		}

	case 32:
		for j := 0; j < m; j++ {
			w := i.words[j]
			bits = append(bits, big.Word(w&0xFFFFFFFF), big.Word(w>>32))
		}

	default:
		panic("bigint: unsupported bit size")
	}

	b.SetBits(bits)
	if i.isNeg() {
		b.Neg(b)
	}
}

func (i Int) AsBigInt() (b *big.Int) {
	var v big.Int
	i.IntoBigInt(&v)
	return &v
}
