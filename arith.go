package bigint

import (
	"math/bits"
)

// nat is an unsigned magnitude of the form
//
//	x = x[n-1]*2^(64*(n-1)) + ... + x[1]*2^64 + x[0]
//
// stored least-significant word first. A nat is canonical if it has no
// most-significant zero words, except for zero itself, which is a single zero
// word. Reads past the end of a nat see zero words.
//
// nat values handed between functions are never modified in place; every
// primitive allocates its own result.
type nat []uint64

// word returns x[i], or 0 if i is out of range.
func (x nat) word(i int) uint64 {
	if i < 0 || i >= len(x) {
		return 0
	}
	return x[i]
}

// mszw returns the number of words in x once the most-significant zero words
// are dropped, such that x == x[:x.mszw()]. It is 0 if x is zero.
func (x nat) mszw() int {
	i := len(x)
	for i != 0 && x[i-1] == 0 {
		i--
	}
	return i
}

func (x nat) isZero() bool { return x.mszw() == 0 }

// clone returns a copy of x that shares no memory with it.
func (x nat) clone() nat {
	z := make(nat, len(x))
	copy(z, x)
	return z
}

// norm returns the canonical form of x. A zero x is returned as a new single
// zero word; otherwise the result is a reslice of x.
func (x nat) norm() nat {
	n := x.mszw()
	if n == 0 {
		return nat{0}
	}
	return x[:n]
}

func (x nat) bit(n uint) uint {
	return uint(x.word(int(n/wordBits))>>(n%wordBits)) & 1
}

func (x nat) bitLen() int {
	n := x.mszw()
	if n == 0 {
		return 0
	}
	return (n-1)*wordBits + bits.Len64(x[n-1])
}

// cmpMag compares the magnitudes x and y and returns -1, 0 or +1. The word
// count decides first, then words are compared from the most significant down.
func cmpMag(x, y nat) int {
	m, n := x.mszw(), y.mszw()
	switch {
	case m < n:
		return -1
	case m > n:
		return 1
	}
	for i := m - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// addMag returns x + y.
func addMag(x, y nat) nat {
	n := x.mszw()
	if m := y.mszw(); m > n {
		n = m
	}
	z := make(nat, n+1)
	var carry uint64
	for i := 0; i < n; i++ {
		z[i], carry = bits.Add64(x.word(i), y.word(i), carry)
	}
	z[n] = carry
	return z.norm()
}

// subMag returns x - y. The caller must ensure x >= y; otherwise the result
// wraps.
func subMag(x, y nat) nat {
	n := x.mszw()
	z := make(nat, n)
	var borrow uint64
	for i := 0; i < n; i++ {
		z[i], borrow = bits.Sub64(x[i], y.word(i), borrow)
	}
	return z.norm()
}

// shlMag returns x << s. The shift is split into whole words and a bit shift
// below the word width; a bit shift of zero copies words and never shifts a
// word by 64.
func shlMag(x nat, s uint) nat {
	m := x.mszw()
	if m == 0 {
		return nat{0}
	}
	ws, bs := int(s/wordBits), s%wordBits

	z := make(nat, m+ws+1)
	if bs == 0 {
		copy(z[ws:], x[:m])
		return z.norm()
	}

	var carry uint64
	for i := 0; i < m; i++ {
		w := x[i]
		z[i+ws] = w<<bs | carry
		carry = w >> (wordBits - bs)
	}
	z[m+ws] = carry
	return z.norm()
}

// shr1Mag returns x >> 1.
func shr1Mag(x nat) nat {
	m := x.mszw()
	z := make(nat, m)
	var carry uint64
	for i := m - 1; i >= 0; i-- {
		w := x[i]
		z[i] = w>>1 | carry
		carry = w << (wordBits - 1)
	}
	return z.norm()
}

// mulMag returns x * y by shift-and-add: x << i is accumulated for every set
// bit i of y. The operands are swapped so y is the shorter of the two.
func mulMag(x, y nat) nat {
	if x.isZero() || y.isZero() {
		return nat{0}
	}
	if y.bitLen() > x.bitLen() {
		x, y = y, x
	}
	z := nat{0}
	nbits := uint(y.bitLen())
	for i := uint(0); i < nbits; i++ {
		if y.bit(i) != 0 {
			z = addMag(z, shlMag(x, i))
		}
	}
	return z
}

// quoMag returns x / y, rounded towards zero. It bisects the quotient over
// [0, x], comparing mid*y against x at each step. y must not be zero.
func quoMag(x, y nat) nat {
	if cmpMag(x, y) < 0 {
		return nat{0}
	}

	lo, hi := nat{0}, x.norm().clone()
	for cmpMag(lo, hi) <= 0 {
		mid := shr1Mag(addMag(lo, hi))
		switch cmpMag(mulMag(mid, y), x) {
		case 0:
			return mid
		case -1:
			lo = addMag(mid, oneWords)
		default:
			// mid > 0 here: 0*y can't exceed x.
			hi = subMag(mid, oneWords)
		}
	}
	return hi
}

// divWordMag returns x / d and x % d for a single-word divisor, working from
// the most-significant word down and carrying the remainder between words.
func divWordMag(x nat, d uint64) (q nat, r uint64) {
	m := x.mszw()
	q = make(nat, m)
	for i := m - 1; i >= 0; i-- {
		q[i], r = bits.Div64(r, x[i], d)
	}
	return q.norm(), r
}
