package bigint

// Int is an arbitrary-precision signed integer: a sign flag and a magnitude
// of 64-bit words, least-significant word first.
//
// The zero value is 0. Int values are immutable; every operation returns a
// new Int.
type Int struct {
	neg   bool
	words nat
}

// Zero returns 0, represented by a single zero word.
func Zero() Int { return Int{words: nat{0}} }

// IntFrom64 creates a single-word Int with an explicit sign. IntFrom64(0, true)
// is permitted and creates a negative zero, which every operation treats as
// 0; no operation produces one.
func IntFrom64(v uint64, neg bool) Int {
	return Int{neg: neg, words: nat{v}}
}

// IntFromInt64 creates an Int from a native signed integer.
func IntFromInt64(v int64) Int {
	if v < 0 {
		// -(v+1)+1 avoids overflowing on math.MinInt64:
		return IntFrom64(uint64(-(v+1))+1, true)
	}
	return IntFrom64(uint64(v), false)
}

// IntFromRaw creates an Int from words in little-endian order (words[0] is the
// least significant) and a sign. The words are copied but not canonicalised,
// so non-canonical fixtures can be built deliberately. See Raw() for the
// counterpart.
func IntFromRaw(words []uint64, neg bool) Int {
	if len(words) == 0 {
		return Int{neg: neg, words: nat{0}}
	}
	w := make(nat, len(words))
	copy(w, words)
	return Int{neg: neg, words: w}
}

// norm builds a canonical Int from a sign and magnitude. It is the only place
// operators attach a sign to a result, and it clears the sign of a zero
// magnitude.
func norm(neg bool, mag nat) Int {
	mag = mag.norm()
	if mag.isZero() {
		return Int{words: nat{0}}
	}
	return Int{neg: neg, words: mag}
}

// Copy returns an Int that shares no memory with i.
func (i Int) Copy() Int {
	return IntFromRaw(i.words, i.neg)
}

// Raw returns a copy of the word vector, least-significant word first. Zero
// is returned as a single zero word.
func (i Int) Raw() []uint64 {
	if len(i.words) == 0 {
		return []uint64{0}
	}
	out := make([]uint64, len(i.words))
	copy(out, i.words)
	return out
}

// Word returns the word at index n, or 0 if n is beyond the stored words.
func (i Int) Word(n int) uint64 { return i.words.word(n) }

// Len returns the number of stored words; it is at least 1.
func (i Int) Len() int {
	if len(i.words) == 0 {
		return 1
	}
	return len(i.words)
}

// IsNegative reports the stored sign flag.
func (i Int) IsNegative() bool { return i.neg }

// isNeg reports whether i is strictly below zero; a constructed negative zero
// is not.
func (i Int) isNeg() bool { return i.neg && !i.words.isZero() }

func (i Int) IsZero() bool { return i.words.isZero() }

// Sign returns -1, 0 or +1.
func (i Int) Sign() int {
	if i.words.isZero() {
		return 0
	} else if i.neg {
		return -1
	}
	return 1
}

// IsBitSet reports whether bit n of the magnitude is set, ignoring the sign.
// Bits beyond the stored words are unset.
func (i Int) IsBitSet(n uint) bool { return i.words.bit(n) != 0 }

// Bit returns the value of bit n of the magnitude, ignoring the sign.
func (i Int) Bit(n uint) uint { return i.words.bit(n) }

// BitLen returns the length of the magnitude in bits. The bit length of 0 is 0.
func (i Int) BitLen() int { return i.words.bitLen() }

func (i Int) Abs() Int { return norm(false, i.words.clone()) }

// Neg returns -i. The negation of zero is zero.
func (i Int) Neg() Int { return norm(!i.neg, i.words.clone()) }

// Add returns i + n.
func (i Int) Add(n Int) Int {
	if i.isNeg() == n.isNeg() {
		return norm(i.isNeg(), addMag(i.words, n.words))
	}
	switch cmpMag(i.words, n.words) {
	case 1:
		return norm(i.isNeg(), subMag(i.words, n.words))
	case -1:
		return norm(n.isNeg(), subMag(n.words, i.words))
	default:
		return Zero()
	}
}

// Sub returns i - n, computed as i + (-n).
func (i Int) Sub(n Int) Int {
	return i.Add(n.Neg())
}

// Lsh returns i << n. The sign is kept, so the result is i * 2**n.
func (i Int) Lsh(n uint) Int {
	return norm(i.isNeg(), shlMag(i.words, n))
}

// Mul returns i * n.
func (i Int) Mul(n Int) Int {
	return norm(i.isNeg() != n.isNeg(), mulMag(i.words, n.words))
}

// Quo returns the quotient i/by, truncated towards zero (like Go). If by is
// zero, ErrDivisionByZero is returned.
//
// The quotient's magnitude is computed from the operands' magnitudes; the
// sign is attached once at the end.
func (i Int) Quo(by Int) (q Int, err error) {
	if by.words.isZero() {
		return Zero(), ErrDivisionByZero
	}
	return norm(i.isNeg() != by.isNeg(), quoMag(i.words, by.words)), nil
}

// MustQuo is like Quo but panics if by is zero.
func (i Int) MustQuo(by Int) Int {
	q, err := i.Quo(by)
	if err != nil {
		panic(err)
	}
	return q
}

// Cmp compares i and n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
func (i Int) Cmp(n Int) int {
	ineg, nneg := i.isNeg(), n.isNeg()
	if ineg != nneg {
		if ineg {
			return -1
		}
		return 1
	}
	c := cmpMag(i.words, n.words)
	if ineg {
		return -c
	}
	return c
}

func (i Int) Equal(n Int) bool            { return i.Cmp(n) == 0 }
func (i Int) GreaterThan(n Int) bool      { return i.Cmp(n) > 0 }
func (i Int) GreaterOrEqualTo(n Int) bool { return i.Cmp(n) >= 0 }
func (i Int) LessThan(n Int) bool         { return i.Cmp(n) < 0 }
func (i Int) LessOrEqualTo(n Int) bool    { return i.Cmp(n) <= 0 }

// AsUint64 truncates the magnitude to its lowest word, ignoring the sign. See
// IsUint64() if you want to check before you convert.
func (i Int) AsUint64() uint64 { return i.words.word(0) }

// IsUint64 reports whether i can be represented as a uint64.
func (i Int) IsUint64() bool {
	return !i.isNeg() && i.words.mszw() <= 1
}

// AsInt64 truncates i to an int64. Values outside the range will
// over/underflow. See IsInt64() if you want to check before you convert.
func (i Int) AsInt64() int64 {
	v := int64(i.words.word(0))
	if i.neg {
		return -v
	}
	return v
}

// IsInt64 reports whether i can be represented as an int64.
func (i Int) IsInt64() bool {
	if i.words.mszw() > 1 {
		return false
	}
	lo := i.words.word(0)
	if i.isNeg() {
		return lo <= maxInt64+1
	}
	return lo <= maxInt64
}
