package bigint

type RandSource interface {
	Uint64() uint64
}

// RandInt generates a random Int of up to words 64-bit words from an external
// source.
func RandInt(source RandSource, words int, neg bool) Int {
	if words <= 0 {
		return Zero()
	}
	mag := make(nat, words)
	for i := range mag {
		mag[i] = source.Uint64()
	}
	return norm(neg, mag)
}

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b Int) Int {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func Larger(a, b Int) Int {
	if a.Cmp(b) < 0 {
		return b
	}
	return a
}

func Smaller(a, b Int) Int {
	if a.Cmp(b) > 0 {
		return b
	}
	return a
}
