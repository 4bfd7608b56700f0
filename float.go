package bigint

import (
	"math"
)

// AsFloat64 returns the float64 nearest to i, rounding ties to even. Values
// beyond the float64 range become ±Inf.
func (i Int) AsFloat64() float64 {
	f := magFloat64(i.words)
	if i.isNeg() {
		return -f
	}
	return f
}

// magFloat64 converts the top 64 significant bits of x in one rounding step,
// then scales the result by the number of bits dropped. Any nonzero dropped
// bit is folded into the lowest kept bit, which sits below the float64
// rounding position, so the single conversion sees the same round/sticky
// state as the full value.
func magFloat64(x nat) float64 {
	m := x.mszw()
	if m <= 1 {
		return float64(x.word(0))
	}

	shift := uint(x.bitLen() - wordBits)
	ws, bs := int(shift/wordBits), shift%wordBits

	top := x[ws]
	var sticky bool
	if bs != 0 {
		top = x[ws]>>bs | x[ws+1]<<(wordBits-bs)
		sticky = x[ws]<<(wordBits-bs) != 0
	}
	for j := 0; j < ws && !sticky; j++ {
		sticky = x[j] != 0
	}
	if sticky {
		top |= 1
	}
	return math.Ldexp(float64(top), int(shift))
}

// IntFromFloat64 creates an Int from a float64. Any fractional portion is
// truncated towards zero.
//
// NaN and ±Inf are treated as 0 and inRange is set to false.
func IntFromFloat64(f float64) (out Int, inRange bool) {
	if f != f || math.IsInf(f, 0) { // (f != f) == NaN
		return Zero(), false
	}

	neg := f < 0
	f = math.Abs(math.Trunc(f))
	if f < wrapUint64Float {
		return norm(neg, nat{uint64(f)}), true
	}

	// f == frac * 2**exp with frac in [0.5, 1), and exp > 64 here. The 53
	// mantissa bits are scaled to an integer, then shifted into place.
	frac, exp := math.Frexp(f)
	mant := uint64(frac * (1 << 53))
	return norm(neg, shlMag(nat{mant}, uint(exp-53))), true
}
