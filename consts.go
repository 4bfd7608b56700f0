package bigint

import "errors"

const (
	wordBits  = 64
	wordBytes = wordBits / 8
	hexDigits = wordBits / 4

	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1

	// wrapUint64Float is 1 << 64:
	wrapUint64Float = float64(maxUint64) + 1

	intSize = 32 << (^uint(0) >> 63)
)

var (
	// ErrDivisionByZero is returned by Quo when the divisor is zero.
	ErrDivisionByZero = errors.New("bigint: division by zero")

	oneWords = nat{1}
)
