/*
Package bigint provides an arbitrary-precision signed integer (Int) built on
a little-endian vector of 64-bit words and a separate sign flag.

Int is a value type; all operations return new values and never modify their
operands, so a single Int can be shared between goroutines without locking.

Simple example:

	a := IntFrom64(math.MaxUint64, false)
	b := a.Mul(a)
	fmt.Println(b)
	// Output: 340282366920938463426481119284349108225

Int can be created from a variety of sources:

	Zero() Int
	IntFrom64(v uint64, neg bool) Int
	IntFromInt64(v int64) Int
	IntFromRaw(words []uint64, neg bool) Int
	IntFromBigInt(v *big.Int) Int
	IntFromFloat64(f float64) (out Int, inRange bool)

Results of arithmetic are always canonical: no most-significant zero words,
zero is a single zero word and is never negative. IntFromRaw does not
canonicalise its input, which is useful for building test fixtures.

Division by zero is reported as ErrDivisionByZero by Quo; MustQuo panics
instead.

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- encoding.TextMarshaler

*/
package bigint
