package bigint

import (
	"fmt"
	"math/big"
	"testing"
)

var (
	BenchBigIntResult *big.Int
	BenchBoolResult   bool
	BenchIntResult    int
	BenchStringResult string
	BenchIntsResult   Int

	benchSizes = []int{1, 2, 4, 8}
)

func benchOperands(words int) (a, b Int) {
	a = IntFromRaw(make([]uint64, words), false)
	b = IntFromRaw(make([]uint64, (words+1)/2), false)
	for i := range a.words {
		a.words[i] = maxUint64 - uint64(i)
	}
	for i := range b.words {
		b.words[i] = 0x123456789abcdef + uint64(i)
	}
	return a, b
}

func BenchmarkIntAdd(b *testing.B) {
	for _, sz := range benchSizes {
		x, y := benchOperands(sz)
		b.Run(fmt.Sprintf("words=%d", sz), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchIntsResult = x.Add(y)
			}
		})
	}
}

func BenchmarkBigIntAdd(b *testing.B) {
	for _, sz := range benchSizes {
		x, y := benchOperands(sz)
		bx, by := x.AsBigInt(), y.AsBigInt()
		b.Run(fmt.Sprintf("words=%d", sz), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var dest big.Int
				BenchBigIntResult = dest.Add(bx, by)
			}
		})
	}
}

func BenchmarkIntMul(b *testing.B) {
	for _, sz := range benchSizes {
		x, y := benchOperands(sz)
		b.Run(fmt.Sprintf("words=%d", sz), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchIntsResult = x.Mul(y)
			}
		})
	}
}

func BenchmarkBigIntMul(b *testing.B) {
	for _, sz := range benchSizes {
		x, y := benchOperands(sz)
		bx, by := x.AsBigInt(), y.AsBigInt()
		b.Run(fmt.Sprintf("words=%d", sz), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var dest big.Int
				BenchBigIntResult = dest.Mul(bx, by)
			}
		})
	}
}

func BenchmarkIntQuo(b *testing.B) {
	for _, sz := range benchSizes {
		x, y := benchOperands(sz)
		b.Run(fmt.Sprintf("words=%d", sz), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchIntsResult = x.MustQuo(y)
			}
		})
	}
}

func BenchmarkBigIntQuo(b *testing.B) {
	for _, sz := range benchSizes {
		x, y := benchOperands(sz)
		bx, by := x.AsBigInt(), y.AsBigInt()
		b.Run(fmt.Sprintf("words=%d", sz), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var dest big.Int
				BenchBigIntResult = dest.Quo(bx, by)
			}
		})
	}
}

func BenchmarkIntCmpEqual(b *testing.B) {
	x, _ := benchOperands(4)
	y := x.Copy()
	for i := 0; i < b.N; i++ {
		BenchIntResult = x.Cmp(y)
	}
}

func BenchmarkBigIntCmpEqual(b *testing.B) {
	x, _ := benchOperands(4)
	bx, by := x.AsBigInt(), x.AsBigInt()
	for i := 0; i < b.N; i++ {
		BenchIntResult = bx.Cmp(by)
	}
}

func BenchmarkIntString(b *testing.B) {
	for _, sz := range benchSizes {
		x, _ := benchOperands(sz)
		b.Run(fmt.Sprintf("words=%d", sz), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchStringResult = x.String()
			}
		})
	}
}

func BenchmarkIntHex(b *testing.B) {
	for _, sz := range benchSizes {
		x, _ := benchOperands(sz)
		b.Run(fmt.Sprintf("words=%d", sz), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchStringResult = x.Hex()
			}
		})
	}
}

func BenchmarkBigIntText16(b *testing.B) {
	for _, sz := range benchSizes {
		x, _ := benchOperands(sz)
		bx := x.AsBigInt()
		b.Run(fmt.Sprintf("words=%d", sz), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchStringResult = bx.Text(16)
			}
		})
	}
}

func BenchmarkIntIsZero(b *testing.B) {
	x := IntFromRaw([]uint64{0, 0, 0, 0}, false)
	for i := 0; i < b.N; i++ {
		BenchBoolResult = x.IsZero()
	}
}
