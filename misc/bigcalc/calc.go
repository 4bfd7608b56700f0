package main

import (
	"context"
	"runtime"

	"fortio.org/safecast"
	"github.com/pkg/errors"
	bigint "github.com/shabbyrobe/go-bigint"
	"golang.org/x/sync/errgroup"
)

// rangeProduct returns lo * (lo+1) * ... * hi, or 1 if the range is empty.
func rangeProduct(lo, hi uint64) bigint.Int {
	out := bigint.IntFrom64(1, false)
	if lo > hi {
		return out
	}
	for v := lo; ; v++ {
		out = out.Mul(bigint.IntFrom64(v, false))
		if v == hi { // v++ would wrap when hi == MaxUint64
			break
		}
	}
	return out
}

// factorial computes n! by splitting 1..n into one contiguous range per job.
// Each worker writes only its own slot; the partial products are combined
// once every worker is done.
func factorial(ctx context.Context, n uint64, jobs int) (bigint.Int, error) {
	if n < 2 {
		return bigint.IntFrom64(1, false), nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	chunks, err := safecast.Conv[uint64](jobs)
	if err != nil {
		return bigint.Int{}, errors.Wrapf(err, "bigcalc: invalid job count %d", jobs)
	}
	if chunks > n {
		chunks = n
	}
	size := n / chunks

	parts := make([]bigint.Int, chunks)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := uint64(0); i < chunks; i++ {
		i := i
		lo := i*size + 1
		hi := lo + size - 1
		if i == chunks-1 {
			hi = n
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			parts[i] = rangeProduct(lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return bigint.Int{}, errors.Wrap(err, "bigcalc: factorial cancelled")
	}

	out := bigint.IntFrom64(1, false)
	for _, p := range parts {
		out = out.Mul(p)
	}
	return out, nil
}

// binomial computes n choose k with the multiplicative formula. After step i
// the accumulator holds C(n-k+i, i), so every division is exact.
func binomial(n, k uint64) (bigint.Int, error) {
	if k > n {
		return bigint.Zero(), nil
	}
	if n-k < k {
		k = n - k
	}

	out := bigint.IntFrom64(1, false)
	for i := uint64(1); i <= k; i++ {
		out = out.Mul(bigint.IntFrom64(n-k+i, false))

		var err error
		out, err = out.Quo(bigint.IntFrom64(i, false))
		if err != nil {
			return bigint.Int{}, errors.Wrapf(err, "bigcalc: binomial step %d", i)
		}
	}
	return out, nil
}

func fibonacci(n uint64) bigint.Int {
	a, b := bigint.Zero(), bigint.IntFrom64(1, false)
	for i := uint64(0); i < n; i++ {
		a, b = b, a.Add(b)
	}
	return a
}

// fromWords builds a value from little-endian words. Leading zero words are
// allowed and dropped.
func fromWords(words []uint64, neg bool) bigint.Int {
	// Adding zero canonicalises the raw form:
	return bigint.IntFromRaw(words, neg).Add(bigint.Zero())
}
