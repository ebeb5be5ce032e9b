package deci

import (
	"math/big"
	"math/rand"
)

// rnd is the shared randomness source for this package's property tests,
// following db47h/decimal's dec_arith_test.go and dec_test.go, which drive
// their fuzz-style loops off a single package-level *rand.Rand.
var rnd = rand.New(rand.NewSource(1))

// rndWord returns a random digit in [0, Base).
func rndWord() Word {
	return Word(rnd.Int63n(int64(Base)))
}

// rndSpan returns a random span of n digits, not necessarily normalized.
func rndSpan(n int) []Word {
	v := make([]Word, n)
	for i := range v {
		v[i] = rndWord()
	}
	return v
}

// rndNormSpan returns a random normalized span of up to n digits.
func rndNormSpan(n int) []Word {
	return Normalize(rndSpan(n))
}

var bigBase = big.NewInt(int64(Base))

// bigFromSpan converts a little-endian Base-digit span to a math/big.Int,
// used throughout this package's tests as an independent oracle.
func bigFromSpan(a []Word) *big.Int {
	x := new(big.Int)
	for i := len(a) - 1; i >= 0; i-- {
		x.Mul(x, bigBase)
		x.Add(x, big.NewInt(int64(a[i])))
	}
	return x
}

// spanFromBig writes x (which must be >= 0) into a freshly allocated span of
// exactly n digits, zero-padded at the top.
func spanFromBig(x *big.Int, n int) []Word {
	v := make([]Word, n)
	y := new(big.Int).Set(x)
	for i := 0; i < n; i++ {
		m := new(big.Int)
		y.DivMod(y, bigBase, m)
		v[i] = Word(m.Int64())
	}
	return v
}

// digitsFor returns the minimum number of Base-digits needed to represent x.
func digitsFor(x *big.Int) int {
	if x.Sign() == 0 {
		return 0
	}
	n := 0
	y := new(big.Int).Set(x)
	for y.Sign() != 0 {
		y.Div(y, bigBase)
		n++
	}
	return n
}
