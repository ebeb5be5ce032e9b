package deci

// MulUword multiplies the span a by b in place and returns the carry word
// that overflowed past the top of a.
//
// Precondition: b < Base.
func MulUword(a []Word, b Word) (high Word) {
	if debugDeci && b >= Base {
		panic("deci: MulUword: b >= Base")
	}
	var mulCarry Word
	for i := range a {
		x := MulWW(a[i], b) + DoubleWord(mulCarry)
		a[i] = Word(x % DoubleWord(Base))
		mulCarry = Word(x / DoubleWord(Base))
	}
	return mulCarry
}

// AddScaled adds y*z to the span starting at x, in place.
//
// Precondition: x has room for len(z)+1 words, and if the add carries all
// the way out of that extra word, the words above it are < Base-1 so the
// carry can keep propagating (the same precondition db47h/decimal's
// mulAdd10VWW_g callers must satisfy for the schoolbook multiply in mul.go).
// z must be nonempty.
func AddScaled(x []Word, y Word, z []Word) {
	if debugDeci && len(z) == 0 {
		panic("deci: AddScaled: empty z")
	}
	var mulCarry Word
	var addCarry uint
	i := 0
	for {
		prod := MulWW(z[i], y) + DoubleWord(mulCarry)
		w := Word(prod % DoubleWord(Base))
		mulCarry = Word(prod / DoubleWord(Base))
		addCarry = Adc(&x[i], w, addCarry)
		i++
		if i == len(z) {
			break
		}
	}
	if mulCarry != 0 {
		addCarry = Adc(&x[i], mulCarry, addCarry)
		i++
	}
	if addCarry != 0 {
		for x[i] == Base-1 {
			x[i] = 0
			i++
		}
		x[i]++
	}
}

// SubScaledRaw subtracts y*z from x in place and returns the residual high
// borrow: the word that would need to be subtracted from x[len(x)], were it
// legal to access.
//
// Precondition: 0 <= len(x)-len(z) <= 1.
func SubScaledRaw(x []Word, y Word, z []Word) (borrowWord Word) {
	if debugDeci {
		d := len(x) - len(z)
		if d < 0 || d > 1 {
			panic("deci: SubScaledRaw: len(x)-len(z) out of range")
		}
	}
	var mulCarry Word
	var subBorrow uint
	for i := range z {
		prod := MulWW(z[i], y) + DoubleWord(mulCarry)
		r := Word(prod % DoubleWord(Base))
		mulCarry = Word(prod / DoubleWord(Base))
		subBorrow = Sbb(&x[i], r, subBorrow)
	}
	if len(x) == len(z) {
		return mulCarry + Word(subBorrow)
	}
	subBorrow = Sbb(&x[len(z)], mulCarry, subBorrow)
	return Word(subBorrow)
}
