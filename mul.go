package deci

// Mul multiplies a by b, writing the result into out.
//
// Precondition: out is zeroed and len(out) == len(a)+len(b); out does not
// alias either input.
//
// Schoolbook: for each digit of the shorter operand, AddScaled folds in that
// digit's contribution at the right offset, giving Θ(len(a)*len(b)).
func Mul(a, b, out []Word) {
	if debugDeci {
		if len(out) != len(a)+len(b) {
			panic("deci: Mul: len(out) != len(a)+len(b)")
		}
		if alias(out, a) || alias(out, b) {
			panic("deci: Mul: out aliases an input")
		}
	}
	// Loop below is written for a short outer span and a long inner one;
	// swap so a is never the shorter.
	if len(a) < len(b) {
		a, b = b, a
	}
	for j := range b {
		AddScaled(out[j:], b[j], a)
	}
}

// alias reports whether x and y share the same backing array, following
// math/big's nat.alias: comparing the addresses of the last element of each
// slice's full capacity is enough to detect a shared backing array without
// requiring unsafe pointer arithmetic.
func alias(x, y []Word) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}
