// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bigint is the growable-storage collaborator the deci kernel
// assumes exists: it owns allocation, decimal text conversion, and argument
// normalization around the pure span functions in package deci, the same
// division of labor db47h/decimal draws between its dec primitives and the
// allocating Decimal type built on top of them.
package bigint

import (
	"fmt"
	"strings"

	"github.com/shdown/libdeci"
)

// ErrDivByZero is the sentinel panicked by Div, Mod, DivMod, DivModWord and
// ModWord when given a zero divisor. It mirrors decimal.ErrNaN: a named,
// inspectable exceptional value instead of a bare errors.New string.
type ErrDivByZero struct{}

func (ErrDivByZero) Error() string { return "bigint: division by zero" }

// Int is an arbitrary-precision unsigned integer: a growable little-endian
// deci.Word span plus the bookkeeping to reuse its backing array across
// operations, the same role dec plays under decimal.Decimal's mant field.
//
// The zero value of Int represents 0 and is ready to use.
type Int struct {
	d []deci.Word
}

// bits returns x's normalized digit span, sharing storage with x.
func (x *Int) bits() []deci.Word {
	if x == nil {
		return nil
	}
	return x.d
}

// make returns a span of length n backed by z's storage, reusing it when
// it has enough capacity and over-allocating modestly otherwise — the same
// policy as db47h/decimal's dec.make, tuned for the same workload (most
// Ints start small and stay that way).
func (z *Int) make(n int) []deci.Word {
	if n <= cap(z.d) {
		return z.d[:n]
	}
	const extra = 4
	return make([]deci.Word, n, n+extra)
}

// set overwrites z with a copy of x's digits and returns z.
func (z *Int) set(x []deci.Word) *Int {
	z.d = z.make(len(x))
	copy(z.d, x)
	return z
}

// SetUint64 sets z to x and returns z.
func (z *Int) SetUint64(x uint64) *Int {
	if x == 0 {
		z.d = z.d[:0]
		return z
	}
	z.d = z.make(3)
	for i := range z.d {
		z.d[i] = deci.Word(x % uint64(deci.Base))
		x /= uint64(deci.Base)
	}
	z.d = deci.Normalize(z.d)
	return z
}

// NewInt allocates and returns a new Int set to x.
func NewInt(x uint64) *Int {
	return new(Int).SetUint64(x)
}

// SetString sets z to the value of s, which must be a sequence of ASCII
// decimal digits (optional leading zeros allowed; the empty string reads as
// 0), and returns z and true. If s is not of that form, SetString returns nil
// and false, leaving z unchanged.
//
// Grounded on the original library's x_parse_span/x_parse_word test-driver
// helpers: chunk the string into deci.BaseLog-digit groups from the right,
// parsing each into one Word.
func (z *Int) SetString(s string) (*Int, bool) {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		z.d = z.d[:0]
		return z, true
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, false
		}
	}
	n := len(s)
	nwords := n / deci.BaseLog
	if n%deci.BaseLog != 0 {
		nwords++
	}
	d := z.make(nwords)
	j := 0
	i := n
	for ; i >= deci.BaseLog; i -= deci.BaseLog {
		d[j] = parseWord(s[i-deci.BaseLog : i])
		j++
	}
	if i > 0 {
		d[j] = parseWord(s[:i])
	}
	z.d = d
	return z, true
}

func parseWord(s string) deci.Word {
	var w deci.Word
	for i := 0; i < len(s); i++ {
		w = w*10 + deci.Word(s[i]-'0')
	}
	return w
}

// String returns the decimal text representation of x.
//
// Grounded on the original library's write_span test-driver helper: print
// the most significant digit plain, then every lower digit zero-padded to
// deci.BaseLog characters.
func (x *Int) String() string {
	d := x.bits()
	if len(d) == 0 {
		return "0"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d", d[len(d)-1])
	for i := len(d) - 2; i >= 0; i-- {
		fmt.Fprintf(&b, "%0*d", deci.BaseLog, d[i])
	}
	return b.String()
}

// Sign reports whether x is zero (0) or strictly positive (+1); Int never
// holds a negative value (sign is the caller's concern, per the kernel's own
// scope — see deci.Sub).
func (x *Int) Sign() int {
	if len(x.bits()) == 0 {
		return 0
	}
	return 1
}

// Cmp compares x and y and returns -1, 0, or +1 as x <, ==, or > y.
func (x *Int) Cmp(y *Int) int {
	a, b := x.bits(), y.bits()
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return deci.CompareN(a, b, -1, 0, 1)
}

// Add sets z to x+y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	a, b := x.bits(), y.bits()
	if len(a) < len(b) {
		a, b = b, a
	}
	d := make([]deci.Word, len(a))
	copy(d, a)
	if deci.Add(d, b) {
		d = append(d, 1)
	}
	z.d = d
	return z
}

// Sub sets z to |x-y| and returns z along with whether the true result is
// negative, mirroring deci.Sub's (negated bool) contract one level up.
func (z *Int) Sub(x, y *Int) (zz *Int, negated bool) {
	a, b := x.bits(), y.bits()
	if len(a) < len(b) {
		a, b = b, a
		negated = true
	}
	d := make([]deci.Word, len(a))
	copy(d, a)
	if deci.Sub(d, b) {
		negated = !negated
	}
	z.d = deci.Normalize(d)
	return z, negated
}

// Mul sets z to x*y and returns z.
func (z *Int) Mul(x, y *Int) *Int {
	a, b := x.bits(), y.bits()
	out := make([]deci.Word, len(a)+len(b))
	deci.Mul(a, b, out)
	z.d = deci.Normalize(out)
	return z
}

// MulWord sets z to x*y, where y is a single deci.Word (0 <= y < deci.Base),
// and returns z.
func (z *Int) MulWord(x *Int, y deci.Word) *Int {
	a := x.bits()
	d := make([]deci.Word, len(a)+1)
	copy(d, a)
	d[len(a)] = deci.MulUword(d[:len(a)], y)
	z.d = deci.Normalize(d)
	return z
}

// Div sets z to x/y and returns z. It panics with ErrDivByZero if y is zero.
func (z *Int) Div(x, y *Int) *Int {
	if y.Sign() == 0 {
		panic(ErrDivByZero{})
	}
	a := append([]deci.Word(nil), x.bits()...)
	qLen := deci.Div(a, y.bits())
	z.d = deci.Normalize(a[:qLen])
	return z
}

// Mod sets z to x%y and returns z. It panics with ErrDivByZero if y is zero.
func (z *Int) Mod(x, y *Int) *Int {
	if y.Sign() == 0 {
		panic(ErrDivByZero{})
	}
	a := append([]deci.Word(nil), x.bits()...)
	rLen := deci.Mod(a, y.bits())
	z.d = deci.Normalize(a[:rLen])
	return z
}

// DivMod sets z to the quotient and r to the remainder of x/y, and returns
// (z, r). It panics with ErrDivByZero if y is zero.
func (z *Int) DivMod(x, y *Int, r *Int) (*Int, *Int) {
	if y.Sign() == 0 {
		panic(ErrDivByZero{})
	}
	b := y.bits()

	quot := append([]deci.Word(nil), x.bits()...)
	qLen := deci.Div(quot, b)

	rem := append([]deci.Word(nil), x.bits()...)
	rLen := deci.Mod(rem, b)

	z.d = deci.Normalize(quot[:qLen])
	r.d = deci.Normalize(rem[:rLen])
	return z, r
}

// DivModWord divides x by y (0 < y < deci.Base), setting z to the quotient
// and returning the remainder. It panics with ErrDivByZero if y is zero.
func (z *Int) DivModWord(x *Int, y deci.Word) (q *Int, r deci.Word) {
	if y == 0 {
		panic(ErrDivByZero{})
	}
	z.set(x.bits())
	r = deci.DivModUword(z.d, y)
	z.d = deci.Normalize(z.d)
	return z, r
}

// ModWord returns x%y without modifying x. It panics with ErrDivByZero if y
// is zero.
func (x *Int) ModWord(y deci.Word) deci.Word {
	if y == 0 {
		panic(ErrDivByZero{})
	}
	return deci.ModUword(x.bits(), y)
}

// Bits returns x's raw little-endian digit span, for callers (tests, the
// cmd/deci driver's t/T/f commands) that need direct access to the kernel
// representation. The returned slice shares storage with x; callers must
// copy it out before mutating, mirroring Decimal.BitsExp's documented
// caveat.
func (x *Int) Bits() []deci.Word {
	return x.bits()
}

// SetBits sets z's digit span directly to a copy of d, without requiring d
// be normalized, and returns z.
func (z *Int) SetBits(d []deci.Word) *Int {
	z.d = deci.Normalize(z.set(d).d)
	return z
}
