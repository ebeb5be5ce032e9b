// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package deci implements the arbitrary-precision unsigned arithmetic kernel
that a higher-level bignum type is built on top of (see package bigint).

Unlike a conventional bignum package, deci does not own any memory: every
function in this package operates on a caller-supplied little-endian []Word
span, representing the value

	sum for i in [0, len(a)): a[i] * Base^i

A span is considered normalized if its most significant word is nonzero (or
the span is empty, representing zero). Normalization is never required for
storage, but is required by the divisor argument of the unsafe division
primitives; see DivmodUnsafe.

Values are stored in chunks of BaseLog decimal digits per Word, where Base is
1e9. All arithmetic is performed directly in base 1e9, without conversion
to or from binary, except where explicitly provided by the base-conversion
helpers (TobitsRound, FrombitsRound and friends), which shuttle values
between this decimal-word representation and a binary one, one machine word
at a time.

Notational convention, following math/big and db47h/decimal: spans are named
a, b, x, y, z, r and so on; a function never allocates and always writes its
result in place into a caller-provided span, usually the first argument.
Carry, borrow and "negated" flags are returned in-band as booleans or Words
rather than through panics or errors; see the precondition notes on each
function for what is, and is not, checked at runtime.

This package is reentrant and allocates nothing. Aliasing is restricted on a
per-function basis — most notably, Mul's output span must not overlap either
input, while DivmodUnsafe's quotient storage intentionally aliases the
dividend. All dynamic storage, decimal-text parsing and printing live in
package bigint; cmd/deci exercises both as a line-based protocol driver.
*/
package deci
