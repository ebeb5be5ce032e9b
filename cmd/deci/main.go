// Command deci is the reference driver for package deci's arithmetic
// kernel: a line-based textual protocol over standard input/output, used to
// exercise the kernel and package bigint from outside Go (see
// tests/driver.c in the original library this protocol is ported from).
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	deci "github.com/shdown/libdeci"
	"github.com/shdown/libdeci/bigint"
)

// errNoSubcommand is root's RunE error when invoked with no subcommand at
// all (mirrors the original driver's `argc != 2` check for the "no position
// argument" case). Cobra itself rejects an unrecognized subcommand name or
// any extra position argument on a known one via each command's Args
// validator, so argument counting doesn't need to happen by hand here —
// which is what lets a subcommand's own flags (e.g. interact's --debug)
// coexist with that count.
var errNoSubcommand = errors.New("expected a subcommand: wordbits or interact")

func main() {
	var debug bool

	root := &cobra.Command{
		Use:           "deci",
		Short:         "Driver for the deci arbitrary-precision arithmetic kernel",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errNoSubcommand
		},
	}

	wordbitsCmd := &cobra.Command{
		Use:   "wordbits",
		Short: "Print the number of bits per kernel word and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(deci.WordBits)
			return nil
		},
	}

	interactCmd := &cobra.Command{
		Use:   "interact",
		Short: "Run one interactive transaction over stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runInteract(os.Stdin, os.Stdout, debug)
			return nil
		},
	}
	interactCmd.Flags().BoolVar(&debug, "debug", false, "print extra per-operation span-length diagnostics to stderr")

	root.AddCommand(wordbitsCmd, interactCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		printUsage(os.Args[0])
		os.Exit(2)
	}
}

func printUsage(me string) {
	if me == "" {
		me = "deci"
	}
	fmt.Fprintf(os.Stderr, "USAGE: %s wordbits\n", me)
	fmt.Fprintf(os.Stderr, "       %s interact\n", me)
}

// runInteract performs exactly one transaction: it reads one operation line
// and its associated operand lines, and writes the result. Contract
// violations the protocol treats as fatal (empty/malformed numbers, zero or
// too-short divisors, word overflow) panic, matching the original driver's
// abort() on the same conditions; an unrecognized operation symbol is the
// one case the protocol calls out as a plain exit 1.
func runInteract(r io.Reader, w io.Writer, debug bool) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<24)

	action := readLine(sc)
	if len(action) == 0 {
		invalidSymbol(0)
	}

	log := func(format string, args ...any) {
		if debug {
			fmt.Fprintf(os.Stderr, "deci: "+format+"\n", args...)
		}
	}

	switch action[0] {
	case '+':
		a, b := readBigInt(sc), readBigInt(sc)
		log("+ len(a)=%d len(b)=%d", len(a.Bits()), len(b.Bits()))
		writeInt(w, new(bigint.Int).Add(a, b))

	case '-':
		a, b := readBigInt(sc), readBigInt(sc)
		log("- len(a)=%d len(b)=%d", len(a.Bits()), len(b.Bits()))
		z, neg := new(bigint.Int).Sub(a, b)
		writeSigned(w, z, neg)

	case '1':
		if len(action) < 2 {
			invalidSymbol1(action)
		}
		switch action[1] {
		case '*':
			a, bw := readBigInt(sc), readWord(sc)
			log("1* len(a)=%d b=%d", len(a.Bits()), bw)
			writeInt(w, new(bigint.Int).MulWord(a, bw))

		case 'd':
			a, bw := readBigInt(sc), readWord(sc)
			checkDivisorWord(bw)
			log("1d len(a)=%d b=%d", len(a.Bits()), bw)
			q := new(bigint.Int)
			_, rem := q.DivModWord(a, bw)
			writeInt(w, q)
			writeWord(w, rem)

		case '%':
			a, bw := readBigInt(sc), readWord(sc)
			checkDivisorWord(bw)
			log("1%% len(a)=%d b=%d", len(a.Bits()), bw)
			writeWord(w, a.ModWord(bw))

		default:
			invalidSymbol1(action)
		}

	case '*':
		a, b := readBigInt(sc), readBigInt(sc)
		log("* len(a)=%d len(b)=%d", len(a.Bits()), len(b.Bits()))
		writeInt(w, new(bigint.Int).Mul(a, b))

	case 'd':
		a, b := readBigInt(sc), readBigInt(sc)
		checkDivisor(b, 2)
		log("d len(a)=%d len(b)=%d", len(a.Bits()), len(b.Bits()))
		q, rem := new(bigint.Int), new(bigint.Int)
		q.DivMod(a, b, rem)
		writeInt(w, q)
		writeInt(w, rem)

	case '/':
		a, b := readBigInt(sc), readBigInt(sc)
		checkDivisor(b, 1)
		log("/ len(a)=%d len(b)=%d", len(a.Bits()), len(b.Bits()))
		writeInt(w, new(bigint.Int).Div(a, b))

	case '%':
		a, b := readBigInt(sc), readBigInt(sc)
		checkDivisor(b, 1)
		log("%% len(a)=%d len(b)=%d", len(a.Bits()), len(b.Bits()))
		writeInt(w, new(bigint.Int).Mod(a, b))

	case '?':
		a, b := readBigInt(sc), readBigInt(sc)
		log("? len(a)=%d len(b)=%d", len(a.Bits()), len(b.Bits()))
		fmt.Fprintln(w, cmpSymbol(a.Cmp(b)))

	case 't':
		a := readBigInt(sc)
		log("t len(a)=%d", len(a.Bits()))
		tobits(w, a)

	case 'T':
		a := readBigInt(sc)
		log("T len(a)=%d", len(a.Bits()))
		longTobits(w, a)

	case 'f':
		a := readBigInt(sc)
		n := readWord(sc)
		log("f len(a)=%d n=%d", len(a.Bits()), n)
		frombits(w, a, n)

	default:
		invalidSymbol(action[0])
	}
}

// readLine reads one line, stripping a trailing '\n' the way getline()
// would; an unexpected EOF (or scanner error) is the same fatal condition
// x_read_line's getline() failure is in the original driver.
func readLine(sc *bufio.Scanner) string {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		} else {
			fmt.Fprintln(os.Stderr, "Unexpected EOF.")
		}
		panic("deci: unexpected EOF reading driver input")
	}
	return sc.Text()
}

func validateDigits(s string) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			fmt.Fprintf(os.Stderr, "Expected digit, found '%c'\n", s[i])
			panic("deci: non-digit character in driver input")
		}
	}
}

// readBigInt reads one decimal bigint line, mirroring x_read_bigint's
// reject-empty-line, reject-non-digit checks.
func readBigInt(sc *bufio.Scanner) *bigint.Int {
	s := readLine(sc)
	if s == "" {
		fmt.Fprintln(os.Stderr, "Expected number, found empty line.")
		panic("deci: empty bigint line")
	}
	validateDigits(s)
	z, ok := new(bigint.Int).SetString(s)
	if !ok {
		panic("deci: SetString rejected an already-validated digit string")
	}
	return z
}

// readWord reads one single-word decimal line, mirroring x_read_word's
// length bound (a word never has more than BaseLog digits).
func readWord(sc *bufio.Scanner) deci.Word {
	s := readLine(sc)
	if s == "" || len(s) > deci.BaseLog {
		fmt.Fprintf(os.Stderr, "Expected single-word number, found line of length %d.\n", len(s))
		panic("deci: single-word line out of range")
	}
	validateDigits(s)
	var word deci.Word
	for i := 0; i < len(s); i++ {
		word = word*10 + deci.Word(s[i]-'0')
	}
	return word
}

func writeInt(w io.Writer, z *bigint.Int) {
	fmt.Fprintln(w, z.String())
}

// writeSigned prints z's decimal text, prefixed with '-' when neg is set —
// except for zero, which is never signed, mirroring write_span's behavior of
// testing the normalized length before considering the sign.
func writeSigned(w io.Writer, z *bigint.Int, neg bool) {
	s := z.String()
	if neg && s != "0" {
		fmt.Fprint(w, "-")
	}
	fmt.Fprintln(w, s)
}

func writeWord(w io.Writer, x deci.Word) {
	fmt.Fprintln(w, x)
}

func writeDoubleWord(w io.Writer, x deci.DoubleWord) {
	fmt.Fprintln(w, x)
}

func cmpSymbol(c int) string {
	switch {
	case c < 0:
		return "<"
	case c > 0:
		return ">"
	default:
		return "="
	}
}

func checkDivisorWord(b deci.Word) {
	if b == 0 {
		fmt.Fprintln(os.Stderr, "Division by zero.")
		panic("deci: division by zero")
	}
}

func checkDivisor(b *bigint.Int, minWords int) {
	n := len(b.Bits())
	if n < minWords {
		fmt.Fprintf(os.Stderr, "Division by %d-word number (expected at least %d).\n", n, minWords)
		panic("deci: divisor too short")
	}
}

func invalidSymbol(c byte) {
	fmt.Fprintf(os.Stderr, "First line starts with invalid symbol: '%c'\n", c)
	os.Exit(1)
}

func invalidSymbol1(action string) {
	second := byte(0)
	if len(action) > 1 {
		second = action[1]
	}
	fmt.Fprintf(os.Stderr, "First line starts with invalid sequence: '1%c'\n", second)
	os.Exit(1)
}

// tobits prints successive TobitsRound remainders until the span reaches
// zero, reproducing the driver's 't' do-while loop verbatim.
func tobits(w io.Writer, a *bigint.Int) {
	d := append([]deci.Word(nil), a.Bits()...)
	for {
		writeWord(w, deci.TobitsRound(d))
		d = deci.Normalize(d)
		if len(d) == 0 {
			break
		}
	}
}

// longTobits is tobits' double-word counterpart for the 'T' command.
func longTobits(w io.Writer, a *bigint.Int) {
	bits := a.Bits()
	packed := make([]deci.DoubleWord, (len(bits)+1)/2)
	deci.ToLong(bits, packed)
	for {
		writeDoubleWord(w, deci.LongTobitsRound(packed))
		packed = normalizeDoubleWords(packed)
		if len(packed) == 0 {
			break
		}
	}
}

func normalizeDoubleWords(d []deci.DoubleWord) []deci.DoubleWord {
	n := len(d)
	for n > 0 && d[n-1] == 0 {
		n--
	}
	return d[:n]
}

// frombits prints n successive FrombitsRound results, reproducing the
// driver's 'f' loop: it shifts the same fixed-width span left in place each
// round and prints only the overflowed carry, never re-folding it back in.
func frombits(w io.Writer, a *bigint.Int, n deci.Word) {
	d := append([]deci.Word(nil), a.Bits()...)
	for ; n != 0; n-- {
		writeWord(w, deci.FrombitsRound(d))
	}
}
