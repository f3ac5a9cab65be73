package bigint

import (
	"encoding/binary"

	"github.com/agbru/bigint/internal/alloc"
	"github.com/agbru/bigint/internal/magnitude"
)

// Signed is a two's-complement big integer over a little-endian byte
// buffer. Capacity always equals the significant size — there is no
// spare growth room — and bit 7 of the last byte is the sign bit.
type Signed struct {
	data []byte
}

// NewSigned allocates a zero-filled value of the given byte size,
// representing the numeral zero. A size of zero (or less) yields an
// empty value.
func NewSigned(size int) Signed {
	if size <= 0 {
		return Signed{}
	}
	return Signed{data: alloc.AllocZero(size)}
}

// FromInt8 constructs a one-byte value holding v.
func FromInt8(v int8) Signed {
	buf := alloc.Alloc(1)
	buf[0] = byte(v)
	return Signed{data: buf}
}

// FromInt16 constructs a two-byte value holding v, little-endian.
func FromInt16(v int16) Signed {
	buf := alloc.Alloc(2)
	binary.LittleEndian.PutUint16(buf, uint16(v))
	return Signed{data: buf}
}

// FromInt32 constructs a four-byte value holding v, little-endian.
func FromInt32(v int32) Signed {
	buf := alloc.Alloc(4)
	binary.LittleEndian.PutUint32(buf, uint32(v))
	return Signed{data: buf}
}

// FromInt64 constructs an eight-byte value holding v, little-endian.
func FromInt64(v int64) Signed {
	buf := alloc.Alloc(8)
	binary.LittleEndian.PutUint64(buf, uint64(v))
	return Signed{data: buf}
}

// Dup deep-copies x into a fresh buffer trimmed to its significant
// length, scanning from the most significant byte downward. A zero byte
// over a byte with its top bit set is sign-relevant and is kept:
// dropping it would flip a positive value negative. A nonempty value
// never trims below one byte.
func (x Signed) Dup() Signed {
	n := len(x.data)
	if n == 0 {
		return Signed{}
	}
	for n > 1 && x.data[n-1] == 0 && x.data[n-2]&0x80 == 0 {
		n--
	}
	buf := alloc.Alloc(n)
	copy(buf, x.data[:n])
	return Signed{data: buf}
}

// Free releases x's buffer. Freeing an empty value is a no-op. The
// handle must not be used afterwards.
func (x Signed) Free() {
	alloc.Free(x.data)
}

// Zero overwrites every byte with zero in place, preserving the size,
// and returns the value occupying the same buffer.
func (x Signed) Zero() Signed {
	clear(x.data)
	return x
}

// Size returns the byte size, which is also the capacity.
func (x Signed) Size() int { return len(x.data) }

// Bytes returns the underlying bytes, least significant first. The
// slice shares x's storage and must be treated as read-only.
func (x Signed) Bytes() []byte { return x.data }

// negative reports the sign bit. Empty values read as non-negative.
func (x Signed) negative() bool {
	n := len(x.data)
	return n > 0 && x.data[n-1]&0x80 != 0
}

// extByte is the virtual byte extending x beyond its size in
// two's-complement arithmetic.
func (x Signed) extByte() byte {
	if x.negative() {
		return 0xFF
	}
	return 0
}

// Equal reports whether x and y hold identical representations:
// Undefined when either is empty, False when the sizes differ (no
// numeric normalization; Dup first to compare values of different
// provenance), and otherwise a byte-for-byte comparison.
func (x Signed) Equal(y Signed) Tristate {
	if len(x.data) == 0 || len(y.data) == 0 {
		return Undefined
	}
	if len(x.data) != len(y.data) {
		return False
	}
	for i := range x.data {
		if x.data[i] != y.data[i] {
			return False
		}
	}
	return True
}

// Greater reports whether x > y, Undefined when either operand is
// empty.
func (x Signed) Greater(y Signed) Tristate {
	return x.ordered(y, false)
}

// GreaterEqual reports whether x >= y, Undefined when either operand is
// empty.
func (x Signed) GreaterEqual(y Signed) Tristate {
	return x.ordered(y, true)
}

// ordered implements the signed comparison: differing signs decide
// outright, equal signs fall through to a magnitude comparison with the
// sign bits masked out of the reads (the operands are never mutated)
// and the polarity of the decision inverted when both are negative.
func (x Signed) ordered(y Signed, orEqual bool) Tristate {
	if len(x.data) == 0 || len(y.data) == 0 {
		return Undefined
	}
	xNeg, yNeg := x.negative(), y.negative()
	if xNeg != yNeg {
		return tristate(yNeg)
	}
	c := cmpMasked(x.data, y.data)
	if c == 0 {
		return tristate(orEqual)
	}
	return tristate((c > 0) != xNeg)
}

// maskedByte reads byte i of w with the sign bit masked off the top
// byte, giving a non-destructive view of the magnitude field.
func maskedByte(w []byte, i int) byte {
	b := w[i]
	if i == len(w)-1 {
		b &= 0x7F
	}
	return b
}

// cmpMasked compares the sign-masked magnitudes of two windows: the
// excess high-order bytes of the longer window decide first if any is
// nonzero, then the overlap is walked from most to least significant.
func cmpMasked(a, b []byte) int {
	al := len(a)
	for al > 0 && maskedByte(a, al-1) == 0 {
		al--
	}
	bl := len(b)
	for bl > 0 && maskedByte(b, bl-1) == 0 {
		bl--
	}
	if al != bl {
		if al < bl {
			return -1
		}
		return 1
	}
	for i := al - 1; i >= 0; i-- {
		av, bv := maskedByte(a, i), maskedByte(b, i)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
	}
	return 0
}

// Add adds y to x in two's complement, consuming x's buffer. The shorter
// operand is virtually sign-extended; overflow is the two's-complement
// condition (operands agree in sign, result does not), or truncation of
// significant bytes of a wider y.
func (x Signed) Add(y Signed) (Signed, bool) {
	overflow := magnitude.AddExt(x.data, y.data, y.extByte())
	return x, overflow
}

// Sub subtracts y from x in two's complement, consuming x's buffer, with
// the matching overflow condition.
func (x Signed) Sub(y Signed) (Signed, bool) {
	overflow := magnitude.SubExt(x.data, y.data, y.extByte())
	return x, overflow
}

// Mul multiplies x by y, consuming x's buffer. The product is computed
// on the operand magnitudes and re-signed, so overflow is both product
// bytes beyond the capacity and a magnitude that does not fit beside the
// sign bit. An empty multiplier has no digits and multiplies as zero.
func (x Signed) Mul(y Signed) (Signed, bool) {
	n := len(x.data)
	if n == 0 {
		return x, false
	}
	if len(y.data) == 0 {
		clear(x.data)
		return x, false
	}
	negR := x.negative() != y.negative()
	ay := absWindow(y.data)
	copy(x.data, absWindow(x.data))
	_, overflow := magnitude.MulInto(x.data, n, ay)
	overflow = overflow || !fitsSigned(x.data, negR)
	if negR {
		magnitude.Neg(x.data)
	}
	return x, overflow
}

// Div divides x by y, consuming both buffers: the quotient reuses x's,
// the remainder reuses y's. The quotient truncates toward zero and the
// remainder takes the dividend's sign. Division by zero (or by an empty
// value) returns ErrDivideByZero and the results are only good for Free.
func (x Signed) Div(y Signed) (quot, rem Signed, err error) {
	if magnitude.IsZero(y.data) {
		return x, y, ErrDivideByZero
	}
	negX, negY := x.negative(), y.negative()
	u := absWindow(x.data)
	v := absWindow(y.data)
	magnitude.DivMod(x.data, y.data, u, v)
	if negX != negY {
		magnitude.Neg(x.data)
	}
	if negX {
		magnitude.Neg(y.data)
	}
	return x, Signed{data: y.data}, nil
}

// Pow raises x to the power y, consuming x's buffer. A negative exponent
// truncates the fractional mathematical result to zero. Overflow is
// sticky across intermediate products.
func (x Signed) Pow(y Signed) (Signed, bool) {
	n := len(x.data)
	if n == 0 {
		return x, false
	}
	if y.negative() {
		clear(x.data)
		return x, false
	}
	base := absWindow(x.data)
	result := make([]byte, n)
	result[0] = 1

	var overflow bool
	for i := magnitude.SigLen(y.data)*8 - 1; i >= 0; i-- {
		_, o := magnitude.MulInto(result, n, result)
		overflow = overflow || o
		if magnitude.Bit(y.data, i) == 1 {
			_, o = magnitude.MulInto(result, n, base)
			overflow = overflow || o
		}
	}
	negR := x.negative() && magnitude.Bit(y.data, 0) == 1
	overflow = overflow || !fitsSigned(result, negR)
	if negR {
		magnitude.Neg(result)
	}
	copy(x.data, result)
	return x, overflow
}

// Sqrt computes the integer square root of x, consuming x's buffer for
// the root. The remainder x − root² comes back in a freshly allocated
// buffer of the same size. A negative x returns ErrNegativeRoot and the
// results are only good for Free.
func (x Signed) Sqrt() (root, rem Signed, err error) {
	if x.negative() {
		return x, Signed{}, ErrNegativeRoot
	}
	if len(x.data) == 0 {
		return x, Signed{}, nil
	}
	u := make([]byte, len(x.data))
	copy(u, x.data)
	remBuf := alloc.Alloc(len(x.data))
	magnitude.SqrtInto(x.data, remBuf, u)
	return x, Signed{data: remBuf}, nil
}

// Cbrt computes the integer cube root of x, consuming x's buffer. The
// remainder slot of the shared result shape is always the empty value.
// A negative x returns ErrNegativeRoot.
func (x Signed) Cbrt() (root, rem Signed, err error) {
	if x.negative() {
		return x, Signed{}, ErrNegativeRoot
	}
	if len(x.data) == 0 {
		return x, Signed{}, nil
	}
	u := make([]byte, len(x.data))
	copy(u, x.data)
	magnitude.CbrtInto(x.data, u)
	return x, Signed{}, nil
}

// Or bitwise-ORs y into x, consuming x's buffer. Bytes beyond y's size
// read as zero. The sign bit is combined like any other bit; the result
// may change sign.
func (x Signed) Or(y Signed) Signed {
	for i := 0; i < len(x.data) && i < len(y.data); i++ {
		x.data[i] |= y.data[i]
	}
	return x
}

// And bitwise-ANDs y into x, consuming x's buffer. Bytes beyond y's size
// read as zero. The sign bit is not preserved.
func (x Signed) And(y Signed) Signed {
	for i := 0; i < len(x.data); i++ {
		var yv byte
		if i < len(y.data) {
			yv = y.data[i]
		}
		x.data[i] &= yv
	}
	return x
}

// Xor bitwise-XORs y into x, consuming x's buffer. Bytes beyond y's size
// read as zero. The sign bit is not preserved.
func (x Signed) Xor(y Signed) Signed {
	for i := 0; i < len(x.data) && i < len(y.data); i++ {
		x.data[i] ^= y.data[i]
	}
	return x
}

// Not complements every byte of x, consuming x's buffer. The sign bit is
// complemented along with the rest.
func (x Signed) Not() Signed {
	magnitude.Not(x.data)
	return x
}

// Shl logically shifts x left by n bits, zero-filling the vacated low
// bits. Bits pushed past the top — the sign bit included — are silently
// discarded.
func (x Signed) Shl(n uint) Signed {
	magnitude.Shl(x.data, n)
	return x
}

// Shr logically shifts x right by n bits, zero-filling the vacated high
// bits without regard for the sign.
func (x Signed) Shr(n uint) Signed {
	magnitude.Shr(x.data, n)
	return x
}

// Sar arithmetically shifts x right by n bits, filling the vacated high
// bits with copies of the original sign bit.
func (x Signed) Sar(n uint) Signed {
	magnitude.Asr(x.data, n)
	return x
}

// Rotl rotates x left by n bits within its 8·Size()-bit width.
func (x Signed) Rotl(n uint) Signed {
	magnitude.Rotl(x.data, n)
	return x
}

// Rotr rotates x right by n bits within its 8·Size()-bit width.
func (x Signed) Rotr(n uint) Signed {
	magnitude.Rotr(x.data, n)
	return x
}

// LeadingZeros counts zero bits from the most significant bit down. The
// count only means something relative to Size(); contextualizing it is
// the caller's job.
func (x Signed) LeadingZeros() uint {
	return magnitude.LeadingZeros(x.data)
}

// TrailingZeros counts zero bits from the least significant bit up.
func (x Signed) TrailingZeros() uint {
	return magnitude.TrailingZeros(x.data)
}

// OnesCount counts the set bits. Subtracting from 8·Size() gives the
// zero count.
func (x Signed) OnesCount() uint {
	return magnitude.OnesCount(x.data)
}

// absWindow returns a scratch copy of the window holding its absolute
// value as a plain magnitude.
func absWindow(w []byte) []byte {
	out := make([]byte, len(w))
	copy(out, w)
	if len(w) > 0 && w[len(w)-1]&0x80 != 0 {
		magnitude.Neg(out)
	}
	return out
}

// fitsSigned reports whether the magnitude in w is representable as a
// two's-complement value of the same width with the sign neg: positive
// magnitudes must leave the top bit clear, negative ones may reach
// exactly 2^(8n-1).
func fitsSigned(w []byte, neg bool) bool {
	n := len(w)
	if n == 0 || w[n-1]&0x80 == 0 {
		return true
	}
	if !neg {
		return false
	}
	if w[n-1] != 0x80 {
		return false
	}
	for i := 0; i < n-1; i++ {
		if w[i] != 0 {
			return false
		}
	}
	return true
}
