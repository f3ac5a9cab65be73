package bigint

import (
	"encoding/binary"

	"github.com/agbru/bigint/internal/alloc"
	"github.com/agbru/bigint/internal/magnitude"
)

// Unsigned is a magnitude-only big integer over a little-endian byte
// buffer. The buffer length is the capacity; sz counts the significant
// low-order bytes. Bytes between sz and the capacity are reserved growth
// room with unspecified contents.
type Unsigned struct {
	data []byte
	sz   int
}

// NewUnsigned allocates a zero-filled value of the given byte capacity,
// representing the numeral zero across all of it. A capacity of zero (or
// less) yields an empty value.
func NewUnsigned(capacity int) Unsigned {
	if capacity <= 0 {
		return Unsigned{}
	}
	return Unsigned{data: alloc.AllocZero(capacity), sz: capacity}
}

// FromUint8 constructs a one-byte value holding v.
func FromUint8(v uint8) Unsigned {
	buf := alloc.Alloc(1)
	buf[0] = v
	return Unsigned{data: buf, sz: 1}
}

// FromUint16 constructs a two-byte value holding v, little-endian.
func FromUint16(v uint16) Unsigned {
	buf := alloc.Alloc(2)
	binary.LittleEndian.PutUint16(buf, v)
	return Unsigned{data: buf, sz: 2}
}

// FromUint32 constructs a four-byte value holding v, little-endian.
func FromUint32(v uint32) Unsigned {
	buf := alloc.Alloc(4)
	binary.LittleEndian.PutUint32(buf, v)
	return Unsigned{data: buf, sz: 4}
}

// FromUint64 constructs an eight-byte value holding v, little-endian.
func FromUint64(v uint64) Unsigned {
	buf := alloc.Alloc(8)
	binary.LittleEndian.PutUint64(buf, v)
	return Unsigned{data: buf, sz: 8}
}

// Dup deep-copies x into a fresh buffer trimmed to x's significant
// length, so the duplicate's capacity carries no spare room. A nonempty
// value never trims below one byte: the numeral zero stays a defined
// value. The duplicate's lifetime is independent of x.
func (x Unsigned) Dup() Unsigned {
	if x.sz == 0 {
		return Unsigned{}
	}
	n := magnitude.SigLen(x.window())
	if n == 0 {
		n = 1
	}
	buf := alloc.Alloc(n)
	copy(buf, x.data[:n])
	return Unsigned{data: buf, sz: n}
}

// Free releases x's buffer. Freeing an empty value is a no-op. The
// handle must not be used afterwards.
func (x Unsigned) Free() {
	alloc.Free(x.data)
}

// Zero overwrites every capacity byte with zero in place, preserving
// size and capacity, and returns the value occupying the same buffer.
func (x Unsigned) Zero() Unsigned {
	clear(x.data)
	return x
}

// Size returns the number of significant bytes.
func (x Unsigned) Size() int { return x.sz }

// Cap returns the total buffer capacity in bytes.
func (x Unsigned) Cap() int { return len(x.data) }

// Bytes returns the significant bytes, least significant first. The
// slice shares x's storage and must be treated as read-only.
func (x Unsigned) Bytes() []byte { return x.window() }

// window is the significant region of the buffer.
func (x Unsigned) window() []byte { return x.data[:x.sz] }

// Equal reports whether x and y hold identical representations:
// Undefined when either is empty, False when the sizes differ (there is
// no numeric normalization across sizes; Dup first to compare values of
// different provenance), and otherwise a byte-for-byte comparison.
func (x Unsigned) Equal(y Unsigned) Tristate {
	if x.sz == 0 || y.sz == 0 {
		return Undefined
	}
	if x.sz != y.sz {
		return False
	}
	for i := 0; i < x.sz; i++ {
		if x.data[i] != y.data[i] {
			return False
		}
	}
	return True
}

// Greater reports whether x > y as magnitudes, Undefined when either
// operand is empty.
func (x Unsigned) Greater(y Unsigned) Tristate {
	return x.ordered(y, false)
}

// GreaterEqual reports whether x >= y as magnitudes, Undefined when
// either operand is empty.
func (x Unsigned) GreaterEqual(y Unsigned) Tristate {
	return x.ordered(y, true)
}

func (x Unsigned) ordered(y Unsigned, orEqual bool) Tristate {
	if x.sz == 0 || y.sz == 0 {
		return Undefined
	}
	switch magnitude.Cmp(x.window(), y.window()) {
	case 1:
		return True
	case -1:
		return False
	}
	return tristate(orEqual)
}

// Add adds y to x, consuming x's buffer for the result. The sum may grow
// into x's spare capacity; a sum that does not fit the capacity is
// truncated modulo 2^(8·Cap()) and reported as overflow.
func (x Unsigned) Add(y Unsigned) (Unsigned, bool) {
	sz, overflow := magnitude.AddInto(x.data, x.sz, y.window())
	return Unsigned{data: x.data, sz: sz}, overflow
}

// Sub subtracts y from x, consuming x's buffer. A mathematically
// negative result is overflow: the stored bytes wrap as if borrowed from
// one position past the capacity.
func (x Unsigned) Sub(y Unsigned) (Unsigned, bool) {
	sz, overflow := magnitude.SubInto(x.data, x.sz, y.window())
	return Unsigned{data: x.data, sz: sz}, overflow
}

// Mul multiplies x by y, consuming x's buffer. The true product can be
// as long as both operands combined; anything beyond x's capacity is
// dropped and reported as overflow.
func (x Unsigned) Mul(y Unsigned) (Unsigned, bool) {
	sz, overflow := magnitude.MulInto(x.data, x.sz, y.window())
	return Unsigned{data: x.data, sz: sz}, overflow
}

// Div divides x by y, consuming both buffers: the quotient reuses x's
// and the remainder reuses y's. Division by zero (or by an empty value)
// returns ErrDivideByZero and the returned values are then only good for
// Free.
func (x Unsigned) Div(y Unsigned) (quot, rem Unsigned, err error) {
	u := make([]byte, x.sz)
	copy(u, x.window())
	v := make([]byte, y.sz)
	copy(v, y.window())
	ql, rl, ok := magnitude.DivMod(x.data, y.data, u, v)
	if !ok {
		return x, y, ErrDivideByZero
	}
	if ql > len(x.data) {
		ql = len(x.data)
	}
	if rl > len(y.data) {
		rl = len(y.data)
	}
	return Unsigned{data: x.data, sz: ql}, Unsigned{data: y.data, sz: rl}, nil
}

// Pow raises x to the power y by binary exponentiation, consuming x's
// buffer. Overflow is sticky: truncation in any intermediate product is
// reflected in the final flag. An empty or zero exponent yields one.
func (x Unsigned) Pow(y Unsigned) (Unsigned, bool) {
	n := len(x.data)
	if n == 0 {
		return x, false
	}
	base := make([]byte, n)
	copy(base, x.window())
	result := make([]byte, n)
	result[0] = 1

	var overflow bool
	yw := y.window()
	for i := magnitude.SigLen(yw)*8 - 1; i >= 0; i-- {
		_, o := magnitude.MulInto(result, n, result)
		overflow = overflow || o
		if magnitude.Bit(yw, i) == 1 {
			_, o = magnitude.MulInto(result, n, base)
			overflow = overflow || o
		}
	}
	copy(x.data, result)
	sz := magnitude.SigLen(x.data)
	if sz == 0 {
		sz = 1
	}
	return Unsigned{data: x.data, sz: sz}, overflow
}

// Sqrt computes the integer square root of x, consuming x's buffer for
// the root. The remainder x − root² comes back in a freshly allocated
// buffer. The error return is always nil for unsigned values; the shape
// is shared with Div and the signed roots.
func (x Unsigned) Sqrt() (root, rem Unsigned, err error) {
	if x.sz == 0 {
		return x, Unsigned{}, nil
	}
	u := make([]byte, x.sz)
	copy(u, x.window())
	remBuf := alloc.Alloc(x.sz)
	rootLen, remLen := magnitude.SqrtInto(x.data[:x.sz], remBuf, u)
	return Unsigned{data: x.data, sz: rootLen}, Unsigned{data: remBuf, sz: remLen}, nil
}

// Cbrt computes the integer cube root of x, consuming x's buffer. The
// remainder slot of the shared result shape is always the empty value.
func (x Unsigned) Cbrt() (root, rem Unsigned, err error) {
	if x.sz == 0 {
		return x, Unsigned{}, nil
	}
	u := make([]byte, x.sz)
	copy(u, x.window())
	rootLen := magnitude.CbrtInto(x.data[:x.sz], u)
	return Unsigned{data: x.data, sz: rootLen}, Unsigned{}, nil
}

// Or bitwise-ORs y into x over x's significant bytes, consuming x's
// buffer. Bytes beyond y's size read as zero.
func (x Unsigned) Or(y Unsigned) Unsigned {
	for i := 0; i < x.sz && i < y.sz; i++ {
		x.data[i] |= y.data[i]
	}
	return x
}

// And bitwise-ANDs y into x over x's significant bytes, consuming x's
// buffer. Bytes beyond y's size read as zero.
func (x Unsigned) And(y Unsigned) Unsigned {
	for i := 0; i < x.sz; i++ {
		var yv byte
		if i < y.sz {
			yv = y.data[i]
		}
		x.data[i] &= yv
	}
	return x
}

// Xor bitwise-XORs y into x over x's significant bytes, consuming x's
// buffer. Bytes beyond y's size read as zero.
func (x Unsigned) Xor(y Unsigned) Unsigned {
	for i := 0; i < x.sz && i < y.sz; i++ {
		x.data[i] ^= y.data[i]
	}
	return x
}

// Not complements every significant byte of x, consuming x's buffer.
func (x Unsigned) Not() Unsigned {
	magnitude.Not(x.window())
	return x
}

// Shl logically shifts x left by n bits within its significant window,
// zero-filling the vacated low bits. Bits pushed past the window are
// silently discarded; shifts never flag overflow.
func (x Unsigned) Shl(n uint) Unsigned {
	magnitude.Shl(x.window(), n)
	return x
}

// Shr logically shifts x right by n bits within its significant window,
// zero-filling the vacated high bits.
func (x Unsigned) Shr(n uint) Unsigned {
	magnitude.Shr(x.window(), n)
	return x
}

// Rotl rotates x left by n bits within the 8·Size()-bit window; bits
// leaving the top reenter at the bottom.
func (x Unsigned) Rotl(n uint) Unsigned {
	magnitude.Rotl(x.window(), n)
	return x
}

// Rotr rotates x right by n bits within the 8·Size()-bit window.
func (x Unsigned) Rotr(n uint) Unsigned {
	magnitude.Rotr(x.window(), n)
	return x
}

// LeadingZeros counts zero bits from the most significant bit of the
// significant window. The count only means something relative to Size();
// contextualizing it is the caller's job.
func (x Unsigned) LeadingZeros() uint {
	return magnitude.LeadingZeros(x.window())
}

// TrailingZeros counts zero bits from the least significant bit of the
// significant window.
func (x Unsigned) TrailingZeros() uint {
	return magnitude.TrailingZeros(x.window())
}

// OnesCount counts the set bits of the significant window. Subtracting
// from 8·Size() gives the zero count.
func (x Unsigned) OnesCount() uint {
	return magnitude.OnesCount(x.window())
}
