package magnitude

import "math/bits"

// Bit returns bit i of the window (LSB is bit 0). Bits beyond the window
// read as zero.
func Bit(w []byte, i int) byte {
	if i < 0 || i >= len(w)*8 {
		return 0
	}
	return w[i/8] >> (i % 8) & 1
}

// SetBit sets bit i of the window. Out-of-range indices are ignored.
func SetBit(w []byte, i int) {
	if i < 0 || i >= len(w)*8 {
		return
	}
	w[i/8] |= 1 << (i % 8)
}

// Shl shifts the window left by n bits in place, zero-filling vacated low
// bits. Bits shifted past the top of the window are discarded.
func Shl(w []byte, n uint) {
	l := len(w)
	if l == 0 || n == 0 {
		return
	}
	bs := int(n / 8)
	sh := n % 8
	if bs >= l {
		clear(w)
		return
	}
	if sh == 0 {
		copy(w[bs:], w[:l-bs])
	} else {
		for i := l - 1; i > bs; i-- {
			w[i] = w[i-bs]<<sh | w[i-bs-1]>>(8-sh)
		}
		w[bs] = w[0] << sh
	}
	clear(w[:bs])
}

// Shr shifts the window right by n bits in place, zero-filling vacated
// high bits.
func Shr(w []byte, n uint) {
	l := len(w)
	if l == 0 || n == 0 {
		return
	}
	bs := int(n / 8)
	sh := n % 8
	if bs >= l {
		clear(w)
		return
	}
	if sh == 0 {
		copy(w, w[bs:])
	} else {
		for i := 0; i < l-bs-1; i++ {
			w[i] = w[i+bs]>>sh | w[i+bs+1]<<(8-sh)
		}
		w[l-bs-1] = w[l-1] >> sh
	}
	clear(w[l-bs:])
}

// Asr shifts the window right by n bits in place, filling vacated high
// bits with copies of the original sign bit (bit 7 of the last byte).
func Asr(w []byte, n uint) {
	l := len(w)
	if l == 0 || n == 0 {
		return
	}
	neg := w[l-1]&0x80 != 0
	if n >= uint(l)*8 {
		fill := byte(0)
		if neg {
			fill = 0xFF
		}
		for i := range w {
			w[i] = fill
		}
		return
	}
	Shr(w, n)
	if neg {
		total := l * 8
		for i := total - int(n); i < total; i++ {
			SetBit(w, i)
		}
	}
}

// Rotl rotates the window left by n bits in place. The rotation width is
// the full window; n is reduced modulo that width.
func Rotl(w []byte, n uint) {
	width := uint(len(w)) * 8
	if width == 0 {
		return
	}
	n %= width
	if n == 0 {
		return
	}
	lo := make([]byte, len(w))
	copy(lo, w)
	Shl(w, n)
	Shr(lo, width-n)
	for i := range w {
		w[i] |= lo[i]
	}
}

// Rotr rotates the window right by n bits in place.
func Rotr(w []byte, n uint) {
	width := uint(len(w)) * 8
	if width == 0 {
		return
	}
	n %= width
	Rotl(w, width-n)
}

// LeadingZeros counts zero bits from the most significant bit of the
// window downward.
func LeadingZeros(w []byte) uint {
	var n uint
	for i := len(w) - 1; i >= 0; i-- {
		if w[i] == 0 {
			n += 8
			continue
		}
		return n + uint(bits.LeadingZeros8(w[i]))
	}
	return n
}

// TrailingZeros counts zero bits from the least significant bit of the
// window upward.
func TrailingZeros(w []byte) uint {
	var n uint
	for i := 0; i < len(w); i++ {
		if w[i] == 0 {
			n += 8
			continue
		}
		return n + uint(bits.TrailingZeros8(w[i]))
	}
	return n
}

// OnesCount counts the set bits of the window.
func OnesCount(w []byte) uint {
	var n uint
	for _, b := range w {
		n += uint(bits.OnesCount8(b))
	}
	return n
}
