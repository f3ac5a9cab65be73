package magnitude

// SigLen returns the number of significant bytes in w: the window length
// with high-order zero bytes stripped. A window of all zeros has SigLen 0.
func SigLen(w []byte) int {
	n := len(w)
	for n > 0 && w[n-1] == 0 {
		n--
	}
	return n
}

// IsZero reports whether every byte of the window is zero.
func IsZero(w []byte) bool {
	return SigLen(w) == 0
}

// Cmp compares the magnitudes of two windows, ignoring high-order zero
// bytes, and returns -1, 0 or +1.
func Cmp(a, b []byte) int {
	al, bl := SigLen(a), SigLen(b)
	if al != bl {
		if al < bl {
			return -1
		}
		return 1
	}
	for i := al - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// AddInto adds the window y into dst, whose first used bytes are
// significant and whose remaining bytes are free capacity with undefined
// contents. The sum may grow into the free capacity. It returns the new
// significant length and whether the true sum exceeded len(dst) bytes.
func AddInto(dst []byte, used int, y []byte) (int, bool) {
	n := len(dst)
	w := used
	if len(y) > w {
		w = len(y)
	}
	if w > n {
		w = n
	}
	var carry uint16
	for i := 0; i < w; i++ {
		var xv, yv uint16
		if i < used {
			xv = uint16(dst[i])
		}
		if i < len(y) {
			yv = uint16(y[i])
		}
		s := xv + yv + carry
		dst[i] = byte(s)
		carry = s >> 8
	}
	if carry != 0 && w < n {
		dst[w] = byte(carry)
		w++
		carry = 0
	}
	overflow := carry != 0
	for i := n; i < len(y) && !overflow; i++ {
		overflow = y[i] != 0
	}
	return w, overflow
}

// SubInto subtracts the window y from dst's used bytes in place. A final
// borrow means the true result is negative; the stored bytes then hold the
// wrapped value mod 2^(8*width) and overflow is reported.
func SubInto(dst []byte, used int, y []byte) (int, bool) {
	n := len(dst)
	w := used
	if len(y) > w {
		w = len(y)
	}
	if w > n {
		w = n
	}
	var borrow int
	for i := 0; i < w; i++ {
		var xv, yv int
		if i < used {
			xv = int(dst[i])
		}
		if i < len(y) {
			yv = int(y[i])
		}
		d := xv - yv - borrow
		if d < 0 {
			d += 1 << 8
			borrow = 1
		} else {
			borrow = 0
		}
		dst[i] = byte(d)
	}
	overflow := borrow != 0
	for i := n; i < len(y) && !overflow; i++ {
		overflow = y[i] != 0
	}
	return w, overflow
}

// MulInto multiplies dst's used bytes by the window y, truncating the
// product to len(dst) bytes. It returns the significant length of the
// stored product (at least 1 when the receiver was nonempty) and whether
// any product byte beyond len(dst) was nonzero.
func MulInto(dst []byte, used int, y []byte) (int, bool) {
	n := len(dst)
	if used == 0 {
		return 0, false
	}
	tmp := make([]byte, used+len(y))
	for i := 0; i < used; i++ {
		xv := uint16(dst[i])
		if xv == 0 {
			continue
		}
		var carry uint16
		for j := 0; j < len(y); j++ {
			t := uint16(tmp[i+j]) + xv*uint16(y[j]) + carry
			tmp[i+j] = byte(t)
			carry = t >> 8
		}
		for k := i + len(y); carry != 0; k++ {
			t := uint16(tmp[k]) + carry
			tmp[k] = byte(t)
			carry = t >> 8
		}
	}
	w := len(tmp)
	if w > n {
		w = n
	}
	copy(dst[:w], tmp[:w])
	var overflow bool
	for i := n; i < len(tmp) && !overflow; i++ {
		overflow = tmp[i] != 0
	}
	sz := SigLen(dst[:w])
	if sz == 0 {
		sz = 1
	}
	return sz, overflow
}

// AddExt adds y into dst with y virtually extended by the byte ext (0x00
// or 0xFF) to dst's width, interpreting both as two's-complement patterns.
// It reports two's-complement overflow: the operands agreed in sign and
// the result does not, or y carried significant bytes beyond dst's width.
func AddExt(dst, y []byte, ext byte) bool {
	n := len(dst)
	if n == 0 {
		return false
	}
	sx := dst[n-1]&0x80 != 0
	sy := topBitExt(y, n, ext)
	var carry uint16
	for i := 0; i < n; i++ {
		yv := uint16(ext)
		if i < len(y) {
			yv = uint16(y[i])
		}
		s := uint16(dst[i]) + yv + carry
		dst[i] = byte(s)
		carry = s >> 8
	}
	sr := dst[n-1]&0x80 != 0
	overflow := sx == sy && sr != sx
	return overflow || lossyTrunc(y, n)
}

// SubExt subtracts y from dst with the same virtual extension rules as
// AddExt and the matching two's-complement overflow condition.
func SubExt(dst, y []byte, ext byte) bool {
	n := len(dst)
	if n == 0 {
		return false
	}
	sx := dst[n-1]&0x80 != 0
	sy := topBitExt(y, n, ext)
	var borrow int
	for i := 0; i < n; i++ {
		yv := int(ext)
		if i < len(y) {
			yv = int(y[i])
		}
		d := int(dst[i]) - yv - borrow
		if d < 0 {
			d += 1 << 8
			borrow = 1
		} else {
			borrow = 0
		}
		dst[i] = byte(d)
	}
	sr := dst[n-1]&0x80 != 0
	overflow := sx != sy && sr != sx
	return overflow || lossyTrunc(y, n)
}

// topBitExt returns the sign bit of the window y as it appears once
// extended to width bytes with the byte ext.
func topBitExt(y []byte, width int, ext byte) bool {
	if len(y) >= width {
		return y[width-1]&0x80 != 0
	}
	return ext&0x80 != 0
}

// lossyTrunc reports whether truncating y to width bytes changes its
// two's-complement value: the dropped bytes must all sign-extend the
// truncated pattern.
func lossyTrunc(y []byte, width int) bool {
	if len(y) <= width {
		return false
	}
	fill := byte(0)
	if y[width-1]&0x80 != 0 {
		fill = 0xFF
	}
	for i := width; i < len(y); i++ {
		if y[i] != fill {
			return true
		}
	}
	return false
}

// Neg negates the window in place as a two's-complement pattern
// (complement every byte, then add one).
func Neg(w []byte) {
	carry := uint16(1)
	for i := range w {
		s := uint16(^w[i]) + carry
		w[i] = byte(s)
		carry = s >> 8
	}
}

// Not complements every byte of the window in place.
func Not(w []byte) {
	for i := range w {
		w[i] = ^w[i]
	}
}
