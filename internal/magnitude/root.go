package magnitude

// SqrtInto computes the integer square root of the window u, writing the
// root into root and u - root*root into rem. Both outputs are zeroed
// first. rem may be nil when the caller has no use for the remainder.
// Returned lengths are significant lengths with a floor of one byte.
func SqrtInto(root, rem, u []byte) (rootLen, remLen int) {
	clear(root)
	if rem != nil {
		clear(rem)
	}
	ul := SigLen(u)
	if ul == 0 {
		return 1, 1
	}

	// Digit-by-digit binary search from the top bit of the widest
	// possible root: trial-set each bit and keep it while the square
	// still fits under u.
	rl := (ul + 1) / 2
	cur := make([]byte, rl)
	cand := make([]byte, rl)
	sq := make([]byte, 2*rl)
	for i := rl*8 - 1; i >= 0; i-- {
		copy(cand, cur)
		SetBit(cand, i)
		square(sq, cand)
		if Cmp(sq, u[:ul]) <= 0 {
			copy(cur, cand)
		}
	}
	copy(root, cur[:min(len(root), rl)])
	rootLen = SigLen(root)
	if rootLen == 0 {
		rootLen = 1
	}

	remLen = 1
	if rem != nil {
		square(sq, cur)
		diff := make([]byte, ul)
		copy(diff, u[:ul])
		SubInto(diff, ul, sq)
		copy(rem, diff[:min(len(rem), ul)])
		remLen = SigLen(rem)
		if remLen == 0 {
			remLen = 1
		}
	}
	return rootLen, remLen
}

// CbrtInto computes the integer cube root of the window u into root,
// returning its significant length with a floor of one byte.
func CbrtInto(root, u []byte) int {
	clear(root)
	ul := SigLen(u)
	if ul == 0 {
		return 1
	}

	rl := (ul + 2) / 3
	cur := make([]byte, rl)
	cand := make([]byte, rl)
	cube := make([]byte, 3*rl)
	for i := rl*8 - 1; i >= 0; i-- {
		copy(cand, cur)
		SetBit(cand, i)
		clear(cube)
		copy(cube, cand)
		MulInto(cube, rl, cand)
		MulInto(cube, 2*rl, cand)
		if Cmp(cube, u[:ul]) <= 0 {
			copy(cur, cand)
		}
	}
	copy(root, cur[:min(len(root), rl)])
	rootLen := SigLen(root)
	if rootLen == 0 {
		rootLen = 1
	}
	return rootLen
}

// square writes x*x into dst, which must hold 2*len(x) bytes.
func square(dst, x []byte) {
	clear(dst)
	copy(dst, x)
	MulInto(dst, len(x), x)
}
