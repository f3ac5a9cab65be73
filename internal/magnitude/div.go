package magnitude

// DivMod divides the window u by the window v using binary long division,
// writing the quotient into q and the remainder into r. q must be at least
// as long as u's significant bytes and r at least as long as v's; both are
// zeroed before use. It reports ok=false on a zero divisor, in which case
// q and r hold nothing meaningful.
func DivMod(q, r, u, v []byte) (qLen, rLen int, ok bool) {
	vl := SigLen(v)
	if vl == 0 {
		return 0, 0, false
	}
	clear(q)
	clear(r)

	// The working remainder can momentarily hold one bit more than the
	// divisor between the shift and the compare-subtract step.
	rem := make([]byte, vl+1)

	for i := SigLen(u)*8 - 1; i >= 0; i-- {
		Shl(rem, 1)
		rem[0] |= Bit(u, i)
		if Cmp(rem, v[:vl]) >= 0 {
			SubInto(rem, len(rem), v[:vl])
			SetBit(q, i)
		}
	}

	copy(r, rem[:min(len(r), len(rem))])
	qLen = SigLen(q)
	if qLen == 0 {
		qLen = 1
	}
	rLen = SigLen(r)
	if rLen == 0 {
		rLen = 1
	}
	return qLen, rLen, true
}
