package bigint

import (
	"math/big"
	"math/bits"
	"testing"
)

// FuzzUnsignedDivision verifies the division identity quot*v + rem = u
// against native uint64 arithmetic for arbitrary operands.
func FuzzUnsignedDivision(f *testing.F) {
	f.Add(uint64(0), uint64(1))
	f.Add(uint64(100), uint64(7))
	f.Add(uint64(1), uint64(1<<63))
	f.Add(^uint64(0), uint64(1))
	f.Add(^uint64(0), ^uint64(0))
	f.Add(uint64(1<<32), uint64(1<<16))

	f.Fuzz(func(t *testing.T, u, v uint64) {
		x := FromUint64(u)
		y := FromUint64(v)
		quot, rem, err := x.Div(y)
		defer quot.Free()
		defer rem.Free()
		if v == 0 {
			if err != ErrDivideByZero {
				t.Fatalf("u=%d v=0: err = %v, want ErrDivideByZero", u, err)
			}
			return
		}
		if err != nil {
			t.Fatalf("u=%d v=%d: err = %v", u, v, err)
		}
		if got := leUint64(quot.Bytes()); got != u/v {
			t.Errorf("u=%d v=%d: quot = %d, want %d", u, v, got, u/v)
		}
		if got := leUint64(rem.Bytes()); got != u%v {
			t.Errorf("u=%d v=%d: rem = %d, want %d", u, v, got, u%v)
		}
	})
}

// FuzzUnsignedAddSub verifies that the add and sub overflow flags agree
// with native uint64 carry tracking, and that the stored bytes match the
// wrapped value either way.
func FuzzUnsignedAddSub(f *testing.F) {
	f.Add(uint64(0), uint64(0))
	f.Add(^uint64(0), uint64(1))
	f.Add(uint64(5), uint64(7))
	f.Add(uint64(1<<63), uint64(1<<63))

	f.Fuzz(func(t *testing.T, a, b uint64) {
		x := FromUint64(a)
		y := FromUint64(b)
		defer y.Free()

		sum, overflow := x.Add(y)
		wantSum, carry := bits.Add64(a, b, 0)
		if got := leUint64(sum.Bytes()); got != wantSum {
			t.Errorf("a=%d b=%d: sum = %d, want %d", a, b, got, wantSum)
		}
		if overflow != (carry == 1) {
			t.Errorf("a=%d b=%d: add overflow = %v, want %v", a, b, overflow, carry == 1)
		}

		diff, overflow := sum.Sub(y)
		defer diff.Free()
		wantDiff, borrow := bits.Sub64(wantSum, b, 0)
		if got := leUint64(diff.Bytes()); got != wantDiff {
			t.Errorf("sub: got %d, want %d", got, wantDiff)
		}
		if overflow != (borrow == 1) {
			t.Errorf("sub overflow = %v, want %v", overflow, borrow == 1)
		}
	})
}

// FuzzUnsignedMul verifies the product and its overflow flag against
// the 128-bit native product.
func FuzzUnsignedMul(f *testing.F) {
	f.Add(uint64(0), uint64(0))
	f.Add(uint64(16), uint64(16))
	f.Add(^uint64(0), uint64(2))
	f.Add(uint64(1<<32), uint64(1<<32))

	f.Fuzz(func(t *testing.T, a, b uint64) {
		x := FromUint64(a)
		y := FromUint64(b)
		defer y.Free()
		p, overflow := x.Mul(y)
		defer p.Free()

		hi, lo := bits.Mul64(a, b)
		if got := leUint64(p.Bytes()); got != lo {
			t.Errorf("a=%d b=%d: product = %d, want %d", a, b, got, lo)
		}
		if overflow != (hi != 0) {
			t.Errorf("a=%d b=%d: overflow = %v, want %v", a, b, overflow, hi != 0)
		}
	})
}

// FuzzSignedDivision verifies that signed division matches Go's int64
// semantics: truncation toward zero and a remainder carrying the
// dividend's sign.
func FuzzSignedDivision(f *testing.F) {
	f.Add(int64(100), int64(7))
	f.Add(int64(-100), int64(7))
	f.Add(int64(100), int64(-7))
	f.Add(int64(-100), int64(-7))
	f.Add(int64(0), int64(5))
	f.Add(int64(-1), int64(1))

	f.Fuzz(func(t *testing.T, a, b int64) {
		// The one native quotient that itself overflows.
		if a == -1<<63 && b == -1 {
			return
		}
		x := FromInt64(a)
		y := FromInt64(b)
		quot, rem, err := x.Div(y)
		defer quot.Free()
		defer rem.Free()
		if b == 0 {
			if err != ErrDivideByZero {
				t.Fatalf("a=%d: err = %v, want ErrDivideByZero", a, err)
			}
			return
		}
		if err != nil {
			t.Fatalf("a=%d b=%d: err = %v", a, b, err)
		}
		if got := leInt64(quot.Bytes()); got != a/b {
			t.Errorf("a=%d b=%d: quot = %d, want %d", a, b, got, a/b)
		}
		if got := leInt64(rem.Bytes()); got != a%b {
			t.Errorf("a=%d b=%d: rem = %d, want %d", a, b, got, a%b)
		}
	})
}

// FuzzPowAgainstBigInt cross-checks exponentiation with small exponents
// against math/big, including the truncation flagged as overflow.
func FuzzPowAgainstBigInt(f *testing.F) {
	f.Add(uint64(3), uint8(5))
	f.Add(uint64(2), uint8(63))
	f.Add(uint64(2), uint8(64))
	f.Add(uint64(0), uint8(0))
	f.Add(^uint64(0), uint8(2))

	f.Fuzz(func(t *testing.T, base uint64, exp uint8) {
		if exp > 128 {
			return
		}
		x := FromUint64(base)
		y := FromUint8(exp)
		defer y.Free()
		p, overflow := x.Pow(y)
		defer p.Free()

		want := new(big.Int).Exp(new(big.Int).SetUint64(base), big.NewInt(int64(exp)), nil)
		truncated := want.BitLen() > 64
		got := new(big.Int).SetUint64(leUint64(p.Bytes()))
		if truncated != overflow {
			t.Errorf("base=%d exp=%d: overflow = %v, want %v", base, exp, overflow, truncated)
		}
		if !truncated && got.Cmp(want) != 0 {
			t.Errorf("base=%d exp=%d: pow = %v, want %v", base, exp, got, want)
		}
	})
}

// FuzzShiftsAgainstNative verifies shifts and rotations on eight-byte
// values against the native 64-bit operations.
func FuzzShiftsAgainstNative(f *testing.F) {
	f.Add(uint64(1), uint8(0))
	f.Add(^uint64(0), uint8(63))
	f.Add(uint64(0xDEADBEEF), uint8(32))
	f.Add(uint64(1<<63), uint8(1))

	f.Fuzz(func(t *testing.T, v uint64, n uint8) {
		shift := uint(n % 64)

		x := FromUint64(v).Shl(shift)
		if got := leUint64(x.Bytes()); got != v<<shift {
			t.Errorf("v=%#x: Shl(%d) = %#x, want %#x", v, shift, got, v<<shift)
		}
		x.Free()

		x = FromUint64(v).Shr(shift)
		if got := leUint64(x.Bytes()); got != v>>shift {
			t.Errorf("v=%#x: Shr(%d) = %#x, want %#x", v, shift, got, v>>shift)
		}
		x.Free()

		x = FromUint64(v).Rotl(shift)
		if got := leUint64(x.Bytes()); got != bits.RotateLeft64(v, int(shift)) {
			t.Errorf("v=%#x: Rotl(%d) = %#x, want %#x", v, shift, got, bits.RotateLeft64(v, int(shift)))
		}
		x.Free()

		s := FromInt64(int64(v)).Sar(shift)
		if got := leInt64(s.Bytes()); got != int64(v)>>shift {
			t.Errorf("v=%#x: Sar(%d) = %d, want %d", v, shift, got, int64(v)>>shift)
		}
		s.Free()
	})
}
