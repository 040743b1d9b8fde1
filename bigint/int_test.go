package bigint

import "testing"

func TestIntConstructors(t *testing.T) {
	e0 := NewInt(5)
	for i := 0; i < 5; i++ {
		if e0[i] != 0 {
			t.Errorf("limb %d of zero value is %#x", i, e0[i])
		}
	}

	e1 := NewIntBE(0, 0, 0, 0, 0x1234)
	if e1[0] != 0x1234 || e1[1] != 0 || e1[2] != 0 || e1[3] != 0 || e1[4] != 0 {
		t.Errorf("single-word constructor stored %v", e1)
	}

	e2 := NewIntBE(1, 2, 3, 4, 5)
	want := Int{5, 4, 3, 2, 1}
	for i := range want {
		if e2[i] != want[i] {
			t.Errorf("big-endian constructor limb %d = %#x, want %#x", i, e2[i], want[i])
		}
	}

	e3 := e2.Clone()
	if e3.Cmp(e2) != 0 {
		t.Error("clone differs from original")
	}
	e3[0]++
	if e3.Cmp(e2) == 0 {
		t.Error("clone shares storage with original")
	}
}

func TestIntCmp(t *testing.T) {
	es := []Int{
		NewInt(5),
		NewIntBE(0, 0, 0, 0, 0),
		NewIntBE(0, 0, 0, 0, 1),
		NewIntBE(0, 0, 0, 1, 0),
		NewIntBE(0, 0, 0, 1, 1),
		NewIntBE(1, 0, 0, 0, 0),
		NewIntBE(1, 0, 1, 0, 0),
	}
	if es[0].Cmp(es[1]) != 0 {
		t.Error("distinct zero spellings compare unequal")
	}
	for i := 1; i < len(es)-1; i++ {
		if es[i].Cmp(es[i+1]) != -1 {
			t.Errorf("es[%d] should compare below es[%d]", i, i+1)
		}
		if es[i+1].Cmp(es[i]) != 1 {
			t.Errorf("es[%d] should compare above es[%d]", i+1, i)
		}
	}
}

func TestIntBitOps(t *testing.T) {
	a := NewIntBE(0x0ffff000, 0x0000ffff, 0xffffffff, 0xffffffff, 0x00000000)
	b := NewIntBE(0x000ffff0, 0xffff0000, 0x00000000, 0xffffffff, 0x00000000)
	c := NewInt(5)

	c.And(a, b)
	if c.Cmp(NewIntBE(0x000ff000, 0x00000000, 0x00000000, 0xffffffff, 0x00000000)) != 0 {
		t.Errorf("and = %s", c)
	}
	c.Or(a, b)
	if c.Cmp(NewIntBE(0x0ffffff0, 0xffffffff, 0xffffffff, 0xffffffff, 0x00000000)) != 0 {
		t.Errorf("or = %s", c)
	}
	c.Not(a)
	if c.Cmp(NewIntBE(0xf0000fff, 0xffff0000, 0x00000000, 0x00000000, 0xffffffff)) != 0 {
		t.Errorf("not = %s", c)
	}
	c.Xor(a, b)
	if c.Cmp(NewIntBE(0x0ff00ff0, 0xffffffff, 0xffffffff, 0x00000000, 0x00000000)) != 0 {
		t.Errorf("xor = %s", c)
	}
}

func TestIntShiftRight(t *testing.T) {
	e := NewIntBE(0xf005000f, 0xf004000f, 0xf003000f, 0xf002000f, 0xf001000f)

	e.Shr(0)
	if e.Cmp(NewIntBE(0xf005000f, 0xf004000f, 0xf003000f, 0xf002000f, 0xf001000f)) != 0 {
		t.Errorf("shr 0 = %s", e)
	}
	e.Shr(3)
	if e.Cmp(NewIntBE(0x1e00a001, 0xfe008001, 0xfe006001, 0xfe004001, 0xfe002001)) != 0 {
		t.Errorf("shr 3 = %s", e)
	}
	e.Shr(32)
	if e.Cmp(NewIntBE(0x00000000, 0x1e00a001, 0xfe008001, 0xfe006001, 0xfe004001)) != 0 {
		t.Errorf("shr 32 = %s", e)
	}
	e.Shr(33)
	if e.Cmp(NewIntBE(0x00000000, 0x00000000, 0x0f005000, 0xff004000, 0xff003000)) != 0 {
		t.Errorf("shr 33 = %s", e)
	}
	e.Shr(66)
	if e.Cmp(NewIntBE(0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x03c01400)) != 0 {
		t.Errorf("shr 66 = %s", e)
	}
	e.Shr(32 * 5)
	if !e.IsZero() {
		t.Errorf("shr 160 = %s", e)
	}
	e.Shr(32*5 + 1)
	if !e.IsZero() {
		t.Errorf("shr past width = %s", e)
	}
}

func TestIntShiftLeft(t *testing.T) {
	e := NewIntBE(0xf005000f, 0xf004000f, 0xf003000f, 0xf002000f, 0xf001000f)

	e.Shl(0)
	if e.Cmp(NewIntBE(0xf005000f, 0xf004000f, 0xf003000f, 0xf002000f, 0xf001000f)) != 0 {
		t.Errorf("shl 0 = %s", e)
	}
	e.Shl(3)
	if e.Cmp(NewIntBE(0x8028007f, 0x8020007f, 0x8018007f, 0x8010007f, 0x80080078)) != 0 {
		t.Errorf("shl 3 = %s", e)
	}
	e.Shl(32)
	if e.Cmp(NewIntBE(0x8020007f, 0x8018007f, 0x8010007f, 0x80080078, 0x00000000)) != 0 {
		t.Errorf("shl 32 = %s", e)
	}
	e.Shl(33)
	if e.Cmp(NewIntBE(0x003000ff, 0x002000ff, 0x001000f0, 0x00000000, 0x00000000)) != 0 {
		t.Errorf("shl 33 = %s", e)
	}
	e.Shl(66)
	if e.Cmp(NewIntBE(0x004003c0, 0x00000000, 0x00000000, 0x00000000, 0x00000000)) != 0 {
		t.Errorf("shl 66 = %s", e)
	}
	e.Shl(32 * 5)
	if !e.IsZero() {
		t.Errorf("shl 160 = %s", e)
	}
}

func TestIntAdd(t *testing.T) {
	e := NewInt(5)

	if e.Add(NewInt(5), NewInt(5)); !e.IsZero() {
		t.Error("0 + 0 != 0")
	}
	if carry := e.Add(NewIntBE(0, 0, 0, 0, 0x12), NewIntBE(0, 0, 0, 0, 0xe)); carry || e.Cmp(NewIntBE(0, 0, 0, 0, 0x20)) != 0 {
		t.Errorf("0x12 + 0xe = %s carry=%v", e, carry)
	}
	carry := e.Add(NewIntBE(0, 0, 0, 0, 0xa2000000), NewIntBE(0, 0, 0, 0, 0x5f000000))
	if carry || e.Cmp(NewIntBE(0, 0, 0, 0x1, 0x01000000)) != 0 {
		t.Errorf("limb carry add = %s carry=%v", e, carry)
	}
	carry = e.Add(
		NewIntBE(0xa2000000, 0x5f000000, 0, 0, 0),
		NewIntBE(0x5f000000, 0xa2000000, 0, 0, 0))
	if !carry || e.Cmp(NewIntBE(0x01000001, 0x01000000, 0, 0, 0)) != 0 {
		t.Errorf("top-limb carry add = %s carry=%v", e, carry)
	}

	e.SetZero()
	e[0] = 0x12
	if carry = e.AddInto(NewIntBE(0, 0, 0, 0, 0xe)); carry || e.Cmp(NewIntBE(0, 0, 0, 0, 0x20)) != 0 {
		t.Errorf("in-place add = %s carry=%v", e, carry)
	}
	e = NewIntBE(0xa2000000, 0x5f000000, 0, 0, 0)
	if carry = e.AddInto(NewIntBE(0x5f000000, 0xa2000000, 0, 0, 0)); !carry || e.Cmp(NewIntBE(0x01000001, 0x01000000, 0, 0, 0)) != 0 {
		t.Errorf("in-place carry add = %s carry=%v", e, carry)
	}
}

func TestIntSub(t *testing.T) {
	e := NewInt(5)

	if e.Sub(NewInt(5), NewInt(5)); !e.IsZero() {
		t.Error("0 - 0 != 0")
	}
	if borrow := e.Sub(NewIntBE(0, 0, 0, 0, 0xf0), NewIntBE(0, 0, 0, 0, 0x2)); borrow || e.Cmp(NewIntBE(0, 0, 0, 0, 0xee)) != 0 {
		t.Errorf("0xf0 - 2 = %s borrow=%v", e, borrow)
	}
	borrow := e.Sub(NewIntBE(0x10000000, 0, 0, 0, 0), NewIntBE(0, 0, 0, 0, 0x1))
	if borrow || e.Cmp(NewIntBE(0x0fffffff, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff)) != 0 {
		t.Errorf("ripple borrow sub = %s borrow=%v", e, borrow)
	}
	borrow = e.Sub(NewInt(5), NewIntBE(0, 0, 0, 0, 0x1))
	if !borrow || e.Cmp(NewIntBE(0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff)) != 0 {
		t.Errorf("0 - 1 = %s borrow=%v", e, borrow)
	}
	borrow = e.Sub(
		NewIntBE(0x96eb8e57, 0xa17e5730, 0x336ebe5e, 0x553bdef2, 0xfc26eb86),
		NewIntBE(0x438ab2ce, 0xa07f9675, 0x30debdd3, 0xc9446c1b, 0x85b4ff59))
	if borrow || e.Cmp(NewIntBE(0x5360db89, 0x00fec0bb, 0x0290008a, 0x8bf772d7, 0x7671ec2d)) != 0 {
		t.Errorf("wide sub = %s borrow=%v", e, borrow)
	}
	borrow = e.Sub(
		NewIntBE(0x01a8b80c, 0x425b5530, 0xc29ce6b1, 0xebc4a008, 0x107bb597),
		NewIntBE(0x54e006b4, 0x731480ed, 0x56e01a41, 0x2aa50851, 0x852f86a2))
	if !borrow || e.Cmp(NewIntBE(0xacc8b157, 0xcf46d443, 0x6bbccc70, 0xc11f97b6, 0x8b4c2ef5)) != 0 {
		t.Errorf("underflow sub = %s borrow=%v", e, borrow)
	}

	e = NewIntBE(0x96eb8e57, 0xa17e5730, 0x336ebe5e, 0x553bdef2, 0xfc26eb86)
	borrow = e.SubInto(NewIntBE(0x438ab2ce, 0xa07f9675, 0x30debdd3, 0xc9446c1b, 0x85b4ff59))
	if borrow || e.Cmp(NewIntBE(0x5360db89, 0x00fec0bb, 0x0290008a, 0x8bf772d7, 0x7671ec2d)) != 0 {
		t.Errorf("in-place sub = %s borrow=%v", e, borrow)
	}
}

func TestIntBitLenAndPow2(t *testing.T) {
	z := NewInt(5)
	if z.BitLen() != 0 {
		t.Errorf("BitLen(0) = %d", z.BitLen())
	}
	z.SetOne()
	if z.BitLen() != 1 {
		t.Errorf("BitLen(1) = %d", z.BitLen())
	}
	for _, e := range []uint{0, 1, 31, 32, 77, 159} {
		z.SetPow2(e)
		if z.BitLen() != e+1 {
			t.Errorf("BitLen(2^%d) = %d", e, z.BitLen())
		}
		if z.Bit(e) != 1 {
			t.Errorf("bit %d of 2^%d is clear", e, e)
		}
	}
	z = NewIntBE(0xb7790000, 0, 0, 0, 0)
	if z.BitLen() != 160 {
		t.Errorf("BitLen(top set) = %d", z.BitLen())
	}
}

func TestIntBytesRoundTrip(t *testing.T) {
	z := NewIntBE(0x01a8b80c, 0x425b5530, 0xc29ce6b1, 0xebc4a008, 0x107bb597)
	b := z.Bytes()
	if len(b) != 20 || b[0] != 0x01 || b[19] != 0x97 {
		t.Errorf("bytes = %x", b)
	}
	back := NewInt(5)
	back.SetBytes(b)
	if back.Cmp(z) != 0 {
		t.Errorf("round trip = %s", back)
	}
}
