package bigint

// Field is a prime field with elements kept in Montgomery form. For a
// modulus M over n limbs the Montgomery radix is R = 2^(n*32); an element a
// is stored as a*R mod M. The caller supplies the precomputed constants
// M' = -M^-1 mod 2^32, R^2 mod M and R mod M; construction validates them
// against the modulus before they are trusted.
type Field struct {
	Group

	mp      uint32 // -M^-1 mod 2^32
	rSqr    Int    // R^2 mod M
	oneR    Int    // R mod M, one in Montgomery form
	one     Int    // plain 1
	negOneR Int    // M - R mod M, minus one in Montgomery form

	// Tonelli-Shanks decomposition, fixed at construction:
	// M - 1 = q * 2^s with q odd.
	mh  Int  // (M-1)/2, the Euler criterion exponent
	q   Int  // odd part of M-1
	s   uint // trailing zero count of M-1
	qh  Int  // (q+1)/2
	p14 Int  // (M+1)/4 when M = 3 (mod 4), nil otherwise
}

// NewField builds a prime field from a modulus and its Montgomery
// constants. The modulus must be odd; the constants are cross-checked
// against a freshly derived R mod M so an inconsistent set is rejected
// rather than silently corrupting every product.
func NewField(m Int, mp uint32, rSqr, oneR Int) (*Field, error) {
	if m[0]&1 == 0 {
		return nil, makeError(ErrEvenModulus, "montgomery arithmetic requires an odd modulus")
	}
	if len(rSqr) != len(m) || len(oneR) != len(m) {
		return nil, makeError(ErrBadLength, "constant limb count differs from modulus")
	}
	if mp*m[0] != ^uint32(0) {
		return nil, makeError(ErrBadMontConstant, "M' is not -M^-1 mod 2^32")
	}
	if seqCmp(rSqr, m) >= 0 || seqCmp(oneR, m) >= 0 {
		return nil, makeError(ErrBadMontConstant, "montgomery constant not reduced")
	}

	f := &Field{
		Group: *NewGroup(m),
		mp:    mp,
		rSqr:  rSqr.Clone(),
		oneR:  oneR.Clone(),
		one:   NewInt(len(m)),
	}
	f.one.SetOne()

	// Derive R mod M by doubling 1 up to the radix and compare.
	check := f.NewElem()
	check.SetOne()
	f.MulPow2(check, uint(len(m))*limbBits)
	if check.Cmp(f.oneR) != 0 {
		return nil, makeError(ErrBadMontConstant, "R mod M does not match modulus")
	}
	// FromMont(R^2) must equal R mod M.
	ctx := f.NewCtx()
	f.Mul(check, f.rSqr, f.one, ctx)
	if check.Cmp(f.oneR) != 0 {
		return nil, makeError(ErrBadMontConstant, "R^2 mod M does not match modulus")
	}

	f.negOneR = f.NewElem()
	f.Neg(f.negOneR, f.oneR)

	f.mh = f.m.Clone()
	f.mh.SubInto(f.one)
	f.mh.Shr(1)

	f.q = f.m.Clone()
	f.q.SubInto(f.one)
	for f.q[0]&1 == 0 {
		f.q.Shr(1)
		f.s++
	}
	f.qh = f.q.Clone()
	f.qh.AddInto(f.one)
	f.qh.Shr(1)

	if f.m[0]&3 == 3 {
		// (M+1)/4 needs one spare bit before the shift.
		wide := NewInt(len(m) + 1)
		copy(wide, f.m)
		one := NewInt(len(m) + 1)
		one.SetOne()
		wide.AddInto(one)
		wide.Shr(2)
		f.p14 = wide[:len(m)].Clone()
	}
	return f, nil
}

// MontOne returns one in Montgomery form (R mod M). Read-only.
func (f *Field) MontOne() Int {
	return f.oneR
}

// RSqr returns R^2 mod M. Read-only.
func (f *Field) RSqr() Int {
	return f.rSqr
}

// Mul sets z = x*y*R^-1 (mod M): the Montgomery product, computed with the
// interleaved CIOS scan. For x, y in [0, M) the result is in [0, M).
// z may alias x or y; it is written only after both are fully consumed.
func (f *Field) Mul(z, x, y Int, c *Ctx) {
	n := len(f.m)
	c.check(n)
	t := c.t
	for i := range t {
		t[i] = 0
	}
	for i := 0; i < n; i++ {
		xi := uint64(x[i])
		var carry uint64
		for j := 0; j < n; j++ {
			s := t[j] + xi*uint64(y[j]) + carry
			t[j] = s & 0xffffffff
			carry = s >> limbBits
		}
		s := t[n] + carry
		t[n] = s & 0xffffffff
		t[n+1] += s >> limbBits

		u := uint64(uint32(t[0]) * f.mp)
		carry = (t[0] + u*uint64(f.m[0])) >> limbBits
		for j := 1; j < n; j++ {
			s = t[j] + u*uint64(f.m[j]) + carry
			t[j-1] = s & 0xffffffff
			carry = s >> limbBits
		}
		s = t[n] + carry
		t[n-1] = s & 0xffffffff
		t[n] = t[n+1] + s>>limbBits
		t[n+1] = 0
	}

	// Conditional final subtraction: the accumulated value is below 2M.
	sub := t[n] != 0
	if !sub {
		sub = true // subtract when equal to M as well
		for i := n - 1; i >= 0; i-- {
			if uint32(t[i]) != f.m[i] {
				sub = uint32(t[i]) > f.m[i]
				break
			}
		}
	}
	if sub {
		var borrow uint32
		for i := 0; i < n; i++ {
			z[i], borrow = subBorrow(uint32(t[i]), f.m[i], borrow)
		}
	} else {
		for i := 0; i < n; i++ {
			z[i] = uint32(t[i])
		}
	}
}

// ToMont sets z = a*R (mod M), carrying a into the Montgomery domain.
func (f *Field) ToMont(z, a Int, c *Ctx) {
	f.Mul(z, a, f.rSqr, c)
}

// FromMont sets z = a*R^-1 (mod M), leaving the Montgomery domain.
func (f *Field) FromMont(z, a Int, c *Ctx) {
	f.Mul(z, a, f.one, c)
}

// Pow sets z = base^exp in the Montgomery domain: base is a Montgomery
// residue and so is the result. Pow(b, 0) is one in Montgomery form and
// Pow(b, 1) is b. Square-and-multiply from the most significant bit down.
func (f *Field) Pow(z, base, exp Int, c *Ctx) {
	c.check(len(f.m))
	res := c.e3
	res.Set(f.oneR)
	for i := exp.BitLen(); i > 0; i-- {
		f.Mul(res, res, res, c)
		if exp.Bit(i-1) == 1 {
			f.Mul(res, res, base, c)
		}
	}
	z.Set(res)
}

// PowUint32 is Pow with a small exponent.
func (f *Field) PowUint32(z, base Int, exp uint32, c *Ctx) {
	c.check(len(f.m))
	res := c.e3
	res.Set(f.oneR)
	for i := limbBits - uint(leadingZeros(exp)); i > 0; i-- {
		f.Mul(res, res, res, c)
		if exp>>(i-1)&1 == 1 {
			f.Mul(res, res, base, c)
		}
	}
	z.Set(res)
}

// Inv sets z = x^-1 in the Montgomery domain: for x = a*R it produces
// a^-1*R. Kaliski's almost-inverse runs a binary extended gcd that yields
// x^-1 * 2^k with k between the modulus bit length and twice the radix
// width; the correction then doubles the result back up to the Montgomery
// residue. Fails with ErrUndefinedInverse on zero.
func (f *Field) Inv(z, x Int, c *Ctx) error {
	if x.IsZero() {
		return makeError(ErrUndefinedInverse, "inverse of zero is undefined")
	}
	n := len(f.m)
	c.check(n)
	u, v, r, s := c.u, c.v, c.r, c.s
	u.SetZero()
	copy(u, f.m)
	v.SetZero()
	copy(v, x)
	r.SetZero()
	s.SetOne()

	k := uint(0)
	for !v.IsZero() {
		switch {
		case u[0]&1 == 0:
			seqShr(u, 1)
			seqShl(s, 1)
		case v[0]&1 == 0:
			seqShr(v, 1)
			seqShl(r, 1)
		case seqCmp(u, v) > 0:
			seqSubInto(u, v)
			seqShr(u, 1)
			seqAddInto(r, s)
			seqShl(s, 1)
		default:
			seqSubInto(v, u)
			seqShr(v, 1)
			seqAddInto(s, r)
			seqShl(r, 1)
		}
		k++
	}

	// The gcd phase leaves r = -x^-1 * 2^k (mod M) in the [0, 2M) band.
	if r[n] != 0 || seqCmp(r[:n], f.m) >= 0 {
		if seqSubInto(r[:n], f.m) != 0 {
			r[n]--
		}
	}
	seqSub(z, f.m, r[:n])

	// Doubling correction: z * 2^(2*n*32 - k) = x^-1 * R.
	f.MulPow2(z, 2*uint(n)*limbBits-k)
	return nil
}

// InvBatch inverts every element of in into the matching slot of out with a
// single field inversion, using the running-product trick. out and in must
// not overlap and every input must be non-zero; a zero input surfaces as
// ErrUndefinedInverse.
func (f *Field) InvBatch(out, in []Int, c *Ctx) error {
	n := len(in)
	if n == 0 {
		return nil
	}
	// out[i] accumulates the product of in[0] .. in[i-1].
	out[0].Set(f.oneR)
	for i := 1; i < n; i++ {
		f.Mul(out[i], out[i-1], in[i-1], c)
	}
	f.Mul(c.e1, out[n-1], in[n-1], c)
	if err := f.Inv(c.e2, c.e1, c); err != nil {
		return err
	}
	// Walk backwards so the rewrite stays in place.
	for i := n - 1; i >= 0; i-- {
		f.Mul(out[i], c.e2, out[i], c)
		f.Mul(c.e2, c.e2, in[i], c)
	}
	return nil
}

// ModSqrt computes a square root of a in the Montgomery domain using
// Tonelli-Shanks. It reports whether a is a quadratic residue; on true, z
// holds a root r with r^2 = a (mod M). For M = 3 (mod 4) the direct
// exponent branch is taken; otherwise the rng searches for a quadratic
// non-residue to seed the descent.
func (f *Field) ModSqrt(z, a Int, rng Rng, c *Ctx) bool {
	c.check(len(f.m))
	if a.IsZero() {
		z.SetZero()
		return true
	}
	f.Pow(c.e1, a, f.mh, c)
	if c.e1.Cmp(f.oneR) != 0 {
		return false
	}
	if f.p14 != nil {
		f.Pow(z, a, f.p14, c)
		return true
	}

	// Find a non-residue g and set up g^q, a^q, a^((q+1)/2).
	for {
		f.SampleNonZero(c.e1, rng)
		f.ToMont(c.e2, c.e1, c)
		f.Pow(c.e1, c.e2, f.mh, c)
		if c.e1.Cmp(f.negOneR) == 0 {
			break
		}
	}
	f.Pow(c.e1, c.e2, f.q, c)  // g^q
	f.Pow(c.e2, a, f.q, c)     // t = a^q
	f.Pow(c.e4, a, f.qh, c)    // r = a^((q+1)/2)

	m := f.s
	for c.e2.Cmp(f.oneR) != 0 {
		// Least i with t^(2^i) = 1.
		i := uint(0)
		c.e3.Set(c.e2)
		for c.e3.Cmp(f.oneR) != 0 {
			f.Mul(c.e3, c.e3, c.e3, c)
			i++
		}
		// b = (g^q)^(2^(m-i-1))
		c.e3.Set(c.e1)
		for j := m - i - 1; j > 0; j-- {
			f.Mul(c.e3, c.e3, c.e3, c)
		}
		f.Mul(c.e4, c.e4, c.e3, c) // r *= b
		f.Mul(c.e1, c.e3, c.e3, c) // g^q <- b^2
		f.Mul(c.e2, c.e2, c.e1, c) // t *= b^2
		m = i
	}
	z.Set(c.e4)
	return true
}
