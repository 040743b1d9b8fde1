package bigint

// Group is the additive group of integers modulo M. Every operation takes
// operands in [0, M) and produces results in [0, M).
type Group struct {
	m         Int
	carryFree bool
}

// NewGroup returns the additive group modulo m. The carry-free doubling
// variant is selected here, once, exactly when the modulus leaves a spare
// top bit (M < 2^(N*32-1)); the carry-tracking variant is used otherwise.
// Both variants double one bit per step.
func NewGroup(m Int) *Group {
	if m.IsZero() {
		panic("bigint: zero modulus")
	}
	return &Group{
		m:         m.Clone(),
		carryFree: m.BitLen() < uint(len(m))*limbBits,
	}
}

// Mod returns the modulus. The caller must not modify it.
func (g *Group) Mod() Int {
	return g.m
}

// Limbs returns the limb count of group elements.
func (g *Group) Limbs() int {
	return len(g.m)
}

// NewElem returns a zero element with the group's limb count.
func (g *Group) NewElem() Int {
	return NewInt(len(g.m))
}

// reduceAfterAdd performs the conditional subtraction following a raw
// ripple-carry addition.
func (g *Group) reduceAfterAdd(z Int, carry bool) {
	if carry || seqCmp(z, g.m) >= 0 {
		seqSubInto(z, g.m)
	}
}

// Add sets z = x + y (mod M).
func (g *Group) Add(z, x, y Int) {
	g.reduceAfterAdd(z, seqAdd(z, x, y) != 0)
}

// AddInto sets z = z + x (mod M).
func (g *Group) AddInto(z, x Int) {
	g.reduceAfterAdd(z, seqAddInto(z, x) != 0)
}

// Sub sets z = x - y (mod M).
func (g *Group) Sub(z, x, y Int) {
	if seqSub(z, x, y) != 0 {
		seqAddInto(z, g.m)
	}
}

// SubInto sets z = z - x (mod M).
func (g *Group) SubInto(z, x Int) {
	if seqSubInto(z, x) != 0 {
		seqAddInto(z, g.m)
	}
}

// Neg sets z = -x (mod M): zero stays zero, otherwise M - x.
func (g *Group) Neg(z, x Int) {
	if x.IsZero() {
		z.SetZero()
		return
	}
	seqSub(z, g.m, x)
}

// AddSelf sets z = 2*z (mod M).
func (g *Group) AddSelf(z Int) {
	g.MulPow2(z, 1)
}

// MulPow2 sets z = z * 2^k (mod M). With a spare top bit in the limb layout
// the whole shift happens in single-bit steps without tracking the carry;
// otherwise each step records the bit shifted out of the top limb before
// the conditional subtraction.
func (g *Group) MulPow2(z Int, k uint) {
	if g.carryFree {
		for ; k > 0; k-- {
			seqShl(z, 1)
			if seqCmp(z, g.m) >= 0 {
				seqSubInto(z, g.m)
			}
		}
		return
	}
	topBit := uint32(1) << (limbBits - 1)
	for ; k > 0; k-- {
		carry := z[len(z)-1]&topBit != 0
		seqShl(z, 1)
		if carry || seqCmp(z, g.m) >= 0 {
			seqSubInto(z, g.m)
		}
	}
}

// Sample draws a uniform element of [0, M) into z.
func (g *Group) Sample(z Int, rng Rng) {
	Sample(z, g.m, rng)
}

// SampleNonZero draws a uniform element of [1, M) into z.
func (g *Group) SampleNonZero(z Int, rng Rng) {
	for {
		Sample(z, g.m, rng)
		if !z.IsZero() {
			return
		}
	}
}
