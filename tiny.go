package gec

import (
	"github.com/pkg/errors"

	"github.com/chinmayghegde/gec/bigint"
	"github.com/chinmayghegde/gec/curve"
)

// Field22 returns the single-limb prime field with modulus 0x200011. Small
// enough to exhaust, large enough to carry a curve whose whole group has a
// prime order just above 2^21; the solver suites live here.
func Field22() *bigint.Field {
	f, err := bigint.NewField(
		bigint.NewIntBE(0x00200011),
		0x6b2f0f0f, // -M^-1 mod 2^32
		bigint.NewIntBE(0x001fd9af), // R^2 mod M
		bigint.NewIntBE(0x001f7811), // R mod M
	)
	if err != nil {
		panic(errors.Wrap(err, "field22"))
	}
	return f
}

// Order22 returns the additive group modulo 0x200491, the prime order of
// Curve22's point group. Scalars for Curve22 live here.
func Order22() *bigint.Group {
	return bigint.NewGroup(bigint.NewIntBE(0x00200491))
}

// Curve22 returns y^2 = x^3 + x + 1 over Field22 and the generator
// (1, 0x13778e). The group order 0x200491 is prime, so every non-infinity
// point generates the whole group.
func Curve22() (*curve.Curve, *curve.Affine) {
	f := Field22()
	a := f.NewElem()
	a.SetOne()
	c, err := curve.New(f, a, bigint.NewIntBE(0x00000001))
	if err != nil {
		panic(errors.Wrap(err, "curve22"))
	}
	g := c.NewAffineXY(bigint.NewIntBE(0x00000001), bigint.NewIntBE(0x0013778e))
	return c, g
}
