package gec

import (
	"github.com/pkg/errors"

	"github.com/chinmayghegde/gec/bigint"
	"github.com/chinmayghegde/gec/curve"
)

// Field160 returns the 160-bit prime field with modulus
// 0xb77902ab_d8db9627_f5d7ceca_5c17ef6c_5e3b0969 over five 32-bit limbs.
// The modulus is 1 mod 4, so its square roots take the general
// Tonelli-Shanks branch.
func Field160() *bigint.Field {
	f, err := bigint.NewField(
		bigint.NewIntBE(0xb77902ab, 0xd8db9627, 0xf5d7ceca, 0x5c17ef6c, 0x5e3b0969),
		0x96c9e927, // -M^-1 mod 2^32
		bigint.NewIntBE(0x7cd393b3, 0x8aec7519, 0x46c1c15a, 0x399ce6a5, 0x61260cf2), // R^2 mod M
		bigint.NewIntBE(0x4886fd54, 0x272469d8, 0x0a283135, 0xa3e81093, 0xa1c4f697), // R mod M
	)
	if err != nil {
		panic(errors.Wrap(err, "field160"))
	}
	return f
}

// Curve160 returns y^2 = x^3 - 3x + B over Field160 together with a point
// on it. The subgroup structure of this curve is unexplored; it serves the
// coordinate-arithmetic suites, which never need the group order.
func Curve160() (*curve.Curve, *curve.Affine) {
	f := Field160()
	a := f.NewElem()
	a.Set(f.Mod())
	three := f.NewElem()
	three.SetUint32(3)
	a.SubInto(three) // A = M - 3
	c, err := curve.New(f, a,
		bigint.NewIntBE(0x1c97befc, 0x54bd7a8b, 0x65acf89f, 0x81d4d4ad, 0xc565fa45))
	if err != nil {
		panic(errors.Wrap(err, "curve160"))
	}
	g := c.NewAffineXY(
		bigint.NewIntBE(0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000004),
		bigint.NewIntBE(0x15622912, 0xe4e204a0, 0xd0ef2712, 0xfadc26ba, 0x641d880e),
	)
	return c, g
}
