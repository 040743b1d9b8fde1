package gec

import (
	"github.com/pkg/errors"

	"github.com/chinmayghegde/gec/bigint"
	"github.com/chinmayghegde/gec/curve"
)

// Secp256k1Field returns the secp256k1 base field, p = 2^256 - 2^32 - 977,
// over eight 32-bit limbs.
func Secp256k1Field() *bigint.Field {
	f, err := bigint.NewField(
		bigint.NewIntBE(0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff,
			0xffffffff, 0xffffffff, 0xfffffffe, 0xfffffc2f),
		0xd2253531, // -p^-1 mod 2^32
		bigint.NewIntBE(0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000001, 0x000007a2, 0x000e90a1), // R^2 mod p
		bigint.NewIntBE(0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000001, 0x000003d1), // R mod p
	)
	if err != nil {
		panic(errors.Wrap(err, "secp256k1 field"))
	}
	return f
}

// Secp256k1Order returns the secp256k1 scalar field over the prime group
// order n.
func Secp256k1Order() *bigint.Field {
	f, err := bigint.NewField(
		bigint.NewIntBE(0xffffffff, 0xffffffff, 0xffffffff, 0xfffffffe,
			0xbaaedce6, 0xaf48a03b, 0xbfd25e8c, 0xd0364141),
		0x5588b13f, // -n^-1 mod 2^32
		bigint.NewIntBE(0x9d671cd5, 0x81c69bc5, 0xe697f5e4, 0x5bcd07c6,
			0x741496c2, 0x0e7cf878, 0x896cf214, 0x67d7d140), // R^2 mod n
		bigint.NewIntBE(0x00000000, 0x00000000, 0x00000000, 0x00000001,
			0x45512319, 0x50b75fc4, 0x402da173, 0x2fc9bebf), // R mod n
	)
	if err != nil {
		panic(errors.Wrap(err, "secp256k1 order"))
	}
	return f
}

// Secp256k1 returns the secp256k1 curve y^2 = x^3 + 7 and its standard
// generator.
func Secp256k1() (*curve.Curve, *curve.Affine) {
	f := Secp256k1Field()
	a := f.NewElem()
	b := f.NewElem()
	b.SetUint32(7)
	c, err := curve.New(f, a, b)
	if err != nil {
		panic(errors.Wrap(err, "secp256k1"))
	}
	g := c.NewAffineXY(
		bigint.NewIntBE(0x79be667e, 0xf9dcbbac, 0x55a06295, 0xce870b07,
			0x029bfcdb, 0x2dce28d9, 0x59f2815b, 0x16f81798),
		bigint.NewIntBE(0x483ada77, 0x26a3c465, 0x5da4fbfc, 0x0e1108a8,
			0xfd17b448, 0xa6855419, 0x9c47d08f, 0xfb10d4b8),
	)
	return c, g
}
