package gec_test

import (
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	fp "github.com/consensys/gnark-crypto/ecc/secp256k1/fp"
	decred "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	gec "github.com/chinmayghegde/gec"
	"github.com/chinmayghegde/gec/bigint"
	"github.com/chinmayghegde/gec/curve"
)

func TestField160Fixture(t *testing.T) {
	f := gec.Field160()
	require.Equal(t, uint(160), f.Mod().BitLen())
	require.Equal(t, 0,
		f.MontOne().Cmp(bigint.NewIntBE(0x4886fd54, 0x272469d8, 0x0a283135, 0xa3e81093, 0xa1c4f697)))
}

func TestCurve160Generator(t *testing.T) {
	c, g := gec.Curve160()
	ws, err := c.NewWorkspace(curve.WsMax)
	require.NoError(t, err)
	require.True(t, g.OnCurve(c, ws))
}

func TestCurve22Generator(t *testing.T) {
	c, g := gec.Curve22()
	ws, err := c.NewWorkspace(curve.WsMax)
	require.NoError(t, err)
	require.True(t, g.OnCurve(c, ws))
}

// sampleBytes draws a reduced field element and returns it along with its
// canonical 32-byte serialisation.
func sampleBytes(f *bigint.Field, rng *mrand.Rand) (bigint.Int, []byte) {
	z := f.NewElem()
	f.Sample(z, rng)
	return z, z.Bytes()
}

func TestSecp256k1FieldVsDecred(t *testing.T) {
	f := gec.Secp256k1Field()
	ctx := f.NewCtx()
	rng := mrand.New(mrand.NewSource(83))

	ma, mb, mprod, prod := f.NewElem(), f.NewElem(), f.NewElem(), f.NewElem()
	for i := 0; i < 200; i++ {
		a, ab := sampleBytes(f, rng)
		b, bb := sampleBytes(f, rng)

		f.ToMont(ma, a, ctx)
		f.ToMont(mb, b, ctx)
		f.Mul(mprod, ma, mb, ctx)
		f.FromMont(prod, mprod, ctx)

		var da, db decred.FieldVal
		require.False(t, da.SetByteSlice(ab))
		require.False(t, db.SetByteSlice(bb))
		da.Mul(&db)
		da.Normalize()
		var got [32]byte
		da.PutBytes(&got)

		require.Equal(t, got[:], prod.Bytes(), "iteration %d", i)
	}
}

func TestSecp256k1FieldVsGnark(t *testing.T) {
	f := gec.Secp256k1Field()
	ctx := f.NewCtx()
	rng := mrand.New(mrand.NewSource(89))

	ma, mb, mprod, prod := f.NewElem(), f.NewElem(), f.NewElem(), f.NewElem()
	for i := 0; i < 200; i++ {
		a, ab := sampleBytes(f, rng)
		b, bb := sampleBytes(f, rng)

		f.ToMont(ma, a, ctx)
		f.ToMont(mb, b, ctx)
		f.Mul(mprod, ma, mb, ctx)
		f.FromMont(prod, mprod, ctx)

		var ga, gb fp.Element
		ga.SetBytes(ab)
		gb.SetBytes(bb)
		ga.Mul(&ga, &gb)
		got := ga.Bytes()

		require.Equal(t, got[:], prod.Bytes(), "iteration %d", i)
	}
}

func TestSecp256k1FieldVsUint256(t *testing.T) {
	f := gec.Secp256k1Field()
	ctx := f.NewCtx()
	rng := mrand.New(mrand.NewSource(97))

	mod := new(uint256.Int).SetBytes(f.Mod().Bytes())
	ma, mb, mres, res := f.NewElem(), f.NewElem(), f.NewElem(), f.NewElem()
	for i := 0; i < 200; i++ {
		a, ab := sampleBytes(f, rng)
		b, bb := sampleBytes(f, rng)
		ua := new(uint256.Int).SetBytes(ab)
		ub := new(uint256.Int).SetBytes(bb)

		// Multiplication.
		f.ToMont(ma, a, ctx)
		f.ToMont(mb, b, ctx)
		f.Mul(mres, ma, mb, ctx)
		f.FromMont(res, mres, ctx)
		want := new(uint256.Int).MulMod(ua, ub, mod)
		got := want.Bytes32()
		require.Equal(t, got[:], res.Bytes(), "mul iteration %d", i)

		// Addition in the embedded add-group.
		f.Add(res, a, b)
		want.AddMod(ua, ub, mod)
		got = want.Bytes32()
		require.Equal(t, got[:], res.Bytes(), "add iteration %d", i)
	}
}

func TestSecp256k1VsBtcec(t *testing.T) {
	c, g := gec.Secp256k1()
	ws, err := c.NewWorkspace(curve.WsMax)
	require.NoError(t, err)
	require.True(t, g.OnCurve(c, ws))

	params := btcec.S256().Params()

	// The preset generator is the standard one.
	gx := c.F.NewElem()
	c.F.FromMont(gx, g.X, ws.Fc)
	gy := c.F.NewElem()
	c.F.FromMont(gy, g.Y, ws.Fc)
	require.Zero(t, new(big.Int).SetBytes(gx.Bytes()).Cmp(params.Gx))
	require.Zero(t, new(big.Int).SetBytes(gy.Bytes()).Cmp(params.Gy))

	// Scalar base multiplication agrees with btcec for random scalars.
	rng := mrand.New(mrand.NewSource(101))
	n := gec.Secp256k1Order()
	gj := c.NewJacobian()
	gj.SetAffine(c, g)
	p := c.NewJacobian()
	aff := c.NewAffine()
	k := n.NewElem()
	for i := 0; i < 8; i++ {
		n.Sample(k, rng)
		kb := k.Bytes()

		p.ScalarMul(c, k, gj, ws)
		aff.SetJacobian(c, p, ws)
		require.False(t, aff.Inf)
		x := c.F.NewElem()
		y := c.F.NewElem()
		c.F.FromMont(x, aff.X, ws.Fc)
		c.F.FromMont(y, aff.Y, ws.Fc)

		wx, wy := btcec.S256().ScalarBaseMult(kb)
		require.Zero(t, new(big.Int).SetBytes(x.Bytes()).Cmp(wx), "x at iteration %d", i)
		require.Zero(t, new(big.Int).SetBytes(y.Bytes()).Cmp(wy), "y at iteration %d", i)
	}
}

func TestSecp256k1SqrtBranch(t *testing.T) {
	// p = 3 (mod 4), so this exercises the direct exponent branch of
	// ModSqrt, complementing the general branch covered by Field160.
	f := gec.Secp256k1Field()
	ctx := f.NewCtx()
	rng := mrand.New(mrand.NewSource(103))

	x, xx, root, sqr := f.NewElem(), f.NewElem(), f.NewElem(), f.NewElem()
	for i := 0; i < 100; i++ {
		f.Sample(x, rng)
		f.Mul(xx, x, x, ctx)
		require.True(t, f.ModSqrt(root, xx, rng, ctx))
		f.Mul(sqr, root, root, ctx)
		require.Zero(t, sqr.Cmp(xx), "iteration %d", i)
	}
}

func TestSecp256k1OrderField(t *testing.T) {
	n := gec.Secp256k1Order()
	ctx := n.NewCtx()
	rng := mrand.New(mrand.NewSource(107))

	// Fermat in the scalar field.
	nm1 := n.NewElem()
	one := n.NewElem()
	one.SetOne()
	nm1.Sub(n.Mod(), one)

	a, ma, r, plain := n.NewElem(), n.NewElem(), n.NewElem(), n.NewElem()
	for i := 0; i < 50; i++ {
		n.SampleNonZero(a, rng)
		n.ToMont(ma, a, ctx)
		n.Pow(r, ma, nm1, ctx)
		n.FromMont(plain, r, ctx)
		require.True(t, plain.IsOne(), "iteration %d", i)
	}
}
