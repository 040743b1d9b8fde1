package curve

import "github.com/chinmayghegde/gec/bigint"

// Jacobian is a point in Jacobian coordinates: the affine point is
// (X/Z^2, Y/Z^3) and Z = 0 marks the point at infinity. Coordinates are in
// Montgomery form.
type Jacobian struct {
	X, Y, Z bigint.Int
}

// NewJacobian returns the point at infinity with coordinates sized for c.
func (c *Curve) NewJacobian() *Jacobian {
	return &Jacobian{X: c.F.NewElem(), Y: c.F.NewElem(), Z: c.F.NewElem()}
}

// Set copies p into r.
func (r *Jacobian) Set(p *Jacobian) {
	r.X.Set(p.X)
	r.Y.Set(p.Y)
	r.Z.Set(p.Z)
}

// IsInf reports whether r is the point at infinity.
func (r *Jacobian) IsInf() bool {
	return r.Z.IsZero()
}

// SetInf sets r to the point at infinity.
func (r *Jacobian) SetInf() {
	r.X.SetZero()
	r.Y.SetZero()
	r.Z.SetZero()
}

// Neg sets r = -p: the y coordinate is negated.
func (r *Jacobian) Neg(c *Curve, p *Jacobian) {
	r.X.Set(p.X)
	c.F.Neg(r.Y, p.Y)
	r.Z.Set(p.Z)
}

// OnCurve reports whether p satisfies y^2 = x^3 + A*x*z^4 + B*z^6.
// Infinity is on the curve. Requires 4 workspace slots.
func (p *Jacobian) OnCurve(c *Curve, ws *Workspace) bool {
	ws.require(WsOnCurve)
	if p.IsInf() {
		return true
	}
	f := c.F
	l, rr, t1, t2 := ws.T[0], ws.T[1], ws.T[2], ws.T[3]
	f.Mul(t1, p.Z, p.Z, ws.Fc)  // z^2
	f.Mul(t2, t1, t1, ws.Fc)    // z^4
	f.Mul(rr, t1, t2, ws.Fc)    // z^6
	f.Mul(l, p.X, t2, ws.Fc)    // x z^4
	f.Mul(t2, c.a, l, ws.Fc)    // A x z^4
	f.Mul(t1, c.b, rr, ws.Fc)   // B z^6
	f.Mul(l, p.X, p.X, ws.Fc)   // x^2
	f.Mul(rr, l, p.X, ws.Fc)    // x^3
	f.AddInto(rr, t2)           // x^3 + A x z^4
	f.AddInto(rr, t1)           // x^3 + A x z^4 + B z^6
	f.Mul(l, p.Y, p.Y, ws.Fc)   // y^2
	return l.Cmp(rr) == 0
}

// Eq reports whether p and q are the same point, respecting the Jacobian
// equivalence classes: x1 z2^2 = x2 z1^2 and y1 z2^3 = y2 z1^3. Requires 4
// workspace slots.
func (p *Jacobian) Eq(c *Curve, q *Jacobian, ws *Workspace) bool {
	ws.require(WsEq)
	pInf, qInf := p.IsInf(), q.IsInf()
	if pInf && qInf {
		return true
	}
	if pInf || qInf {
		return false
	}
	if p.Z.Cmp(q.Z) == 0 {
		return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
	}
	f := c.F
	ta, tb, tc, td := ws.T[0], ws.T[1], ws.T[2], ws.T[3]
	f.Mul(tc, p.Z, p.Z, ws.Fc) // z1^2
	f.Mul(td, q.Z, q.Z, ws.Fc) // z2^2
	f.Mul(ta, p.X, td, ws.Fc)  // x1 z2^2
	f.Mul(tb, q.X, tc, ws.Fc)  // x2 z1^2
	if ta.Cmp(tb) != 0 {
		return false
	}
	f.Mul(ta, tc, p.Z, ws.Fc) // z1^3
	f.Mul(tb, td, q.Z, ws.Fc) // z2^3
	f.Mul(tc, p.Y, tb, ws.Fc) // y1 z2^3
	f.Mul(td, q.Y, ta, ws.Fc) // y2 z1^3
	return tc.Cmp(td) == 0
}

// addDistinctInner finishes a distinct addition from the precomputed
// cross products: ws.T[0] = x1 z2^2, ws.T[1] = x2 z1^2, ws.T[2] = y1 z2^3,
// ws.T[3] = y2 z1^3.
func (r *Jacobian) addDistinctInner(c *Curve, p, q *Jacobian, ws *Workspace) {
	f := c.F
	t1, t2, t3, t4 := ws.T[0], ws.T[1], ws.T[2], ws.T[3]
	f.SubInto(t2, t1)          // e = b - a
	f.SubInto(t4, t3)          // f = d - c
	f.Mul(r.Z, t2, t2, ws.Fc)  // e^2
	f.Mul(r.Y, t1, r.Z, ws.Fc) // a e^2
	f.Mul(t1, r.Z, t2, ws.Fc)  // e^3
	f.Mul(r.Z, t3, t1, ws.Fc)  // c e^3
	f.Add(t3, r.Y, r.Y)        // 2 a e^2
	f.Mul(r.X, t4, t4, ws.Fc)  // f^2
	f.SubInto(r.X, t3)         // f^2 - 2 a e^2
	f.SubInto(r.X, t1)         // x = f^2 - 2 a e^2 - e^3
	f.Sub(t1, r.Y, r.X)        // a e^2 - x
	f.Mul(r.Y, t4, t1, ws.Fc)  // f (a e^2 - x)
	f.SubInto(r.Y, r.Z)        // y = f (a e^2 - x) - c e^3
	f.Mul(t1, p.Z, q.Z, ws.Fc) // z1 z2
	f.Mul(r.Z, t1, t2, ws.Fc)  // z = z1 z2 e
}

// crossProducts fills ws.T[0..3] with x1 z2^2, x2 z1^2, y1 z2^3, y2 z1^3
// using ws.T[4] as scratch.
func crossProducts(c *Curve, p, q *Jacobian, ws *Workspace) {
	f := c.F
	ta, tb, tc, td, t := ws.T[0], ws.T[1], ws.T[2], ws.T[3], ws.T[4]
	f.Mul(tc, q.Z, q.Z, ws.Fc) // z2^2
	f.Mul(t, tc, q.Z, ws.Fc)   // z2^3
	f.Mul(ta, tc, p.X, ws.Fc)  // x1 z2^2
	f.Mul(tc, t, p.Y, ws.Fc)   // y1 z2^3
	f.Mul(td, p.Z, p.Z, ws.Fc) // z1^2
	f.Mul(t, td, p.Z, ws.Fc)   // z1^3
	f.Mul(tb, td, q.X, ws.Fc)  // x2 z1^2
	f.Mul(td, t, q.Y, ws.Fc)   // y2 z1^3
}

// AddDistinct sets r = p + q for p != +-q with neither infinity, using the
// 12M+4S chord formula. r must not alias p or q. Requires 5 workspace
// slots. Violating the distinctness precondition silently corrupts the
// result; use Add when it cannot be guaranteed.
func (r *Jacobian) AddDistinct(c *Curve, p, q *Jacobian, ws *Workspace) {
	ws.require(WsAddDistinct)
	crossProducts(c, p, q, ws)
	r.addDistinctInner(c, p, q, ws)
}

// Double sets r = 2p. r must not alias p. Requires 2 workspace slots.
// Doubling infinity yields infinity (z stays zero).
func (r *Jacobian) Double(c *Curve, p *Jacobian, ws *Workspace) {
	ws.require(WsDouble)
	f := c.F
	t4, t5 := ws.T[0], ws.T[1]
	f.Mul(t5, p.Z, p.Z, ws.Fc)  // z1^2
	f.Mul(t4, t5, t5, ws.Fc)    // z1^4
	f.Mul(t5, c.a, t4, ws.Fc)   // A z1^4
	f.Mul(t4, p.X, p.X, ws.Fc)  // x1^2
	f.AddInto(t5, t4)           // x1^2 + A z1^4
	f.AddInto(t5, t4)           // 2 x1^2 + A z1^4
	f.AddInto(t5, t4)           // b = 3 x1^2 + A z1^4
	f.Mul(r.Z, p.Y, p.Y, ws.Fc) // y1^2
	f.Mul(t4, p.X, r.Z, ws.Fc)  // x1 y1^2
	f.MulPow2(t4, 2)            // a = 4 x1 y1^2
	f.Add(r.Y, t4, t4)          // 2 a
	f.Mul(r.X, t5, t5, ws.Fc)   // b^2
	f.SubInto(r.X, r.Y)         // x = b^2 - 2 a
	f.SubInto(t4, r.X)          // a - x
	f.Mul(r.Y, t5, t4, ws.Fc)   // b (a - x)
	f.Mul(t4, r.Z, r.Z, ws.Fc)  // y1^4
	f.MulPow2(t4, 3)            // 8 y1^4
	f.SubInto(r.Y, t4)          // y = b (a - x) - 8 y1^4
	f.Mul(r.Z, p.Y, p.Z, ws.Fc) // y1 z1
	f.MulPow2(r.Z, 1)           // z = 2 y1 z1
}

// Add sets r = p + q, handling every case: either operand at infinity,
// p = q (doubling) and p = -q (infinity). r must not alias p or q.
// Requires 5 workspace slots.
func (r *Jacobian) Add(c *Curve, p, q *Jacobian, ws *Workspace) {
	ws.require(WsAddDistinct)
	if p.IsInf() {
		r.Set(q)
		return
	}
	if q.IsInf() {
		r.Set(p)
		return
	}
	crossProducts(c, p, q, ws)
	ta, tb, tc, td := ws.T[0], ws.T[1], ws.T[2], ws.T[3]
	if ta.Cmp(tb) == 0 {
		if tc.Cmp(td) == 0 {
			r.Double(c, p, ws)
			return
		}
		c.F.Neg(ws.T[4], td)
		if tc.Cmp(ws.T[4]) == 0 {
			r.SetInf()
			return
		}
	}
	r.addDistinctInner(c, p, q, ws)
}

// ScalarMul sets r = [k]p by left-to-right double-and-add over the bits of
// k. k = 0 yields infinity. Requires 5 workspace slots; the accumulator
// points live in the workspace, so p must not be one of ws.P1 / ws.P2.
func (r *Jacobian) ScalarMul(c *Curve, k bigint.Int, p *Jacobian, ws *Workspace) {
	ws.require(WsAddDistinct)
	acc, tmp := &ws.P1, &ws.P2
	acc.SetInf()
	for i := k.BitLen(); i > 0; i-- {
		tmp.Double(c, acc, ws)
		if k.Bit(i-1) == 1 {
			acc.Add(c, tmp, p, ws)
		} else {
			acc.Set(tmp)
		}
	}
	r.Set(acc)
}

// ToAffine normalises p in place: x <- x/z^2, y <- y/z^3, with z left
// untouched. A no-op on infinity or when z is already one. ToAffine and
// FromAffine are a pair: only FromAffine restores the z = 1 invariant, so
// calling one without eventually calling the other leaves the point in a
// state no other operation accepts. Requires 2 workspace slots.
func (p *Jacobian) ToAffine(c *Curve, ws *Workspace) {
	ws.require(WsToAffine)
	if p.IsInf() || p.Z.Cmp(c.F.MontOne()) == 0 {
		return
	}
	f := c.F
	t0, t1 := ws.T[0], ws.T[1]
	if err := f.Inv(t0, p.Z, ws.Fc); err != nil {
		panic("curve: non-infinity point with zero z")
	}
	f.Mul(t1, t0, t0, ws.Fc)   // z^-2
	f.Mul(p.X, p.X, t1, ws.Fc) // x z^-2
	f.Mul(t1, t1, t0, ws.Fc)   // z^-3
	f.Mul(p.Y, p.Y, t1, ws.Fc) // y z^-3
}

// FromAffine restores z = 1 after a ToAffine. See the pairing note on
// ToAffine.
func (p *Jacobian) FromAffine(c *Curve) {
	p.Z.Set(c.F.MontOne())
}

// SetAffine sets r to the Jacobian form of a.
func (r *Jacobian) SetAffine(c *Curve, a *Affine) {
	if a.Inf {
		r.SetInf()
		return
	}
	r.X.Set(a.X)
	r.Y.Set(a.Y)
	r.Z.Set(c.F.MontOne())
}

// SetProjective converts q to Jacobian coordinates: (XZ, YZ^2, Z).
func (r *Jacobian) SetProjective(c *Curve, q *Projective, ws *Workspace) {
	ws.require(1)
	if q.IsInf() {
		r.SetInf()
		return
	}
	f := c.F
	f.Mul(r.X, q.X, q.Z, ws.Fc)
	f.Mul(ws.T[0], q.Z, q.Z, ws.Fc)
	f.Mul(r.Y, q.Y, ws.T[0], ws.Fc)
	r.Z.Set(q.Z)
}

// ToAffineBatch normalises every point of ps to z = 1 with a single field
// inversion, skipping infinities. Unlike ToAffine this rewrites z, so no
// FromAffine pairing is needed afterwards.
func ToAffineBatch(c *Curve, ps []*Jacobian, ws *Workspace) error {
	ws.require(WsToAffine)
	f := c.F
	zs := make([]bigint.Int, 0, len(ps))
	for _, p := range ps {
		if !p.IsInf() {
			zs = append(zs, p.Z)
		}
	}
	if len(zs) == 0 {
		return nil
	}
	inv := make([]bigint.Int, len(zs))
	for i := range inv {
		inv[i] = f.NewElem()
	}
	if err := f.InvBatch(inv, zs, ws.Fc); err != nil {
		return err
	}
	t := ws.T[0]
	i := 0
	for _, p := range ps {
		if p.IsInf() {
			continue
		}
		zi := inv[i]
		i++
		f.Mul(t, zi, zi, ws.Fc)
		f.Mul(p.X, p.X, t, ws.Fc)
		f.Mul(t, t, zi, ws.Fc)
		f.Mul(p.Y, p.Y, t, ws.Fc)
		p.Z.Set(f.MontOne())
	}
	return nil
}
