package curve

import "github.com/chinmayghegde/gec/bigint"

// Projective is a point in homogeneous projective coordinates: the affine
// point is (X/Z, Y/Z) and Z = 0 marks the point at infinity. Coordinates
// are in Montgomery form.
type Projective struct {
	X, Y, Z bigint.Int
}

// NewProjective returns the point at infinity with coordinates sized for c.
func (c *Curve) NewProjective() *Projective {
	return &Projective{X: c.F.NewElem(), Y: c.F.NewElem(), Z: c.F.NewElem()}
}

// Set copies p into r.
func (r *Projective) Set(p *Projective) {
	r.X.Set(p.X)
	r.Y.Set(p.Y)
	r.Z.Set(p.Z)
}

// IsInf reports whether r is the point at infinity.
func (r *Projective) IsInf() bool {
	return r.Z.IsZero()
}

// SetInf sets r to the point at infinity, with all three coordinates zero.
func (r *Projective) SetInf() {
	r.X.SetZero()
	r.Y.SetZero()
	r.Z.SetZero()
}

// Neg sets r = -p.
func (r *Projective) Neg(c *Curve, p *Projective) {
	r.X.Set(p.X)
	c.F.Neg(r.Y, p.Y)
	r.Z.Set(p.Z)
}

// OnCurve reports whether p satisfies y^2 z = x^3 + A x z^2 + B z^3.
// Requires 3 workspace slots.
func (p *Projective) OnCurve(c *Curve, ws *Workspace) bool {
	ws.require(WsAffineOps)
	if p.IsInf() {
		return true
	}
	f := c.F
	l, rr, t := ws.T[0], ws.T[1], ws.T[2]
	f.Mul(l, p.Y, p.Y, ws.Fc)
	f.Mul(l, l, p.Z, ws.Fc) // y^2 z
	f.Mul(rr, p.X, p.X, ws.Fc)
	f.Mul(rr, rr, p.X, ws.Fc) // x^3
	f.Mul(t, c.a, p.X, ws.Fc)
	f.Mul(t, t, p.Z, ws.Fc)
	f.Mul(t, t, p.Z, ws.Fc) // A x z^2
	f.AddInto(rr, t)
	f.Mul(t, p.Z, p.Z, ws.Fc)
	f.Mul(t, t, p.Z, ws.Fc)
	f.Mul(t, c.b, t, ws.Fc) // B z^3
	f.AddInto(rr, t)
	return l.Cmp(rr) == 0
}

// Eq reports whether p and q are the same point: x1 z2 = x2 z1 and
// y1 z2 = y2 z1. Requires 4 workspace slots.
func (p *Projective) Eq(c *Curve, q *Projective, ws *Workspace) bool {
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
	ta, tb := ws.T[0], ws.T[1]
	f.Mul(ta, p.X, q.Z, ws.Fc)
	f.Mul(tb, q.X, p.Z, ws.Fc)
	if ta.Cmp(tb) != 0 {
		return false
	}
	f.Mul(ta, p.Y, q.Z, ws.Fc)
	f.Mul(tb, q.Y, p.Z, ws.Fc)
	return ta.Cmp(tb) == 0
}

// Double sets r = 2p. r must not alias p. Requires 5 workspace slots.
// Doubling infinity yields infinity.
func (r *Projective) Double(c *Curve, p *Projective, ws *Workspace) {
	ws.require(WsProjDouble)
	if p.IsInf() {
		r.SetInf()
		return
	}
	f := c.F
	t0, t1, t2, t3, t4 := ws.T[0], ws.T[1], ws.T[2], ws.T[3], ws.T[4]
	f.Mul(t0, p.Z, p.Z, ws.Fc)
	f.Mul(t0, c.a, t0, ws.Fc)  // A z^2
	f.Mul(t1, p.X, p.X, ws.Fc) // x^2
	f.AddInto(t0, t1)
	f.AddInto(t0, t1)
	f.AddInto(t0, t1)          // w = A z^2 + 3 x^2
	f.Mul(t1, p.Y, p.Z, ws.Fc) // s = y z
	f.Mul(t2, p.X, p.Y, ws.Fc)
	f.Mul(t2, t2, t1, ws.Fc)  // B = x y s
	f.Mul(t3, t0, t0, ws.Fc)  // w^2
	f.Add(t4, t2, t2)         // 2B
	f.MulPow2(t4, 2)          // 8B
	f.SubInto(t3, t4)         // h = w^2 - 8B
	f.Mul(r.X, t3, t1, ws.Fc) // h s
	f.MulPow2(r.X, 1)         // x' = 2 h s
	f.MulPow2(t2, 2)          // 4B
	f.SubInto(t2, t3)         // 4B - h
	f.Mul(t2, t0, t2, ws.Fc)  // w (4B - h)
	f.Mul(t0, p.Y, p.Y, ws.Fc)
	f.Mul(t4, t1, t1, ws.Fc) // s^2
	f.Mul(t0, t0, t4, ws.Fc)
	f.MulPow2(t0, 3)        // 8 y^2 s^2
	f.Sub(r.Y, t2, t0)      // y' = w (4B - h) - 8 y^2 s^2
	f.Mul(r.Z, t4, t1, ws.Fc) // s^3
	f.MulPow2(r.Z, 3)       // z' = 8 s^3
}

// Add sets r = p + q, handling infinities, doubling and inverses. r must
// not alias p or q. Requires 6 workspace slots.
func (r *Projective) Add(c *Curve, p, q *Projective, ws *Workspace) {
	ws.require(WsProjAdd)
	if p.IsInf() {
		r.Set(q)
		return
	}
	if q.IsInf() {
		r.Set(p)
		return
	}
	f := c.F
	t0, t1, t2, t3, t4, t5 := ws.T[0], ws.T[1], ws.T[2], ws.T[3], ws.T[4], ws.T[5]
	f.Mul(t0, p.Y, q.Z, ws.Fc) // y1 z2
	f.Mul(t1, p.X, q.Z, ws.Fc) // x1 z2
	f.Mul(t2, p.Z, q.Z, ws.Fc) // z1 z2
	f.Mul(t3, q.Y, p.Z, ws.Fc)
	f.SubInto(t3, t0) // u = y2 z1 - y1 z2
	f.Mul(t4, q.X, p.Z, ws.Fc)
	f.SubInto(t4, t1) // v = x2 z1 - x1 z2
	if t4.IsZero() {
		if t3.IsZero() {
			r.Double(c, p, ws)
			return
		}
		r.SetInf()
		return
	}
	f.Mul(t5, t4, t4, ws.Fc)   // v^2
	f.Mul(r.Z, t5, t4, ws.Fc)  // v^3
	f.Mul(t1, t5, t1, ws.Fc)   // R = v^2 x1 z2
	f.Mul(t5, t3, t3, ws.Fc)   // u^2
	f.Mul(t5, t5, t2, ws.Fc)   // u^2 z1 z2
	f.SubInto(t5, r.Z)         // - v^3
	f.SubInto(t5, t1)          //
	f.SubInto(t5, t1)          // A = u^2 z1 z2 - v^3 - 2R
	f.Mul(r.X, t4, t5, ws.Fc)  // x' = v A
	f.SubInto(t1, t5)          // R - A
	f.Mul(t1, t3, t1, ws.Fc)   // u (R - A)
	f.Mul(t0, r.Z, t0, ws.Fc)  // v^3 y1 z2
	f.Sub(r.Y, t1, t0)         // y' = u (R - A) - v^3 y1 z2
	f.Mul(r.Z, r.Z, t2, ws.Fc) // z' = v^3 z1 z2
}

// ScalarMul sets r = [k]p by left-to-right double-and-add. k = 0 yields
// infinity. Requires 6 workspace slots; p must not be ws.Q1 / ws.Q2.
func (r *Projective) ScalarMul(c *Curve, k bigint.Int, p *Projective, ws *Workspace) {
	ws.require(WsProjAdd)
	acc, tmp := &ws.Q1, &ws.Q2
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

// ToAffine normalises p in place: x <- x/z, y <- y/z, leaving z untouched.
// A no-op on infinity or when z is already one. Paired with FromAffine the
// same way as the Jacobian conversion. Requires 2 workspace slots.
func (p *Projective) ToAffine(c *Curve, ws *Workspace) {
	ws.require(WsToAffine)
	if p.IsInf() || p.Z.Cmp(c.F.MontOne()) == 0 {
		return
	}
	f := c.F
	t0 := ws.T[0]
	if err := f.Inv(t0, p.Z, ws.Fc); err != nil {
		panic("curve: non-infinity point with zero z")
	}
	f.Mul(p.X, p.X, t0, ws.Fc)
	f.Mul(p.Y, p.Y, t0, ws.Fc)
}

// FromAffine restores z = 1 after a ToAffine.
func (p *Projective) FromAffine(c *Curve) {
	p.Z.Set(c.F.MontOne())
}

// SetAffine sets r to the projective form of a.
func (r *Projective) SetAffine(c *Curve, a *Affine) {
	if a.Inf {
		r.SetInf()
		return
	}
	r.X.Set(a.X)
	r.Y.Set(a.Y)
	r.Z.Set(c.F.MontOne())
}

// SetJacobian converts q to projective coordinates: (XZ, Y, Z^3).
func (r *Projective) SetJacobian(c *Curve, q *Jacobian, ws *Workspace) {
	ws.require(1)
	if q.IsInf() {
		r.SetInf()
		return
	}
	f := c.F
	f.Mul(r.X, q.X, q.Z, ws.Fc)
	r.Y.Set(q.Y)
	f.Mul(ws.T[0], q.Z, q.Z, ws.Fc)
	f.Mul(r.Z, ws.T[0], q.Z, ws.Fc)
}
