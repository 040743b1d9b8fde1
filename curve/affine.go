package curve

import "github.com/chinmayghegde/gec/bigint"

// Affine is a point in affine coordinates with an explicit infinity flag.
// When Inf is set the coordinates are ignored. Coordinates are in
// Montgomery form.
type Affine struct {
	X, Y bigint.Int
	Inf  bool
}

// NewAffine returns the point at infinity with coordinates sized for c.
func (c *Curve) NewAffine() *Affine {
	return &Affine{X: c.F.NewElem(), Y: c.F.NewElem(), Inf: true}
}

// NewAffineXY builds an affine point from plain (non-Montgomery)
// coordinates.
func (c *Curve) NewAffineXY(x, y bigint.Int) *Affine {
	a := c.NewAffine()
	ctx := c.F.NewCtx()
	c.F.ToMont(a.X, x, ctx)
	c.F.ToMont(a.Y, y, ctx)
	a.Inf = false
	return a
}

// Set copies p into r.
func (r *Affine) Set(p *Affine) {
	r.X.Set(p.X)
	r.Y.Set(p.Y)
	r.Inf = p.Inf
}

// IsInf reports whether r is the point at infinity.
func (r *Affine) IsInf() bool {
	return r.Inf
}

// SetInf sets r to the point at infinity.
func (r *Affine) SetInf() {
	r.X.SetZero()
	r.Y.SetZero()
	r.Inf = true
}

// Eq reports whether p and q are the same point.
func (p *Affine) Eq(q *Affine) bool {
	if p.Inf && q.Inf {
		return true
	}
	if p.Inf || q.Inf {
		return false
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// Neg sets r = -p.
func (r *Affine) Neg(c *Curve, p *Affine) {
	if p.Inf {
		r.SetInf()
		return
	}
	r.X.Set(p.X)
	c.F.Neg(r.Y, p.Y)
	r.Inf = false
}

// OnCurve reports whether p satisfies y^2 = x^3 + A x + B. Requires 3
// workspace slots.
func (p *Affine) OnCurve(c *Curve, ws *Workspace) bool {
	ws.require(WsAffineOps)
	if p.Inf {
		return true
	}
	f := c.F
	l, rr, t := ws.T[0], ws.T[1], ws.T[2]
	f.Mul(rr, p.X, p.X, ws.Fc)
	f.Mul(rr, rr, p.X, ws.Fc) // x^3
	f.Mul(t, c.a, p.X, ws.Fc) // A x
	f.AddInto(rr, t)
	f.AddInto(rr, c.b)
	f.Mul(l, p.Y, p.Y, ws.Fc) // y^2
	return l.Cmp(rr) == 0
}

// AddDistinct sets r = p + q for p != +-q with neither infinity, using the
// chord formula with one field inversion. r must not alias p or q.
// Requires 3 workspace slots.
func (r *Affine) AddDistinct(c *Curve, p, q *Affine, ws *Workspace) {
	ws.require(WsAffineOps)
	f := c.F
	t0, t1, t2 := ws.T[0], ws.T[1], ws.T[2]
	f.Sub(t0, q.X, p.X)
	if err := f.Inv(t0, t0, ws.Fc); err != nil {
		panic("curve: AddDistinct on points with equal x")
	}
	f.Sub(t1, q.Y, p.Y)
	f.Mul(t2, t1, t0, ws.Fc) // slope
	f.Mul(t0, t2, t2, ws.Fc)
	f.SubInto(t0, p.X)
	f.SubInto(t0, q.X) // x' = slope^2 - x1 - x2
	f.Sub(t1, p.X, t0)
	f.Mul(t1, t2, t1, ws.Fc)
	f.Sub(r.Y, t1, p.Y) // y' = slope (x1 - x') - y1
	r.X.Set(t0)
	r.Inf = false
}

// Double sets r = 2p via the tangent formula. r must not alias p.
// Doubling a point with y = 0, or infinity, yields infinity. Requires 3
// workspace slots.
func (r *Affine) Double(c *Curve, p *Affine, ws *Workspace) {
	ws.require(WsAffineOps)
	if p.Inf || p.Y.IsZero() {
		r.SetInf()
		return
	}
	f := c.F
	t0, t1, t2 := ws.T[0], ws.T[1], ws.T[2]
	f.Add(t0, p.Y, p.Y)
	if err := f.Inv(t0, t0, ws.Fc); err != nil {
		panic("curve: unreachable, y is non-zero")
	}
	f.Mul(t1, p.X, p.X, ws.Fc)
	f.Add(t2, t1, t1)
	f.AddInto(t1, t2)
	f.AddInto(t1, c.a)       // 3 x^2 + A
	f.Mul(t2, t1, t0, ws.Fc) // slope
	f.Mul(t0, t2, t2, ws.Fc)
	f.SubInto(t0, p.X)
	f.SubInto(t0, p.X) // x'
	f.Sub(t1, p.X, t0)
	f.Mul(t1, t2, t1, ws.Fc)
	f.Sub(r.Y, t1, p.Y) // y'
	r.X.Set(t0)
	r.Inf = false
}

// Add sets r = p + q, handling every case. r must not alias p or q.
// Requires 3 workspace slots.
func (r *Affine) Add(c *Curve, p, q *Affine, ws *Workspace) {
	ws.require(WsAffineOps)
	if p.Inf {
		r.Set(q)
		return
	}
	if q.Inf {
		r.Set(p)
		return
	}
	if p.X.Cmp(q.X) == 0 {
		if p.Y.Cmp(q.Y) == 0 {
			r.Double(c, p, ws)
			return
		}
		r.SetInf()
		return
	}
	r.AddDistinct(c, p, q, ws)
}

// ScalarMul sets r = [k]p by left-to-right double-and-add over affine
// points, one field inversion per step. k = 0 yields infinity. Requires 3
// workspace slots; p must not be ws.A1 / ws.A2.
func (r *Affine) ScalarMul(c *Curve, k bigint.Int, p *Affine, ws *Workspace) {
	ws.require(WsAffineOps)
	acc, tmp := &ws.A1, &ws.A2
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

// SetJacobian extracts the affine form of q, leaving q untouched.
// Requires 2 workspace slots.
func (r *Affine) SetJacobian(c *Curve, q *Jacobian, ws *Workspace) {
	if q.IsInf() {
		r.SetInf()
		return
	}
	ws.P1.Set(q)
	ws.P1.ToAffine(c, ws)
	r.X.Set(ws.P1.X)
	r.Y.Set(ws.P1.Y)
	r.Inf = false
}

// SetProjective extracts the affine form of q, leaving q untouched.
// Requires 2 workspace slots.
func (r *Affine) SetProjective(c *Curve, q *Projective, ws *Workspace) {
	if q.IsInf() {
		r.SetInf()
		return
	}
	ws.Q1.Set(q)
	ws.Q1.ToAffine(c, ws)
	r.X.Set(ws.Q1.X)
	r.Y.Set(ws.Q1.Y)
	r.Inf = false
}

// SetXO lifts an x coordinate (plain form) to a curve point whose y has the
// requested parity, or reports false when x is not on the curve. The rng
// feeds the square root's non-residue search. Requires 3 workspace slots.
func (r *Affine) SetXO(c *Curve, x bigint.Int, odd bool, rng bigint.Rng, ws *Workspace) bool {
	ws.require(WsAffineOps)
	f := c.F
	t0, t1 := ws.T[0], ws.T[1]
	f.ToMont(t0, x, ws.Fc)
	f.Mul(t1, t0, t0, ws.Fc)
	f.Mul(t1, t1, t0, ws.Fc) // x^3
	r.X.Set(t0)
	f.Mul(t0, c.a, t0, ws.Fc)
	f.AddInto(t1, t0)
	f.AddInto(t1, c.b) // x^3 + A x + B
	if !f.ModSqrt(r.Y, t1, rng, ws.Fc) {
		return false
	}
	f.FromMont(t0, r.Y, ws.Fc)
	if (t0[0]&1 == 1) != odd {
		f.Neg(r.Y, r.Y)
	}
	r.Inf = false
	return true
}
