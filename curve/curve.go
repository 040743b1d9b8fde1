// Package curve implements short Weierstrass curve arithmetic over the
// prime fields of package bigint, in affine, projective and Jacobian
// coordinates. All coordinates are held in Montgomery form.
package curve

import (
	"github.com/pkg/errors"

	"github.com/chinmayghegde/gec/bigint"
)

// Curve describes y^2 = x^3 + Ax + B over a prime field. The coefficients
// are stored in Montgomery form.
type Curve struct {
	F    *bigint.Field
	a, b bigint.Int
}

// New builds a curve descriptor from plain (non-Montgomery) coefficients.
func New(f *bigint.Field, a, b bigint.Int) (*Curve, error) {
	if len(a) != f.Limbs() || len(b) != f.Limbs() {
		return nil, errors.Errorf("curve: coefficient limb count %d/%d does not match field %d",
			len(a), len(b), f.Limbs())
	}
	c := &Curve{F: f, a: f.NewElem(), b: f.NewElem()}
	ctx := f.NewCtx()
	f.ToMont(c.a, a, ctx)
	f.ToMont(c.b, b, ctx)
	return c, nil
}

// A returns the curve coefficient A in Montgomery form. Read-only.
func (c *Curve) A() bigint.Int { return c.a }

// B returns the curve coefficient B in Montgomery form. Read-only.
func (c *Curve) B() bigint.Int { return c.b }

// Workspace capacities declared by the point operations. An operation
// panics when handed a workspace with fewer slots than its declared arity.
const (
	WsDouble      = 2 // Jacobian doubling
	WsToAffine    = 2 // Jacobian / projective normalisation
	WsAffineOps   = 3 // affine chord-and-tangent formulas
	WsEq          = 4 // Jacobian / projective equality
	WsOnCurve     = 4 // Jacobian curve membership
	WsAddDistinct = 5 // Jacobian distinct addition and generic addition
	WsProjDouble  = 5 // projective doubling
	WsProjAdd     = 6 // projective addition
	WsMax         = 6
)

// Workspace carries the caller-owned scratch threaded through every point
// operation: field-element slots, two points per coordinate system for the
// scalar multiplication ladders, and the field context. Not safe for
// concurrent use; give each goroutine its own.
type Workspace struct {
	T  []bigint.Int
	Fc *bigint.Ctx

	P1, P2 Jacobian
	Q1, Q2 Projective
	A1, A2 Affine
}

// NewWorkspace allocates a workspace with the given number of field slots.
// Capacity is validated here, fail-fast; operations additionally assert
// their declared arity against it.
func (c *Curve) NewWorkspace(slots int) (*Workspace, error) {
	if slots < 0 || slots > 1<<10 {
		return nil, errors.Errorf("curve: workspace slot count %d out of range", slots)
	}
	ws := &Workspace{
		T:  make([]bigint.Int, slots),
		Fc: c.F.NewCtx(),
		P1: *c.NewJacobian(), P2: *c.NewJacobian(),
		Q1: *c.NewProjective(), Q2: *c.NewProjective(),
		A1: *c.NewAffine(), A2: *c.NewAffine(),
	}
	for i := range ws.T {
		ws.T[i] = c.F.NewElem()
	}
	return ws, nil
}

// require asserts the arity declared by an operation. Handing an operation
// too small a workspace is a programmer error.
func (ws *Workspace) require(slots int) {
	if len(ws.T) < slots {
		panic("curve: workspace has too few slots for this operation")
	}
}
