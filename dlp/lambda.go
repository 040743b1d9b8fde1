// Package dlp solves the elliptic curve discrete logarithm problem on an
// interval with Pollard's lambda (kangaroo) method, serially or across
// parallel workers sharing a trap table.
package dlp

import (
	"github.com/pkg/errors"

	"github.com/chinmayghegde/gec/bigint"
	"github.com/chinmayghegde/gec/curve"
	"github.com/chinmayghegde/gec/logger"
)

// ErrEmptyInterval is returned when the search interval [A, B) is empty.
var ErrEmptyInterval = errors.New("dlp: interval [a, b) is empty")

// Problem is one ECDLP instance: find x in [A, B) with H = [x]G, where G
// generates a prime-order subgroup whose order is the modulus of Order.
// Bound is the walk length per attempt; the solver retries with fresh jump
// tables until it succeeds, so Bound trades time per round against the
// collision probability of a round.
type Problem struct {
	Curve *curve.Curve
	Order *bigint.Group
	G, H  *curve.Affine
	A, B  bigint.Int
	Bound uint64
}

func (p *Problem) validate(x bigint.Int) (m int, err error) {
	if len(p.A) != p.Order.Limbs() || len(p.B) != p.Order.Limbs() {
		return 0, errors.Errorf("dlp: interval endpoints must have the order's %d limbs", p.Order.Limbs())
	}
	if p.A.Cmp(p.B) >= 0 {
		return 0, errors.Wrapf(ErrEmptyInterval, "a=%s b=%s", p.A, p.B)
	}
	if len(x) != p.Order.Limbs() {
		return 0, errors.Errorf("dlp: result has %d limbs, order has %d", len(x), p.Order.Limbs())
	}
	if p.Bound == 0 {
		return 0, errors.New("dlp: walk bound is zero")
	}
	span := bigint.NewInt(p.Order.Limbs())
	span.Sub(p.B, p.A)
	m = int(span.BitLen()) - 1
	if m < 1 {
		return 0, errors.Errorf("dlp: interval of width %s is too narrow", span)
	}
	return m, nil
}

// buildJumpTable fills sl with the powers 2^sigma(i) for a fresh uniform
// permutation sigma of {0..m-1} and pl with the matching multiples of g,
// batch-normalised so walk steps and jump indices see canonical points.
func (p *Problem) buildJumpTable(sl []bigint.Int, pl []*curve.Jacobian, g *curve.Jacobian, rng bigint.Rng, ws *curve.Workspace) {
	m := len(sl)
	perm := make([]uint32, m)
	for i := range perm {
		perm[i] = uint32(i)
	}
	for i := m - 1; i > 0; i-- {
		j := int(rng.Uint32() % uint32(i+1))
		perm[i], perm[j] = perm[j], perm[i]
	}
	for i := range sl {
		sl[i].SetPow2(uint(perm[i]))
		pl[i].ScalarMul(p.Curve, sl[i], g, ws)
	}
	if err := curve.ToAffineBatch(p.Curve, pl, ws); err != nil {
		panic("dlp: jump table contains an unnormalisable point")
	}
}

// normalize canonicalises a walk position so the jump index and any trap
// key depend only on the group element, not on the Jacobian representation
// it happened to arrive in.
func normalize(c *curve.Curve, u *curve.Jacobian, ws *curve.Workspace) {
	u.ToAffine(c, ws)
	u.FromAffine(c)
}

// jumpIndex derives the next jump from the least significant limb of the
// canonical x coordinate.
func jumpIndex(u *curve.Jacobian, m int) int {
	return int(u.X[0] % uint32(m))
}

// Solve runs the single-threaded lambda walk and writes the discrete
// logarithm into x. It retries with fresh jump tables until a collision is
// found, so it only returns an error for an invalid problem, never
// NotFound.
func (p *Problem) Solve(x bigint.Int, rng bigint.Rng) error {
	m, err := p.validate(x)
	if err != nil {
		return err
	}
	c, o := p.Curve, p.Order
	ws, err := c.NewWorkspace(curve.WsMax)
	if err != nil {
		return err
	}
	log := logger.Logger()

	sl := make([]bigint.Int, m)
	pl := make([]*curve.Jacobian, m)
	for i := range sl {
		sl[i] = o.NewElem()
		pl[i] = c.NewJacobian()
	}
	gj, hj := c.NewJacobian(), c.NewJacobian()
	gj.SetAffine(c, p.G)
	hj.SetAffine(c, p.H)

	u, v, tmp := c.NewJacobian(), c.NewJacobian(), c.NewJacobian()
	xt, d := o.NewElem(), o.NewElem()

	for round := 0; ; round++ {
		p.buildJumpTable(sl, pl, gj, rng, ws)

		// Tame walk from a known scalar in [a, b].
		bigint.SampleRangeInclusive(xt, p.A, p.B, rng)
		u.ScalarMul(c, xt, gj, ws)
		normalize(c, u, ws)
		for j := uint64(0); j < p.Bound; j++ {
			i := jumpIndex(u, m)
			o.AddInto(xt, sl[i])
			tmp.Add(c, u, pl[i], ws)
			normalize(c, tmp, ws)
			u, tmp = tmp, u
		}

		// Wild walk from h; a collision with the tame endpoint reveals x.
		d.SetZero()
		v.Set(hj)
		for j := uint64(0); j < p.Bound; j++ {
			if u.Eq(c, v, ws) {
				o.Sub(x, xt, d)
				return nil
			}
			i := jumpIndex(v, m)
			o.AddInto(d, sl[i])
			tmp.Add(c, v, pl[i], ws)
			normalize(c, tmp, ws)
			v, tmp = tmp, v
		}
		log.Debug().Int("round", round).Msg("pollard lambda: no collision, retrying")
	}
}
