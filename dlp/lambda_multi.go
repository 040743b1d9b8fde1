package dlp

import (
	"encoding/binary"
	mrand "math/rand"
	"sync"
	"sync/atomic"

	sha256 "github.com/minio/sha256-simd"
	"github.com/pkg/errors"

	"github.com/chinmayghegde/gec/bigint"
	"github.com/chinmayghegde/gec/curve"
	"github.com/chinmayghegde/gec/logger"
)

// trap is one tame walk endpoint and the scalar that reached it. The point
// is kept alongside the digest key so a lookup hit is confirmed by full
// point equality.
type trap struct {
	pt     *curve.Affine
	scalar bigint.Int
}

// sharedState is everything the workers share for one parallel solve. The
// jump table is written by worker 0 only, before the first barrier of each
// round; afterwards all accesses are reads. The trap map is guarded by
// trapsMu for insertion and lookup alike. The result cell is guarded by
// xMu and written at most once; shutdown is monotonic.
type sharedState struct {
	sl []bigint.Int
	pl []*curve.Jacobian

	traps   map[[32]byte]trap
	trapsMu sync.Mutex

	x   bigint.Int
	xMu sync.Mutex

	bar      *barrier
	shutdown atomic.Bool
}

// SolveParallel runs the lambda search across workers goroutines and
// writes the discrete logarithm into x. All workers are joined before it
// returns, whether they found the collision or observed the shutdown flag.
func (p *Problem) SolveParallel(x bigint.Int, workers int, rng bigint.Rng) error {
	if workers < 1 {
		return errors.Errorf("dlp: worker count %d out of range", workers)
	}
	m, err := p.validate(x)
	if err != nil {
		return err
	}

	sh := &sharedState{
		sl:    make([]bigint.Int, m),
		pl:    make([]*curve.Jacobian, m),
		traps: make(map[[32]byte]trap, workers),
		x:     x,
		bar:   newBarrier(workers),
	}
	for i := range sh.sl {
		sh.sl[i] = p.Order.NewElem()
		sh.pl[i] = p.Curve.NewJacobian()
	}

	// Each worker gets an independent stream seeded from the caller's rng.
	var seed [36]byte
	for i := 0; i < 32; i += 4 {
		binary.BigEndian.PutUint32(seed[i:], rng.Uint32())
	}
	var wg sync.WaitGroup
	for id := 0; id < workers; id++ {
		binary.BigEndian.PutUint32(seed[32:], uint32(id))
		digest := sha256.Sum256(seed[:])
		wrng := mrand.New(mrand.NewSource(int64(binary.BigEndian.Uint64(digest[:8]))))
		wg.Add(1)
		go func(id int, wrng bigint.Rng) {
			defer wg.Done()
			p.worker(sh, id, wrng)
		}(id, wrng)
	}
	wg.Wait()
	return nil
}

func (p *Problem) worker(sh *sharedState, id int, rng bigint.Rng) {
	c, o := p.Curve, p.Order
	m := len(sh.sl)
	ws, err := c.NewWorkspace(curve.WsMax)
	if err != nil {
		panic(err)
	}
	log := logger.Logger().With().Int("worker", id).Logger()

	gj, hj := c.NewJacobian(), c.NewJacobian()
	gj.SetAffine(c, p.G)
	hj.SetAffine(c, p.H)
	u, tmp := c.NewJacobian(), c.NewJacobian()
	xw := o.NewElem()
	aff := c.NewAffine()
	keybuf := make([]byte, 1+8*c.F.Limbs())

	step := func(pos *curve.Jacobian, scalar bigint.Int) *curve.Jacobian {
		i := jumpIndex(pos, m)
		o.AddInto(scalar, sh.sl[i])
		tmp.Add(c, pos, sh.pl[i], ws)
		normalize(c, tmp, ws)
		pos, tmp = tmp, pos
		return pos
	}

	for round := 0; ; round++ {
		if id == 0 {
			p.buildJumpTable(sh.sl, sh.pl, gj, rng, ws)
			log.Debug().Int("round", round).Msg("jump table generated")
		}
		sh.bar.wait()

		// Set a trap at the end of an independent tame walk.
		bigint.SampleRangeInclusive(xw, p.A, p.B, rng)
		u.ScalarMul(c, xw, gj, ws)
		normalize(c, u, ws)
		for j := uint64(0); j < p.Bound; j++ {
			u = step(u, xw)
		}
		aff.SetJacobian(c, u, ws)
		key := curve.DigestAffine(aff, keybuf)
		ta := c.NewAffine()
		ta.Set(aff)
		sh.trapsMu.Lock()
		sh.traps[key] = trap{pt: ta, scalar: xw.Clone()}
		sh.trapsMu.Unlock()
		log.Debug().Msg("trap set")
		sh.bar.wait()

		// Wild walk from h plus a fresh offset, probing the traps each step.
		bigint.SampleRangeInclusive(xw, p.A, p.B, rng)
		tmp.ScalarMul(c, xw, gj, ws)
		u.Add(c, hj, tmp, ws)
		normalize(c, u, ws)
		for j := uint64(0); j < p.Bound; j++ {
			if sh.shutdown.Load() {
				break
			}
			aff.SetJacobian(c, u, ws)
			key := curve.DigestAffine(aff, keybuf)
			sh.trapsMu.Lock()
			tr, hit := sh.traps[key]
			sh.trapsMu.Unlock()
			if hit && aff.Eq(tr.pt) && tr.scalar.Cmp(xw) != 0 {
				sh.xMu.Lock()
				if !sh.shutdown.Load() {
					o.Sub(sh.x, tr.scalar, xw)
					sh.shutdown.Store(true)
					log.Debug().Msg("collision found, shutting down")
				}
				sh.xMu.Unlock()
				break
			}
			u = step(u, xw)
		}
		sh.bar.wait()

		if sh.shutdown.Load() {
			return
		}
		log.Debug().Int("round", round).Msg("no collision, retrying")
	}
}
