package curve

import (
	sha256 "github.com/minio/sha256-simd"

	"github.com/chinmayghegde/gec/bigint"
)

// Domain separation seeds, one per coordinate system, so the same
// coordinates hashed under different systems cannot collide by
// construction.
const (
	hashTagAffine     = 0xa11e<<32 | 0x9e3779b1
	hashTagProjective = 0x9607<<32 | 0x9e3779b1
	hashTagJacobian   = 0x7ac0<<32 | 0x9e3779b1
)

// HashAffine folds an affine point through bigint.Mix under the affine
// domain tag. Infinity hashes to a fixed value distinct from any finite
// point's fold.
func HashAffine(p *Affine) uint64 {
	if p.Inf {
		return bigint.Mix(hashTagAffine, 1)
	}
	h := bigint.HashInt(hashTagAffine, p.X)
	return bigint.HashInt(h, p.Y)
}

// HashJacobian hashes a Jacobian point under the Jacobian domain tag.
// The point is canonicalised to affine first, so equal points in different
// Jacobian representations hash equally; q itself is left untouched.
func HashJacobian(c *Curve, q *Jacobian, ws *Workspace) uint64 {
	if q.IsInf() {
		return bigint.Mix(hashTagJacobian, 1)
	}
	ws.P2.Set(q)
	ws.P2.ToAffine(c, ws)
	h := bigint.HashInt(hashTagJacobian, ws.P2.X)
	return bigint.HashInt(h, ws.P2.Y)
}

// HashProjective hashes a projective point under the projective domain
// tag, canonicalised the same way as HashJacobian.
func HashProjective(c *Curve, q *Projective, ws *Workspace) uint64 {
	if q.IsInf() {
		return bigint.Mix(hashTagProjective, 1)
	}
	ws.Q2.Set(q)
	ws.Q2.ToAffine(c, ws)
	h := bigint.HashInt(hashTagProjective, ws.Q2.X)
	return bigint.HashInt(h, ws.Q2.Y)
}

// DigestAffine returns the SHA-256 digest of the canonical serialisation
// of p: an infinity marker byte followed by the big-endian coordinate
// bytes. Equal points always produce equal digests, which makes the digest
// usable as a compact map key.
func DigestAffine(p *Affine, buf []byte) [32]byte {
	n := 8 * len(p.X)
	if cap(buf) < 1+n {
		buf = make([]byte, 1+n)
	}
	buf = buf[:1+n]
	if p.Inf {
		buf[0] = 0
		for i := 1; i < len(buf); i++ {
			buf[i] = 0
		}
	} else {
		buf[0] = 4
		p.X.PutBytes(buf[1 : 1+n/2])
		p.Y.PutBytes(buf[1+n/2:])
	}
	return sha256.Sum256(buf)
}
