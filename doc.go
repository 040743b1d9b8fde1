// Package gec is a library for arithmetic over fixed-width big integers,
// prime fields in Montgomery form, and short Weierstrass elliptic curves,
// together with Pollard lambda solvers for the elliptic curve discrete
// logarithm problem on an interval.
//
// The arithmetic lives in the subpackages:
//
//   - bigint: limb sequences, fixed-width integers, additive groups and
//     Montgomery-form prime fields parameterised by a runtime descriptor.
//   - curve: affine, projective and Jacobian point arithmetic with
//     caller-owned workspaces.
//   - dlp: serial and parallel Pollard lambda.
//
// This package provides ready-made field and curve descriptors used by the
// test suites and convenient as starting points: a 160-bit test field, a
// tiny curve with a 22-bit prime order for solver experiments, and
// secp256k1.
package gec
