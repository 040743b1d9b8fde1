package bigint

import "math/bits"

// Limb arithmetic primitives. These wrap math/bits, which is the Go
// compiler's route to the platform add-with-carry / sub-with-borrow and
// widening-multiply instructions (adc/sbb, mulx and friends on amd64).
// The portable semantics of math/bits and the emitted intrinsics agree
// bit-for-bit on every input.

// addCarry returns a + b + carry and the carry out. carry must be 0 or 1.
func addCarry(a, b, carry uint32) (sum, carryOut uint32) {
	return bits.Add32(a, b, carry)
}

// subBorrow returns a - b - borrow and the borrow out. borrow must be 0 or 1.
func subBorrow(a, b, borrow uint32) (diff, borrowOut uint32) {
	return bits.Sub32(a, b, borrow)
}

// mulWide returns the full 64-bit product of a and b as (hi, lo).
func mulWide(a, b uint32) (hi, lo uint32) {
	return bits.Mul32(a, b)
}

// leadingZeros returns the number of leading zero bits in a.
func leadingZeros(a uint32) int {
	return bits.LeadingZeros32(a)
}
