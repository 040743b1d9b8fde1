package bigint

// Limb sequence kernels. All sequences are little-endian: index 0 holds the
// least significant limb. Kernels never allocate; destinations may alias
// their sources limb-for-limb (same slice), but partially overlapping slices
// are a misuse.

// seqAdd sets z = x + y and returns the carry out of the top limb.
// All three sequences must have the same length.
func seqAdd(z, x, y Int) (carry uint32) {
	for i := range z {
		z[i], carry = addCarry(x[i], y[i], carry)
	}
	return carry
}

// seqAddInto sets z += x and returns the carry out of the top limb.
func seqAddInto(z, x Int) (carry uint32) {
	for i := range z {
		z[i], carry = addCarry(z[i], x[i], carry)
	}
	return carry
}

// seqSub sets z = x - y and returns the borrow out of the top limb.
func seqSub(z, x, y Int) (borrow uint32) {
	for i := range z {
		z[i], borrow = subBorrow(x[i], y[i], borrow)
	}
	return borrow
}

// seqSubInto sets z -= x and returns the borrow out of the top limb.
func seqSubInto(z, x Int) (borrow uint32) {
	for i := range z {
		z[i], borrow = subBorrow(z[i], x[i], borrow)
	}
	return borrow
}

// seqCmp compares x and y from the most significant limb down and returns
// -1, 0 or +1.
func seqCmp(x, y Int) int {
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// seqShl shifts z left by k bits in place. Shifts of len(z)*32 or more
// clear the sequence.
func seqShl(z Int, k uint) {
	n := uint(len(z))
	if k >= n*limbBits {
		for i := range z {
			z[i] = 0
		}
		return
	}
	limbs, bits := k/limbBits, k%limbBits
	if bits == 0 {
		for i := n - 1; i >= limbs; i-- {
			z[i] = z[i-limbs]
			if i == 0 {
				break
			}
		}
	} else {
		for i := n - 1; i > limbs; i-- {
			z[i] = z[i-limbs]<<bits | z[i-limbs-1]>>(limbBits-bits)
		}
		z[limbs] = z[0] << bits
	}
	for i := uint(0); i < limbs; i++ {
		z[i] = 0
	}
}

// seqShr shifts z right by k bits in place. Shifts of len(z)*32 or more
// clear the sequence.
func seqShr(z Int, k uint) {
	n := uint(len(z))
	if k >= n*limbBits {
		for i := range z {
			z[i] = 0
		}
		return
	}
	limbs, bits := k/limbBits, k%limbBits
	if bits == 0 {
		for i := uint(0); i < n-limbs; i++ {
			z[i] = z[i+limbs]
		}
	} else {
		for i := uint(0); i < n-limbs-1; i++ {
			z[i] = z[i+limbs]>>bits | z[i+limbs+1]<<(limbBits-bits)
		}
		z[n-limbs-1] = z[n-1] >> bits
	}
	for i := n - limbs; i < n; i++ {
		z[i] = 0
	}
}
