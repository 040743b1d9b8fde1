package bigint

import "testing"

func TestMix(t *testing.T) {
	if Mix(0, 0) == Mix(0, 1) {
		t.Error("mix ignores the folded value")
	}
	if Mix(0, 5) == Mix(1, 5) {
		t.Error("mix ignores the seed")
	}
}

func TestHashInt(t *testing.T) {
	zero := NewInt(5)
	one := NewInt(5)
	one.SetOne()
	if HashInt(1, zero) == HashInt(1, one) {
		t.Error("hash(0) == hash(1)")
	}

	// Equal values hash equally regardless of how they were built.
	a := NewIntBE(0x0d1f4b5b, 0x8005d7aa, 0x4fed62ac, 0x03831479, 0x83ccd32d)
	b := a.Clone()
	if HashInt(7, a) != HashInt(7, b) {
		t.Error("equal values hash differently")
	}

	// Limb order matters.
	c := NewIntBE(0x83ccd32d, 0x03831479, 0x4fed62ac, 0x8005d7aa, 0x0d1f4b5b)
	if HashInt(7, a) == HashInt(7, c) {
		t.Error("limb-swapped value hashes equally, mix is order-blind")
	}
}
