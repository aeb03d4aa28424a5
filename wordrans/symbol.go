// Copyright 2026 The rans-rs Authors.

// Package wordrans implements the word-aligned variant of range Asymmetric
// Numeral Systems (rANS): 64-bit state, 32-bit renormalization units, and a
// normalization floor of 1<<31. It is a bit-exact reimplementation of the
// canonical ryg_rans rans64.h reference, with its 32-bit renormalization
// units stored little-endian in the output byte stream for portability.
//
// Like package byterans, this is a pure arithmetic core with no knowledge
// of probability models or frequency tables; see package ranstable for a
// worked caller building EncSymbol/DecSymbol tables from a histogram.
package wordrans

import "math/bits"

// ransWordL is the renormalization floor for the word-aligned variant.
const ransWordL = uint64(1) << 31

// EncSymbol is the precomputed encoder-side descriptor for one symbol's
// (cumFreq, freq, scaleBits) triple, mirroring byterans.EncSymbol but
// widened to 64 bits: the reciprocal multiply is a 64x64->128-bit widening
// multiply (via math/bits.Mul64) instead of 32x32->64.
type EncSymbol struct {
	xMax     uint64
	rcpFreq  uint64
	bias     uint64
	cmplFreq uint64
	rcpShift uint32
}

// NewEncSymbol precomputes the encoder descriptor for a symbol occupying
// [cumFreq, cumFreq+freq) out of a table scaled to 1<<scaleBits. Panics on
// an invalid triple, the same caller-bug contract as byterans.NewEncSymbol.
func NewEncSymbol(cumFreq, freq uint64, scaleBits uint32) EncSymbol {
	if scaleBits == 0 || scaleBits > 16 {
		panic("wordrans: scaleBits must be in [1, 16]")
	}

	if freq == 0 || cumFreq+freq > uint64(1)<<scaleBits {
		panic("wordrans: invalid (cumFreq, freq, scaleBits) triple")
	}

	sym := EncSymbol{
		xMax:     ((ransWordL >> scaleBits) << 32) * freq,
		cmplFreq: (uint64(1) << scaleBits) - freq,
	}

	if freq < 2 {
		sym.rcpFreq = ^uint64(0)
		sym.rcpShift = 0
		sym.bias = cumFreq + (uint64(1)<<scaleBits) - 1
		return sym
	}

	shift := uint32(0)
	for freq > (uint64(1) << shift) {
		shift++
	}

	sym.rcpFreq = divCeil128By64(shift+63, freq)
	sym.rcpShift = shift - 1
	sym.bias = cumFreq
	return sym
}

// divCeil128By64 computes floor(((1<<exp) + freq - 1) / freq) for exp in
// [63, 79], where the numerator does not fit in 64 bits. exp is always
// >= 63 here (shift >= 0), so the dividend is computed as a 128-bit value
// (hi, lo) and divided with bits.Div64.
func divCeil128By64(exp uint32, freq uint64) uint64 {
	// (1 << exp) as a 128-bit value (hi, lo).
	var hi, lo uint64

	if exp < 64 {
		lo = uint64(1) << exp
	} else {
		hi = uint64(1) << (exp - 64)
	}

	// add (freq - 1)
	var carry uint64
	lo, carry = bits.Add64(lo, freq-1, 0)
	hi, _ = bits.Add64(hi, 0, carry)

	q, _ := bits.Div64(hi, lo, freq)
	return q
}

// DecSymbol is the decoder-side descriptor: just the symbol's slot.
type DecSymbol struct {
	cumFreq uint64
	freq    uint64
}

// NewDecSymbol builds the decoder descriptor for the symbol occupying
// [cumFreq, cumFreq+freq) of the frequency table.
func NewDecSymbol(cumFreq, freq uint64) DecSymbol {
	return DecSymbol{cumFreq: cumFreq, freq: freq}
}

// CumFreq returns the symbol's cumulative frequency (its slot's lower bound).
func (this DecSymbol) CumFreq() uint64 {
	return this.cumFreq
}

// Freq returns the symbol's frequency (its slot's width).
func (this DecSymbol) Freq() uint64 {
	return this.freq
}
