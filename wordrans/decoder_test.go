// Copyright 2026 The rans-rs Authors.

package wordrans

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeEmpty(t *testing.T) {
	dec := NewDecoder([]byte{0, 0, 0, 128, 0, 0, 0, 0})
	require.Equal(t, uint64(0), dec.Get(2))
}

func TestRoundTripMoreData(t *testing.T) {
	const scaleBits = 8

	encSyms := make([]EncSymbol, len(longRoundTripTable))
	decSyms := make([]DecSymbol, len(longRoundTripTable))

	for i, e := range longRoundTripTable {
		encSyms[i] = NewEncSymbol(e.cumFreq, e.freq, scaleBits)
		decSyms[i] = NewDecSymbol(e.cumFreq, e.freq)
	}

	enc := NewEncoder(64)

	for i := len(longRoundTripSequence) - 1; i >= 0; i-- {
		enc.Put(encSyms[longRoundTripSequence[i]-1])
	}

	enc.Flush()

	dec := NewDecoderOwned(enc.Data())

	lookup := func(slot uint64) int {
		for i, e := range longRoundTripTable {
			if slot >= e.cumFreq && slot < e.cumFreq+e.freq {
				return i
			}
		}
		panic("slot not found")
	}

	for _, want := range longRoundTripSequence {
		slot := dec.Get(scaleBits)
		got := lookup(slot) + 1
		require.Equal(t, want, got)
		dec.Advance(decSyms[got-1], scaleBits)
	}
}

func TestRoundTripInterleaved(t *testing.T) {
	const scaleBits = 4

	e1 := NewEncSymbol(0, 4, scaleBits)
	e2 := NewEncSymbol(4, 4, scaleBits)
	e3 := NewEncSymbol(8, 4, scaleBits)
	e4 := NewEncSymbol(12, 4, scaleBits)

	d1 := NewDecSymbol(0, 4)
	d2 := NewDecSymbol(4, 4)
	d3 := NewDecSymbol(8, 4)
	d4 := NewDecSymbol(12, 4)

	enc := NewEncoderMulti(32, 2)
	enc.PutAt(0, e1)
	enc.PutAt(1, e1)
	enc.PutAt(0, e1)
	enc.PutAt(1, e2)
	enc.PutAt(0, e1)
	enc.PutAt(1, e3)
	enc.PutAt(0, e1)
	enc.PutAt(1, e4)
	enc.FlushAll()

	dec := NewDecoderMultiOwned(enc.Data(), 2)

	// FlushAll writes encoder channel 1's state last, so it sits at the
	// front of the stream and seeds decoder channel 0.
	require.Equal(t, uint64(12), dec.GetAt(0, scaleBits))
	dec.AdvanceAt(0, d4, scaleBits)
	require.Equal(t, uint64(0), dec.GetAt(1, scaleBits))
	dec.AdvanceAt(1, d1, scaleBits)

	require.Equal(t, uint64(8), dec.GetAt(0, scaleBits))
	dec.AdvanceAt(0, d3, scaleBits)
	require.Equal(t, uint64(0), dec.GetAt(1, scaleBits))
	dec.AdvanceAt(1, d1, scaleBits)

	require.Equal(t, uint64(4), dec.GetAt(0, scaleBits))
	dec.AdvanceAt(0, d2, scaleBits)
	require.Equal(t, uint64(0), dec.GetAt(1, scaleBits))
	dec.AdvanceAt(1, d1, scaleBits)

	require.Equal(t, uint64(0), dec.GetAt(0, scaleBits))
	dec.AdvanceAt(0, d1, scaleBits)
	require.Equal(t, uint64(0), dec.GetAt(1, scaleBits))
	dec.AdvanceAt(1, d1, scaleBits)
}

func TestGetAtInvalidChannelPanics(t *testing.T) {
	dec := NewDecoderMulti([]byte{0, 0, 0, 128, 0, 0, 0, 0, 0, 0, 0, 128, 0, 0, 0, 0}, 2)
	require.Panics(t, func() {
		dec.GetAt(2, 4)
	})
}

func TestNewDecoderPanicsOnShortInput(t *testing.T) {
	require.Panics(t, func() {
		NewDecoder([]byte{0, 0, 0})
	})
}

// TestRoundTripScaleBitsSweep exercises every scaleBits this variant
// documents as supported (§8 "Boundary behaviors": 1 through 16 for the
// word-aligned variant), since ranstable.Normalize itself refuses anything
// below 8 and so cannot cover this range on its own.
func TestRoundTripScaleBitsSweep(t *testing.T) {
	for scaleBits := uint32(1); scaleBits <= 16; scaleBits++ {
		t.Run(fmt.Sprintf("scaleBits=%d", scaleBits), func(t *testing.T) {
			total := uint64(1) << scaleBits
			half := total / 2

			e1 := NewEncSymbol(0, half, scaleBits)
			e2 := NewEncSymbol(half, total-half, scaleBits)
			d1 := NewDecSymbol(0, half)
			d2 := NewDecSymbol(half, total-half)

			enc := NewEncoder(64)
			enc.Put(e1)
			enc.Put(e2)
			enc.Put(e1)
			enc.Flush()

			dec := NewDecoderOwned(enc.Data())

			slot := dec.Get(scaleBits)
			require.Less(t, slot, half)
			dec.Advance(d1, scaleBits)

			slot = dec.Get(scaleBits)
			require.GreaterOrEqual(t, slot, half)
			dec.Advance(d2, scaleBits)

			slot = dec.Get(scaleBits)
			require.Less(t, slot, half)
			dec.Advance(d1, scaleBits)
		})
	}
}

// TestRoundTripMinFreqAtExtremes covers a freq=1 symbol at both ends of the
// cumulative range (§8 "Boundary behaviors"): cumFreq=0 and
// cumFreq=(1<<scaleBits)-1, each alongside a single bulk symbol absorbing
// the rest of the table.
func TestRoundTripMinFreqAtExtremes(t *testing.T) {
	const scaleBits = 10
	const total = uint64(1) << scaleBits

	t.Run("min-freq-at-start", func(t *testing.T) {
		eMin := NewEncSymbol(0, 1, scaleBits)
		eRest := NewEncSymbol(1, total-1, scaleBits)
		dMin := NewDecSymbol(0, 1)
		dRest := NewDecSymbol(1, total-1)

		enc := NewEncoder(64)
		enc.Put(eRest)
		enc.Put(eMin)
		enc.Flush()

		dec := NewDecoderOwned(enc.Data())

		slot := dec.Get(scaleBits)
		require.Equal(t, uint64(0), slot)
		dec.Advance(dMin, scaleBits)

		slot = dec.Get(scaleBits)
		require.GreaterOrEqual(t, slot, uint64(1))
		dec.Advance(dRest, scaleBits)
	})

	t.Run("min-freq-at-end", func(t *testing.T) {
		eRest := NewEncSymbol(0, total-1, scaleBits)
		eMin := NewEncSymbol(total-1, 1, scaleBits)
		dRest := NewDecSymbol(0, total-1)
		dMin := NewDecSymbol(total-1, 1)

		enc := NewEncoder(64)
		enc.Put(eMin)
		enc.Put(eRest)
		enc.Flush()

		dec := NewDecoderOwned(enc.Data())

		slot := dec.Get(scaleBits)
		require.Less(t, slot, total-1)
		dec.Advance(dRest, scaleBits)

		slot = dec.Get(scaleBits)
		require.Equal(t, total-1, slot)
		dec.Advance(dMin, scaleBits)
	})
}
