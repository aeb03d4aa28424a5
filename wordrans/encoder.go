// Copyright 2026 The rans-rs Authors.

package wordrans

import "math/bits"

// EncoderMulti is a streaming rANS encoder running N independent channels
// over one back-growing byte buffer, 32 bits (4 bytes) at a time. The
// buffer is allocated once, at construction, and the write cursor walks
// from its end toward its start; Data returns the suffix actually written.
type EncoderMulti struct {
	states   []uint64
	buffer   []byte
	pos      int // index of the first already-written byte
	channels int
}

// NewEncoderMulti allocates an encoder with room for up to maxLen bytes of
// output (a multiple of 4 is expected, since output is emitted in 4-byte
// units) and channels independent rANS states.
func NewEncoderMulti(maxLen int, channels int) *EncoderMulti {
	if channels < 1 {
		panic("wordrans: channels must be >= 1")
	}

	this := &EncoderMulti{
		states:   make([]uint64, channels),
		buffer:   make([]byte, maxLen),
		channels: channels,
	}

	this.Reset()
	return this
}

// NewEncoder allocates a single-channel encoder with room for maxLen bytes.
func NewEncoder(maxLen int) *EncoderMulti {
	return NewEncoderMulti(maxLen, 1)
}

// Reset returns every channel to its initial state and the write cursor to
// the end of the buffer, discarding any previously encoded output.
func (this *EncoderMulti) Reset() {
	for c := range this.states {
		this.states[c] = ransWordL
	}

	this.pos = len(this.buffer)
}

func (this *EncoderMulti) checkChannel(channel int) {
	if channel < 0 || channel >= this.channels {
		panic("wordrans: channel out of range")
	}
}

func (this *EncoderMulti) emitWord(w uint32) {
	if this.pos < 4 {
		panic("wordrans: encoder output buffer exhausted")
	}

	this.pos -= 4
	this.buffer[this.pos+0] = byte(w >> 0)
	this.buffer[this.pos+1] = byte(w >> 8)
	this.buffer[this.pos+2] = byte(w >> 16)
	this.buffer[this.pos+3] = byte(w >> 24)
}

// PutAt encodes symbol into channel, first renormalizing (emitting one
// 32-bit word to the shared buffer) if the state is at or above the
// symbol's bound; a single 32-bit shift always brings it back below.
func (this *EncoderMulti) PutAt(channel int, symbol EncSymbol) {
	this.checkChannel(channel)
	x := this.states[channel]

	if x >= symbol.xMax {
		this.emitWord(uint32(x & 0xFFFFFFFF))
		x >>= 32
	}

	hi, _ := bits.Mul64(x, symbol.rcpFreq)
	q := hi >> symbol.rcpShift
	this.states[channel] = x + symbol.bias + q*symbol.cmplFreq
}

// Put encodes symbol on channel 0.
func (this *EncoderMulti) Put(symbol EncSymbol) {
	this.PutAt(0, symbol)
}

// FlushAt writes the full 64-bit state of channel to the buffer as two
// little-endian 32-bit words, low word first. After this call the channel
// must not be used again until Reset.
func (this *EncoderMulti) FlushAt(channel int) {
	this.checkChannel(channel)
	x := this.states[channel]
	this.emitWord(uint32(x >> 32))
	this.emitWord(uint32(x & 0xFFFFFFFF))
}

// Flush flushes channel 0.
func (this *EncoderMulti) Flush() {
	this.FlushAt(0)
}

// FlushAll flushes every channel in ascending order. This order is part of
// the wire contract a matching decoder relies on.
func (this *EncoderMulti) FlushAll() {
	for c := 0; c < this.channels; c++ {
		this.FlushAt(c)
	}
}

// Data returns the bytes written so far: the suffix of the internal buffer
// from the write cursor to the end.
func (this *EncoderMulti) Data() []byte {
	return this.buffer[this.pos:]
}

// Len returns len(Data()).
func (this *EncoderMulti) Len() int {
	return len(this.buffer) - this.pos
}

// IsEmpty reports whether nothing has been written yet.
func (this *EncoderMulti) IsEmpty() bool {
	return this.Len() == 0
}
