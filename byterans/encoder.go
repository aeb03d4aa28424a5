// Copyright 2026 The rans-rs Authors.

package byterans

// EncoderMulti is a streaming rANS encoder running N independent channels
// over one back-growing byte buffer. The buffer is allocated once, at
// construction, and the write cursor walks from its end toward its start;
// Data returns the suffix that has actually been written.
type EncoderMulti struct {
	states   []uint32
	buffer   []byte
	pos      int // index of the first already-written byte; writes happen at pos-1
	channels int
}

// NewEncoderMulti allocates an encoder with room for up to maxLen bytes of
// output and channels independent rANS states.
func NewEncoderMulti(maxLen int, channels int) *EncoderMulti {
	if channels < 1 {
		panic("byterans: channels must be >= 1")
	}

	this := &EncoderMulti{
		states:   make([]uint32, channels),
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
		this.states[c] = ransByteL
	}

	this.pos = len(this.buffer)
}

func (this *EncoderMulti) checkChannel(channel int) {
	if channel < 0 || channel >= this.channels {
		panic("byterans: channel out of range")
	}
}

// PutAt encodes symbol into channel, renormalizing (emitting bytes to the
// shared buffer) as many times as needed first.
func (this *EncoderMulti) PutAt(channel int, symbol EncSymbol) {
	this.checkChannel(channel)
	x := this.states[channel]

	if x >= symbol.xMax {
		for {
			if this.pos <= 0 {
				panic("byterans: encoder output buffer exhausted")
			}

			this.pos--
			this.buffer[this.pos] = byte(x & 0xFF)
			x >>= 8

			if x < symbol.xMax {
				break
			}
		}
	}

	q := uint32((uint64(x) * uint64(symbol.rcpFreq)) >> 32 >> symbol.rcpShift)
	this.states[channel] = x + symbol.bias + q*symbol.cmplFreq
}

// Put encodes symbol on channel 0.
func (this *EncoderMulti) Put(symbol EncSymbol) {
	this.PutAt(0, symbol)
}

// FlushAt writes the full 32-bit state of channel to the buffer. After this
// call the channel must not be used again until Reset.
func (this *EncoderMulti) FlushAt(channel int) {
	this.checkChannel(channel)
	x := this.states[channel]

	if this.pos < 4 {
		panic("byterans: encoder output buffer exhausted")
	}

	this.pos -= 4
	this.buffer[this.pos+0] = byte(x >> 0)
	this.buffer[this.pos+1] = byte(x >> 8)
	this.buffer[this.pos+2] = byte(x >> 16)
	this.buffer[this.pos+3] = byte(x >> 24)
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
// from the write cursor to the end. The slice aliases the encoder's
// internal storage and is only valid until the next mutating call.
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
