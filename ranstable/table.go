// Copyright 2026 The rans-rs Authors.

package ranstable

import (
	"github.com/m4tx/rans-rs/byterans"
	"github.com/m4tx/rans-rs/wordrans"
)

// ByteEncodeTable builds one byterans.EncSymbol per byte value present in
// the table described by cumFreq/freq (freq[i] == 0 for absent symbols).
func ByteEncodeTable(cumFreq, freq [AlphabetSize]uint32, scaleBits uint32) [AlphabetSize]byterans.EncSymbol {
	var table [AlphabetSize]byterans.EncSymbol

	for i := 0; i < AlphabetSize; i++ {
		if freq[i] == 0 {
			continue
		}

		table[i] = byterans.NewEncSymbol(cumFreq[i], freq[i], scaleBits)
	}

	return table
}

// ByteDecodeTable builds the byterans.DecSymbol array and the direct
// cumulative-frequency-to-symbol lookup array of length 1<<scaleBits that a
// decoder loop indexes with GetAt's return value.
func ByteDecodeTable(cumFreq, freq [AlphabetSize]uint32, scaleBits uint32) ([AlphabetSize]byterans.DecSymbol, []byte) {
	var table [AlphabetSize]byterans.DecSymbol
	lookup := make([]byte, uint32(1)<<scaleBits)

	for i := 0; i < AlphabetSize; i++ {
		if freq[i] == 0 {
			continue
		}

		table[i] = byterans.NewDecSymbol(cumFreq[i], freq[i])

		for slot := cumFreq[i]; slot < cumFreq[i]+freq[i]; slot++ {
			lookup[slot] = byte(i)
		}
	}

	return table, lookup
}

// WordEncodeTable is the wordrans equivalent of ByteEncodeTable.
func WordEncodeTable(cumFreq, freq [AlphabetSize]uint32, scaleBits uint32) [AlphabetSize]wordrans.EncSymbol {
	var table [AlphabetSize]wordrans.EncSymbol

	for i := 0; i < AlphabetSize; i++ {
		if freq[i] == 0 {
			continue
		}

		table[i] = wordrans.NewEncSymbol(uint64(cumFreq[i]), uint64(freq[i]), scaleBits)
	}

	return table
}

// WordDecodeTable is the wordrans equivalent of ByteDecodeTable.
func WordDecodeTable(cumFreq, freq [AlphabetSize]uint32, scaleBits uint32) ([AlphabetSize]wordrans.DecSymbol, []byte) {
	var table [AlphabetSize]wordrans.DecSymbol
	lookup := make([]byte, uint32(1)<<scaleBits)

	for i := 0; i < AlphabetSize; i++ {
		if freq[i] == 0 {
			continue
		}

		table[i] = wordrans.NewDecSymbol(uint64(cumFreq[i]), uint64(freq[i]))

		for slot := cumFreq[i]; slot < cumFreq[i]+freq[i]; slot++ {
			lookup[slot] = byte(i)
		}
	}

	return table, lookup
}
