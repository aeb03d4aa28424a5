// Copyright 2026 The rans-rs Authors.

// Package ranstable builds and serializes the order-0 frequency tables that
// package byterans and package wordrans need but deliberately do not build
// themselves: a histogram of a byte block, its normalization to a power-of-
// two denominator, and the encoder/decoder symbol tables (and direct
// cumulative-frequency lookup array) those two codec packages consume.
//
// None of this is part of the rANS core contract; it exists to demonstrate
// a complete, realistic caller.
package ranstable

import (
	"fmt"
	"sort"
)

// AlphabetSize is the number of distinct byte values a table can describe.
const AlphabetSize = 256

// Histogram computes an order-0 byte histogram of src.
func Histogram(src []byte) [AlphabetSize]uint32 {
	var freqs [AlphabetSize]uint32

	end16 := len(src) &^ 15

	for i := 0; i < end16; i += 16 {
		d := src[i : i+16]
		freqs[d[0]]++
		freqs[d[1]]++
		freqs[d[2]]++
		freqs[d[3]]++
		freqs[d[4]]++
		freqs[d[5]]++
		freqs[d[6]]++
		freqs[d[7]]++
		freqs[d[8]]++
		freqs[d[9]]++
		freqs[d[10]]++
		freqs[d[11]]++
		freqs[d[12]]++
		freqs[d[13]]++
		freqs[d[14]]++
		freqs[d[15]]++
	}

	for i := end16; i < len(src); i++ {
		freqs[src[i]]++
	}

	return freqs
}

type freqSortEntry struct {
	freq   *uint32
	symbol int
}

type byDecreasingFreq []*freqSortEntry

func (this byDecreasingFreq) Len() int { return len(this) }

func (this byDecreasingFreq) Less(i, j int) bool {
	di, dj := this[i], this[j]

	if *dj.freq == *di.freq {
		return dj.symbol < di.symbol
	}

	return *dj.freq < *di.freq
}

func (this byDecreasingFreq) Swap(i, j int) { this[i], this[j] = this[j], this[i] }

// Normalize scales counts, a raw histogram summing to totalFreq, so that the
// result sums exactly to 1<<scaleBits, with every originally nonzero count
// mapped to a frequency of at least 1. It returns the per-symbol cumulative
// frequency and frequency arrays (zero for absent symbols) and the number of
// distinct symbols present. scaleBits must be in [8, 16] (a scale below 256
// cannot represent 256 distinct symbols each with freq >= 1).
func Normalize(counts [AlphabetSize]uint32, scaleBits uint32) (cumFreq, freq [AlphabetSize]uint32, alphabetSize int, err error) {
	if scaleBits < 8 || scaleBits > 16 {
		return cumFreq, freq, 0, fmt.Errorf("ranstable: scaleBits must be in [8, 16], got %d", scaleBits)
	}

	scale := uint32(1) << scaleBits

	var totalFreq uint64
	for _, c := range counts {
		totalFreq += uint64(c)
	}

	if totalFreq == 0 {
		return cumFreq, freq, 0, nil
	}

	freq = counts

	if totalFreq == uint64(scale) {
		for _, f := range freq {
			if f != 0 {
				alphabetSize++
			}
		}

		buildCumFreq(&freq, &cumFreq)
		return cumFreq, freq, alphabetSize, nil
	}

	alphabet := make([]int, 0, AlphabetSize)
	sumScaled := uint64(0)
	idxMax := 0

	for i := 0; i < AlphabetSize; i++ {
		f := counts[i]
		freq[i] = 0

		if f == 0 {
			continue
		}

		sf := uint64(f) * uint64(scale)
		var scaledFreq uint32

		if sf <= totalFreq {
			scaledFreq = 1
		} else {
			scaledFreq = uint32(sf / totalFreq)
			errCeiling := uint64(scaledFreq+1)*totalFreq - sf
			errFloor := sf - uint64(scaledFreq)*totalFreq

			if errCeiling < errFloor {
				scaledFreq++
			}
		}

		alphabet = append(alphabet, i)
		freq[i] = scaledFreq
		sumScaled += uint64(scaledFreq)

		if scaledFreq > freq[idxMax] {
			idxMax = i
		}
	}

	alphabetSize = len(alphabet)

	if alphabetSize == 0 {
		return cumFreq, freq, 0, nil
	}

	if alphabetSize == 1 {
		freq[alphabet[0]] = scale
		buildCumFreq(&freq, &cumFreq)
		return cumFreq, freq, 1, nil
	}

	if sumScaled != uint64(scale) {
		delta := int64(sumScaled) - int64(scale)
		errThr := freq[idxMax] >> 4
		var inc int32
		var absDelta uint32

		if delta < 0 {
			absDelta = uint32(-delta)
			inc = 1
		} else {
			absDelta = uint32(delta)
			inc = -1
		}

		if absDelta <= errThr {
			freq[idxMax] -= uint32(delta)
		} else {
			if delta < 0 {
				freq[idxMax] += errThr
				sumScaled += uint64(errThr)
			} else {
				freq[idxMax] -= errThr
				sumScaled -= uint64(errThr)
			}

			queue := make(byDecreasingFreq, 0, alphabetSize)

			for _, sym := range alphabet {
				if freq[sym] <= 2 {
					continue
				}

				queue = append(queue, &freqSortEntry{freq: &freq[sym], symbol: sym})
			}

			sort.Sort(queue)

			for len(queue) != 0 && sumScaled != uint64(scale) {
				fsd := queue[0]
				queue = queue[1:]

				if int32(*fsd.freq) == -inc {
					continue
				}

				*fsd.freq = uint32(int32(*fsd.freq) + inc)
				sumScaled = uint64(int64(sumScaled) + int64(inc))
				queue = append(queue, fsd)
			}

			if sumScaled != uint64(scale) {
				for _, sym := range alphabet {
					if sumScaled == uint64(scale) {
						break
					}

					if int32(freq[sym]) != -inc {
						freq[sym] = uint32(int32(freq[sym]) + inc)
						sumScaled = uint64(int64(sumScaled) + int64(inc))
					}
				}
			}
		}
	}

	buildCumFreq(&freq, &cumFreq)
	return cumFreq, freq, alphabetSize, nil
}

func buildCumFreq(freq *[AlphabetSize]uint32, cumFreq *[AlphabetSize]uint32) {
	sum := uint32(0)

	for i := 0; i < AlphabetSize; i++ {
		cumFreq[i] = sum
		sum += freq[i]
	}
}
