// SPDX-License-Identifier: MIT

package reedsolomon

import (
	"errors"
	"fmt"
)

// ErrMessageTooLong is returned when a message does not fit the data capacity.
var ErrMessageTooLong = errors.New("reedsolomon: message exceeds data capacity")

// Version1M is the data codeword capacity of a version 1, level M symbol.
const Version1M = 16

const (
	byteModeIndicator = 0b0100
	maxByteModeLen    = 255 // 8-bit character count
)

// padBytes alternate after the terminator until capacity is filled.
var padBytes = [2]byte{0xEC, 0x11}

// ByteModeData encodes msg as QR byte-mode data codewords: mode indicator,
// 8-bit length, the bytes of msg, up to four terminator bits, zero bits to
// the next byte boundary, then alternating pad bytes up to capacity.
// The result is ready for Encode.
func ByteModeData(msg string, capacity int) ([]byte, error) {
	if len(msg) > maxByteModeLen || 12+8*len(msg) > 8*capacity {
		return nil, fmt.Errorf("ByteModeData: %d bytes into %d codewords: %w", len(msg), capacity, ErrMessageTooLong)
	}

	var w bitWriter
	w.write(byteModeIndicator, 4)
	w.write(uint(len(msg)), 8)
	for i := 0; i < len(msg); i++ {
		w.write(uint(msg[i]), 8)
	}
	w.write(0, min(4, 8*capacity-w.n))
	w.write(0, (8-w.n%8)%8)

	out := w.buf
	for i := 0; len(out) < capacity; i++ {
		out = append(out, padBytes[i%2])
	}
	return out, nil
}

// bitWriter appends big-endian bit fields to a byte slice.
type bitWriter struct {
	buf []byte
	n   int // bits written
}

func (w *bitWriter) write(v uint, bits int) {
	for i := bits - 1; i >= 0; i-- {
		if w.n%8 == 0 {
			w.buf = append(w.buf, 0)
		}
		if v>>uint(i)&1 == 1 {
			w.buf[len(w.buf)-1] |= 1 << uint(7-w.n%8)
		}
		w.n++
	}
}
