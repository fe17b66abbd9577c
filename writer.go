// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stim

import (
	"encoding/binary"

	"code.hybscloud.com/spin"
)

// poll spins until p reports ready. There is no timeout: a port whose
// consumer never drains it blocks the caller indefinitely. Use
// [TryWriteAll] where blocking is unacceptable.
func poll(p Port) {
	sw := spin.Wait{}
	for !p.Ready() {
		sw.Once()
	}
}

// WriteWords writes ws to p in order, one word per readiness cycle.
//
// Readiness is re-polled before every word: acceptance of one word
// does not imply the port can take the next. Word i is fully accepted
// before word i+1 is attempted.
func WriteWords(p Port, ws []uint32) {
	for _, w := range ws {
		poll(p)
		p.Write32(w)
	}
}

// writeAligned writes b, whose base address must be 4-byte aligned.
//
// The largest whole-word prefix goes out as 32-bit transfers; the
// remaining 0-3 byte tail as at most one 16-bit and one 8-bit
// transfer, the minimum transfer count for any tail.
func writeAligned(p Port, b []byte) {
	if len(b) == 0 {
		return
	}

	split := len(b) &^ 0b11
	WriteWords(p, words(b[:split]))

	rest := b[split:]

	// At least 2 bytes left.
	if len(rest) > 1 {
		poll(p)
		p.Write16(binary.LittleEndian.Uint16(rest))
		rest = rest[2:]
	}

	// Final byte.
	if len(rest) == 1 {
		poll(p)
		p.Write8(rest[0])
	}
}

// WriteAll writes b to p, blocking until every byte has been accepted.
//
// The buffer may have any base address and length. At most one leading
// 8-bit and one leading 16-bit transfer bring the address to a 4-byte
// boundary; the aligned middle goes out as 32-bit transfers; at most
// one trailing 16-bit and one trailing 8-bit transfer cover the tail.
// Exactly len(b) bytes are emitted and no address outside b is read.
//
// A zero-length buffer issues no polls and no writes.
func WriteAll(p Port, b []byte) {
	if len(b) == 0 {
		return
	}

	// Odd base address: one byte reaches 2-byte alignment.
	if alignmentOf(b)&1 == 1 {
		poll(p)
		p.Write8(b[0])
		b = b[1:]
	}

	// Base address 2 mod 4: one halfword reaches 4-byte alignment.
	if alignmentOf(b)&0b11 == 2 {
		if len(b) > 1 {
			poll(p)
			p.Write16(binary.LittleEndian.Uint16(b))
			b = b[2:]
		} else {
			if len(b) == 1 {
				// Last byte.
				poll(p)
				p.Write8(b[0])
			}
			return
		}
	}

	// The remainder is 4-byte aligned, but not necessarily a
	// multiple of 4 bytes long.
	writeAligned(p, b)
}

// WriteAligned writes buf's payload to p, blocking until every byte
// has been accepted.
//
// The wrapper's type-level alignment guarantee lets this entry point
// skip the alignment detection of [WriteAll] and go straight to the
// aligned fast path.
func WriteAligned[T any](p Port, buf *Aligned[T]) {
	writeAligned(p, buf.Bytes())
}
