// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stim

import "encoding/binary"

// TryWriteAll writes b to p without spinning.
//
// It applies the same alignment splitting as [WriteAll], but a single
// not-ready poll stops the call instead of busy-waiting: TryWriteAll
// returns the number of bytes already emitted and ErrWouldBlock. The
// caller resumes with b[n:]; alignment is re-derived from the new base
// address, so a resumed call emits exactly the remaining bytes.
//
// Returns (len(b), nil) once the buffer is fully written. A zero-length
// buffer issues no polls and no writes.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for len(buf) > 0 {
//	    n, err := stim.TryWriteAll(port, buf)
//	    buf = buf[n:]
//	    if stim.IsWouldBlock(err) {
//	        backoff.Wait()
//	    }
//	}
func TryWriteAll(p Port, b []byte) (n int, err error) {
	if len(b) == 0 {
		return 0, nil
	}

	// Odd base address: one byte reaches 2-byte alignment.
	if alignmentOf(b)&1 == 1 {
		if !p.Ready() {
			return n, ErrWouldBlock
		}
		p.Write8(b[0])
		b, n = b[1:], n+1
	}

	// Base address 2 mod 4: one halfword reaches 4-byte alignment.
	if len(b) > 0 && alignmentOf(b)&0b11 == 2 {
		if len(b) == 1 {
			// Last byte.
			if !p.Ready() {
				return n, ErrWouldBlock
			}
			p.Write8(b[0])
			return n + 1, nil
		}
		if !p.Ready() {
			return n, ErrWouldBlock
		}
		p.Write16(binary.LittleEndian.Uint16(b))
		b, n = b[2:], n+2
	}

	// Aligned middle, one word per readiness poll.
	for len(b) >= 4 {
		if !p.Ready() {
			return n, ErrWouldBlock
		}
		p.Write32(binary.LittleEndian.Uint32(b))
		b, n = b[4:], n+4
	}

	// 0-3 byte tail.
	if len(b) > 1 {
		if !p.Ready() {
			return n, ErrWouldBlock
		}
		p.Write16(binary.LittleEndian.Uint16(b))
		b, n = b[2:], n+2
	}
	if len(b) == 1 {
		if !p.Ready() {
			return n, ErrWouldBlock
		}
		p.Write8(b[0])
		n++
	}
	return n, nil
}
