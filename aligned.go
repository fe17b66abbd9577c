// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stim

import "unsafe"

// Aligned forces its payload onto a 4-byte boundary.
//
// Port transfers are most efficient when the data is 4-byte aligned.
// Wrapping a payload in Aligned guarantees the alignment at the type
// level, independent of the payload's natural alignment, so
// [WriteAligned] can skip alignment detection entirely.
//
// T should be plain byte data ([N]byte or a struct of such); the
// payload is transmitted exactly as it is laid out in memory,
// including any padding T may contain.
//
// Example:
//
//	var buf stim.Aligned[[14]byte]
//	copy(buf.Data[:], "Hello, world!\n")
//	stim.WriteAligned(port, &buf)
type Aligned[T any] struct {
	_    [0]uint32
	Data T
}

// Bytes returns the payload viewed as a byte slice, without copying.
// The slice's base address is 4-byte aligned and the view is valid as
// long as a is.
func (a *Aligned[T]) Bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&a.Data)), int(unsafe.Sizeof(a.Data)))
}

// MakeAligned allocates a byte slice of length n whose base address is
// 4-byte aligned, for callers that need a dynamically sized buffer on
// the fast path of [WriteAligned] semantics via [WriteAll].
func MakeAligned(n int) []byte {
	if n < 0 {
		panic("stim: negative buffer size")
	}
	if n == 0 {
		return nil
	}
	w := make([]uint32, (n+3)>>2)
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(w))), len(w)*4)[:n:n]
}

// alignmentOf returns the buffer's base address modulo 4.
// The value determines how many leading bytes must be peeled off
// before the remainder can be treated as word-aligned.
func alignmentOf(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b))) & 0b11
}
