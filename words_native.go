// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build amd64 || arm64 || riscv64 || loong64

package stim

import "unsafe"

// words reinterprets b as a sequence of 32-bit words without copying.
//
// This is the single audited reinterpretation boundary of the package:
// b's base address must be 4-byte aligned and len(b) a multiple of 4.
// On these little-endian targets the in-memory word value already
// carries the buffer bytes low byte first, matching the Port contract.
func words(b []byte) []uint32 {
	if len(b) == 0 {
		return nil
	}
	if alignmentOf(b) != 0 || len(b)&0b11 != 0 {
		panic("stim: words requires a 4-byte aligned region")
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(unsafe.SliceData(b))), len(b)>>2)
}
