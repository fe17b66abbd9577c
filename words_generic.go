// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !(amd64 || arm64 || riscv64 || loong64)

package stim

import "encoding/binary"

// words assembles b into a sequence of 32-bit words, low byte first.
//
// Portable fallback for targets where a direct memory reinterpretation
// is not known to match the Port byte order. b's base address must be
// 4-byte aligned and len(b) a multiple of 4.
func words(b []byte) []uint32 {
	if len(b) == 0 {
		return nil
	}
	if alignmentOf(b) != 0 || len(b)&0b11 != 0 {
		panic("stim: words requires a 4-byte aligned region")
	}
	ws := make([]uint32, len(b)>>2)
	for i := range ws {
		ws[i] = binary.LittleEndian.Uint32(b[i<<2:])
	}
	return ws
}
