// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stim

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// stimFIFOReady is bit 0 of the stimulus register read value: set while
// the port FIFO can accept another transfer.
const stimFIFOReady = 1 << 0

// StimPort drives a single memory-mapped stimulus register, the layout
// used by ITM-style trace units: reading the register yields the FIFO
// readiness flag in bit 0; storing to it sends a transfer whose size is
// inferred from the store width.
//
// Intended for mapped register blocks (emulator buses, /dev/mem style
// mappings). The mapping must stay valid for the lifetime of the port.
type StimPort struct {
	reg *atomix.Uint32
}

// OpenStim maps the stimulus register at addr.
// Panics if addr is not 4-byte aligned.
func OpenStim(addr uintptr) *StimPort {
	if addr&0b11 != 0 {
		panic("stim: stimulus register must be 4-byte aligned")
	}
	return &StimPort{reg: (*atomix.Uint32)(unsafe.Pointer(addr))}
}

// Ready reports whether the port FIFO can accept one more transfer.
func (p *StimPort) Ready() bool {
	return p.reg.LoadAcquire()&stimFIFOReady != 0
}

// Write8 issues a byte-wide store to the stimulus register.
func (p *StimPort) Write8(v uint8) {
	*(*uint8)(unsafe.Pointer(p.reg)) = v
}

// Write16 issues a halfword-wide store to the stimulus register.
func (p *StimPort) Write16(v uint16) {
	*(*uint16)(unsafe.Pointer(p.reg)) = v
}

// Write32 issues a word-wide store to the stimulus register.
func (p *StimPort) Write32(v uint32) {
	p.reg.StoreRelease(v)
}
