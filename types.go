// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stim

// Port is the capability consumed by the writers: a narrow,
// word-oriented hardware trace channel that accepts 8-, 16- or 32-bit
// transfers and must be polled for readiness before every write.
//
// Contract:
//
//   - Ready is a non-blocking poll with no side effect on false.
//   - A write issued immediately after Ready returned true is accepted
//     synchronously; there is no queuing beyond one pending write slot.
//   - Acceptance of one write does not imply readiness for the next;
//     callers re-poll before every individual transfer.
//   - Multi-byte values carry buffer bytes low byte first: Write16 sends
//     bits 7..0 then 15..8, Write32 sends bits 7..0 up to 31..24. This
//     matches the little-endian byte order of trace streams.
//
// A Port is an exclusively-held resource for the duration of one
// top-level write call. No locking is provided; two writers must not
// drive the same port concurrently.
type Port interface {
	// Ready reports whether the port can accept one more transfer.
	Ready() bool
	// Write8 issues an 8-bit transfer.
	Write8(v uint8)
	// Write16 issues a 16-bit transfer (low byte first).
	Write16(v uint16)
	// Write32 issues a 32-bit transfer (low byte first).
	Write32(v uint32)
}
