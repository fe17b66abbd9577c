// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package stim writes byte streams to narrow, word-oriented trace and
// debug ports.
//
// Such ports (hardware trace units, debug stimulus channels, mailbox
// registers) accept only 8-, 16- or 32-bit transfers, are fastest when
// fed whole words, and must be polled for readiness before every
// write. The package splits an arbitrary byte buffer into the minimum
// transfer sequence: at most one leading 8-bit and one leading 16-bit
// write to reach a 4-byte boundary, 32-bit writes for the aligned
// middle, and at most one trailing 16-bit and one trailing 8-bit write
// for the tail. Exactly len(buffer) bytes are emitted and no address
// outside the buffer is read.
//
// # Quick Start
//
//	// Any implementation of stim.Port
//	port := stim.OpenStim(stimAddr)
//
//	// Arbitrary alignment and length
//	stim.WriteAll(port, payload)
//
//	// Formatted trace output, best-effort
//	stim.WriteFmt(port, "tick=%d state=%s\n", tick, state)
//
// # Port Contract
//
// [Port] is the consumed capability: Ready is a non-blocking poll,
// Write8/Write16/Write32 issue one transfer each, and a write is
// accepted synchronously once issued after an observed Ready. The
// writers re-poll before every individual transfer. Multi-byte values
// carry buffer bytes low byte first.
//
// A port is exclusively held for the duration of one top-level write
// call. No internal locking is provided; callers must not drive the
// same port from two goroutines at once.
//
// # Entry Points
//
//	WriteAll(port, buf)       - arbitrary base address and length
//	WriteAligned(port, &a)    - payload wrapped in Aligned, skips detection
//	WriteWords(port, words)   - caller already holds 32-bit words
//	WriteString(port, s)      - string bytes, no copy
//	WriteFmt(port, f, args)   - fmt-style formatting, best-effort
//	TryWriteAll(port, buf)    - non-blocking, resumable
//
// [Aligned] forces its payload onto a 4-byte boundary at the type
// level, so callers that can declare their data aligned skip the
// alignment detection phase:
//
//	var buf stim.Aligned[[14]byte]
//	copy(buf.Data[:], "Hello, world!\n")
//	stim.WriteAligned(port, &buf)
//
// # Blocking Model
//
// The write entry points busy-poll readiness with CPU pause
// instructions between polls. There is no timeout and no cancellation:
// if the consumer side never drains the port, a call blocks its
// goroutine indefinitely. This is intended best-effort trace behavior.
// Where blocking is unacceptable, [TryWriteAll] returns
// [ErrWouldBlock] instead of spinning and reports how many bytes were
// emitted, so the caller can resume later:
//
//	backoff := iox.Backoff{}
//	for len(buf) > 0 {
//	    n, err := stim.TryWriteAll(port, buf)
//	    buf = buf[n:]
//	    if stim.IsWouldBlock(err) {
//	        backoff.Wait()
//	    }
//	}
//
// # Software Ports
//
// Two Port implementations ship with the package:
//
//   - [StimPort] drives a memory-mapped stimulus register (ITM-style:
//     readiness in bit 0 of the register read, transfer size inferred
//     from the store width).
//   - [RingPort] buffers transfers in a single-producer
//     single-consumer byte ring, for tests and host-side tooling that
//     drain the stream in-process.
//
// # Best-Effort Semantics
//
// Nothing in this package reports delivery failure. The readiness poll
// only delays, writes do not fail, and the text adapters suppress
// formatting errors rather than surfacing them. Callers that need
// guaranteed delivery must not rely on this facility.
//
// # Race Detection
//
// RingPort synchronizes through atomic sequence indexes with
// acquire-release ordering. Go's race detector cannot observe
// happens-before relationships established this way and reports false
// positives on the buffer accesses. Concurrent RingPort tests are
// skipped under the race detector via [RaceEnabled].
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, and [code.hybscloud.com/spin] for CPU pause
// instructions.
package stim
