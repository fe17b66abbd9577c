// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stim

import "code.hybscloud.com/atomix"

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// RingPort is an in-process Port backed by a single-producer
// single-consumer byte ring.
//
// The writer side implements [Port]: Ready reports true while at least
// 4 bytes of space remain, so any single transfer fits once readiness
// has been observed. The consumer side drains the stream with Read.
// This gives tests and host-side tooling a real port to drain without
// hardware.
//
// Based on Lamport's ring buffer with cached index optimization: the
// producer caches the consumer's read index, and vice versa, reducing
// cross-core cache line traffic.
//
// Exactly one goroutine may write (hold the Port side) and exactly one
// may read. The Port contract applies: every Write must be preceded by
// an observed Ready; a write issued against an unready ring clobbers
// unread bytes.
type RingPort struct {
	_          pad
	head       atomix.Uint64 // Consumer reads from here
	_          pad
	cachedTail uint64 // Consumer's cached view of tail
	_          pad
	tail       atomix.Uint64 // Producer writes here
	_          pad
	cachedHead uint64 // Producer's cached view of head
	_          pad
	buffer     []byte
	mask       uint64
}

// NewRingPort creates a ring port with at least capacity bytes of
// buffer. Capacity rounds up to the next power of 2.
// Panics if capacity < 4 (a 32-bit transfer must fit).
func NewRingPort(capacity int) *RingPort {
	if capacity < 4 {
		panic("stim: ring capacity must be >= 4")
	}

	n := uint64(roundToPow2(capacity))
	return &RingPort{
		buffer: make([]byte, n),
		mask:   n - 1,
	}
}

// Ready reports whether the ring can accept one more transfer of any
// width (producer only).
func (q *RingPort) Ready() bool {
	tail := q.tail.LoadRelaxed()
	if tail+4-q.cachedHead > q.mask+1 {
		q.cachedHead = q.head.LoadAcquire()
	}
	return tail+4-q.cachedHead <= q.mask+1
}

// Write8 issues an 8-bit transfer (producer only).
func (q *RingPort) Write8(v uint8) {
	tail := q.tail.LoadRelaxed()
	q.buffer[tail&q.mask] = v
	q.tail.StoreRelease(tail + 1)
}

// Write16 issues a 16-bit transfer, low byte first (producer only).
func (q *RingPort) Write16(v uint16) {
	tail := q.tail.LoadRelaxed()
	q.buffer[tail&q.mask] = byte(v)
	q.buffer[(tail+1)&q.mask] = byte(v >> 8)
	q.tail.StoreRelease(tail + 2)
}

// Write32 issues a 32-bit transfer, low byte first (producer only).
func (q *RingPort) Write32(v uint32) {
	tail := q.tail.LoadRelaxed()
	q.buffer[tail&q.mask] = byte(v)
	q.buffer[(tail+1)&q.mask] = byte(v >> 8)
	q.buffer[(tail+2)&q.mask] = byte(v >> 16)
	q.buffer[(tail+3)&q.mask] = byte(v >> 24)
	q.tail.StoreRelease(tail + 4)
}

// Read drains up to len(dst) buffered bytes into dst (consumer only).
// Returns (0, ErrWouldBlock) if nothing is buffered.
func (q *RingPort) Read(dst []byte) (int, error) {
	head := q.head.LoadRelaxed()
	if head >= q.cachedTail {
		q.cachedTail = q.tail.LoadAcquire()
		if head >= q.cachedTail {
			return 0, ErrWouldBlock
		}
	}

	n := int(q.cachedTail - head)
	if n > len(dst) {
		n = len(dst)
	}
	for i := range n {
		dst[i] = q.buffer[(head+uint64(i))&q.mask]
	}
	q.head.StoreRelease(head + uint64(n))
	return n, nil
}

// Buffered returns the number of bytes waiting to be read
// (consumer only).
func (q *RingPort) Buffered() int {
	return int(q.tail.LoadAcquire() - q.head.LoadRelaxed())
}

// Cap returns the ring's buffer size in bytes.
func (q *RingPort) Cap() int {
	return int(q.mask + 1)
}

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
