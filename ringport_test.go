// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stim_test

import (
	"bytes"
	"sync"
	"testing"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/stim"
)

// TestRingPortBasic round-trips an awkwardly aligned buffer through the
// ring: writer side as a Port, consumer side via Read.
func TestRingPortBasic(t *testing.T) {
	q := stim.NewRingPort(16)
	if q.Cap() != 16 {
		t.Fatalf("Cap: got %d, want 16", q.Cap())
	}

	data := pattern(9)
	stim.WriteAll(q, bufAt(t, 3, data))

	if q.Buffered() != len(data) {
		t.Fatalf("Buffered: got %d, want %d", q.Buffered(), len(data))
	}

	got := make([]byte, 16)
	n, err := q.Read(got)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !bytes.Equal(got[:n], data) {
		t.Fatalf("Read: got %x, want %x", got[:n], data)
	}

	if _, err := q.Read(got); err == nil || !stim.IsWouldBlock(err) {
		t.Fatalf("Read on empty: got %v, want ErrWouldBlock", err)
	}
}

// TestRingPortCapRounding checks power-of-2 rounding.
func TestRingPortCapRounding(t *testing.T) {
	if got := stim.NewRingPort(5).Cap(); got != 8 {
		t.Fatalf("Cap: got %d, want 8", got)
	}
	if got := stim.NewRingPort(4).Cap(); got != 4 {
		t.Fatalf("Cap: got %d, want 4", got)
	}
}

// TestRingPortReady checks that readiness reserves room for a full
// 32-bit transfer and recovers once the consumer drains.
func TestRingPortReady(t *testing.T) {
	q := stim.NewRingPort(8)

	if !q.Ready() {
		t.Fatalf("Ready on empty ring: got false, want true")
	}
	q.Write32(0x04030201)
	if !q.Ready() { // 4 bytes free: one more word still fits
		t.Fatalf("Ready with 4 bytes free: got false, want true")
	}
	q.Write32(0x08070605)
	if q.Ready() { // full
		t.Fatalf("Ready on full ring: got true, want false")
	}

	buf := make([]byte, 4)
	if _, err := q.Read(buf); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !bytes.Equal(buf, []byte{1, 2, 3, 4}) {
		t.Fatalf("Read: got %v, want [1 2 3 4]", buf)
	}
	if !q.Ready() {
		t.Fatalf("Ready after drain: got false, want true")
	}
}

// TestRingPortWraparound pushes several times the ring capacity through
// a small ring to exercise index wraparound.
func TestRingPortWraparound(t *testing.T) {
	q := stim.NewRingPort(8)

	var got []byte
	data := pattern(50)
	buf := make([]byte, 8)
	for chunk := data; len(chunk) > 0; {
		n := min(len(chunk), 4)
		stim.WriteAll(q, chunk[:n])
		chunk = chunk[n:]

		m, err := q.Read(buf)
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		got = append(got, buf[:m]...)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("round trip: got %x, want %x", got, data)
	}
}

// TestRingPortConcurrent streams data through the ring with the writer
// and reader on separate goroutines. Skipped under the race detector:
// the detector cannot see the acquire-release ordering the ring
// synchronizes with.
func TestRingPortConcurrent(t *testing.T) {
	if stim.RaceEnabled {
		t.Skip("ring synchronizes via atomic orderings invisible to the race detector")
	}

	const total = 1 << 16
	q := stim.NewRingPort(64)
	data := make([]byte, total)
	for i := range data {
		data[i] = byte(i * 31)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for chunk := data; len(chunk) > 0; {
			n := min(len(chunk), 48)
			stim.WriteAll(q, chunk[:n])
			chunk = chunk[n:]
		}
	}()

	got := make([]byte, 0, total)
	buf := make([]byte, 64)
	backoff := iox.Backoff{}
	for len(got) < total {
		n, err := q.Read(buf)
		if err != nil {
			backoff.Wait()
			continue
		}
		backoff.Reset()
		got = append(got, buf[:n]...)
	}
	wg.Wait()

	if !bytes.Equal(got, data) {
		t.Fatalf("stream corrupted: %d bytes received", len(got))
	}
}
