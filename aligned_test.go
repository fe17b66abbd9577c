// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stim_test

import (
	"testing"
	"unsafe"

	"code.hybscloud.com/stim"
)

// TestAlignedPlacement checks the type-level alignment guarantee: the
// payload of an Aligned value starts on a 4-byte boundary regardless of
// the payload type's natural alignment.
func TestAlignedPlacement(t *testing.T) {
	var a stim.Aligned[[7]byte]
	if addr := uintptr(unsafe.Pointer(&a.Data)); addr&0b11 != 0 {
		t.Fatalf("payload address %#x not 4-byte aligned", addr)
	}

	var b stim.Aligned[byte]
	if addr := uintptr(unsafe.Pointer(&b.Data)); addr&0b11 != 0 {
		t.Fatalf("byte payload address %#x not 4-byte aligned", addr)
	}

	// Alignment holds inside a larger struct as well.
	var s struct {
		_ byte
		a stim.Aligned[[3]byte]
	}
	if addr := uintptr(unsafe.Pointer(&s.a.Data)); addr&0b11 != 0 {
		t.Fatalf("embedded payload address %#x not 4-byte aligned", addr)
	}
}

// TestAlignedBytes checks that Bytes views the payload in place.
func TestAlignedBytes(t *testing.T) {
	var a stim.Aligned[[6]byte]
	copy(a.Data[:], "trace!")

	got := a.Bytes()
	if len(got) != 6 {
		t.Fatalf("len: got %d, want 6", len(got))
	}
	if unsafe.Pointer(unsafe.SliceData(got)) != unsafe.Pointer(&a.Data) {
		t.Fatalf("Bytes copies; want an in-place view")
	}
	if string(got) != "trace!" {
		t.Fatalf("payload: got %q, want %q", got, "trace!")
	}

	// Mutations through the wrapper are visible in the view.
	a.Data[0] = 'T'
	if got[0] != 'T' {
		t.Fatalf("view not aliased to payload")
	}
}

// TestMakeAligned checks base alignment and exact length for dynamic
// buffer sizes.
func TestMakeAligned(t *testing.T) {
	if got := stim.MakeAligned(0); got != nil {
		t.Fatalf("MakeAligned(0): got %v, want nil", got)
	}

	for n := 1; n <= 17; n++ {
		buf := stim.MakeAligned(n)
		if len(buf) != n {
			t.Fatalf("n=%d: len: got %d, want %d", n, len(buf), n)
		}
		if addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf))); addr&0b11 != 0 {
			t.Fatalf("n=%d: base address %#x not 4-byte aligned", n, addr)
		}
	}
}
