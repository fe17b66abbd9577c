// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stim

import (
	"fmt"
	"unsafe"
)

// Writer adapts a Port to io.Writer so the port composes with fmt and
// anything else that writes byte streams.
//
// Write is fire-and-forget: it always reports full success, matching
// the best-effort nature of a debug trace channel. Callers needing
// guaranteed delivery must not rely on this facility.
type Writer struct {
	port Port
}

// NewWriter returns an io.Writer that forwards to p via [WriteAll].
func NewWriter(p Port) *Writer {
	return &Writer{port: p}
}

// Write sends b to the port, blocking until accepted, and always
// returns (len(b), nil).
func (w *Writer) Write(b []byte) (int, error) {
	WriteAll(w.port, b)
	return len(b), nil
}

// WriteString writes the bytes of s to p, blocking until every byte
// has been accepted. The string data is forwarded without copying.
func WriteString(p Port, s string) {
	if len(s) == 0 {
		return
	}
	// Read-only view of the string data; WriteAll never mutates it.
	WriteAll(p, unsafe.Slice(unsafe.StringData(s), len(s)))
}

// WriteFmt formats args per format and writes the result to p.
//
// Best-effort: any formatting problem is rendered into the output the
// way fmt does (%!verb notes) or dropped, never surfaced to the
// caller.
func WriteFmt(p Port, format string, args ...any) {
	fmt.Fprintf(NewWriter(p), format, args...)
}
