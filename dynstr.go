// File: dynstr.go
// Title: DynString Buffer Lifecycle
// Description: Implements the DynString type, an owned growable byte buffer
//              with exact-fit allocation, and its lifecycle operations:
//              construction, join, concatenation, insertion, removal and
//              release. The buffer is single-owner and not safe for
//              concurrent mutation without external synchronization.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial implementation of the buffer lifecycle

package dynstr

import (
	dserrors "github.com/msto63/dynstr/core/errors"
)

// DynString is an owned, growable byte buffer with a tracked length.
//
// The backing buffer always holds exactly Len() content bytes: every
// mutating operation reallocates to an exact fit, keeping the footprint
// minimal. The zero value is a valid empty string, and a destroyed value is
// indistinguishable from an empty one, so no operation can ever observe an
// invalid buffer.
//
// A DynString must not be mutated concurrently from multiple goroutines.
type DynString struct {
	buf []byte
}

// New creates a DynString holding a copy of source.
func New(source string) *DynString {
	d := &DynString{}
	if len(source) > 0 {
		d.buf = make([]byte, len(source))
		copy(d.buf, source)
	}
	return d
}

// NewFromBytes creates a DynString holding a copy of source. The input
// slice is never aliased; later changes to it do not affect the string.
func NewFromBytes(source []byte) *DynString {
	d := &DynString{}
	if len(source) > 0 {
		d.buf = make([]byte, len(source))
		copy(d.buf, source)
	}
	return d
}

// Join creates a DynString from parts concatenated with sep between
// consecutive parts (not before the first, not after the last). Zero parts
// yield an empty string.
func Join(parts []string, sep string) *DynString {
	if len(parts) == 0 {
		return New("")
	}

	total := len(sep) * (len(parts) - 1)
	for _, part := range parts {
		total += len(part)
	}

	buf := make([]byte, 0, total)
	for i, part := range parts {
		if i > 0 {
			buf = append(buf, sep...)
		}
		buf = append(buf, part...)
	}
	return &DynString{buf: buf}
}

// String returns the content as a Go string.
func (d *DynString) String() string {
	return string(d.buf)
}

// Bytes returns a copy of the content bytes. The internal buffer is never
// exposed, so callers cannot break the exclusive-ownership invariant.
func (d *DynString) Bytes() []byte {
	if len(d.buf) == 0 {
		return []byte{}
	}
	out := make([]byte, len(d.buf))
	copy(out, d.buf)
	return out
}

// Len returns the number of content bytes.
func (d *DynString) Len() int {
	return len(d.buf)
}

// Clone returns an independently owned copy of the string.
func (d *DynString) Clone() *DynString {
	return NewFromBytes(d.buf)
}

// Concat appends suffix to the string, reallocating to an exact fit.
func (d *DynString) Concat(suffix string) {
	if len(suffix) == 0 {
		return
	}
	buf := make([]byte, len(d.buf)+len(suffix))
	copy(buf, d.buf)
	copy(buf[len(d.buf):], suffix)
	d.buf = buf
}

// Insert places fragment so that it begins at byte offset index.
// The index must satisfy 0 <= index <= Len(); a violation is reported as a
// DYNSTR_INDEX_OUT_OF_RANGE error and leaves the string unchanged.
func (d *DynString) Insert(index int, fragment string) error {
	if index < 0 || index > len(d.buf) {
		return dserrors.DynstrIndexOutOfRange("insert", index, len(d.buf))
	}
	d.insertAt(index, fragment)
	return nil
}

// insertAt performs the three-segment copy for a validated index.
func (d *DynString) insertAt(index int, fragment string) {
	if len(fragment) == 0 {
		return
	}
	buf := make([]byte, len(d.buf)+len(fragment))
	copy(buf, d.buf[:index])
	copy(buf[index:], fragment)
	copy(buf[index+len(fragment):], d.buf[index:])
	d.buf = buf
}

// Remove deletes the half-open byte range [start, end).
// The range must satisfy 0 <= start <= end <= Len(); a violation is
// reported as a DYNSTR_RANGE_INVALID error and leaves the string unchanged.
func (d *DynString) Remove(start, end int) error {
	if start < 0 || end < start || end > len(d.buf) {
		return dserrors.DynstrRangeInvalid("remove", start, end, len(d.buf))
	}
	d.removeRange(start, end)
	return nil
}

// removeRange deletes a validated range with an exact-fit reallocation.
func (d *DynString) removeRange(start, end int) {
	if start == end {
		return
	}
	buf := make([]byte, len(d.buf)-(end-start))
	copy(buf, d.buf[:start])
	copy(buf[start:], d.buf[end:])
	d.buf = buf
}

// Destroy releases the backing buffer, leaving an empty string. It is
// idempotent, and every operation on a destroyed value behaves as on an
// empty string; Go's garbage collector reclaims the released buffer.
func (d *DynString) Destroy() {
	d.buf = nil
}
