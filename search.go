// File: search.go
// Title: DynString Query Operations
// Description: Implements the non-mutating query operations on DynString:
//              emptiness and whitespace classification, substring search,
//              and byte-exact equality.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial implementation of the query operations

package dynstr

import (
	"bytes"
)

// IsEmpty reports whether the string has length zero.
func (d *DynString) IsEmpty() bool {
	return len(d.buf) == 0
}

// IsWhitespace reports whether the string is non-empty and every byte is
// ASCII whitespace. An empty string is not considered all-whitespace.
func (d *DynString) IsWhitespace() bool {
	if len(d.buf) == 0 {
		return false
	}
	for _, b := range d.buf {
		if !isASCIISpace(b) {
			return false
		}
	}
	return true
}

// Contains reports whether needle occurs as a contiguous byte subsequence.
// An empty needle is always contained.
func (d *DynString) Contains(needle string) bool {
	return bytes.Contains(d.buf, []byte(needle))
}

// Equals reports byte-for-byte equality with other, including length.
func (d *DynString) Equals(other string) bool {
	return string(d.buf) == other
}

// NotFound is the sentinel returned by IndexOf for an absent needle.
const NotFound = -1

// IndexOf returns the zero-based byte offset of the first occurrence of
// needle, or NotFound. An empty needle matches at offset 0.
func (d *DynString) IndexOf(needle string) int {
	return bytes.Index(d.buf, []byte(needle))
}

// isASCIISpace classifies the six ASCII whitespace bytes: space, tab,
// newline, vertical tab, form feed and carriage return.
func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
