// File: transform.go
// Title: DynString In-Place Transforms
// Description: Implements the in-place transformation operations on
//              DynString: ASCII case folding, whitespace trimming and
//              repeated substring replacement.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial implementation of the transforms

package dynstr

import (
	"bytes"

	dserrors "github.com/msto63/dynstr/core/errors"
)

// ToLower folds ASCII uppercase letters to lowercase in place. Non-ASCII
// bytes pass through unchanged and no reallocation occurs.
func (d *DynString) ToLower() {
	for i, b := range d.buf {
		if b >= 'A' && b <= 'Z' {
			d.buf[i] = b + ('a' - 'A')
		}
	}
}

// ToUpper folds ASCII lowercase letters to uppercase in place. Non-ASCII
// bytes pass through unchanged and no reallocation occurs.
func (d *DynString) ToUpper() {
	for i, b := range d.buf {
		if b >= 'a' && b <= 'z' {
			d.buf[i] = b - ('a' - 'A')
		}
	}
}

// TrimStart removes the maximal run of ASCII whitespace from the front,
// shrinking the buffer to an exact fit.
func (d *DynString) TrimStart() {
	start := 0
	for start < len(d.buf) && isASCIISpace(d.buf[start]) {
		start++
	}
	if start == 0 {
		return
	}
	d.removeRange(0, start)
}

// TrimEnd removes the maximal run of ASCII whitespace from the back,
// shrinking the buffer to an exact fit.
func (d *DynString) TrimEnd() {
	end := len(d.buf)
	for end > 0 && isASCIISpace(d.buf[end-1]) {
		end--
	}
	if end == len(d.buf) {
		return
	}
	d.removeRange(end, len(d.buf))
}

// Trim removes leading and trailing ASCII whitespace. The end is trimmed
// first so the start trim does not shift bytes that are about to go anyway.
func (d *DynString) Trim() {
	d.TrimEnd()
	d.TrimStart()
}

// Replace substitutes every non-overlapping occurrence of target with
// replacement, scanning left to right. After each substitution the scan
// resumes immediately after the inserted replacement, so replacement text
// is never re-scanned and a replacement containing the target does not
// recurse. An empty target is rejected with a DYNSTR_EMPTY_TARGET error;
// an absent target leaves the string unchanged.
func (d *DynString) Replace(target, replacement string) error {
	if len(target) == 0 {
		return dserrors.DynstrEmptyTarget("replace")
	}

	offset := 0
	for offset <= len(d.buf)-len(target) {
		local := bytes.Index(d.buf[offset:], []byte(target))
		if local == NotFound {
			break
		}
		index := offset + local

		d.removeRange(index, index+len(target))
		d.insertAt(index, replacement)

		offset = index + len(replacement)
	}
	return nil
}
