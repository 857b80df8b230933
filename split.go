// File: split.go
// Title: DynString Decomposition
// Description: Implements Split, the tokenizing decomposition of a
//              DynString. Split folds empty fragments: consecutive, leading
//              and trailing separators yield no empty strings, mirroring
//              classic tokenizer behavior rather than naive delimiter
//              splitting.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial implementation of split

package dynstr

import (
	"bytes"
)

// Split cuts the content on every occurrence of the full sep byte sequence
// and returns the non-empty fragments in order. Empty fragments are folded:
// leading, trailing and consecutive separators contribute nothing, so the
// result never contains an empty string. An empty separator yields the
// whole content as a single fragment (or no fragments for an empty string).
//
// The fragments are independently owned copies; the receiver is unmodified.
// Because of the folding, Join(Split(s, sep), sep) reproduces s only when s
// has no leading, trailing or consecutive separators.
func (d *DynString) Split(sep string) []string {
	fragments := []string{}

	if len(sep) == 0 {
		if len(d.buf) > 0 {
			fragments = append(fragments, string(d.buf))
		}
		return fragments
	}

	rest := d.buf
	for {
		idx := bytes.Index(rest, []byte(sep))
		if idx == NotFound {
			if len(rest) > 0 {
				fragments = append(fragments, string(rest))
			}
			return fragments
		}
		if idx > 0 {
			fragments = append(fragments, string(rest[:idx]))
		}
		rest = rest[idx+len(sep):]
	}
}
