// File: doc.go
// Title: Package Documentation for dynstr
// Description: Package dynstr provides DynString, an owned growable byte
//              buffer with exact-fit allocation and a byte-oriented
//              operation set for concatenation, insertion, removal, search,
//              trimming, case folding, splitting and joining.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial package documentation

// Package dynstr provides a dynamic, owned string buffer for low-level code
// that would otherwise juggle fixed buffers by hand.
//
// The central type is DynString: a growable byte buffer with a tracked
// length and an exact-fit allocation policy, so the backing storage always
// holds precisely Len() bytes. All operations are byte-oriented; there is
// no Unicode awareness, no locale handling and no internal locking. A
// DynString has exactly one owner and must be confined to one goroutine or
// protected externally.
//
// Basic usage:
//
//	s := dynstr.New("Bonjour")
//	defer s.Destroy()
//
//	s.Concat(" Lucas")
//	if s.Contains("Lucas") {
//		idx := s.IndexOf("jour") // 3
//		_ = idx
//	}
//
// # Error policy
//
// Operations whose preconditions can be violated (Insert, Remove, Replace)
// return structured errors from core/errors instead of aborting the
// process; the buffer is never left partially mutated. Operations without
// preconditions have no error return. The destroyed state is simply the
// empty string, so use-after-Destroy cannot observe an invalid buffer and
// Destroy is idempotent.
//
// # Tokenizing split
//
// Split folds empty fragments: "a  b".Split(" ") is ["a", "b"], not
// ["a", "", "b"]. Join is the inverse only for inputs free of leading,
// trailing or consecutive separators; see Split for details.
package dynstr
