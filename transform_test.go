// File: transform_test.go
// Title: Unit Tests for DynString Transforms
// Description: Unit tests for the in-place transforms: ASCII case folding,
//              whitespace trimming and repeated substring replacement,
//              including the non-recursive replacement boundary cases.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial test implementation

package dynstr

import (
	"testing"

	dserror "github.com/msto63/dynstr/core/error"
	dserrors "github.com/msto63/dynstr/core/errors"
)

func TestToLower(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"mixed case", "Hello World", "hello world"},
		{"already lower", "hello", "hello"},
		{"all upper", "HELLO", "hello"},
		{"digits and punctuation", "A1-B2!", "a1-b2!"},
		{"non-ascii untouched", "ÜBER Maße", "Über maße"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(tt.input)
			d.ToLower()
			if got := d.String(); got != tt.expected {
				t.Errorf("ToLower(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestToUpper(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"mixed case", "Hello World", "HELLO WORLD"},
		{"already upper", "HELLO", "HELLO"},
		{"all lower", "hello", "HELLO"},
		{"digits and punctuation", "a1-b2!", "A1-B2!"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(tt.input)
			d.ToUpper()
			if got := d.String(); got != tt.expected {
				t.Errorf("ToUpper(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTrimStart(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"leading spaces", "   abc", "abc"},
		{"mixed leading whitespace", "\t\n abc", "abc"},
		{"no leading whitespace", "abc  ", "abc  "},
		{"all whitespace", "   ", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(tt.input)
			d.TrimStart()
			if got := d.String(); got != tt.expected {
				t.Errorf("TrimStart(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTrimEnd(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"trailing spaces", "abc   ", "abc"},
		{"mixed trailing whitespace", "abc \t\n", "abc"},
		{"no trailing whitespace", "  abc", "  abc"},
		{"all whitespace", "   ", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(tt.input)
			d.TrimEnd()
			if got := d.String(); got != tt.expected {
				t.Errorf("TrimEnd(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"both sides", "  abc  ", "abc"},
		{"inner whitespace kept", " a b ", "a b"},
		{"only leading", "  abc", "abc"},
		{"only trailing", "abc  ", "abc"},
		{"all whitespace", " \t\n ", ""},
		{"nothing to trim", "abc", "abc"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(tt.input)
			d.Trim()
			if got := d.String(); got != tt.expected {
				t.Errorf("Trim(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// Trimming an already trimmed string must leave it byte-for-byte identical.
func TestTrimIdempotent(t *testing.T) {
	inputs := []string{"", "   ", "abc", "  abc  ", " a b c ", "\t x \n"}

	for _, input := range inputs {
		d := New(input)
		d.Trim()
		once := d.String()
		d.Trim()
		if got := d.String(); got != once {
			t.Errorf("Trim not idempotent for %q: %q then %q", input, once, got)
		}
	}
}

func TestReplace(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		target      string
		replacement string
		expected    string
	}{
		{"single occurrence", "hello world", "world", "there", "hello there"},
		{"multiple occurrences", "one, two, three", ", ", " & ", "one & two & three"},
		{"no occurrence", "hello", "xyz", "abc", "hello"},
		{"empty replacement", "banana", "an", "", "ba"},
		{"replacement shorter than target", "hello world", "world", "w", "hello w"},
		{"replacement longer than target", "a-b", "-", "---", "a---b"},
		{"whole content", "abc", "abc", "xyz", "xyz"},
		{"adjacent matches", "aaaa", "aa", "b", "bb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(tt.input)
			if err := d.Replace(tt.target, tt.replacement); err != nil {
				t.Fatalf("Replace(%q, %q) returned error: %v", tt.target, tt.replacement, err)
			}
			if got := d.String(); got != tt.expected {
				t.Errorf("Replace(%q, %q) on %q = %q; want %q",
					tt.target, tt.replacement, tt.input, got, tt.expected)
			}
		})
	}
}

// A replacement containing the target must not be replaced again: the scan
// resumes after the inserted text.
func TestReplaceNonRecursive(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		target      string
		replacement string
		expected    string
	}{
		{"replacement contains target", "aaa", "a", "aa", "aaaaaa"},
		{"replacement equals target", "abab", "ab", "ab", "abab"},
		{"target embedded in replacement", "x", "x", "yxy", "yxy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(tt.input)
			if err := d.Replace(tt.target, tt.replacement); err != nil {
				t.Fatalf("Replace returned error: %v", err)
			}
			if got := d.String(); got != tt.expected {
				t.Errorf("Replace(%q, %q) on %q = %q; want %q",
					tt.target, tt.replacement, tt.input, got, tt.expected)
			}
		})
	}
}

func TestReplaceEmptyTarget(t *testing.T) {
	d := New("abc")
	err := d.Replace("", "x")
	if err == nil {
		t.Fatal("Replace with empty target expected error, got nil")
	}
	if !dserror.HasCode(err, dserror.Code(dserrors.CodeDynstrEmptyTarget)) {
		t.Errorf("error code = %v; want %s", dserror.GetCode(err), dserrors.CodeDynstrEmptyTarget)
	}
	if got := d.String(); got != "abc" {
		t.Errorf("buffer changed after rejected Replace: %q", got)
	}
}
