package smppcodec

/*
common.go contains small helpers and stdlib aliases shared by the
descriptor model, the primitive codecs and the recursive engine.
*/

import (
	"errors"
	"strconv"

	"golang.org/x/exp/constraints"
)

/*
official import aliases.
*/
var (
	mkerr func(string) error = errors.New
	itoa  func(int) string   = strconv.Itoa
)

// isHexDigit reports whether b is an ASCII hex digit (0-9, A-F, a-f).
//
// Strict per SMPP v5.0. A prior implementation of this codec also
// accepted 0x2F ('/') due to an off-by-one in its range check; that
// byte is rejected here — see TestHexDigit_RejectsSlash.
func isHexDigit(b byte) bool {
	return ('0' <= b && b <= '9') || ('A' <= b && b <= 'F') || ('a' <= b && b <= 'f')
}

// isDecDigit reports whether b is an ASCII decimal digit (0-9).
func isDecDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// formatOK reports whether every byte of s satisfies the lexical
// constraint named by f. An empty byte slice always satisfies it —
// this is what lets a lone trailing NUL through the filter.
func formatOK(f Format, s []byte) bool {
	switch f {
	case FormatHex:
		for _, b := range s {
			if !isHexDigit(b) {
				return false
			}
		}
	case FormatDec:
		for _, b := range s {
			if !isDecDigit(b) {
				return false
			}
		}
	}
	return true
}

// clamp narrows v into [lo, hi].
func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
