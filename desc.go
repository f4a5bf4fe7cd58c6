package smppcodec

/*
desc.go contains the type descriptor sum type (spec §3.1): the
recursive, immutable data that drives both Decode and Encode. Every
dispatcher in this package (engine.go, fit.go, priority.go) switches
over these seven variants; adding an eighth means updating each of
them, since Go does not check type-switch exhaustiveness at compile
time.
*/

// Format names a lexical constraint layered on top of a string-shaped
// primitive (CString or OctetString). FormatFree imposes none.
type Format int

const (
	FormatFree Format = iota
	FormatHex
	FormatDec
)

func (f Format) String() string {
	switch f {
	case FormatHex:
		return "hex"
	case FormatDec:
		return "dec"
	default:
		return "free"
	}
}

// Descriptor is the sum type from spec §3.1. It is implemented by
// value types only — descriptors are built once and passed by value,
// never mutated in place.
type Descriptor interface {
	isDescriptor()
}

// ConstDesc anchors a fixed literal octet sequence, typically used to
// disambiguate Union branches by command-id or similar framing octets.
type ConstDesc struct {
	Literal []byte
}

func (ConstDesc) isDescriptor() {}

// IntDesc is a big-endian unsigned integer of Size octets. Min/Max
// bound the value at Encode time; Decode is bounded only by Size.
type IntDesc struct {
	Size     int
	Min, Max uint64
}

func (IntDesc) isDescriptor() {}

// CStringDesc is a NUL-terminated string (spec §3.1, §4.1, §4.3). In
// fixed mode the field occupies exactly 1 octet (lone NUL) or exactly
// Size octets; in variable mode, Size is the inclusive maximum scanned
// for the terminator.
type CStringDesc struct {
	Fixed  bool
	Size   int
	Format Format
}

func (CStringDesc) isDescriptor() {}

// OctetStringDesc is a raw, unterminated byte string. Fixed mode
// reads and writes exactly Size octets; variable mode is only
// meaningful inside a TLV whose framing has already bounded the slice.
type OctetStringDesc struct {
	Fixed  bool
	Size   int
	Format Format
}

func (OctetStringDesc) isDescriptor() {}

// ListDesc is a length-prefixed homogeneous sequence. The prefix width
// is ⌊Size/256⌋+1 octets; Size is the maximum element count.
type ListDesc struct {
	Inner Descriptor
	Size  int
}

func (ListDesc) isDescriptor() {}

// CompositeDesc is a heterogeneous, ordered concatenation of fields.
// An empty Name yields an anonymous tuple on decode; a non-empty Name
// tags the decoded value as a named record (the tag itself is never
// placed on the wire).
type CompositeDesc struct {
	Name   string
	Fields []Descriptor
}

func (CompositeDesc) isDescriptor() {}

// UnionDesc tries Branches in order and accepts the first that
// applies (spec §3.1, §4.2/§4.3 "first-match").
type UnionDesc struct {
	Branches []Descriptor
}

func (UnionDesc) isDescriptor() {}

// prefixWidth returns the big-endian length-prefix width for a List
// descriptor whose maximum element count is size (spec §3.1: "⌊size/256⌋+1").
func prefixWidth(size int) int {
	return size/256 + 1
}
