// Package smppcodec implements a typed binary codec for the SMPP
// (Short Message Peer-to-Peer) v5.0 base syntax.
//
// # Overview
//
// The codec converts between SMPP wire-format octet streams and
// structured Values, driven by a Descriptor that declares the shape
// and constraints of each field. The descriptor language is
// recursive: Composite and List nest, Union allows one-of decoding,
// and Constant anchors fixed framing octets (such as command IDs)
// that disambiguate Union branches.
//
// Every PDU in SMPP can be expressed as a tree of these descriptors,
// so this package does not ship a catalog of PDU layouts — that is a
// separate concern — but it supplies the primitives such a catalog is built
// from: fixed and variable-length strings with optional hex/decimal
// lexical constraints, length-prefixed lists, anonymous or named
// composites, and union disambiguation by deepest-successful-prefix.
//
// # Purity
//
// Decode and Encode are pure and reentrant: no shared mutable state,
// no I/O, no clocks. Descriptors are immutable and safe to share by
// reference across goroutines. The one package-level switch,
// QuirksMode, only affects Fit's treatment of List narrowing.
//
// # What this package does not do
//
// No streaming or incremental decode — each call consumes a whole
// prefix or fails without consuming anything. No schema evolution or
// versioning within a descriptor. No charset transcoding: strings are
// raw octets throughout.
package smppcodec
