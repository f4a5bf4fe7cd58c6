package smppcodec

/*
err.go contains the single TypeMismatch error family (spec §7) plus the
small constructor helpers used to build and render it.
*/

import (
	"strings"
	"sync"
)

var (
	errorTLVTruncatedHeader error = mkerr("TLV: truncated tag/length header")
	errorTLVTruncatedValue  error = mkerr("TLV: declared length exceeds available input")
)

// NotFound is a TypeMismatch detail used when a variable-length
// C-octet-string scan runs off the end of its window without
// finding the terminating NUL (spec §4.1, scenario S3).
type NotFound struct {
	Scanned []byte
}

// TypeMismatch is the sole error family produced by Decode and Encode
// (spec §4.1, §7). Detail is either raw offending data ([]byte, uint64,
// string or NotFound) or a nested *TypeMismatch contributed by a
// Composite field, a List element or the chosen Union branch.
type TypeMismatch struct {
	Descriptor Descriptor
	Detail     any
}

func (e *TypeMismatch) Error() string {
	return mkerrf("type mismatch against ", describeDescriptor(e.Descriptor),
		": ", describeDetail(e.Detail)).Error()
}

// Unwrap exposes the nested TypeMismatch, if any, to errors.As/errors.Is.
func (e *TypeMismatch) Unwrap() error {
	if nested, ok := e.Detail.(*TypeMismatch); ok {
		return nested
	}
	return nil
}

func describeDescriptor(d Descriptor) string {
	switch d.(type) {
	case ConstDesc:
		return "Constant"
	case IntDesc:
		return "Integer"
	case CStringDesc:
		return "CString"
	case OctetStringDesc:
		return "OctetString"
	case ListDesc:
		return "List"
	case CompositeDesc:
		return "Composite"
	case UnionDesc:
		return "Union"
	default:
		return "<unknown descriptor>"
	}
}

func describeDetail(detail any) string {
	switch v := detail.(type) {
	case *TypeMismatch:
		return v.Error()
	case NotFound:
		return "not_found, scanned " + itoa(len(v.Scanned)) + " byte(s)"
	case []byte:
		return "bytes[" + itoa(len(v)) + "]"
	case uint64:
		return "integer " + itoa(int(v))
	case string:
		return v
	default:
		return "<no detail>"
	}
}

var errCache sync.Map

// mkerrf concatenates parts into a string error, cached by rendered
// message so repeated identical failures share one allocation.
func mkerrf(parts ...any) error {
	if len(parts) == 1 {
		if s, ok := parts[0].(string); ok {
			if v, hit := errCache.Load(s); hit {
				return v.(error)
			}
		}
	}

	var b strings.Builder
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(itoa(v))
		default:
			b.WriteString("<not supported>")
		}
	}
	msg := b.String()

	if v, hit := errCache.Load(msg); hit {
		return v.(error)
	}
	e := mkerr(msg)
	errCache.Store(msg, e)
	return e
}
