package smppcodec

/*
value.go contains the value sum type (spec §3.2), the parallel shape
to Descriptor: integers, byte strings, ordered element sequences and
tagged/untagged tuples. The codec produces these on Decode and consumes
them on Encode; it never interprets character encoding within them.
*/

// Value is implemented by IntValue, BytesValue, ListValue and
// TupleValue — the four shapes spec §3.2 names.
type Value interface {
	isValue()
}

// IntValue holds a decoded Integer primitive.
type IntValue uint64

func (IntValue) isValue() {}

// BytesValue holds a decoded CString, OctetString or Constant
// primitive. For CString, the trailing NUL is included (spec §3.1).
type BytesValue []byte

func (BytesValue) isValue() {}

// ListValue holds the decoded elements of a List descriptor, in order.
type ListValue []Value

func (ListValue) isValue() {}

// TupleValue holds the decoded fields of a Composite descriptor, in
// declaration order. Name mirrors CompositeDesc.Name: empty for an
// anonymous tuple, non-empty for a tagged record.
type TupleValue struct {
	Name   string
	Fields []Value
}

func (TupleValue) isValue() {}

// Eq reports structural equality between two values without relying on
// Go's == (which rejects slice-bearing types). The codec itself does not
// call it; Constant encode compares bytes with bytesEqual.
func Eq(a, b Value) bool {
	switch av := a.(type) {
	case IntValue:
		bv, ok := b.(IntValue)
		return ok && av == bv
	case BytesValue:
		bv, ok := b.(BytesValue)
		return ok && bytesEqual(av, bv)
	case ListValue:
		bv, ok := b.(ListValue)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Eq(av[i], bv[i]) {
				return false
			}
		}
		return true
	case TupleValue:
		bv, ok := b.(TupleValue)
		if !ok || av.Name != bv.Name || len(av.Fields) != len(bv.Fields) {
			return false
		}
		for i := range av.Fields {
			if !Eq(av.Fields[i], bv.Fields[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
