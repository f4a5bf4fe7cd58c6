package smppcodec

/*
engine.go is the recursive decode/encode dispatcher (spec §4.2, §4.3,
§6.1): the single point that switches over the seven Descriptor
variants. The engine is purely functional — no mutable state, no I/O,
safe to call concurrently from many goroutines against shared,
immutable descriptors (spec §5).
*/

// Decode consumes a prefix of input according to d and returns the
// decoded value alongside the unconsumed remainder. On failure the
// returned remainder equals input unchanged (spec §3.3 invariant 1).
func Decode(input []byte, d Descriptor) (Value, []byte, error) {
	switch desc := d.(type) {
	case ConstDesc:
		return decodeConstant(desc, input)
	case IntDesc:
		return decodeInteger(desc, input)
	case CStringDesc:
		return decodeCString(desc, input)
	case OctetStringDesc:
		return decodeOctetString(desc, input)
	case ListDesc:
		return decodeList(desc, input)
	case CompositeDesc:
		return decodeComposite(desc, input)
	case UnionDesc:
		return decodeUnion(desc, input)
	default:
		return nil, input, &TypeMismatch{Descriptor: d, Detail: append([]byte(nil), input...)}
	}
}

// Encode renders v as wire octets according to d.
func Encode(v Value, d Descriptor) ([]byte, error) {
	switch desc := d.(type) {
	case ConstDesc:
		return encodeConstant(desc, v)
	case IntDesc:
		return encodeInteger(desc, v)
	case CStringDesc:
		return encodeCString(desc, v)
	case OctetStringDesc:
		return encodeOctetString(desc, v)
	case ListDesc:
		return encodeList(desc, v)
	case CompositeDesc:
		return encodeComposite(desc, v)
	case UnionDesc:
		return encodeUnion(desc, v)
	default:
		return nil, &TypeMismatch{Descriptor: d, Detail: valueBytes(v)}
	}
}
