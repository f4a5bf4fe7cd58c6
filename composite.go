package smppcodec

/*
composite.go implements the Composite primitive (spec §3.1, §4.2,
§4.3): a heterogeneous, ordered concatenation of fields. Field order
and count are fixed by the descriptor and never vary (spec §3.3
invariant 3).
*/

func decodeComposite(d CompositeDesc, input []byte) (Value, []byte, error) {
	fields := make([]Value, 0, len(d.Fields))
	rest := input
	for _, fd := range d.Fields {
		val, tail, err := Decode(rest, fd)
		if err != nil {
			return nil, input, &TypeMismatch{Descriptor: d, Detail: err.(*TypeMismatch)}
		}
		fields = append(fields, val)
		rest = tail
	}
	return TupleValue{Name: d.Name, Fields: fields}, rest, nil
}

func encodeComposite(d CompositeDesc, v Value) ([]byte, error) {
	tv, ok := v.(TupleValue)
	if !ok || tv.Name != d.Name || len(tv.Fields) != len(d.Fields) {
		return nil, &TypeMismatch{Descriptor: d, Detail: valueBytes(v)}
	}

	var out []byte
	for i, fd := range d.Fields {
		b, err := Encode(tv.Fields[i], fd)
		if err != nil {
			return nil, &TypeMismatch{Descriptor: d, Detail: err.(*TypeMismatch)}
		}
		out = append(out, b...)
	}
	return out, nil
}
