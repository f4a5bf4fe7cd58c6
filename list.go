package smppcodec

/*
list.go implements the List primitive (spec §3.1, §4.2, §4.3):
a length-prefixed homogeneous sequence. The prefix width is
⌊Size/256⌋+1 big-endian octets; Size bounds the element count.
*/

func decodeList(d ListDesc, input []byte) (Value, []byte, error) {
	w := prefixWidth(d.Size)
	if len(input) < w {
		return nil, input, &TypeMismatch{Descriptor: d, Detail: append([]byte(nil), input...)}
	}

	var n int
	for i := 0; i < w; i++ {
		n = n<<8 | int(input[i])
	}
	rest := input[w:]

	if n > d.Size {
		return nil, input, &TypeMismatch{Descriptor: d, Detail: uint64(n)}
	}

	elems := make(ListValue, 0, n)
	for i := 0; i < n; i++ {
		val, tail, err := Decode(rest, d.Inner)
		if err != nil {
			return nil, input, &TypeMismatch{Descriptor: d, Detail: err.(*TypeMismatch)}
		}
		elems = append(elems, val)
		rest = tail
	}

	return elems, rest, nil
}

func encodeList(d ListDesc, v Value) ([]byte, error) {
	lv, ok := v.(ListValue)
	if !ok {
		return nil, &TypeMismatch{Descriptor: d, Detail: valueBytes(v)}
	}
	if len(lv) > d.Size {
		return nil, &TypeMismatch{Descriptor: d, Detail: uint64(len(lv))}
	}

	w := prefixWidth(d.Size)
	prefix := make([]byte, w)
	n := len(lv)
	for i := w - 1; i >= 0; i-- {
		prefix[i] = byte(n)
		n >>= 8
	}

	out := prefix
	for _, elem := range lv {
		b, err := Encode(elem, d.Inner)
		if err != nil {
			return nil, &TypeMismatch{Descriptor: d, Detail: err.(*TypeMismatch)}
		}
		out = append(out, b...)
	}
	return out, nil
}
