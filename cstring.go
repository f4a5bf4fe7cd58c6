package smppcodec

/*
cstring.go implements the CString primitive (spec §4.1, §4.3):
NUL-terminated strings in fixed or variable width, with an optional
hex/dec lexical filter applied to the non-terminating bytes.
*/

func decodeCString(d CStringDesc, input []byte) (Value, []byte, error) {
	if d.Fixed {
		return decodeCStringFixed(d, input)
	}
	return decodeCStringVariable(d, input)
}

func decodeCStringFixed(d CStringDesc, input []byte) (Value, []byte, error) {
	if len(input) >= 1 && input[0] == 0x00 {
		return BytesValue{0x00}, input[1:], nil
	}

	if d.Size >= 1 && len(input) >= d.Size {
		body := input[:d.Size-1]
		if allNonNUL(body) && input[d.Size-1] == 0x00 {
			if !formatOK(d.Format, body) {
				return nil, input, &TypeMismatch{Descriptor: d, Detail: append(append([]byte(nil), body...), 0x00)}
			}
			val := append(append([]byte(nil), body...), 0x00)
			return BytesValue(val), input[d.Size:], nil
		}
	}

	n := d.Size
	if len(input) < n {
		n = len(input)
	}
	return nil, input, &TypeMismatch{Descriptor: d, Detail: append([]byte(nil), input[:n]...)}
}

func decodeCStringVariable(d CStringDesc, input []byte) (Value, []byte, error) {
	scanLen := d.Size
	if len(input) < scanLen {
		scanLen = len(input)
	}

	for k := 0; k < scanLen; k++ {
		if input[k] == 0x00 {
			body := input[:k]
			if !formatOK(d.Format, body) {
				return nil, input, &TypeMismatch{Descriptor: d, Detail: append(append([]byte(nil), body...), 0x00)}
			}
			val := append(append([]byte(nil), body...), 0x00)
			return BytesValue(val), input[k+1:], nil
		}
	}

	return nil, input, &TypeMismatch{Descriptor: d, Detail: NotFound{Scanned: append([]byte(nil), input[:scanLen]...)}}
}

func encodeCString(d CStringDesc, v Value) ([]byte, error) {
	bv, ok := v.(BytesValue)
	if !ok || len(bv) == 0 || bv[len(bv)-1] != 0x00 {
		return nil, &TypeMismatch{Descriptor: d, Detail: valueBytes(v)}
	}
	body := bv[:len(bv)-1]

	if d.Fixed {
		if len(bv) != 1 && len(bv) != d.Size {
			return nil, &TypeMismatch{Descriptor: d, Detail: append([]byte(nil), bv...)}
		}
	} else if len(bv) > d.Size {
		return nil, &TypeMismatch{Descriptor: d, Detail: append([]byte(nil), bv...)}
	}

	if !formatOK(d.Format, body) {
		return nil, &TypeMismatch{Descriptor: d, Detail: append([]byte(nil), bv...)}
	}

	return append([]byte(nil), bv...), nil
}

func allNonNUL(b []byte) bool {
	for _, c := range b {
		if c == 0x00 {
			return false
		}
	}
	return true
}
