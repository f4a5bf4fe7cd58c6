package smppcodec

/*
prim_const.go implements the Constant primitive (spec §4.1, §4.3):
a fixed literal octet sequence, typically command-id framing that
disambiguates a Union branch.
*/

func decodeConstant(d ConstDesc, input []byte) (Value, []byte, error) {
	n := len(d.Literal)
	if len(input) >= n && bytesEqual(input[:n], d.Literal) {
		return BytesValue(append([]byte(nil), d.Literal...)), input[n:], nil
	}

	var detail []byte
	if len(input) >= n {
		// Same-length mismatch: ranks closer than a truncation (spec §4.1).
		detail = append([]byte(nil), input[:n]...)
	} else {
		detail = append([]byte(nil), input...)
	}
	return nil, input, &TypeMismatch{Descriptor: d, Detail: detail}
}

func encodeConstant(d ConstDesc, v Value) ([]byte, error) {
	bv, ok := v.(BytesValue)
	if !ok || !bytesEqual(bv, d.Literal) {
		return nil, &TypeMismatch{Descriptor: d, Detail: valueBytes(v)}
	}
	return append([]byte(nil), d.Literal...), nil
}

// valueBytes best-efforts a []byte rendering of v for error details.
func valueBytes(v Value) []byte {
	if bv, ok := v.(BytesValue); ok {
		return append([]byte(nil), bv...)
	}
	return nil
}
