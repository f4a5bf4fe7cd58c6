package smppcodec

/*
octetstring.go implements the OctetString primitive (spec §4.1, §4.3):
raw, unterminated byte strings. Fixed mode always reads/writes exactly
Size octets (the "or exactly 0" wording in spec §3.1/§4.3 collapses to
this when Size==0 — see DESIGN.md for why decode must be deterministic
to satisfy the round-trip invariant, spec §3.3 invariant 2). Variable
mode is TLV-only: it consumes min(Size, remaining) and is explicitly
excluded from the round-trip invariant.
*/

func decodeOctetString(d OctetStringDesc, input []byte) (Value, []byte, error) {
	if d.Fixed {
		if len(input) < d.Size {
			return nil, input, &TypeMismatch{Descriptor: d, Detail: append([]byte(nil), input...)}
		}
		body := input[:d.Size]
		if !formatOK(d.Format, body) {
			return nil, input, &TypeMismatch{Descriptor: d, Detail: append([]byte(nil), body...)}
		}
		return BytesValue(append([]byte(nil), body...)), input[d.Size:], nil
	}

	n := d.Size
	if len(input) < n {
		n = len(input)
	}
	body := input[:n]
	if !formatOK(d.Format, body) {
		return nil, input, &TypeMismatch{Descriptor: d, Detail: append([]byte(nil), body...)}
	}
	return BytesValue(append([]byte(nil), body...)), input[n:], nil
}

func encodeOctetString(d OctetStringDesc, v Value) ([]byte, error) {
	bv, ok := v.(BytesValue)
	if !ok {
		return nil, &TypeMismatch{Descriptor: d, Detail: valueBytes(v)}
	}

	if d.Fixed {
		if len(bv) != d.Size {
			return nil, &TypeMismatch{Descriptor: d, Detail: append([]byte(nil), bv...)}
		}
	} else if len(bv) > d.Size {
		return nil, &TypeMismatch{Descriptor: d, Detail: append([]byte(nil), bv...)}
	}

	if !formatOK(d.Format, bv) {
		return nil, &TypeMismatch{Descriptor: d, Detail: append([]byte(nil), bv...)}
	}

	return append([]byte(nil), bv...), nil
}
