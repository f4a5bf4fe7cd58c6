package smppcodec

/*
tlv.go implements SMPP's TLV extension-parameter framing (GLOSSARY:
"a generic extension slot ... whose payload is parsed with a
fit-refined descriptor"). Unlike ASN.1's class/tag/length framing,
an SMPP TLV is flat: a 16-bit tag, a 16-bit length, and that many
value octets (SMPP v5.0 §3.3).
*/

import "encoding/binary"

// TLV is a decoded SMPP tag-length-value parameter. Value holds
// whatever Decode produced when the generic descriptor, narrowed by
// Fit to the declared length, was applied to the value octets.
type TLV struct {
	Tag   uint16
	Value Value
}

// DecodeTLV reads one TLV from the front of input. descriptor is the
// generic shape of the parameter's payload (typically a variable-width
// OctetStringDesc or CStringDesc); it is narrowed via Fit to the
// declared length before being handed to Decode.
func DecodeTLV(input []byte, descriptor Descriptor) (TLV, []byte, error) {
	if len(input) < 4 {
		return TLV{}, input, errorTLVTruncatedHeader
	}

	tag := binary.BigEndian.Uint16(input[0:2])
	length := int(binary.BigEndian.Uint16(input[2:4]))
	body := input[4:]

	if len(body) < length {
		return TLV{}, input, errorTLVTruncatedValue
	}

	narrowed := Fit(descriptor, length)
	val, _, err := Decode(body[:length], narrowed)
	if err != nil {
		return TLV{}, input, err
	}

	return TLV{Tag: tag, Value: val}, body[length:], nil
}

// EncodeTLV renders t as wire octets using descriptor for the value
// portion. descriptor should already describe the parameter's maximum
// payload shape (e.g. a variable-width OctetStringDesc); EncodeTLV
// does not call Fit since the declared length is derived from the
// encoded value itself, not known in advance.
func EncodeTLV(t TLV, descriptor Descriptor) ([]byte, error) {
	valueBytes, err := Encode(t.Value, descriptor)
	if err != nil {
		return nil, err
	}
	if len(valueBytes) > 0xFFFF {
		return nil, errorTLVTruncatedValue
	}

	out := make([]byte, 4+len(valueBytes))
	binary.BigEndian.PutUint16(out[0:2], t.Tag)
	binary.BigEndian.PutUint16(out[2:4], uint16(len(valueBytes)))
	copy(out[4:], valueBytes)
	return out, nil
}
