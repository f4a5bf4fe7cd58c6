package smppcodec

/*
union.go implements the Union primitive (spec §3.1, §4.2, §4.3):
first-match decode/encode over an ordered set of branches, each tried
on the original input. On total failure, the highest-priority branch
error is reported (spec §4.4) rather than simply the last one tried.

Because every branch is retried on the same input, worst case cost is
O(branches × per-branch cost). That is acceptable for SMPP's small
unions (spec §9) and no memoization is added.
*/

func decodeUnion(d UnionDesc, input []byte) (Value, []byte, error) {
	var best *TypeMismatch
	for _, branch := range d.Branches {
		val, tail, err := Decode(input, branch)
		if err == nil {
			return val, tail, nil
		}
		tm := err.(*TypeMismatch)
		if best == nil || Priority(tm) > Priority(best) {
			best = tm
		}
	}
	if best == nil {
		return nil, input, &TypeMismatch{Descriptor: d, Detail: append([]byte(nil), input...)}
	}
	return nil, input, &TypeMismatch{Descriptor: d, Detail: best}
}

func encodeUnion(d UnionDesc, v Value) ([]byte, error) {
	var best *TypeMismatch
	for _, branch := range d.Branches {
		out, err := Encode(v, branch)
		if err == nil {
			return out, nil
		}
		tm := err.(*TypeMismatch)
		if best == nil || Priority(tm) > Priority(best) {
			best = tm
		}
	}
	if best == nil {
		return nil, &TypeMismatch{Descriptor: d, Detail: valueBytes(v)}
	}
	return nil, &TypeMismatch{Descriptor: d, Detail: best}
}
