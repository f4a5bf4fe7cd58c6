package smppcodec

import "testing"

func TestTypeMismatch_Error(t *testing.T) {
	leaf := &TypeMismatch{Descriptor: IntDesc{Size: 1}, Detail: uint64(9)}
	wrapped := &TypeMismatch{Descriptor: CompositeDesc{Name: "pdu"}, Detail: leaf}

	if got := wrapped.Error(); got == "" {
		t.Fatalf("expected non-empty error string")
	}
	if !errorsIsChain(wrapped, leaf) {
		t.Fatalf("expected Unwrap to expose the nested TypeMismatch")
	}
}

func errorsIsChain(outer *TypeMismatch, inner *TypeMismatch) bool {
	return outer.Unwrap() == error(inner)
}

func TestMkerrf_Caches(t *testing.T) {
	a := mkerrf("same ", "message")
	b := mkerrf("same ", "message")
	if a != b {
		t.Fatalf("expected mkerrf to return the cached error instance")
	}
}

func TestDescribeDetail_Variants(t *testing.T) {
	cases := []any{
		NotFound{Scanned: []byte("AB")},
		[]byte{1, 2, 3},
		uint64(42),
		"raw",
		nil,
	}
	for _, c := range cases {
		if describeDetail(c) == "" {
			t.Fatalf("describeDetail(%#v) returned empty string", c)
		}
	}
}
