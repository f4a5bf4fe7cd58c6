package smppcodec

import "testing"

// TestUnion_S6 implements spec §8.2 scenario S6: branch a consumes the
// command-id constant and fails deeper (on its Integer field); branch b
// fails on its own constant. The reported error must be branch a's.
func TestUnion_S6(t *testing.T) {
	branchA := CompositeDesc{
		Name: "a",
		Fields: []Descriptor{
			ConstDesc{Literal: []byte{0x01}},
			IntDesc{Size: 1, Min: 0, Max: 255},
		},
	}
	branchB := CompositeDesc{
		Name: "b",
		Fields: []Descriptor{
			ConstDesc{Literal: []byte{0x02}},
			IntDesc{Size: 1, Min: 0, Max: 255},
		},
	}
	d := UnionDesc{Branches: []Descriptor{branchA, branchB}}

	_, _, err := Decode([]byte{0x01}, d)
	if err == nil {
		t.Fatalf("expected total union failure")
	}
	outer := err.(*TypeMismatch)
	if _, ok := outer.Descriptor.(UnionDesc); !ok {
		t.Fatalf("expected outer descriptor to be the Union")
	}
	reported := outer.Detail.(*TypeMismatch)
	chosen, ok := reported.Descriptor.(CompositeDesc)
	if !ok || chosen.Name != "a" {
		t.Fatalf("expected reported error to come from branch a, got %#v", reported.Descriptor)
	}

	// Cross-check against the worked priorities in spec §8.2 S6.
	aPriority := Priority(reported)
	if aPriority != 7 {
		t.Fatalf("branch a priority = %d, want 7", aPriority)
	}
}

func TestUnion_FirstMatchWins(t *testing.T) {
	d := UnionDesc{
		Branches: []Descriptor{
			IntDesc{Size: 1, Min: 0, Max: 255},
			IntDesc{Size: 2, Min: 0, Max: 65535},
		},
	}
	val, rest, err := Decode([]byte{0x01, 0x02}, d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != IntValue(1) {
		t.Fatalf("expected first branch's value 1, got %v", val)
	}
	if !bytesEqual(rest, []byte{0x02}) {
		t.Fatalf("unexpected remainder: %v", rest)
	}
}

func TestUnion_EncodeFirstMatchWins(t *testing.T) {
	d := UnionDesc{
		Branches: []Descriptor{
			ConstDesc{Literal: []byte{0x01}},
			ConstDesc{Literal: []byte{0x01, 0x02}},
		},
	}
	out, err := Encode(BytesValue{0x01}, d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytesEqual(out, []byte{0x01}) {
		t.Fatalf("encode = %v, want [0x01]", out)
	}
}

func TestUnion_EncodeTotalFailure(t *testing.T) {
	d := UnionDesc{Branches: []Descriptor{ConstDesc{Literal: []byte{0x01}}}}
	if _, err := Encode(BytesValue{0x02}, d); err == nil {
		t.Fatalf("expected encode failure when no branch matches")
	}
}

func TestUnion_EmptyBranches(t *testing.T) {
	d := UnionDesc{}
	if _, _, err := Decode([]byte{0x01}, d); err == nil {
		t.Fatalf("expected decode failure for a union with no branches")
	}
}
