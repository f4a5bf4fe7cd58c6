package smppcodec

import "testing"

func TestPrefixWidth(t *testing.T) {
	cases := []struct {
		size int
		want int
	}{
		{0, 1},
		{255, 1},
		{256, 2},
		{300, 2},
		{65535, 256},
	}
	for _, c := range cases {
		if got := prefixWidth(c.size); got != c.want {
			t.Fatalf("prefixWidth(%d) = %d, want %d", c.size, got, c.want)
		}
	}
}

func TestFormat_String(t *testing.T) {
	cases := []struct {
		f    Format
		want string
	}{
		{FormatFree, "free"},
		{FormatHex, "hex"},
		{FormatDec, "dec"},
	}
	for _, c := range cases {
		if got := c.f.String(); got != c.want {
			t.Fatalf("Format(%d).String() = %q, want %q", c.f, got, c.want)
		}
	}
}

// TestDescriptorVariants_Exhaustive is a compile-time/coverage check
// that every variant still implements Descriptor.
func TestDescriptorVariants_Exhaustive(t *testing.T) {
	variants := []Descriptor{
		ConstDesc{Literal: []byte{0x01}},
		IntDesc{Size: 1},
		CStringDesc{Fixed: true, Size: 1},
		OctetStringDesc{Fixed: true, Size: 1},
		ListDesc{Inner: IntDesc{Size: 1}, Size: 1},
		CompositeDesc{Name: "x", Fields: []Descriptor{IntDesc{Size: 1}}},
		UnionDesc{Branches: []Descriptor{IntDesc{Size: 1}}},
	}
	for _, v := range variants {
		if describeDescriptor(v) == "<unknown descriptor>" {
			t.Fatalf("descriptor %#v not recognized by describeDescriptor", v)
		}
	}
}
