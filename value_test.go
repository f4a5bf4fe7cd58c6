package smppcodec

import "testing"

func TestEq(t *testing.T) {
	cases := []struct {
		name string
		a, b Value
		want bool
	}{
		{"equal ints", IntValue(5), IntValue(5), true},
		{"unequal ints", IntValue(5), IntValue(6), false},
		{"equal bytes", BytesValue("ab"), BytesValue("ab"), true},
		{"unequal bytes", BytesValue("ab"), BytesValue("ac"), false},
		{"equal lists", ListValue{IntValue(1), IntValue(2)}, ListValue{IntValue(1), IntValue(2)}, true},
		{"unequal list length", ListValue{IntValue(1)}, ListValue{IntValue(1), IntValue(2)}, false},
		{
			"equal tuples",
			TupleValue{Name: "pdu", Fields: []Value{IntValue(1)}},
			TupleValue{Name: "pdu", Fields: []Value{IntValue(1)}},
			true,
		},
		{
			"mismatched tuple name",
			TupleValue{Name: "a", Fields: []Value{IntValue(1)}},
			TupleValue{Name: "b", Fields: []Value{IntValue(1)}},
			false,
		},
		{"mismatched kinds", IntValue(1), BytesValue{1}, false},
	}

	for _, c := range cases {
		if got := Eq(c.a, c.b); got != c.want {
			t.Fatalf("%s: Eq() = %v, want %v", c.name, got, c.want)
		}
	}
}
