package builtins

import (
	"testing"

	"github.com/mattholt/prefixlang/internal/value"
)

func TestLogicalOperators(t *testing.T) {
	cases := []struct {
		name string
		a, b int64
		want int64
	}{
		{"AND", 1, 1, 1},
		{"AND", 1, 0, 0},
		{"OR", 0, 0, 0},
		{"OR", 0, 1, 1},
		{"XOR", 1, 1, 0},
		{"XOR", 1, 0, 1},
	}
	for _, c := range cases {
		v, err := call(t, c.name, value.Int(c.a), value.Int(c.b))
		if err != nil || v.I != c.want {
			t.Errorf("%s(%d,%d) = (%+v, %v), want (%d, nil)", c.name, c.a, c.b, v, err, c.want)
		}
	}
}

func TestNotAndBool(t *testing.T) {
	v, err := call(t, "NOT", value.Int(0))
	if err != nil || v.I != 1 {
		t.Errorf("NOT(0) = (%+v, %v), want (1, nil)", v, err)
	}
	v, err = call(t, "BOOL", value.Str(""))
	if err != nil || v.I != 0 {
		t.Errorf("BOOL(\"\") = (%+v, %v), want (0, nil)", v, err)
	}
	v, err = call(t, "BOOL", value.Str("x"))
	if err != nil || v.I != 1 {
		t.Errorf("BOOL(\"x\") = (%+v, %v), want (1, nil)", v, err)
	}
}
