package builtins

import (
	"testing"

	"github.com/mattholt/prefixlang/internal/value"
)

func TestCeilDiv(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{7, 2, 4},
		{-7, 2, -3},
		{6, 2, 3},
		{-6, 2, -3},
	}
	for _, c := range cases {
		v, err := call(t, "CDIV", value.Int(c.a), value.Int(c.b))
		if err != nil || v.I != c.want {
			t.Errorf("CDIV(%d,%d) = (%+v, %v), want (%d, nil)", c.a, c.b, v, err, c.want)
		}
	}
}

func TestCeilDivRejectsFloat(t *testing.T) {
	_, err := call(t, "CDIV", value.Flt(1), value.Int(2))
	if err == nil {
		t.Errorf("CDIV(1.0, 2) error = nil, want a Type error")
	}
}

func TestCeilDivByZero(t *testing.T) {
	_, err := call(t, "CDIV", value.Int(1), value.Int(0))
	if err == nil {
		t.Errorf("CDIV(1, 0) error = nil, want an Arithmetic error")
	}
}
