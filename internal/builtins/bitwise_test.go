package builtins

import (
	"testing"

	"github.com/mattholt/prefixlang/internal/value"
)

func TestBitwiseOperators(t *testing.T) {
	v, err := call(t, "BAND", value.Int(0b1100), value.Int(0b1010))
	if err != nil || v.I != 0b1000 {
		t.Errorf("BAND = (%+v, %v), want (0b1000, nil)", v, err)
	}
	v, err = call(t, "BOR", value.Int(0b1100), value.Int(0b0010))
	if err != nil || v.I != 0b1110 {
		t.Errorf("BOR = (%+v, %v), want (0b1110, nil)", v, err)
	}
	v, err = call(t, "BXOR", value.Int(0b1100), value.Int(0b1010))
	if err != nil || v.I != 0b0110 {
		t.Errorf("BXOR = (%+v, %v), want (0b0110, nil)", v, err)
	}
	v, err = call(t, "BNOT", value.Int(0))
	if err != nil || v.I != -1 {
		t.Errorf("BNOT(0) = (%+v, %v), want (-1, nil)", v, err)
	}
}

func TestShifts(t *testing.T) {
	v, err := call(t, "SHL", value.Int(1), value.Int(4))
	if err != nil || v.I != 16 {
		t.Errorf("SHL(1,4) = (%+v, %v), want (16, nil)", v, err)
	}
	v, err = call(t, "SHR", value.Int(16), value.Int(4))
	if err != nil || v.I != 1 {
		t.Errorf("SHR(16,4) = (%+v, %v), want (1, nil)", v, err)
	}
	_, err = call(t, "SHL", value.Int(1), value.Int(-1))
	if err == nil {
		t.Errorf("SHL(1,-1) error = nil, want an Arithmetic error")
	}
}

func TestBitwiseRequiresIntTag(t *testing.T) {
	_, err := call(t, "BAND", value.Flt(1), value.Int(1))
	if err == nil {
		t.Errorf("BAND(1.0,1) error = nil, want a Type error")
	}
}
