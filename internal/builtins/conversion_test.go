package builtins

import (
	"testing"

	"github.com/mattholt/prefixlang/internal/value"
)

func TestIntConv(t *testing.T) {
	v, err := call(t, "INT", value.Flt(3.9))
	if err != nil || v.I != 3 {
		t.Errorf("INT(3.9) = (%+v, %v), want (3, nil)", v, err)
	}
	v, err = call(t, "INT", value.Str(""))
	if err != nil || v.I != 0 {
		t.Errorf("INT(\"\") = (%+v, %v), want (0, nil)", v, err)
	}
	v, err = call(t, "INT", value.Str("not binary"))
	if err != nil || v.I != 1 {
		t.Errorf("INT(\"not binary\") = (%+v, %v), want (1, nil)", v, err)
	}
}

func TestFltConv(t *testing.T) {
	v, err := call(t, "FLT", value.Int(4))
	if err != nil || v.F != 4 {
		t.Errorf("FLT(4) = (%+v, %v), want (4.0, nil)", v, err)
	}
}

func TestStrConvOfInt(t *testing.T) {
	v, err := call(t, "STR", value.Int(5))
	if err != nil || v.Tag != value.TagStr {
		t.Fatalf("STR(5) = (%+v, %v), want a Str value", v, err)
	}
}

func TestIsTagPredicates(t *testing.T) {
	v, err := call(t, "ISINT", value.Int(1))
	if err != nil || v.I != 1 {
		t.Errorf("ISINT(1) = (%+v, %v), want (1, nil)", v, err)
	}
	v, err = call(t, "ISSTR", value.Int(1))
	if err != nil || v.I != 0 {
		t.Errorf("ISSTR(1) = (%+v, %v), want (0, nil)", v, err)
	}
}

func TestTypeOp(t *testing.T) {
	v, err := call(t, "TYPE", value.Flt(1))
	if err != nil || v.S != "FLOAT" {
		t.Errorf("TYPE(1.0) = (%+v, %v), want (\"FLOAT\", nil)", v, err)
	}
}
