package builtins

import (
	"testing"

	"github.com/mattholt/prefixlang/internal/value"
)

func TestSumAndProd(t *testing.T) {
	v, err := call(t, "SUM", value.Int(1), value.Int(2), value.Int(3))
	if err != nil || v.I != 6 {
		t.Errorf("SUM(1,2,3) = (%+v, %v), want (6, nil)", v, err)
	}
	v, err = call(t, "PROD", value.Flt(2), value.Flt(3))
	if err != nil || v.F != 6 {
		t.Errorf("PROD(2.0,3.0) = (%+v, %v), want (6.0, nil)", v, err)
	}
}

func TestSumMismatchedTagsErrors(t *testing.T) {
	_, err := call(t, "SUM", value.Int(1), value.Flt(2))
	if err == nil {
		t.Errorf("SUM(1, 2.0) error = nil, want a Type error")
	}
}

func TestMaxMinNumeric(t *testing.T) {
	v, err := call(t, "MAX", value.Int(3), value.Int(7), value.Int(1))
	if err != nil || v.I != 7 {
		t.Errorf("MAX(3,7,1) = (%+v, %v), want (7, nil)", v, err)
	}
	v, err = call(t, "MIN", value.Int(3), value.Int(7), value.Int(1))
	if err != nil || v.I != 1 {
		t.Errorf("MIN(3,7,1) = (%+v, %v), want (1, nil)", v, err)
	}
}

func TestMaxMinByStringLength(t *testing.T) {
	v, err := call(t, "MAX", value.Str("a"), value.Str("abc"), value.Str("ab"))
	if err != nil || v.S != "abc" {
		t.Errorf("MAX of strings = (%+v, %v), want (\"abc\", nil)", v, err)
	}
}

func TestAnyAll(t *testing.T) {
	v, err := call(t, "ANY", value.Int(0), value.Int(0), value.Int(1))
	if err != nil || v.I != 1 {
		t.Errorf("ANY = (%+v, %v), want (1, nil)", v, err)
	}
	v, err = call(t, "ALL", value.Int(1), value.Int(0))
	if err != nil || v.I != 0 {
		t.Errorf("ALL = (%+v, %v), want (0, nil)", v, err)
	}
}
