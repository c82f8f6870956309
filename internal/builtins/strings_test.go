package builtins

import (
	"testing"

	"github.com/mattholt/prefixlang/internal/value"
)

func TestSlen(t *testing.T) {
	v, err := call(t, "SLEN", value.Str("hello"))
	if err != nil || v.I != 5 {
		t.Errorf("SLEN(\"hello\") = (%+v, %v), want (5, nil)", v, err)
	}
}

func TestUpperLowerAreASCIIOnly(t *testing.T) {
	v, err := call(t, "UPPER", value.Str("café"))
	if err != nil || v.S != "CAFé" {
		t.Errorf("UPPER(\"café\") = (%+v, %v), want (\"CAFé\", nil)", v, err)
	}
	v, err = call(t, "LOWER", value.Str("HELLO"))
	if err != nil || v.S != "hello" {
		t.Errorf("LOWER(\"HELLO\") = (%+v, %v), want (\"hello\", nil)", v, err)
	}
}

func TestSliceBasic(t *testing.T) {
	v, err := call(t, "SLICE", value.Str("hello"), value.Int(2), value.Int(4))
	if err != nil || v.S != "el" {
		t.Errorf("SLICE(\"hello\",2,4) = (%+v, %v), want (\"el\", nil)", v, err)
	}
}

func TestSliceNegativeIndices(t *testing.T) {
	v, err := call(t, "SLICE", value.Str("hello"), value.Int(-2), value.Int(6))
	if err != nil || v.S != "lo" {
		t.Errorf("SLICE(\"hello\",-2,6) = (%+v, %v), want (\"lo\", nil)", v, err)
	}
}

func TestSliceStartAfterEndIsEmpty(t *testing.T) {
	v, err := call(t, "SLICE", value.Str("hello"), value.Int(4), value.Int(2))
	if err != nil || v.S != "" {
		t.Errorf("SLICE(\"hello\",4,2) = (%+v, %v), want (\"\", nil)", v, err)
	}
}

func TestReplace(t *testing.T) {
	v, err := call(t, "REPLACE", value.Str("a-b-c"), value.Str("-"), value.Str("+"))
	if err != nil || v.S != "a+b+c" {
		t.Errorf("REPLACE = (%+v, %v), want (\"a+b+c\", nil)", v, err)
	}
}

func TestStrip(t *testing.T) {
	v, err := call(t, "STRIP", value.Str("--hi--"), value.Str("-"))
	if err != nil || v.S != "hi" {
		t.Errorf("STRIP = (%+v, %v), want (\"hi\", nil)", v, err)
	}
}

func TestJoin(t *testing.T) {
	v, err := call(t, "JOIN", value.Str(","), value.Str("a"), value.Str("b"), value.Str("c"))
	if err != nil || v.S != "a,b,c" {
		t.Errorf("JOIN = (%+v, %v), want (\"a,b,c\", nil)", v, err)
	}
}
