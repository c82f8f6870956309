package locale

import (
	"testing"

	"github.com/mattholt/prefixlang/internal/extension"
	"github.com/mattholt/prefixlang/internal/value"
)

func TestCollateOpOrdersAccented(t *testing.T) {
	table := extension.NewTable()
	Register(extension.NewRegistrationContext("locale", table))

	fn, ok := table.Lookup("COLLATE")
	if !ok {
		t.Fatalf("COLLATE was not registered")
	}

	args := []value.Value{value.Str("cote"), value.Str("côte"), value.Str("fr")}
	v, err := fn(nil, args, nil, nil, 0, 0)
	if err != nil {
		t.Fatalf("COLLATE error = %v", err)
	}
	if v.Tag != value.TagInt {
		t.Fatalf("COLLATE returned %s, want INTEGER", v.TypeName())
	}
	if v.I >= 0 {
		t.Errorf("COLLATE(\"cote\", \"côte\", \"fr\") = %d, want < 0", v.I)
	}
}

func TestCollateOpRejectsWrongArity(t *testing.T) {
	table := extension.NewTable()
	Register(extension.NewRegistrationContext("locale", table))

	fn, _ := table.Lookup("COLLATE")
	_, err := fn(nil, []value.Value{value.Str("a")}, nil, nil, 1, 1)
	if err == nil {
		t.Errorf("COLLATE with 1 argument: error = nil, want an arity error")
	}
}

func TestCollateOpUnknownTagFallsBackToRoot(t *testing.T) {
	table := extension.NewTable()
	Register(extension.NewRegistrationContext("locale", table))

	fn, _ := table.Lookup("COLLATE")
	args := []value.Value{value.Str("a"), value.Str("b"), value.Str("not-a-real-tag-!!")}
	v, err := fn(nil, args, nil, nil, 0, 0)
	if err != nil {
		t.Fatalf("COLLATE error = %v", err)
	}
	if v.I >= 0 {
		t.Errorf("COLLATE(\"a\", \"b\", ...) = %d, want < 0", v.I)
	}
}
