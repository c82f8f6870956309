package builtins

import (
	"runtime"
	"testing"

	"github.com/mattholt/prefixlang/internal/ierrors"
	"github.com/mattholt/prefixlang/internal/value"
)

type fakeHost struct {
	isMain     bool
	importPath string
	importErr  *ierrors.Error
	exitCode   int
	exited     bool
}

func (h *fakeHost) IsMainModule() bool { return h.isMain }
func (h *fakeHost) Import(path string) *ierrors.Error {
	h.importPath = path
	return h.importErr
}
func (h *fakeHost) Exit(code int) {
	h.exited = true
	h.exitCode = code
}

func TestMainOpReflectsHost(t *testing.T) {
	host := &fakeHost{isMain: true}
	ctx := &Context{Host: host, Line: 1, Col: 1}
	b, _ := Lookup("MAIN")
	v, err := b.Fn(ctx, nil, nil)
	if err != nil || v.I != 1 {
		t.Errorf("MAIN() = (%+v, %v), want (1, nil)", v, err)
	}
}

func TestOsOp(t *testing.T) {
	v, err := call(t, "OS")
	if err != nil || v.S != runtime.GOOS {
		t.Errorf("OS() = (%+v, %v), want (%q, nil)", v, err, runtime.GOOS)
	}
}

func TestExitOpCallsHost(t *testing.T) {
	host := &fakeHost{}
	ctx := &Context{Host: host, Line: 1, Col: 1}
	b, _ := Lookup("EXIT")
	_, err := b.Fn(ctx, []value.Value{value.Int(3)}, nil)
	if err != nil {
		t.Fatalf("EXIT(3) error = %v", err)
	}
	if !host.exited || host.exitCode != 3 {
		t.Errorf("host = %+v, want exited=true exitCode=3", host)
	}
}

func TestExitOpRejectsNonInt(t *testing.T) {
	ctx := &Context{Host: &fakeHost{}, Line: 1, Col: 1}
	b, _ := Lookup("EXIT")
	_, err := b.Fn(ctx, []value.Value{value.Str("x")}, nil)
	if err == nil {
		t.Errorf("EXIT(\"x\") error = nil, want a Type error")
	}
}

func TestImportOpDelegatesToHost(t *testing.T) {
	host := &fakeHost{}
	ctx := &Context{Host: host, Line: 1, Col: 1}
	b, _ := Lookup("IMPORT")
	_, err := b.Fn(ctx, []value.Value{value.Str("lib.px")}, nil)
	if err != nil {
		t.Fatalf("IMPORT error = %v", err)
	}
	if host.importPath != "lib.px" {
		t.Errorf("host.importPath = %q, want %q", host.importPath, "lib.px")
	}
}
