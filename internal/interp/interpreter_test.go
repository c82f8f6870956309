package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattholt/prefixlang/internal/parser"
)

// runSource parses and runs src against a fresh Interpreter, returning
// everything written to stdout and the final ExecResult.
func runSource(t *testing.T, src string) (string, ExecResult) {
	t.Helper()
	p := parser.New(src)
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, errs)
	}
	it := New(src, "<test>")
	var out bytes.Buffer
	it.Stdout = &out
	res := it.Run(prog)
	return out.String(), res
}

func TestRunPrintsOutput(t *testing.T) {
	out, res := runSource(t, `PRINT("hello");`)
	if res.Status != StatusOk {
		t.Fatalf("Run() status = %v, want Ok (err=%v)", res.Status, res.Err)
	}
	if out != "hello\n" {
		t.Errorf("stdout = %q, want %q", out, "hello\n")
	}
}

func TestDeclareAssignAndReadBack(t *testing.T) {
	out, res := runSource(t, `
INT x = 5;
x = ADD(x, 1);
PRINT(x);
`)
	if res.Status != StatusOk {
		t.Fatalf("Run() status = %v, err=%v", res.Status, res.Err)
	}
	if out != "110\n" {
		t.Errorf("stdout = %q, want %q", out, "110\n")
	}
}

func TestIfElseBranches(t *testing.T) {
	out, res := runSource(t, `
INT x = 2;
IF EQ(x, 1) {
  PRINT("one");
} ELSEIF EQ(x, 2) {
  PRINT("two");
} ELSE {
  PRINT("other");
}
`)
	if res.Status != StatusOk {
		t.Fatalf("Run() status = %v, err=%v", res.Status, res.Err)
	}
	if out != "two\n" {
		t.Errorf("stdout = %q, want %q", out, "two\n")
	}
}

func TestWhileBreak(t *testing.T) {
	out, res := runSource(t, `
INT i = 0;
WHILE LT(i, 100) {
  i = ADD(i, 1);
  IF EQ(i, 3) {
    BREAK;
  }
}
PRINT(i);
`)
	if res.Status != StatusOk {
		t.Fatalf("Run() status = %v, err=%v", res.Status, res.Err)
	}
	if out != "11\n" {
		t.Errorf("stdout = %q, want %q", out, "11\n")
	}
}

func TestForLoopCounterRestoredAfterward(t *testing.T) {
	out, res := runSource(t, `
INT i = 99;
FOR i 3 {
  PRINT(i);
}
PRINT(i);
`)
	if res.Status != StatusOk {
		t.Fatalf("Run() status = %v, err=%v", res.Status, res.Err)
	}
	want := "0\n1\n10\n1100011\n"
	if out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestForLoopContinue(t *testing.T) {
	out, res := runSource(t, `
FOR i 4 {
  IF EQ(i, 2) {
    CONTINUE;
  }
  PRINT(i);
}
`)
	if res.Status != StatusOk {
		t.Fatalf("Run() status = %v, err=%v", res.Status, res.Err)
	}
	want := "0\n1\n11\n"
	if out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestFunctionCallAndReturn(t *testing.T) {
	out, res := runSource(t, `
FUNC INT add(INT a, INT b) {
  RETURN ADD(a, b);
}
PRINT(add(2, 3));
`)
	if res.Status != StatusOk {
		t.Fatalf("Run() status = %v, err=%v", res.Status, res.Err)
	}
	if out != "101\n" {
		t.Errorf("stdout = %q, want %q", out, "101\n")
	}
}

func TestFunctionDefaultParameter(t *testing.T) {
	out, res := runSource(t, `
FUNC INT inc(INT a, INT step = 1) {
  RETURN ADD(a, step);
}
PRINT(inc(10));
`)
	if res.Status != StatusOk {
		t.Fatalf("Run() status = %v, err=%v", res.Status, res.Err)
	}
	if out != "1011\n" {
		t.Errorf("stdout = %q, want %q", out, "1011\n")
	}
}

func TestFunctionFallsOffEndReturnsZeroValue(t *testing.T) {
	out, res := runSource(t, `
FUNC INT noop(INT a) {
  PRINT("ran");
}
PRINT(noop(1));
`)
	if res.Status != StatusOk {
		t.Fatalf("Run() status = %v, err=%v", res.Status, res.Err)
	}
	if out != "ran\n0\n" {
		t.Errorf("stdout = %q, want %q", out, "ran\n0\n")
	}
}

func TestTryCatchBindsMessage(t *testing.T) {
	out, res := runSource(t, `
TRY {
  THROW("boom");
} CATCH err {
  PRINT(err);
}
`)
	if res.Status != StatusOk {
		t.Fatalf("Run() status = %v, err=%v", res.Status, res.Err)
	}
	if out != "boom\n" {
		t.Errorf("stdout = %q, want %q", out, "boom\n")
	}
}

func TestGotoJumpsToLabel(t *testing.T) {
	out, res := runSource(t, `
PRINT(1);
GOTO "skip";
PRINT(2);
GOTOPOINT "skip";
PRINT(3);
`)
	if res.Status != StatusOk {
		t.Fatalf("Run() status = %v, err=%v", res.Status, res.Err)
	}
	if out != "1\n11\n" {
		t.Errorf("stdout = %q, want %q", out, "1\n11\n")
	}
}

func TestUndefinedNameErrors(t *testing.T) {
	_, res := runSource(t, `PRINT(nope);`)
	if res.Status != StatusError {
		t.Fatalf("Run() status = %v, want Error", res.Status)
	}
}

func TestBreakEscapingTopLevelIsControlError(t *testing.T) {
	_, res := runSource(t, `BREAK;`)
	if res.Status != StatusError {
		t.Fatalf("Run() status = %v, want Error", res.Status)
	}
	if !strings.Contains(res.Err.Message, "BREAK") {
		t.Errorf("err.Message = %q, want it to mention BREAK", res.Err.Message)
	}
}

func TestRecursiveFunctionCall(t *testing.T) {
	out, res := runSource(t, `
FUNC INT fact(INT n) {
  IF LTE(n, 1) {
    RETURN 1;
  }
  RETURN MUL(n, fact(SUB(n, 1)));
}
PRINT(fact(5));
`)
	if res.Status != StatusOk {
		t.Fatalf("Run() status = %v, err=%v", res.Status, res.Err)
	}
	if out != "1111000\n" {
		t.Errorf("stdout = %q, want %q", out, "1111000\n")
	}
}
