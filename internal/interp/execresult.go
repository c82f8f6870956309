package interp

import (
	"github.com/mattholt/prefixlang/internal/ierrors"
	"github.com/mattholt/prefixlang/internal/value"
)

// Status is the discriminant of an ExecResult, threading Ok/Return/
// Break/Continue/Goto/Error up the call stack (spec.md §4.4).
type Status int

const (
	StatusOk Status = iota
	StatusReturn
	StatusBreak
	StatusContinue
	StatusGoto
	StatusError
)

// ExecResult is the evaluator's sum-typed statement result. Only the
// fields matching Status are meaningful:
//   - StatusReturn carries Value
//   - StatusBreak carries BreakDepth (>= 1)
//   - StatusGoto carries GotoTarget
//   - StatusError carries Err
type ExecResult struct {
	Status     Status
	Value      value.Value
	BreakDepth int
	GotoTarget value.Value
	Err        *ierrors.Error
}

var Ok = ExecResult{Status: StatusOk}

func ReturnResult(v value.Value) ExecResult { return ExecResult{Status: StatusReturn, Value: v} }

func BreakResult(depth int) ExecResult { return ExecResult{Status: StatusBreak, BreakDepth: depth} }

var ContinueResult = ExecResult{Status: StatusContinue}

func GotoResult(target value.Value) ExecResult {
	return ExecResult{Status: StatusGoto, GotoTarget: target}
}

func ErrorResult(err *ierrors.Error) ExecResult {
	return ExecResult{Status: StatusError, Err: err}
}

// IsAbrupt reports whether r should unwind past the current statement
// without falling through to the next one in its block.
func (r ExecResult) IsAbrupt() bool { return r.Status != StatusOk }
