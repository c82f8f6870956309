package ierrors

import (
	"fmt"
	"strings"
)

// StackFrame is one frame on the interpreter's trace-frame stack: the
// function name, source path, and last executed line/column (spec.md
// §3, §4.6), adapted from the teacher's errors.StackFrame.
type StackFrame struct {
	FunctionName string
	SourcePath   string
	Line, Column int
}

// String formats one frame as "FunctionName (path) [line: N, column: M]".
func (f StackFrame) String() string {
	if f.SourcePath == "" {
		return fmt.Sprintf("%s [line: %d, column: %d]", f.FunctionName, f.Line, f.Column)
	}
	return fmt.Sprintf("%s (%s) [line: %d, column: %d]", f.FunctionName, f.SourcePath, f.Line, f.Column)
}

// StackTrace is a call stack, ordered oldest (bottom) to newest (top),
// matching the evaluator's push/pop order on a Go call stack.
type StackTrace []StackFrame

// Push appends a new top frame (returning the resulting trace; callers
// typically just append directly, this mirrors the teacher's helper
// style for readability at call sites).
func (st StackTrace) Push(f StackFrame) StackTrace { return append(st, f) }

// Top returns the most recent frame, or nil if the trace is empty.
func (st StackTrace) Top() *StackFrame {
	if len(st) == 0 {
		return nil
	}
	return &st[len(st)-1]
}

// FormatTraceback renders a full traceback: the error message followed
// by each frame, innermost (top) first, matching spec.md §4.6
// ("innermost last" refers to storage order; display is innermost-first
// for readability, the same convention the teacher uses for panics).
func FormatTraceback(err *Error, trace StackTrace, source string) string {
	var sb strings.Builder
	sb.WriteString(err.Format(source))
	if len(trace) == 0 {
		return sb.String()
	}
	sb.WriteString("\n\nTraceback (most recent call first):\n")
	for i := len(trace) - 1; i >= 0; i-- {
		sb.WriteString("  ")
		sb.WriteString(trace[i].String())
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
