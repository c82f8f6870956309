package interp

import (
	"github.com/mattholt/prefixlang/internal/ierrors"
	"github.com/mattholt/prefixlang/internal/value"
)

// callFunction implements spec.md §4.4 function-call semantics: a new
// environment parented by the function's captured environment (not the
// caller's), parameters bound left to right with defaults evaluated in
// that same new environment so later defaults can see earlier
// parameters, a type check per bound argument, the body executed as a
// block, and a synthesized zero value when control falls off the end
// without an explicit RETURN.
func (it *Interpreter) callFunction(fn *value.Function, args []value.Value, line, col int) (value.Value, *ierrors.Error) {
	it.callDepth++
	defer func() { it.callDepth-- }()
	if it.callDepth > maxCallDepth {
		return value.Null, ierrors.New(ierrors.Arithmetic, line, col, "call stack exhausted (max depth %d)", maxCallDepth)
	}

	if len(args) > len(fn.Params) {
		return value.Null, ierrors.New(ierrors.Arity, line, col,
			"%s expects at most %d arguments, got %d", frameName(fn), len(fn.Params), len(args))
	}

	callEnv := value.NewEnclosedEnvironment(fn.Env)
	for i, p := range fn.Params {
		var v value.Value
		switch {
		case i < len(args):
			v = args[i]
		case p.Default != nil:
			dv, err := it.EvalExpr(p.Default, callEnv)
			if err != nil {
				return value.Null, err
			}
			v = dv
		default:
			return value.Null, ierrors.New(ierrors.Arity, line, col,
				"%s missing required argument %q", frameName(fn), p.Name)
		}
		wantTag, ok := value.TagOf(p.Type)
		if !ok || v.Tag != wantTag {
			return value.Null, ierrors.New(ierrors.Type, line, col,
				"%s parameter %q expects %s, got %s", frameName(fn), p.Name, p.Type, v.TypeName())
		}
		_ = callEnv.DefineLocal(p.Name, v, p.Type)
	}

	savedLoopDepth := it.loopDepth
	savedTryDepth := it.tryDepth
	it.loopDepth = 0
	it.tryDepth = 0
	it.pushFrame(frameName(fn), line, col)

	res := it.ExecBlock(fn.Body, callEnv)

	it.popFrame()
	it.loopDepth = savedLoopDepth
	it.tryDepth = savedTryDepth

	switch res.Status {
	case StatusReturn:
		if ret, ok := value.TagOf(fn.ReturnType); ok && res.Value.Tag != ret {
			return value.Null, ierrors.New(ierrors.Type, line, col,
				"%s returned %s, expected %s", frameName(fn), res.Value.TypeName(), fn.ReturnType)
		}
		return res.Value, nil
	case StatusError:
		return value.Null, res.Err
	case StatusBreak, StatusContinue, StatusGoto:
		return value.Null, ierrors.New(ierrors.Control, line, col,
			"%s: control statement escaped the function body", frameName(fn))
	default: // StatusOk: control fell off the end
		zero, ok := value.Zero(fn.ReturnType)
		if !ok {
			return value.Null, ierrors.New(ierrors.Type, line, col,
				"%s fell through without a RETURN and has no zero value for %s", frameName(fn), fn.ReturnType)
		}
		return zero, nil
	}
}

func frameName(fn *value.Function) string {
	if fn.Name != "" {
		return fn.Name
	}
	return "<anonymous function>"
}
