// Package locale is a reference extension exercising the full
// registration ABI of internal/extension: it adds a locale-aware string
// comparison operator, a periodic instruction-count hook, and a
// program_start event handler, in the spirit of the teacher's
// examples/ffi demo package.
package locale

import (
	"github.com/mattholt/prefixlang/internal/ast"
	"github.com/mattholt/prefixlang/internal/extension"
	"github.com/mattholt/prefixlang/internal/ierrors"
	"github.com/mattholt/prefixlang/internal/value"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Register is the extension's entry point, passed to extension.Load by
// the CLI's --with-locale flag.
func Register(ctx *extension.RegistrationContext) {
	ctx.RegisterOperator("COLLATE", collateOp, false)
	ctx.RegisterPeriodicHook(1000, onInstructionMilestone)
	ctx.RegisterEventHandler("program_start", onProgramStart)
}

// collateOp implements COLLATE(a, b, tag): a three-way, locale-aware
// string comparison using golang.org/x/text/collate, returning -1, 0, or
// 1. tag is a BCP 47 language tag such as "en" or "de"; an empty or
// unrecognized tag falls back to language.Und (root collation order).
func collateOp(host extension.Host, args []value.Value, nodes []ast.Expr, env *value.Environment, line, col int) (value.Value, *ierrors.Error) {
	if len(args) != 3 {
		return value.Null, ierrors.New(ierrors.Arity, line, col, "COLLATE expects 3 arguments, got %d", len(args))
	}
	a, b, tagArg := args[0], args[1], args[2]
	if a.Tag != value.TagStr || b.Tag != value.TagStr || tagArg.Tag != value.TagStr {
		return value.Null, ierrors.New(ierrors.Type, line, col, "COLLATE expects three strings")
	}

	tag, err := language.Parse(tagArg.S)
	if err != nil {
		tag = language.Und
	}
	c := collate.New(tag)
	return value.Int(int64(c.CompareString(a.S, b.S))), nil
}

// onInstructionMilestone fires every 1000 executed instructions; a real
// extension might use this to sample CPU time or flush metrics.
func onInstructionMilestone(host extension.Host, ev extension.Event) {
	_ = host.InstructionCount()
}

// onProgramStart fires once, at the very start of program execution.
func onProgramStart(host extension.Host, ev extension.Event) {
	_ = host.IsMainModule()
}
