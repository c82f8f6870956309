package builtins

import (
	"strings"

	"github.com/mattholt/prefixlang/internal/ast"
	"github.com/mattholt/prefixlang/internal/ierrors"
	"github.com/mattholt/prefixlang/internal/value"
)

func init() {
	register(&Builtin{Name: "SLEN", MinArgs: 1, MaxArgs: 1, Fn: slenOp})
	register(&Builtin{Name: "UPPER", MinArgs: 1, MaxArgs: 1, Fn: asciiCase(asciiUpper)})
	register(&Builtin{Name: "LOWER", MinArgs: 1, MaxArgs: 1, Fn: asciiCase(asciiLower)})
	register(&Builtin{Name: "SLICE", MinArgs: 3, MaxArgs: 3, Fn: sliceOp})
	register(&Builtin{Name: "REPLACE", MinArgs: 3, MaxArgs: 3, Fn: replaceOp})
	register(&Builtin{Name: "STRIP", MinArgs: 2, MaxArgs: 2, Fn: stripOp})
	register(&Builtin{Name: "JOIN", MinArgs: 1, MaxArgs: -1, Fn: joinOp})
}

func requireStr(ctx *Context, v value.Value) (string, *ierrors.Error) {
	if v.Tag != value.TagStr {
		return "", ctx.Errf(ierrors.Type, "expected a string argument, got %s", v.TypeName())
	}
	return v.S, nil
}

func slenOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	s, err := requireStr(ctx, args[0])
	if err != nil {
		return value.Null, err
	}
	return value.Int(int64(len(s))), nil
}

// asciiUpper/asciiLower apply ASCII-only case folding, per spec.md §9
// ("the source does not attempt Unicode-aware case mapping").
func asciiUpper(r byte) byte {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func asciiLower(r byte) byte {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func asciiCase(fold func(byte) byte) Func {
	return func(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
		s, err := requireStr(ctx, args[0])
		if err != nil {
			return value.Null, err
		}
		b := []byte(s)
		for i := range b {
			b[i] = fold(b[i])
		}
		return value.Str(string(b)), nil
	}
}

// normalizeSliceIndex converts a 1-based index, possibly negative
// (relative to length+1), into a 0-based offset clamped to [0, length].
func normalizeSliceIndex(idx, length int64) int64 {
	if idx < 0 {
		idx = length + 1 + idx
	}
	idx-- // to 0-based
	if idx < 0 {
		idx = 0
	}
	if idx > length {
		idx = length
	}
	return idx
}

// sliceOp implements SLICE(s, start, end): 1-based, inclusive-exclusive,
// with negative indices relative to length+1; an empty result when
// start >= end after normalization (spec.md §4.2).
func sliceOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	s, err := requireStr(ctx, args[0])
	if err != nil {
		return value.Null, err
	}
	if args[1].Tag != value.TagInt || args[2].Tag != value.TagInt {
		return value.Null, ctx.Errf(ierrors.Type, "SLICE requires integer start/end")
	}
	length := int64(len(s))
	start := normalizeSliceIndex(args[1].I, length)
	end := normalizeSliceIndex(args[2].I, length)
	if start >= end {
		return value.Str(""), nil
	}
	return value.Str(s[start:end]), nil
}

func replaceOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	hay, err := requireStr(ctx, args[0])
	if err != nil {
		return value.Null, err
	}
	needle, err := requireStr(ctx, args[1])
	if err != nil {
		return value.Null, err
	}
	repl, err := requireStr(ctx, args[2])
	if err != nil {
		return value.Null, err
	}
	return value.Str(strings.ReplaceAll(hay, needle, repl)), nil
}

func stripOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	s, err := requireStr(ctx, args[0])
	if err != nil {
		return value.Null, err
	}
	chars, err := requireStr(ctx, args[1])
	if err != nil {
		return value.Null, err
	}
	return value.Str(strings.Trim(s, chars)), nil
}

func joinOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	sep, err := requireStr(ctx, args[0])
	if err != nil {
		return value.Null, err
	}
	parts := make([]string, 0, len(args)-1)
	for _, a := range args[1:] {
		s, err := requireStr(ctx, a)
		if err != nil {
			return value.Null, err
		}
		parts = append(parts, s)
	}
	return value.Str(strings.Join(parts, sep)), nil
}
