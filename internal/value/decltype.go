package value

import "github.com/mattholt/prefixlang/internal/ast"

// DeclType re-exports ast.DeclType so callers outside the ast package
// don't need to import it just to talk about a binding's static type.
type DeclType = ast.DeclType

const (
	Unknown = ast.Unknown
	DInt    = ast.Int
	DFlt    = ast.Flt
	DStr    = ast.Str
	DFunc   = ast.Func
	DTns    = ast.Tns
)

// TagOf returns the runtime Tag a binding of the given DeclType must hold.
// DeclType.Unknown has no corresponding runtime tag; it appears only in
// the AST (spec.md §3), never in a binding.
func TagOf(dt DeclType) (Tag, bool) {
	switch dt {
	case DInt:
		return TagInt, true
	case DFlt:
		return TagFlt, true
	case DStr:
		return TagStr, true
	case DFunc:
		return TagFunc, true
	case DTns:
		return TagTns, true
	}
	return TagInt, false
}

// Zero returns the synthesized zero value for a declared type: 0, 0.0,
// "", or a signal (via ok=false) that the type has no zero (Func/Tns), per
// spec.md §4.4 ("when no explicit return occurs... fail for Func/Tns
// returns").
func Zero(dt DeclType) (Value, bool) {
	switch dt {
	case DInt:
		return Int(0), true
	case DFlt:
		return Flt(0), true
	case DStr:
		return Str(""), true
	default:
		return Value{}, false
	}
}
