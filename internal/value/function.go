package value

import "github.com/mattholt/prefixlang/internal/ast"

// Function is a runtime function record: an optional name, return type,
// ordered parameter list, body statement, and the environment it closed
// over at definition time (spec.md §3, §4.4). The captured environment
// is shared with the defining scope, not copied, so mutations through a
// closure are visible on subsequent calls (spec.md §8 property 4).
type Function struct {
	Name       string
	ReturnType DeclType
	Params     []ast.Param
	Body       *ast.Block
	Env        *Environment
}
