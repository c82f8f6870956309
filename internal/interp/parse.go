package interp

import (
	"fmt"
	"strings"

	"github.com/mattholt/prefixlang/internal/ast"
	"github.com/mattholt/prefixlang/internal/parser"
)

// parseSource parses a full program, used both by the CLI driver and by
// Interpreter.Import to compile an imported module's text.
func parseSource(src string) (*ast.Block, error) {
	p := parser.New(src)
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	return prog, nil
}
