package interp

import (
	"github.com/mattholt/prefixlang/internal/ast"
	"github.com/mattholt/prefixlang/internal/builtins"
	"github.com/mattholt/prefixlang/internal/ierrors"
	"github.com/mattholt/prefixlang/internal/value"
)

// ExecBlock runs a statement block in env: a pre-pass builds the
// block's GOTOPOINT label map, then statements execute in order, with a
// Goto result that resolves to a label in this block's map jumping
// execution there instead of propagating (spec.md §4.4).
func (it *Interpreter) ExecBlock(block *ast.Block, env *value.Environment) ExecResult {
	labels := make(map[labelKey]int)
	for i, stmt := range block.Stmts {
		gp, ok := stmt.(*ast.GotoPoint)
		if !ok {
			continue
		}
		lv, err := it.EvalExpr(gp.Label, env)
		if err != nil {
			return ErrorResult(err)
		}
		key, ok := newLabelKey(lv)
		if !ok {
			pos := gp.Pos()
			return ErrorResult(ierrors.New(ierrors.Type, pos.Line, pos.Column, "GOTOPOINT label must be an integer or string value"))
		}
		labels[key] = i
	}

	i := 0
	for i < len(block.Stmts) {
		res := it.ExecStmt(block.Stmts[i], env)
		if res.Status == StatusGoto {
			if key, ok := newLabelKey(res.GotoTarget); ok {
				if idx, found := labels[key]; found {
					i = idx + 1
					continue
				}
			}
			return res
		}
		if res.IsAbrupt() {
			return res
		}
		i++
	}
	return Ok
}

// ExecStmt executes a single statement, per the per-form rules of
// spec.md §4.4.
func (it *Interpreter) ExecStmt(stmt ast.Stmt, env *value.Environment) ExecResult {
	it.countInstruction()
	switch s := stmt.(type) {
	case *ast.Block:
		return it.ExecBlock(s, value.NewEnclosedEnvironment(env))
	case *ast.ExprStmt:
		if _, err := it.EvalExpr(s.X, env); err != nil {
			return ErrorResult(err)
		}
		return Ok
	case *ast.Decl:
		env.Define(s.Name, s.Type)
		return Ok
	case *ast.Assign:
		return it.execAssign(s, env)
	case *ast.If:
		return it.execIf(s, env)
	case *ast.While:
		return it.execWhile(s, env)
	case *ast.For:
		return it.execFor(s, env)
	case *ast.FuncDef:
		return it.execFuncDef(s, env)
	case *ast.Return:
		if s.Value == nil {
			return ReturnResult(value.Null)
		}
		v, err := it.EvalExpr(s.Value, env)
		if err != nil {
			return ErrorResult(err)
		}
		return ReturnResult(v)
	case *ast.Break:
		if s.Depth < 1 {
			pos := s.Pos()
			return ErrorResult(ierrors.New(ierrors.Control, pos.Line, pos.Column, "BREAK depth must be a positive integer"))
		}
		if s.Depth > it.loopDepth {
			pos := s.Pos()
			return ErrorResult(ierrors.New(ierrors.Control, pos.Line, pos.Column,
				"BREAK %d exceeds the current loop nesting depth %d", s.Depth, it.loopDepth))
		}
		return BreakResult(s.Depth)
	case *ast.Continue:
		if it.loopDepth < 1 {
			pos := s.Pos()
			return ErrorResult(ierrors.New(ierrors.Control, pos.Line, pos.Column, "CONTINUE outside of a loop"))
		}
		return ContinueResult
	case *ast.Try:
		return it.execTry(s, env)
	case *ast.Goto:
		v, err := it.EvalExpr(s.Target, env)
		if err != nil {
			return ErrorResult(err)
		}
		return GotoResult(v)
	case *ast.GotoPoint:
		return Ok
	}
	pos := stmt.Pos()
	return ErrorResult(ierrors.New(ierrors.Name, pos.Line, pos.Column, "cannot execute statement of type %T", stmt))
}

func (it *Interpreter) execAssign(s *ast.Assign, env *value.Environment) ExecResult {
	v, err := it.EvalExpr(s.Value, env)
	if err != nil {
		return ErrorResult(err)
	}
	isDecl := s.Type != ast.Unknown
	if aerr := env.Assign(s.Name, v, s.Type, isDecl); aerr != nil {
		pos := s.Pos()
		return ErrorResult(ierrors.New(ierrors.Type, pos.Line, pos.Column, "%s", aerr))
	}
	return Ok
}

func (it *Interpreter) execIf(s *ast.If, env *value.Environment) ExecResult {
	cond, err := it.EvalExpr(s.Cond, env)
	if err != nil {
		return ErrorResult(err)
	}
	if cond.Truthy() {
		return it.ExecBlock(s.Then, value.NewEnclosedEnvironment(env))
	}
	for _, arm := range s.ElseIf {
		v, err := it.EvalExpr(arm.Cond, env)
		if err != nil {
			return ErrorResult(err)
		}
		if v.Truthy() {
			return it.ExecBlock(arm.Body, value.NewEnclosedEnvironment(env))
		}
	}
	if s.Else != nil {
		return it.ExecBlock(s.Else, value.NewEnclosedEnvironment(env))
	}
	return Ok
}

func (it *Interpreter) execWhile(s *ast.While, env *value.Environment) ExecResult {
	it.loopDepth++
	defer func() { it.loopDepth-- }()

	for {
		cond, err := it.EvalExpr(s.Cond, env)
		if err != nil {
			return ErrorResult(err)
		}
		if !cond.Truthy() {
			return Ok
		}
		res := it.ExecBlock(s.Body, value.NewEnclosedEnvironment(env))
		switch res.Status {
		case StatusBreak:
			if res.BreakDepth > 1 {
				return BreakResult(res.BreakDepth - 1)
			}
			return Ok
		case StatusContinue:
			continue
		case StatusOk:
			continue
		default: // Return, Error, Goto
			return res
		}
	}
}

func (it *Interpreter) execFor(s *ast.For, env *value.Environment) ExecResult {
	limitV, err := it.EvalExpr(s.Limit, env)
	if err != nil {
		return ErrorResult(err)
	}
	if limitV.Tag != value.TagInt {
		pos := s.Pos()
		return ErrorResult(ierrors.New(ierrors.Type, pos.Line, pos.Column, "FOR limit must be an integer"))
	}

	saved := env.LocalBinding(s.Counter)
	defer env.SetLocalBinding(s.Counter, saved)

	it.loopDepth++
	defer func() { it.loopDepth-- }()

	for i := int64(0); i < limitV.I; i++ {
		_ = env.DefineLocal(s.Counter, value.Int(i), value.DInt)

		res := it.ExecBlock(s.Body, value.NewEnclosedEnvironment(env))
		switch res.Status {
		case StatusBreak:
			if res.BreakDepth > 1 {
				return BreakResult(res.BreakDepth - 1)
			}
			return Ok
		case StatusContinue, StatusOk:
			continue
		default: // Return, Error, Goto
			return res
		}
	}
	return Ok
}

func (it *Interpreter) execFuncDef(s *ast.FuncDef, env *value.Environment) ExecResult {
	if _, isBuiltin := builtins.Lookup(s.Name); isBuiltin {
		pos := s.Pos()
		return ErrorResult(ierrors.New(ierrors.Name, pos.Line, pos.Column, "%q is a builtin operator and cannot be redefined", s.Name))
	}
	fn := &value.Function{
		Name:       s.Name,
		ReturnType: s.ReturnType,
		Params:     s.Params,
		Body:       s.Body,
		Env:        env,
	}
	it.Functions[s.Name] = fn
	_ = env.DefineLocal(s.Name, value.FuncV(fn), value.DFunc)
	return Ok
}

func (it *Interpreter) execTry(s *ast.Try, env *value.Environment) ExecResult {
	it.tryDepth++
	res := it.ExecBlock(s.Body, value.NewEnclosedEnvironment(env))
	it.tryDepth--
	if res.Status != StatusError {
		return res
	}

	catchEnv := value.NewEnclosedEnvironment(env)
	if s.CatchName != "" {
		_ = catchEnv.DefineLocal(s.CatchName, value.Str(res.Err.Message), value.DStr)
	}
	return it.ExecBlock(s.Catch, catchEnv)
}
