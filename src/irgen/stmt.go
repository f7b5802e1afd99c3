package irgen

import (
	"fmt"

	"gencode/src/ast"
	"gencode/src/irgen/ir"
)

// ---------------------
// ----- Functions -----
// ---------------------

// lowerStmtCatching lowers s, and if it fails with a recoverable semantic
// error, forwards it to the Diagnostics sink and swallows it so the
// caller continues with the next statement (§7). A fatal
// (NotImplementedError-class) error instead propagates immediately.
func (g *Generator) lowerStmtCatching(s ast.Stmt) error {
	err := g.lowerStmt(s)
	if err == nil {
		return nil
	}
	if isFatal(err) {
		return err
	}
	g.sink.Error(err.Error(), ast.Loc(s))
	return nil
}

// lowerStmt dispatches on AST statement kind (§4.3).
func (g *Generator) lowerStmt(s ast.Stmt) error {
	switch v := s.(type) {
	case *ast.CompoundStmt:
		for _, child := range v.Stmts {
			if err := g.lowerStmtCatching(child); err != nil {
				return err
			}
		}
		return nil

	case *ast.EmptyStmt:
		return nil

	case *ast.AssignmentStmt:
		return g.lowerAssignment(v)

	case *ast.ExpressionStmt:
		if _, err := g.lowerExpr(v.X); err != nil {
			return err
		}
		if _, ok := v.X.(*ast.CallExpr); !ok {
			return fmt.Errorf("%s: Not a call expression", ast.Loc(s))
		}
		return nil

	case *ast.IfStmt:
		return g.lowerIf(v)

	case *ast.WhileStmt:
		return g.lowerWhile(v)

	case *ast.ForStmt:
		return g.lowerFor(v)

	case *ast.ReturnStmt:
		return g.lowerReturn(v)

	default:
		return fatal(fmt.Sprintf("%s: unknown statement kind %T", ast.Loc(s), s))
	}
}

// lowerAssignment lowers an assignment statement (§4.3).
func (g *Generator) lowerAssignment(s *ast.AssignmentStmt) error {
	lhs, err := g.lowerExpr(s.LHS)
	if err != nil {
		return err
	}
	rhs, err := g.lowerRValue(s.RHS)
	if err != nil {
		return err
	}
	rhs, err = doCoerce(g.b, g.ctx, rhs, s.RHS.ResolvedType(), s.LHS.ResolvedType(), ast.Loc(s))
	if err != nil {
		return err
	}
	if !s.LHS.IsLValue() {
		return fmt.Errorf("%s: No valid lvalue", ast.Loc(s))
	}
	g.b.EmitStore(rhs, lhs, true)
	return nil
}

// lowerIf lowers an if statement (§4.3).
func (g *Generator) lowerIf(s *ast.IfStmt) error {
	t := g.b.NewBlock("T")
	f := g.b.NewBlock("F")
	j := g.b.NewBlock("J")
	if err := g.lowerCond(s.Cond, t, f); err != nil {
		return err
	}

	g.b.SetBlock(t)
	if s.Then != nil {
		if err := g.lowerStmtCatching(s.Then); err != nil {
			return err
		}
	}
	if !g.b.Block().Terminated() {
		g.b.EmitJump(j)
	}

	g.b.SetBlock(f)
	if s.Else != nil {
		if err := g.lowerStmtCatching(s.Else); err != nil {
			return err
		}
	}
	if !g.b.Block().Terminated() {
		g.b.EmitJump(j)
	}

	g.b.SetBlock(j)
	return nil
}

// lowerWhile lowers a pretest loop (§4.3).
func (g *Generator) lowerWhile(s *ast.WhileStmt) error {
	test := g.b.NewBlock("test")
	body := g.b.NewBlock("body")
	done := g.b.NewBlock("done")

	g.b.EmitJump(test)

	g.b.SetBlock(test)
	if err := g.lowerCond(s.Cond, body, done); err != nil {
		return err
	}

	g.b.SetBlock(body)
	if err := g.lowerStmtCatching(s.Body); err != nil {
		return err
	}
	if !g.b.Block().Terminated() {
		g.b.EmitJump(test)
	}

	g.b.SetBlock(done)
	return nil
}

// lowerFor lowers a counted loop (§4.3).
func (g *Generator) lowerFor(s *ast.ForStmt) error {
	if s.Init != nil {
		if err := g.lowerStmtCatching(s.Init); err != nil {
			return err
		}
	}

	test := g.b.NewBlock("test")
	body := g.b.NewBlock("body")
	done := g.b.NewBlock("done")

	g.b.EmitJump(test)

	g.b.SetBlock(test)
	if err := g.lowerCond(s.Cond, body, done); err != nil {
		return err
	}

	g.b.SetBlock(body)
	if err := g.lowerStmtCatching(s.Body); err != nil {
		return err
	}
	if s.Step != nil {
		if err := g.lowerStmtCatching(s.Step); err != nil {
			return err
		}
	}
	if !g.b.Block().Terminated() {
		g.b.EmitJump(test)
	}

	g.b.SetBlock(done)
	return nil
}

// lowerReturn lowers a return statement (§4.3): after emitting Return, a
// fresh unreachable block becomes the new cursor so that any statement
// following a mid-block return still has an open block to lower into
// (S6).
func (g *Generator) lowerReturn(s *ast.ReturnStmt) error {
	var irVal ir.Value
	if s.X != nil {
		v, err := g.lowerRValue(s.X)
		if err != nil {
			return err
		}
		irVal = v
	}
	g.b.EmitReturn(irVal)
	unreachable := g.b.NewBlock("unreachable")
	g.b.SetBlock(unreachable)
	return nil
}
