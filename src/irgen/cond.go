package irgen

import (
	"fmt"

	"gencode/src/ast"
	"gencode/src/irgen/ir"
	"gencode/src/types"
)

// ---------------------
// ----- Functions -----
// ---------------------

// lowerCond lowers a boolean expression with two explicit target blocks,
// implementing short-circuit semantics without materializing an
// intermediate boolean value (§4.4).
func (g *Generator) lowerCond(e ast.Expr, t, f *ir.BasicBlock) error {
	switch v := e.(type) {
	case *ast.BinopExpr:
		switch v.Op {
		case "or":
			m := g.b.NewBlock("M")
			if err := g.lowerCond(v.A, t, m); err != nil {
				return err
			}
			g.b.SetBlock(m)
			return g.lowerCond(v.B, t, f)
		case "and":
			m := g.b.NewBlock("M")
			if err := g.lowerCond(v.A, m, f); err != nil {
				return err
			}
			g.b.SetBlock(m)
			return g.lowerCond(v.B, t, f)
		case "==", "!=", "<", "<=", ">", ">=":
			return g.lowerComparison(v, t, f)
		}
		return fmt.Errorf("%s: Unknown cond", ast.ExprLoc(e))
	case *ast.BoolLiteral:
		if v.Value {
			g.b.EmitJump(t)
		} else {
			g.b.EmitJump(f)
		}
		return nil
	default:
		return fmt.Errorf("%s: non-bool", ast.ExprLoc(e))
	}
}

// lowerComparison lowers a relational expression directly to a CJump,
// requiring both operands share the same AST type (§4.4).
func (g *Generator) lowerComparison(e *ast.BinopExpr, t, f *ir.BasicBlock) error {
	a, err := g.lowerRValue(e.A)
	if err != nil {
		return err
	}
	b, err := g.lowerRValue(e.B)
	if err != nil {
		return err
	}
	if !g.ctx.EqualTypes(e.A.ResolvedType(), e.B.ResolvedType()) {
		return fmt.Errorf("%s: Types unequal", ast.ExprLoc(e))
	}
	op := cmpOp(e.Op)
	e.SetResolvedType(types.Bool)
	e.SetLValue(false)
	g.b.EmitCJump(a, b, op, t, f)
	return nil
}

// cmpOp maps a source comparison operator token to its IR CmpOp.
func cmpOp(op string) ir.CmpOp {
	switch op {
	case "==":
		return ir.CmpEq
	case "!=":
		return ir.CmpNeq
	case "<":
		return ir.CmpLt
	case "<=":
		return ir.CmpLe
	case ">":
		return ir.CmpGt
	case ">=":
		return ir.CmpGe
	default:
		panic("irgen: not a comparison operator: " + op)
	}
}
