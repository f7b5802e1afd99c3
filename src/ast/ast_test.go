package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gencode/src/diag"
	"gencode/src/types"
)

// TestExprAnnotationsRoundTrip checks that ResolvedType/LValue, written by
// the lowerer as mutable annotations (§3), are read back unchanged.
func TestExprAnnotationsRoundTrip(t *testing.T) {
	loc := diag.Location{File: "demo", Line: 1, Col: 1}
	e := NewIdent(loc, "x")

	require.Nil(t, e.ResolvedType())
	require.False(t, e.IsLValue())

	e.SetResolvedType(types.Int)
	e.SetLValue(true)

	require.Equal(t, types.Int, e.ResolvedType())
	require.True(t, e.IsLValue())
	require.Equal(t, loc, ExprLoc(e))
}

// TestStmtLoc checks every concrete Stmt reports its own location through
// the exported Loc helper.
func TestStmtLoc(t *testing.T) {
	loc := diag.Location{File: "demo", Line: 7, Col: 3}
	stmts := []Stmt{
		NewEmpty(loc),
		NewAssignment(loc, NewIdent(loc, "x"), NewIntLiteral(loc, 1)),
		NewReturn(loc, nil),
		NewIf(loc, NewBoolLiteral(loc, true), NewEmpty(loc), nil),
		NewWhile(loc, NewBoolLiteral(loc, true), NewEmpty(loc)),
		NewFor(loc, nil, NewBoolLiteral(loc, true), nil, NewEmpty(loc)),
		NewCompound(loc),
		NewExpressionStmt(loc, NewCall(loc, "f", nil)),
	}
	for _, s := range stmts {
		require.Equal(t, loc, Loc(s))
	}
}

// TestConstructorsSetFields is a light sanity sweep over the expression
// constructors, since their embedded base is unexported and nodes can only
// be built outside this package through them.
func TestConstructorsSetFields(t *testing.T) {
	loc := diag.Location{File: "demo", Line: 1, Col: 1}

	bin := NewBinop(loc, "+", NewIntLiteral(loc, 1), NewIntLiteral(loc, 2))
	require.Equal(t, "+", bin.Op)

	deref := NewDeref(loc, NewIdent(loc, "p"))
	ident, ok := deref.Ptr.(*IdentExpr)
	require.True(t, ok)
	require.Equal(t, "p", ident.Name)

	member := NewMember(loc, NewIdent(loc, "s"), "f")
	require.Equal(t, "f", member.Field)

	idx := NewIndex(loc, NewIdent(loc, "a"), NewIntLiteral(loc, 0))
	require.NotNil(t, idx.Base)
	require.NotNil(t, idx.Index)

	cast := NewCast(loc, NewIdent(loc, "b"), types.Int)
	require.Equal(t, types.Int, cast.To)

	call := NewCall(loc, "f", []Expr{NewIntLiteral(loc, 1)})
	require.Equal(t, "f", call.Callee)
	require.Len(t, call.Args, 1)
}
