package ast

import (
	"gencode/src/diag"
	"gencode/src/types"
)

// ---------------------
// ----- Functions -----
// ---------------------

// Constructors for every concrete Expr and Stmt, since their annotation
// fields are unexported: callers outside this package build nodes through
// these rather than composite-literalling the embedded base directly.

func NewBinop(loc diag.Location, op string, a, b Expr) *BinopExpr {
	return &BinopExpr{base: base{Loc: loc}, Op: op, A: a, B: b}
}

func NewUnary(loc diag.Location, op string, x Expr) *UnaryExpr {
	return &UnaryExpr{base: base{Loc: loc}, Op: op, X: x}
}

func NewIdent(loc diag.Location, name string) *IdentExpr {
	return &IdentExpr{base: base{Loc: loc}, Name: name}
}

func NewDeref(loc diag.Location, ptr Expr) *DerefExpr {
	return &DerefExpr{base: base{Loc: loc}, Ptr: ptr}
}

func NewMember(loc diag.Location, x Expr, field string) *MemberExpr {
	return &MemberExpr{base: base{Loc: loc}, Base: x, Field: field}
}

func NewIndex(loc diag.Location, x, i Expr) *IndexExpr {
	return &IndexExpr{base: base{Loc: loc}, Base: x, Index: i}
}

func NewIntLiteral(loc diag.Location, v int64) *IntLiteral {
	return &IntLiteral{base: base{Loc: loc}, Value: v}
}

func NewFloatLiteral(loc diag.Location, v float64) *FloatLiteral {
	return &FloatLiteral{base: base{Loc: loc}, Value: v}
}

func NewBoolLiteral(loc diag.Location, v bool) *BoolLiteral {
	return &BoolLiteral{base: base{Loc: loc}, Value: v}
}

func NewStringLiteral(loc diag.Location, v string) *StringLiteral {
	return &StringLiteral{base: base{Loc: loc}, Value: v}
}

func NewSizeof(loc diag.Location, query types.Type) *SizeofExpr {
	return &SizeofExpr{base: base{Loc: loc}, Query: query}
}

func NewCast(loc diag.Location, x Expr, to types.Type) *CastExpr {
	return &CastExpr{base: base{Loc: loc}, X: x, To: to}
}

func NewCall(loc diag.Location, callee string, args []Expr) *CallExpr {
	return &CallExpr{base: base{Loc: loc}, Callee: callee, Args: args}
}

func NewCompound(loc diag.Location, stmts ...Stmt) *CompoundStmt {
	return &CompoundStmt{Stmts: stmts, Loc: loc}
}

func NewEmpty(loc diag.Location) *EmptyStmt {
	return &EmptyStmt{Loc: loc}
}

func NewAssignment(loc diag.Location, lhs, rhs Expr) *AssignmentStmt {
	return &AssignmentStmt{LHS: lhs, RHS: rhs, Loc: loc}
}

func NewExpressionStmt(loc diag.Location, x Expr) *ExpressionStmt {
	return &ExpressionStmt{X: x, Loc: loc}
}

func NewIf(loc diag.Location, cond Expr, then, els Stmt) *IfStmt {
	return &IfStmt{Cond: cond, Then: then, Else: els, Loc: loc}
}

func NewWhile(loc diag.Location, cond Expr, body Stmt) *WhileStmt {
	return &WhileStmt{Cond: cond, Body: body, Loc: loc}
}

func NewFor(loc diag.Location, init Stmt, cond Expr, step Stmt, body Stmt) *ForStmt {
	return &ForStmt{Init: init, Cond: cond, Step: step, Body: body, Loc: loc}
}

func NewReturn(loc diag.Location, x Expr) *ReturnStmt {
	return &ReturnStmt{X: x, Loc: loc}
}
