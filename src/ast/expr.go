package ast

import (
	"gencode/src/diag"
	"gencode/src/types"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Expr is the closed set of expression node kinds the expression lowerer
// (§4.5) dispatches over. Every concrete Expr carries the two mutable
// annotations written by the lowerer as it visits (§3, "AST expression
// annotations") and read by every caller afterward: ResolvedType (the
// source type) and LValue (whether the returned IR value denotes storage
// or a computed value).
type Expr interface {
	exprLoc() diag.Location
	ResolvedType() types.Type
	SetResolvedType(types.Type)
	IsLValue() bool
	SetLValue(bool)
	isExpr()
}

// base carries the annotation fields shared by every concrete Expr.
type base struct {
	Loc diag.Location
	typ types.Type
	lv  bool
}

func (b *base) exprLoc() diag.Location          { return b.Loc }
func (b *base) ResolvedType() types.Type        { return b.typ }
func (b *base) SetResolvedType(t types.Type)    { b.typ = t }
func (b *base) IsLValue() bool                  { return b.lv }
func (b *base) SetLValue(v bool)                { b.lv = v }

// BinopExpr is a binary arithmetic/bitwise/shift/comparison expression.
// Op is one of the operators listed in §3/§4.4.
type BinopExpr struct {
	base
	Op   string
	A, B Expr
}

// UnaryExpr is a unary expression. Only "&" (address-of) is legal per §4.5.
type UnaryExpr struct {
	base
	Op string
	X  Expr
}

// IdentExpr is a bare identifier, resolved through the TypeContext.
type IdentExpr struct {
	base
	Name string
}

// DerefExpr is a pointer dereference (*p).
type DerefExpr struct {
	base
	Ptr Expr
}

// MemberExpr is a struct field access (s.f).
type MemberExpr struct {
	base
	Base  Expr
	Field string
}

// IndexExpr is an array index (a[i]).
type IndexExpr struct {
	base
	Base, Index Expr
}

// IntLiteral is an integer literal.
type IntLiteral struct {
	base
	Value int64
}

// FloatLiteral is a floating-point literal.
type FloatLiteral struct {
	base
	Value float64
}

// BoolLiteral is a boolean literal.
type BoolLiteral struct {
	base
	Value bool
}

// StringLiteral is a string literal.
type StringLiteral struct {
	base
	Value string
}

// SizeofExpr is a sizeof(type) query.
type SizeofExpr struct {
	base
	Query types.Type
}

// CastExpr is an explicit cast<To>(X).
type CastExpr struct {
	base
	X  Expr
	To types.Type
}

// CallExpr is a function call naming Callee and its arguments.
type CallExpr struct {
	base
	Callee string
	Args   []Expr
}

func (*BinopExpr) isExpr()     {}
func (*UnaryExpr) isExpr()     {}
func (*IdentExpr) isExpr()     {}
func (*DerefExpr) isExpr()     {}
func (*MemberExpr) isExpr()    {}
func (*IndexExpr) isExpr()     {}
func (*IntLiteral) isExpr()    {}
func (*FloatLiteral) isExpr()  {}
func (*BoolLiteral) isExpr()   {}
func (*StringLiteral) isExpr() {}
func (*SizeofExpr) isExpr()    {}
func (*CastExpr) isExpr()      {}
func (*CallExpr) isExpr()      {}

// ExprLoc returns the source location of any Expr.
func ExprLoc(e Expr) diag.Location {
	return e.exprLoc()
}
