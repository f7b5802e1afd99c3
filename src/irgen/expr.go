package irgen

import (
	"encoding/binary"
	"fmt"

	"gencode/src/ast"
	"gencode/src/irgen/ir"
	"gencode/src/types"
)

// ---------------------
// ----- Functions -----
// ---------------------

// makeRValue returns the plain value e lowers to: if e.lvalue was set by
// lowerExpr, a Load is inserted with the IR type derived from e's
// resolved type and the loaded value is returned; otherwise val is
// returned unchanged (§4.5).
func (g *Generator) makeRValue(e ast.Expr, val ir.Value) (ir.Value, error) {
	if !e.IsLValue() {
		return val, nil
	}
	ty, err := getIRType(e.ResolvedType(), ast.ExprLoc(e))
	if err != nil {
		return nil, err
	}
	return g.b.EmitLoad(val, ty), nil
}

// lowerRValue lowers e and immediately collapses it to an r-value.
func (g *Generator) lowerRValue(e ast.Expr) (ir.Value, error) {
	v, err := g.lowerExpr(e)
	if err != nil {
		return nil, err
	}
	return g.makeRValue(e, v)
}

// lowerExpr lowers e to an IR value, writing e's ResolvedType/LValue
// annotations as a side effect (§4.5).
func (g *Generator) lowerExpr(e ast.Expr) (ir.Value, error) {
	switch v := e.(type) {
	case *ast.BinopExpr:
		return g.lowerBinop(v)
	case *ast.UnaryExpr:
		return g.lowerUnary(v)
	case *ast.IdentExpr:
		return g.lowerIdent(v)
	case *ast.DerefExpr:
		return g.lowerDeref(v)
	case *ast.MemberExpr:
		return g.lowerMember(v)
	case *ast.IndexExpr:
		return g.lowerIndex(v)
	case *ast.IntLiteral:
		v.SetResolvedType(types.Int)
		v.SetLValue(false)
		return g.b.EmitConst(ir.I32, v.Value), nil
	case *ast.FloatLiteral:
		v.SetResolvedType(types.Double)
		v.SetLValue(false)
		return g.b.EmitConst(ir.F64, v.Value), nil
	case *ast.BoolLiteral:
		v.SetResolvedType(types.Bool)
		v.SetLValue(false)
		iv := int64(0)
		if v.Value {
			iv = 1
		}
		return g.b.EmitConst(ir.I32, iv), nil
	case *ast.StringLiteral:
		return g.lowerStringLiteral(v)
	case *ast.SizeofExpr:
		v.SetResolvedType(types.Int)
		v.SetLValue(false)
		return g.b.EmitConst(ir.I32, int64(g.ctx.SizeOf(v.Query))), nil
	case *ast.CastExpr:
		return g.lowerCast(v)
	case *ast.CallExpr:
		return g.lowerCall(v)
	default:
		return nil, fatal(fmt.Sprintf("%s: unknown expression kind %T", ast.ExprLoc(e), e))
	}
}

// lowerBinop lowers an arithmetic/bitwise/shift expression (§4.5).
func (g *Generator) lowerBinop(e *ast.BinopExpr) (ir.Value, error) {
	op, ok := arithOp(e.Op)
	if !ok {
		return nil, fmt.Errorf("%s: unknown binary operator %q", ast.ExprLoc(e), e.Op)
	}
	a, err := g.lowerRValue(e.A)
	if err != nil {
		return nil, err
	}
	b, err := g.lowerRValue(e.B)
	if err != nil {
		return nil, err
	}
	common, err := g.ctx.GetCommonType(e.A.ResolvedType(), e.B.ResolvedType())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ast.ExprLoc(e), err)
	}
	a, err = doCoerce(g.b, g.ctx, a, e.A.ResolvedType(), common, ast.ExprLoc(e.A))
	if err != nil {
		return nil, err
	}
	b, err = doCoerce(g.b, g.ctx, b, e.B.ResolvedType(), common, ast.ExprLoc(e.B))
	if err != nil {
		return nil, err
	}
	ty, err := getIRType(common, ast.ExprLoc(e))
	if err != nil {
		return nil, err
	}
	e.SetResolvedType(common)
	e.SetLValue(false)
	return g.b.EmitBinop(op, a, b, ty), nil
}

// arithOp maps a source operator token to the IR BinOp it lowers to, if
// it is one of the arithmetic/bitwise/shift operators in §3.
func arithOp(op string) (ir.BinOp, bool) {
	switch op {
	case "+":
		return ir.OpAdd, true
	case "-":
		return ir.OpSub, true
	case "*":
		return ir.OpMul, true
	case "/":
		return ir.OpDiv, true
	case "<<":
		return ir.OpLShift, true
	case ">>":
		return ir.OpRShift, true
	case "|":
		return ir.OpOr, true
	case "&":
		return ir.OpAnd, true
	default:
		return "", false
	}
}

// lowerUnary lowers unary "&" (address-of), the only legal unary operator
// (§4.5).
func (g *Generator) lowerUnary(e *ast.UnaryExpr) (ir.Value, error) {
	if e.Op != "&" {
		return nil, fmt.Errorf("%s: unknown unary operator %q", ast.ExprLoc(e), e.Op)
	}
	x, err := g.lowerExpr(e.X)
	if err != nil {
		return nil, err
	}
	if !e.X.IsLValue() {
		return nil, fmt.Errorf("%s: Cannot take address of non-lvalue", ast.ExprLoc(e))
	}
	e.SetResolvedType(&types.PointerType{PType: e.X.ResolvedType()})
	e.SetLValue(false)
	return x, nil
}

// lowerIdent resolves a bare identifier through the TypeContext (§4.5).
func (g *Generator) lowerIdent(e *ast.IdentExpr) (ir.Value, error) {
	sym, err := g.ctx.ResolveSymbol(e.Name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ast.ExprLoc(e), err)
	}
	switch s := sym.(type) {
	case *types.Variable:
		e.SetResolvedType(s.Typ)
		e.SetLValue(true)
		val, ok := g.syms.lookup(e.Name)
		if !ok {
			return nil, fmt.Errorf("%s: %s has no bound storage", ast.ExprLoc(e), e.Name)
		}
		return val, nil
	case *types.Constant:
		e.SetResolvedType(s.Typ)
		e.SetLValue(false)
		ty, err := getIRType(s.Typ, ast.ExprLoc(e))
		if err != nil {
			return nil, err
		}
		return g.b.EmitConst(ty, g.ctx.GetConstantValue(s)), nil
	default:
		return nil, fatal(fmt.Sprintf("%s: %s resolves to an unsupported symbol category", ast.ExprLoc(e), e.Name))
	}
}

// lowerDeref lowers a pointer dereference (§4.5). The load's IR type is
// derived from the pointer's own type rather than the pointee's: an
// observed, preserved-verbatim quirk of the original implementation (§9),
// not fixed here.
func (g *Generator) lowerDeref(e *ast.DerefExpr) (ir.Value, error) {
	addr, err := g.lowerRValue(e.Ptr)
	if err != nil {
		return nil, err
	}
	ptrTy, ok := e.Ptr.ResolvedType().(*types.PointerType)
	if !ok {
		return nil, fmt.Errorf("%s: cannot dereference non-pointer type %s", ast.ExprLoc(e), e.Ptr.ResolvedType())
	}
	loadTy, err := getIRType(ptrTy, ast.ExprLoc(e))
	if err != nil {
		return nil, err
	}
	e.SetResolvedType(ptrTy.PType)
	e.SetLValue(true)
	return g.b.EmitLoad(addr, loadTy), nil
}

// lowerMember lowers a struct field access (§4.5).
func (g *Generator) lowerMember(e *ast.MemberExpr) (ir.Value, error) {
	base, err := g.lowerExpr(e.Base)
	if err != nil {
		return nil, err
	}
	st, ok := g.ctx.TheType(e.Base.ResolvedType()).(*types.StructType)
	if !ok {
		return nil, fmt.Errorf("%s: non-struct member access on %s", ast.ExprLoc(e), e.Base.ResolvedType())
	}
	fieldTy, ok := st.FieldType(e.Field)
	if !ok {
		return nil, fmt.Errorf("%s: %s has no field %q", ast.ExprLoc(e), st, e.Field)
	}
	offset, _ := st.FieldOffset(e.Field)
	offC := g.b.EmitConst(ir.I32, int64(offset))
	offP := g.b.EmitIntToPtr(offC)
	sum := g.b.EmitAdd(base, offP, ir.Ptr)
	e.SetResolvedType(fieldTy)
	e.SetLValue(e.Base.IsLValue())
	return sum, nil
}

// lowerIndex lowers an array index (§4.5).
func (g *Generator) lowerIndex(e *ast.IndexExpr) (ir.Value, error) {
	base, err := g.lowerExpr(e.Base)
	if err != nil {
		return nil, err
	}
	if !e.Base.IsLValue() {
		return nil, fmt.Errorf("%s: indexing a non-l-value base", ast.ExprLoc(e))
	}
	idx, err := g.lowerRValue(e.Index)
	if err != nil {
		return nil, err
	}
	at, ok := g.ctx.TheType(e.Base.ResolvedType()).(*types.ArrayType)
	if !ok {
		return nil, fmt.Errorf("%s: non-array indexing on %s", ast.ExprLoc(e), e.Base.ResolvedType())
	}
	idx, err = doCoerce(g.b, g.ctx, idx, e.Index.ResolvedType(), types.Int, ast.ExprLoc(e.Index))
	if err != nil {
		return nil, err
	}
	elemSize := g.ctx.SizeOf(at.ElementType())
	sizeC := g.b.EmitConst(ir.I32, int64(elemSize))
	offI := g.b.EmitMul(idx, sizeC, ir.I32)
	offP := g.b.EmitIntToPtr(offI)
	sum := g.b.EmitAdd(base, offP, ir.Ptr)
	e.SetResolvedType(at.ElementType())
	e.SetLValue(true)
	return sum, nil
}

// lowerStringLiteral packs a string literal as
// [u32 length little-endian][ASCII bytes] (§6) and emits the Const plus
// the Addr producer. Per the preserved-verbatim open question (§9), the
// literal is never treated as an l-value, so makeRValue will return the
// Const directly rather than this Addr; the Addr is emitted but not
// returned, so no caller uses its result.
func (g *Generator) lowerStringLiteral(e *ast.StringLiteral) (ir.Value, error) {
	e.SetResolvedType(types.Str)
	e.SetLValue(false)
	packed := make([]byte, 4+len(e.Value))
	binary.LittleEndian.PutUint32(packed[:4], uint32(len(e.Value)))
	copy(packed[4:], e.Value)
	c := g.b.EmitConst(ir.I32, packed)
	g.b.EmitAddr(c)
	return c, nil
}

// lowerCast lowers an explicit cast (§4.5).
func (g *Generator) lowerCast(e *ast.CastExpr) (ir.Value, error) {
	val, err := g.lowerRValue(e.X)
	if err != nil {
		return nil, err
	}
	from := e.X.ResolvedType()
	to := e.To
	e.SetResolvedType(to)
	e.SetLValue(false)

	_, fromPtr := from.(*types.PointerType)
	_, toPtr := to.(*types.PointerType)
	_, fromInt := from.(types.IntType)
	_, toInt := to.(types.IntType)
	_, fromByte := from.(types.ByteType)
	_, toByte := to.(types.ByteType)

	switch {
	case fromPtr && toPtr:
		return val, nil
	case fromInt && toPtr:
		return g.b.EmitIntToPtr(val), nil
	case fromPtr && toInt:
		return g.b.EmitPtrToInt(val), nil
	case fromByte && toInt:
		return g.b.EmitByteToInt(val), nil
	case fromInt && toByte:
		return g.b.EmitIntToByte(val), nil
	default:
		return nil, fmt.Errorf("%s: Cannot cast %s to %s", ast.ExprLoc(e), from, to)
	}
}

// lowerCall lowers a function call (§4.5).
func (g *Generator) lowerCall(e *ast.CallExpr) (ir.Value, error) {
	sym, err := g.ctx.ResolveSymbol(e.Callee)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ast.ExprLoc(e), err)
	}
	fn, ok := sym.(*types.FunctionType)
	if !ok {
		return nil, fmt.Errorf("%s: %s is not a function", ast.ExprLoc(e), e.Callee)
	}
	mangled := mangle(fn.Package, fn.Name)
	if len(e.Args) != len(fn.Params) {
		return nil, fmt.Errorf("%s: %s requires %d arguments, %d given",
			ast.ExprLoc(e), mangled, len(fn.Params), len(e.Args))
	}
	args := make([]ir.Value, len(e.Args))
	for i, a := range e.Args {
		val, err := g.lowerRValue(a)
		if err != nil {
			return nil, err
		}
		if !g.ctx.EqualTypes(a.ResolvedType(), fn.Params[i]) {
			return nil, fmt.Errorf("%s: argument %d: cannot use %s as %s",
				ast.ExprLoc(a), i+1, a.ResolvedType(), fn.Params[i])
		}
		args[i] = val
	}
	e.SetResolvedType(fn.ReturnType)
	e.SetLValue(false)
	return g.b.EmitCall(mangled, args, ir.I32), nil
}
