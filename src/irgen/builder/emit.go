package builder

import "gencode/src/irgen/ir"

// ---------------------
// ----- Functions -----
// ---------------------

// Per-instruction emit helpers: each mints a fresh function-local name via
// freshName, constructs the instruction, appends it to the current block
// through Emit, and returns the typed producer so lowering code can chain
// it as an operand without a type assertion.

func (b *Builder) EmitConst(ty ir.Type, value interface{}) *ir.Const {
	id, name := b.freshName()
	c := ir.NewConst(id, name, ty, value)
	b.Emit(c)
	return c
}

func (b *Builder) EmitAlloc(bytes int) *ir.Alloc {
	id, name := b.freshName()
	a := ir.NewAlloc(id, name, bytes)
	b.Emit(a)
	return a
}

func (b *Builder) EmitLoad(addr ir.Value, ty ir.Type) *ir.Load {
	id, name := b.freshName()
	l := ir.NewLoad(id, name, addr, ty)
	b.Emit(l)
	return l
}

func (b *Builder) EmitBinop(op ir.BinOp, lhs, rhs ir.Value, ty ir.Type) *ir.Binop {
	id, name := b.freshName()
	v := ir.NewBinop(id, name, op, lhs, rhs, ty)
	b.Emit(v)
	return v
}

func (b *Builder) EmitAdd(a, c ir.Value, ty ir.Type) *ir.Add {
	id, name := b.freshName()
	v := ir.NewAdd(id, name, a, c, ty)
	b.Emit(v)
	return v
}

func (b *Builder) EmitMul(a, c ir.Value, ty ir.Type) *ir.Mul {
	id, name := b.freshName()
	v := ir.NewMul(id, name, a, c, ty)
	b.Emit(v)
	return v
}

func (b *Builder) EmitIntToPtr(x ir.Value) *ir.IntToPtr {
	id, name := b.freshName()
	v := ir.NewIntToPtr(id, name, x)
	b.Emit(v)
	return v
}

func (b *Builder) EmitPtrToInt(x ir.Value) *ir.PtrToInt {
	id, name := b.freshName()
	v := ir.NewPtrToInt(id, name, x)
	b.Emit(v)
	return v
}

func (b *Builder) EmitByteToInt(x ir.Value) *ir.ByteToInt {
	id, name := b.freshName()
	v := ir.NewByteToInt(id, name, x)
	b.Emit(v)
	return v
}

func (b *Builder) EmitIntToByte(x ir.Value) *ir.IntToByte {
	id, name := b.freshName()
	v := ir.NewIntToByte(id, name, x)
	b.Emit(v)
	return v
}

func (b *Builder) EmitAddr(of ir.Value) *ir.Addr {
	id, name := b.freshName()
	v := ir.NewAddr(id, name, of)
	b.Emit(v)
	return v
}

func (b *Builder) EmitCall(callee string, args []ir.Value, ty ir.Type) *ir.Call {
	id, name := b.freshName()
	v := ir.NewCall(id, name, callee, args, ty)
	b.Emit(v)
	return v
}

func (b *Builder) EmitStore(val, addr ir.Value, volatile bool) *ir.Store {
	s := ir.NewStore(val, addr, volatile)
	b.Emit(s)
	return s
}

func (b *Builder) EmitJump(target *ir.BasicBlock) *ir.Jump {
	j := ir.NewJump(target)
	b.Emit(j)
	return j
}

func (b *Builder) EmitCJump(lhs, rhs ir.Value, op ir.CmpOp, t, f *ir.BasicBlock) *ir.CJump {
	c := ir.NewCJump(lhs, rhs, op, t, f)
	b.Emit(c)
	return c
}

func (b *Builder) EmitReturn(val ir.Value) *ir.Return {
	r := ir.NewReturn(val)
	b.Emit(r)
	return r
}
