package ir

// ---------------------
// ----- Functions -----
// ---------------------

// Constructors for every producer instruction. id and name are assigned
// by the caller (the builder, via Function.NextID) so that this package
// never needs a Function back-reference to mint identities.

func NewConst(id int, name string, ty Type, value interface{}) *Const {
	return &Const{valueBase: valueBase{id: id, ty: ty, nm: name}, Value: value}
}

func NewAlloc(id int, name string, bytes int) *Alloc {
	return &Alloc{valueBase: valueBase{id: id, ty: Ptr, nm: name}, Bytes: bytes}
}

func NewLoad(id int, name string, addr Value, ty Type) *Load {
	return &Load{valueBase: valueBase{id: id, ty: ty, nm: name}, Addr: addr}
}

func NewBinop(id int, name string, op BinOp, lhs, rhs Value, ty Type) *Binop {
	return &Binop{valueBase: valueBase{id: id, ty: ty, nm: name}, Op: op, LHS: lhs, RHS: rhs}
}

func NewAdd(id int, name string, a, b Value, ty Type) *Add {
	return &Add{valueBase: valueBase{id: id, ty: ty, nm: name}, A: a, B: b}
}

func NewMul(id int, name string, a, b Value, ty Type) *Mul {
	return &Mul{valueBase: valueBase{id: id, ty: ty, nm: name}, A: a, B: b}
}

func NewIntToPtr(id int, name string, x Value) *IntToPtr {
	return &IntToPtr{valueBase: valueBase{id: id, ty: Ptr, nm: name}, X: x}
}

func NewPtrToInt(id int, name string, x Value) *PtrToInt {
	return &PtrToInt{valueBase: valueBase{id: id, ty: I32, nm: name}, X: x}
}

func NewByteToInt(id int, name string, x Value) *ByteToInt {
	return &ByteToInt{valueBase: valueBase{id: id, ty: I32, nm: name}, X: x}
}

func NewIntToByte(id int, name string, x Value) *IntToByte {
	return &IntToByte{valueBase: valueBase{id: id, ty: I8, nm: name}, X: x}
}

func NewAddr(id int, name string, of Value) *Addr {
	return &Addr{valueBase: valueBase{id: id, ty: I32, nm: name}, Of: of}
}

func NewCall(id int, name, callee string, args []Value, ty Type) *Call {
	return &Call{valueBase: valueBase{id: id, ty: ty, nm: name}, Callee: callee, Args: args}
}

func NewStore(val, addr Value, volatile bool) *Store {
	return &Store{Val: val, Addr: addr, Volatile: volatile}
}

func NewJump(target *BasicBlock) *Jump {
	return &Jump{Target: target}
}

func NewCJump(lhs, rhs Value, op CmpOp, t, f *BasicBlock) *CJump {
	return &CJump{LHS: lhs, RHS: rhs, Op: op, True: t, False: f}
}

func NewReturn(val Value) *Return {
	return &Return{Val: val}
}
