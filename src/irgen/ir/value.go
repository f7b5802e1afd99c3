package ir

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Value is a producer instruction: one that yields a typed SSA value with
// a debug name (§3). Every producer variant (Const, Alloc, Load, Binop,
// Add, Mul, the cast family, Addr, Call) implements it, as does Parameter.
type Value interface {
	Id() int
	Name() string
	Type() Type
	String() string
	isInstruction()
}

// Instruction is any IR instruction: a producer Value, a Store (consumer
// only) or a terminator (Jump, CJump, Return).
type Instruction interface {
	isInstruction()
}

// Terminator is the instruction kind every BasicBlock must end with
// exactly one of.
type Terminator interface {
	Instruction
	isTerminator()
}

// valueBase carries the identity fields shared by every producer.
type valueBase struct {
	id  int
	ty  Type
	nm  string
}

func (v *valueBase) Id() int      { return v.id }
func (v *valueBase) Name() string { return v.nm }
func (v *valueBase) Type() Type   { return v.ty }

func (*valueBase) isInstruction() {}
