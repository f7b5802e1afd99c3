// Package builder implements the IRBuilder: the cursor over (module,
// function, block) that the lowering passes drive, and the append/emit
// operations that attach instructions to the block currently open (§6).
//
// The IRBuilder's cursor is process-local mutable state bounded by a
// single gencode call (§5); it carries no synchronisation because the
// code generator is strictly single-threaded.
package builder

import (
	"fmt"

	"gencode/src/diag"
	"gencode/src/irgen/ir"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// labelValue prefixes every builder-generated producer's debug name, as
// vslc's own "t"-prefixed data-instruction labels do.
const labelValue = "t"

// Builder is the IRBuilder (§6): it holds the current module, the current
// function and the current block, plus the current source location used
// to tag diagnostics raised by callers while this cursor position is
// active.
type Builder struct {
	m   *ir.Module
	fn  *ir.Function
	blk *ir.BasicBlock
	loc diag.Location
}

// New returns a Builder with its module cursor prepared, per "prepare()".
func New(moduleName string) *Builder {
	b := &Builder{}
	b.Prepare(moduleName)
	return b
}

// ---------------------
// ----- Functions -----
// ---------------------

// Prepare (re)initialises b's module cursor to a fresh, empty Module
// named name. Function and block cursors are cleared.
func (b *Builder) Prepare(name string) {
	b.m = ir.NewModule(name)
	b.fn = nil
	b.blk = nil
}

// Module returns the module currently under construction.
func (b *Builder) Module() *ir.Module {
	return b.m
}

// AddVariable appends a global Variable of size bytes to the current
// module.
func (b *Builder) AddVariable(name string, size int) *ir.Variable {
	return b.m.AddVariable(name, size)
}

// NewFunction creates a new IR Function named name, appends it to the
// current module, and sets it as the current function. Its epilogue
// block exists but is not yet appended to its block list (§4.2): the
// function lowerer appends the epilogue once the body has been lowered.
func (b *Builder) NewFunction(name string, returnType ir.Type) *ir.Function {
	f := ir.NewFunction(name, returnType)
	b.m.AddFunction(f)
	b.fn = f
	return f
}

// SetFunction switches the current function cursor to f.
func (b *Builder) SetFunction(f *ir.Function) {
	b.fn = f
}

// Function returns the function currently under construction.
func (b *Builder) Function() *ir.Function {
	return b.fn
}

// NewBlock allocates a fresh BasicBlock in the current function, appends
// it and does NOT switch the cursor to it; callers call SetBlock
// explicitly once ready to emit into it. prefix names the block for
// debugging ("T", "F", "J", "test", "body", "done", ...).
func (b *Builder) NewBlock(prefix string) *ir.BasicBlock {
	if b.fn == nil {
		panic("builder: NewBlock with no current function")
	}
	return b.fn.NewBlock(prefix)
}

// SetBlock switches the current block cursor to blk.
func (b *Builder) SetBlock(blk *ir.BasicBlock) {
	b.blk = blk
}

// Block returns the block currently open for appends.
func (b *Builder) Block() *ir.BasicBlock {
	return b.blk
}

// SetLoc updates the current source location tag.
func (b *Builder) SetLoc(loc diag.Location) {
	b.loc = loc
}

// Loc returns the current source location tag.
func (b *Builder) Loc() diag.Location {
	return b.loc
}

// Emit appends instruction i to the current block and returns it
// unchanged, matching "emit(instruction) -> instruction" (§6). It panics
// if there is no open block or the open block is already terminated,
// since that signals a lowering-pass bug, not a recoverable source error.
func (b *Builder) Emit(i ir.Instruction) ir.Instruction {
	if b.blk == nil {
		panic("builder: emit with no current block")
	}
	if t, ok := i.(ir.Terminator); ok {
		b.blk.SetTerminator(t)
		return i
	}
	b.blk.Append(i)
	return i
}

// freshName returns the next "t<n>"-style debug name in the current
// function.
func (b *Builder) freshName() (int, string) {
	id := b.fn.NextID()
	return id, fmt.Sprintf("%s%d", labelValue, id)
}
