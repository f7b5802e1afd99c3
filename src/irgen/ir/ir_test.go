package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// TestBlockAppendAfterTerminatePanics checks the invariant that a
// terminated block rejects further instructions, the structural rule
// §8 property 1's "exactly one terminator" depends on.
func TestBlockAppendAfterTerminatePanics(t *testing.T) {
	b := &BasicBlock{Name: "entry"}
	b.SetTerminator(NewJump(&BasicBlock{Name: "next"}))

	require.Panics(t, func() {
		b.Append(NewConst(1, "t1", I32, int64(1)))
	})
	require.Panics(t, func() {
		b.SetTerminator(NewReturn(nil))
	})
}

// TestBlockValidateRequiresTerminator checks §8 property 1.
func TestBlockValidateRequiresTerminator(t *testing.T) {
	b := &BasicBlock{Name: "entry"}
	require.Error(t, b.Validate())

	b.SetTerminator(NewReturn(nil))
	require.NoError(t, b.Validate())
}

// TestBlockSuccessors checks the successor sets Jump and CJump expose.
func TestBlockSuccessors(t *testing.T) {
	target := &BasicBlock{Name: "target"}
	b := &BasicBlock{Name: "entry"}
	b.SetTerminator(NewJump(target))
	require.Equal(t, []*BasicBlock{target}, b.Successors())

	t1 := &BasicBlock{Name: "T"}
	f1 := &BasicBlock{Name: "F"}
	b2 := &BasicBlock{Name: "test"}
	b2.SetTerminator(NewCJump(NewConst(1, "t1", I32, int64(1)), NewConst(2, "t2", I32, int64(2)), CmpLt, t1, f1))
	require.Equal(t, []*BasicBlock{t1, f1}, b2.Successors())
}

// TestFunctionEntryMustBeFirstBlock checks the §3 invariant that the entry
// block is the first appended block.
func TestFunctionEntryMustBeFirstBlock(t *testing.T) {
	f := NewFunction("f", I32)
	entry := f.NewBlock("entry")
	f.Entry = entry
	entry.SetTerminator(NewJump(f.Epilogue))
	f.AppendBlock(f.Epilogue)
	f.Epilogue.SetTerminator(NewReturn(nil))

	require.NoError(t, f.Validate())
	require.Same(t, entry, f.Blocks[0])
}

// TestFunctionValidateRejectsUnterminatedBlock propagates block-level
// validation failures.
func TestFunctionValidateRejectsUnterminatedBlock(t *testing.T) {
	f := NewFunction("f", I32)
	f.Entry = f.NewBlock("entry")
	require.Error(t, f.Validate())
}

// TestModuleValidate checks that a well-formed module (every function
// terminated) validates cleanly.
func TestModuleValidate(t *testing.T) {
	m := NewModule("m")
	f := NewFunction("f", I32)
	f.Entry = f.NewBlock("entry")
	f.Entry.SetTerminator(NewJump(f.Epilogue))
	f.AppendBlock(f.Epilogue)
	f.Epilogue.SetTerminator(NewReturn(nil))
	m.AddFunction(f)

	require.NoError(t, m.Validate())
}

// TestVariableIsValue checks that a global Variable satisfies the Value
// interface, typed Ptr, so it can be used directly as a Store/Load operand.
func TestVariableIsValue(t *testing.T) {
	m := NewModule("m")
	v := m.AddVariable("g", 4)

	var asValue Value = v
	require.Equal(t, Ptr, asValue.Type())
	require.Equal(t, "g", asValue.Name())
}

// TestBlockStructuralEquality uses go-cmp to diff two independently
// constructed basic blocks, ignoring Const's embedded valueBase
// bookkeeping fields, the way ailang's golden-file tests diff rendered
// output.
func TestBlockStructuralEquality(t *testing.T) {
	build := func() *BasicBlock {
		b := &BasicBlock{Name: "entry"}
		c := NewConst(1, "t1", I32, int64(42))
		b.Append(c)
		b.SetTerminator(NewReturn(c))
		return b
	}
	opts := cmpopts.IgnoreUnexported(Const{})

	a, c := build(), build()
	if diff := cmp.Diff(a, c, opts); diff != "" {
		t.Errorf("identically constructed blocks differ (-want +got):\n%s", diff)
	}

	other := build()
	other.Instructions[0].(*Const).Value = int64(7)
	if diff := cmp.Diff(a, other, opts); diff == "" {
		t.Error("expected a diff between blocks with different constant values, got none")
	}
}

// TestTypeString checks the fixed IR scalar type name table.
func TestTypeString(t *testing.T) {
	require.Equal(t, "i32", I32.String())
	require.Equal(t, "ptr", Ptr.String())
	require.Equal(t, "f64", F64.String())
	require.Equal(t, "i8", I8.String())
}
