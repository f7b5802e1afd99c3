package builder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gencode/src/irgen/ir"
)

// TestBuilderFunctionAndBlockCursor exercises prepare/new_function/
// new_block/set_block/emit per the consumed IRBuilder interface (§6).
func TestBuilderFunctionAndBlockCursor(t *testing.T) {
	b := New("m")
	require.Equal(t, "m", b.Module().Name)

	f := b.NewFunction("f", ir.I32)
	require.Same(t, f, b.Function())

	entry := b.NewBlock("entry")
	f.Entry = entry
	b.SetBlock(entry)
	require.Same(t, entry, b.Block())

	c := b.EmitConst(ir.I32, int64(1))
	require.Equal(t, "t1", c.Name())
	require.Len(t, entry.Instructions, 1)
}

// TestBuilderEmitPanicsWithoutOpenBlock checks the documented panic
// conditions: emitting with no current block signals a lowering-pass bug.
func TestBuilderEmitPanicsWithoutOpenBlock(t *testing.T) {
	b := New("m")
	b.NewFunction("f", ir.I32)

	require.Panics(t, func() {
		b.EmitConst(ir.I32, int64(1))
	})
}

// TestBuilderEmitTerminatorClosesBlock checks that emitting a terminator
// through Emit sets it rather than appending it to Instructions.
func TestBuilderEmitTerminatorClosesBlock(t *testing.T) {
	b := New("m")
	f := b.NewFunction("f", ir.I32)
	entry := b.NewBlock("entry")
	f.Entry = entry
	b.SetBlock(entry)

	j := b.EmitJump(f.Epilogue)
	require.True(t, entry.Terminated())
	require.Same(t, j, entry.Term)
	require.Empty(t, entry.Instructions)
}

// TestBuilderFreshNamesAreUniquePerFunction checks that successive emits
// mint distinct, increasing debug names within one function.
func TestBuilderFreshNamesAreUniquePerFunction(t *testing.T) {
	b := New("m")
	f := b.NewFunction("f", ir.I32)
	entry := b.NewBlock("entry")
	f.Entry = entry
	b.SetBlock(entry)

	a := b.EmitConst(ir.I32, int64(1))
	c := b.EmitConst(ir.I32, int64(2))
	require.NotEqual(t, a.Name(), c.Name())
	require.Equal(t, "t1", a.Name())
	require.Equal(t, "t2", c.Name())
}
