package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSizeOfScalars checks the fixed byte sizes every scalar type lowers
// under the sequential, unpadded layout rule.
func TestSizeOfScalars(t *testing.T) {
	ctx := NewContext(NewScope())

	tests := []struct {
		name string
		typ  Type
		want int
	}{
		{"int", Int, 4},
		{"double", Double, 8},
		{"bool", Bool, 4},
		{"byte", Byte, 1},
		{"string", Str, 4},
		{"pointer", &PointerType{PType: Int}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ctx.SizeOf(tt.typ))
		})
	}
}

// TestSizeOfAggregate checks arrays and structs size by summing/multiplying
// their element types, with no alignment padding.
func TestSizeOfAggregate(t *testing.T) {
	ctx := NewContext(NewScope())

	arr := &ArrayType{ElemType: Int, Length: 3}
	require.Equal(t, 12, ctx.SizeOf(arr))

	st := &StructType{
		Name: "Point",
		Fields: []Field{
			{Name: "x", Typ: Int},
			{Name: "y", Typ: Int},
			{Name: "flag", Typ: Byte},
		},
	}
	require.Equal(t, 9, ctx.SizeOf(st))
}

// TestStructFieldOffset checks sequential unpadded field layout.
func TestStructFieldOffset(t *testing.T) {
	st := &StructType{
		Name: "Point",
		Fields: []Field{
			{Name: "x", Typ: Int},
			{Name: "y", Typ: Int},
			{Name: "flag", Typ: Byte},
		},
	}

	off, ok := st.FieldOffset("x")
	require.True(t, ok)
	require.Equal(t, 0, off)

	off, ok = st.FieldOffset("y")
	require.True(t, ok)
	require.Equal(t, 4, off)

	off, ok = st.FieldOffset("flag")
	require.True(t, ok)
	require.Equal(t, 8, off)

	_, ok = st.FieldOffset("missing")
	require.False(t, ok)
}

// TestEqualTypes checks structural equality, including recursive pointer
// and array comparisons.
func TestEqualTypes(t *testing.T) {
	ctx := NewContext(NewScope())

	require.True(t, ctx.EqualTypes(Int, Int))
	require.False(t, ctx.EqualTypes(Int, Double))

	p1 := &PointerType{PType: Int}
	p2 := &PointerType{PType: Int}
	require.True(t, ctx.EqualTypes(p1, p2))

	p3 := &PointerType{PType: Byte}
	require.False(t, ctx.EqualTypes(p1, p3))

	a1 := &ArrayType{ElemType: Int, Length: 4}
	a2 := &ArrayType{ElemType: Int, Length: 4}
	a3 := &ArrayType{ElemType: Int, Length: 5}
	require.True(t, ctx.EqualTypes(a1, a2))
	require.False(t, ctx.EqualTypes(a1, a3))
}

// TestGetCommonTypeDoubleDominates checks that a binop involving a double
// operand always resolves to double, per §4.5/§4.6.
func TestGetCommonTypeDoubleDominates(t *testing.T) {
	ctx := NewContext(NewScope())

	common, err := ctx.GetCommonType(Double, Int)
	require.NoError(t, err)
	require.Equal(t, Double, common)

	common, err = ctx.GetCommonType(Int, Double)
	require.NoError(t, err)
	require.Equal(t, Double, common)
}

// TestGetCommonTypeRequiresEquality checks that mismatched non-double types
// fail with "Types unequal", per §4.4's comparison rule.
func TestGetCommonTypeRequiresEquality(t *testing.T) {
	ctx := NewContext(NewScope())

	_, err := ctx.GetCommonType(Int, Byte)
	require.EqualError(t, err, "Types unequal")

	common, err := ctx.GetCommonType(Int, Int)
	require.NoError(t, err)
	require.Equal(t, Int, common)
}

// TestResolveSymbol checks lookup against a populated Scope.
func TestResolveSymbol(t *testing.T) {
	scope := NewScope()
	scope.Declare("x", &Variable{Name: "x", Typ: Int, IsGlobal: true})
	ctx := NewContext(scope)

	sym, err := ctx.ResolveSymbol("x")
	require.NoError(t, err)
	v, ok := sym.(*Variable)
	require.True(t, ok)
	require.Equal(t, Int, v.Typ)

	_, err = ctx.ResolveSymbol("missing")
	require.Error(t, err)
}

// TestTheTypeFollowsNamedAlias checks struct alias resolution through the
// Scope's named-type table.
func TestTheTypeFollowsNamedAlias(t *testing.T) {
	scope := NewScope()
	canon := &StructType{Name: "Point", Fields: []Field{{Name: "x", Typ: Int}}}
	scope.DeclareType("Point", canon)
	ctx := NewContext(scope)

	alias := &StructType{Name: "Point"}
	require.Same(t, canon, ctx.TheType(alias))
}
