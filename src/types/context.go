package types

import "fmt"

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Context implements the TypeContext interface consumed by the code
// generator (§6): type equality, sizing, canonicalisation, symbol
// resolution and constant evaluation, backed by a Scope.
type Context struct {
	scope *Scope
}

// NewContext returns a Context backed by scope.
func NewContext(scope *Scope) *Context {
	return &Context{scope: scope}
}

// ---------------------
// ----- Functions -----
// ---------------------

// CheckType raises a semantic error (returned, not panicked, per this
// module's error-as-value convention) if t is ill-formed: a struct type
// whose field types are themselves ill-formed, or an array/pointer whose
// element type is ill-formed.
func (c *Context) CheckType(t Type) error {
	switch v := t.(type) {
	case *PointerType:
		return c.CheckType(v.PType)
	case *ArrayType:
		return c.CheckType(v.ElemType)
	case *StructType:
		for _, f := range v.Fields {
			if err := c.CheckType(f.Typ); err != nil {
				return err
			}
		}
	}
	return nil
}

// sizeOf is the byte size of t under sequential, unpadded layout.
func sizeOf(t Type) int {
	switch v := t.(type) {
	case IntType:
		return 4
	case DoubleType:
		return 8
	case BoolType:
		return 4
	case ByteType:
		return 1
	case StringType:
		return 4 // a string rvalue is its packed constant's address.
	case *PointerType:
		return 4
	case *ArrayType:
		return sizeOf(v.ElemType) * v.Length
	case *StructType:
		total := 0
		for _, f := range v.Fields {
			total += sizeOf(f.Typ)
		}
		return total
	}
	return 0
}

// SizeOf returns the byte size of t.
func (c *Context) SizeOf(t Type) int {
	return sizeOf(t)
}

// TheType follows named-type aliases in scope to their canonical
// definition. If name is not itself an alias, t is returned unchanged.
func (c *Context) TheType(t Type) Type {
	if s, ok := t.(*StructType); ok {
		if canon, ok := c.scope.LookupType(s.Name); ok {
			return canon
		}
	}
	return t
}

// EqualTypes reports whether a and b denote the same source type.
func (c *Context) EqualTypes(a, b Type) bool {
	a, b = c.TheType(a), c.TheType(b)
	switch av := a.(type) {
	case IntType:
		_, ok := b.(IntType)
		return ok
	case DoubleType:
		_, ok := b.(DoubleType)
		return ok
	case BoolType:
		_, ok := b.(BoolType)
		return ok
	case ByteType:
		_, ok := b.(ByteType)
		return ok
	case StringType:
		_, ok := b.(StringType)
		return ok
	case *PointerType:
		bv, ok := b.(*PointerType)
		return ok && c.EqualTypes(av.PType, bv.PType)
	case *ArrayType:
		bv, ok := b.(*ArrayType)
		return ok && av.Length == bv.Length && c.EqualTypes(av.ElemType, bv.ElemType)
	case *StructType:
		bv, ok := b.(*StructType)
		return ok && av.Name == bv.Name
	}
	return false
}

// GetCommonType returns the source type a binop between two operands of
// type a and b should be computed at, following the source language's
// implicit promotion: double dominates, otherwise the types must already
// agree.
func (c *Context) GetCommonType(a, b Type) (Type, error) {
	a, b = c.TheType(a), c.TheType(b)
	if _, ok := a.(DoubleType); ok {
		return Double, nil
	}
	if _, ok := b.(DoubleType); ok {
		return Double, nil
	}
	if c.EqualTypes(a, b) {
		return a, nil
	}
	return nil, fmt.Errorf("Types unequal")
}

// ResolveSymbol resolves ident to the Variable, Constant or Function it
// names.
func (c *Context) ResolveSymbol(ident string) (Symbol, error) {
	sym, ok := c.scope.Lookup(ident)
	if !ok {
		return nil, fmt.Errorf("unresolved symbol %q", ident)
	}
	return sym, nil
}

// GetConstantValue returns the literal value bound to a Constant symbol.
func (c *Context) GetConstantValue(sym *Constant) interface{} {
	return sym.Value
}

// Scope exposes the backing scope, e.g. for scope[name] named-type
// lookups (§6).
func (c *Context) Scope() *Scope {
	return c.scope
}
