// Package types implements the source-language type system consulted by
// the code generator through a TypeContext: type equality, sizing, field
// and element layout, symbol resolution and constant evaluation.
package types

import "fmt"

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Type is the closed set of source-language types. Every concrete type in
// this package implements it.
type Type interface {
	String() string
	isType()
}

// IntType is the source language's signed 32-bit integer type.
type IntType struct{}

// DoubleType is the source language's floating-point type.
type DoubleType struct{}

// BoolType is the source language's boolean type.
type BoolType struct{}

// ByteType is the source language's 8-bit scalar type.
type ByteType struct{}

// StringType is the type of a string literal.
type StringType struct{}

// PointerType is a pointer to PType.
type PointerType struct {
	PType Type
}

// Field is a single member of a StructType, laid out sequentially.
type Field struct {
	Name string
	Typ  Type
}

// StructType is a named aggregate of sequentially laid out Fields, with no
// alignment padding: the simplest layout rule consistent with a
// from-scratch struct with no ABI to match.
type StructType struct {
	Name   string
	Fields []Field
}

// ArrayType is a fixed-length array of ElemType.
type ArrayType struct {
	ElemType Type
	Length   int
}

// FunctionType is the signature of a callable symbol: its declaring
// package, its parameter types in order, and its return type.
type FunctionType struct {
	Package    string
	Name       string
	Params     []Type
	ReturnType Type
}

func (IntType) isType()      {}
func (DoubleType) isType()   {}
func (BoolType) isType()     {}
func (ByteType) isType()     {}
func (StringType) isType()   {}
func (*PointerType) isType() {}
func (*StructType) isType()  {}
func (*ArrayType) isType()   {}
func (*FunctionType) isType() {}

func (IntType) String() string    { return "int" }
func (DoubleType) String() string { return "double" }
func (BoolType) String() string   { return "bool" }
func (ByteType) String() string   { return "byte" }
func (StringType) String() string { return "string" }

func (p *PointerType) String() string {
	return fmt.Sprintf("*%s", p.PType)
}

func (s *StructType) String() string {
	return s.Name
}

func (a *ArrayType) String() string {
	return fmt.Sprintf("[%d]%s", a.Length, a.ElemType)
}

func (f *FunctionType) String() string {
	return fmt.Sprintf("%s.%s", f.Package, f.Name)
}

// ---------------------
// ----- Constants -----
// ---------------------

// Reserved scalar type handles, as named by §6 of the consumed TypeContext
// interface (intType, doubleType, boolType, byteType).
var (
	Int    Type = IntType{}
	Double Type = DoubleType{}
	Bool   Type = BoolType{}
	Byte   Type = ByteType{}
	Str    Type = StringType{}
)

// HasField reports whether s declares a field named name, returning it.
func (s *StructType) HasField(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// FieldType returns the type of field name; ok is false if no such field
// exists.
func (s *StructType) FieldType(name string) (Typ Type, ok bool) {
	f, ok := s.HasField(name)
	if !ok {
		return nil, false
	}
	return f.Typ, true
}

// FieldOffset returns the byte offset of field name within s, computed by
// the same sequential, unpadded layout SizeOf uses. ok is false if no such
// field exists.
func (s *StructType) FieldOffset(name string) (offset int, ok bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return offset, true
		}
		offset += sizeOf(f.Typ)
	}
	return 0, false
}

// ElementType returns the array's element type.
func (a *ArrayType) ElementType() Type {
	return a.ElemType
}
