// Package ast defines the abstract syntax tree consumed by the code
// generator. Lexing, parsing and semantic analysis that produce this tree
// are out of scope (§1); this package only carries the shape the lowering
// passes pattern-match on, expressed as an interface plus a closed set of
// concrete node types rather than one generic tagged struct, matching the
// idiom used throughout this code base's IR packages.
package ast

import (
	"gencode/src/diag"
	"gencode/src/types"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Module is a whole translation unit: named type declarations, global
// variables and functions.
type Module struct {
	Name      string
	Types     []TypeDecl
	Globals   []*VarDecl
	Functions []*FuncDecl
}

// TypeDecl is a module-scope named type declaration.
type TypeDecl struct {
	Name string
	Typ  types.Type
	Loc  diag.Location
}

// VarDecl is a variable: a global, a local, or a parameter, distinguished
// by IsLocal/IsParameter.
type VarDecl struct {
	Name        string
	Typ         types.Type
	IsLocal     bool
	IsParameter bool
	Loc         diag.Location
}

// FuncDecl is a function declaration. Body is nil for an extern
// (declaration-only) function; the Driver skips those (§4.1 step 2).
type FuncDecl struct {
	Package    string
	Name       string
	Params     []*VarDecl
	ReturnType types.Type
	Locals     []*VarDecl
	Body       Stmt
	Loc        diag.Location
}
