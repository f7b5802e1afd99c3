// Package irgen implements the code generator's driving logic: per-module
// orchestration (the Driver, §4.1), the function and statement lowerers
// (§4.2–§4.3), the conditional lowerer (§4.4), the expression lowerer
// (§4.5), coercion (§4.6) and type lowering (§4.7).
package irgen

import (
	"gencode/src/ast"
	"gencode/src/diag"
	"gencode/src/irgen/ir"
	"gencode/src/types"
)

// ---------------------
// ----- Functions -----
// ---------------------

// Gencode lowers module against ctx into a finalized IR Module (§4.1). It
// fails with a *diag.SemanticError after every recoverable error has been
// reported to sink if any occurred during lowering.
func Gencode(module *ast.Module, ctx *types.Context, sink *diag.Sink) (*ir.Module, error) {
	g := newGenerator(module.Name, module.Name, ctx, sink)

	// Step 1: type-check every top-level type declaration.
	for _, td := range module.Types {
		if err := ctx.CheckType(td.Typ); err != nil {
			sink.Error(err.Error(), td.Loc)
		}
	}

	// Module-wide scope: globals live here, visible to every function.
	g.syms.push()
	defer g.syms.pop()

	// Step 2: create a shell (IR Function, entry block open) for every
	// function that carries a body.
	shells := make(map[*ast.FuncDecl]*ir.Function, len(module.Functions))
	for _, fn := range module.Functions {
		if fn.Body == nil {
			continue
		}
		f, err := g.createFunctionShell(fn)
		if err != nil {
			sink.Error(err.Error(), fn.Loc)
			continue
		}
		shells[fn] = f
	}

	// Step 3: append every global variable and bind it in the symbol map.
	for _, gv := range module.Globals {
		size := ctx.SizeOf(gv.Typ)
		v := g.b.AddVariable(gv.Name, size)
		g.syms.bind(gv.Name, v)
	}

	// Step 4: lower each function's body against its shell.
	for _, fn := range module.Functions {
		f, ok := shells[fn]
		if !ok {
			continue
		}
		if err := g.lowerFunctionBody(f, fn); err != nil {
			return nil, err
		}
	}

	// Step 5: signal overall failure if any error was recorded.
	if sink.Invalid() {
		return nil, diag.NewSemanticError("Errors occurred")
	}
	return g.b.Module(), nil
}
