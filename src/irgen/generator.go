package irgen

import (
	"gencode/src/diag"
	"gencode/src/irgen/builder"
	"gencode/src/types"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Generator holds the state threaded through a single gencode invocation:
// the IRBuilder cursor, the TypeContext, the Diagnostics sink and the
// symbol map. It is process-local and single-use, matching §5's
// single-threaded, synchronous execution model.
type Generator struct {
	b    *builder.Builder
	ctx  *types.Context
	sink *diag.Sink
	syms *symbolMap
	pkg  string
}

// newGenerator returns a Generator ready to lower the named module's
// functions against ctx, reporting errors to sink.
func newGenerator(pkg, moduleName string, ctx *types.Context, sink *diag.Sink) *Generator {
	return &Generator{
		b:    builder.New(moduleName),
		ctx:  ctx,
		sink: sink,
		syms: &symbolMap{},
		pkg:  pkg,
	}
}
