package irgen

import (
	"fmt"

	"gencode/src/diag"
	"gencode/src/irgen/builder"
	"gencode/src/irgen/ir"
	"gencode/src/types"
)

// ---------------------
// ----- Functions -----
// ---------------------

// doCoerce lowers val (of source type from) into the wanted source type
// to, at loc (§4.6). Equal types pass through unchanged; int -> pointer
// emits an IntToPtr; anything else is an error.
func doCoerce(b *builder.Builder, ctx *types.Context, val ir.Value, from, to types.Type, loc diag.Location) (ir.Value, error) {
	if ctx.EqualTypes(from, to) {
		return val, nil
	}
	if _, fromInt := from.(types.IntType); fromInt {
		if _, toPtr := to.(*types.PointerType); toPtr {
			return b.EmitIntToPtr(val), nil
		}
	}
	return nil, fmt.Errorf("%s: Cannot use %s as %s", loc, from, to)
}
