package irgen

import (
	"fmt"

	"gencode/src/diag"
	"gencode/src/irgen/ir"
	"gencode/src/types"
)

// ---------------------
// ----- Functions -----
// ---------------------

// getIRType lowers a source type to an IR type (§4.7): int -> i32,
// bool -> i32, double -> i32 (a placeholder; true floating point is a
// known deficiency kept visible rather than fixed, §9), byte -> i8, any
// pointer type -> ptr. Any other source type is not lowerable and is
// reported against loc.
func getIRType(t types.Type, loc diag.Location) (ir.Type, error) {
	switch t.(type) {
	case types.IntType:
		return ir.I32, nil
	case types.BoolType:
		return ir.I32, nil
	case types.DoubleType:
		// Known deficiency (§4.7, §9): double does not yet lower to a
		// real floating-point IR type.
		return ir.I32, nil
	case types.ByteType:
		return ir.I8, nil
	case *types.PointerType:
		return ir.Ptr, nil
	default:
		return 0, fmt.Errorf("%s: cannot lower type %s", loc, t)
	}
}
