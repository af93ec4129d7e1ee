// Package serialize renders internal/ir expressions and types to the target
// transition-system syntax, under a primed/unprimed rendering mode. It is
// the idiomatic-Go analogue of the teacher's pkg/cmd/verify/picus/pcl (the
// Expr/Lisp() rendering side of a Picus translator) and
// pkg/ir/mir/translate_to_picus.go's lowerTerm dispatch, retargeted from
// S-expression output to the curly-brace transition-system syntax this
// translator emits.
package serialize

import (
	"fmt"

	"github.com/ekiwi/firrtl-uclid/internal/ir"
	"github.com/ekiwi/firrtl-uclid/internal/txerror"
)

// TypeString renders t per spec.md §4.2: width-1 values are boolean-coerced
// (regardless of signedness -- signedness lives in the operator, never in
// the declared type), wider unsigned/signed values render as "bv<w>", and
// Clock must never reach here (its presence is a classifier bug).
func TypeString(t ir.Type) (string, error) {
	switch {
	case t.IsClock():
		return "", txerror.New(txerror.UnsupportedExpression, "", "clock type reached the serializer; this is a classifier bug")
	case t.Width == 1:
		return "boolean", nil
	default:
		return fmt.Sprintf("bv%d", t.Width), nil
	}
}

// MemoryTypeString renders a memory's declared array type,
// "[addr_t]data_t", where addr_t is an unsigned bit-vector of width
// max(1, ceil(log2(depth))) per spec.md §4.5 step 4.
func MemoryTypeString(dataType ir.Type, depth uint) (string, error) {
	dataStr, err := TypeString(dataType)
	if err != nil {
		return "", err
	}

	addrStr, err := TypeString(ir.UInt(AddressWidth(depth)))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("[%s]%s", addrStr, dataStr), nil
}

// AddressWidth computes max(1, ceil(log2(depth))), the bit-width of a
// memory's address bus.
func AddressWidth(depth uint) ir.Width {
	if depth <= 1 {
		return 1
	}

	width := uint(0)
	for v := depth - 1; v > 0; v >>= 1 {
		width++
	}

	if width == 0 {
		width = 1
	}

	return ir.Width(width)
}
