package serialize

import (
	"fmt"

	"github.com/ekiwi/firrtl-uclid/internal/ir"
)

// LiteralText renders a literal per spec.md §4.3: width-1 literals render
// as "true"/"false" (the boolean coercion applies to literals exactly as
// it applies to declared types and operators); wider literals render as
// "<value>bv<width>" regardless of signedness (signedness affects how an
// operator treats a value, never how a plain literal is printed).
func LiteralText(l *ir.Literal) string {
	decimal, nonZero := literalDecimal(l)

	if l.Width == 1 {
		if nonZero {
			return "true"
		}

		return "false"
	}

	return fmt.Sprintf("%sbv%d", decimal, l.Width)
}

func literalDecimal(l *ir.Literal) (string, bool) {
	if l.BigValue != nil {
		return l.BigValue.String(), l.BigValue.Val.Sign() != 0
	}

	return fmt.Sprintf("%d", l.Value), l.Value != 0
}

// ConstText renders a bare integer constant (from a Prim's Consts array)
// as a typed literal of t, used for the (0 operand, 1 const) and
// (0 operand, 2 const) Prim shapes where the constant stands in for a full
// expression operand.
func ConstText(value int, t ir.Type) string {
	return LiteralText(&ir.Literal{Value: uint64(value), Signed: t.Kind == ir.Signed, Width: t.Width})
}
