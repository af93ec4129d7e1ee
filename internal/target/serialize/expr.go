package serialize

import (
	"fmt"

	"github.com/ekiwi/firrtl-uclid/internal/ir"
	"github.com/ekiwi/firrtl-uclid/internal/txerror"
)

// Expr renders e under the given primed mode (false = unprimed/pre-step
// state, true = primed/post-step state). This is the single serializer the
// emitter calls for every rhs in both clock phases and the init block,
// parameterized solely by primed, exactly as spec.md §4.3/§9 prescribe.
func Expr(e ir.Expr, primed bool) (string, error) {
	switch v := e.(type) {
	case *ir.Reference:
		return refText(v.Name, primed), nil
	case *ir.SubField:
		return refText(ir.FlattenRef(v), primed), nil
	case *ir.Literal:
		return LiteralText(v), nil
	case *ir.Mux:
		return muxText(v, primed)
	case *ir.Prim:
		return primText(v, primed)
	default:
		return "", txerror.New(txerror.UnsupportedExpression, "", fmt.Sprintf("unrecognised expression type %T", e))
	}
}

func refText(name string, primed bool) string {
	if primed {
		return name + "'"
	}

	return name
}

func muxText(m *ir.Mux, primed bool) (string, error) {
	cond, err := Expr(m.Cond, primed)
	if err != nil {
		return "", err
	}

	tval, err := Expr(m.TVal, primed)
	if err != nil {
		return "", err
	}

	fval, err := Expr(m.FVal, primed)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("if (%s) then (%s) else (%s)", cond, tval, fval), nil
}

// rendered is an operand that has already been turned into target text,
// carrying the width/signedness needed by operators (Add/Sub extension,
// shift reconciliation) that must see past the text into its static type.
type rendered struct {
	text  string
	width ir.Width
	kind  ir.Kind
}

func renderExprOperand(e ir.Expr, primed bool) (rendered, error) {
	text, err := Expr(e, primed)
	if err != nil {
		return rendered{}, err
	}

	t := e.ResultType()

	return rendered{text: text, width: t.Width, kind: t.Kind}, nil
}

func renderConstOperand(value int, t ir.Type) rendered {
	return rendered{text: ConstText(value, t), width: t.Width, kind: t.Kind}
}

// primText dispatches a Prim application by (operand count, const count)
// per spec.md §4.3's cardinality table, then by operator within each shape.
func primText(p *ir.Prim, primed bool) (string, error) {
	numOperands, numConsts := len(p.Operands), len(p.Consts)

	switch {
	case numOperands == 2 && numConsts == 0:
		return prim2Operand(p, primed)
	case numOperands == 1 && numConsts == 0:
		a, err := renderExprOperand(p.Operands[0], primed)
		if err != nil {
			return "", err
		}

		return unaryText(p.Op, p.Type, a)
	case numOperands == 1 && numConsts == 1:
		return prim1Operand1Const(p, primed)
	case numOperands == 1 && numConsts == 2:
		a, err := renderExprOperand(p.Operands[0], primed)
		if err != nil {
			return "", err
		}

		return bitSliceText(a, p.Consts[0], p.Consts[1]), nil
	case numOperands == 0 && numConsts == 1:
		a := renderConstOperand(p.Consts[0], p.Type)
		return unaryText(p.Op, p.Type, a)
	case numOperands == 0 && numConsts == 2:
		a := renderConstOperand(p.Consts[0], p.Type)
		b := renderConstOperand(p.Consts[1], p.Type)

		return binaryText(p.Op, p.Type, a, b)
	default:
		return "", txerror.New(txerror.MalformedPrimitive, "",
			fmt.Sprintf("operator %d with %d operand(s) and %d const(s) is outside the dispatch table", p.Op, numOperands, numConsts))
	}
}

func prim2Operand(p *ir.Prim, primed bool) (string, error) {
	if ir.IsDynamicShift(p.Op, 2, 0) {
		a, err := renderExprOperand(p.Operands[0], primed)
		if err != nil {
			return "", err
		}

		shamt, err := renderExprOperand(p.Operands[1], primed)
		if err != nil {
			return "", err
		}

		return shiftText(p.Op, a, shamt)
	}

	a, err := renderExprOperand(p.Operands[0], primed)
	if err != nil {
		return "", err
	}

	b, err := renderExprOperand(p.Operands[1], primed)
	if err != nil {
		return "", err
	}

	return binaryText(p.Op, p.Type, a, b)
}

func prim1Operand1Const(p *ir.Prim, primed bool) (string, error) {
	a, err := renderExprOperand(p.Operands[0], primed)
	if err != nil {
		return "", err
	}

	k := p.Consts[0]

	switch {
	case p.Op == ir.OpBitSelect:
		return fmt.Sprintf("%s[%d]", a.text, k), nil
	case ir.IsStaticShift(p.Op, 1, 1):
		shamt := renderConstOperand(k, ir.UInt(a.width))
		return shiftText(p.Op, a, shamt)
	case p.Op == ir.OpPad:
		return padText(a, k), nil
	case p.Op == ir.OpTail:
		return tailText(a, k), nil
	default:
		return "", txerror.New(txerror.MalformedPrimitive, "",
			fmt.Sprintf("operator %d does not accept (1 operand, 1 const)", p.Op))
	}
}

func bitSliceText(a rendered, hi, lo int) string {
	return fmt.Sprintf("%s[%d:%d]", a.text, hi, lo)
}

func padText(a rendered, target int) string {
	extra := target - int(a.width)
	if extra <= 0 {
		return a.text
	}

	fn := "bv_zero_extend"
	if a.kind == ir.Signed {
		fn = "bv_sign_extend"
	}

	return fmt.Sprintf("%s(%d, %s)", fn, extra, a.text)
}

func tailText(a rendered, k int) string {
	return fmt.Sprintf("%s[%d:%d]", a.text, int(a.width)-k, 0)
}

// shiftText renders both the static (shamt is a synthesized constant
// operand matching a's width by construction) and dynamic (shamt is a
// genuine expression that may be narrower or wider than a) shift shapes
// through the single reconciliation+call-syntax procedure of spec.md §4.3.
func shiftText(op ir.Op, a, shamt rendered) (string, error) {
	var shamtText string

	switch {
	case a.width == shamt.width:
		shamtText = shamt.text
	case a.width > shamt.width:
		shamtText = fmt.Sprintf("bv_zero_extend(%d, %s)", a.width-shamt.width, shamt.text)
	default:
		return "", txerror.New(txerror.ShiftWidthMismatch, "",
			fmt.Sprintf("shift amount width %d exceeds shifted operand width %d", shamt.width, a.width))
	}

	var fn string

	switch {
	case op == ir.OpShl:
		fn = "bv_left_shift"
	case a.kind == ir.Signed:
		fn = "bv_a_right_shift"
	default:
		fn = "bv_l_right_shift"
	}

	return fmt.Sprintf("%s(%s, %s)", fn, shamtText, a.text), nil
}

func unaryText(op ir.Op, resultType ir.Type, a rendered) (string, error) {
	switch op {
	case ir.OpNeg:
		return "-" + a.text, nil
	case ir.OpAsUnsigned, ir.OpAsSigned:
		return a.text, nil
	case ir.OpNot:
		if resultType.Width == 1 {
			return "!" + a.text, nil
		}

		return "~" + a.text, nil
	default:
		return "", txerror.New(txerror.MalformedPrimitive, "", fmt.Sprintf("operator %d is not a unary operator", op))
	}
}

func binaryText(op ir.Op, resultType ir.Type, a, b rendered) (string, error) {
	switch op {
	case ir.OpAdd:
		return extendingBinary(resultType, a, b, "+"), nil
	case ir.OpAddWrap:
		return infix(a, b, "+"), nil
	case ir.OpSub:
		return extendingBinary(resultType, a, b, "-"), nil
	case ir.OpSubWrap:
		return infix(a, b, "-"), nil
	case ir.OpLess:
		return infix(a, b, "<"), nil
	case ir.OpLessEq:
		return infix(a, b, "<="), nil
	case ir.OpGreater:
		return infix(a, b, ">"), nil
	case ir.OpGreaterEq:
		return infix(a, b, ">="), nil
	case ir.OpEq:
		return infix(a, b, "=="), nil
	case ir.OpNotEq:
		return infix(a, b, "!="), nil
	case ir.OpMul:
		return infix(a, b, "*"), nil
	case ir.OpAnd:
		if resultType.Width == 1 {
			return infix(a, b, "&&"), nil
		}

		return infix(a, b, "&"), nil
	case ir.OpOr:
		if resultType.Width == 1 {
			return infix(a, b, "||"), nil
		}

		return infix(a, b, "|"), nil
	case ir.OpXor:
		return infix(a, b, "^"), nil
	case ir.OpCat:
		return infix(a, b, "++"), nil
	default:
		return "", txerror.New(txerror.MalformedPrimitive, "", fmt.Sprintf("operator %d is not a binary operator", op))
	}
}

func infix(a, b rendered, op string) string {
	return fmt.Sprintf("%s %s %s", a.text, op, b.text)
}

func extendingBinary(resultType ir.Type, a, b rendered, op string) string {
	fn := "bv_zero_extend"
	if resultType.Kind == ir.Signed {
		fn = "bv_sign_extend"
	}

	return fmt.Sprintf("%s(1, %s) %s %s(1, %s)", fn, a.text, op, fn, b.text)
}
