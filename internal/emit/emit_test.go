package emit

import (
	"strings"
	"testing"

	"github.com/ekiwi/firrtl-uclid/internal/annotate"
	"github.com/ekiwi/firrtl-uclid/internal/classify"
	"github.com/ekiwi/firrtl-uclid/internal/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clk() *ir.Reference { return &ir.Reference{Name: "clk", Type: ir.ClockType} }

func node(name string, value ir.Expr, t ir.Type) *ir.Node {
	return &ir.Node{Name: name, Value: value, Type: t}
}

func ref(name string, t ir.Type) *ir.Reference { return &ir.Reference{Name: name, Type: t} }

// TestModuleGCD implements scenario S1 of spec.md §8.
func TestModuleGCD(t *testing.T) {
	u16 := ir.UInt(16)
	boolT := ir.UInt(1)

	tExpr := node("_T", &ir.Prim{Op: ir.OpGreater, Operands: []ir.Expr{ref("x", u16), ref("y", u16)}, Type: boolT}, boolT)
	t2 := node("_T_2", &ir.Prim{Op: ir.OpSubWrap, Operands: []ir.Expr{ref("x", u16), ref("y", u16)}, Type: u16}, u16)
	t4 := node("_T_4", &ir.Prim{Op: ir.OpSubWrap, Operands: []ir.Expr{ref("y", u16), ref("x", u16)}, Type: u16}, u16)
	gen0 := node("_GEN_0", &ir.Mux{Cond: ref("_T", boolT), TVal: ref("_T_2", u16), FVal: ref("x", u16), Type: u16}, u16)
	gen1 := node("_GEN_1", &ir.Mux{Cond: ref("_T", boolT), TVal: ref("y", u16), FVal: ref("_T_4", u16), Type: u16}, u16)
	xNext := node("x_next", &ir.Mux{Cond: ref("io_loadingValues", boolT), TVal: ref("io_value1", u16), FVal: ref("_GEN_0", u16), Type: u16}, u16)
	yNext := node("y_next", &ir.Mux{Cond: ref("io_loadingValues", boolT), TVal: ref("io_value2", u16), FVal: ref("_GEN_1", u16), Type: u16}, u16)

	module := ir.Module{
		Name: "GCD",
		Ports: []ir.ModulePort{
			{Name: "io_value1", Type: u16, Direction: ir.Input},
			{Name: "io_value2", Type: u16, Direction: ir.Input},
			{Name: "io_loadingValues", Type: boolT, Direction: ir.Input},
			{Name: "io_outputGCD", Type: u16, Direction: ir.Output},
			{Name: "io_outputValid", Type: boolT, Direction: ir.Output},
		},
		Body: ir.Block{Stmts: []ir.Stmt{
			&ir.Register{Name: "x", Type: u16, Clock: clk()},
			&ir.Register{Name: "y", Type: u16, Clock: clk()},
			tExpr, t2, t4, gen0, gen1, xNext, yNext,
			&ir.Connect{Lhs: ir.Lhs{Kind: ir.LhsRegister, Name: "x"}, Rhs: ref("x_next", u16)},
			&ir.Connect{Lhs: ir.Lhs{Kind: ir.LhsRegister, Name: "y"}, Rhs: ref("y_next", u16)},
			&ir.Connect{Lhs: ir.Lhs{Kind: ir.LhsOutputPort, Name: "io_outputGCD"}, Rhs: ref("x", u16)},
			&ir.Connect{
				Lhs: ir.Lhs{Kind: ir.LhsOutputPort, Name: "io_outputValid"},
				Rhs: &ir.Prim{Op: ir.OpEq, Operands: []ir.Expr{ref("y", u16), &ir.Literal{Value: 0, Width: 16}}, Type: boolT},
			},
		}},
	}

	out, err := Module(module, nil)
	require.NoError(t, err)

	assert.Contains(t, out, "input io_loadingValues : boolean;")
	assert.Contains(t, out, "output io_outputValid : boolean;")
	assert.Contains(t, out, "var x : bv16;")
	assert.Contains(t, out, "var y : bv16;")
	assert.Contains(t, out, "var _T_2 : bv16;")
	assert.Contains(t, out, "var _T_4 : bv16;")
	assert.Contains(t, out, "var _GEN_0 : bv16;")
	assert.Contains(t, out, "var _GEN_1 : bv16;")
	assert.Contains(t, out, "var x_next : bv16;")
	assert.Contains(t, out, "var y_next : bv16;")
	assert.Contains(t, out, "var _T : boolean;")
	assert.Contains(t, out, "x' = x_next;")
	assert.Contains(t, out, "y' = y_next;")
	assert.Contains(t, out, "_T' = x' > y';")
}

// TestModuleSingleWritePortMemory implements scenario S2.
func TestModuleSingleWritePortMemory(t *testing.T) {
	module := ir.Module{
		Name: "mem1",
		Body: ir.Block{Stmts: []ir.Stmt{
			&ir.Memory{Name: "mem", DataType: ir.UInt(8), Depth: 16, WriteLatency: 1, Writers: []ir.Port{{Name: "w"}}},
		}},
	}

	out, err := Module(module, nil)
	require.NoError(t, err)

	assert.Contains(t, out, "var mem : [bv4]bv8;")
	assert.Contains(t, out, "if (w_en && w_mask) {")
	assert.Contains(t, out, "mem[w_addr] := w_data;")
	assert.Contains(t, out, "call write_mem_mem();")
	assert.Equal(t, 0, strings.Count(out, "havoc havoc_mem;"))
}

// TestModuleTwoWritePortMemory implements scenario S3.
func TestModuleTwoWritePortMemory(t *testing.T) {
	module := ir.Module{
		Name: "mem2",
		Body: ir.Block{Stmts: []ir.Stmt{
			&ir.Memory{Name: "mem", DataType: ir.UInt(8), Depth: 16, WriteLatency: 1, Writers: []ir.Port{{Name: "a"}, {Name: "b"}}},
		}},
	}

	out, err := Module(module, nil)
	require.NoError(t, err)

	assert.Contains(t, out, "a_en && b_en && a_mask && b_mask && a_addr == b_addr")
	assert.Contains(t, out, "havoc havoc_mem;")
	assert.Contains(t, out, "mem[a_addr] := havoc_mem;")
}

// TestModuleBooleanCoercion implements scenario S4.
func TestModuleBooleanCoercion(t *testing.T) {
	boolT := ir.UInt(1)
	module := ir.Module{
		Name: "coerce",
		Body: ir.Block{Stmts: []ir.Stmt{
			node("n", &ir.Prim{Op: ir.OpAnd, Operands: []ir.Expr{ref("x", boolT), ref("y", boolT)}, Type: boolT}, boolT),
		}},
	}

	out, err := Module(module, nil)
	require.NoError(t, err)

	assert.Contains(t, out, "var n : boolean;")
	assert.Contains(t, out, "n = x && y;")
}

// TestModuleExtendingAdd implements scenario S5.
func TestModuleExtendingAdd(t *testing.T) {
	u8, u9 := ir.UInt(8), ir.UInt(9)
	module := ir.Module{
		Name: "adder",
		Body: ir.Block{Stmts: []ir.Stmt{
			node("s", &ir.Prim{Op: ir.OpAdd, Operands: []ir.Expr{ref("a", u8), ref("b", u8)}, Type: u9}, u9),
		}},
	}

	out, err := Module(module, nil)
	require.NoError(t, err)

	assert.Contains(t, out, "var s : bv9;")
	assert.Contains(t, out, "s = bv_zero_extend(1, a) + bv_zero_extend(1, b);")
}

// TestModuleBMCAnnotation implements scenario S6.
func TestModuleBMCAnnotation(t *testing.T) {
	boolT := ir.UInt(1)
	module := ir.Module{
		Name: "checked",
		Ports: []ir.ModulePort{{Name: "ok", Type: boolT, Direction: ir.Output}},
		Body: ir.Block{Stmts: []ir.Stmt{
			&ir.Connect{Lhs: ir.Lhs{Kind: ir.LhsOutputPort, Name: "ok"}, Rhs: &ir.Literal{Value: 1, Width: 1}},
		}},
	}

	annotations := annotate.NewSet().WithBMC(20).WithProperty("ok")

	out, err := Module(module, annotations)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(strings.TrimRight(out, "\n"), "}"))
	assert.Contains(t, out, "invariant assert_ok : ok;")
	assert.Contains(t, out, "control { vobj = unroll(20); check; print_results(); vobj.print_cex(); }")
}

func TestModuleTrivialResetPortExcludedFromDecls(t *testing.T) {
	boolT := ir.UInt(1)
	module := ir.Module{
		Name: "withReset",
		Ports: []ir.ModulePort{{Name: "reset", Type: boolT, Direction: ir.Input}},
		Body: ir.Block{Stmts: []ir.Stmt{
			&ir.Register{Name: "r", Type: ir.UInt(8), Clock: clk(), Reset: ref("reset", boolT)},
		}},
	}

	out, err := Module(module, nil)
	require.NoError(t, err)
	assert.NotContains(t, out, "reset : boolean;")
}

func TestValidatePassesOnWellFormedOutput(t *testing.T) {
	module := ir.Module{
		Name: "mem1",
		Body: ir.Block{Stmts: []ir.Stmt{
			&ir.Memory{Name: "mem", DataType: ir.UInt(8), Depth: 16, WriteLatency: 1, Writers: []ir.Port{{Name: "w"}}},
		}},
	}

	out, err := Module(module, nil)
	require.NoError(t, err)

	result, err := classify.Classify(module)
	require.NoError(t, err)

	assert.NoError(t, Validate(out, result))
}
