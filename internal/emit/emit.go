// Package emit implements the Module Emitter (spec.md §4.5): it orchestrates
// declaration order, the init block, the two-phase next block, and the
// trailing assumptions/invariants/control block. Grounded on
// pkg/ir/picus/print.go's Module.WriteTo (inputs, then outputs, then
// constraints, each its own loop over a frozen collection) and
// pkg/cmd/picus.go's translate-then-render driving pattern.
package emit

import (
	"github.com/ekiwi/firrtl-uclid/internal/annotate"
	"github.com/ekiwi/firrtl-uclid/internal/classify"
	"github.com/ekiwi/firrtl-uclid/internal/ir"
	"github.com/ekiwi/firrtl-uclid/internal/memsynth"
	"github.com/ekiwi/firrtl-uclid/internal/target"
	"github.com/ekiwi/firrtl-uclid/internal/target/serialize"
	log "github.com/sirupsen/logrus"
)

// Module renders module per spec.md §4.5, driven by annotations for the
// trailing assumption/invariant/control declarations. It classifies the
// module itself (internal/classify) so callers never have to sequence the
// two passes by hand.
func Module(module ir.Module, annotations *annotate.Set) (string, error) {
	log.Debugf("emitting module %q", module.Name)

	result, err := classify.Classify(module)
	if err != nil {
		return "", err
	}

	w := target.NewWriter()

	w.OpenBlock("module " + module.Name)

	if err := emitPorts(w, module, result); err != nil {
		return "", err
	}

	if err := emitRegisterDecls(w, result); err != nil {
		return "", err
	}

	if err := emitMemoryDecls(w, result); err != nil {
		return "", err
	}

	if err := emitWireDecls(w, result); err != nil {
		return "", err
	}

	if err := emitNodeDecls(w, result); err != nil {
		return "", err
	}

	if err := emitInit(w, result); err != nil {
		return "", err
	}

	emitMemWrites(w, result)

	if err := emitNext(w, result); err != nil {
		return "", err
	}

	if annotations != nil {
		annotations.Apply(w)
	}

	w.CloseBlock()

	return w.String(), nil
}

func isTrivialResetName(result *classify.Result, name string) bool {
	for _, n := range result.TrivialResetNames {
		if n == name {
			return true
		}
	}

	return false
}

func emitPorts(w *target.Writer, module ir.Module, result *classify.Result) error {
	for _, p := range module.Ports {
		if p.Type.IsClock() || isTrivialResetName(result, p.Name) {
			continue
		}

		typeStr, err := serialize.TypeString(p.Type)
		if err != nil {
			return err
		}

		dir := "input"
		if p.Direction == ir.Output {
			dir = "output"
		}

		w.Linef("%s %s : %s;", dir, p.Name, typeStr)
	}

	return nil
}

func emitRegisterDecls(w *target.Writer, result *classify.Result) error {
	w.Line("// Registers")

	for _, reg := range result.RegisterDecls.InOrder() {
		typeStr, err := serialize.TypeString(reg.Type)
		if err != nil {
			return err
		}

		w.Linef("var %s : %s;", reg.Name, typeStr)
	}

	return nil
}

func emitMemoryDecls(w *target.Writer, result *classify.Result) error {
	w.Line("// Memories")

	for _, m := range result.MemoryDecls {
		typeStr, err := serialize.MemoryTypeString(m.DataType, m.Depth)
		if err != nil {
			return err
		}

		w.Linef("var %s : %s;", m.Name, typeStr)
	}

	return nil
}

func emitWireDecls(w *target.Writer, result *classify.Result) error {
	w.Line("// Wires")

	for _, wd := range result.WireDecls {
		typeStr, err := serialize.TypeString(wd.Type)
		if err != nil {
			return err
		}

		w.Linef("var %s : %s;", wd.Name, typeStr)
	}

	return nil
}

func emitNodeDecls(w *target.Writer, result *classify.Result) error {
	w.Line("// Nodes")

	for _, n := range result.Nodes {
		typeStr, err := serialize.TypeString(n.Type)
		if err != nil {
			return err
		}

		w.Linef("var %s : %s;", n.Name, typeStr)
	}

	return nil
}

func emitInit(w *target.Writer, result *classify.Result) error {
	w.Line("// Init")
	w.OpenBlock("init")

	for _, m := range result.MemoryDecls {
		addrType := ir.UInt(serialize.AddressWidth(m.Depth))
		addrTypeStr, err := serialize.TypeString(addrType)
		if err != nil {
			return err
		}

		zero := serialize.LiteralText(&ir.Literal{Value: 0, Signed: m.DataType.Kind == ir.Signed, Width: m.DataType.Width})

		w.Linef("assume (forall (a : %s) :: %s[a] == %s);", addrTypeStr, m.Name, zero)
	}

	for _, n := range result.Nodes {
		rhs, err := serialize.Expr(n.Value, false)
		if err != nil {
			return err
		}

		w.Linef("%s = %s;", n.Name, rhs)
	}

	for _, conn := range result.PortOrMemFieldAssigns {
		rhs, err := serialize.Expr(conn.Rhs, false)
		if err != nil {
			return err
		}

		w.Linef("%s = %s;", conn.Lhs.Name, rhs)
	}

	w.CloseBlock()

	return nil
}

func emitMemWrites(w *target.Writer, result *classify.Result) {
	w.Line("// Mem Writes")

	for _, m := range result.MemoryDecls {
		memsynth.WriteProcedure(w, m)
	}
}

func emitNext(w *target.Writer, result *classify.Result) error {
	w.OpenBlock("next")

	for _, m := range result.MemoryDecls {
		w.Linef("call %s();", ir.WriteProcedureName(m.Name))
	}

	for _, conn := range result.RegisterAssigns {
		rhs, err := serialize.Expr(conn.Rhs, false)
		if err != nil {
			return err
		}

		w.Linef("%s' = %s;", conn.Lhs.Name, rhs)
	}

	for _, n := range result.Nodes {
		rhs, err := serialize.Expr(n.Value, true)
		if err != nil {
			return err
		}

		w.Linef("%s' = %s;", n.Name, rhs)
	}

	for _, m := range result.MemoryDecls {
		for _, r := range m.Readers {
			dataWire := ir.MemoryPortWireName(m.Name, r.Name, "data")
			addrWire := ir.MemoryPortWireName(m.Name, r.Name, "addr")
			w.Linef("%s' = %s[%s'];", dataWire, m.Name, addrWire)
		}
	}

	for _, conn := range result.PortOrMemFieldAssigns {
		rhs, err := serialize.Expr(conn.Rhs, true)
		if err != nil {
			return err
		}

		w.Linef("%s' = %s;", conn.Lhs.Name, rhs)
	}

	w.CloseBlock()

	return nil
}

