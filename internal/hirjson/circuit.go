// Package hirjson decodes a JSON-encoded circuit into internal/ir values.
// Grounded on pkg/binfile/expr.go's JsonExpr shape: a struct with one
// non-nil pointer field per variant, converted by a ToXxx method, rather
// than a discriminator-tag switch over a raw map[string]any.
package hirjson

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ekiwi/firrtl-uclid/internal/annotate"
	"github.com/ekiwi/firrtl-uclid/internal/ir"
)

// Type is the JSON encoding of ir.Type: Kind is one of "unsigned",
// "signed", "clock".
type Type struct {
	Kind  string `json:"kind"`
	Width uint   `json:"width,omitempty"`
}

// ToIR converts t to its ir.Type.
func (t Type) ToIR() (ir.Type, error) {
	switch t.Kind {
	case "unsigned":
		return ir.UInt(ir.Width(t.Width)), nil
	case "signed":
		return ir.SInt(ir.Width(t.Width)), nil
	case "clock":
		return ir.ClockType, nil
	default:
		return ir.Type{}, fmt.Errorf("hirjson: unrecognised type kind %q", t.Kind)
	}
}

// Expr is an enumeration of expression forms. Exactly one field is non-nil.
type Expr struct {
	Reference *ReferenceExpr `json:"reference,omitempty"`
	SubField  *SubFieldExpr  `json:"subfield,omitempty"`
	Literal   *LiteralExpr   `json:"literal,omitempty"`
	Mux       *MuxExpr       `json:"mux,omitempty"`
	Prim      *PrimExpr      `json:"prim,omitempty"`
}

// ReferenceExpr is the JSON encoding of ir.Reference.
type ReferenceExpr struct {
	Name string `json:"name"`
	Type Type   `json:"type"`
}

// SubFieldExpr is the JSON encoding of ir.SubField.
type SubFieldExpr struct {
	Parent *Expr  `json:"parent"`
	Field  string `json:"field"`
	Type   Type   `json:"type"`
}

// LiteralExpr is the JSON encoding of ir.Literal. Big, when non-empty, is a
// base-10 magnitude used for widths beyond uint64 and takes precedence over
// Value, mirroring ir.Literal.BigValue's precedence over ir.Literal.Value.
type LiteralExpr struct {
	Value  uint64 `json:"value,omitempty"`
	Big    string `json:"big,omitempty"`
	Signed bool   `json:"signed,omitempty"`
	Width  uint   `json:"width"`
}

// MuxExpr is the JSON encoding of ir.Mux.
type MuxExpr struct {
	Cond *Expr `json:"cond"`
	TVal *Expr `json:"tval"`
	FVal *Expr `json:"fval"`
	Type Type  `json:"type"`
}

// PrimExpr is the JSON encoding of ir.Prim. Op is the operator's name, one
// of the ir.Op* constant names with the leading "Op" dropped and the first
// remaining letter lower-cased (e.g. "add", "bitSelect", "asSigned").
type PrimExpr struct {
	Op       string `json:"op"`
	Operands []Expr `json:"operands,omitempty"`
	Consts   []int  `json:"consts,omitempty"`
	Type     Type   `json:"type"`
}

var opNames = map[string]ir.Op{
	"neg":          ir.OpNeg,
	"asUnsigned":   ir.OpAsUnsigned,
	"asSigned":     ir.OpAsSigned,
	"not":          ir.OpNot,
	"add":          ir.OpAdd,
	"addWrap":      ir.OpAddWrap,
	"sub":          ir.OpSub,
	"subWrap":      ir.OpSubWrap,
	"less":         ir.OpLess,
	"lessEq":       ir.OpLessEq,
	"greater":      ir.OpGreater,
	"greaterEq":    ir.OpGreaterEq,
	"eq":           ir.OpEq,
	"notEq":        ir.OpNotEq,
	"mul":          ir.OpMul,
	"and":          ir.OpAnd,
	"or":           ir.OpOr,
	"xor":          ir.OpXor,
	"cat":          ir.OpCat,
	"bitSelect":    ir.OpBitSelect,
	"shl":          ir.OpShl,
	"shr":          ir.OpShr,
	"pad":          ir.OpPad,
	"tail":         ir.OpTail,
	"bitSlice":     ir.OpBitSlice,
}

// ToIR converts e to its ir.Expr.
func (e *Expr) ToIR() (ir.Expr, error) {
	switch {
	case e.Reference != nil:
		t, err := e.Reference.Type.ToIR()
		if err != nil {
			return nil, err
		}

		return &ir.Reference{Name: e.Reference.Name, Type: t}, nil
	case e.SubField != nil:
		parent, err := e.SubField.Parent.ToIR()
		if err != nil {
			return nil, err
		}

		t, err := e.SubField.Type.ToIR()
		if err != nil {
			return nil, err
		}

		return &ir.SubField{Parent: parent, Field: e.SubField.Field, Type: t}, nil
	case e.Literal != nil:
		l := &ir.Literal{Value: e.Literal.Value, Signed: e.Literal.Signed, Width: ir.Width(e.Literal.Width)}

		if e.Literal.Big != "" {
			big, ok := ir.NewBigUint(e.Literal.Big)
			if !ok {
				return nil, fmt.Errorf("hirjson: malformed big literal magnitude %q", e.Literal.Big)
			}

			l.BigValue = big
		}

		return l, nil
	case e.Mux != nil:
		cond, err := e.Mux.Cond.ToIR()
		if err != nil {
			return nil, err
		}

		tval, err := e.Mux.TVal.ToIR()
		if err != nil {
			return nil, err
		}

		fval, err := e.Mux.FVal.ToIR()
		if err != nil {
			return nil, err
		}

		t, err := e.Mux.Type.ToIR()
		if err != nil {
			return nil, err
		}

		return &ir.Mux{Cond: cond, TVal: tval, FVal: fval, Type: t}, nil
	case e.Prim != nil:
		return e.Prim.toIR()
	default:
		return nil, fmt.Errorf("hirjson: expression object has no recognised variant set")
	}
}

func (p *PrimExpr) toIR() (ir.Expr, error) {
	op, ok := opNames[p.Op]
	if !ok {
		return nil, fmt.Errorf("hirjson: unrecognised primitive operator %q", p.Op)
	}

	operands := make([]ir.Expr, len(p.Operands))

	for i := range p.Operands {
		operand, err := p.Operands[i].ToIR()
		if err != nil {
			return nil, err
		}

		operands[i] = operand
	}

	t, err := p.Type.ToIR()
	if err != nil {
		return nil, err
	}

	return &ir.Prim{Op: op, Operands: operands, Consts: p.Consts, Type: t}, nil
}

// Port is the JSON encoding of ir.Port.
type Port struct {
	Name string `json:"name"`
}

func (p Port) toIR() ir.Port { return ir.Port{Name: p.Name} }

func toPorts(ps []Port) []ir.Port {
	out := make([]ir.Port, len(ps))
	for i, p := range ps {
		out[i] = p.toIR()
	}

	return out
}

// Lhs is the JSON encoding of ir.Lhs. Kind is one of "register",
// "outputPort", "memoryPortField", "other".
type Lhs struct {
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	Memory   string `json:"memory,omitempty"`
	PortName string `json:"port,omitempty"`
	Field    string `json:"field,omitempty"`
}

func (l Lhs) toIR() (ir.Lhs, error) {
	kinds := map[string]ir.LhsKind{
		"register":        ir.LhsRegister,
		"outputPort":      ir.LhsOutputPort,
		"memoryPortField": ir.LhsMemoryPortField,
		"other":           ir.LhsOther,
	}

	kind, ok := kinds[l.Kind]
	if !ok {
		return ir.Lhs{}, fmt.Errorf("hirjson: unrecognised lhs kind %q", l.Kind)
	}

	return ir.Lhs{Kind: kind, Name: l.Name, Memory: l.Memory, PortName: l.PortName, Field: l.Field}, nil
}

// Stmt is an enumeration of statement forms. Exactly one field is non-nil.
type Stmt struct {
	Node     *NodeStmt     `json:"node,omitempty"`
	Register *RegisterStmt `json:"register,omitempty"`
	Memory   *MemoryStmt   `json:"memory,omitempty"`
	Connect  *ConnectStmt  `json:"connect,omitempty"`
	Block    *BlockStmt    `json:"block,omitempty"`
}

// NodeStmt is the JSON encoding of ir.Node.
type NodeStmt struct {
	Name  string `json:"name"`
	Value Expr   `json:"value"`
	Type  Type   `json:"type"`
}

// RegisterStmt is the JSON encoding of ir.Register.
type RegisterStmt struct {
	Name  string `json:"name"`
	Type  Type   `json:"type"`
	Clock *Expr  `json:"clock,omitempty"`
	Reset *Expr  `json:"reset,omitempty"`
}

// MemoryStmt is the JSON encoding of ir.Memory.
type MemoryStmt struct {
	Name         string `json:"name"`
	DataType     Type   `json:"dataType"`
	Depth        uint   `json:"depth"`
	WriteLatency uint   `json:"writeLatency"`
	ReadLatency  uint   `json:"readLatency"`
	Readers      []Port `json:"readers,omitempty"`
	Writers      []Port `json:"writers,omitempty"`
	Readwriters  []Port `json:"readwriters,omitempty"`
}

// ConnectStmt is the JSON encoding of ir.Connect.
type ConnectStmt struct {
	Lhs Lhs  `json:"lhs"`
	Rhs Expr `json:"rhs"`
}

// BlockStmt is the JSON encoding of ir.Block.
type BlockStmt struct {
	Stmts []Stmt `json:"stmts"`
}

// ToIR converts s to its ir.Stmt.
func (s *Stmt) ToIR() (ir.Stmt, error) {
	switch {
	case s.Node != nil:
		value, err := s.Node.Value.ToIR()
		if err != nil {
			return nil, err
		}

		t, err := s.Node.Type.ToIR()
		if err != nil {
			return nil, err
		}

		return &ir.Node{Name: s.Node.Name, Value: value, Type: t}, nil
	case s.Register != nil:
		t, err := s.Register.Type.ToIR()
		if err != nil {
			return nil, err
		}

		reg := &ir.Register{Name: s.Register.Name, Type: t}

		if s.Register.Clock != nil {
			clk, err := s.Register.Clock.ToIR()
			if err != nil {
				return nil, err
			}

			reg.Clock = clk
		}

		if s.Register.Reset != nil {
			reset, err := s.Register.Reset.ToIR()
			if err != nil {
				return nil, err
			}

			reg.Reset = reset
		}

		return reg, nil
	case s.Memory != nil:
		dataType, err := s.Memory.DataType.ToIR()
		if err != nil {
			return nil, err
		}

		return &ir.Memory{
			Name:         s.Memory.Name,
			DataType:     dataType,
			Depth:        s.Memory.Depth,
			WriteLatency: s.Memory.WriteLatency,
			ReadLatency:  s.Memory.ReadLatency,
			Readers:      toPorts(s.Memory.Readers),
			Writers:      toPorts(s.Memory.Writers),
			Readwriters:  toPorts(s.Memory.Readwriters),
		}, nil
	case s.Connect != nil:
		lhs, err := s.Connect.Lhs.toIR()
		if err != nil {
			return nil, err
		}

		rhs, err := s.Connect.Rhs.ToIR()
		if err != nil {
			return nil, err
		}

		return &ir.Connect{Lhs: lhs, Rhs: rhs}, nil
	case s.Block != nil:
		block, err := s.Block.toIR()
		if err != nil {
			return nil, err
		}

		return block, nil
	default:
		return nil, fmt.Errorf("hirjson: statement object has no recognised variant set")
	}
}

func (b *BlockStmt) toIR() (*ir.Block, error) {
	stmts := make([]ir.Stmt, len(b.Stmts))

	for i := range b.Stmts {
		stmt, err := b.Stmts[i].ToIR()
		if err != nil {
			return nil, err
		}

		stmts[i] = stmt
	}

	return &ir.Block{Stmts: stmts}, nil
}

// ModulePort is the JSON encoding of ir.ModulePort. Direction is "input" or
// "output".
type ModulePort struct {
	Name      string `json:"name"`
	Type      Type   `json:"type"`
	Direction string `json:"direction"`
}

func (p ModulePort) toIR() (ir.ModulePort, error) {
	t, err := p.Type.ToIR()
	if err != nil {
		return ir.ModulePort{}, err
	}

	dir := ir.Input
	if p.Direction == "output" {
		dir = ir.Output
	} else if p.Direction != "input" {
		return ir.ModulePort{}, fmt.Errorf("hirjson: unrecognised port direction %q", p.Direction)
	}

	return ir.ModulePort{Name: p.Name, Type: t, Direction: dir}, nil
}

// Module is the JSON encoding of ir.Module.
type Module struct {
	Name  string       `json:"name"`
	Ports []ModulePort `json:"ports,omitempty"`
	Body  BlockStmt    `json:"body"`
}

func (m Module) toIR() (ir.Module, error) {
	ports := make([]ir.ModulePort, len(m.Ports))

	for i, p := range m.Ports {
		port, err := p.toIR()
		if err != nil {
			return ir.Module{}, err
		}

		ports[i] = port
	}

	body, err := m.Body.toIR()
	if err != nil {
		return ir.Module{}, err
	}

	return ir.Module{Name: m.Name, Ports: ports, Body: *body}, nil
}

// Circuit is the JSON encoding of ir.Circuit.
type Circuit struct {
	Main Module `json:"main"`
}

// Annotations is the JSON encoding of an annotate.Set.
type Annotations struct {
	BMC         *uint    `json:"bmc,omitempty"`
	Assumptions []string `json:"assumptions,omitempty"`
	Properties  []string `json:"properties,omitempty"`
}

func (a Annotations) toIR() *annotate.Set {
	set := annotate.NewSet()

	for _, ref := range a.Assumptions {
		set.WithAssumption(ref)
	}

	for _, ref := range a.Properties {
		set.WithProperty(ref)
	}

	if a.BMC != nil {
		set.WithBMC(*a.BMC)
	}

	return set
}

// Document is the top-level shape decoded from an input file: a circuit
// plus its side-channel annotations, mirroring pkg/binfile.BinaryFile's
// schema-plus-metadata envelope.
type Document struct {
	Circuit     Circuit     `json:"circuit"`
	Annotations Annotations `json:"annotations"`
}

// Load decodes r into an ir.Circuit and its annotate.Set.
func Load(r io.Reader) (ir.Circuit, *annotate.Set, error) {
	var doc Document

	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return ir.Circuit{}, nil, fmt.Errorf("hirjson: %w", err)
	}

	main, err := doc.Circuit.Main.toIR()
	if err != nil {
		return ir.Circuit{}, nil, err
	}

	return ir.Circuit{Main: main}, doc.Annotations.toIR(), nil
}
