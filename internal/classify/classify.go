// Package classify implements the Statement Classifier (spec.md §4.1): a
// single post-order tree walk over a module body that partitions its
// statements into disjoint, role-specific collections and synthesizes the
// auxiliary wires that carry memory-port signals. Grounded on
// pkg/corset/compiler/translator.go's translateDeclaration switch-based
// dispatch over a closed declaration sum.
package classify

import (
	"fmt"

	"github.com/ekiwi/firrtl-uclid/internal/ir"
	"github.com/ekiwi/firrtl-uclid/internal/target/serialize"
	"github.com/ekiwi/firrtl-uclid/internal/txerror"
)

// WireDecl is a synthesized wire: the memory-port signal wires (data/addr/
// en/mask) and the per-memory havoc wire, none of which exist as explicit
// statements in the source IR.
type WireDecl struct {
	Name string
	Type ir.Type
}

// Result is the frozen output of one classification pass: the six
// collections spec.md §4.1 names, plus the single clock expression found
// (if any). Collections are never mutated again once Classify returns.
type Result struct {
	Nodes                 []*ir.Node
	RegisterDecls          *RegisterDecls
	MemoryDecls            []*ir.Memory
	WireDecls              []WireDecl
	RegisterAssigns        []*ir.Connect
	PortOrMemFieldAssigns  []*ir.Connect
	// ClockExpr is the module's single clock expression, or nil if the
	// module has no registers and no memory clock hooks.
	ClockExpr ir.Expr
	// TrivialResetNames lists the port/reference names used as a
	// bare-reference register reset somewhere in the module; the emitter
	// excludes these from the port declaration list (spec.md §4.5 step 2).
	TrivialResetNames []string
}

type classifier struct {
	result Result

	clockKeys      map[string]ir.Expr
	trivialResets  *nameSet
	resetInterner  *interner
	assignedNames  *nameSet
	assignInterner *interner
}

// Classify walks module.Body and produces a Result, or the first fatal
// txerror.Error encountered (spec.md §7: translation aborts eagerly, no
// partial output).
func Classify(module ir.Module) (*Result, error) {
	c := &classifier{
		result: Result{
			RegisterDecls: NewRegisterDecls(),
		},
		clockKeys: make(map[string]ir.Expr),
	}
	c.resetInterner = newInterner()
	c.trivialResets = newNameSet(c.resetInterner)
	c.assignInterner = newInterner()
	c.assignedNames = newNameSet(c.assignInterner)

	if err := c.walk(&module.Body); err != nil {
		return nil, err
	}

	if err := c.postWalkChecks(); err != nil {
		return nil, err
	}

	c.result.TrivialResetNames = c.trivialResets.names()

	return &c.result, nil
}

func (c *classifier) walk(stmt ir.Stmt) error {
	switch s := stmt.(type) {
	case *ir.Block:
		for _, child := range s.Stmts {
			if err := c.walk(child); err != nil {
				return err
			}
		}

		return nil
	case *ir.Node:
		c.result.Nodes = append(c.result.Nodes, s)
		return nil
	case *ir.Register:
		return c.classifyRegister(s)
	case *ir.Connect:
		return c.classifyConnect(s)
	case *ir.Memory:
		return c.classifyMemory(s)
	case *ir.Wire:
		return txerror.New(txerror.IllegalStatement, s.Name, "raw wire definitions are not supported; wires must already be lowered to connects or nodes")
	case *ir.Instance:
		return txerror.New(txerror.IllegalStatement, s.Name, "nested module instances are not supported")
	default:
		return txerror.New(txerror.IllegalStatement, "", fmt.Sprintf("unrecognised statement type %T", stmt))
	}
}

func (c *classifier) classifyRegister(reg *ir.Register) error {
	if err := c.noteClock(reg.Clock); err != nil {
		return err
	}

	if reg.Reset != nil {
		switch r := reg.Reset.(type) {
		case *ir.Literal:
			if !isZeroLiteral(r) {
				return txerror.New(txerror.IllegalReset, reg.Name, "register reset must be absent, a literal zero, or a simple reference")
			}
		case *ir.Reference:
			c.trivialResets.add(r.Name)
		default:
			return txerror.New(txerror.IllegalReset, reg.Name, "register reset must be absent, a literal zero, or a simple reference")
		}
	}

	c.result.RegisterDecls.Add(reg)

	return nil
}

func isZeroLiteral(l *ir.Literal) bool {
	if l.BigValue != nil {
		return l.BigValue.Val.Sign() == 0
	}

	return l.Value == 0
}

func (c *classifier) classifyConnect(conn *ir.Connect) error {
	switch conn.Lhs.Kind {
	case ir.LhsRegister:
		c.assignedNames.add(conn.Lhs.Name)
		c.result.RegisterAssigns = append(c.result.RegisterAssigns, conn)

		return nil
	case ir.LhsOutputPort:
		c.assignedNames.add(conn.Lhs.Name)
		c.result.PortOrMemFieldAssigns = append(c.result.PortOrMemFieldAssigns, conn)

		return nil
	case ir.LhsMemoryPortField:
		if conn.Rhs.ResultType().IsClock() {
			return c.noteClock(conn.Rhs)
		}

		c.assignedNames.add(conn.Lhs.Name)
		c.result.PortOrMemFieldAssigns = append(c.result.PortOrMemFieldAssigns, conn)

		return nil
	default:
		return txerror.New(txerror.IllegalStatement, conn.Lhs.Name, "connect lhs must be a register, an output port, or a memory port field")
	}
}

func (c *classifier) classifyMemory(m *ir.Memory) error {
	if m.WriteLatency != 1 {
		return txerror.New(txerror.InvariantViolated, m.Name, fmt.Sprintf("write latency must be 1, got %d", m.WriteLatency))
	}

	if m.ReadLatency != 0 {
		return txerror.New(txerror.InvariantViolated, m.Name, fmt.Sprintf("read latency must be 0, got %d", m.ReadLatency))
	}

	if len(m.Readwriters) != 0 {
		return txerror.New(txerror.InvariantViolated, m.Name, "readwrite ports are not supported")
	}

	if !m.DataType.IsGround() {
		return txerror.New(txerror.InvariantViolated, m.Name, "memory data type must be a ground (scalar) type")
	}

	c.result.MemoryDecls = append(c.result.MemoryDecls, m)
	c.synthesizeMemoryWires(m)

	return nil
}

func (c *classifier) synthesizeMemoryWires(m *ir.Memory) {
	addrType := ir.UInt(serialize.AddressWidth(m.Depth))

	c.result.WireDecls = append(c.result.WireDecls, WireDecl{Name: ir.HavocWireName(m.Name), Type: m.DataType})

	for _, r := range m.Readers {
		c.result.WireDecls = append(c.result.WireDecls,
			WireDecl{Name: ir.MemoryPortWireName(m.Name, r.Name, "data"), Type: m.DataType},
			WireDecl{Name: ir.MemoryPortWireName(m.Name, r.Name, "addr"), Type: addrType},
			WireDecl{Name: ir.MemoryPortWireName(m.Name, r.Name, "en"), Type: ir.UInt(1)},
		)
	}

	for _, w := range m.Writers {
		c.result.WireDecls = append(c.result.WireDecls,
			WireDecl{Name: ir.MemoryPortWireName(m.Name, w.Name, "data"), Type: m.DataType},
			WireDecl{Name: ir.MemoryPortWireName(m.Name, w.Name, "addr"), Type: addrType},
			WireDecl{Name: ir.MemoryPortWireName(m.Name, w.Name, "en"), Type: ir.UInt(1)},
			WireDecl{Name: ir.MemoryPortWireName(m.Name, w.Name, "mask"), Type: ir.UInt(1)},
		)
	}
}

// noteClock records a clock expression by its serialized (unprimed) text as
// a canonical key, per spec.md §9's open question on clock detection: the
// only two routes to discovering a clock are a register's Clock field and a
// memory-port-field connect whose rhs is clock-typed.
func (c *classifier) noteClock(clk ir.Expr) error {
	if clk == nil {
		return nil
	}

	key, err := serialize.Expr(clk, false)
	if err != nil {
		return err
	}

	if existing, ok := c.clockKeys[key]; ok {
		_ = existing
		return nil
	}

	if len(c.clockKeys) >= 1 {
		return txerror.New(txerror.UnsupportedModuleShape, key, "module uses more than one distinct clock expression")
	}

	c.clockKeys[key] = clk
	c.result.ClockExpr = clk

	return nil
}

func (c *classifier) postWalkChecks() error {
	for _, name := range c.trivialResets.names() {
		if c.assignedNames.contains(name) {
			return txerror.New(txerror.UnsupportedModuleShape, name, "reset reference is driven elsewhere in the module; only absent, literal-zero, or genuinely unused reset references are supported")
		}
	}

	return nil
}
