package ir

// Stmt is a closed sum of the statement shapes the classifier dispatches
// on. Like Expr, closed with a marker method (pkg/ir/picus/constraints.go's
// isConstraint() idiom).
type Stmt interface {
	isStmt()
}

// Node is a combinational binding: name := value, derived type.
type Node struct {
	Name  string
	Value Expr
	Type  Type
}

func (*Node) isStmt() {}

// Register is a clocked state element. Reset must be nil (absent), a zero
// literal, or a simple reference per spec.md's invariants; the classifier
// enforces this.
type Register struct {
	Name  string
	Type  Type
	Clock Expr
	Reset Expr
}

func (*Register) isStmt() {}

// Port is one read, write or read-write port on a Memory.
type Port struct {
	Name string
}

// Memory declares a random-access memory. WriteLatency must be 1,
// ReadLatency must be 0, Readwriters must be empty and DataType must be
// ground; the classifier enforces all four per spec.md §3's invariants.
type Memory struct {
	Name         string
	DataType     Type
	Depth        uint
	WriteLatency uint
	ReadLatency  uint
	Readers      []Port
	Writers      []Port
	Readwriters  []Port
}

func (*Memory) isStmt() {}

// LhsKind classifies what a Connect's left-hand side refers to.
type LhsKind uint8

const (
	// LhsRegister is a register connect (goes to register_assigns).
	LhsRegister LhsKind = iota
	// LhsOutputPort is a module output port connect.
	LhsOutputPort
	// LhsMemoryPortField is a memory port sub-signal (addr/data/en/mask).
	LhsMemoryPortField
	// LhsOther is any other lhs kind; always illegal per spec.md §4.1.
	LhsOther
)

// Lhs is the left-hand side of a Connect, carrying enough information for
// the classifier to dispatch without re-deriving it from Expr shape.
type Lhs struct {
	Kind LhsKind
	// Name is the flattened target name (register name, output port name,
	// or memory port field name).
	Name string
	// Memory/PortName/Field are populated only when Kind == LhsMemoryPortField.
	Memory   string
	PortName string
	Field    string // one of "data", "addr", "en", "mask"
}

// Connect assigns rhs to lhs.
type Connect struct {
	Lhs Lhs
	Rhs Expr
}

func (*Connect) isStmt() {}

var (
	_ Stmt = (*Node)(nil)
	_ Stmt = (*Register)(nil)
	_ Stmt = (*Memory)(nil)
	_ Stmt = (*Connect)(nil)
)

// Block is a compound statement: a sequence of child statements. The
// classifier walks blocks recursively (post-order) the way
// pkg/corset/compiler/translator.go walks nested declaration lists, but
// blocks themselves are never classified into any collection -- only their
// children are.
type Block struct {
	Stmts []Stmt
}

func (*Block) isStmt() {}

// Wire is a raw combinational wire declaration. Per spec.md §4.1, any Wire
// reaching the classifier is illegal: by the time the IR reaches this
// translator all wires must already have been lowered to Connects onto
// registers/ports/memory fields or into Nodes by upstream passes.
type Wire struct {
	Name string
	Type Type
}

func (*Wire) isStmt() {}

// Instance is a nested module instantiation. Per spec.md's Non-goals the
// input is always a single flat module, so any Instance reaching the
// classifier is illegal.
type Instance struct {
	Name   string
	Module string
}

func (*Instance) isStmt() {}

var (
	_ Stmt = (*Block)(nil)
	_ Stmt = (*Wire)(nil)
	_ Stmt = (*Instance)(nil)
)
