// Package txerror defines the structured fatal-error taxonomy of the
// translation stages: classify and serialize construct these errors, and
// emit passes them on to its caller. It is a
// leaf package with no dependency on the IR or target models, grounded on
// pkg/sexp/error.go's SyntaxError: a small struct with an Error() string
// method and a plain constructor function, rather than a hierarchy of
// error types.
package txerror

import "fmt"

// Kind is the §7 error taxonomy.
type Kind uint8

const (
	// UnsupportedModuleShape: multiple clocks, non-trivial reset, a
	// non-ordinary module kind, or a multi-module circuit.
	UnsupportedModuleShape Kind = iota
	// IllegalStatement: a raw wire, an instance, or a Connect whose lhs
	// kind is not register/output-port/memory-port-field.
	IllegalStatement
	// InvariantViolated: a memory with disallowed latency, non-zero
	// readwriters, or a non-ground data type.
	InvariantViolated
	// MalformedPrimitive: an operator/arity/const-count combination
	// outside the dispatch table.
	MalformedPrimitive
	// ShiftWidthMismatch: a dynamic shift whose amount is wider than the
	// shifted operand.
	ShiftWidthMismatch
	// IllegalReset: a register reset that is neither absent/zero nor a
	// simple reference.
	IllegalReset
	// UnsupportedExpression: an expression outside the variants this
	// translator recognises.
	UnsupportedExpression
)

// String renders the taxonomy label used in error messages.
func (k Kind) String() string {
	switch k {
	case UnsupportedModuleShape:
		return "unsupported-module-shape"
	case IllegalStatement:
		return "illegal-statement"
	case InvariantViolated:
		return "invariant-violated"
	case MalformedPrimitive:
		return "malformed-primitive"
	case ShiftWidthMismatch:
		return "shift-width-mismatch"
	case IllegalReset:
		return "illegal-reset"
	case UnsupportedExpression:
		return "unsupported-expression"
	default:
		return fmt.Sprintf("error-kind(%d)", uint8(k))
	}
}

// Error is a fatal, structured translation failure. Translation of a
// module aborts the moment one of these is produced: spec.md §7 requires
// no partial output on failure.
type Error struct {
	Kind Kind
	// Ref is the offending reference name, when one is available; empty
	// otherwise.
	Ref string
	Msg string
}

// New constructs a translation Error.
func New(kind Kind, ref, msg string) *Error {
	return &Error{Kind: kind, Ref: ref, Msg: msg}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}

	return fmt.Sprintf("%s: %q: %s", e.Kind, e.Ref, e.Msg)
}

// List joins several Errors into one error value
// (pkg/corset/compiler/parser.go's []SyntaxError pattern). A single
// module's translation never accumulates into one of these: it fails fast
// on the first Error per spec.md §7. The hir2uclid CLI translates one
// circuit per run and does not build a List.
type List []*Error

// Error implements the error interface by joining all messages.
func (l List) Error() string {
	if len(l) == 0 {
		return "no errors"
	}

	if len(l) == 1 {
		return l[0].Error()
	}

	msg := fmt.Sprintf("%d errors:", len(l))

	for _, e := range l {
		msg += "\n  " + e.Error()
	}

	return msg
}
