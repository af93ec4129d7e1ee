// Package ir defines the algebraic type and expression model of the source
// hardware intermediate representation: fixed-width bit-vector types,
// literals, references, multiplexers and primitive operators. It mirrors
// nothing about the target language; internal/target owns that.
package ir

import "fmt"

// Width is the bit-width of a value. A width of 1 is boolean-coerced at the
// target level (see internal/target/serialize).
type Width uint

// Kind distinguishes the three type families recognised by the classifier.
type Kind uint8

const (
	// Unsigned is an unsigned bit-vector type.
	Unsigned Kind = iota
	// Signed is a signed bit-vector type.
	Signed
	// Clock is the sentinel clock type; it is never serialized.
	Clock
)

// String renders the kind name, used only for diagnostics.
func (k Kind) String() string {
	switch k {
	case Unsigned:
		return "unsigned"
	case Signed:
		return "signed"
	case Clock:
		return "clock"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Type is a ground type: an unsigned or signed bit-vector of some width, or
// the clock sentinel (which carries no width).
type Type struct {
	Kind  Kind
	Width Width
}

// UInt constructs an unsigned bit-vector type of the given width.
func UInt(w Width) Type { return Type{Kind: Unsigned, Width: w} }

// SInt constructs a signed bit-vector type of the given width.
func SInt(w Width) Type { return Type{Kind: Signed, Width: w} }

// ClockType is the singleton clock type.
var ClockType = Type{Kind: Clock}

// IsClock reports whether this is the clock sentinel type.
func (t Type) IsClock() bool { return t.Kind == Clock }

// IsGround reports whether t is a scalar (unsigned/signed bit-vector) type,
// as opposed to the clock sentinel or any aggregate type the source IR might
// otherwise carry upstream of this translator.
func (t Type) IsGround() bool { return t.Kind == Unsigned || t.Kind == Signed }

// IsBoolean reports whether t is the 1-bit-is-boolean coercion case.
func (t Type) IsBoolean() bool { return t.IsGround() && t.Width == 1 }

// String renders a debug form, e.g. "bv8", "sbv8", "boolean", "clock".
func (t Type) String() string {
	switch t.Kind {
	case Clock:
		return "clock"
	case Signed:
		if t.Width == 1 {
			return "boolean"
		}
		return fmt.Sprintf("sbv%d", t.Width)
	default:
		if t.Width == 1 {
			return "boolean"
		}
		return fmt.Sprintf("bv%d", t.Width)
	}
}
