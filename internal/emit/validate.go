package emit

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ekiwi/firrtl-uclid/internal/classify"
	"github.com/ekiwi/firrtl-uclid/internal/ir"
)

// bareBv1 matches a stray "bv1" type/literal suffix that should have been
// boolean-coerced (spec.md §8 invariant 6), without false-positiving on
// "bv10", "bv11", etc.
var bareBv1 = regexp.MustCompile(`(?:\b|[0-9])bv1\b`)

// Validate re-walks rendered text produced by Module and checks the
// structural invariants of spec.md §8 that are checkable from the text and
// the classification result alone: brace balance (#7), unique register
// declarations (the register part of #1; memory, wire and node declarations
// are not counted), exactly-one write procedure plus exactly-one call per memory (#4),
// the expected collision-clause count per memory (#5), and the absence of
// any leaked "bv1" (#6). It does not re-derive invariants #2/#3 (primed-
// reference placement), which require re-parsing expression text rather
// than counting declarations; those are covered by the golden-output and
// table-driven tests in this package instead.
func Validate(rendered string, result *classify.Result) error {
	if err := checkBraceBalance(rendered); err != nil {
		return err
	}

	if bareBv1.MatchString(rendered) {
		return fmt.Errorf("validate: rendered output contains a bare bv1 type or literal; 1-bit values must be boolean-coerced")
	}

	if err := checkUniqueDecl(rendered, result.RegisterDecls.InOrder()); err != nil {
		return err
	}

	for _, m := range result.MemoryDecls {
		if err := checkMemoryWriteProcedure(rendered, m); err != nil {
			return err
		}
	}

	return nil
}

func checkBraceBalance(text string) error {
	depth := 0

	for _, r := range text {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
		}

		if depth < 0 {
			return fmt.Errorf("validate: unbalanced braces (closed before opened)")
		}
	}

	if depth != 0 {
		return fmt.Errorf("validate: unbalanced braces (%d unclosed)", depth)
	}

	return nil
}

func checkUniqueDecl(text string, regs []*ir.Register) error {
	for _, r := range regs {
		needle := "var " + r.Name + " :"

		if n := strings.Count(text, needle); n != 1 {
			return fmt.Errorf("validate: expected exactly one declaration of %q, found %d", r.Name, n)
		}
	}

	return nil
}

func checkMemoryWriteProcedure(text string, m *ir.Memory) error {
	procName := ir.WriteProcedureName(m.Name)

	if n := strings.Count(text, "procedure "+procName); n != 1 {
		return fmt.Errorf("validate: expected exactly one write procedure for memory %q, found %d", m.Name, n)
	}

	if n := strings.Count(text, "call "+procName+"();"); n != 1 {
		return fmt.Errorf("validate: expected exactly one call to %q in next, found %d", procName, n)
	}

	n := len(m.Writers)
	expectedCollisions := n * (n - 1) / 2
	havoc := ir.HavocWireName(m.Name)

	if got := strings.Count(text, "havoc "+havoc+";"); got != expectedCollisions {
		return fmt.Errorf("validate: memory %q expected %d collision clauses (C(%d,2)), found %d", m.Name, expectedCollisions, n, got)
	}

	return nil
}
