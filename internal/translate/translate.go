// Package translate is the translator's top-level entrypoint: it drives one
// circuit through classification and emission and, on request, the
// structural self-check. Grounded on pkg/cmd/picus.go's translate-then-
// render driving pattern, adapted from Picus's single-function CLI body
// into a package API a CLI or a library caller can both use.
package translate

import (
	"github.com/ekiwi/firrtl-uclid/internal/annotate"
	"github.com/ekiwi/firrtl-uclid/internal/classify"
	"github.com/ekiwi/firrtl-uclid/internal/emit"
	"github.com/ekiwi/firrtl-uclid/internal/ir"
	log "github.com/sirupsen/logrus"
)

// Options controls one Translate call.
type Options struct {
	// Annotations attaches BMC/assumption/property declarations to the
	// rendered module. Nil means no trailing control/assume/invariant
	// declarations are emitted.
	Annotations *annotate.Set
	// Check runs the structural self-check (internal/emit.Validate)
	// against the rendered output before returning it.
	Check bool
}

// Translate renders circuit.Main as a transition-system module. Circuit
// carries exactly one module by construction (spec.md §6), so there is no
// module-count check to perform here; classify.Classify still rejects
// module shapes it cannot support (multiple clocks, illegal statements,
// disallowed memory configurations).
func Translate(circuit ir.Circuit, opts Options) (string, error) {
	log.Debugf("translating circuit with main module %q", circuit.Main.Name)

	rendered, err := emit.Module(circuit.Main, opts.Annotations)
	if err != nil {
		return "", err
	}

	if opts.Check {
		result, err := classify.Classify(circuit.Main)
		if err != nil {
			return "", err
		}

		if err := emit.Validate(rendered, result); err != nil {
			return "", err
		}
	}

	return rendered, nil
}
