// Package annotate models the side-channel annotations that accompany a
// circuit (spec.md §6): BMC step counts, assumption/property references,
// and (for the surrounding pipeline, not this translator) the
// EmittedCircuit record of the rendered text. No EmitCircuit trigger type
// is defined here. It is
// the one place these are collected and rendered, grounded on the
// teacher's source-map-by-reference-identity pattern (pkg/util/source)
// rather than threading raw annotation structs through the emitter.
package annotate

import "github.com/ekiwi/firrtl-uclid/internal/target"

// Assumption names a reference whose value becomes an `assume` in the
// emitted module.
type Assumption struct {
	Ref string
}

// Property names a reference whose value becomes an `invariant` in the
// emitted module.
type Property struct {
	Ref string
}

// Set collects every annotation attached to one circuit. At most one BMC
// annotation is permitted per spec.md §6; its absence (BMCSteps == nil)
// means no control block is emitted.
type Set struct {
	BMCSteps    *uint
	Assumptions []Assumption
	Properties  []Property
}

// NewSet constructs an empty annotation set.
func NewSet() *Set {
	return &Set{}
}

// WithBMC records a BMC(steps) annotation. Calling it more than once
// overwrites the previous value, matching "at most one per circuit".
func (s *Set) WithBMC(steps uint) *Set {
	s.BMCSteps = &steps
	return s
}

// WithAssumption appends an Assumption(ref) annotation.
func (s *Set) WithAssumption(ref string) *Set {
	s.Assumptions = append(s.Assumptions, Assumption{Ref: ref})
	return s
}

// WithProperty appends a Property(ref) annotation.
func (s *Set) WithProperty(ref string) *Set {
	s.Properties = append(s.Properties, Property{Ref: ref})
	return s
}

// Apply renders the assumption, invariant, and (if present) BMC control
// block declarations (spec.md §4.5 steps 11-13) into w: all assumptions
// first, then all invariants, then the control block. Within each kind the
// annotations keep the order they were added in.
func (s *Set) Apply(w *target.Writer) {
	for _, a := range s.Assumptions {
		w.Linef("assume assert_%s : %s;", a.Ref, a.Ref)
	}

	for _, p := range s.Properties {
		w.Linef("invariant assert_%s : %s;", p.Ref, p.Ref)
	}

	if s.BMCSteps != nil {
		w.Linef("control { vobj = unroll(%d); check; print_results(); vobj.print_cex(); }", *s.BMCSteps)
	}
}

// EmittedCircuit carries the rendered text of a translated circuit, the
// counterpart the surrounding pipeline appends back onto the circuit's
// annotation side channel once an EmitCircuit annotation triggers
// translation (spec.md §6). This translator's own entrypoint
// (internal/translate.Translate) returns the same text directly; this type
// exists for callers that want to carry it alongside the other
// annotations instead.
type EmittedCircuit struct {
	Text string
}
