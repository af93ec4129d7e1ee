package classify

import "github.com/ekiwi/firrtl-uclid/internal/ir"

// RegisterDecls is a name-keyed mapping that preserves insertion order, per
// spec.md §9: "register declarations require a name-keyed mapping that
// preserves insertion order (for lookup and ordered emission)". Grounded on
// pkg/schema/register.go's ordered register bookkeeping (registers keep
// their declaration index as well as their name).
type RegisterDecls struct {
	order   []string
	byName  map[string]*ir.Register
}

// NewRegisterDecls constructs an empty, insertion-ordered register map.
func NewRegisterDecls() *RegisterDecls {
	return &RegisterDecls{byName: make(map[string]*ir.Register)}
}

// Add inserts reg, keyed by its name, at the end of the insertion order.
// Re-adding an existing name updates the decl in place without disturbing
// its original position.
func (d *RegisterDecls) Add(reg *ir.Register) {
	if _, exists := d.byName[reg.Name]; !exists {
		d.order = append(d.order, reg.Name)
	}

	d.byName[reg.Name] = reg
}

// Get looks up a register decl by name.
func (d *RegisterDecls) Get(name string) (*ir.Register, bool) {
	r, ok := d.byName[name]
	return r, ok
}

// Len returns the number of distinct registers declared.
func (d *RegisterDecls) Len() int { return len(d.order) }

// InOrder returns the register decls in insertion order.
func (d *RegisterDecls) InOrder() []*ir.Register {
	out := make([]*ir.Register, len(d.order))
	for i, name := range d.order {
		out[i] = d.byName[name]
	}

	return out
}
