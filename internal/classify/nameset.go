package classify

import "github.com/bits-and-blooms/bitset"

// interner assigns small dense integer ids to names so membership sets can
// ride on a bitset.BitSet instead of a map[string]struct{}, the way
// pkg/schema uses bitset.BitSet for column-membership sets in the teacher.
// Names in this translator are register/wire/node identifiers: bounded in
// count per module and known up front from the source IR, making them a
// natural fit for dense interned ids.
type interner struct {
	ids   map[string]uint
	names []string
}

func newInterner() *interner {
	return &interner{ids: make(map[string]uint)}
}

func (n *interner) intern(name string) uint {
	if id, ok := n.ids[name]; ok {
		return id
	}

	id := uint(len(n.names))
	n.ids[name] = id
	n.names = append(n.names, name)

	return id
}

// nameSet is a membership set over names interned against a shared
// interner, backed by bitset.BitSet.
type nameSet struct {
	interner *interner
	bits     bitset.BitSet
}

func newNameSet(in *interner) *nameSet {
	return &nameSet{interner: in}
}

func (s *nameSet) add(name string) {
	s.bits.Set(s.interner.intern(name))
}

func (s *nameSet) contains(name string) bool {
	id, ok := s.interner.ids[name]
	if !ok {
		return false
	}

	return s.bits.Test(id)
}

// names returns the set's members in insertion order of the shared
// interner (not of this set), stable for deterministic diagnostics.
func (s *nameSet) names() []string {
	var out []string

	for _, name := range s.interner.names {
		if s.contains(name) {
			out = append(out, name)
		}
	}

	return out
}
