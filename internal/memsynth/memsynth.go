// Package memsynth implements the Memory Write Procedure Synthesizer
// (spec.md §4.4): for each memory, a procedure encoding sequenced writes
// followed by pairwise write-port collision detection with havoc. Grounded
// on pkg/ir/mir/translate_to_picus.go's structured if/else emission
// (iteToConstraints), adapted from a recursive boolean-formula shape to a
// flat sequence of guarded statements.
package memsynth

import (
	"fmt"

	"github.com/ekiwi/firrtl-uclid/internal/ir"
	"github.com/ekiwi/firrtl-uclid/internal/target"
)

// WriteProcedure renders the write_mem_<m> procedure for memory m into w.
// Per spec.md §4.4: every write port commits in declaration order, then
// every unordered pair of write ports gets a collision-arbitration clause
// that havocs the memory cell when both ports fire at the same address.
func WriteProcedure(w *target.Writer, m *ir.Memory) {
	name := ir.WriteProcedureName(m.Name)
	havoc := ir.HavocWireName(m.Name)

	w.OpenBlock(fmt.Sprintf("procedure %s() modifies %s, %s;", name, m.Name, havoc))

	for _, p := range m.Writers {
		writeCommit(w, m.Name, p)
	}

	for i := 0; i < len(m.Writers); i++ {
		for j := i + 1; j < len(m.Writers); j++ {
			writeCollision(w, m.Name, havoc, m.Writers[i], m.Writers[j])
		}
	}

	w.CloseBlock()
}

func writeCommit(w *target.Writer, memory string, p ir.Port) {
	en := ir.MemoryPortWireName(memory, p.Name, "en")
	mask := ir.MemoryPortWireName(memory, p.Name, "mask")
	addr := ir.MemoryPortWireName(memory, p.Name, "addr")
	data := ir.MemoryPortWireName(memory, p.Name, "data")

	w.OpenBlock(fmt.Sprintf("if (%s && %s)", en, mask))
	w.Linef("%s[%s] := %s;", memory, addr, data)
	w.CloseBlock()
}

func writeCollision(w *target.Writer, memory, havoc string, a, b ir.Port) {
	enA := ir.MemoryPortWireName(memory, a.Name, "en")
	enB := ir.MemoryPortWireName(memory, b.Name, "en")
	maskA := ir.MemoryPortWireName(memory, a.Name, "mask")
	maskB := ir.MemoryPortWireName(memory, b.Name, "mask")
	addrA := ir.MemoryPortWireName(memory, a.Name, "addr")
	addrB := ir.MemoryPortWireName(memory, b.Name, "addr")

	w.OpenBlock(fmt.Sprintf("if (%s && %s && %s && %s && %s == %s)", enA, enB, maskA, maskB, addrA, addrB))
	w.Linef("havoc %s;", havoc)
	w.Linef("%s[%s] := %s;", memory, addrA, havoc)
	w.CloseBlock()
}
