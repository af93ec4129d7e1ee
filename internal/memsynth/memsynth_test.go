package memsynth

import (
	"strings"
	"testing"

	"github.com/ekiwi/firrtl-uclid/internal/ir"
	"github.com/ekiwi/firrtl-uclid/internal/target"
	"github.com/stretchr/testify/assert"
)

func TestWriteProcedureSingleWriter(t *testing.T) {
	m := &ir.Memory{Name: "m", DataType: ir.UInt(32), Depth: 4, Writers: []ir.Port{{Name: "w"}}}

	w := target.NewWriter()
	WriteProcedure(w, m)
	out := w.String()

	assert.Contains(t, out, "procedure write_mem_m() modifies m, havoc_m;")
	assert.Contains(t, out, "if (m_w_en && m_w_mask) {")
	assert.Contains(t, out, "m[m_w_addr] := m_w_data;")
	assert.Equal(t, 0, strings.Count(out, "havoc havoc_m;"))
}

func TestWriteProcedureTwoWritersHaveOneCollisionClause(t *testing.T) {
	m := &ir.Memory{Name: "m", DataType: ir.UInt(32), Depth: 4, Writers: []ir.Port{{Name: "a"}, {Name: "b"}}}

	w := target.NewWriter()
	WriteProcedure(w, m)
	out := w.String()

	assert.Equal(t, 1, strings.Count(out, "havoc havoc_m;"))
	assert.Contains(t, out, "m_a_en && m_b_en && m_a_mask && m_b_mask && m_a_addr == m_b_addr")
}

func TestWriteProcedureThreeWritersHaveThreeCollisionClauses(t *testing.T) {
	m := &ir.Memory{
		Name: "m", DataType: ir.UInt(8), Depth: 2,
		Writers: []ir.Port{{Name: "a"}, {Name: "b"}, {Name: "c"}},
	}

	w := target.NewWriter()
	WriteProcedure(w, m)
	out := w.String()

	assert.Equal(t, 3, strings.Count(out, "havoc havoc_m;"))
}
