package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlattenName(t *testing.T) {
	assert.Equal(t, "mem.data", FlattenName("mem", "data"))
	assert.Equal(t, "mem", FlattenName("mem", ""))
}

func TestFlattenRef(t *testing.T) {
	ref := &Reference{Name: "io", Type: UInt(8)}
	sub := &SubField{Parent: ref, Field: "bus", Type: UInt(8)}

	assert.Equal(t, "io", FlattenRef(ref))
	assert.Equal(t, "io_bus", FlattenRef(sub))
	assert.Equal(t, "", FlattenRef(&Literal{Value: 1, Width: 1}))
}

func TestSynthesizedNames(t *testing.T) {
	assert.Equal(t, "mem_w_data", MemoryPortWireName("mem", "w", "data"))
	assert.Equal(t, "havoc_mem", HavocWireName("mem"))
	assert.Equal(t, "write_mem_mem", WriteProcedureName("mem"))
}
