package serialize

import (
	"testing"

	"github.com/ekiwi/firrtl-uclid/internal/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeString(t *testing.T) {
	s, err := TypeString(ir.UInt(8))
	require.NoError(t, err)
	assert.Equal(t, "bv8", s)

	s, err = TypeString(ir.UInt(1))
	require.NoError(t, err)
	assert.Equal(t, "boolean", s)

	_, err = TypeString(ir.ClockType)
	assert.Error(t, err)
}

func TestAddressWidth(t *testing.T) {
	tests := []struct {
		depth uint
		want  ir.Width
	}{
		{0, 1},
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{256, 8},
		{257, 9},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AddressWidth(tt.depth), "depth=%d", tt.depth)
	}
}

func TestMemoryTypeString(t *testing.T) {
	s, err := MemoryTypeString(ir.UInt(32), 256)
	require.NoError(t, err)
	assert.Equal(t, "[bv8]bv32", s)
}
