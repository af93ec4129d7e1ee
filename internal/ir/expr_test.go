package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsStaticVsDynamicShift(t *testing.T) {
	assert.True(t, IsStaticShift(OpShl, 1, 1))
	assert.False(t, IsDynamicShift(OpShl, 1, 1))

	assert.True(t, IsDynamicShift(OpShr, 2, 0))
	assert.False(t, IsStaticShift(OpShr, 2, 0))

	assert.False(t, IsStaticShift(OpAdd, 2, 0))
	assert.False(t, IsDynamicShift(OpAdd, 2, 0))
}

func TestResultType(t *testing.T) {
	ref := &Reference{Name: "x", Type: UInt(4)}
	assert.Equal(t, UInt(4), ref.ResultType())

	lit := &Literal{Value: 3, Width: 4}
	assert.Equal(t, UInt(4), lit.ResultType())

	slit := &Literal{Value: 3, Signed: true, Width: 4}
	assert.Equal(t, SInt(4), slit.ResultType())

	mux := &Mux{Cond: ref, TVal: lit, FVal: lit, Type: UInt(4)}
	assert.Equal(t, UInt(4), mux.ResultType())
}
