package hirjson

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gcdJSON = `{
  "circuit": {
    "main": {
      "name": "GCD",
      "ports": [
        {"name": "io_value1", "type": {"kind": "unsigned", "width": 16}, "direction": "input"},
        {"name": "io_outputGCD", "type": {"kind": "unsigned", "width": 16}, "direction": "output"}
      ],
      "body": {
        "stmts": [
          {"register": {"name": "x", "type": {"kind": "unsigned", "width": 16}, "clock": {"reference": {"name": "clk", "type": {"kind": "clock"}}}}},
          {"connect": {
            "lhs": {"kind": "outputPort", "name": "io_outputGCD"},
            "rhs": {"reference": {"name": "x", "type": {"kind": "unsigned", "width": 16}}}
          }}
        ]
      }
    }
  },
  "annotations": {
    "bmc": 20,
    "properties": ["io_outputGCD"]
  }
}`

func TestLoadGCDCircuit(t *testing.T) {
	circuit, annotations, err := Load(strings.NewReader(gcdJSON))
	require.NoError(t, err)

	assert.Equal(t, "GCD", circuit.Main.Name)
	require.Len(t, circuit.Main.Ports, 2)
	assert.Equal(t, "io_value1", circuit.Main.Ports[0].Name)
	require.Len(t, circuit.Main.Body.Stmts, 2)

	require.NotNil(t, annotations.BMCSteps)
	assert.Equal(t, uint(20), *annotations.BMCSteps)
	require.Len(t, annotations.Properties, 1)
	assert.Equal(t, "io_outputGCD", annotations.Properties[0].Ref)
}

func TestLoadRejectsUnknownOperator(t *testing.T) {
	badJSON := `{"circuit": {"main": {"name": "m", "body": {"stmts": [
		{"node": {"name": "n", "value": {"prim": {"op": "frobnicate", "type": {"kind": "unsigned", "width": 1}}}, "type": {"kind": "unsigned", "width": 1}}}
	]}}}}`

	_, _, err := Load(strings.NewReader(badJSON))
	assert.Error(t, err)
}

func TestLoadBigLiteral(t *testing.T) {
	bigJSON := `{"circuit": {"main": {"name": "m", "body": {"stmts": [
		{"node": {"name": "n", "value": {"literal": {"big": "340282366920938463463374607431768211455", "width": 128}}, "type": {"kind": "unsigned", "width": 128}}}
	]}}}}`

	circuit, _, err := Load(strings.NewReader(bigJSON))
	require.NoError(t, err)
	require.Len(t, circuit.Main.Body.Stmts, 1)
}
