package annotate

import (
	"testing"

	"github.com/ekiwi/firrtl-uclid/internal/target"
	"github.com/stretchr/testify/assert"
)

func TestApplyNoBMC(t *testing.T) {
	w := target.NewWriter()
	NewSet().WithAssumption("req_valid").WithProperty("resp_ok").Apply(w)

	out := w.String()
	assert.Contains(t, out, "assume assert_req_valid : req_valid;")
	assert.Contains(t, out, "invariant assert_resp_ok : resp_ok;")
	assert.NotContains(t, out, "control")
}

func TestApplyWithBMC(t *testing.T) {
	w := target.NewWriter()
	NewSet().WithBMC(20).Apply(w)

	assert.Equal(t, "control { vobj = unroll(20); check; print_results(); vobj.print_cex(); }\n", w.String())
}

func TestWithBMCOverwritesPrevious(t *testing.T) {
	set := NewSet().WithBMC(10).WithBMC(20)
	assert.Equal(t, uint(20), *set.BMCSteps)
}
