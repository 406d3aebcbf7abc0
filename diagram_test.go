package possplan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReachabilityDOT(t *testing.T) {
	dot, err := ReachabilityDOT(validWalkProblem(), 0.5, 4)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(dot, "digraph Reachability {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, "start -> d0")
	assert.Contains(t, dot, `label="move_0_1"`)
	assert.Contains(t, dot, `label="move_1_2"`)
	assert.Contains(t, dot, "doublecircle", "the accepting distribution is highlighted")
}

func TestReachabilityDOTDeterministic(t *testing.T) {
	first, err := ReachabilityDOT(validWalkProblem(), 0.5, 4)
	require.NoError(t, err)
	second, err := ReachabilityDOT(validWalkProblem(), 0.5, 4)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReachabilityDOTDepthZero(t *testing.T) {
	dot, err := ReachabilityDOT(validWalkProblem(), 0.5, 0)
	require.NoError(t, err)

	assert.Contains(t, dot, "d0")
	assert.NotContains(t, dot, "d1", "depth 0 explores no action step")
}
