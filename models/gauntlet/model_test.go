package gauntlet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProblemIsValid(t *testing.T) {
	p := Problem()
	require.True(t, p.IsValid())
	assert.Equal(t, 6, p.Space().Size())
	assert.Equal(t, 2, p.GoalStates().Size())
}

func TestActionNames(t *testing.T) {
	p := Problem()
	require.Len(t, p.Actions, 2)
	assert.Equal(t, "move_0_1", p.Actions[0].Name)
	assert.Equal(t, "move_1_2", p.Actions[1].Name)
}
