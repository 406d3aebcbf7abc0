package possplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadModelFileGauntlet(t *testing.T) {
	mf, err := LoadModelFile("examples/gauntlet.yaml")
	require.NoError(t, err)

	assert.Equal(t, "gauntlet", mf.Name)
	assert.Equal(t, 0.5, mf.Gamma)
	require.Len(t, mf.States, 6)
	require.Len(t, mf.Actions, 2)

	problem, err := mf.Build()
	require.NoError(t, err)
	require.True(t, problem.IsValid())

	result, err := Search(problem, mf.Gamma)
	require.NoError(t, err)
	require.True(t, result.Found)
	require.Len(t, result.Plan, 2)
	assert.Equal(t, "move_0_1", result.Plan[0].Name)
	assert.Equal(t, "move_1_2", result.Plan[1].Name)
}

func TestParseModelFileBad(t *testing.T) {
	_, err := ParseModelFile([]byte("states: {not: [a, list}"))
	assert.Error(t, err)
}

func TestBuildRejectsBadModels(t *testing.T) {
	t.Run("no states", func(t *testing.T) {
		mf := &ModelFile{Name: "empty"}
		_, err := mf.Build()
		assert.ErrorContains(t, err, "declares no states")
	})

	t.Run("duplicate state name", func(t *testing.T) {
		mf := &ModelFile{Name: "dup", States: []StateDef{
			{Name: "s", Props: []string{"a"}},
			{Name: "s", Props: []string{"b"}},
		}}
		_, err := mf.Build()
		assert.ErrorContains(t, err, "duplicate state name")
	})

	t.Run("initial references undeclared state", func(t *testing.T) {
		mf := &ModelFile{
			Name:    "stray",
			States:  []StateDef{{Name: "s", Props: []string{"a"}}},
			Initial: map[string]float64{"ghost": 1},
		}
		_, err := mf.Build()
		assert.ErrorContains(t, err, "undeclared state")
	})

	t.Run("unnamed action", func(t *testing.T) {
		mf := &ModelFile{
			Name:    "anon",
			States:  []StateDef{{Name: "s", Props: []string{"a"}}},
			Initial: map[string]float64{"s": 1},
			Actions: []ActionDef{{}},
		}
		_, err := mf.Build()
		assert.ErrorContains(t, err, "action with empty name")
	})
}

func TestBuildLeavesValidityToProblem(t *testing.T) {
	// A file whose action guards do not partition the space still builds;
	// the structural check is Problem.IsValid, reported not thrown.
	mf := &ModelFile{
		Name: "gappy",
		States: []StateDef{
			{Name: "s1", Props: []string{"a"}},
			{Name: "s2", Props: []string{"b"}},
		},
		Initial: map[string]float64{"s1": 1},
		Actions: []ActionDef{{
			Name: "partial",
			Effects: []EffectDef{{
				When:     []string{"a"},
				Outcomes: []OutcomeDef{{Plausibility: 1}},
			}},
		}},
		Goal: []string{"b"},
	}

	problem, err := mf.Build()
	require.NoError(t, err)
	assert.False(t, problem.IsValid())
}
