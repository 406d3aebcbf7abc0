package possplan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ModelFile is the on-disk YAML description of a planning problem: named
// states, initial plausibilities, actions as guarded effects, the goal
// condition, and a default necessity threshold.
//
// States are a list rather than a map so the file fixes the state-space
// order and two loads of the same file build identical problems.
type ModelFile struct {
	Name    string             `yaml:"name"`
	States  []StateDef         `yaml:"states"`
	Initial map[string]float64 `yaml:"initial"`
	Actions []ActionDef        `yaml:"actions"`
	Goal    []string           `yaml:"goal"`
	Gamma   float64            `yaml:"gamma"`
}

// StateDef names one state and lists its true propositions.
type StateDef struct {
	Name  string   `yaml:"name"`
	Props []string `yaml:"props"`
}

// ActionDef describes one action as an ordered list of effects.
type ActionDef struct {
	Name    string      `yaml:"name"`
	Effects []EffectDef `yaml:"effects"`
}

// EffectDef is one guarded effect: the guard holds in states containing
// every proposition in When and none in Unless.
type EffectDef struct {
	When     []string     `yaml:"when"`
	Unless   []string     `yaml:"unless"`
	Outcomes []OutcomeDef `yaml:"outcomes"`
}

// OutcomeDef is one consequent of a firing effect.
type OutcomeDef struct {
	Plausibility float64  `yaml:"plausibility"`
	Add          []string `yaml:"add"`
	Del          []string `yaml:"del"`
}

// LoadModelFile reads and parses a model file from disk.
func LoadModelFile(path string) (*ModelFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model file: %w", err)
	}
	return ParseModelFile(data)
}

// ParseModelFile parses YAML model data.
func ParseModelFile(data []byte) (*ModelFile, error) {
	var mf ModelFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("parsing model file: %w", err)
	}
	return &mf, nil
}

func propSet(names []string) PropSet {
	ps := NewPropSet()
	for _, n := range names {
		ps.Add(Proposition(n))
	}
	return ps
}

// Build constructs the Problem the file describes, checking the parts of
// the file the type system cannot: state names must be unique, the
// initial distribution may only mention declared states, and at least one
// state must exist. Structural validity of the resulting problem (action
// partitioning, normalization, goal satisfiability) remains a separate
// Problem.IsValid call, per the reported-not-thrown error policy.
func (mf *ModelFile) Build() (*Problem, error) {
	if len(mf.States) == 0 {
		return nil, fmt.Errorf("model %q declares no states", mf.Name)
	}

	byName := make(map[string]State, len(mf.States))
	states := make([]State, 0, len(mf.States))
	for _, sd := range mf.States {
		if sd.Name == "" {
			return nil, fmt.Errorf("model %q: state with empty name", mf.Name)
		}
		if _, dup := byName[sd.Name]; dup {
			return nil, fmt.Errorf("model %q: duplicate state name %q", mf.Name, sd.Name)
		}
		s := NewStateFromSet(propSet(sd.Props))
		byName[sd.Name] = s
		states = append(states, s)
	}
	space := NewStateSpace(states...)

	initial := NewDist(space)
	for name, p := range mf.Initial {
		s, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("model %q: initial plausibility for undeclared state %q", mf.Name, name)
		}
		initial.Set(s, p)
	}

	actions := make([]Action, 0, len(mf.Actions))
	for _, ad := range mf.Actions {
		if ad.Name == "" {
			return nil, fmt.Errorf("model %q: action with empty name", mf.Name)
		}
		effects := make([]Effect, 0, len(ad.Effects))
		for _, ed := range ad.Effects {
			consequents := make([]Consequent, 0, len(ed.Outcomes))
			for _, od := range ed.Outcomes {
				consequents = append(consequents, Consequent{
					Plausibility: od.Plausibility,
					Additions:    propSet(od.Add),
					Deletions:    propSet(od.Del),
				})
			}
			effects = append(effects, Effect{
				PositiveDiscriminants: propSet(ed.When),
				NegativeDiscriminants: propSet(ed.Unless),
				Consequents:           consequents,
			})
		}
		actions = append(actions, Action{Name: ad.Name, Effects: effects})
	}

	return NewProblem(initial, actions, propSet(mf.Goal)), nil
}
