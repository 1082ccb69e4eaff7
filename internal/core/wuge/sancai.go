package wuge

import "github.com/qiminglab/qiming/internal/core"

// Relation classifies how two adjacent talent elements interact.
type Relation string

const (
	RelationGenerating  Relation = "generating"
	RelationDestructive Relation = "destructive"
	RelationIdentical   Relation = "identical"
	RelationNeutral     Relation = "neutral"
)

// Talents is the Three-Talents view over the heaven, human, and earth grids.
type Talents struct {
	Heaven        core.Element `json:"heaven"`
	Human         core.Element `json:"human"`
	Earth         core.Element `json:"earth"`
	HeavenToHuman Relation     `json:"heaven_to_human"`
	HumanToEarth  Relation     `json:"human_to_earth"`
	Score         int          `json:"score"`
}

// gridElementOrder fixes the grid-number-to-element mapping used by the
// Three-Talents derivation: index is the grid number modulo 5.
var gridElementOrder = [5]core.Element{
	core.ElementWater,
	core.ElementWood,
	core.ElementFire,
	core.ElementEarth,
	core.ElementMetal,
}

// GridElement maps a grid number to its talent element.
func GridElement(number int) core.Element {
	return gridElementOrder[Reduce(number)%5]
}

// SancaiPolicy carries the tunable Three-Talents scoring constants.
type SancaiPolicy struct {
	Base            int `mapstructure:"base"`
	GeneratingBonus int `mapstructure:"generating_bonus"`
	IdenticalBonus  int `mapstructure:"identical_bonus"`
	DestructivePen  int `mapstructure:"destructive_penalty"`
}

// DefaultSancaiPolicy returns the constants used when no override is
// configured.
func DefaultSancaiPolicy() SancaiPolicy {
	return SancaiPolicy{
		Base:            60,
		GeneratingBonus: 15,
		IdenticalBonus:  5,
		DestructivePen:  20,
	}
}

// Relate classifies the interaction between two elements.
func Relate(a, b core.Element) Relation {
	switch {
	case a == b:
		return RelationIdentical
	case a.Generates() == b || b.Generates() == a:
		return RelationGenerating
	case a.Destroys() == b || b.Destroys() == a:
		return RelationDestructive
	default:
		return RelationNeutral
	}
}

// ThreeTalents derives the talent elements for the grids and scores their
// mutual compatibility under the given policy.
func ThreeTalents(grids *Grids, policy SancaiPolicy) Talents {
	if policy == (SancaiPolicy{}) {
		policy = DefaultSancaiPolicy()
	}

	talents := Talents{
		Heaven: GridElement(grids.Heaven),
		Human:  GridElement(grids.Human),
		Earth:  GridElement(grids.Earth),
	}
	talents.HeavenToHuman = Relate(talents.Heaven, talents.Human)
	talents.HumanToEarth = Relate(talents.Human, talents.Earth)

	score := policy.Base
	for _, relation := range []Relation{talents.HeavenToHuman, talents.HumanToEarth} {
		switch relation {
		case RelationGenerating:
			score += policy.GeneratingBonus
		case RelationIdentical:
			score += policy.IdenticalBonus
		case RelationDestructive:
			score -= policy.DestructivePen
		}
	}
	talents.Score = clampScore(score)
	return talents
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
