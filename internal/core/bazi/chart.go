package bazi

import (
	"errors"
	"fmt"

	"github.com/qiminglab/qiming/internal/core"
)

// Pillar is one stem/branch pair of a four-pillar chart.
type Pillar struct {
	Stem   Stem   `json:"stem"`
	Branch Branch `json:"branch"`
}

// Valid reports whether both halves of the pillar are in range.
func (p Pillar) Valid() bool {
	return p.Stem.Valid() && p.Branch.Valid()
}

func (p Pillar) String() string {
	return p.Stem.String() + "-" + p.Branch.String()
}

// Chart is a resolved four-pillar chart. Charts are produced by the calendar
// converter and never mutated afterwards.
type Chart struct {
	Year  Pillar `json:"year"`
	Month Pillar `json:"month"`
	Day   Pillar `json:"day"`
	Hour  Pillar `json:"hour"`
}

// ErrInvalidChart marks a malformed chart handed in by the caller.
var ErrInvalidChart = errors.New("invalid four-pillar chart")

// Validate fails fast on a malformed chart. A chart with any out-of-range
// stem or branch is a caller contract violation.
func (c *Chart) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: chart is nil", ErrInvalidChart)
	}
	for _, pillar := range []struct {
		name string
		p    Pillar
	}{
		{"year", c.Year},
		{"month", c.Month},
		{"day", c.Day},
		{"hour", c.Hour},
	} {
		if !pillar.p.Valid() {
			return fmt.Errorf("%w: %s pillar out of range", ErrInvalidChart, pillar.name)
		}
	}
	return nil
}

// DayMaster returns the stem of the day pillar.
func (c *Chart) DayMaster() Stem {
	return c.Day.Stem
}

// Pillars returns the four pillars in year/month/day/hour order.
func (c *Chart) Pillars() [4]Pillar {
	return [4]Pillar{c.Year, c.Month, c.Day, c.Hour}
}

// Balance holds per-element counts over the eight stem/branch positions.
// The counts always sum to 8 for a valid chart.
type Balance map[core.Element]int

// Total returns the sum of all element counts.
func (b Balance) Total() int {
	total := 0
	for _, count := range b {
		total += count
	}
	return total
}

// Strength classifies the day master relative to the chart balance.
type Strength int

const (
	StrengthWeak Strength = iota
	StrengthStrong
)

func (s Strength) String() string {
	if s == StrengthStrong {
		return "strong"
	}
	return "weak"
}

// Analysis is the full output of the chart analyzer for one chart.
type Analysis struct {
	Balance     Balance        `json:"balance"`
	DayMaster   Stem           `json:"day_master"`
	Strength    Strength       `json:"strength"`
	Favorable   []core.Element `json:"favorable"`
	Unfavorable []core.Element `json:"unfavorable"`
}

// Policy carries the tunable scoring constants for element scoring. The
// numeric values have no documented derivation; they are preserved as
// configuration rather than hard-coded.
type Policy struct {
	Baseline           int `mapstructure:"baseline"`
	FavorableBonus     int `mapstructure:"favorable_bonus"`
	UnfavorablePenalty int `mapstructure:"unfavorable_penalty"`
	VarietyBonus       int `mapstructure:"variety_bonus"`
}

// DefaultPolicy returns the scoring constants used when no override is
// configured.
func DefaultPolicy() Policy {
	return Policy{
		Baseline:           50,
		FavorableBonus:     12,
		UnfavorablePenalty: 10,
		VarietyBonus:       6,
	}
}

// Analyzer computes elemental balance and favorability for charts.
type Analyzer struct {
	policy Policy
}

// NewAnalyzer builds an analyzer with the given policy. Zero-value policies
// fall back to defaults.
func NewAnalyzer(policy Policy) *Analyzer {
	if policy == (Policy{}) {
		policy = DefaultPolicy()
	}
	return &Analyzer{policy: policy}
}

// ElementBalance counts each element over the eight stem/branch positions.
func (a *Analyzer) ElementBalance(chart *Chart) (Balance, error) {
	if err := chart.Validate(); err != nil {
		return nil, err
	}

	balance := Balance{}
	for _, pillar := range chart.Pillars() {
		balance[pillar.Stem.Element()]++
		balance[pillar.Branch.Element()]++
	}
	return balance, nil
}

// DayMasterStrength classifies the day master as strong or weak by counting
// occurrences of its own element and of the element that generates it.
func (a *Analyzer) DayMasterStrength(chart *Chart) (Strength, error) {
	balance, err := a.ElementBalance(chart)
	if err != nil {
		return StrengthWeak, err
	}

	own := chart.DayMaster().Element()
	support := balance[own] + balance[own.GeneratedBy()]
	if support >= 2 {
		return StrengthStrong, nil
	}
	return StrengthWeak, nil
}

// FavorableUnfavorable derives the disjoint favorable and unfavorable
// element sets for the chart.
//
// A weak day master favors its own element and the one that generates it.
// A strong day master favors the element it generates and the element that
// destroys it. Everything else is unfavorable.
func (a *Analyzer) FavorableUnfavorable(chart *Chart) (favorable, unfavorable []core.Element, err error) {
	strength, err := a.DayMasterStrength(chart)
	if err != nil {
		return nil, nil, err
	}

	own := chart.DayMaster().Element()
	favorSet := map[core.Element]bool{}
	if strength == StrengthWeak {
		favorSet[own] = true
		favorSet[own.GeneratedBy()] = true
	} else {
		favorSet[own.Generates()] = true
		favorSet[own.DestroyedBy()] = true
	}

	for _, element := range core.Elements {
		if favorSet[element] {
			favorable = append(favorable, element)
		} else {
			unfavorable = append(unfavorable, element)
		}
	}
	return favorable, unfavorable, nil
}

// Analyze runs the full chart analysis in one pass.
func (a *Analyzer) Analyze(chart *Chart) (*Analysis, error) {
	balance, err := a.ElementBalance(chart)
	if err != nil {
		return nil, err
	}
	strength, err := a.DayMasterStrength(chart)
	if err != nil {
		return nil, err
	}
	favorable, unfavorable, err := a.FavorableUnfavorable(chart)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		Balance:     balance,
		DayMaster:   chart.DayMaster(),
		Strength:    strength,
		Favorable:   favorable,
		Unfavorable: unfavorable,
	}, nil
}

// ScoreElements rates a candidate element set against the chart. Favorable
// elements add a bonus, unfavorable elements subtract a penalty, and two or
// more distinct favorable elements earn a variety bonus. The result is
// anchored at the baseline and clamped to [0,100].
func (a *Analyzer) ScoreElements(chart *Chart, candidates []core.Element) (int, error) {
	favorable, unfavorable, err := a.FavorableUnfavorable(chart)
	if err != nil {
		return 0, err
	}

	favorSet := map[core.Element]bool{}
	for _, element := range favorable {
		favorSet[element] = true
	}
	avoidSet := map[core.Element]bool{}
	for _, element := range unfavorable {
		avoidSet[element] = true
	}

	score := a.policy.Baseline
	distinctFavorable := map[core.Element]bool{}
	for _, candidate := range candidates {
		switch {
		case favorSet[candidate]:
			score += a.policy.FavorableBonus
			distinctFavorable[candidate] = true
		case avoidSet[candidate]:
			score -= a.policy.UnfavorablePenalty
		}
	}
	if len(distinctFavorable) >= 2 {
		score += a.policy.VarietyBonus
	}

	return clamp(score), nil
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
