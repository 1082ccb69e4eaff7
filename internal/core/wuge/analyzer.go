package wuge

// Policy carries the tunable weights for the overall grid score. The human
// and total grids are weighted heaviest; the weights are policy constants
// preserved as configuration.
type Policy struct {
	HumanWeight  float64      `mapstructure:"human_weight"`
	TotalWeight  float64      `mapstructure:"total_weight"`
	EarthWeight  float64      `mapstructure:"earth_weight"`
	HeavenWeight float64      `mapstructure:"heaven_weight"`
	OuterWeight  float64      `mapstructure:"outer_weight"`
	SancaiWeight float64      `mapstructure:"sancai_weight"`
	Sancai       SancaiPolicy `mapstructure:"sancai"`
}

// DefaultPolicy returns the weighting used when no override is configured.
func DefaultPolicy() Policy {
	return Policy{
		HumanWeight:  0.30,
		TotalWeight:  0.25,
		EarthWeight:  0.15,
		HeavenWeight: 0.10,
		OuterWeight:  0.05,
		SancaiWeight: 0.15,
		Sancai:       DefaultSancaiPolicy(),
	}
}

// fortunePoints maps a luck classification to its score contribution.
var fortunePoints = map[Fortune]int{
	FortuneAuspicious:   90,
	FortuneMixed:        65,
	FortuneInauspicious: 40,
}

// Analysis is the grid analyzer's full output for one name.
type Analysis struct {
	Grids   *Grids           `json:"grids"`
	Entries map[string]Entry `json:"entries"`
	Talents Talents          `json:"talents"`
	Score   int              `json:"score"`
}

// Analyzer computes the overall grid score for stroke inputs.
type Analyzer struct {
	policy Policy
}

// NewAnalyzer builds an analyzer with the given policy. A zero policy falls
// back to defaults.
func NewAnalyzer(policy Policy) *Analyzer {
	if policy.HumanWeight == 0 && policy.TotalWeight == 0 {
		policy = DefaultPolicy()
	}
	if policy.Sancai == (SancaiPolicy{}) {
		policy.Sancai = DefaultSancaiPolicy()
	}
	return &Analyzer{policy: policy}
}

// Analyze computes the five grids, their luck entries, the Three Talents,
// and the weighted overall score.
func (a *Analyzer) Analyze(surnameStrokes, givenStrokes []int) (*Analysis, error) {
	grids, err := Compute(surnameStrokes, givenStrokes)
	if err != nil {
		return nil, err
	}

	named := map[string]int{
		"heaven": grids.Heaven,
		"human":  grids.Human,
		"earth":  grids.Earth,
		"outer":  grids.Outer,
		"total":  grids.Total,
	}

	entries := make(map[string]Entry, len(named))
	for name, number := range named {
		entry, err := Lookup(number)
		if err != nil {
			return nil, err
		}
		entries[name] = entry
	}

	talents := ThreeTalents(grids, a.policy.Sancai)

	weighted := a.policy.HumanWeight*float64(fortunePoints[entries["human"].Fortune]) +
		a.policy.TotalWeight*float64(fortunePoints[entries["total"].Fortune]) +
		a.policy.EarthWeight*float64(fortunePoints[entries["earth"].Fortune]) +
		a.policy.HeavenWeight*float64(fortunePoints[entries["heaven"].Fortune]) +
		a.policy.OuterWeight*float64(fortunePoints[entries["outer"].Fortune]) +
		a.policy.SancaiWeight*float64(talents.Score)

	return &Analysis{
		Grids:   grids,
		Entries: entries,
		Talents: talents,
		Score:   clampScore(int(weighted + 0.5)),
	}, nil
}
