package phonetic

// Analysis is the phonetic analyzer's output for one full name.
type Analysis struct {
	Tones             []int    `json:"tones"`
	HarmonyScore      int      `json:"harmony_score"`
	ReadabilityScore  int      `json:"readability_score"`
	HomophoneWarnings []string `json:"homophone_warnings,omitempty"`
	Score             int      `json:"score"`
}

// Analyzer scores tone patterns and homophone collisions.
type Analyzer struct {
	policy Policy
}

// NewAnalyzer builds an analyzer with the given policy. A zero policy falls
// back to defaults.
func NewAnalyzer(policy Policy) *Analyzer {
	if policy == (Policy{}) {
		policy = DefaultPolicy()
	}
	return &Analyzer{policy: policy}
}

// Analyze scores the ordered tone pattern of a full name plus its pinyin
// reading. Patterns of any length >= 1 are accepted; single-character given
// names produce two-tone patterns.
func (a *Analyzer) Analyze(tones []int, reading string) (*Analysis, error) {
	if err := validateTones(tones); err != nil {
		return nil, err
	}

	harmony := harmonyScore(tones, a.policy)
	readability := readabilityScore(tones)
	warnings := MatchHomophones(reading)

	blended := float64(harmony)*(1-a.policy.ReadabilityWeight) +
		float64(readability)*a.policy.ReadabilityWeight
	score := int(blended + 0.5)
	score -= len(warnings) * a.policy.HomophonePenalty

	return &Analysis{
		Tones:             tones,
		HarmonyScore:      harmony,
		ReadabilityScore:  readability,
		HomophoneWarnings: warnings,
		Score:             clamp(score),
	}, nil
}
