// Package phonetic scores tone-pattern harmony and flags homophone
// collisions for full-name readings.
package phonetic

import (
	"errors"
	"fmt"
)

// ErrInvalidTones marks tone input violating the caller contract.
var ErrInvalidTones = errors.New("invalid tone pattern")

// Tones run 1-4 with 0 for the neutral tone.
const (
	ToneNeutral = 0
	ToneFalling = 4
)

// Policy carries the tunable phonetic scoring constants.
type Policy struct {
	Baseline          int     `mapstructure:"baseline"`
	MonotonePenalty   int     `mapstructure:"monotone_penalty"`
	AlternationBonus  int     `mapstructure:"alternation_bonus"`
	OpenEndingBonus   int     `mapstructure:"open_ending_bonus"`
	HomophonePenalty  int     `mapstructure:"homophone_penalty"`
	ReadabilityWeight float64 `mapstructure:"readability_weight"`
}

// DefaultPolicy returns the constants used when no override is configured.
func DefaultPolicy() Policy {
	return Policy{
		Baseline:          60,
		MonotonePenalty:   25,
		AlternationBonus:  10,
		OpenEndingBonus:   10,
		HomophonePenalty:  15,
		ReadabilityWeight: 0.2,
	}
}

// validateTones rejects out-of-range tone values and empty patterns.
func validateTones(tones []int) error {
	if len(tones) == 0 {
		return fmt.Errorf("%w: empty pattern", ErrInvalidTones)
	}
	for _, tone := range tones {
		if tone < 0 || tone > 4 {
			return fmt.Errorf("%w: tone %d out of range [0, 4]", ErrInvalidTones, tone)
		}
	}
	return nil
}

// isLevel reports whether a tone is a level (ping) tone. The neutral tone is
// treated as level.
func isLevel(tone int) bool {
	return tone <= 2
}

// harmonyScore rates the raw tone contour on the policy's point scale.
func harmonyScore(tones []int, policy Policy) int {
	score := policy.Baseline

	if allSame(tones) {
		score -= policy.MonotonePenalty
	}

	for i := 1; i < len(tones); i++ {
		if isLevel(tones[i-1]) != isLevel(tones[i]) {
			score += policy.AlternationBonus
		}
	}

	if tones[len(tones)-1] != ToneFalling {
		score += policy.OpenEndingBonus
	}

	return clamp(score)
}

// readabilityScore rewards tone variety across the 1-4 range.
func readabilityScore(tones []int) int {
	distinct := map[int]bool{}
	for _, tone := range tones {
		if tone >= 1 && tone <= 4 {
			distinct[tone] = true
		}
	}

	span := len(tones)
	if span > 4 {
		span = 4
	}
	if span == 0 {
		return 0
	}
	return clamp(len(distinct) * 100 / span)
}

func allSame(tones []int) bool {
	for _, tone := range tones[1:] {
		if tone != tones[0] {
			return false
		}
	}
	return true
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
