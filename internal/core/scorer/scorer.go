// Package scorer blends the chart, grid, phonetic, and meaning signals into
// one composite name score.
package scorer

import (
	"fmt"

	"github.com/qiminglab/qiming/internal/core"
	"github.com/qiminglab/qiming/internal/core/bazi"
	"github.com/qiminglab/qiming/internal/core/phonetic"
	"github.com/qiminglab/qiming/internal/core/wuge"
)

// Weights fixes the contribution of each signal to the overall score.
type Weights struct {
	Chart    float64 `mapstructure:"chart"`
	Grid     float64 `mapstructure:"grid"`
	Phonetic float64 `mapstructure:"phonetic"`
	Meaning  float64 `mapstructure:"meaning"`
}

// DefaultWeights returns the fixed production blend.
func DefaultWeights() Weights {
	return Weights{Chart: 0.30, Grid: 0.25, Phonetic: 0.20, Meaning: 0.25}
}

// RatingBands maps score thresholds to qualitative labels. Boundaries are
// tunable policy, not a load-bearing contract.
type RatingBands struct {
	Excellent int `mapstructure:"excellent"`
	Good      int `mapstructure:"good"`
	Fair      int `mapstructure:"fair"`
}

// DefaultRatingBands returns the production band boundaries.
func DefaultRatingBands() RatingBands {
	return RatingBands{Excellent: 90, Good: 80, Fair: 70}
}

// Label maps a score to its rating label.
func (b RatingBands) Label(score int) string {
	switch {
	case score >= b.Excellent:
		return "excellent"
	case score >= b.Good:
		return "good"
	case score >= b.Fair:
		return "fair"
	default:
		return "below average"
	}
}

// neutralChartScore is the documented default used when no birth chart is
// supplied; the weight blend is unchanged.
const neutralChartScore = 50

// ChartScorer rates candidate elements against a chart. Satisfied by
// *bazi.Analyzer.
type ChartScorer interface {
	ScoreElements(chart *bazi.Chart, candidates []core.Element) (int, error)
}

// GridAnalyzer computes the grid analysis. Satisfied by *wuge.Analyzer or a
// cache-backed decorator.
type GridAnalyzer interface {
	Analyze(surnameStrokes, givenStrokes []int) (*wuge.Analysis, error)
}

// PhoneticAnalyzer scores tone patterns. Satisfied by *phonetic.Analyzer or
// a cache-backed decorator.
type PhoneticAnalyzer interface {
	Analyze(tones []int, reading string) (*phonetic.Analysis, error)
}

// Scorer combines the three analyzers into composite name scores. Score is
// a pure function of its inputs; caching lives above it.
type Scorer struct {
	chart    ChartScorer
	grid     GridAnalyzer
	phonetic PhoneticAnalyzer
	weights  Weights
	bands    RatingBands
}

// New builds a composite scorer. Zero weights or bands fall back to the
// defaults.
func New(chart ChartScorer, grid GridAnalyzer, phon PhoneticAnalyzer, weights Weights, bands RatingBands) *Scorer {
	if weights == (Weights{}) {
		weights = DefaultWeights()
	}
	if bands == (RatingBands{}) {
		bands = DefaultRatingBands()
	}
	return &Scorer{chart: chart, grid: grid, phonetic: phon, weights: weights, bands: bands}
}

// Score rates a full name from its per-character attributes and an optional
// four-pillar chart. A nil chart scores the chart signal at the neutral
// midpoint. Empty inputs are contract violations.
func (s *Scorer) Score(surname, given []*core.CharacterInfo, chart *bazi.Chart) (*core.NameScore, error) {
	if len(surname) == 0 || len(given) == 0 {
		return nil, fmt.Errorf("surname and given name are both required")
	}

	chartScore := neutralChartScore
	if chart != nil {
		elements := make([]core.Element, 0, len(given))
		for _, info := range given {
			elements = append(elements, info.Element)
		}
		score, err := s.chart.ScoreElements(chart, elements)
		if err != nil {
			return nil, err
		}
		chartScore = score
	}

	gridAnalysis, err := s.grid.Analyze(strokes(surname), strokes(given))
	if err != nil {
		return nil, err
	}

	phoneticAnalysis, err := s.phonetic.Analyze(tones(surname, given), reading(surname, given))
	if err != nil {
		return nil, err
	}

	meaningScore := meaningQuality(given)

	overall := s.weights.Chart*float64(chartScore) +
		s.weights.Grid*float64(gridAnalysis.Score) +
		s.weights.Phonetic*float64(phoneticAnalysis.Score) +
		s.weights.Meaning*float64(meaningScore)
	rounded := clamp(int(overall + 0.5))

	breakdown := []string{
		fmt.Sprintf("chart %d/100 (weight %.2f)", chartScore, s.weights.Chart),
		fmt.Sprintf("grids %d/100 (weight %.2f), human grid %s, total grid %s",
			gridAnalysis.Score, s.weights.Grid,
			gridAnalysis.Entries["human"].Fortune, gridAnalysis.Entries["total"].Fortune),
		fmt.Sprintf("phonetics %d/100 (weight %.2f)", phoneticAnalysis.Score, s.weights.Phonetic),
		fmt.Sprintf("meaning %d/100 (weight %.2f)", meaningScore, s.weights.Meaning),
	}
	breakdown = append(breakdown, phoneticAnalysis.HomophoneWarnings...)

	return &core.NameScore{
		Overall:       rounded,
		Rating:        s.bands.Label(rounded),
		ChartScore:    chartScore,
		GridScore:     gridAnalysis.Score,
		PhoneticScore: phoneticAnalysis.Score,
		MeaningScore:  meaningScore,
		Breakdown:     breakdown,
	}, nil
}

// strokes extracts the grid inputs. Grids are computed from classical
// dictionary counts; entries without one fall back to the modern count.
func strokes(infos []*core.CharacterInfo) []int {
	counts := make([]int, 0, len(infos))
	for _, info := range infos {
		count := info.ClassicalStrokes
		if count == 0 {
			count = info.Strokes
		}
		counts = append(counts, count)
	}
	return counts
}

func tones(surname, given []*core.CharacterInfo) []int {
	pattern := make([]int, 0, len(surname)+len(given))
	for _, info := range surname {
		pattern = append(pattern, info.Tone)
	}
	for _, info := range given {
		pattern = append(pattern, info.Tone)
	}
	return pattern
}

func reading(surname, given []*core.CharacterInfo) string {
	full := ""
	for _, info := range surname {
		full += info.Pinyin
	}
	for _, info := range given {
		full += info.Pinyin
	}
	return full
}

func meaningQuality(given []*core.CharacterInfo) int {
	if len(given) == 0 {
		return 0
	}
	total := 0
	for _, info := range given {
		total += info.MeaningQuality
	}
	return clamp(total / len(given))
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
