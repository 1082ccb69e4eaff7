package scorer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qiminglab/qiming/internal/core"
	"github.com/qiminglab/qiming/internal/core/bazi"
	"github.com/qiminglab/qiming/internal/core/phonetic"
	"github.com/qiminglab/qiming/internal/core/wuge"
)

type stubChart struct {
	score int
	err   error
	calls int
}

func (s *stubChart) ScoreElements(chart *bazi.Chart, candidates []core.Element) (int, error) {
	s.calls++
	return s.score, s.err
}

type stubGrid struct {
	analysis *wuge.Analysis
	err      error

	gotSurname []int
	gotGiven   []int
}

func (s *stubGrid) Analyze(surnameStrokes, givenStrokes []int) (*wuge.Analysis, error) {
	s.gotSurname = surnameStrokes
	s.gotGiven = givenStrokes
	return s.analysis, s.err
}

type stubPhonetic struct {
	analysis *phonetic.Analysis
	err      error
}

func (s *stubPhonetic) Analyze(tones []int, reading string) (*phonetic.Analysis, error) {
	return s.analysis, s.err
}

func gridAnalysis(score int) *wuge.Analysis {
	return &wuge.Analysis{
		Score: score,
		Entries: map[string]wuge.Entry{
			"human": {Number: 15, Fortune: wuge.FortuneAuspicious},
			"total": {Number: 27, Fortune: wuge.FortuneMixed},
		},
	}
}

func charInfo(char, pinyin string, strokes, tone, quality int, element core.Element) *core.CharacterInfo {
	return &core.CharacterInfo{
		Char:           char,
		Strokes:        strokes,
		Tone:           tone,
		Pinyin:         pinyin,
		MeaningQuality: quality,
		Element:        element,
	}
}

func fixtureName() (surname, given []*core.CharacterInfo) {
	surname = []*core.CharacterInfo{charInfo("王", "wang", 4, 2, 70, core.ElementEarth)}
	given = []*core.CharacterInfo{
		charInfo("浩", "hao", 10, 4, 80, core.ElementWater),
		charInfo("宇", "yu", 6, 3, 60, core.ElementEarth),
	}
	return surname, given
}

func TestDefaultWeightsSumToOne(t *testing.T) {
	w := DefaultWeights()
	require.InDelta(t, 1.0, w.Chart+w.Grid+w.Phonetic+w.Meaning, 1e-9)
	require.Equal(t, 0.30, w.Chart)
	require.Equal(t, 0.25, w.Grid)
	require.Equal(t, 0.20, w.Phonetic)
	require.Equal(t, 0.25, w.Meaning)
}

func TestRatingBandLabels(t *testing.T) {
	bands := DefaultRatingBands()
	cases := map[int]string{
		100: "excellent",
		90:  "excellent",
		89:  "good",
		80:  "good",
		79:  "fair",
		70:  "fair",
		69:  "below average",
		0:   "below average",
	}
	for score, want := range cases {
		require.Equal(t, want, bands.Label(score), "score %d", score)
	}
}

func TestScoreWithoutChartUsesNeutralMidpoint(t *testing.T) {
	chart := &stubChart{score: 99}
	s := New(chart, &stubGrid{analysis: gridAnalysis(70)}, &stubPhonetic{analysis: &phonetic.Analysis{Score: 90}}, Weights{}, RatingBands{})
	surname, given := fixtureName()

	result, err := s.Score(surname, given, nil)
	require.NoError(t, err)

	require.Equal(t, 50, result.ChartScore)
	require.Zero(t, chart.calls)

	// 0.30*50 + 0.25*70 + 0.20*90 + 0.25*70 = 68
	require.Equal(t, 68, result.Overall)
	require.Equal(t, "below average", result.Rating)
}

func TestScoreBlendsWeightedSignals(t *testing.T) {
	s := New(&stubChart{score: 80}, &stubGrid{analysis: gridAnalysis(70)}, &stubPhonetic{analysis: &phonetic.Analysis{Score: 90}}, Weights{}, RatingBands{})
	surname, given := fixtureName()
	chart := &bazi.Chart{}

	result, err := s.Score(surname, given, chart)
	require.NoError(t, err)

	require.Equal(t, 80, result.ChartScore)
	require.Equal(t, 70, result.GridScore)
	require.Equal(t, 90, result.PhoneticScore)
	require.Equal(t, 70, result.MeaningScore)

	// 0.30*80 + 0.25*70 + 0.20*90 + 0.25*70 = 77, rounded up from 77.0
	require.Equal(t, 77, result.Overall)
	require.Equal(t, "fair", result.Rating)
}

func TestScoreMeaningIsGivenAverage(t *testing.T) {
	s := New(&stubChart{}, &stubGrid{analysis: gridAnalysis(70)}, &stubPhonetic{analysis: &phonetic.Analysis{Score: 90}}, Weights{}, RatingBands{})
	surname := []*core.CharacterInfo{charInfo("李", "li", 7, 3, 10, core.ElementFire)}
	given := []*core.CharacterInfo{
		charInfo("思", "si", 9, 1, 90, core.ElementMetal),
		charInfo("远", "yuan", 7, 3, 60, core.ElementEarth),
	}

	result, err := s.Score(surname, given, nil)
	require.NoError(t, err)
	require.Equal(t, 75, result.MeaningScore)
}

func TestScoreCustomWeights(t *testing.T) {
	weights := Weights{Chart: 1.0}
	s := New(&stubChart{score: 83}, &stubGrid{analysis: gridAnalysis(40)}, &stubPhonetic{analysis: &phonetic.Analysis{Score: 40}}, weights, RatingBands{})
	surname, given := fixtureName()

	result, err := s.Score(surname, given, &bazi.Chart{})
	require.NoError(t, err)
	require.Equal(t, 83, result.Overall)
	require.Equal(t, "good", result.Rating)
}

func TestScoreBreakdownIncludesHomophoneWarnings(t *testing.T) {
	warning := `reads like "shibai" (failure)`
	phon := &stubPhonetic{analysis: &phonetic.Analysis{Score: 55, HomophoneWarnings: []string{warning}}}
	s := New(&stubChart{}, &stubGrid{analysis: gridAnalysis(70)}, phon, Weights{}, RatingBands{})
	surname, given := fixtureName()

	result, err := s.Score(surname, given, nil)
	require.NoError(t, err)

	require.Len(t, result.Breakdown, 5)
	require.Equal(t, "chart 50/100 (weight 0.30)", result.Breakdown[0])
	require.Contains(t, result.Breakdown[1], "human grid auspicious")
	require.Contains(t, result.Breakdown[1], "total grid mixed")
	require.Equal(t, warning, result.Breakdown[4])
}

func TestScoreRequiresBothNames(t *testing.T) {
	s := New(&stubChart{}, &stubGrid{analysis: gridAnalysis(70)}, &stubPhonetic{analysis: &phonetic.Analysis{}}, Weights{}, RatingBands{})
	surname, given := fixtureName()

	_, err := s.Score(nil, given, nil)
	require.Error(t, err)

	_, err = s.Score(surname, nil, nil)
	require.Error(t, err)
}

func TestScorePropagatesAnalyzerErrors(t *testing.T) {
	surname, given := fixtureName()
	chartErr := errors.New("chart failed")
	gridErr := errors.New("grid failed")
	phonErr := errors.New("phonetic failed")

	s := New(&stubChart{err: chartErr}, &stubGrid{analysis: gridAnalysis(70)}, &stubPhonetic{analysis: &phonetic.Analysis{}}, Weights{}, RatingBands{})
	_, err := s.Score(surname, given, &bazi.Chart{})
	require.ErrorIs(t, err, chartErr)

	s = New(&stubChart{}, &stubGrid{err: gridErr}, &stubPhonetic{analysis: &phonetic.Analysis{}}, Weights{}, RatingBands{})
	_, err = s.Score(surname, given, nil)
	require.ErrorIs(t, err, gridErr)

	s = New(&stubChart{}, &stubGrid{analysis: gridAnalysis(70)}, &stubPhonetic{err: phonErr}, Weights{}, RatingBands{})
	_, err = s.Score(surname, given, nil)
	require.ErrorIs(t, err, phonErr)
}

// Grid numerology is defined over classical dictionary counts, which can
// differ from the modern simplified counts (张 is 7 modern, 11 classical).
func TestScoreFeedsClassicalStrokesToGrids(t *testing.T) {
	grid := &stubGrid{analysis: gridAnalysis(70)}
	s := New(&stubChart{}, grid, &stubPhonetic{analysis: &phonetic.Analysis{}}, Weights{}, RatingBands{})

	surname := []*core.CharacterInfo{
		{Char: "张", Strokes: 7, ClassicalStrokes: 11, Tone: 1, Pinyin: "zhang"},
	}
	given := []*core.CharacterInfo{
		{Char: "伟", Strokes: 6, ClassicalStrokes: 11, Tone: 3, Pinyin: "wei", MeaningQuality: 80},
		{Char: "文", Strokes: 4, Tone: 2, Pinyin: "wen", MeaningQuality: 75},
	}

	_, err := s.Score(surname, given, nil)
	require.NoError(t, err)
	require.Equal(t, []int{11}, grid.gotSurname)
	// 文 carries no classical count, so the modern count stands in.
	require.Equal(t, []int{11, 4}, grid.gotGiven)
}

func TestScoreWithRealAnalyzersIsDeterministic(t *testing.T) {
	s := New(
		bazi.NewAnalyzer(bazi.Policy{}),
		wuge.NewAnalyzer(wuge.Policy{}),
		phonetic.NewAnalyzer(phonetic.Policy{}),
		Weights{}, RatingBands{},
	)
	surname, given := fixtureName()

	first, err := s.Score(surname, given, nil)
	require.NoError(t, err)
	second, err := s.Score(surname, given, nil)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.GreaterOrEqual(t, first.Overall, 0)
	require.LessOrEqual(t, first.Overall, 100)
	require.Equal(t, 50, first.ChartScore)
	require.NotEmpty(t, first.Rating)
	require.NotEmpty(t, first.Breakdown)
}
