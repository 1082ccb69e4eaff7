package bazi

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qiminglab/qiming/internal/core"
)

// weakChart has a jia (wood) day master with only one supporting position:
// fire 4, earth 3, wood 1.
func weakChart() *Chart {
	return &Chart{
		Year:  Pillar{Stem: StemBing, Branch: BranchSi},
		Month: Pillar{Stem: StemDing, Branch: BranchWu},
		Day:   Pillar{Stem: StemJia, Branch: BranchXu},
		Hour:  Pillar{Stem: StemWu, Branch: BranchChou},
	}
}

// strongChart surrounds the jia day master with wood and water.
func strongChart() *Chart {
	return &Chart{
		Year:  Pillar{Stem: StemRen, Branch: BranchZi},
		Month: Pillar{Stem: StemJia, Branch: BranchYin},
		Day:   Pillar{Stem: StemJia, Branch: BranchMao},
		Hour:  Pillar{Stem: StemGui, Branch: BranchHai},
	}
}

func TestElementBalanceSumsToEight(t *testing.T) {
	analyzer := NewAnalyzer(Policy{})

	for _, chart := range []*Chart{weakChart(), strongChart()} {
		balance, err := analyzer.ElementBalance(chart)
		require.NoError(t, err)
		require.Equal(t, 8, balance.Total())
	}
}

func TestElementBalanceCounts(t *testing.T) {
	analyzer := NewAnalyzer(Policy{})

	balance, err := analyzer.ElementBalance(weakChart())
	require.NoError(t, err)
	require.Equal(t, 4, balance[core.ElementFire])
	require.Equal(t, 3, balance[core.ElementEarth])
	require.Equal(t, 1, balance[core.ElementWood])
	require.Equal(t, 0, balance[core.ElementWater])
	require.Equal(t, 0, balance[core.ElementMetal])
}

func TestDayMasterStrength(t *testing.T) {
	analyzer := NewAnalyzer(Policy{})

	strength, err := analyzer.DayMasterStrength(weakChart())
	require.NoError(t, err)
	require.Equal(t, StrengthWeak, strength)

	strength, err = analyzer.DayMasterStrength(strongChart())
	require.NoError(t, err)
	require.Equal(t, StrengthStrong, strength)
}

func TestFavorableUnfavorableDisjointAndComplete(t *testing.T) {
	analyzer := NewAnalyzer(Policy{})

	for _, chart := range []*Chart{weakChart(), strongChart()} {
		favorable, unfavorable, err := analyzer.FavorableUnfavorable(chart)
		require.NoError(t, err)
		require.Len(t, favorable, 2)
		require.Len(t, unfavorable, 3)

		seen := map[core.Element]bool{}
		for _, element := range append(favorable, unfavorable...) {
			require.False(t, seen[element], "element %s listed twice", element)
			seen[element] = true
		}
		require.Len(t, seen, 5)
	}
}

func TestWeakDayMasterFavorsOwnAndGenerating(t *testing.T) {
	analyzer := NewAnalyzer(Policy{})

	favorable, _, err := analyzer.FavorableUnfavorable(weakChart())
	require.NoError(t, err)
	require.ElementsMatch(t, []core.Element{core.ElementWood, core.ElementWater}, favorable)
}

func TestStrongDayMasterFavorsDrainingAndControlling(t *testing.T) {
	analyzer := NewAnalyzer(Policy{})

	favorable, _, err := analyzer.FavorableUnfavorable(strongChart())
	require.NoError(t, err)
	require.ElementsMatch(t, []core.Element{core.ElementFire, core.ElementMetal}, favorable)
}

func TestScoreElements(t *testing.T) {
	analyzer := NewAnalyzer(Policy{})
	chart := weakChart() // favorable: wood, water

	neutral, err := analyzer.ScoreElements(chart, nil)
	require.NoError(t, err)
	require.Equal(t, 50, neutral)

	oneFavorable, err := analyzer.ScoreElements(chart, []core.Element{core.ElementWood})
	require.NoError(t, err)
	require.Equal(t, 62, oneFavorable)

	// Two distinct favorable elements earn the variety bonus.
	twoFavorable, err := analyzer.ScoreElements(chart, []core.Element{core.ElementWood, core.ElementWater})
	require.NoError(t, err)
	require.Equal(t, 50+12+12+6, twoFavorable)

	// Same favorable element twice gets no variety bonus.
	repeated, err := analyzer.ScoreElements(chart, []core.Element{core.ElementWood, core.ElementWood})
	require.NoError(t, err)
	require.Equal(t, 50+12+12, repeated)

	unfavorable, err := analyzer.ScoreElements(chart, []core.Element{core.ElementFire})
	require.NoError(t, err)
	require.Equal(t, 40, unfavorable)
}

func TestScoreElementsClamped(t *testing.T) {
	analyzer := NewAnalyzer(Policy{Baseline: 5, FavorableBonus: 1, UnfavorablePenalty: 50, VarietyBonus: 1})
	chart := weakChart()

	score, err := analyzer.ScoreElements(chart, []core.Element{core.ElementFire, core.ElementFire})
	require.NoError(t, err)
	require.Equal(t, 0, score)

	high := NewAnalyzer(Policy{Baseline: 95, FavorableBonus: 20, UnfavorablePenalty: 1, VarietyBonus: 1})
	score, err = high.ScoreElements(chart, []core.Element{core.ElementWood})
	require.NoError(t, err)
	require.Equal(t, 100, score)
}

func TestValidateRejectsMalformedCharts(t *testing.T) {
	analyzer := NewAnalyzer(Policy{})

	var nilChart *Chart
	require.ErrorIs(t, nilChart.Validate(), ErrInvalidChart)

	bad := weakChart()
	bad.Month.Stem = Stem(10)
	_, err := analyzer.ElementBalance(bad)
	require.ErrorIs(t, err, ErrInvalidChart)
}

func TestAnalyze(t *testing.T) {
	analyzer := NewAnalyzer(Policy{})

	analysis, err := analyzer.Analyze(weakChart())
	require.NoError(t, err)
	require.Equal(t, StemJia, analysis.DayMaster)
	require.Equal(t, StrengthWeak, analysis.Strength)
	require.Equal(t, 8, analysis.Balance.Total())
	require.Len(t, analysis.Favorable, 2)
	require.Len(t, analysis.Unfavorable, 3)
}
