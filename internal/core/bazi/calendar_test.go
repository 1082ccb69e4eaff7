package bazi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveChartEpochYear(t *testing.T) {
	converter := NewConverter()

	// 1984 is the jia-zi anchor of the 60-year cycle.
	chart, err := converter.ResolveChart(1984, 6, 15, 12)
	require.NoError(t, err)
	require.Equal(t, StemJia, chart.Year.Stem)
	require.Equal(t, BranchZi, chart.Year.Branch)
	require.NoError(t, chart.Validate())
}

func TestResolveChartSixtyYearCycle(t *testing.T) {
	converter := NewConverter()

	a, err := converter.ResolveChart(1984, 3, 1, 8)
	require.NoError(t, err)
	b, err := converter.ResolveChart(2044, 3, 1, 8)
	require.NoError(t, err)
	require.Equal(t, a.Year, b.Year)
}

func TestResolveChartDeterministic(t *testing.T) {
	converter := NewConverter()

	first, err := converter.ResolveChart(1990, 6, 15, 10)
	require.NoError(t, err)
	second, err := converter.ResolveChart(1990, 6, 15, 10)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestResolveChartHourBranches(t *testing.T) {
	converter := NewConverter()

	// 23:00 opens the zi window; each branch covers two hours.
	cases := []struct {
		hour   int
		branch Branch
	}{
		{23, BranchZi},
		{0, BranchZi},
		{1, BranchChou},
		{11, BranchWu},
		{12, BranchWu},
		{22, BranchHai},
	}
	for _, tc := range cases {
		chart, err := converter.ResolveChart(2000, 1, 1, tc.hour)
		require.NoError(t, err)
		require.Equal(t, tc.branch, chart.Hour.Branch, "hour %d", tc.hour)
	}
}

func TestResolveChartRejectsOutOfRangeInput(t *testing.T) {
	converter := NewConverter()

	cases := []struct {
		name                   string
		year, month, day, hour int
	}{
		{"year too early", 1599, 1, 1, 0},
		{"year too late", 2401, 1, 1, 0},
		{"month zero", 2000, 0, 1, 0},
		{"month too large", 2000, 13, 1, 0},
		{"day zero", 2000, 1, 0, 0},
		{"day overflow", 2001, 2, 29, 0},
		{"hour negative", 2000, 1, 1, -1},
		{"hour too large", 2000, 1, 1, 24},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := converter.ResolveChart(tc.year, tc.month, tc.day, tc.hour)
			require.Error(t, err)
		})
	}
}

func TestResolveChartLeapDay(t *testing.T) {
	converter := NewConverter()

	chart, err := converter.ResolveChart(2000, 2, 29, 6)
	require.NoError(t, err)
	require.NoError(t, chart.Validate())
}

func TestParseStemAndBranch(t *testing.T) {
	stem, ok := ParseStem("Jia")
	require.True(t, ok)
	require.Equal(t, StemJia, stem)

	_, ok = ParseStem("nope")
	require.False(t, ok)

	branch, ok := ParseBranch(" hai ")
	require.True(t, ok)
	require.Equal(t, BranchHai, branch)

	_, ok = ParseBranch("")
	require.False(t, ok)
}
