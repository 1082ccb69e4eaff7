package output

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/qiminglab/qiming/internal/core"
)

// TableFormatter renders results as an ASCII table.
type TableFormatter struct{}

// FormatScore renders a score report as a table plus breakdown notes.
func (f *TableFormatter) FormatScore(report *ScoreReport) (string, error) {
	if report == nil || report.Score == nil {
		return "", nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetTitle(report.Surname + report.Given)
	t.AppendHeader(table.Row{"Signal", "Score"})

	score := report.Score
	t.AppendRow(table.Row{"Chart", score.ChartScore})
	t.AppendRow(table.Row{"Grids", score.GridScore})
	t.AppendRow(table.Row{"Phonetics", score.PhoneticScore})
	t.AppendRow(table.Row{"Meaning", score.MeaningScore})
	t.AppendFooter(table.Row{
		fmt.Sprintf("Overall (%s)", score.Rating),
		score.Overall,
	})

	rendered := t.Render()
	if len(score.Breakdown) > 0 {
		rendered += "\n\n" + strings.Join(score.Breakdown, "\n")
	}
	return rendered, nil
}

// FormatSuggestions renders ranked suggestions as a table.
func (f *TableFormatter) FormatSuggestions(results []*core.GeneratedName) (string, error) {
	if len(results) == 0 {
		return "No candidates met the score floor.", nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "Name", "Score", "Rating", "Notes"})

	for i, name := range results {
		if name == nil {
			continue
		}
		t.AppendRow(table.Row{
			i + 1,
			fullName(name),
			overall(name.Score),
			rating(name.Score),
			name.SourceNote,
		})
	}

	return t.Render(), nil
}
