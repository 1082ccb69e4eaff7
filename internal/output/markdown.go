package output

import (
	"fmt"
	"strings"

	"github.com/qiminglab/qiming/internal/core"
)

// MarkdownFormatter renders results as markdown tables.
type MarkdownFormatter struct{}

// FormatScore renders a score report as Markdown.
func (f *MarkdownFormatter) FormatScore(report *ScoreReport) (string, error) {
	if report == nil || report.Score == nil {
		return "", nil
	}

	score := report.Score

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s\n\n", escapeMarkdownCell(report.Surname+report.Given)))
	sb.WriteString("| Signal | Score |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Chart | %d |\n", score.ChartScore))
	sb.WriteString(fmt.Sprintf("| Grids | %d |\n", score.GridScore))
	sb.WriteString(fmt.Sprintf("| Phonetics | %d |\n", score.PhoneticScore))
	sb.WriteString(fmt.Sprintf("| Meaning | %d |\n", score.MeaningScore))
	sb.WriteString(fmt.Sprintf("\n**Overall**: %d (%s)\n", score.Overall, score.Rating))

	if len(score.Breakdown) > 0 {
		sb.WriteString("\n")
		for _, line := range score.Breakdown {
			sb.WriteString("- " + line + "\n")
		}
	}

	return sb.String(), nil
}

// FormatSuggestions renders suggestions as a Markdown table.
func (f *MarkdownFormatter) FormatSuggestions(results []*core.GeneratedName) (string, error) {
	if len(results) == 0 {
		return "No candidates met the score floor.", nil
	}

	var sb strings.Builder
	sb.WriteString("| # | Name | Score | Rating | Notes |\n")
	sb.WriteString("|---|------|-------|--------|-------|\n")

	for i, name := range results {
		if name == nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("| %d | %s | %s | %s | %s |\n",
			i+1,
			escapeMarkdownCell(fullName(name)),
			overall(name.Score),
			escapeMarkdownCell(rating(name.Score)),
			escapeMarkdownCell(name.SourceNote),
		))
	}

	return sb.String(), nil
}

func escapeMarkdownCell(value string) string {
	value = strings.ReplaceAll(value, "|", "\\|")
	value = strings.ReplaceAll(value, "\n", " ")
	return value
}
