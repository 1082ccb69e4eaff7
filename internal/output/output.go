// Package output renders scores and name suggestions for the CLI.
package output

import (
	"fmt"
	"strings"

	"github.com/qiminglab/qiming/internal/core"
)

// Format represents an output format.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ScoreReport pairs an explicit name with its composite score.
type ScoreReport struct {
	Surname string          `json:"surname"`
	Given   string          `json:"given"`
	Score   *core.NameScore `json:"score"`
}

// Formatter renders score reports and suggestion lists.
type Formatter interface {
	FormatScore(report *ScoreReport) (string, error)
	FormatSuggestions(results []*core.GeneratedName) (string, error)
}

// ParseFormat validates and normalizes a format string.
func ParseFormat(value string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "", string(FormatTable):
		return FormatTable, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatMarkdown):
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", value)
	}
}

// NewFormatter returns a formatter for the requested format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: true}
	case FormatMarkdown:
		return &MarkdownFormatter{}
	default:
		return &TableFormatter{}
	}
}

func fullName(name *core.GeneratedName) string {
	if name == nil {
		return ""
	}
	return name.FullName
}

func overall(score *core.NameScore) string {
	if score == nil {
		return "-"
	}
	return fmt.Sprintf("%d", score.Overall)
}

func rating(score *core.NameScore) string {
	if score == nil {
		return "-"
	}
	return score.Rating
}
