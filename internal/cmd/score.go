package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/qiminglab/qiming/internal/config"
	"github.com/qiminglab/qiming/internal/core"
	"github.com/qiminglab/qiming/internal/output"
)

var scoreCmd = &cobra.Command{
	Use:   "score <surname> <given>",
	Short: "Score a full name",
	Long: `Score a full name by chart balance, five-grid numerology, phonetic
harmony, and character meaning. Every character must be present in the
dictionary.

Passing --birth adds the four-pillar chart signal; without it the chart
component scores at its neutral default.`,
	Args: cobra.ExactArgs(2),
	RunE: runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().String("birth", "", "birth date (YYYY-MM-DD)")
	scoreCmd.Flags().Int("hour", 12, "birth hour of day (0-23), used with --birth")
	scoreCmd.Flags().StringP("output", "o", "table", "output format: table, json, markdown")
}

func runScore(cmd *cobra.Command, args []string) error {
	surname := strings.TrimSpace(args[0])
	given := strings.TrimSpace(args[1])

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	birth, err := birthFromFlags(cmd)
	if err != nil {
		return err
	}

	cfg := config.Get()
	eng, cleanup, err := buildEngine(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("initializing engine: %w", err)
	}
	defer cleanup()

	score, err := eng.Score(cmd.Context(), surname, given, birth)
	if err != nil {
		return err
	}

	formatter := output.NewFormatter(format)
	rendered, err := formatter.FormatScore(&output.ScoreReport{
		Surname: surname,
		Given:   given,
		Score:   score,
	})
	if err != nil {
		return err
	}

	cmd.Println(rendered)
	return nil
}

func outputFormat(cmd *cobra.Command) (output.Format, error) {
	value, _ := cmd.Flags().GetString("output")
	return output.ParseFormat(value)
}

// birthFromFlags parses the optional --birth/--hour pair.
func birthFromFlags(cmd *cobra.Command) (*core.BirthMoment, error) {
	value, _ := cmd.Flags().GetString("birth")
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid --birth value %q, expected YYYY-MM-DD", value)
	}

	hour, _ := cmd.Flags().GetInt("hour")
	if hour < 0 || hour > 23 {
		return nil, errors.New("--hour must be between 0 and 23")
	}

	return &core.BirthMoment{
		Year:  parsed.Year(),
		Month: int(parsed.Month()),
		Day:   parsed.Day(),
		Hour:  hour,
	}, nil
}
