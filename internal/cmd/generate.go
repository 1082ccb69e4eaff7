package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qiminglab/qiming/internal/config"
	"github.com/qiminglab/qiming/internal/core"
	"github.com/qiminglab/qiming/internal/output"
)

var generateCmd = &cobra.Command{
	Use:   "generate <surname>",
	Short: "Generate ranked name suggestions",
	Long: `Generate ranked given-name suggestions for a surname from the character
dictionary, scored with the same composite model as the score command.

Element preferences default to the favorable elements of the birth chart
when --birth is supplied; explicit --prefer values win over the chart.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("birth", "", "birth date (YYYY-MM-DD)")
	generateCmd.Flags().Int("hour", 12, "birth hour of day (0-23), used with --birth")
	generateCmd.Flags().StringP("gender", "g", "any", "gender convention: any, male, female")
	generateCmd.Flags().String("style", "any", "naming style: any, classic, modern, elegant")
	generateCmd.Flags().String("source", "any", "literary source: any, poetry, idiom")
	generateCmd.Flags().Int("chars", 2, "given-name character count (1 or 2)")
	generateCmd.Flags().IntP("max", "m", 0, "maximum results (default 10, cap 50)")
	generateCmd.Flags().StringSlice("prefer", nil, "preferred elements (wood, fire, earth, metal, water)")
	generateCmd.Flags().StringSlice("avoid", nil, "avoided elements")
	generateCmd.Flags().StringP("output", "o", "table", "output format: table, json, markdown")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	surname := strings.TrimSpace(args[0])

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	birth, err := birthFromFlags(cmd)
	if err != nil {
		return err
	}

	req, err := generationRequest(cmd, surname, birth)
	if err != nil {
		return err
	}

	cfg := config.Get()
	eng, cleanup, err := buildEngine(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("initializing engine: %w", err)
	}
	defer cleanup()

	results, err := eng.Generate(cmd.Context(), req)
	if err != nil {
		return err
	}

	formatter := output.NewFormatter(format)
	rendered, err := formatter.FormatSuggestions(results)
	if err != nil {
		return err
	}

	cmd.Println(rendered)
	return nil
}

func generationRequest(cmd *cobra.Command, surname string, birth *core.BirthMoment) (*core.GenerationRequest, error) {
	gender, _ := cmd.Flags().GetString("gender")
	style, _ := cmd.Flags().GetString("style")
	source, _ := cmd.Flags().GetString("source")
	chars, _ := cmd.Flags().GetInt("chars")
	max, _ := cmd.Flags().GetInt("max")

	prefer, err := elementsFromFlag(cmd, "prefer")
	if err != nil {
		return nil, err
	}
	avoid, err := elementsFromFlag(cmd, "avoid")
	if err != nil {
		return nil, err
	}

	return &core.GenerationRequest{
		Surname:           surname,
		Gender:            core.Gender(strings.ToLower(gender)),
		Birth:             birth,
		PreferredElements: prefer,
		AvoidedElements:   avoid,
		Style:             core.Style(strings.ToLower(style)),
		Source:            core.Source(strings.ToLower(source)),
		GivenNameChars:    chars,
		MaxResults:        max,
	}, nil
}

func elementsFromFlag(cmd *cobra.Command, name string) ([]core.Element, error) {
	values, _ := cmd.Flags().GetStringSlice(name)
	elements := make([]core.Element, 0, len(values))
	for _, value := range values {
		element, ok := core.ParseElement(value)
		if !ok {
			return nil, fmt.Errorf("invalid --%s element: %s", name, value)
		}
		elements = append(elements, element)
	}
	return elements, nil
}
