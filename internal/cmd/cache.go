package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/qiminglab/qiming/internal/config"
	"github.com/qiminglab/qiming/internal/core/cache"
	"github.com/qiminglab/qiming/internal/output"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect engine caches",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-cache counters and health",
	Long: `Show hit, miss, eviction, and expiration counters plus the health
verdict for every engine cache. A fresh process reports empty caches; the
command is most useful against a long-running server via the HTTP API.`,
	RunE: runCacheStats,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheStatsCmd)

	cacheStatsCmd.Flags().StringP("output", "o", "table", "output format: table, json")
}

func runCacheStats(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	cfg := config.Get()
	registry := cache.NewRegistry(cfg.Cache)
	stats := registry.StatsByKind()
	health := registry.HealthByKind()

	if format == output.FormatJSON {
		payload := struct {
			Stats  map[cache.Kind]cache.Stats  `json:"stats"`
			Health map[cache.Kind]cache.Health `json:"health"`
		}{Stats: stats, Health: health}

		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	kinds := make([]cache.Kind, 0, len(stats))
	for kind := range stats {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Cache", "Size", "Hits", "Misses", "Hit Rate", "Evictions", "Expirations", "Health"})

	for _, kind := range kinds {
		s := stats[kind]
		h := health[kind]
		t.AppendRow(table.Row{
			string(kind),
			fmt.Sprintf("%d/%d", s.Size, s.MaxSize),
			s.Hits,
			s.Misses,
			fmt.Sprintf("%.2f", s.HitRate),
			s.Evictions,
			s.Expirations,
			string(h.Status),
		})
	}

	cmd.Println(t.Render())
	return nil
}
