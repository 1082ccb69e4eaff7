package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/qiminglab/qiming/internal/config"
	"github.com/qiminglab/qiming/internal/core/store"
	"github.com/qiminglab/qiming/internal/observability"
)

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Manage the character dictionary",
}

var dictImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import characters from a YAML dictionary file",
	Long: `Import characters into the configured libsql store from a YAML file:

characters:
  - char: 睿
    pinyin: rui
    tone: 4
    strokes: 14
    element: metal
    meaning_quality: 88
    gender: any
    style: classic
    source: idiom
    meaning: astute, farsighted

Existing rows for the same character are overwritten. The memory driver has
no persistent dictionary, so import requires store.driver=libsql.`,
	Args: cobra.ExactArgs(1),
	RunE: runDictImport,
}

func init() {
	rootCmd.AddCommand(dictCmd)
	dictCmd.AddCommand(dictImportCmd)
}

func runDictImport(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	if cfg.Store.Driver == "memory" || cfg.Store.Driver == "" {
		return fmt.Errorf("dict import requires store.driver=libsql; the memory driver serves the embedded seed only")
	}

	infos, err := store.LoadCharacterFile(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil && observability.CLILogger != nil {
			observability.CLILogger.Warn("Failed to close dictionary store", zap.Error(err))
		}
	}()

	if err := st.Migrate(ctx); err != nil {
		return err
	}

	imported, err := st.ImportCharacters(ctx, infos)
	if err != nil {
		return err
	}

	if observability.CLILogger != nil {
		observability.CLILogger.Info("Dictionary import complete",
			zap.Int("characters", imported),
			zap.String("file", args[0]))
	}
	cmd.Printf("Imported %d characters from %s\n", imported, args[0])
	return nil
}
