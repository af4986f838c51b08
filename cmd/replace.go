package cmd

import (
	"fmt"

	"translation-manager/core/config"
	"translation-manager/core/locfile"
	"translation-manager/core/logger"
	"translation-manager/feature/searchreplace"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the replace command
	replaceOverrides     []string
	replaceExports       []string
	replaceLanguage      string
	replaceSearch        string
	replaceWith          string
	replaceCaseSensitive bool
	replaceWholeWord     bool
	replaceApply         bool
)

// replaceCmd performs bulk search/replace across localization files.
var replaceCmd = &cobra.Command{
	Use:   "replace",
	Short: "Search and replace values across localization files",
	Long: `Search and replace text in override CSV files and/or XLIFF exports for
one locale. By default only a preview is printed; pass --apply to write
the changed rows to new files. Input files are never modified.

Examples:
  # Preview
  replace --override terms.csv --language de --search "Vorschlag" --replace "Antrag"

  # Apply with whole-word matching
  replace --override terms.csv --language de --search "Idee" --replace "Konzept" \
    --whole-word --apply`,
	RunE: runReplace,
}

func init() {
	replaceCmd.Flags().StringSliceVar(&replaceOverrides, "override", nil, "Override CSV file (repeatable)")
	replaceCmd.Flags().StringSliceVar(&replaceExports, "export", nil, "XLIFF export file (repeatable)")
	replaceCmd.Flags().StringVar(&replaceLanguage, "language", "", "Locale to replace in (required)")
	replaceCmd.Flags().StringVar(&replaceSearch, "search", "", "Text to search for (required)")
	replaceCmd.Flags().StringVar(&replaceWith, "replace", "", "Replacement text")
	replaceCmd.Flags().BoolVar(&replaceCaseSensitive, "case-sensitive", false, "Match case-sensitively")
	replaceCmd.Flags().BoolVar(&replaceWholeWord, "whole-word", false, "Match whole words only")
	replaceCmd.Flags().BoolVar(&replaceApply, "apply", false, "Write changed rows to new files")

	_ = replaceCmd.MarkFlagRequired("language")
	_ = replaceCmd.MarkFlagRequired("search")

	RootCmd.AddCommand(replaceCmd)
}

func runReplace(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	if len(replaceOverrides) == 0 && len(replaceExports) == 0 {
		return fmt.Errorf("at least one --override or --export file is required")
	}

	opts := searchreplace.Options{
		CaseSensitive: replaceCaseSensitive,
		WholeWord:     replaceWholeWord,
	}

	var overrides []*locfile.OverrideFile
	for _, path := range replaceOverrides {
		file, err := locfile.LoadOverrideFile(path)
		if err != nil {
			l.Error("Skipping override file", zap.String("file", path), zap.Error(err))
			continue
		}
		overrides = append(overrides, file)
	}

	var exports []*locfile.ExportFile
	for _, path := range replaceExports {
		file, err := locfile.LoadExportFile(path)
		if err != nil {
			l.Error("Skipping export file", zap.String("file", path), zap.Error(err))
			continue
		}
		exports = append(exports, file)
	}

	preview := searchreplace.PreviewOverrides(overrides, replaceLanguage, replaceSearch, replaceWith, opts)
	for path, changes := range searchreplace.PreviewExports(exports, replaceLanguage, replaceSearch, replaceWith, opts) {
		preview[path] = changes
	}

	if preview.TotalChanges() == 0 {
		l.Info("No replacements found")
		return nil
	}

	l.Info("Replacements found",
		zap.Int("changes", preview.TotalChanges()),
		zap.Int("files", len(preview)),
	)
	for path, changes := range preview {
		for _, change := range changes {
			l.Info("Replacement",
				zap.String("file", path),
				zap.String("key", change.Key),
				zap.String("locale", change.Locale),
				zap.String("old", change.Old),
				zap.String("new", change.New),
			)
		}
	}

	if !replaceApply {
		l.Info("Preview only; pass --apply to write output files")
		return nil
	}

	saved, err := searchreplace.Apply(preview)
	for _, path := range saved {
		l.Info("Saved replacement file", zap.String("file", path))
	}
	if err != nil {
		return err
	}

	return nil
}
