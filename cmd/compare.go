package cmd

import (
	"errors"
	"fmt"

	"translation-manager/core/config"
	"translation-manager/core/logger"
	"translation-manager/feature/compare"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the compare command
	compareExports       []string
	compareOverrides     []string
	compareCaseSensitive bool
	compareIncludeEmpty  bool
	compareRequireValue  bool
	compareSaveMode      string
	compareSuffix        string
	compareOutputDir     string
	compareExportDeleted string
)

// compareCmd reconciles export files against override files.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare translation exports against override files",
	Long: `Compare one or more XLIFF translation exports against term customizer
override files, reporting mismatched key/locale pairs, per-file and
aggregate statistics, and keys that exist only in the override data.

Examples:
  # Report only
  compare --export en-de.xliff --override terms.csv

  # Case-sensitive comparison, save corrected files next to their sources
  compare --export en-de.xliff --override terms.csv --case-sensitive --save individual

  # Merge all mismatches into one file
  compare --export en-de.xliff --override a.csv --override b.csv \
    --save merge --output-dir ./out --suffix reviewed

  # Also export keys missing from the export data
  compare --export en-de.xliff --override terms.csv --export-deleted deleted_keys.csv`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringSliceVar(&compareExports, "export", nil, "XLIFF export file (repeatable, order matters)")
	compareCmd.Flags().StringSliceVar(&compareOverrides, "override", nil, "Override CSV file (repeatable, order matters)")
	compareCmd.Flags().BoolVar(&compareCaseSensitive, "case-sensitive", false, "Compare values case-sensitively")
	compareCmd.Flags().BoolVar(&compareIncludeEmpty, "include-empty", false, "Report mismatches even when one side is empty")
	compareCmd.Flags().BoolVar(&compareRequireValue, "require-override-value", true, "Only check pairs whose override value is non-empty")
	compareCmd.Flags().StringVar(&compareSaveMode, "save", "", "Save mode: individual or merge (default: report only)")
	compareCmd.Flags().StringVar(&compareSuffix, "suffix", "", "Suffix for output file names")
	compareCmd.Flags().StringVar(&compareOutputDir, "output-dir", ".", "Directory for merged output")
	compareCmd.Flags().StringVar(&compareExportDeleted, "export-deleted", "", "Export deleted keys to this path")

	_ = compareCmd.MarkFlagRequired("export")
	_ = compareCmd.MarkFlagRequired("override")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	if compareSaveMode != "" && compareSaveMode != "individual" && compareSaveMode != "merge" {
		return fmt.Errorf("invalid save mode %q: use individual or merge", compareSaveMode)
	}

	svc := compare.NewService(l)
	session, err := svc.LoadSession(compareExports, compareOverrides)
	if err != nil {
		return err
	}

	policy := compare.Policy{
		CaseSensitive:        compareCaseSensitive,
		IncludeEmpty:         compareIncludeEmpty,
		RequireOverrideValue: compareRequireValue,
	}

	result, stats, err := svc.Compare(session, policy)
	if err != nil {
		var localeErr *compare.LocaleMismatchError
		if errors.As(err, &localeErr) {
			l.Error("Locale mismatch detected",
				zap.Strings("unmatched", localeErr.Unmatched),
				zap.Strings("export_sources", localeErr.SourceLocales),
				zap.Strings("export_targets", localeErr.TargetLocales),
			)
		}
		return err
	}

	printStatistics(l, stats, result)

	if compareSaveMode != "" {
		opts := compare.SaveOptions{Suffix: compareSuffix}
		switch compareSaveMode {
		case "individual":
			saved, err := compare.SaveIndividual(result, session.Overrides, opts)
			for _, path := range saved {
				l.Info("Saved output file", zap.String("file", path))
			}
			if err != nil {
				return err
			}
			if len(saved) == 0 {
				l.Info("No mismatches found to save")
			}
		case "merge":
			path, err := compare.SaveMerged(result, session.Overrides, compareOutputDir, opts)
			if err != nil {
				return err
			}
			l.Info("Saved merged output file", zap.String("file", path))
		}
	}

	if compareExportDeleted != "" {
		if len(result.Deletions) == 0 {
			l.Info("No keys to delete; all override keys exist in the export data")
		} else {
			path, rows, err := compare.ExportDeletedKeys(result, session.Overrides, compareExportDeleted)
			if err != nil {
				return err
			}
			l.Info("Exported deleted keys",
				zap.String("file", path),
				zap.Int("keys", len(result.Deletions)),
				zap.Int("rows", rows),
			)
		}
	}

	return nil
}

// printStatistics logs the aggregate and per-file comparison counters.
func printStatistics(l *zap.Logger, stats compare.Statistics, result *compare.Result) {
	l.Info("Comparison statistics",
		zap.String("run_id", result.RunID),
		zap.Int("export_keys", stats.TotalExportKeys),
		zap.Int("override_keys", stats.TotalOverrideKeys),
		zap.Int("keys_in_both", stats.KeysInBoth),
		zap.Int("keys_only_in_export", stats.KeysOnlyInExport),
		zap.Int("keys_only_in_override", stats.KeysOnlyInOverride),
		zap.Int("mismatched_keys", stats.MismatchedKeys),
		zap.Int("matching_keys", stats.MatchingKeys),
		zap.Int("locales_compared", stats.LocalesCompared),
		zap.String("source_locales", stats.SourceLocaleTag()),
		zap.String("target_locales", stats.TargetLocaleTag()),
	)

	for name, fs := range stats.PerFile {
		l.Info("File statistics",
			zap.String("file", name),
			zap.Int("total_keys", fs.TotalKeys),
			zap.Int("keys_in_export", fs.KeysInExport),
			zap.Int("keys_only_in_file", fs.KeysOnlyInFile),
			zap.Int("mismatched_keys", fs.MismatchedKeys),
			zap.Int("matching_keys", fs.MatchingKeys),
		)
	}

	if len(result.Deletions) > 0 {
		l.Warn("Keys present only in override data", zap.Int("count", len(result.Deletions)))
	}
}
