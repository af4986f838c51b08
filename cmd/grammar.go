package cmd

import (
	"context"
	"fmt"

	"translation-manager/core/config"
	"translation-manager/core/llm"
	"translation-manager/core/locfile"
	"translation-manager/core/logger"
	"translation-manager/feature/grammar"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags shared by the grammar subcommands
	grammarOverrides []string
	grammarExports   []string
	grammarLanguage  string
	grammarBatchSize int
	grammarSave      bool
	toneMode         string
)

// grammarCmd is the parent command for LLM-assisted corrections.
var grammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "LLM-assisted grammar checking and tone adjustment",
	Long: `Run localization values through a chat-completions LLM in batches to
check grammar or adjust tone. Placeholders are validated on every returned
correction; violations keep the original value. A failed batch is reported
and skipped, the remaining batches still run.`,
}

// grammarCheckCmd checks grammar for the selected files and language.
var grammarCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check grammar of localization values",
	Long: `Check grammar for one language across the selected files.

Examples:
  grammar check --override terms.csv --language de
  grammar check --export en-de.xliff --language de --batch-size 20 --save`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGrammar(cmd.Context(), "")
	},
}

// grammarToneCmd adjusts tone for the selected files and language.
var grammarToneCmd = &cobra.Command{
	Use:   "tone",
	Short: "Adjust tone of localization values",
	Long: `Adjust the tone of one language across the selected files.

Examples:
  grammar tone --override terms.csv --language de --tone formal --save`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGrammar(cmd.Context(), toneMode)
	},
}

func init() {
	for _, sub := range []*cobra.Command{grammarCheckCmd, grammarToneCmd} {
		sub.Flags().StringSliceVar(&grammarOverrides, "override", nil, "Override CSV file (repeatable)")
		sub.Flags().StringSliceVar(&grammarExports, "export", nil, "XLIFF export file (repeatable)")
		sub.Flags().StringVar(&grammarLanguage, "language", "", "Language to process (required)")
		sub.Flags().IntVar(&grammarBatchSize, "batch-size", 0, "Entries per API call (default from config)")
		sub.Flags().BoolVar(&grammarSave, "save", false, "Save corrections to new files")
		_ = sub.MarkFlagRequired("language")
	}
	grammarToneCmd.Flags().StringVar(&toneMode, "tone", "", "Tone mode: formal or informal (required)")
	_ = grammarToneCmd.MarkFlagRequired("tone")

	grammarCmd.AddCommand(grammarCheckCmd)
	grammarCmd.AddCommand(grammarToneCmd)
	RootCmd.AddCommand(grammarCmd)
}

// runGrammar drives a correction run; an empty tone means grammar check.
func runGrammar(ctx context.Context, tone string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	if cfg.LLM.ApiKey == "" {
		return fmt.Errorf("LLM API key is not configured (set LLM_API_KEY)")
	}
	if len(grammarOverrides) == 0 && len(grammarExports) == 0 {
		return fmt.Errorf("at least one --override or --export file is required")
	}

	files := make(map[string][]grammar.Entry)

	for _, path := range grammarExports {
		file, err := locfile.LoadExportFile(path)
		if err != nil {
			l.Error("Skipping export file", zap.String("file", path), zap.Error(err))
			continue
		}
		if entries := grammar.CollectExportEntries(file, grammarLanguage); len(entries) > 0 {
			files[path] = entries
		}
	}

	for _, path := range grammarOverrides {
		file, err := locfile.LoadOverrideFile(path)
		if err != nil {
			l.Error("Skipping override file", zap.String("file", path), zap.Error(err))
			continue
		}
		if entries := grammar.CollectOverrideEntries(file, grammarLanguage); len(entries) > 0 {
			files[path] = entries
		}
	}

	if len(files) == 0 {
		l.Info("No entries found to process for the selected language")
		return nil
	}

	batchSize := grammarBatchSize
	if batchSize <= 0 {
		batchSize = cfg.LLM.BatchSize
	}

	client := llm.NewClient(cfg.LLM)
	runner := grammar.NewRunner(client, batchSize, l)

	total := 0
	for _, entries := range files {
		total += len(entries)
	}
	l.Info("Starting correction run",
		zap.String("language", grammarLanguage),
		zap.String("model", client.Model()),
		zap.Int("entries", total),
		zap.Int("files", len(files)),
		zap.Int("batch_size", batchSize),
	)

	var report *grammar.Report
	suffix := "grammar_checked"
	if tone == "" {
		report = runner.CheckGrammar(ctx, grammarLanguage, files)
	} else {
		suffix = "tone_adjusted"
		report, err = runner.AdjustTone(ctx, grammarLanguage, tone, files)
		if err != nil {
			return err
		}
	}

	for _, warning := range report.Warnings {
		l.Warn("Correction warning",
			zap.String("file", warning.File),
			zap.Int("batch", warning.Batch),
			zap.String("message", warning.Message),
		)
	}

	l.Info("Correction run finished",
		zap.Int("corrections", report.TotalCorrections()),
		zap.Int("warnings", len(report.Warnings)),
	)

	if grammarSave && report.TotalCorrections() > 0 {
		saved, err := grammar.SaveCorrections(report, suffix)
		for _, path := range saved {
			l.Info("Saved corrections file", zap.String("file", path))
		}
		if err != nil {
			return err
		}
	}

	return nil
}
