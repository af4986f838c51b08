package grammar

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// Entry is one value submitted for correction.
type Entry struct {
	Key    string
	Locale string
	Value  string
}

// Correction is one accepted change for a key/locale pair.
type Correction struct {
	Key       string
	Locale    string
	Original  string
	Corrected string
}

// Warning records a recovered failure: a failed batch or a discarded
// correction.
type Warning struct {
	// File is the source file the warning belongs to.
	File string
	// Batch is the 1-indexed batch number, or 0 for entry-level warnings.
	Batch int
	// Message describes the failure.
	Message string
}

// Report is the outcome of one correction run across files.
type Report struct {
	// Corrections maps source file paths to their accepted corrections.
	// Only values that actually changed are listed.
	Corrections map[string][]Correction
	// Warnings lists recovered failures in processing order.
	Warnings []Warning
}

// TotalCorrections counts accepted corrections across all files.
func (r *Report) TotalCorrections() int {
	total := 0
	for _, corrections := range r.Corrections {
		total += len(corrections)
	}
	return total
}

// Completer is the LLM call surface the runner depends on.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// promptBuilder produces the system/user messages for one batch of values.
type promptBuilder func(values []string) (system, user string, err error)

// Runner drives batched correction runs against an LLM.
type Runner struct {
	client    Completer
	batchSize int
	logger    *zap.Logger
}

// NewRunner creates a runner. A non-positive batch size falls back to 10.
func NewRunner(client Completer, batchSize int, logger *zap.Logger) *Runner {
	if batchSize <= 0 {
		batchSize = 10
	}
	return &Runner{client: client, batchSize: batchSize, logger: logger}
}

// CheckGrammar runs grammar correction over the given entries, grouped by
// source file. A failed batch is recorded as a warning and processing
// continues with the next batch; no partial corrections from a failed
// batch are kept.
func (r *Runner) CheckGrammar(ctx context.Context, language string, files map[string][]Entry) *Report {
	builder := func(values []string) (string, string, error) {
		system, user := BuildGrammarPrompt(language, values)
		return system, user, nil
	}
	report, _ := r.run(ctx, files, builder)
	return report
}

// AdjustTone runs tone adjustment over the given entries. An invalid tone
// mode fails the whole run before any API call.
func (r *Runner) AdjustTone(ctx context.Context, language, mode string, files map[string][]Entry) (*Report, error) {
	// Validate the mode up front so a typo doesn't burn API calls.
	if _, _, err := BuildTonePrompt(language, mode, nil); err != nil {
		return nil, err
	}
	builder := func(values []string) (string, string, error) {
		return BuildTonePrompt(language, mode, values)
	}
	return r.run(ctx, files, builder)
}

func (r *Runner) run(ctx context.Context, files map[string][]Entry, build promptBuilder) (*Report, error) {
	report := &Report{Corrections: make(map[string][]Correction)}

	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		entries := files[path]
		var corrections []Correction

		for start := 0; start < len(entries); start += r.batchSize {
			end := min(start+r.batchSize, len(entries))
			batch := entries[start:end]
			batchNum := start/r.batchSize + 1

			corrected, err := r.processBatch(ctx, batch, build)
			if err != nil {
				report.Warnings = append(report.Warnings, Warning{
					File:    path,
					Batch:   batchNum,
					Message: err.Error(),
				})
				r.logger.Warn("Batch failed, continuing",
					zap.String("file", path),
					zap.Int("batch", batchNum),
					zap.Error(err),
				)
				continue
			}

			for i, entry := range batch {
				result := corrected[i]
				if err := ValidatePlaceholders(entry.Value, result); err != nil {
					report.Warnings = append(report.Warnings, Warning{
						File:    path,
						Message: fmt.Sprintf("key %q: %v; keeping original", entry.Key, err),
					})
					continue
				}
				if result == entry.Value {
					continue
				}
				corrections = append(corrections, Correction{
					Key:       entry.Key,
					Locale:    entry.Locale,
					Original:  entry.Value,
					Corrected: result,
				})
			}
		}

		if len(corrections) > 0 {
			report.Corrections[path] = corrections
		}
	}

	return report, nil
}

// processBatch sends one batch and parses the response. Any failure
// discards the batch as a unit.
func (r *Runner) processBatch(ctx context.Context, batch []Entry, build promptBuilder) ([]string, error) {
	values := make([]string, len(batch))
	for i, entry := range batch {
		values[i] = entry.Value
	}

	system, user, err := build(values)
	if err != nil {
		return nil, err
	}

	response, err := r.client.Complete(ctx, system, user)
	if err != nil {
		return nil, err
	}

	return ParseResponse(response, len(batch))
}
