package compare

import (
	"fmt"

	"translation-manager/core/locfile"

	"go.uber.org/zap"
)

// Service loads input files and runs reconciliation passes.
type Service struct {
	logger *zap.Logger
}

// NewService creates a new compare service.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// LoadSession loads the given export and override files into a fresh
// session. A file that fails to parse is logged and skipped so the other
// files still load; an error is returned only when either list ends up
// empty, since reconciliation needs at least one file on each side.
func (s *Service) LoadSession(exportPaths, overridePaths []string) (*Session, error) {
	session := NewSession()

	for _, path := range exportPaths {
		file, err := locfile.LoadExportFile(path)
		if err != nil {
			s.logger.Error("Skipping export file", zap.String("file", path), zap.Error(err))
			continue
		}
		session.AddExport(file)
		s.logger.Info("Loaded export file",
			zap.String("file", path),
			zap.Int("keys", len(file.Entries)),
			zap.String("source", file.SourceLocale),
			zap.String("target", file.TargetLocale),
		)
	}

	for _, path := range overridePaths {
		file, err := locfile.LoadOverrideFile(path)
		if err != nil {
			s.logger.Error("Skipping override file", zap.String("file", path), zap.Error(err))
			continue
		}
		session.AddOverride(file)
		s.logger.Info("Loaded override file",
			zap.String("file", path),
			zap.Int("keys", len(file.Entries)),
			zap.Strings("locales", file.SortedLocales()),
		)
	}

	if len(session.Exports) == 0 {
		return nil, fmt.Errorf("no export files loaded")
	}
	if len(session.Overrides) == 0 {
		return nil, fmt.Errorf("no override files loaded")
	}

	return session, nil
}

// Compare reconciles the session under the given policy and derives
// statistics from the result.
func (s *Service) Compare(session *Session, policy Policy) (*Result, Statistics, error) {
	result, err := session.Reconcile(policy)
	if err != nil {
		return nil, Statistics{}, err
	}

	stats := session.Statistics(result)
	s.logger.Info("Comparison finished",
		zap.String("run_id", result.RunID),
		zap.Int("mismatched_keys", stats.MismatchedKeys),
		zap.Int("matching_keys", stats.MatchingKeys),
		zap.Int("deletions", len(result.Deletions)),
	)
	return result, stats, nil
}
