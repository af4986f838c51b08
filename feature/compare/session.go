package compare

import (
	"translation-manager/core/locfile"
)

// Session holds the loaded input files for reconciliation, in load order.
// It replaces long-lived mutable application state: engines never reach
// into a session to cache results, they take its file lists as inputs and
// return fresh snapshots. Changing the file set does not recompute
// anything; the caller re-invokes Reconcile explicitly.
type Session struct {
	// Exports are the loaded translation export files, in load order.
	Exports []*locfile.ExportFile
	// Overrides are the loaded override files, in load order.
	Overrides []*locfile.OverrideFile
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// AddExport appends an export file, preserving load order.
func (s *Session) AddExport(file *locfile.ExportFile) {
	s.Exports = append(s.Exports, file)
}

// AddOverride appends an override file, preserving load order.
func (s *Session) AddOverride(file *locfile.OverrideFile) {
	s.Overrides = append(s.Overrides, file)
}

// RemoveExport drops the export file loaded from path. It reports whether
// a file was removed.
func (s *Session) RemoveExport(path string) bool {
	for i, file := range s.Exports {
		if file.Path == path {
			s.Exports = append(s.Exports[:i], s.Exports[i+1:]...)
			return true
		}
	}
	return false
}

// ClearOverrides drops all override files.
func (s *Session) ClearOverrides() {
	s.Overrides = nil
}

// Reconcile runs the engine over the session's current file lists.
func (s *Session) Reconcile(policy Policy) (*Result, error) {
	return Reconcile(s.Exports, s.Overrides, policy)
}

// Statistics derives counters from a result produced for this session.
func (s *Session) Statistics(result *Result) Statistics {
	return Calculate(BuildCanonicalView(s.Exports), s.Overrides, result)
}
