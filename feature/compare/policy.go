package compare

import "strings"

// Policy holds the value-matching rules for one reconciliation pass.
type Policy struct {
	// CaseSensitive disables case folding during comparison.
	CaseSensitive bool
	// IncludeEmpty reports mismatches even when one side is empty.
	// When false, an empty value on either side suppresses the mismatch.
	IncludeEmpty bool
	// RequireOverrideValue only evaluates key/locale pairs whose override
	// value is non-empty.
	RequireOverrideValue bool
}

// Normalize trims the value and lowercases it unless the policy is
// case-sensitive.
func (p Policy) Normalize(value string) string {
	value = strings.TrimSpace(value)
	if !p.CaseSensitive {
		value = strings.ToLower(value)
	}
	return value
}

// ValuesDiffer reports whether two values count as a mismatch under the
// policy. With IncludeEmpty false an empty value on either side is never a
// mismatch, regardless of the other side's content.
func (p Policy) ValuesDiffer(a, b string) bool {
	if !p.IncludeEmpty {
		if a == "" || b == "" {
			return false
		}
	}
	return p.Normalize(a) != p.Normalize(b)
}

// ShouldCheck gates whether a key/locale pair enters mismatch computation
// at all, before ValuesDiffer is consulted.
func (p Policy) ShouldCheck(overrideValue string) bool {
	if p.RequireOverrideValue {
		return overrideValue != ""
	}
	return true
}
