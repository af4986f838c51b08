// Package grammar performs LLM-assisted grammar checking and tone
// adjustment of localization values.
//
// Entries are processed in batches of configurable size to bound payload
// size and failure blast radius: a batch either completes or is discarded
// as a unit, and a failed batch never stops the remaining batches. All
// recovered failures surface as warnings on the run's Report.
//
// # Placeholder Integrity
//
// Translation values carry placeholders (%{name}, {{count}}, %1$s, ...)
// that the model must not touch. Every returned correction is validated
// against the original's placeholder set; on mismatch the original value
// is kept and a warning recorded.
//
// # Tone Modes
//
// Tone adjustment supports "formal" (Sie) and "informal" (Du) German
// register conversion. Grammar checking adds German-specific rules when
// the language is de or de-CH.
package grammar
