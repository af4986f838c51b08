// Package searchreplace performs bulk search and replace across
// localization data for one locale at a time.
//
// The operation is two-phase: Preview computes the full set of planned
// replacements (per file, per key), Apply writes only the changed rows as
// new override tables next to their source files. Originals are never
// touched. Matching supports case sensitivity and whole-word boundaries;
// search terms are treated literally, not as patterns.
package searchreplace
