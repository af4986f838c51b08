// Package locfile handles loading and saving of localization data files.
//
// Two input shapes are supported:
//
//  1. Translation exports: XLIFF documents declaring a source and target
//     language at the file level, with trans-units keyed by resname.
//  2. Override tables: semicolon-delimited CSV files with locale, key,
//     and value columns ("term customizer" data).
//
// Locale tags are lowercased on read so that downstream comparison is
// case-insensitive by construction. The package also provides the shared
// output naming helpers: timestamped file names and deterministic numeric
// collision avoidance.
//
// Parsing failures are reported per file; a file that fails to load
// contributes nothing to any aggregate view.
package locfile
