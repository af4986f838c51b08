// Package compare reconciles translation export data against term
// customizer override files.
//
// The engine merges N export files and M override files per locale into a
// single canonical mismatch and statistics view, with a guarantee that
// key-deletion detection is consistent between individual and merged
// output modes.
//
// # Pipeline
//
//  1. Aggregation: export files merge in load order with
//     first-non-empty-wins per key slot; override files merge last-wins
//     per (key, locale) for the combined view while per-file maps stay
//     intact.
//  2. Reconciliation: after a fatal up-front locale precondition check,
//     each override file is compared independently against the canonical
//     view under the configured Policy; results land in per-file and
//     combined mismatch sets plus a deletion set.
//  3. Statistics: pure derivation of aggregate and per-file counters from
//     a result snapshot.
//  4. Output: individual, merged, or deleted-keys tables with timestamped
//     names and deterministic collision avoidance.
//
// Every pass returns a fresh Result value; nothing is cached or patched in
// place, so stale views cannot outlive an input change. Callers re-invoke
// Reconcile after changing the file set.
//
// The package also exposes the reconciliation pipeline over HTTP as a
// loader.Feature (POST /compare).
package compare
