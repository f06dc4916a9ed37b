// Package report renders benchmark results: a styled terminal table for
// interactive runs, CSV for downstream analysis, and per-mechanism line
// charts (RMSE vs. missing fraction, one series per method).
//
// All three renderers are pure consumers of bench.Result; nothing here
// feeds back into a sweep. Failed cells (NaN) print as "—" in the table,
// stay as "NaN" in CSV, and are simply skipped as plot points.
package report
