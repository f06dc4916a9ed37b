// Package imputelab is your workbench for comparing missing-data imputation
// techniques on tabular numeric data — from classic column means to low-rank
// matrix completion, chained equations, random forests and iterative PCA.
//
// 🚀 What is imputelab?
//
//	A deterministic, reproducible benchmarking library that brings together:
//		• Datasets: CSV/TSV loading, named public tables, synthetic normals
//		• Amputation: MCAR, MAR and MNAR missingness at any target rate
//		• Imputers: Mean, SoftImpute, MICE, Forest, IterPCA behind one interface
//		• Benchmarking: fraction × mechanism sweeps with shared masks per draw
//		• Reporting: terminal tables, CSV export and per-mechanism plots
//
// ✨ Why choose imputelab?
//
//   - Fair comparisons – every method sees the identical amputed matrix
//   - Reproducible – seeded RNG streams everywhere; same seed, same table
//   - Robust – one diverging method never aborts a whole sweep
//   - Extensible – implement impute.Imputer and drop it into the benchmark
//
// Under the hood, everything is organized under five subpackages:
//
//	dataset/ — numeric tables, loading, standardization, synthetic draws
//	ampute/  — missingness mechanisms and masks
//	impute/  — the Imputer interface and the five implementations
//	bench/   — the sweep harness and the masked RMSE metric
//	report/  — tables, CSV and plots of benchmark results
//
// Quick sketch of a sweep:
//
//	X ──amputate──▶ Xna ──impute──▶ X̂ ──RMSE(mask)──▶ score
//	        (one fresh mask per repetition, shared by all methods)
//
// Dive into README.md and cmd/imputelab for an end-to-end run.
//
//	go get github.com/katalvlaran/imputelab
package imputelab
