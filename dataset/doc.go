// Package dataset provides the tabular numeric inputs for imputation
// benchmarks: loading, validation, scaling and synthetic generation.
//
// What:
//
//   - Dataset wraps a dense n×p matrix (rows = observations, columns =
//     variables) with column names and a no-missing-values invariant.
//   - FromCSV / FromFile / FromURL parse header-row CSV or TSV tables and
//     reject non-numeric cells with a positioned diagnostic.
//   - Open resolves one of a fixed set of named illustrative public datasets
//     and downloads it one-shot.
//   - Standardize / Destandardize scale columns to zero mean and unit
//     standard deviation and back.
//   - SyntheticNormal draws a seeded multivariate-normal table with an
//     equicorrelated covariance, handy for controlled experiments.
//
// Why:
//
//   - Imputation error is only comparable across variables when columns share
//     a scale; Standardize gives benchmarks that option.
//   - Reconstruction benchmarks need ground truth, therefore every loader
//     enforces "no missing values before amputation".
//
// Errors:
//
//   - ErrNilMatrix, ErrEmptyDataset, ErrNameCount: construction misuse.
//   - ErrNonFinite: NaN or Inf encountered where ground truth is required.
//   - ErrZeroVariance: a constant column cannot be standardized.
//   - ErrUnknownDataset: name not present in the registry.
//   - ParseError: positioned CSV cell failure.
//
// All randomness is seed-driven; seed 0 selects a fixed default so results
// are reproducible by default.
package dataset
