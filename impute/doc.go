// Package impute completes NaN-marked numeric matrices. It defines the
// single capability interface every algorithm hides behind and ships five
// implementations: a column-mean baseline and four model-based imputers.
//
// What:
//
//   - Imputer — Name() plus Impute(Xna) → Xcomplete; the contract is that
//     Xcomplete carries no NaN, agrees with Xna on every observed entry, and
//     Xna itself is never mutated. A fully observed input round-trips
//     unchanged.
//   - Mean       — column-mean baseline.
//   - SoftImpute — low-rank matrix completion by iterative soft-thresholded
//     SVD; the shrinkage λ is tuned by internal cross-validation.
//   - MICE       — chained-equations multiple imputation with stochastic
//     linear regressions; the M draws are combined by averaging.
//   - Forest     — missForest-style iterative random-forest regression.
//   - IterPCA    — EM-style iterative PCA reconstruction; the component
//     count is tuned by the same internal cross-validation.
//
// Why one interface:
//
//   - The benchmark harness must stay ignorant of calling conventions, and
//     tests can substitute stub imputers freely.
//
// Failure taxonomy:
//
//   - ErrNilMatrix / ErrEmptyMatrix — misuse, detectable before any work.
//   - ErrEmptyColumn — a column with zero observed entries: no method here
//     can estimate it, so it surfaces as an error rather than silent NaN.
//   - ErrNoConvergence — an iterative solver exhausted its budget without
//     meeting its tolerance. Callers (the harness) treat this and
//     ErrEmptyColumn as recoverable: skip the draw, keep the sweep alive.
//
// Determinism: every stochastic imputer is seed-driven (seed 0 ⇒ fixed
// default) and forks private SplitMix64 substreams for its internal
// resampling, so tuning noise never leaks into a caller's RNG.
package impute
