// Package bench sweeps imputation methods over a grid of missingness
// settings and scores their reconstruction accuracy against ground truth.
//
// What:
//
//   - RMSE(Ximp, Xtrue, mask): root-mean-squared error over the removed
//     entries only.
//   - Run(X, imputers, opts): for every (fraction, mechanism) cell and every
//     repetition, amputate X fresh, run every imputer on the identical
//     incomplete matrix, score against X on the identical mask, and average
//     per method over the repetitions.
//   - Result: the immutable method × cell table, deterministically ordered.
//
// Invariants:
//
//   - Fair comparison: within one repetition, every method sees the same
//     amputed matrix and mask.
//   - Independence: every (cell, repetition) draws its own mask from a seed
//     derived from (Seed, cell index, repetition index) — never from shared
//     RNG state — so the optional parallel mode cannot reorder the draws.
//   - Shape: exactly |fractions|·|mechanisms| cells and |imputers| methods.
//
// Failure policy:
//
//   - An imputer failing one repetition is skipped; the cell averages over
//     its successful repetitions. A method that never succeeds in a cell
//     reports NaN there. One bad draw never aborts the sweep.
//   - Input-validity problems (empty matrix, no imputers, fraction out of
//     range, duplicate method names) fail fast before any simulation.
//
// Concurrency:
//
//   - Workers > 1 runs cells in parallel with identical output; the default
//     is fully sequential. No shared mutable state crosses cells.
package bench
