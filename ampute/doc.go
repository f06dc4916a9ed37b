// Package ampute removes entries from complete numeric matrices under the
// three classical missingness mechanisms, producing the incomplete copy and
// the boolean mask that benchmarks score against.
//
// What:
//
//   - Mechanism: MCAR, MAR, MNAR.
//   - Mask: an n×p boolean matrix, true marking a removed entry.
//   - Amputate(X, mech, fraction, opts) → (Xna, mask): Xna equals X except
//     that masked entries become NaN; observed entries are bit-identical.
//
// Mechanisms:
//
//   - MCAR — each entry removed independently with probability = fraction,
//     regardless of any value.
//   - MAR  — the first column stays fully observed as a driver; an entry in
//     any other column is removed with probability fraction′·(½ + rank),
//     where rank ∈ [0,1) is the row's percentile under the driver column and
//     fraction′ rescales fraction over the eligible columns. Missingness
//     depends only on observed values.
//   - MNAR — same rank-threshold shape, every column eligible, ranked by the
//     entry's own value: missingness depends on the value being removed.
//
// Guarantees:
//
//   - Expected realized density ≈ fraction (clamped probabilities shave a
//     few percent at high fractions; see the mechanism docs).
//   - Every column keeps at least one observed entry: a fully masked column
//     has one uniformly chosen entry restored. This is the documented
//     edge-case policy that keeps column statistics defined downstream.
//   - Pure function of (X, mechanism, fraction, seed); X is never mutated.
//
// Errors:
//
//   - ErrNilMatrix, ErrEmptyMatrix: invalid input matrix.
//   - ErrBadFraction: fraction outside the open interval (0,1).
//   - ErrTooFewColumns: MAR needs at least two columns (driver + target).
//   - ErrUnknownMechanism: mechanism outside the enum.
package ampute
