// Package matrix offers the small dense linear-algebra surface used by the
// layer-stacking probability models.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set that
//     rejects NaN/Inf on every write.
//   - Constructors for the shapes probability models hand out: NewDiag
//     (distribution matrix diag(W)) and NewRepeatedRows (zero-memory
//     transition matrices whose rows all equal W).
//   - Validators for probability data: ValidateDistribution and
//     ValidateRowStochastic check [0,1] membership and unit sums within eps.
//   - StationaryDistribution: the π with π·P = π (gonum/mat LU solve), the
//     abundance vector a consistent transition matrix implies.
//   - Consistency helpers: RowSums, Diagonal, VecMul and AllClose, used by
//     the consistency report of the reichweite CLI.
//
// All functions return sentinel errors from errors.go, wrapped with a
// call-site tag; match them with errors.Is.
package matrix
