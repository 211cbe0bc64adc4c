// Package equiv compares histories and state vectors produced by
// different execution strategies of the diffusion engine and asserts
// they agree within a numerical tolerance.
//
// Two architecturally different executors of the identical mathematical
// recurrence must agree within floating-point tolerance — never exactly
// (reduction order differs) and never by a wide margin. Compare checks
// element-wise closeness
//
//	|a_i - b_i| <= atol + rtol*|b_i|
//
// and, on failure, reports the maximum absolute difference and its
// index for diagnosis.
//
// Defaults: atol = 1e-7, rtol = 1e-6.
//
// Errors:
//
//   - ErrLengthMismatch: the sequences have different lengths.
//   - ErrNotClose: some element violates the tolerance bound.
package equiv
