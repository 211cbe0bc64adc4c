// Package state loads, saves and inspects the dense per-node tone
// vector the diffusion engine operates on.
//
// What:
//
//   - Load/Read parse the flat states format: one real number per
//     significant line, index-aligned with the graph's node indices.
//     Blank lines and '#' comments are skipped; the parsed count must
//     equal the expected node count exactly.
//   - Save/Write emit one value per line in index order, using the
//     shortest decimal representation that round-trips float64.
//   - Mean returns the arithmetic mean of a vector (the per-step history
//     scalar).
//   - Converged is a diagnostic predicate ("all |new[i]-old[i]| <= tol");
//     it is NOT wired into the driver's termination, which is purely
//     step-count bound.
//
// No clamping or normalization is performed at load time: values are
// conventionally in [-1, 1] but the engine accepts any finite reals, and
// NaN/Inf propagate silently through the arithmetic as a data-quality
// concern of the caller.
//
// Errors:
//
//   - ErrBadValue: a significant line does not parse as a real number.
//   - ErrCountMismatch: the number of parsed values differs from the
//     declared node count.
package state
