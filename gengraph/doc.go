// SPDX-License-Identifier: MIT
// Package: tonewave/gengraph
//
// Package gengraph produces seeded synthetic social-influence graphs and
// initial tone vectors for benchmarks and equivalence tests.
//
// What:
//
//   - Sparse(n, p)        — Erdős–Rényi-style random graph.
//   - Preferential(n, m)  — Barabási–Albert-style scale-free graph, the
//     shape of real follower networks (hubs + long tail).
//   - SmallWorld(n, k, b) — Watts–Strogatz-style rewired ring lattice.
//   - States(n)           — Normal(0, 0.5) tones clipped to [-1, 1].
//
// Every generator models an undirected acquaintance and emits BOTH
// directed edges per pair, so influence flows both ways — matching how
// the project's benchmark fixtures have always been produced.
//
// Determinism: same n, parameters and seed ⇒ identical output, element
// for element. The default seed is 42; override with WithSeed. No global
// RNG state is touched.
//
// Errors:
//
//   - ErrTooFewNodes: n below the generator's minimum.
//   - ErrBadProbability: p or beta outside [0, 1].
//   - ErrBadDegree: attachment/lattice degree out of range for n.
package gengraph
