// Package tonewave propagates a scalar "emotional tone" across a directed
// social-influence graph using a synchronous iterative diffusion process.
//
// 🚀 What is tonewave?
//
//	A small, deterministic diffusion engine plus its surrounding tooling:
//		• digraph/  — immutable predecessor-list graphs, flat-file codec
//		• state/    — dense per-node tone vectors, load/save, diagnostics
//		• diffuse/  — the update kernel and the sequential/parallel drivers
//		• equiv/    — tolerance comparison of histories and state vectors
//		• ingest/   — raw edge lists + per-user scores → engine inputs
//		• gengraph/ — seeded synthetic benchmark graphs and states
//		• cmd/tonewave — CLI: run, build, gen, compare
//
// ✨ Why choose tonewave?
//
//   - Reproducible – the sequential driver is bit-deterministic; the
//     parallel driver agrees within documented floating-point tolerance
//   - Rock-solid guarantees – double-buffered synchronous updates, full
//     barrier between timesteps, no in-place mutation
//   - Minimal surface – two flat text files in, two flat text files out
//
// The per-step rule, for every node v with predecessors P(v):
//
//	next[v] = (1-α)·cur[v] + α·mean(cur[u] for u in P(v))
//
// and next[v] = cur[v] when P(v) is empty. The history records the mean
// state after each completed step.
//
// Dive into each subpackage's doc.go for contracts, errors and examples.
package tonewave
